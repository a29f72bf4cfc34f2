package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"purefix/internal/diagfmt"
	"purefix/internal/sema"
	"purefix/internal/tweak"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file.h>",
	Short: "Report unimplemented pure virtual methods for the class at a position",
	Long:  `Check resolves the class at --at, walks its inherited pure virtual methods, and lists the ones the class does not implement`,
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,

	SilenceUsage: true,
}

func init() {
	checkCmd.Flags().String("at", "", "cursor position: line:col or @byte-offset")
	checkCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	checkCmd.Flags().Bool("with-notes", false, "include diagnostic notes in output")
}

func runCheck(cmd *cobra.Command, args []string) error {
	at, err := cmd.Flags().GetString("at")
	if err != nil {
		return fmt.Errorf("failed to get at flag: %w", err)
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	withNotes, err := cmd.Flags().GetBool("with-notes")
	if err != nil {
		return fmt.Errorf("failed to get with-notes flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
	}

	sel, analysis, err := loadSelection(cmd.Context(), args[0], at, maxDiagnostics)
	if err != nil {
		return err
	}

	target, slots, missErr := tweak.Missing(sel)
	out := cmd.OutOrStdout()

	if format == "json" {
		payload := checkPayload{Missing: []string{}}
		if missErr == nil {
			payload.Class = target.QualifiedName
			for _, slot := range slots {
				payload.Missing = append(payload.Missing, slotLabel(slot))
			}
			payload.Count = len(slots)
		}
		if err := writeJSON(out, payload); err != nil {
			return err
		}
		if missErr == nil {
			os.Exit(1)
		}
		return nil
	}

	for _, f := range analysis.Files {
		f.Bag.Sort()
		diagfmt.Pretty(out, f.Bag, analysis.FileSet, diagfmt.PrettyOpts{
			Color:     useColor(),
			ShowNotes: withNotes,
		})
	}
	sel.Bag.Sort()
	diagfmt.Pretty(out, sel.Bag, analysis.FileSet, diagfmt.PrettyOpts{
		Color:     useColor(),
		ShowNotes: withNotes,
	})

	if missErr != nil {
		fmt.Fprintln(out, "nothing to do: no unimplemented pure virtual methods at this position")
		return nil
	}

	fmt.Fprintf(out, "%s is missing %d override(s):\n", target.QualifiedName, len(slots))
	for _, slot := range slots {
		fmt.Fprintf(out, "  %s\n", slotLabel(slot))
	}
	// ненулевой код выхода: удобно для CI
	os.Exit(1)
	return nil
}

type checkPayload struct {
	Class   string   `json:"class,omitempty"`
	Missing []string `json:"missing"`
	Count   int      `json:"count"`
}

func writeJSON(out io.Writer, payload any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

// slotLabel печатает слот в виде декларации без тела.
func slotLabel(slot *sema.Slot) string {
	label := tweak.RenderStub(slot.Root, tweak.Options{Mode: tweak.StubDeclaration})
	return strings.TrimSuffix(strings.TrimSpace(label), ";")
}
