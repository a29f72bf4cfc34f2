package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"purefix/internal/edit"
	"purefix/internal/sema"
	"purefix/internal/tweak"
	"purefix/internal/ui"
)

var applyCmd = &cobra.Command{
	Use:   "apply [flags] <file.h>",
	Short: "Insert override stubs for the class at a position",
	Long:  `Apply generates override stubs for every unimplemented inherited pure virtual method of the class at --at and splices them into the file`,
	Args:  cobra.ExactArgs(1),
	RunE:  runApply,

	SilenceUsage: true,
}

func init() {
	applyCmd.Flags().String("at", "", "cursor position: line:col or @byte-offset")
	applyCmd.Flags().String("tweak", "override-pure-virtuals", "tweak id to run")
	applyCmd.Flags().Bool("interactive", false, "pick which stubs to insert")
	applyCmd.Flags().Bool("declarations", false, "emit bare declarations instead of bodies")
	applyCmd.Flags().Bool("dry-run", false, "print the patched file instead of writing it")
}

func runApply(cmd *cobra.Command, args []string) error {
	at, err := cmd.Flags().GetString("at")
	if err != nil {
		return fmt.Errorf("failed to get at flag: %w", err)
	}
	tweakID, err := cmd.Flags().GetString("tweak")
	if err != nil {
		return fmt.Errorf("failed to get tweak flag: %w", err)
	}
	interactive, err := cmd.Flags().GetBool("interactive")
	if err != nil {
		return fmt.Errorf("failed to get interactive flag: %w", err)
	}
	declarations, err := cmd.Flags().GetBool("declarations")
	if err != nil {
		return fmt.Errorf("failed to get declarations flag: %w", err)
	}
	dryRun, err := cmd.Flags().GetBool("dry-run")
	if err != nil {
		return fmt.Errorf("failed to get dry-run flag: %w", err)
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	tw, ok := tweak.ByID(tweakID)
	if !ok {
		return fmt.Errorf("unknown tweak %q (see `purefix tweaks`)", tweakID)
	}

	sel, _, err := loadSelection(cmd.Context(), args[0], at, maxDiagnostics)
	if err != nil {
		return err
	}
	if declarations {
		sel.Opts.Mode = tweak.StubDeclaration
	}

	var patch edit.Patch
	if interactive {
		patch, err = pickInteractive(sel)
	} else {
		if !tw.IsAvailable(sel) {
			return fmt.Errorf("%s is not applicable at this position", tw.ID())
		}
		patch, err = tw.Apply(sel)
	}
	if err != nil {
		return err
	}
	if len(patch.Edits) == 0 {
		if !quiet {
			fmt.Fprintln(cmd.OutOrStdout(), "no stubs selected, file unchanged")
		}
		return nil
	}

	id, content, err := edit.ApplyPatch(sel.FileSet, patch)
	if err != nil {
		return err
	}

	file := sel.FileSet.Get(id)
	if dryRun {
		_, err := cmd.OutOrStdout().Write(content)
		return err
	}

	if err := writeFilePreservingMode(file.Path, content); err != nil {
		return fmt.Errorf("write %s: %w", file.Path, err)
	}
	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: inserted %d stub(s)\n", file.FormatPath("auto", ""), countStubs(patch))
	}
	return nil
}

// pickInteractive даёт пользователю выбрать подмножество заглушек.
func pickInteractive(sel *tweak.Selection) (edit.Patch, error) {
	target, slots, err := tweak.Missing(sel)
	if err != nil {
		return edit.Patch{}, err
	}

	labels := make([]string, len(slots))
	for i, slot := range slots {
		labels[i] = slotLabel(slot)
	}
	chosen, accepted, err := ui.RunPicker("insert stubs into "+target.QualifiedName, labels)
	if err != nil {
		return edit.Patch{}, err
	}
	if !accepted {
		return edit.Patch{}, fmt.Errorf("cancelled")
	}

	picked := make([]*sema.Slot, 0, len(chosen))
	for _, i := range chosen {
		picked = append(picked, slots[i])
	}
	return tweak.EmitPatch("Override pure virtual methods", target, picked, sel.Opts), nil
}

func writeFilePreservingMode(path string, content []byte) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode()
	}
	return os.WriteFile(path, content, mode)
}

func countStubs(patch edit.Patch) int {
	n := 0
	for _, e := range patch.Edits {
		for _, c := range e.NewText {
			if c == '\n' {
				n++
			}
		}
	}
	// ведущий перевод строки не считается
	if n > 0 {
		n--
	}
	return n
}
