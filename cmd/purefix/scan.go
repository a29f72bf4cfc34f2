package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"purefix/internal/diagfmt"
	"purefix/internal/driver"
	"purefix/internal/observ"
	"purefix/internal/project"
	"purefix/internal/sema"
)

var scanCmd = &cobra.Command{
	Use:   "scan [flags] <directory>",
	Short: "Find classes with unimplemented pure virtual methods",
	Long:  `Scan parses every header under the directory and reports classes that inherit pure virtual methods they do not implement`,
	Args:  cobra.ExactArgs(1),
	RunE:  runScan,

	SilenceUsage: true,
}

func init() {
	scanCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	scanCmd.Flags().Bool("disk-cache", false, "cache parse results on disk between runs")
	scanCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	scanCmd.Flags().Bool("with-diagnostics", false, "also print parse diagnostics")
}

type scanEntry struct {
	Class   string   `json:"class"`
	File    string   `json:"file"`
	Missing []string `json:"missing"`
}

func runScan(cmd *cobra.Command, args []string) error {
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	useCache, err := cmd.Flags().GetBool("disk-cache")
	if err != nil {
		return fmt.Errorf("failed to get disk-cache flag: %w", err)
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	withDiags, err := cmd.Flags().GetBool("with-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get with-diagnostics flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	showTimings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
	}

	dir := args[0]
	cfg, err := project.LoadConfigFor(dir)
	if err != nil {
		return err
	}

	var cache *driver.DiskCache
	if useCache {
		cache, err = driver.OpenDiskCache("purefix")
		if err != nil {
			return fmt.Errorf("failed to open disk cache: %w", err)
		}
	}

	timer := observ.NewTimer()
	endScan := timer.Phase("scan")
	analysis, err := driver.AnalyzeDir(cmd.Context(), dir, driver.ScanOptions{
		Extensions:     cfg.Scan.Extensions,
		MaxDiagnostics: maxDiagnostics,
		Jobs:           jobs,
		Cache:          cache,
	})
	if err != nil {
		return err
	}
	endScan(fmt.Sprintf("%d файлов", len(analysis.Files)))

	endResolve := timer.Phase("resolve")
	entries := collectScanEntries(analysis)
	endResolve(fmt.Sprintf("%d классов", len(analysis.Index.Classes())))

	out := cmd.OutOrStdout()
	if showTimings {
		fmt.Fprint(out, timer.Summary())
	}

	if format == "json" {
		if err := writeJSON(out, entries); err != nil {
			return err
		}
		if len(entries) > 0 {
			os.Exit(1)
		}
		return nil
	}

	if withDiags {
		for _, f := range analysis.Files {
			f.Bag.Sort()
			diagfmt.Pretty(out, f.Bag, analysis.FileSet, diagfmt.PrettyOpts{
				Color:    useColor(),
				PathMode: diagfmt.PathModeRelative,
			})
		}
	}

	if len(entries) == 0 {
		fmt.Fprintln(out, "all abstract bases are fully overridden")
		return nil
	}
	for _, e := range entries {
		fmt.Fprintf(out, "%s (%s)\n", e.Class, e.File)
		for _, m := range e.Missing {
			fmt.Fprintf(out, "  %s\n", m)
		}
	}
	os.Exit(1)
	return nil
}

// collectScanEntries возвращает классы с недостающими операциями в
// детерминированном порядке: по файлу, затем по позиции декларации.
func collectScanEntries(analysis *driver.Analysis) []scanEntry {
	classes := analysis.Index.Classes()
	sema.SortClasses(classes)

	var entries []scanEntry
	for _, c := range classes {
		missing := sema.ComputeMissing(analysis.Index, c, nil)
		if len(missing.Missing) == 0 {
			continue
		}
		entry := scanEntry{
			Class: c.QualifiedName,
			File:  analysis.FileSet.Get(c.File).FormatPath("relative", analysis.FileSet.BaseDir()),
		}
		for _, slot := range missing.Missing {
			entry.Missing = append(entry.Missing, slotLabel(slot))
		}
		entries = append(entries, entry)
	}
	return entries
}
