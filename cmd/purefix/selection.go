package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"purefix/internal/diag"
	"purefix/internal/driver"
	"purefix/internal/project"
	"purefix/internal/source"
	"purefix/internal/tweak"
)

// parsePosition разбирает значение --at: "line:col" (1-based) или
// "@offset" (байтовое смещение).
func parsePosition(value string) (pos source.LineCol, byteOff uint32, isOffset bool, err error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return pos, 0, false, fmt.Errorf("--at is required (line:col or @byte-offset)")
	}

	if strings.HasPrefix(value, "@") {
		n, err := strconv.ParseUint(value[1:], 10, 32)
		if err != nil {
			return pos, 0, false, fmt.Errorf("invalid byte offset %q: %w", value, err)
		}
		return pos, uint32(n), true, nil
	}

	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 {
		return pos, 0, false, fmt.Errorf("invalid position %q (expected line:col or @byte-offset)", value)
	}
	line, err := strconv.ParseUint(parts[0], 10, 32)
	if err != nil || line == 0 {
		return pos, 0, false, fmt.Errorf("invalid line in %q", value)
	}
	col, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil || col == 0 {
		return pos, 0, false, fmt.Errorf("invalid column in %q", value)
	}
	return source.LineCol{Line: uint32(line), Col: uint32(col)}, 0, false, nil
}

// loadSelection анализирует директорию целевого файла (чтобы базы из
// соседних заголовков резолвились) и строит Selection для курсора.
func loadSelection(ctx context.Context, path, at string, maxDiagnostics int) (*tweak.Selection, *driver.Analysis, error) {
	pos, byteOff, isOffset, err := parsePosition(at)
	if err != nil {
		return nil, nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve %q: %w", path, err)
	}

	cfg, err := project.LoadConfigFor(filepath.Dir(abs))
	if err != nil {
		return nil, nil, err
	}

	analysis, err := driver.AnalyzeDir(ctx, filepath.Dir(abs), driver.ScanOptions{
		Extensions:     cfg.Scan.Extensions,
		MaxDiagnostics: maxDiagnostics,
	})
	if err != nil {
		return nil, nil, err
	}

	file, ok := analysis.FileSet.GetByPath(abs)
	if !ok {
		return nil, nil, fmt.Errorf("%s was not picked up by the scan (extension not in [scan] extensions?)", path)
	}

	cursor := byteOff
	if !isOffset {
		cursor, ok = file.OffsetOf(pos)
		if !ok {
			return nil, nil, fmt.Errorf("position %d:%d is outside %s", pos.Line, pos.Col, path)
		}
	}

	return &tweak.Selection{
		FileSet: analysis.FileSet,
		Index:   analysis.Index,
		File:    file.ID,
		Cursor:  cursor,
		Bag:     diag.NewBag(maxDiagnostics),
		Opts:    stubOptions(cfg),
	}, analysis, nil
}

func stubOptions(cfg project.Config) tweak.Options {
	opts := tweak.Options{Placeholder: cfg.Stubs.Placeholder}
	if cfg.Stubs.Mode == project.StubModeDeclaration {
		opts.Mode = tweak.StubDeclaration
	}
	return opts
}
