package project

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// Stub modes accepted in the manifest.
const (
	StubModeBody        = "body"
	StubModeDeclaration = "declaration"
)

// StubsConfig — секция [stubs]: как рендерить сгенерированные члены.
type StubsConfig struct {
	Mode        string `toml:"mode"`
	Placeholder string `toml:"placeholder"`
}

// ScanConfig — секция [scan]: какие файлы считать заголовками.
type ScanConfig struct {
	Extensions []string `toml:"extensions"`
}

// Config is the parsed purefix.toml.
type Config struct {
	Stubs StubsConfig `toml:"stubs"`
	Scan  ScanConfig  `toml:"scan"`
}

// DefaultConfig returns the configuration used when no manifest exists.
func DefaultConfig() Config {
	return Config{
		Stubs: StubsConfig{Mode: StubModeBody},
		Scan:  ScanConfig{Extensions: []string{".h", ".hh", ".hpp", ".hxx"}},
	}
}

// LoadConfig читает манифест и накладывает его поверх дефолтов: секции,
// которых в файле нет, остаются дефолтными (проверяем через
// meta.IsDefined, а не по нулевым значениям).
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	var raw Config
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if meta.IsDefined("stubs", "mode") {
		mode := strings.ToLower(strings.TrimSpace(raw.Stubs.Mode))
		if mode != StubModeBody && mode != StubModeDeclaration {
			return cfg, fmt.Errorf("%s: [stubs] mode must be %q or %q, got %q",
				path, StubModeBody, StubModeDeclaration, raw.Stubs.Mode)
		}
		cfg.Stubs.Mode = mode
	}
	if meta.IsDefined("stubs", "placeholder") {
		cfg.Stubs.Placeholder = raw.Stubs.Placeholder
	}
	if meta.IsDefined("scan", "extensions") {
		exts := make([]string, 0, len(raw.Scan.Extensions))
		for _, e := range raw.Scan.Extensions {
			e = strings.TrimSpace(e)
			if e == "" {
				continue
			}
			if !strings.HasPrefix(e, ".") {
				e = "." + e
			}
			exts = append(exts, e)
		}
		if len(exts) == 0 {
			return cfg, fmt.Errorf("%s: [scan] extensions must not be empty", path)
		}
		cfg.Scan.Extensions = exts
	}
	return cfg, nil
}

// LoadConfigFor finds the manifest starting at dir and loads it, falling
// back to defaults when there is none.
func LoadConfigFor(dir string) (Config, error) {
	path, ok, err := FindManifest(dir)
	if err != nil {
		return DefaultConfig(), err
	}
	if !ok {
		return DefaultConfig(), nil
	}
	return LoadConfig(path)
}
