package project

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

func TestLoadConfigDefaultsWhenSectionsMissing(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "# empty manifest\n")
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	def := DefaultConfig()
	if cfg.Stubs.Mode != def.Stubs.Mode {
		t.Fatalf("mode = %q, want default %q", cfg.Stubs.Mode, def.Stubs.Mode)
	}
	if len(cfg.Scan.Extensions) != len(def.Scan.Extensions) {
		t.Fatalf("extensions: %v", cfg.Scan.Extensions)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `
[stubs]
mode = "declaration"
placeholder = "// TODO %s"

[scan]
extensions = ["h", ".hpp"]
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Stubs.Mode != StubModeDeclaration {
		t.Fatalf("mode = %q", cfg.Stubs.Mode)
	}
	if cfg.Stubs.Placeholder != "// TODO %s" {
		t.Fatalf("placeholder = %q", cfg.Stubs.Placeholder)
	}
	// расширения нормализуются к виду с точкой
	if len(cfg.Scan.Extensions) != 2 || cfg.Scan.Extensions[0] != ".h" || cfg.Scan.Extensions[1] != ".hpp" {
		t.Fatalf("extensions: %v", cfg.Scan.Extensions)
	}
}

func TestLoadConfigRejectsBadMode(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "[stubs]\nmode = \"inline\"\n")
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("want error for unknown mode")
	}
}

func TestLoadConfigRejectsEmptyExtensions(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "[scan]\nextensions = [\"\"]\n")
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("want error for empty extension list")
	}
}

func TestFindManifestWalksUp(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	path, ok, err := FindManifest(nested)
	if err != nil || !ok {
		t.Fatalf("FindManifest: ok=%v err=%v", ok, err)
	}
	if filepath.Dir(path) != root {
		t.Fatalf("found %q, want manifest in %q", path, root)
	}

	gotRoot, ok, err := FindProjectRoot(nested)
	if err != nil || !ok || gotRoot != root {
		t.Fatalf("FindProjectRoot: %q ok=%v err=%v", gotRoot, ok, err)
	}
}

func TestFindManifestAbsent(t *testing.T) {
	_, ok, err := FindManifest(t.TempDir())
	if err != nil {
		t.Fatalf("FindManifest: %v", err)
	}
	if ok {
		t.Fatalf("manifest must not be found in empty dir")
	}
}

func TestLoadConfigForWithoutManifest(t *testing.T) {
	cfg, err := LoadConfigFor(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfigFor: %v", err)
	}
	if cfg.Stubs.Mode != StubModeBody {
		t.Fatalf("want defaults, got %+v", cfg)
	}
}
