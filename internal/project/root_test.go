package project

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindManifestWalksUp(t *testing.T) {
	tmp := t.TempDir()
	nested := filepath.Join(tmp, "a", "b", "c")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	manifest := filepath.Join(tmp, "a", ManifestName)
	if err := os.WriteFile(manifest, []byte("[project]\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	path, ok, err := FindManifest(nested)
	if err != nil {
		t.Fatalf("FindManifest: %v", err)
	}
	if !ok {
		t.Fatal("expected to find the manifest two levels up")
	}
	if path != manifest {
		t.Errorf("path = %q, want %q", path, manifest)
	}

	root, ok, err := FindProjectRoot(nested)
	if err != nil || !ok {
		t.Fatalf("FindProjectRoot: ok=%v err=%v", ok, err)
	}
	if root != filepath.Join(tmp, "a") {
		t.Errorf("root = %q", root)
	}
}

func TestFindManifestAbsent(t *testing.T) {
	_, ok, err := FindManifest(t.TempDir())
	if err != nil {
		t.Fatalf("FindManifest: %v", err)
	}
	if ok {
		t.Error("found a manifest where none exists")
	}
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ManifestName)
	content := `
[project]
config = "configs/tsconfig.app.json"

[output]
color = "off"
cache = false
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	m, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}
	if m.ConfigPath != filepath.Join(dir, "configs", "tsconfig.app.json") {
		t.Errorf("ConfigPath = %q", m.ConfigPath)
	}
	if m.Color != "off" {
		t.Errorf("Color = %q", m.Color)
	}
	if m.Cache {
		t.Error("Cache should be false")
	}
}

func TestLoadManifestDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, []byte(""), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	m, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}
	want := DefaultManifest(dir)
	if m != want {
		t.Errorf("defaults = %+v, want %+v", m, want)
	}
}

func TestLoadManifestBadTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, []byte("[project\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := LoadManifest(path); err == nil {
		t.Error("expected a parse error")
	}
}
