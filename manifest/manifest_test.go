package manifest

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "fern.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_Minimal(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `
name: geometry
version: v0.1.0
sources:
  - vec3.fn
  - mat4.fn
headers:
  - vec3.bih
requires:
  - collections
`)

	m, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Package.Name != "geometry" {
		t.Errorf("name = %q, want geometry", m.Package.Name)
	}
	if len(m.Package.Sources) != 2 {
		t.Fatalf("sources len = %d, want 2", len(m.Package.Sources))
	}
	if m.Package.Sources[0] != "vec3.fn" {
		t.Errorf("sources[0] = %q, want vec3.fn", m.Package.Sources[0])
	}
	if len(m.Package.Requires) != 1 || m.Package.Requires[0] != "collections" {
		t.Errorf("requires = %v, want [collections]", m.Package.Requires)
	}
}

func TestLoad_MissingName(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `
sources:
  - vec3.fn
`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for missing name")
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
