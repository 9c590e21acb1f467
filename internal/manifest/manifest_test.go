package manifest

import (
	"path/filepath"
	"testing"
)

func TestDefaultShape(t *testing.T) {
	m := Default("demo")
	if m.Package.Name != "demo" {
		t.Errorf("Name = %q, want %q", m.Package.Name, "demo")
	}
	if m.Package.Version != "0.1.0" {
		t.Errorf("Version = %q, want %q", m.Package.Version, "0.1.0")
	}
	if m.Package.EntryPoint != "main.zk" {
		t.Errorf("EntryPoint = %q, want %q", m.Package.EntryPoint, "main.zk")
	}
	if m.Dependencies == nil {
		t.Error("Dependencies should be initialized, not nil")
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, Filename)

	original := Default("roundtrip")
	original.Package.Author = "a. student"
	original.Package.Description = "a test project"
	original.Dependencies["other"] = "1.2.3"

	if err := Save(path, original); err != nil {
		t.Fatalf("Save errored: %v", err)
	}

	if !Exists(path) {
		t.Fatal("Exists should report true after Save")
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load errored: %v", err)
	}

	if loaded.Package != original.Package {
		t.Errorf("loaded.Package = %+v, want %+v", loaded.Package, original.Package)
	}
	if loaded.Dependencies["other"] != "1.2.3" {
		t.Errorf("loaded dependency %q, want %q", loaded.Dependencies["other"], "1.2.3")
	}
}

func TestExistsFalseForMissingFile(t *testing.T) {
	dir := t.TempDir()
	if Exists(filepath.Join(dir, Filename)) {
		t.Error("Exists should report false when no manifest has been written")
	}
}
