package fileutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/harness/yrm/util/common/errors"
)

func TestWriteAndReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", ".yrmrc")

	if err := WriteFile(path, []byte("[foo]\n"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if !Exists(path) {
		t.Fatal("expected file to exist after WriteFile")
	}

	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(got) != "[foo]\n" {
		t.Errorf("ReadFile() = %q", got)
	}
}

func TestReadFileErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name   string
		path   string
		target interface{}
	}{
		{name: "empty path", path: "", target: new(*errors.ValidationError)},
		{name: "directory", path: dir, target: new(*errors.ValidationError)},
		{name: "missing", path: filepath.Join(dir, "missing"), target: new(*errors.FileError)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadFile(tt.path)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !errors.As(err, tt.target) {
				t.Errorf("unexpected error type %T: %v", err, err)
			}
		})
	}
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	if !Exists(dir) {
		t.Error("expected temp dir to exist")
	}
	missing := filepath.Join(dir, "nope")
	if Exists(missing) {
		t.Error("missing path reported as existing")
	}
	if err := os.WriteFile(missing, nil, 0644); err != nil {
		t.Fatal(err)
	}
	if !Exists(missing) {
		t.Error("expected file to exist")
	}
}
