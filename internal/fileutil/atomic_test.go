package fileutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/idelchi/goseal/internal/fileutil"
)

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "out.bin")

	size, err := fileutil.WriteAtomic(path, []byte("payload"))
	if err != nil {
		t.Fatalf("writing: %v", err)
	}

	if size != int64(len("payload")) {
		t.Errorf("size = %d, want %d", size, len("payload"))
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading back: %v", err)
	}

	if string(got) != "payload" {
		t.Errorf("content = %q", got)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}

	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("permissions = %o, want 600", perm)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}

	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want only the output file", len(entries))
	}
}

func TestWriteAtomicOverwrites(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "out.bin")

	if err := os.WriteFile(path, []byte("old"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := fileutil.WriteAtomic(path, []byte("new")); err != nil {
		t.Fatalf("writing: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if string(got) != "new" {
		t.Errorf("content = %q, want %q", got, "new")
	}
}

func TestWriteAtomicMissingDirectory(t *testing.T) {
	t.Parallel()

	if _, err := fileutil.WriteAtomic(filepath.Join(t.TempDir(), "nope", "out.bin"), []byte("x")); err == nil {
		t.Error("expected an error for a missing directory")
	}
}
