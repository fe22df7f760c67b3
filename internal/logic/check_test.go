package logic_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/idelchi/goseal/internal/config"
	"github.com/idelchi/goseal/internal/logic"
)

func TestRunCheck(t *testing.T) {
	dir := t.TempDir()

	if err := os.WriteFile(filepath.Join(dir, "a.enc"), []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}

	t.Cleanup(func() { _ = os.Chdir(old) })

	cfg := &config.Config{
		Quiet:   true,
		Include: []string{"*.enc"},
		Files:   []string{"."},
	}

	if err := logic.RunCheck(cfg); err != nil {
		t.Errorf("RunCheck with a matching pattern: %v", err)
	}

	cfg.Include = []string{"*.enc", "*.nothing"}

	if err := logic.RunCheck(cfg); err == nil {
		t.Error("RunCheck should fail when a pattern matches nothing")
	}

	cfg.Include = nil

	if err := logic.RunCheck(cfg); err == nil {
		t.Error("RunCheck should fail when there are no patterns at all")
	}
}
