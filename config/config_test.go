package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/chrismerck/struct-lint/analyze"
	"github.com/chrismerck/struct-lint/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	if cfg.Pattern != analyze.DefaultPatternExpr {
		t.Errorf("Pattern = %q", cfg.Pattern)
	}
	if len(cfg.Extensions) != 2 || cfg.Extensions[0] != ".o" || cfg.Extensions[1] != ".elf" {
		t.Errorf("Extensions = %v", cfg.Extensions)
	}
	if !cfg.Alignment() || !cfg.Packed() {
		t.Error("checks should default to enabled")
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	body := `
pattern: "_wire_t$"
extensions: [".o", ".obj", ".elf"]
packed_check: false
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Pattern != "_wire_t$" {
		t.Errorf("Pattern = %q", cfg.Pattern)
	}
	if len(cfg.Extensions) != 3 {
		t.Errorf("Extensions = %v", cfg.Extensions)
	}
	if cfg.Packed() {
		t.Error("packed_check: false should disable the packed check")
	}
	if !cfg.Alignment() {
		t.Error("alignment check should remain enabled when unset")
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	if err := os.WriteFile(path, []byte("alignment_check: false\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Pattern != analyze.DefaultPatternExpr {
		t.Errorf("Pattern = %q, want default", cfg.Pattern)
	}
	if len(cfg.Extensions) != 2 {
		t.Errorf("Extensions = %v, want defaults", cfg.Extensions)
	}
	if cfg.Alignment() {
		t.Error("alignment_check: false should disable the alignment check")
	}
}

func TestLoad_Missing(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg.Pattern != analyze.DefaultPatternExpr {
		t.Errorf("Pattern = %q, want default", cfg.Pattern)
	}
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	if err := os.WriteFile(path, []byte("pattern: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := config.Load(path); err == nil {
		t.Error("expected error for invalid YAML")
	}
}
