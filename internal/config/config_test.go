package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if len(cfg.SentenceMarks) == 0 {
		t.Fatal("Default() should set SentenceMarks")
	}
	if !cfg.ExpandECToEF || !cfg.ExpandEFToEC {
		t.Fatal("Default() should enable both promotion toggles")
	}
	if len(cfg.TerminalMarks) == 0 {
		t.Fatal("Default() should set TerminalMarks")
	}
	if !cfg.SenseMarkEnabled {
		t.Fatal("Default() should enable sense-mark filtering")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := "eomi_paths:\n  - dict/eomi.tsv\nexpand_ef_to_ec: false\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.EomiPaths) != 1 || cfg.EomiPaths[0] != "dict/eomi.tsv" {
		t.Errorf("EomiPaths = %v", cfg.EomiPaths)
	}
	if cfg.ExpandEFToEC {
		t.Error("expand_ef_to_ec: false should have been honored")
	}
	if !cfg.ExpandECToEF {
		t.Error("expand_ec_to_ef should keep its default when the file omits it")
	}
	if len(cfg.SentenceMarks) == 0 {
		t.Error("SentenceMarks should keep its default when the file omits it")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}
