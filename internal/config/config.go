// Package config loads the YAML configuration that parameterizes the
// morphological engine: which dictionary resources to load, the sentence
// mark set, the terminal-mark subset that selects the EF-only POS filter,
// and the EC/EF promotion toggles.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds every tunable the engine reads at construction time.
// Default returns the usable defaults: promotion toggles and sense-mark
// filtering on, the default sentence marks, and no dictionary resources
// (callers of NewEngine then pass pre-built indices directly). In the zero
// value the three boolean toggles are off; its empty mark lists fall back
// to the default marks inside the engine.
type Config struct {
	// EomiPaths and JosaPaths are dictionary TSV files to load, in order.
	EomiPaths []string `yaml:"eomi_paths"`
	JosaPaths []string `yaml:"josa_paths"`

	// SentenceMarks are the punctuation runes stripped from a trailing
	// eojeol before analysis. TerminalMarks is the subset of those that
	// also selects the EF-only ending POS filter (§4.H); a mark in
	// SentenceMarks but not TerminalMarks (the comma) is stripped and gives
	// endings the same filter as no mark at all. Particles are narrowed to
	// JX by any stripped mark, the comma included.
	SentenceMarks []string `yaml:"sentence_marks"`
	TerminalMarks []string `yaml:"terminal_marks"`

	// ExpandECToEF lets EC entries stand in, relabeled EF, when a split
	// under the EF-only filter (a terminal mark) has no direct hit; and
	// vice versa for ExpandEFToEC under a filter with EC but not EF. Both
	// default to true, matching the dictionary convention that most
	// sentence-final and connective endings overlap.
	ExpandECToEF bool `yaml:"expand_ec_to_ef"`
	ExpandEFToEC bool `yaml:"expand_ef_to_ec"`

	// SenseMarkEnabled toggles whether the ending POS filter narrows by
	// sentence mark at all. When false, every ending POS (EC, EF, EP,
	// ETM, ETN) is accepted regardless of mark.
	SenseMarkEnabled bool `yaml:"sense_mark_enabled"`
}

// Default returns the engine's built-in defaults.
func Default() Config {
	return Config{
		SentenceMarks:    []string{",", ".", "!", "?"},
		TerminalMarks:    []string{".", "!", "?"},
		ExpandECToEF:     true,
		ExpandEFToEC:     true,
		SenseMarkEnabled: true,
	}
}

// Load reads and parses a YAML configuration file at path, filling in
// Default() for any field the file omits.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if len(cfg.SentenceMarks) == 0 {
		cfg.SentenceMarks = Default().SentenceMarks
	}
	if len(cfg.TerminalMarks) == 0 {
		cfg.TerminalMarks = Default().TerminalMarks
	}
	return cfg, nil
}
