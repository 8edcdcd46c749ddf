package log

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigRules(t *testing.T) {
	cfg := &Config{
		DefaultLevel: "info",
		Filters: []Filter{
			{Loggers: []string{"render", "render.*"}, Level: "debug"},
		},
	}
	want := "debug:render,render.* info:*"
	if got := cfg.Rules(); got != want {
		t.Errorf("Rules() = %q, want %q", got, want)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.yml")
	content := "defaultLevel: warn\nfilters:\n  - loggers: [report]\n    level: debug\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.DefaultLevel != "warn" {
		t.Errorf("DefaultLevel = %q, want warn", cfg.DefaultLevel)
	}
	if len(cfg.Filters) != 1 || cfg.Filters[0].Level != "debug" {
		t.Errorf("unexpected filters: %+v", cfg.Filters)
	}
}
