package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()

	if err := ioutil.WriteFile(filepath.Join(dir, FileName), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %s", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "mc-config")
	if err != nil {
		t.Fatalf("failed to create temp dir: %s", err)
	}
	defer os.RemoveAll(dir)

	cfg, err := Load(filepath.Join(dir, "prog.m"))
	if err != nil {
		t.Fatalf("missing config file should not error: %s", err)
	}

	if cfg.OptLevel != -1 || cfg.EmitLL || cfg.EmitObj {
		t.Errorf("expected zero configuration, got %+v", cfg)
	}
}

func TestLoadConfig(t *testing.T) {
	dir, err := ioutil.TempDir("", "mc-config")
	if err != nil {
		t.Fatalf("failed to create temp dir: %s", err)
	}
	defer os.RemoveAll(dir)

	writeConfig(t, dir, "opt-level = 1\nemit-ll = true\n")

	cfg, err := Load(filepath.Join(dir, "prog.m"))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if cfg.OptLevel != 1 {
		t.Errorf("expected opt-level 1, got %d", cfg.OptLevel)
	}
	if !cfg.EmitLL {
		t.Errorf("expected emit-ll to be set")
	}
	if cfg.EmitObj {
		t.Errorf("emit-obj should default to false")
	}
}

func TestLoadMalformedConfig(t *testing.T) {
	dir, err := ioutil.TempDir("", "mc-config")
	if err != nil {
		t.Fatalf("failed to create temp dir: %s", err)
	}
	defer os.RemoveAll(dir)

	writeConfig(t, dir, "opt-level = [not toml")

	if _, err := Load(filepath.Join(dir, "prog.m")); err == nil {
		t.Errorf("expected an error for a malformed config file")
	}
}
