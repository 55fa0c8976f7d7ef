package experiment

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/samuelfneumann/treasurehunt/environment/treasurehunt"
)

func TestLoadConfigKeepsDefaults(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "config.json")
	data := `{"episodes": 25, "environment": {"width": 6, "max_steps": 50}}`
	if err := os.WriteFile(filename, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadConfig(filename)
	if err != nil {
		t.Fatal(err)
	}
	if c.Episodes != 25 || c.EnvConf.Width != 6 || c.EnvConf.MaxSteps != 50 {
		t.Errorf("file values not loaded: %+v", c)
	}
	if c.Seed != DefaultSeed || c.EnvConf.Height != treasurehunt.DefaultHeight ||
		c.Type != EpisodicExp {
		t.Errorf("defaults not kept: %+v", c)
	}
}

func TestConfigSaveLoad(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "config.json")
	c := DefaultConfig()
	c.Episodes = 3
	c.RenderEvery = 1
	c.EnvConf.Shaping = false

	if err := c.Save(filename); err != nil {
		t.Fatal(err)
	}
	loaded, err := LoadConfig(filename)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Episodes != 3 || loaded.RenderEvery != 1 ||
		loaded.EnvConf.Shaping || len(loaded.EnvConf.Walls) !=
		len(c.EnvConf.Walls) {
		t.Errorf("want %+v, have %+v", c, loaded)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadConfig(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("want error for missing file")
	}

	filename := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(filename, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(filename); err == nil {
		t.Error("want error for malformed file")
	}
}

func TestCreateExpStateCount(t *testing.T) {
	c := DefaultConfig()
	c.Episodes = 1
	c.EnvConf.Width = 6

	exp, env, q, err := c.CreateExp()
	if err != nil {
		t.Fatal(err)
	}
	if q.NumStates() != env.NumStates() {
		t.Errorf("want %d agent states, have %d", env.NumStates(),
			q.NumStates())
	}
	exp.SetOutput(io.Discard)
	if err := exp.Run(); err != nil {
		t.Fatal(err)
	}

	// An explicit state count must match the environment
	c.AgentConf.NumStates = treasurehunt.DefaultConfig().NumStates()
	exp, _, _, err = c.CreateExp()
	if err != nil {
		t.Fatal(err)
	}
	if err := exp.Run(); !errors.Is(err, ErrStateCountMismatch) {
		t.Errorf("want error wrapping ErrStateCountMismatch, have %v", err)
	}
}
