package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/samuelfneumann/treasurehunt/experiment"
)

func TestBuildConfigPrecedence(t *testing.T) {
	dir := t.TempDir()
	config := filepath.Join(dir, "config.json")
	data := `{"episodes": 10, "render_every": 5, "seed": 1}`
	if err := os.WriteFile(config, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	envFile := filepath.Join(dir, "test.env")
	if err := os.WriteFile(envFile, []byte(envEpisodes+"=20\n"+envSeed+"=2\n"),
		0o644); err != nil {
		t.Fatal(err)
	}
	// godotenv never overrides variables which are already set
	t.Setenv(envEpisodes, "")
	os.Unsetenv(envEpisodes)
	t.Setenv(envSeed, "")
	os.Unsetenv(envSeed)

	cmd, opts := newTrainCommand()
	err := cmd.ParseFlags([]string{"--config", config, "--env-file", envFile,
		"--seed", "3"})
	if err != nil {
		t.Fatal(err)
	}

	c, err := buildConfig(cmd, opts)
	if err != nil {
		t.Fatal(err)
	}
	if c.RenderEvery != 5 {
		t.Errorf("want render interval 5 from the config file, have %d",
			c.RenderEvery)
	}
	if c.Episodes != 20 {
		t.Errorf("want 20 episodes from the environment, have %d", c.Episodes)
	}
	if c.Seed != 3 {
		t.Errorf("want seed 3 from flags, have %d", c.Seed)
	}
}

func TestBuildConfigErrors(t *testing.T) {
	cmd, opts := newTrainCommand()
	missing := filepath.Join(t.TempDir(), "missing.env")
	if err := cmd.ParseFlags([]string{"--env-file", missing}); err != nil {
		t.Fatal(err)
	}
	if _, err := buildConfig(cmd, opts); err == nil {
		t.Error("want error for explicitly requested missing env file")
	}

	t.Setenv(envRenderEvery, "often")
	cmd, opts = newTrainCommand()
	opts.envFile = missing
	if _, err := buildConfig(cmd, opts); err == nil {
		t.Error("want error for malformed environment variable")
	}
}

func TestTrain(t *testing.T) {
	out := t.TempDir()
	envFile := filepath.Join(out, "run.env")
	if err := os.WriteFile(envFile, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	cmd, _ := newTrainCommand()
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--episodes", "5", "--render-every", "5",
		"--color=false", "--out", out, "--chart", "--snapshot",
		"--env-file", envFile})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(stdout.String(), "Episode 5 | R=") {
		t.Errorf("render missing from output:\n%s", stdout.String())
	}
	if !strings.Contains(stdout.String(), "Greedy result: steps=") {
		t.Errorf("rollout missing from output:\n%s", stdout.String())
	}

	runs, err := filepath.Glob(filepath.Join(out, "*", "summary.json"))
	if err != nil || len(runs) != 1 {
		t.Fatalf("want one saved run, have %v (%v)", runs, err)
	}
	data, err := os.ReadFile(runs[0])
	if err != nil {
		t.Fatal(err)
	}
	var summary experiment.Summary
	if err := json.Unmarshal(data, &summary); err != nil {
		t.Fatal(err)
	}
	if summary.Episodes != 5 {
		t.Errorf("want 5 episodes in summary, have %d", summary.Episodes)
	}

	run := filepath.Dir(runs[0])
	for _, name := range []string{"returns.bin", "lengths.bin",
		"successes.bin", "config.json", "learning_curve.html",
		"learning_curve.png", "snapshot.png"} {
		if _, err := os.Stat(filepath.Join(run, name)); err != nil {
			t.Errorf("%v not saved: %v", name, err)
		}
	}
}
