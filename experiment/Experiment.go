// Package experiment implements functionality for running an experiment
package experiment

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/samuelfneumann/treasurehunt/agent"
	"github.com/samuelfneumann/treasurehunt/agent/tabular/qlearning"
	"github.com/samuelfneumann/treasurehunt/environment/treasurehunt"
	"github.com/samuelfneumann/treasurehunt/experiment/trackers"
	ts "github.com/samuelfneumann/treasurehunt/timestep"
)

// ErrStateCountMismatch is returned when an agent is asked to learn in an
// environment with a different number of states than the agent was
// constructed for
var ErrStateCountMismatch = errors.New("agent and environment state " +
	"counts differ")

// Default experiment settings
const (
	DefaultEpisodes = 1000
	DefaultSeed     = 42
)

// Interface Experiment outlines structs that can run experiments.
// Experiments will track environment TimeSteps, caching each TimeStep
// in RAM to be later saved to disk. The Save() function
// will then take all cached data and save it to disk. This is usually
// performed after an experiment has been run. The Run() method will
// run all episodes and the RunEpisode() method a single episode.
//
// In order to save data, Experiments use Trackers. Trackers determine
// which data generated during the experiment is saved. Experiments will
// send each TimeStep to Trackers using the Tracker's Track() method.
// New Trackers can be registered with an Experiment through the
// consturctor or through an Experiment's Register() function.
type Experiment interface {
	Run() error
	RunEpisode() (Episode, error)

	// Tracks current timestep by sending it to Trackers
	track(ts.TimeStep)

	// Save all tracked data to disk
	Save() error

	// Adds a new trackers.Tracker to the (possibly already running)
	// experiment. Useful if you want to track data only after a
	// specified event.
	Register(t trackers.Tracker)

	// Summary aggregates the episodes run so far
	Summary() Summary
}

type Type string

const (
	EpisodicExp Type = "EpisodicExperiment"
)

// Config represents a configuration of an experiment.
type Config struct {
	Type        `json:"type"`
	Episodes    int                 `json:"episodes"`
	RenderEvery int                 `json:"render_every"`
	Seed        uint64              `json:"seed"`
	EnvConf     treasurehunt.Config `json:"environment"`
	AgentConf   qlearning.Config    `json:"agent"`
}

// DefaultConfig returns the Config of an episodic experiment of the
// default agent on the default TreasureHunt. The agent's state count is
// left at zero so that it is taken from the environment.
func DefaultConfig() Config {
	return Config{
		Type:      EpisodicExp,
		Episodes:  DefaultEpisodes,
		Seed:      DefaultSeed,
		EnvConf:   treasurehunt.DefaultConfig(),
		AgentConf: qlearning.DefaultConfig(0),
	}
}

// LoadConfig reads a JSON Config from filename. Fields missing from the
// file keep their values from DefaultConfig.
func LoadConfig(filename string) (Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, fmt.Errorf("loadConfig: %w", err)
	}

	c := DefaultConfig()
	if err := json.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("loadConfig: could not decode %v: %w",
			filename, err)
	}
	return c, nil
}

// Save writes the Config to filename as indented JSON
func (c Config) Save(filename string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("save: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	return nil
}

// Validate returns an error describing whether or not the configuration
// is valid. The agent configuration is validated when the agent is
// created, after missing sizes have been filled in from the
// environment.
func (c Config) Validate() error {
	if c.Type != EpisodicExp {
		return fmt.Errorf("validate: no such experiment type %q", c.Type)
	}
	if c.Episodes < 0 {
		return fmt.Errorf("validate: episodes must be non-negative, "+
			"have %d", c.Episodes)
	}
	if c.RenderEvery < 0 {
		return fmt.Errorf("validate: render interval must be non-negative, "+
			"have %d", c.RenderEvery)
	}
	if err := c.EnvConf.Validate(); err != nil {
		return fmt.Errorf("validate: %w", err)
	}
	return nil
}

// CreateExp creates the experiment described by the Config along with
// its environment and agent. The agent is seeded with c.Seed.
func (c Config) CreateExp(t ...trackers.Tracker) (*Episodic,
	*treasurehunt.TreasureHunt, *qlearning.QLearning, error) {
	if err := c.Validate(); err != nil {
		return nil, nil, nil, fmt.Errorf("createExp: %w", err)
	}

	env, _, err := c.EnvConf.Create()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("createExp: could not create "+
			"environment: %w", err)
	}

	var agentConf agent.Config = c.AgentConf
	a, err := agentConf.CreateAgent(env, c.Seed)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("createExp: could not create "+
			"agent: %w", err)
	}
	q, ok := a.(*qlearning.QLearning)
	if !ok || !agentConf.ValidAgent(a) {
		panic(fmt.Sprintf("createExp: agent config created %T", a))
	}

	return NewEpisodic(env, q, c.Episodes, c.RenderEvery, t...), env, q, nil
}
