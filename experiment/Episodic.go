package experiment

import (
	"fmt"
	"io"
	"os"

	"github.com/samuelfneumann/treasurehunt/agent"
	env "github.com/samuelfneumann/treasurehunt/environment"
	"github.com/samuelfneumann/treasurehunt/experiment/trackers"
	ts "github.com/samuelfneumann/treasurehunt/timestep"
	"github.com/samuelfneumann/treasurehunt/utils/progressbar"
)

var _ Experiment = (*Episodic)(nil)

// Episode describes a single completed episode
type Episode struct {
	Return  float64
	Length  int
	Success bool
}

// Episodic is an Experiment that runs an agent online for a fixed
// number of episodes. Each episode runs until the environment ends it,
// and the agent's exploration is decayed once after every episode.
type Episodic struct {
	env.Environment
	agent.Agent
	episodes    int
	renderEvery int
	trackers    []trackers.Tracker

	returns   []float64
	lengths   []int
	successes []int

	out      io.Writer
	renderer env.Renderer
	progress *progressbar.ManualProgressBar
}

// NewEpisodic creates and returns a new episodic experiment on a given
// environment with a given agent. The episodes parameter determines how
// many episodes Run runs. If renderEvery is positive, every renderEvery
// episodes the statistics of the episode and a rendering of the final
// environment state are written to the experiment's output, which is
// os.Stdout by default. The t parameter is a slice of trackers.Tracker
// which determine what data is saved.
func NewEpisodic(e env.Environment, a agent.Agent, episodes,
	renderEvery int, t ...trackers.Tracker) *Episodic {
	renderer, _ := e.(env.Renderer)
	return &Episodic{
		Environment: e,
		Agent:       a,
		episodes:    episodes,
		renderEvery: renderEvery,
		trackers:    t,
		out:         os.Stdout,
		renderer:    renderer,
	}
}

// SetOutput sets the writer which periodic renders are written to
func (o *Episodic) SetOutput(w io.Writer) {
	o.out = w
}

// SetRenderer sets how the environment is drawn in periodic renders.
// By default the environment's own text rendering is used, if it has
// one.
func (o *Episodic) SetRenderer(r env.Renderer) {
	o.renderer = r
}

// SetProgress sets a progress bar which is advanced after every episode
// run by Run
func (o *Episodic) SetProgress(p *progressbar.ManualProgressBar) {
	o.progress = p
}

// Register registers a trackers.Tracker with an Experiment so that data
// generated during the experiment can be tracked and saved
func (o *Episodic) Register(t trackers.Tracker) {
	o.trackers = append(o.trackers, t)
}

// Episodes returns the number of episodes Run runs
func (o *Episodic) Episodes() int {
	return o.episodes
}

// validate checks that the agent can learn in the environment
func (o *Episodic) validate() error {
	agentStates := o.Agent.NumStates()
	envStates := o.Environment.ObservationSpec().Size
	if agentStates != envStates {
		return fmt.Errorf("agent has %d states, environment has %d: %w",
			agentStates, envStates, ErrStateCountMismatch)
	}
	return nil
}

// Run runs the entire experiment for all episodes. Run fails before
// any episode is run if the agent and environment disagree on the
// number of states.
func (o *Episodic) Run() error {
	if err := o.validate(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	if o.progress != nil {
		defer o.progress.Close()
	}

	for ep := 1; ep <= o.episodes; ep++ {
		episode, err := o.runEpisode()
		if err != nil {
			return fmt.Errorf("run: episode %d: %w", ep, err)
		}

		// Episodes are counted over the lifetime of the experiment
		if n := len(o.returns); o.renderEvery > 0 && n%o.renderEvery == 0 {
			o.render(n, episode)
		}

		if o.progress != nil {
			o.progress.Increment()
			o.progress.Display()
		}
	}
	return nil
}

// RunEpisode runs a single episode of the experiment and records it
func (o *Episodic) RunEpisode() (Episode, error) {
	if err := o.validate(); err != nil {
		return Episode{}, fmt.Errorf("runEpisode: %w", err)
	}
	return o.runEpisode()
}

func (o *Episodic) runEpisode() (Episode, error) {
	step := o.Environment.Reset()
	o.track(step)

	var episode Episode
	for done := false; !done; {
		action, err := o.Agent.SelectAction(step.Observation)
		if err != nil {
			return Episode{}, err
		}

		var next ts.TimeStep
		next, done, err = o.Environment.Step(action)
		if err != nil {
			return Episode{}, err
		}
		o.track(next)

		if err := o.Agent.Update(ts.NewTransition(step, action, next)); err != nil {
			return Episode{}, err
		}

		step = next
		episode.Return += step.Reward
		episode.Length++
	}
	episode.Success = step.Success

	o.Agent.EndEpisode()
	o.record(episode)
	return episode, nil
}

// record appends an episode to the experiment's sequences
func (o *Episodic) record(episode Episode) {
	success := 0
	if episode.Success {
		success = 1
	}
	o.returns = append(o.returns, episode.Return)
	o.lengths = append(o.lengths, episode.Length)
	o.successes = append(o.successes, success)
}

// render writes the statistics of episode ep and the final state of the
// environment to the output
func (o *Episodic) render(ep int, episode Episode) {
	success := 0
	if episode.Success {
		success = 1
	}
	fmt.Fprintf(o.out, "\nEpisode %d | R=%.2f | steps=%d | success=%d | "+
		"eps=%.3f\n", ep, episode.Return, episode.Length, success,
		o.Agent.Epsilon())

	if o.renderer != nil {
		fmt.Fprintln(o.out, o.renderer.Render())
	}
}

// Returns returns the return of each episode run so far
func (o *Episodic) Returns() []float64 {
	out := make([]float64, len(o.returns))
	copy(out, o.returns)
	return out
}

// Lengths returns the number of steps of each episode run so far
func (o *Episodic) Lengths() []int {
	out := make([]int, len(o.lengths))
	copy(out, o.lengths)
	return out
}

// Successes returns 1 for each successful episode run so far and 0 for
// each other episode
func (o *Episodic) Successes() []int {
	out := make([]int, len(o.successes))
	copy(out, o.successes)
	return out
}

// Summary summarizes the episodes run so far
func (o *Episodic) Summary() Summary {
	return NewSummary(o.returns, o.lengths, o.successes, o.Agent.Epsilon())
}

// Save saves all the data cached by the Trackers to disk
func (o *Episodic) Save() error {
	for _, tracker := range o.trackers {
		if err := tracker.Save(); err != nil {
			return fmt.Errorf("save: %w", err)
		}
	}
	return nil
}

// track tracks the current timestep by caching its data in each tracker
func (o *Episodic) track(t ts.TimeStep) {
	for _, tracker := range o.trackers {
		tracker.Track(t)
	}
}
