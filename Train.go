package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/samuelfneumann/treasurehunt/experiment"
	"github.com/samuelfneumann/treasurehunt/experiment/trackers"
	"github.com/samuelfneumann/treasurehunt/render"
	"github.com/samuelfneumann/treasurehunt/utils/progressbar"
)

// Environment variables which override the configuration file
const (
	envEpisodes    = "TREASUREHUNT_EPISODES"
	envSeed        = "TREASUREHUNT_SEED"
	envRenderEvery = "TREASUREHUNT_RENDER_EVERY"
)

const progressWidth = 40

type trainOptions struct {
	config      string
	envFile     string
	episodes    int
	renderEvery int
	seed        uint64
	out         string
	chart       bool
	snapshot    bool
	color       bool
	progress    bool
	rollout     int
	window      int
}

func newTrainCommand() (*cobra.Command, *trainOptions) {
	opts := &trainOptions{}
	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train a Q-learning agent and report a summary of training",
		Long: "Train a Q-learning agent on a TreasureHunt. Settings are " +
			"read from the JSON file given by --config, then from the " +
			"environment (optionally loaded from a .env file), then from " +
			"flags, each overriding the last.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return train(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.config, "config", "", "JSON experiment configuration")
	f.StringVar(&opts.envFile, "env-file", ".env", "file of environment "+
		"variables to load")
	f.IntVar(&opts.episodes, "episodes", experiment.DefaultEpisodes,
		"number of training episodes")
	f.IntVar(&opts.renderEvery, "render-every", 0, "render every n-th "+
		"episode, 0 disables rendering")
	f.Uint64Var(&opts.seed, "seed", experiment.DefaultSeed, "agent seed")
	f.StringVar(&opts.out, "out", "", "directory to save run data to, "+
		"nothing is saved if empty")
	f.BoolVar(&opts.chart, "chart", false, "save learning curves, "+
		"requires --out")
	f.BoolVar(&opts.snapshot, "snapshot", false, "save an image of the "+
		"grid and learned values after the rollout, requires --out")
	f.BoolVar(&opts.color, "color", true, "colour rendered grids")
	f.BoolVar(&opts.progress, "progress", false, "show a progress bar")
	f.IntVar(&opts.rollout, "rollout", experiment.DefaultRolloutSteps,
		"step cap of the greedy rollout after training, 0 disables it")
	f.IntVar(&opts.window, "window", render.DefaultWindow, "moving "+
		"average window of learning curves")

	return cmd, opts
}

// buildConfig layers the configuration file, environment variables and
// flags
func buildConfig(cmd *cobra.Command, opts *trainOptions) (experiment.Config,
	error) {
	c := experiment.DefaultConfig()
	if opts.config != "" {
		var err error
		if c, err = experiment.LoadConfig(opts.config); err != nil {
			return c, err
		}
	}

	if err := loadEnvFile(opts.envFile, cmd.Flags().Changed("env-file")); err != nil {
		return c, err
	}
	if err := lookupInt(envEpisodes, &c.Episodes); err != nil {
		return c, err
	}
	if err := lookupInt(envRenderEvery, &c.RenderEvery); err != nil {
		return c, err
	}
	if v, ok := os.LookupEnv(envSeed); ok {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return c, fmt.Errorf("%v: %w", envSeed, err)
		}
		c.Seed = seed
	}

	flags := cmd.Flags()
	if flags.Changed("episodes") {
		c.Episodes = opts.episodes
	}
	if flags.Changed("render-every") {
		c.RenderEvery = opts.renderEvery
	}
	if flags.Changed("seed") {
		c.Seed = opts.seed
	}

	return c, c.Validate()
}

func lookupInt(key string, dst *int) error {
	v, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%v: %w", key, err)
	}
	*dst = i
	return nil
}

func train(cmd *cobra.Command, opts *trainOptions) error {
	if opts.out == "" && (opts.chart || opts.snapshot) {
		return fmt.Errorf("--chart and --snapshot require --out")
	}

	c, err := buildConfig(cmd, opts)
	if err != nil {
		return err
	}

	id := uuid.New()
	logger := log.New(cmd.ErrOrStderr(), fmt.Sprintf("[%v] ", id.String()[:8]),
		log.LstdFlags)

	dir := ""
	if opts.out != "" {
		dir = filepath.Join(opts.out, id.String())
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	path := func(name string) string { return filepath.Join(dir, name) }

	var ts []trackers.Tracker
	if dir != "" {
		ts = append(ts,
			trackers.NewReturn(path("returns.bin")),
			trackers.NewEpisodeLength(path("lengths.bin")),
			trackers.NewSuccess(path("successes.bin")),
		)
	}

	e, env, q, err := c.CreateExp(ts...)
	if err != nil {
		return err
	}
	e.SetOutput(cmd.OutOrStdout())
	e.SetRenderer(render.NewConsole(env, opts.color))
	if opts.progress {
		e.SetProgress(progressbar.NewManualProgressBar(cmd.ErrOrStderr(),
			progressWidth, c.Episodes))
	}

	logger.Printf("training %v for %d episodes with seed %d",
		c.AgentConf.Type(), c.Episodes, c.Seed)
	if err := e.Run(); err != nil {
		return err
	}

	summary := e.Summary()
	logger.Println(summary)
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))

	if opts.rollout > 0 {
		result, err := experiment.Rollout(env, q.TargetPolicy(), opts.rollout)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Greedy result: steps=%d, "+
			"return=%.2f, success=%v\n", result.Steps, result.Return,
			result.Success)
	}

	if dir == "" {
		return nil
	}

	if err := e.Save(); err != nil {
		return err
	}
	if err := c.Save(path("config.json")); err != nil {
		return err
	}
	if err := os.WriteFile(path("summary.json"), data, 0o644); err != nil {
		return err
	}

	if opts.chart {
		if err := saveCharts(path, e, opts.window); err != nil {
			return err
		}
	}
	if opts.snapshot {
		err := render.SaveSnapshot(path("snapshot.png"), env, q.Values(),
			render.DefaultCellSize)
		if err != nil {
			return err
		}
	}

	logger.Printf("saved run data to %v", dir)
	return nil
}

func saveCharts(path func(string) string, e *experiment.Episodic,
	window int) error {
	f, err := os.Create(path("learning_curve.html"))
	if err != nil {
		return err
	}
	defer f.Close()

	if err := render.LearningCurve(f, e.Returns(), e.Successes(),
		window); err != nil {
		return err
	}
	return render.LearningCurvePNG(path("learning_curve.png"), e.Returns(),
		window)
}
