package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/samuelfneumann/treasurehunt/examples"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "treasurehunt",
		Short: "Train tabular Q-learning agents to hunt for treasure in a gridworld",
	}

	trainCmd, _ := newTrainCommand()
	rootCmd.AddCommand(trainCmd, newDemoCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newDemoCommand() *cobra.Command {
	var colors bool
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Train briefly on the default task and play out the greedy policy",
		RunE: func(cmd *cobra.Command, args []string) error {
			return examples.TreasureHunt(cmd.OutOrStdout(), colors)
		},
	}
	cmd.Flags().BoolVar(&colors, "color", true, "colour the grid")
	return cmd
}

// loadEnvFile loads environment variables from filename. A missing file
// is only an error if it was asked for explicitly.
func loadEnvFile(filename string, explicit bool) error {
	err := godotenv.Load(filename)
	if err == nil || (!explicit && errors.Is(err, os.ErrNotExist)) {
		return nil
	}
	return fmt.Errorf("could not load %v: %w", filename, err)
}
