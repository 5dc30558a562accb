package main

import (
	"errors"
	"log"
	"os/signal"
	"syscall"

	"github.com/plus3/contig/internal/stress"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const version = "0.1.0-dev"

func newRootCmd() *cobra.Command {
	var configFile string

	rootCmd := &cobra.Command{
		Use:   "array-stress",
		Short: "Randomized differential stress test for the contig array container",
		Long: `array-stress drives a seeded random workload against array.Array and a
plain slice model, checking after every operation that the container's
count, capacity and contents agree with the model.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default ./array-stress.yaml)")

	rootCmd.AddCommand(newRunCmd(&configFile))
	return rootCmd
}

func newRunCmd(configFile *string) *cobra.Command {
	var output string

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the stress workload and print a report",
		Example: `  # Ten thousand operations with a fixed seed
  array-stress run --ops 10000 --seed 7

  # Run for thirty seconds and print YAML
  array-stress run --ops 0 --duration 30s --output yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(viper.New(), *configFile, cmd.Flags())
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			log.Printf("Starting array stress run (seed %d, ops %d, duration %s)...", cfg.Seed, cfg.Ops, cfg.Duration)
			report, runErr := stress.Run(ctx, cfg)
			if report == nil {
				return runErr
			}
			log.Printf("Run finished after %d steps.", report.Steps)

			if err := report.Render(cmd.OutOrStdout(), output); err != nil {
				return errors.Join(runErr, err)
			}
			return runErr
		},
	}

	defaults := stress.DefaultConfig()
	flags := runCmd.Flags()
	flags.Int("ops", defaults.Ops, "number of operations to run (0 runs until --duration elapses)")
	flags.Int64("seed", defaults.Seed, "random seed")
	flags.Int64("max-value", defaults.MaxValue, "values are drawn from [0, max-value)")
	flags.Int("max-batch", defaults.MaxBatch, "largest bulk insert and resize step")
	flags.Duration("duration", defaults.Duration, "stop after this long (0 means no limit)")
	flags.StringVarP(&output, "output", "o", "text", "report format (text, json, yaml)")

	return runCmd
}
