package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/demetriusdemiurge/placer/internal/engine"
	"github.com/demetriusdemiurge/placer/internal/history"
	"github.com/demetriusdemiurge/placer/internal/model"
)

func newSolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Run a solver against a design",
	}
	cmd.AddCommand(newSolveSequentialCmd())
	cmd.AddCommand(newSolveGACmd())
	return cmd
}

func loadDesign(path string) (model.Design, error) {
	if path == "" {
		return model.DemoDesign(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Design{}, fmt.Errorf("read design: %w", err)
	}
	var d model.Design
	if err := json.Unmarshal(data, &d); err != nil {
		return model.Design{}, fmt.Errorf("decode design: %w", err)
	}
	return d, nil
}

func recordHistory(d model.Design, solver string, metrics model.Metrics, elapsed time.Duration, skip bool) {
	if skip {
		return
	}
	_, err := history.AppendToDefault(history.Entry{
		DesignID: d.ID,
		Solver:   solver,
		RanAt:    time.Now(),
		Metrics:  metrics,
		Duration: elapsed,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not record run history: %v\n", err)
	}
}

func writeResult(cmd *cobra.Command, out string, result model.Result) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	if out == "" {
		_, err = cmd.OutOrStdout().Write(append(data, '\n'))
		return err
	}
	return os.WriteFile(out, data, 0644)
}

func newSolveSequentialCmd() *cobra.Command {
	var designPath, out string
	var nx, ny int
	var wPair, wLongest float64
	var noHistory bool

	cmd := &cobra.Command{
		Use:   "sequential",
		Short: "Run the deterministic greedy placer",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := loadDesign(designPath)
			if err != nil {
				return err
			}
			opts := engine.SequentialOptions{Nx: nx, Ny: ny, WPair: wPair, WLongest: wLongest}

			start := time.Now()
			result, err := engine.SolveSequential(d, opts)
			if err != nil {
				return fmt.Errorf("sequential solve: %w", err)
			}
			recordHistory(d, "sequential", result.Metrics, time.Since(start), noHistory)
			return writeResult(cmd, out, result)
		},
	}

	defaults := engine.DefaultSequentialOptions()
	cmd.Flags().StringVar(&designPath, "design", "", "path to a design JSON file (defaults to the built-in demo)")
	cmd.Flags().StringVar(&out, "out", "", "write the result to a file instead of stdout")
	cmd.Flags().IntVar(&nx, "nx", defaults.Nx, "grid columns when no field is supplied")
	cmd.Flags().IntVar(&ny, "ny", defaults.Ny, "grid rows when no field is supplied")
	cmd.Flags().Float64Var(&wPair, "w-pair", defaults.WPair, "pair-sum weight")
	cmd.Flags().Float64Var(&wLongest, "w-longest", defaults.WLongest, "longest-interconnect weight")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "do not record this run in the history log")
	return cmd
}

func newSolveGACmd() *cobra.Command {
	var designPath, out string
	var nx, ny, islands, migrationInterval int
	var popSize, generations, elite int
	var mutationRate, wPair, wLongest float64
	var seed int64
	var noHistory bool

	cmd := &cobra.Command{
		Use:   "ga",
		Short: "Run the island-model genetic algorithm",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := loadDesign(designPath)
			if err != nil {
				return err
			}
			opts := engine.GAOptions{
				Nx: nx, Ny: ny, Islands: islands, MigrationInterval: migrationInterval,
				GAConfig: engine.GAConfig{
					PopSize: popSize, Generations: generations, MutationRate: mutationRate,
					Elite: elite, Seed: seed, WPair: wPair, WLongest: wLongest,
				},
			}

			start := time.Now()
			result, err := engine.SolveGA(context.Background(), d, opts)
			if err != nil {
				return fmt.Errorf("GA solve: %w", err)
			}
			recordHistory(d, "ga", result.Metrics, time.Since(start), noHistory)
			return writeResult(cmd, out, result)
		},
	}

	defaults := engine.DefaultGAOptions()
	cmd.Flags().StringVar(&designPath, "design", "", "path to a design JSON file (defaults to the built-in demo)")
	cmd.Flags().StringVar(&out, "out", "", "write the result to a file instead of stdout")
	cmd.Flags().IntVar(&nx, "nx", defaults.Nx, "grid columns when no field is supplied")
	cmd.Flags().IntVar(&ny, "ny", defaults.Ny, "grid rows when no field is supplied")
	cmd.Flags().IntVar(&islands, "islands", defaults.Islands, "number of parallel islands")
	cmd.Flags().IntVar(&migrationInterval, "migration-interval", defaults.MigrationInterval, "generations between migrations")
	cmd.Flags().IntVar(&popSize, "pop-size", defaults.PopSize, "per-island population size")
	cmd.Flags().IntVar(&generations, "generations", defaults.Generations, "generations per island")
	cmd.Flags().IntVar(&elite, "elite", defaults.Elite, "elite individuals carried over each generation")
	cmd.Flags().Float64Var(&mutationRate, "mutation-rate", defaults.MutationRate, "per-child swap mutation probability")
	cmd.Flags().Float64Var(&wPair, "w-pair", defaults.WPair, "pair-sum weight")
	cmd.Flags().Float64Var(&wLongest, "w-longest", defaults.WLongest, "longest-interconnect weight")
	cmd.Flags().Int64Var(&seed, "seed", defaults.Seed, "base RNG seed (island i uses seed + 100*i)")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "do not record this run in the history log")
	return cmd
}
