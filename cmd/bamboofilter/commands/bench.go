package commands

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/v-brkic/bamboo-filter"
	"github.com/v-brkic/bamboo-filter/internal/bench"
	"github.com/v-brkic/bamboo-filter/internal/reporting"
)

// loadFactorSweep is the fixed set of thresholds compared in one bench run;
// each gets its own freshly constructed filter so runs don't share state.
var loadFactorSweep = []float64{0.5, 0.75, 0.9, 0.95, 0.99}

func newBenchCommand() *cobra.Command {
	f := &flagSet{}
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Compare insert/lookup timing across a sweep of expansion thresholds",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, f)
			if err != nil {
				return err
			}

			runID := uuid.New().String()
			slog.Info("bench sweep starting", "runID", runID, "thresholds", loadFactorSweep)
			rng := rand.New(rand.NewSource(time.Now().UnixNano()))

			keys, misses, err := gatherKeys(cfg, rng)
			if err != nil {
				return err
			}

			results := make([]bench.Result, 0, len(loadFactorSweep))
			for _, lf := range loadFactorSweep {
				fc := cfg.FilterConfig()
				fc.LoadThreshold = lf

				filter, err := bamboo.New(fc)
				if err != nil {
					return fmt.Errorf("construct filter (loadFactor=%.2f): %w", lf, err)
				}

				label := fmt.Sprintf("%s loadFactor=%.2f", runID[:8], lf)
				results = append(results, bench.Run(label, filter, keys, misses))
			}

			reporting.PrintTable(cmd.OutOrStdout(), results...)
			return nil
		},
	}
	f.register(cmd)
	return cmd
}
