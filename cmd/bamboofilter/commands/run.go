package commands

import (
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/v-brkic/bamboo-filter"
	"github.com/v-brkic/bamboo-filter/internal/bench"
	"github.com/v-brkic/bamboo-filter/internal/metrics"
	"github.com/v-brkic/bamboo-filter/internal/reporting"
)

func newRunCommand() *cobra.Command {
	f := &flagSet{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Insert a sample of keys into one filter and report the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, f)
			if err != nil {
				return err
			}

			filter, err := bamboo.New(cfg.FilterConfig())
			if err != nil {
				return fmt.Errorf("construct filter: %w", err)
			}
			slog.Info("filter constructed", "capacity", filter.Capacity(), "bucketSize", cfg.BucketSize, "hash", cfg.Hash)

			var collector *metrics.Collector
			if cfg.MetricsAddr != "" {
				collector = metrics.NewCollector()
				srv := &http.Server{Addr: cfg.MetricsAddr, Handler: collector.Handler()}
				go func() {
					if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
						fmt.Fprintf(cmd.ErrOrStderr(), "metrics server: %v\n", err)
					}
				}()
				defer srv.Close()
			}

			rng := rand.New(rand.NewSource(time.Now().UnixNano()))
			keys, misses, err := gatherKeys(cfg, rng)
			if err != nil {
				return err
			}

			result := bench.Run("run", filter, keys, misses)
			if collector != nil {
				collector.Observe(result.Stats)
			}
			slog.Info("run complete", "inserted", result.Inserted, "overflowed", result.Overflowed,
				"expansions", result.Stats.Expansions, "migrationDrops", result.Stats.MigrationDrops)

			reporting.PrintTable(cmd.OutOrStdout(), result)
			return nil
		},
	}
	f.register(cmd)
	return cmd
}
