package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	appconfig "github.com/v-brkic/bamboo-filter/internal/config"
)

// resolveConfig loads env/file/defaults via viper, then overrides with any
// flag the user explicitly set on the command line — flags outrank
// everything else, matching the precedence SPEC_FULL.md §4.8 describes.
func resolveConfig(cmd *cobra.Command, f *flagSet) (*appconfig.Config, error) {
	cfg, err := appconfig.Load(f.configFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	changed := cmd.Flags().Changed
	if changed("capacity") {
		cfg.Capacity = f.capacity
	}
	if changed("bucketSize") {
		cfg.BucketSize = f.bucketSize
	}
	if changed("loadFactor") {
		cfg.LoadFactor = f.loadFactor
	}
	if changed("maxIter") {
		cfg.MaxIter = f.maxIter
	}
	if changed("segmentSize") {
		cfg.SegmentSize = f.segmentSize
	}
	if changed("hash") {
		cfg.Hash = f.hash
	}
	if changed("input") {
		cfg.Input = f.input
	}
	if changed("kmer") {
		cfg.Kmer = f.kmer
	}
	if changed("samples") {
		cfg.Samples = f.samples
	}
	if changed("metrics-addr") {
		cfg.MetricsAddr = f.metricsAddr
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
