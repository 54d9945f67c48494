// Package config loads bamboofilter CLI configuration from the
// environment, an optional YAML file, and defaults, following the
// precedence and viper style of Sumatoshi-tech-codefang/internal/config.
// Command-line flags are not read here; the commands package applies
// explicitly set flags on top of the loaded Config.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/v-brkic/bamboo-filter"
)

const (
	configName   = ".bamboofilter"
	configType   = "yaml"
	envPrefix    = "BAMBOOFILTER"
	envKeySepOld = "."
	envKeySepNew = "_"
)

// Sentinel validation errors, following pkg/config's
// sentinel-errors.New-plus-%w-wrapping convention.
var (
	ErrInvalidCapacity = errors.New("capacity must be positive")
	ErrInvalidBucket   = errors.New("bucket size must be positive")
	ErrInvalidLoad     = errors.New("load factor must be in (0, 1]")
	ErrInvalidSegment  = errors.New("segment size must be positive and not exceed capacity")
	ErrUnknownHash     = errors.New("unknown hash function")
)

// Config mirrors the flags spec.md §6 calls informational, plus the
// ambient ingestion/reporting knobs SPEC_FULL.md §4.8 adds.
type Config struct {
	Capacity    uint64  `mapstructure:"capacity"`
	BucketSize  uint16  `mapstructure:"bucket_size"`
	LoadFactor  float64 `mapstructure:"load_factor"`
	MaxIter     uint32  `mapstructure:"max_iter"`
	SegmentSize uint64  `mapstructure:"segment_size"`
	Hash        string  `mapstructure:"hash"`

	Input       string `mapstructure:"input"`
	Kmer        int    `mapstructure:"kmer"`
	Samples     int    `mapstructure:"samples"`
	MetricsAddr string `mapstructure:"metrics_addr"`
}

// Load reads configuration from an optional file, environment variables
// (BAMBOOFILTER_*), and defaults, in viper's usual precedence (flags bound
// by the caller outrank all of these).
func Load(configPath string) (*Config, error) {
	v := viper.New()
	applyDefaults(v)

	v.SetConfigType(configType)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(envKeySepOld, envKeySepNew))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

func applyDefaults(v *viper.Viper) {
	v.SetDefault("capacity", 1024)
	v.SetDefault("bucket_size", 4)
	v.SetDefault("load_factor", 0.95)
	v.SetDefault("max_iter", 500)
	v.SetDefault("segment_size", 1)
	v.SetDefault("hash", "murmur")
	v.SetDefault("kmer", 21)
	v.SetDefault("samples", 1000)
}

// Validate checks field ranges independent of bamboo.Config.validate, so
// CLI users get a config-flavored error message instead of a
// *bamboo.ConstructionError for the same mistake.
func (c *Config) Validate() error {
	if c.Capacity == 0 {
		return ErrInvalidCapacity
	}
	if c.BucketSize == 0 {
		return ErrInvalidBucket
	}
	if c.LoadFactor <= 0 || c.LoadFactor > 1 {
		return ErrInvalidLoad
	}
	if c.SegmentSize == 0 || c.SegmentSize > c.Capacity {
		return ErrInvalidSegment
	}
	switch c.Hash {
	case "murmur", "xxhash":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownHash, c.Hash)
	}
	return nil
}

// HashFunc resolves the configured hash name to a bamboo.HashFunc.
func (c *Config) HashFunc() bamboo.HashFunc {
	if c.Hash == "xxhash" {
		return bamboo.XXHashDigest
	}
	return bamboo.MurmurDigest
}

// FilterConfig translates the CLI config into a bamboo.Config.
func (c *Config) FilterConfig() bamboo.Config {
	return bamboo.Config{
		InitialCapacity: c.Capacity,
		BucketSize:      c.BucketSize,
		LoadThreshold:   c.LoadFactor,
		MaxEvict:        c.MaxIter,
		SegmentSize:     c.SegmentSize,
		Hash:            c.HashFunc(),
	}
}
