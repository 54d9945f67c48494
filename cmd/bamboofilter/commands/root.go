// Package commands builds the bamboofilter cobra command tree, following
// the shape of Sumatoshi-tech-codefang/cmd/codefang/commands.
package commands

import (
	"github.com/spf13/cobra"
)

// flagSet carries the §6-named construction flags plus the ambient
// ingestion flags SPEC_FULL.md §4.8 adds. Each subcommand binds its own
// copy so "run" and "bench" don't share mutable package state.
type flagSet struct {
	configFile  string
	capacity    uint64
	bucketSize  uint16
	loadFactor  float64
	maxIter     uint32
	segmentSize uint64
	hash        string
	input       string
	kmer        int
	samples     int
	metricsAddr string
}

func (f *flagSet) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.configFile, "config", "", "path to a YAML config file")
	flags.Uint64Var(&f.capacity, "capacity", 1024, "initial number of buckets (C0)")
	flags.Uint16Var(&f.bucketSize, "bucketSize", 4, "fingerprint slots per bucket (B)")
	flags.Float64Var(&f.loadFactor, "loadFactor", 0.95, "expansion trigger threshold, in (0,1]")
	flags.Uint32Var(&f.maxIter, "maxIter", 500, "max cuckoo eviction chain depth")
	flags.Uint64Var(&f.segmentSize, "segmentSize", 1, "buckets drained per insert during migration")
	flags.StringVar(&f.hash, "hash", "murmur", "digest function: murmur or xxhash")
	flags.StringVar(&f.input, "input", "", "FASTA or plain-text file to read keys from; omit for synthetic random keys")
	flags.IntVar(&f.kmer, "kmer", 21, "k-mer length sampled from the input sequence")
	flags.IntVar(&f.samples, "samples", 1000, "number of keys to insert")
	flags.StringVar(&f.metricsAddr, "metrics-addr", "", "if set, serve Prometheus /metrics on this address")
}

// NewRootCommand builds the bamboofilter root command and its subcommands.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "bamboofilter",
		Short: "Drive a Bamboo-style cuckoo filter over genome k-mers",
	}

	root.AddCommand(newRunCommand())
	root.AddCommand(newBenchCommand())

	return root
}
