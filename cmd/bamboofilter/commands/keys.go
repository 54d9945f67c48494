package commands

import (
	"fmt"
	"math/rand"
	"os"

	appconfig "github.com/v-brkic/bamboo-filter/internal/config"
	"github.com/v-brkic/bamboo-filter/internal/genome"
)

// gatherKeys produces the sample set plus an equal-sized miss set (keys
// guaranteed never inserted, used to measure the empirical false-positive
// rate). With --input set, samples are k-mers drawn from the given
// FASTA/plain-text file; otherwise both sets are synthetic random byte
// strings.
func gatherKeys(cfg *appconfig.Config, rng *rand.Rand) (keys, misses [][]byte, err error) {
	if cfg.Input == "" {
		return syntheticKeys(cfg.Samples, rng), syntheticKeys(cfg.Samples, rng), nil
	}

	f, err := os.Open(cfg.Input)
	if err != nil {
		return nil, nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	sequences, err := genome.ReadFASTA(f)
	if err != nil {
		if _, seekErr := f.Seek(0, 0); seekErr != nil {
			return nil, nil, fmt.Errorf("read input: %w", err)
		}
		seq, plainErr := genome.ReadPlainText(f)
		if plainErr != nil {
			return nil, nil, fmt.Errorf("read input: %w", plainErr)
		}
		sequences = []genome.Sequence{seq}
	}

	var all []byte
	for _, seq := range sequences {
		all = append(all, seq.Bases...)
	}
	combined := genome.Sequence{Bases: all}

	keys = genome.SampleKmers(combined, cfg.Kmer, cfg.Samples, rng)
	if len(keys) == 0 {
		return nil, nil, fmt.Errorf("input too short for k-mer length %d", cfg.Kmer)
	}
	misses = syntheticKeys(cfg.Samples, rng)
	return keys, misses, nil
}

func syntheticKeys(n int, rng *rand.Rand) [][]byte {
	out := make([][]byte, n)
	for i := range out {
		b := make([]byte, 16)
		rng.Read(b)
		out[i] = b
	}
	return out
}
