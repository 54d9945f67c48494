// Package genome provides the external callers spec.md treats as out of
// scope for the core filter: FASTA/plain-text readers and a random k-mer
// sampler that turn genomic data into the opaque []byte keys the filter
// consumes. Nothing here imports the bamboo package.
package genome

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"math/rand"
)

// ErrEmptyInput is returned when a reader yields no sequence data at all.
var ErrEmptyInput = errors.New("genome: no sequence data found")

// Sequence is a single contiguous run of bases, upper-cased on read.
type Sequence struct {
	Name  string
	Bases []byte
}

// ReadFASTA parses a (possibly multi-record) FASTA stream: a ">"-prefixed
// header line starts each record, followed by wrapped sequence lines
// concatenated until the next header or EOF.
func ReadFASTA(r io.Reader) ([]Sequence, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var sequences []Sequence
	var cur *Sequence

	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if cur != nil {
				sequences = append(sequences, *cur)
			}
			cur = &Sequence{Name: string(bytes.TrimSpace(line[1:]))}
			continue
		}
		if cur == nil {
			// Sequence data with no header: treat as a single anonymous record.
			cur = &Sequence{}
		}
		cur.Bases = append(cur.Bases, bytes.ToUpper(line)...)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if cur != nil {
		sequences = append(sequences, *cur)
	}
	if len(sequences) == 0 {
		return nil, ErrEmptyInput
	}
	return sequences, nil
}

// ReadPlainText treats the entire stream as one sequence, stripping
// whitespace and newlines.
func ReadPlainText(r io.Reader) (Sequence, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var bases []byte
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		bases = append(bases, bytes.ToUpper(line)...)
	}
	if err := scanner.Err(); err != nil {
		return Sequence{}, err
	}
	if len(bases) == 0 {
		return Sequence{}, ErrEmptyInput
	}
	return Sequence{Bases: bases}, nil
}

// SampleKmers draws n uniformly random length-k windows from seq, with
// replacement, using the caller-supplied rng (never a global source — the
// same "own your randomness" rule the core filter follows for eviction).
// Returns fewer than n samples if seq is shorter than k.
func SampleKmers(seq Sequence, k int, n int, rng *rand.Rand) [][]byte {
	if k <= 0 || k > len(seq.Bases) {
		return nil
	}

	samples := make([][]byte, 0, n)
	span := len(seq.Bases) - k + 1
	for i := 0; i < n; i++ {
		start := rng.Intn(span)
		kmer := make([]byte, k)
		copy(kmer, seq.Bases[start:start+k])
		samples = append(samples, kmer)
	}
	return samples
}
