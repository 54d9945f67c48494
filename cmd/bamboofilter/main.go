// Command bamboofilter is the reference CLI harness for the bamboo
// package: command-line parsing, FASTA/plain-text genome reading, random
// k-mer sampling, timing, and result reporting, all of it external to the
// filter core per spec.md §1.
package main

import (
	"fmt"
	"os"

	"github.com/v-brkic/bamboo-filter/cmd/bamboofilter/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
