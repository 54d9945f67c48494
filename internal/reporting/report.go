// Package reporting renders bench.Result values as a human-readable
// table, following the go-pretty/color/humanize style used for analysis
// reports in Sumatoshi-tech-codefang.
package reporting

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/v-brkic/bamboo-filter/internal/bench"
)

var (
	warnColor = color.New(color.FgRed, color.Bold)
	okColor   = color.New(color.FgGreen)
)

// PrintTable renders one row per Result, highlighting nonzero overflow and
// migration-drop counts in red.
func PrintTable(w io.Writer, results ...bench.Result) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{
		"Run", "Inserted", "Overflowed", "Capacity", "Load Factor",
		"FP Rate", "Drops", "Insert Time", "Lookup Time",
	})

	for _, r := range results {
		t.AppendRow(table.Row{
			r.Label,
			humanize.Comma(int64(r.Inserted)),
			colorizeCount(r.Overflowed),
			humanize.Comma(int64(r.Stats.Capacity)),
			fmt.Sprintf("%.3f", r.Stats.LoadFactor),
			fmt.Sprintf("%.5f", r.FalsePositiveRate()),
			colorizeCount(int(r.Stats.MigrationDrops)),
			r.InsertElapsed.Round(1000),
			r.HitElapsed.Round(1000),
		})
	}

	t.Render()
}

func colorizeCount(n int) string {
	if n == 0 {
		return okColor.Sprint("0")
	}
	return warnColor.Sprintf("%d", n)
}
