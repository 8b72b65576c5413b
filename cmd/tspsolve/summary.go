package main

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/montanaflynn/stats"

	"github.com/katalvlaran/lvtsp/tsp"
)

// writeSummary prints a short human-readable report of one solve.
func writeSummary(w io.Writer, n int, path string, res tsp.Result) {
	fmt.Fprintf(w, "%s tour over %s points: distance %s (%s)\n",
		res.Mode, humanize.Comma(int64(n)), humanize.FormatFloat("#,###.##", res.Tour.Distance),
		res.Elapsed.Round(time.Millisecond))

	if res.Restarts > 0 {
		mean, _ := stats.Mean(res.RestartDistances)
		sd, _ := stats.StandardDeviation(res.RestartDistances)
		lo, _ := stats.Min(res.RestartDistances)
		fmt.Fprintf(w, "restarts: %s (mean %s, stddev %s, best %s)\n",
			humanize.Comma(int64(res.Restarts)),
			humanize.FormatFloat("#,###.##", mean),
			humanize.FormatFloat("#,###.##", sd),
			humanize.FormatFloat("#,###.##", lo))
	}
	for _, warn := range res.Warnings {
		fmt.Fprintf(w, "warning: %v\n", warn)
	}
	fmt.Fprintf(w, "solution written to %s\n", path)
}
