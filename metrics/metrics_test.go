package metrics

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtsp/tsp"
)

func textfile(t *testing.T, r *Recorder) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tspsolve.prom")
	require.NoError(t, r.WriteTextfile(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	return string(data)
}

func TestRecorder_ObserveSolve(t *testing.T) {
	r := New("tsptest")
	opts := tsp.Options{Mode: tsp.LocalSearch, Strategy: tsp.StrategyDFS}
	res := tsp.Result{Tour: tsp.Tour{Route: []int{0, 1, 2, 3}, Distance: 4}, Restarts: 12}

	r.ObserveSolve(opts, 4, res, nil, 2*time.Second)
	r.ObserveSolve(opts, 4, tsp.Result{}, errors.New("boom"), time.Millisecond)
	r.ObserveSolve(opts, 4, res, context.Canceled, time.Millisecond)

	out := textfile(t, r)
	assert.Contains(t, out, `tsptest_solves_total{mode="local",status="ok",strategy="dfs"} 1`)
	assert.Contains(t, out, `tsptest_solves_total{mode="local",status="error",strategy="dfs"} 1`)
	assert.Contains(t, out, `tsptest_solves_total{mode="local",status="cancelled",strategy="dfs"} 1`)
	assert.Contains(t, out, `tsptest_restarts_total 24`)
	assert.Contains(t, out, `tsptest_tour_distance{mode="local"} 4`)
	assert.Contains(t, out, `tsptest_points_count 3`)
	assert.Contains(t, out, `tsptest_solve_duration_seconds_count{mode="local"} 3`)
}

func TestRecorder_Cache(t *testing.T) {
	r := New("tsptest")
	opts := tsp.Options{Mode: tsp.ExactSearch, Strategy: tsp.StrategyPriorityQueue}

	r.ObserveCacheLookup(false)
	r.ObserveCacheLookup(true)
	r.ObserveCacheLookup(true)
	r.ObserveCached(opts, 5, tsp.Tour{Distance: 8})

	out := textfile(t, r)
	assert.Contains(t, out, `tsptest_cache_lookups_total{result="hit"} 2`)
	assert.Contains(t, out, `tsptest_cache_lookups_total{result="miss"} 1`)
	assert.Contains(t, out, `tsptest_solves_total{mode="optimal",status="cached",strategy="pq"} 1`)
	assert.Contains(t, out, `tsptest_tour_distance{mode="optimal"} 8`)
}

func TestRecorder_GathererIsPrivate(t *testing.T) {
	a, b := New("tsptest"), New("tsptest")
	a.ObserveCacheLookup(true)

	fams, err := b.Gatherer().Gather()
	require.NoError(t, err)
	for _, f := range fams {
		assert.NotEqual(t, "tsptest_cache_lookups_total", f.GetName(), "separate registries must not share series")
	}
}
