package distcache

import (
	"context"
	"errors"
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvtsp/pointset"
)

// ErrInfeasibleBound reports a distance lookup with an index outside [0,N).
// It signals a programming defect in the caller, not bad user input.
var ErrInfeasibleBound = errors.New("distcache: index out of range")

// Cache is the immutable pairwise-distance table of one point set.
type Cache struct {
	n int
	d []float64 // packed upper triangle, see offset
}

// Build computes all pair distances of pts using up to workers goroutines
// (workers ≤ 0 ⇒ GOMAXPROCS). ctx is observed between rows.
//
// Complexity: O(N²) time, N·(N−1)/2 float64 of memory.
func Build(ctx context.Context, pts []pointset.Point, workers int) (*Cache, error) {
	n := len(pts)
	if n < 2 {
		return nil, fmt.Errorf("%w: need at least 2 points, got %d", pointset.ErrInvalidInput, n)
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	c := &Cache{n: n, d: make([]float64, n*(n-1)/2)}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < n-1; i++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			base := c.offset(i, i+1)
			pi := pts[i]
			for j := i + 1; j < n; j++ {
				c.d[base+j-i-1] = euclid(pi, pts[j])
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return c, nil
}

// N returns the number of points the cache was built for.
func (c *Cache) N() int { return c.n }

// Len returns the number of stored pairs, always N·(N−1)/2.
func (c *Cache) Len() int { return len(c.d) }

// Distance returns the distance between points i and j; 0 when i==j.
// Out-of-range indices also yield 0; use Lookup when the caller cannot
// guarantee its indices.
func (c *Cache) Distance(i, j int) float64 {
	if i == j {
		return 0
	}
	if i > j {
		i, j = j, i
	}
	if i < 0 || j >= c.n {
		return 0
	}

	return c.d[c.offset(i, j)]
}

// Lookup is the checked form of Distance.
func (c *Cache) Lookup(i, j int) (float64, error) {
	if i < 0 || j < 0 || i >= c.n || j >= c.n {
		return 0, fmt.Errorf("%w: (%d,%d) with N=%d", ErrInfeasibleBound, i, j, c.n)
	}

	return c.Distance(i, j), nil
}

// Pairs calls fn for every stored pair in ascending (i, j) order.
func (c *Cache) Pairs(fn func(i, j int, d float64)) {
	k := 0
	for i := 0; i < c.n-1; i++ {
		for j := i + 1; j < c.n; j++ {
			fn(i, j, c.d[k])
			k++
		}
	}
}

// offset maps a pair i<j to its slot: rows 0..i-1 hold (n-1)+(n-2)+…+(n-i) slots.
func (c *Cache) offset(i, j int) int {
	return i*c.n - i*(i+1)/2 + (j - i - 1)
}

func euclid(a, b pointset.Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y

	return math.Sqrt(dx*dx + dy*dy)
}
