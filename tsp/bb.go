package tsp

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"
)

// dfsEngine holds the read-only data shared by all subtrees.
// Per-subtree search state (route, visited) lives on each worker's stack.
type dfsEngine struct {
	d     Distances
	n     int
	order [][]int // for each u: v≠u sorted by d(u,v), index tiebreak
	best  *bound
}

// buildNeighborOrder produces, for each u, the list of v≠u sorted ascending by
// distance and then by index. Nearest-first branching tightens the bound early.
func buildNeighborOrder(d Distances) [][]int {
	n := d.N()
	order := make([][]int, n)
	for u := range n {
		row := make([]int, 0, n-1)
		for v := range n {
			if v != u {
				row = append(row, v)
			}
		}
		slices.SortFunc(row, func(a, b int) int {
			if c := cmp.Compare(d.Distance(u, a), d.Distance(u, b)); c != 0 {
				return c
			}
			return cmp.Compare(a, b)
		})
		order[u] = row
	}

	return order
}

// subtree searches every tour starting 0 → second.
func (e *dfsEngine) subtree(second int) {
	cost := e.d.Distance(0, second)
	if Round8(cost) >= e.best.load() {
		return
	}
	visited := make([]bool, e.n)
	visited[0], visited[second] = true, true
	route := make([]int, 2, e.n)
	route[0], route[1] = 0, second
	e.dfs(route, visited, cost)
}

// dfs extends route by one point at a time. cost is passed by value, so no
// running total is ever pushed and subtracted back.
func (e *dfsEngine) dfs(route []int, visited []bool, cost float64) {
	last := route[len(route)-1]
	if len(route) == e.n {
		total := cost + e.d.Distance(last, 0)
		if Round8(total) < e.best.load() {
			e.best.offer(route, total)
		}
		return
	}

	for _, v := range e.order[last] {
		if visited[v] {
			continue
		}
		next := cost + e.d.Distance(last, v)
		if Round8(next) >= e.best.load() {
			// Neighbours are ordered by edge length: no later v can do better.
			break
		}
		visited[v] = true
		e.dfs(append(route, v), visited, next)
		visited[v] = false
	}
}

// BranchAndBound finds an optimal tour by exhaustive depth-first search with
// pruning against a shared bound.
//
// Steps:
//  1. Seed the bound from seed (a complete tour, typically greedy + 2-opt);
//     an empty seed starts from +Inf.
//  2. Fix point 0 as the root and fan out one subtree per second point, in
//     nearest-first order, on a pool of workers goroutines.
//  3. Inside a subtree the recursion is single-threaded and prunes any prefix
//     whose rounded cost already reaches the bound.
//  4. Complete tours are committed through the bound, which re-checks under
//     its lock.
//
// ctx is checked before each subtree starts. On cancellation the best tour
// found so far is returned with ctx.Err().
//
// Complexity: worst case O(N!), practical speed comes from pruning.
func BranchAndBound(ctx context.Context, d Distances, seed Tour, workers int) (Tour, error) {
	n := d.N()
	if n < 2 {
		return Tour{}, fmt.Errorf("%w: %d points", ErrInvalidInput, n)
	}
	if err := checkSeed(seed, n); err != nil {
		return Tour{}, err
	}

	e := &dfsEngine{d: d, n: n, order: buildNeighborOrder(d), best: newBound(d, seed)}

	var g errgroup.Group
	g.SetLimit(clampWorkers(workers, n-1))
	for _, second := range e.order[0] {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			e.subtree(second)
			return nil
		})
	}
	err := g.Wait()

	return finish(d, e.best.best()), err
}

// finish rotates a committed tour to start at 0 and recomputes its length.
func finish(d Distances, t Tour) Tour {
	rotateToZero(t.Route)
	t.Distance, _ = TourLength(d, t.Route)

	return t
}
