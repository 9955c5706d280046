package generator

import "math/rand"

// maxPartitionRetries bounds balancing restarts before the attempt is
// abandoned and the caller retries with a fresh tiling.
const maxPartitionRetries = 200

// partitionRegions produces a contiguous region map for a w×h rectangle
// using a two-phase approach: uncapped Voronoi assignment followed by
// boundary-swap balancing.
//
// The returned slice assigns each cell (y*w + x) to a region index in
// [0, count). Region sizes differ by at most one and every region is
// orthogonally contiguous. Returns false if every retry is exhausted,
// which only degenerate seed layouts cause.
func partitionRegions(rng *rand.Rand, w, h, count int) ([]int, bool) {
	for i := 0; i < maxPartitionRetries; i++ {
		result, ok := tryPartition(rng, w, h, count)
		if ok {
			return result, true
		}
	}
	return nil, false
}

// tryPartition runs one partition attempt.
//
// Phase 1 — Voronoi partition (no size cap):
//
//	Pick one random seed cell per region. Run a BFS from all seeds
//	simultaneously; each cell joins the first region whose wavefront
//	reaches it. Because there is no size cap, every cell is reachable
//	and regions are contiguous by construction. Each BFS frontier level
//	is shuffled so shapes vary beyond plain level order.
//
// Phase 2 — boundary-swap balancing:
//
//	Repeatedly transfer a boundary cell from a region above its target
//	size to an adjacent region below its target, but only when the
//	transfer preserves contiguity of the shrinking region. Stuck states
//	report failure and the caller retries.
func tryPartition(rng *rand.Rand, w, h, count int) ([]int, bool) {
	cells := w * h

	assigned := make([]int, cells)
	for i := range assigned {
		assigned[i] = -1
	}

	type qentry struct{ pos, region int }
	queue := make([]qentry, 0, cells)

	for r, pos := range rng.Perm(cells)[:count] {
		assigned[pos] = r
		queue = append(queue, qentry{pos, r})
	}

	head := 0
	for head < len(queue) {
		levelEnd := len(queue)
		for i := levelEnd - 1; i > head; i-- {
			j := head + rng.Intn(i-head+1)
			queue[i], queue[j] = queue[j], queue[i]
		}

		for head < levelEnd {
			e := queue[head]
			head++
			for _, nb := range orthNeighbors(e.pos, w, h) {
				if assigned[nb] == -1 {
					assigned[nb] = e.region
					queue = append(queue, qentry{nb, e.region})
				}
			}
		}
	}

	sizes := make([]int, count)
	for _, r := range assigned {
		sizes[r]++
	}

	// Targets differ by at most one; the remainder goes to the lowest
	// region indices.
	targets := make([]int, count)
	for r := range targets {
		targets[r] = cells / count
		if r < cells%count {
			targets[r]++
		}
	}

	return balanceRegions(rng, assigned, sizes, targets, w, h)
}

// balanceRegions adjusts assigned (modified in place) until every region
// matches its target size. Returns false if no valid swap sequence
// exists from the current state.
func balanceRegions(rng *rand.Rand, assigned, sizes, targets []int, w, h int) ([]int, bool) {
	cells := w * h
	maxIter := cells * 10

	for i := 0; i < maxIter; i++ {
		done := true
		for r, s := range sizes {
			if s != targets[r] {
				done = false
				break
			}
		}
		if done {
			return assigned, true
		}

		// Boundary cells of over-sized regions that touch an
		// under-sized region, shuffled to avoid systematic shapes.
		type candidate struct{ pos, from, to int }
		candidates := make([]candidate, 0, cells)
		for pos := 0; pos < cells; pos++ {
			r := assigned[pos]
			if sizes[r] <= targets[r] {
				continue
			}
			for _, nb := range orthNeighbors(pos, w, h) {
				nr := assigned[nb]
				if nr != r && sizes[nr] < targets[nr] {
					candidates = append(candidates, candidate{pos, r, nr})
				}
			}
		}
		if len(candidates) == 0 {
			return nil, false
		}

		rng.Shuffle(len(candidates), func(i, j int) {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		})

		swapped := false
		for _, c := range candidates {
			if isContiguousAfterRemoval(assigned, w, h, c.pos, c.from) {
				assigned[c.pos] = c.to
				sizes[c.from]--
				sizes[c.to]++
				swapped = true
				break
			}
		}
		if !swapped {
			return nil, false
		}
	}

	return nil, false
}

// isContiguousAfterRemoval reports whether the cells of region r remain
// orthogonally contiguous once pos is removed.
func isContiguousAfterRemoval(assigned []int, w, h, pos, r int) bool {
	cells := w * h

	inRegion := make([]bool, cells)
	n := 0
	start := -1
	for p := 0; p < cells; p++ {
		if assigned[p] == r && p != pos {
			inRegion[p] = true
			n++
			if start == -1 {
				start = p
			}
		}
	}
	if n == 0 {
		return true
	}

	visited := make([]bool, cells)
	queue := make([]int, 0, n)
	queue = append(queue, start)
	visited[start] = true
	reached := 1

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, nb := range orthNeighbors(p, w, h) {
			if inRegion[nb] && !visited[nb] {
				visited[nb] = true
				reached++
				queue = append(queue, nb)
			}
		}
	}
	return reached == n
}

// orthNeighbors returns the in-bounds orthogonal neighbors of pos on a
// w×h grid.
func orthNeighbors(pos, w, h int) []int {
	y, x := pos/w, pos%w
	var buf [4]int
	n := 0
	if x > 0 {
		buf[n] = pos - 1
		n++
	}
	if x < w-1 {
		buf[n] = pos + 1
		n++
	}
	if y > 0 {
		buf[n] = pos - w
		n++
	}
	if y < h-1 {
		buf[n] = pos + w
		n++
	}
	return buf[:n]
}
