package topology

import "github.com/bits-and-blooms/bitset"

// articulation returns the set of cut vertices of the subgraph induced
// by subset, computed per connected component with the classic
// disc/low DFS.
func (t *Topology) articulation(subset []int) *bitset.BitSet {
	member := bitset.New(uint(t.n))
	for _, q := range subset {
		member.Set(uint(q))
	}
	visited := bitset.New(uint(t.n))
	art := bitset.New(uint(t.n))
	disc := make([]int, t.n)
	low := make([]int, t.n)
	timer := 0

	var dfs func(u, parent int)
	dfs = func(u, parent int) {
		visited.Set(uint(u))
		timer++
		disc[u] = timer
		low[u] = timer
		children := 0
		for _, v := range t.adj[u] {
			if !member.Test(uint(v)) || v == parent {
				continue
			}
			if visited.Test(uint(v)) {
				if disc[v] < low[u] {
					low[u] = disc[v]
				}
				continue
			}
			children++
			dfs(v, u)
			if low[v] < low[u] {
				low[u] = low[v]
			}
			if parent != -1 && low[v] >= disc[u] {
				art.Set(uint(u))
			}
		}
		if parent == -1 && children > 1 {
			art.Set(uint(u))
		}
	}

	for _, q := range subset {
		if !visited.Test(uint(q)) {
			dfs(q, -1)
		}
	}
	return art
}

// IsCutting reports whether removing q disconnects the subgraph
// induced by subset. q must be a member of subset.
func (t *Topology) IsCutting(q int, subset []int) bool {
	return t.articulation(subset).Test(uint(q))
}

// NonCutting returns the members of subset that are not cut vertices
// of the induced subgraph, preserving the order of subset.
func (t *Topology) NonCutting(subset []int) []int {
	art := t.articulation(subset)
	var out []int
	for _, q := range subset {
		if !art.Test(uint(q)) {
			out = append(out, q)
		}
	}
	return out
}
