// Package topology models hardware qubit-connectivity graphs and
// answers the queries the synthesis algorithms need: pairwise
// distances, shortest paths, neighbor sets restricted to a subset of
// qubits, and cut-vertex detection on induced subgraphs.
package topology

import (
	"errors"
	"fmt"
	"sort"
)

// Topology is an undirected, connected graph over qubit indices
// 0..n-1. It is immutable after construction and safe for concurrent
// readers.
type Topology struct {
	n   int
	adj [][]int // sorted adjacency lists

	dist [][]int // dist[u][v], hops
	prev [][]int // prev[u][v], predecessor of v on a shortest u->v path
}

// New builds a topology over n qubits from an undirected edge list.
// Self loops, out-of-range endpoints, and disconnected graphs are
// rejected.
func New(n int, edges [][2]int) (*Topology, error) {
	if n <= 0 {
		return nil, fmt.Errorf("topology: invalid qubit count %d", n)
	}
	seen := make(map[[2]int]bool, len(edges))
	adj := make([][]int, n)
	for _, e := range edges {
		u, v := e[0], e[1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return nil, fmt.Errorf("topology: edge (%d,%d) out of range [0,%d)", u, v, n)
		}
		if u == v {
			return nil, fmt.Errorf("topology: self loop on qubit %d", u)
		}
		if u > v {
			u, v = v, u
		}
		if seen[[2]int{u, v}] {
			continue
		}
		seen[[2]int{u, v}] = true
		adj[u] = append(adj[u], v)
		adj[v] = append(adj[v], u)
	}
	for q := range adj {
		sort.Ints(adj[q])
	}
	t := &Topology{n: n, adj: adj}
	t.computePaths()
	for v := 0; v < n; v++ {
		if t.dist[0][v] < 0 {
			return nil, errors.New("topology: graph is not connected")
		}
	}
	return t, nil
}

func mustNew(n int, edges [][2]int) *Topology {
	t, err := New(n, edges)
	if err != nil {
		panic(err)
	}
	return t
}

// Complete returns the all-to-all topology on n qubits.
func Complete(n int) *Topology {
	var edges [][2]int
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			edges = append(edges, [2]int{u, v})
		}
	}
	return mustNew(n, edges)
}

// Line returns the path topology 0-1-...-(n-1).
func Line(n int) *Topology {
	var edges [][2]int
	for u := 0; u+1 < n; u++ {
		edges = append(edges, [2]int{u, u + 1})
	}
	return mustNew(n, edges)
}

// Ring returns the cycle topology on n qubits.
func Ring(n int) *Topology {
	var edges [][2]int
	for u := 0; u+1 < n; u++ {
		edges = append(edges, [2]int{u, u + 1})
	}
	if n > 2 {
		edges = append(edges, [2]int{n - 1, 0})
	}
	return mustNew(n, edges)
}

// Grid returns the rows x cols lattice topology, qubits numbered row
// major.
func Grid(rows, cols int) *Topology {
	var edges [][2]int
	at := func(r, c int) int { return r*cols + c }
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				edges = append(edges, [2]int{at(r, c), at(r, c+1)})
			}
			if r+1 < rows {
				edges = append(edges, [2]int{at(r, c), at(r + 1, c)})
			}
		}
	}
	return mustNew(rows*cols, edges)
}

// computePaths runs one BFS per source to fill the distance and
// predecessor tables.
func (t *Topology) computePaths() {
	t.dist = make([][]int, t.n)
	t.prev = make([][]int, t.n)
	queue := make([]int, 0, t.n)
	for s := 0; s < t.n; s++ {
		dist := make([]int, t.n)
		prev := make([]int, t.n)
		for i := range dist {
			dist[i] = -1
			prev[i] = -1
		}
		dist[s] = 0
		queue = append(queue[:0], s)
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			for _, v := range t.adj[u] {
				if dist[v] == -1 {
					dist[v] = dist[u] + 1
					prev[v] = u
					queue = append(queue, v)
				}
			}
		}
		t.dist[s] = dist
		t.prev[s] = prev
	}
}

// NumQubits returns the number of qubits in the topology.
func (t *Topology) NumQubits() int { return t.n }

// Distance returns the hop count of a shortest path between u and v.
func (t *Topology) Distance(u, v int) int { return t.dist[u][v] }

// ShortestPath returns a shortest path from u to v, both endpoints
// included.
func (t *Topology) ShortestPath(u, v int) []int {
	path := []int{v}
	for v != u {
		v = t.prev[u][v]
		path = append(path, v)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Neighbors returns the qubits directly connected to q, in increasing
// order. The returned slice must not be mutated.
func (t *Topology) Neighbors(q int) []int { return t.adj[q] }

// NeighborsIn returns the neighbors of q that are members of subset,
// in increasing order.
func (t *Topology) NeighborsIn(q int, subset []int) []int {
	member := t.memberSet(subset)
	var out []int
	for _, v := range t.adj[q] {
		if member[v] {
			out = append(out, v)
		}
	}
	return out
}

// Edges returns the undirected edge list with u < v, lexicographically
// ordered.
func (t *Topology) Edges() [][2]int {
	var out [][2]int
	for u := 0; u < t.n; u++ {
		for _, v := range t.adj[u] {
			if u < v {
				out = append(out, [2]int{u, v})
			}
		}
	}
	return out
}

func (t *Topology) memberSet(subset []int) []bool {
	member := make([]bool, t.n)
	for _, q := range subset {
		member[q] = true
	}
	return member
}
