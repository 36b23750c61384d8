// Package chemgraph builds the bond graph of a molecule, where atoms are nodes and bonds
// are edges weighted by the bond length, on top of gonum's graph packages.
package chemgraph

import (
	"math"
	"sort"

	chem "github.com/rmera/molgeo"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Graph is the undirected bond graph of a molecule. The ID of each node is
// the index of the corresponding atom. It implements gonum's graph.Weighted
// and graph.Undirected interfaces.
type Graph struct {
	*simple.WeightedUndirectedGraph
	natoms int
}

// FromBonds returns the graph for natoms atoms bonded by b. Bonds from an atom
// to itself are skipped, as they don't connect anything.
func FromBonds(natoms int, b chem.Bonds) *Graph {
	g := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for i := 0; i < natoms; i++ {
		g.AddNode(simple.Node(i))
	}
	for k, d := range b {
		if k.I == k.J || k.J >= natoms {
			continue
		}
		g.SetWeightedEdge(g.NewWeightedEdge(simple.Node(k.I), simple.Node(k.J), d))
	}
	return &Graph{WeightedUndirectedGraph: g, natoms: natoms}
}

// FromMolecule returns the bond graph of mol with its current bonds.
func FromMolecule(mol chem.Bonder) *Graph {
	return FromBonds(mol.NumAtoms(), mol.Bonds())
}

// Len returns the number of atoms in the graph.
func (G *Graph) Len() int {
	return G.natoms
}

func nodeIDs(nodes []graph.Node) []int {
	ret := make([]int, 0, len(nodes))
	for _, n := range nodes {
		ret = append(ret, int(n.ID()))
	}
	return ret
}

// Fragments returns the connected components of the graph, i.e. the sets
// of atoms bonded to each other directly or through other atoms. Each fragment
// is sorted, and the fragments are sorted by their lowest index.
func (G *Graph) Fragments() [][]int {
	cc := topo.ConnectedComponents(G.WeightedUndirectedGraph)
	ret := make([][]int, 0, len(cc))
	for _, c := range cc {
		ids := nodeIDs(c)
		sort.Ints(ids)
		ret = append(ret, ids)
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i][0] < ret[j][0] })
	return ret
}

// Neighbors returns the sorted indexes of the atoms bonded to the atom i.
// It returns nil if i is not in the graph.
func (G *Graph) Neighbors(i int) []int {
	if i < 0 || i >= G.natoms {
		return nil
	}
	ret := nodeIDs(graph.NodesOf(G.From(int64(i))))
	sort.Ints(ret)
	return ret
}

// ShortestPath returns the bonded path between atoms i and j with the lowest
// sum of bond lengths, including both ends, and that sum.
// If there is no such path it returns nil and +Inf.
func (G *Graph) ShortestPath(i, j int) ([]int, float64) {
	if i < 0 || j < 0 || i >= G.natoms || j >= G.natoms {
		return nil, math.Inf(1)
	}
	sh := path.DijkstraFrom(G.Node(int64(i)), G.WeightedUndirectedGraph)
	nodes, w := sh.To(int64(j))
	if len(nodes) == 0 {
		return nil, math.Inf(1)
	}
	return nodeIDs(nodes), w
}
