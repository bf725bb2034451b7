/*
 * Apache License 2.0
 *
 * Copyright (c) 2022, Austin Zhai
 * All rights reserved.
 */
package suffixtree

import (
	"sort"

	"github.com/RoaringBitmap/roaring"
)

// Node is a read-only view of a tree vertex.
type Node interface {
	// ID is the node's stable handle, the root is 0.
	ID() int
	// Edges returns the outgoing edges ordered by first rune.
	Edges() []Edge
	Edge(first rune) (Edge, bool)
	// Data returns at most limit identifiers found in the node and its
	// subtree, limit < 0 means all of them.
	Data(limit int) *roaring.Bitmap
	// Own returns the identifiers whose suffixes end exactly at the node.
	Own() *roaring.Bitmap
	// ResultCount is the number of distinct identifiers below the node as of
	// the last ComputeCount, -1 if it never ran over this node.
	ResultCount() int
	IsLeaf() bool
}

// Edge is a read-only view of a labeled connection to a child node.
type Edge interface {
	Label() string
	Target() Node
}

const noLink int32 = -1

type node struct {
	id     int32
	edges  []*edge // sorted by label[0]
	suffix int32   // arena handle, noLink if unset
	data   []uint32
	count  int
}

type edge struct {
	label  []rune
	target *node
}

func (e *edge) Label() string {
	return string(e.label)
}

func (e *edge) Target() Node {
	return e.target
}

func (n *node) ID() int {
	return int(n.id)
}

func (n *node) Edges() []Edge {
	edges := make([]Edge, 0, len(n.edges))
	for _, e := range n.edges {
		edges = append(edges, e)
	}
	return edges
}

func (n *node) Edge(first rune) (Edge, bool) {
	e := n.edge(first)
	if e == nil {
		return nil, false
	}
	return e, true
}

func (n *node) Own() *roaring.Bitmap {
	return roaring.BitmapOf(n.data...)
}

func (n *node) ResultCount() int {
	return n.count
}

func (n *node) IsLeaf() bool {
	return len(n.edges) == 0
}

func (n *node) Data(limit int) *roaring.Bitmap {
	ids := roaring.New()
	n.collect(ids, limit)
	return ids
}

// collect adds the identifiers of the subtree depth first and reports
// whether limit was reached.
func (n *node) collect(ids *roaring.Bitmap, limit int) bool {
	full := func() bool {
		return limit >= 0 && ids.GetCardinality() >= uint64(limit)
	}
	if full() {
		return true
	}
	for _, id := range n.data {
		ids.Add(id)
		if full() {
			return true
		}
	}
	for _, e := range n.edges {
		if e.target.collect(ids, limit) {
			return true
		}
	}
	return false
}

func (n *node) search(first rune) (int, bool) {
	i := sort.Search(len(n.edges), func(i int) bool {
		return n.edges[i].label[0] >= first
	})
	return i, i < len(n.edges) && n.edges[i].label[0] == first
}

func (n *node) edge(first rune) *edge {
	i, ok := n.search(first)
	if !ok {
		return nil
	}
	return n.edges[i]
}

// addEdge attaches a new branch, one per first rune.
func (n *node) addEdge(e *edge) {
	if len(e.label) == 0 {
		violate("addEdge", "empty label below node %d", n.id)
	}
	i, ok := n.search(e.label[0])
	if ok {
		violate("addEdge", "node %d already branches on %q", n.id, e.label[0])
	}
	n.edges = append(n.edges, nil)
	copy(n.edges[i+1:], n.edges[i:])
	n.edges[i] = e
}

// replaceEdge swaps the branch sharing e's first rune.
func (n *node) replaceEdge(e *edge) {
	i, ok := n.search(e.label[0])
	if !ok {
		violate("replaceEdge", "node %d has no branch on %q", n.id, e.label[0])
	}
	n.edges[i] = e
}

func (n *node) hasID(id uint32) bool {
	i := sort.Search(len(n.data), func(i int) bool {
		return n.data[i] >= id
	})
	return i < len(n.data) && n.data[i] == id
}

// addID keeps data sorted and reports false if id was already there.
func (n *node) addID(id uint32) bool {
	i := sort.Search(len(n.data), func(i int) bool {
		return n.data[i] >= id
	})
	if i < len(n.data) && n.data[i] == id {
		return false
	}
	n.data = append(n.data, 0)
	copy(n.data[i+1:], n.data[i:])
	n.data[i] = id
	return true
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func runesHasPrefix(s, prefix []rune) bool {
	return len(s) >= len(prefix) && runesEqual(s[:len(prefix)], prefix)
}
