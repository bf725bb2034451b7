/*
 * Apache License 2.0
 *
 * Copyright (c) 2022, Austin Zhai
 * All rights reserved.
 */
package suffixtree

import (
	"github.com/RoaringBitmap/roaring"
	gsync "github.com/jumboframes/gstree/sync"
)

// Tree is a generalized suffix tree over identified strings.
//
// Insert and ComputeCount need exclusive access, the read methods may run
// concurrently with each other. Counts are cached by ComputeCount and go
// stale on the next Insert.
type Tree interface {
	Insert(text string, id uint32)
	// Search returns the identifiers of every string containing pattern,
	// false if no inserted string does.
	Search(pattern string) (*roaring.Bitmap, bool)
	// SearchLimit is Search returning at most limit identifiers, limit < 0
	// means unbounded.
	SearchLimit(pattern string, limit int) (*roaring.Bitmap, bool)
	// Count returns the cached ResultCount of the node pattern leads to.
	Count(pattern string) (int, bool)
	ComputeCount()
	// SearchMatchingSuffix returns every distinct suffix of the inserted
	// strings accepted by matcher.
	SearchMatchingSuffix(matcher Matcher) []string
	Root() Node
	Stats() Stats
}

type Stats struct {
	Nodes   int
	Edges   int
	Leaves  int
	Strings int
	// Counted is false when an Insert happened after the last ComputeCount.
	Counted bool
}

type OptionTree func(*tree)

// OptionTreeCapacity presizes the node arena.
func OptionTreeCapacity(nodes int) OptionTree {
	return func(t *tree) {
		if nodes > 0 {
			t.nodes = make([]*node, 0, nodes)
		}
	}
}

// OptionTreeStaleWarning toggles the warning logged by Count on stale counts.
func OptionTreeStaleWarning(warn bool) OptionTree {
	return func(t *tree) {
		t.warnStale = warn
	}
}

type tree struct {
	root    *node
	nodes   []*node // arena, suffix links index into it
	strings int

	counted   bool
	warnStale bool
	staleOnce gsync.Once

	broken *InvariantError
}

func NewTree(options ...OptionTree) Tree {
	return newTree(options...)
}

func newTree(options ...OptionTree) *tree {
	t := &tree{
		warnStale: true,
	}
	for _, option := range options {
		option(t)
	}
	t.root = t.newNode()
	t.root.suffix = t.root.id
	return t
}

func (t *tree) newNode() *node {
	n := &node{
		id:     int32(len(t.nodes)),
		suffix: noLink,
		count:  -1,
	}
	t.nodes = append(t.nodes, n)
	return n
}

func (t *tree) link(id int32) *node {
	if id == noLink {
		return nil
	}
	return t.nodes[id]
}

// check refuses to work on a tree left half built by an invariant panic.
func (t *tree) check() {
	if t.broken != nil {
		panic(t.broken)
	}
}

func (t *tree) Insert(text string, id uint32) {
	t.check()
	defer func() {
		if r := recover(); r != nil {
			if err, ok := r.(*InvariantError); ok {
				t.broken = err
			}
			panic(r)
		}
	}()

	t.strings++
	if t.counted {
		t.counted = false
		t.staleOnce.Reset()
	}

	key := []rune(text)
	if len(key) == 0 {
		t.root.addID(id)
		return
	}
	b := &builder{
		tree:       t,
		key:        key,
		id:         id,
		activeLeaf: t.root,
	}
	b.build()
}

func (t *tree) Root() Node {
	t.check()
	return t.root
}

func (t *tree) Stats() Stats {
	t.check()
	stats := Stats{
		Nodes:   len(t.nodes),
		Edges:   len(t.nodes) - 1,
		Strings: t.strings,
		Counted: t.counted,
	}
	for _, n := range t.nodes[1:] {
		if n.IsLeaf() {
			stats.Leaves++
		}
	}
	return stats
}
