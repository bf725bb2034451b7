/*
 * Apache License 2.0
 *
 * Copyright (c) 2022, Austin Zhai
 * All rights reserved.
 */
package suffixtree

import "github.com/jumboframes/gstree/log"

// builder holds the state of one Insert. The active point is a node plus
// key[start:end], end being implied by the phase being processed.
type builder struct {
	tree *tree
	key  []rune
	id   uint32
	// last leaf reached, linked to the next one
	activeLeaf *node
}

func (b *builder) build() {
	root := b.tree.root
	s, start := root, 0
	for i := range b.key {
		s, start = b.update(s, start, i)
		s, start = b.canonize(s, start, i+1)
	}
	if b.activeLeaf.suffix == noLink && b.activeLeaf != root && b.activeLeaf != s {
		b.activeLeaf.suffix = s.id
	}
	b.seal(s, start)
}

// update adds key[i] to every suffix from the active point (s, key[start:i])
// down to the first one already present.
func (b *builder) update(s *node, start, i int) (*node, int) {
	root := b.tree.root
	t := b.key[i]
	rest := b.key[i:]
	oldRoot := root

	endpoint, r := b.testAndSplit(s, start, i, t, rest)
	for !endpoint {
		var leaf *node
		if e := r.edge(t); e != nil {
			leaf = e.target
		} else {
			leaf = b.tree.newNode()
			b.addRef(leaf)
			r.addEdge(&edge{label: rest, target: leaf})
		}
		if b.activeLeaf != root {
			b.activeLeaf.suffix = leaf.id
		}
		b.activeLeaf = leaf
		if oldRoot != root {
			oldRoot.suffix = r.id
		}
		oldRoot = r

		if s == root {
			start++
		} else {
			next := b.tree.link(s.suffix)
			if next == nil {
				violate("update", "node %d has no suffix link", s.id)
			}
			s, start = b.canonize(next, start, i)
		}
		endpoint, r = b.testAndSplit(s, start, i, t, rest)
	}
	if oldRoot != root {
		oldRoot.suffix = r.id
	}
	return s, start
}

// testAndSplit reports whether (s, key[start:end]) can already be followed by
// t. If not it returns the explicit node the new branch hangs from, splitting
// an edge when the point is inside it.
func (b *builder) testAndSplit(s *node, start, end int, t rune, rest []rune) (bool, *node) {
	s, start = b.canonize(s, start, end)
	if start < end {
		g := s.edge(b.key[start])
		n := end - start
		if g.label[n] == t {
			return true, s
		}
		r := b.split(s, g, n)
		return false, r
	}

	e := s.edge(t)
	if e == nil {
		return false, s
	}
	switch {
	case runesEqual(rest, e.label):
		b.addRef(e.target)
		return true, s
	case runesHasPrefix(rest, e.label):
		return true, s
	case runesHasPrefix(e.label, rest):
		// rest ends inside e, make that end explicit
		r := b.split(s, e, len(rest))
		b.addRef(r)
		return false, s
	}
	return true, s
}

// canonize moves the active point down whole edges while the remaining
// label covers them, comparing edge lengths only.
func (b *builder) canonize(s *node, start, end int) (*node, int) {
	for start < end {
		e := s.edge(b.key[start])
		if e == nil {
			violate("canonize", "node %d has no branch on %q", s.id, b.key[start])
		}
		if end-start < len(e.label) {
			break
		}
		start += len(e.label)
		s = e.target
	}
	return s, start
}

// split cuts e after n runes and returns the node inserted at the cut.
func (b *builder) split(s *node, e *edge, n int) *node {
	r := b.tree.newNode()
	head := &edge{label: e.label[:n], target: r}
	// head still shares e's first rune, swap it in before e is cut
	s.replaceEdge(head)
	e.label = e.label[n:]
	r.addEdge(e)
	if log.Enabled(log.LevelTrace) {
		log.Tracef("split %q|%q below node %d, new node %d",
			string(head.label), string(e.label), s.id, r.id)
	}
	return r
}

// addRef tags n with the identifier, then the suffix link chain until a node
// already tagged.
func (b *builder) addRef(n *node) {
	root := b.tree.root
	for n != nil && n != root {
		if !n.addID(b.id) {
			return
		}
		n = b.tree.link(n.suffix)
	}
}

// seal walks the suffixes that are still implicit after the last phase,
// from the active point down to the empty one. Each gets an explicit node
// carrying the identifier so every suffix of key ends on a node.
func (b *builder) seal(s *node, start int) {
	root := b.tree.root
	end := len(b.key)
	var prev *node
	for s != root || start < end {
		s, start = b.canonize(s, start, end)
		at := s
		if start < end {
			at = b.split(s, s.edge(b.key[start]), end-start)
		}
		if prev != nil && prev.suffix == noLink {
			prev.suffix = at.id
		}
		prev = nil
		if at.suffix == noLink && at != root {
			prev = at
		}
		at.addID(b.id)

		if s == root {
			start++
			continue
		}
		next := b.tree.link(s.suffix)
		if next == nil {
			violate("seal", "node %d has no suffix link", s.id)
		}
		s = next
	}
	if prev != nil && prev.suffix == noLink {
		prev.suffix = root.id
	}
}
