/*
 * Apache License 2.0
 *
 * Copyright (c) 2022, Austin Zhai
 * All rights reserved.
 */
package suffixtree

import (
	"github.com/RoaringBitmap/roaring"
	"github.com/jumboframes/gstree/log"
)

func (t *tree) Search(pattern string) (*roaring.Bitmap, bool) {
	return t.SearchLimit(pattern, -1)
}

func (t *tree) SearchLimit(pattern string, limit int) (*roaring.Bitmap, bool) {
	t.check()
	n := t.searchNode([]rune(pattern))
	if n == nil {
		return nil, false
	}
	return n.Data(limit), true
}

func (t *tree) Count(pattern string) (int, bool) {
	t.check()
	n := t.searchNode([]rune(pattern))
	if n == nil {
		return 0, false
	}
	if !t.counted && t.warnStale {
		t.staleOnce.Do(func() {
			log.Warnf("result counts read before ComputeCount, %d strings inserted", t.strings)
		})
	}
	return n.count, true
}

// searchNode returns the node at or right below the end of pattern.
func (t *tree) searchNode(pattern []rune) *node {
	if len(pattern) == 0 {
		if t.strings == 0 {
			return nil
		}
		return t.root
	}
	current := t.root
	for i := 0; i < len(pattern); {
		e := current.edge(pattern[i])
		if e == nil {
			return nil
		}
		n := len(pattern) - i
		if n > len(e.label) {
			n = len(e.label)
		}
		if !runesEqual(pattern[i:i+n], e.label[:n]) {
			return nil
		}
		if len(e.label) >= len(pattern)-i {
			return e.target
		}
		current = e.target
		i += n
	}
	return nil
}
