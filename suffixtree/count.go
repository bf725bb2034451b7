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

// ComputeCount refreshes every node's ResultCount bottom up. It has to run
// again after further inserts.
func (t *tree) ComputeCount() {
	t.check()
	ids := t.root.computeCount()
	t.counted = true
	log.Debugf("computed result counts over %d nodes, %d distinct identifiers",
		len(t.nodes), ids.GetCardinality())
}

func (n *node) computeCount() *roaring.Bitmap {
	ids := roaring.BitmapOf(n.data...)
	for _, e := range n.edges {
		ids.Or(e.target.computeCount())
	}
	n.count = int(ids.GetCardinality())
	return ids
}
