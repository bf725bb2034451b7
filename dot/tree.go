package dot

import (
	"strconv"
	"strings"

	"github.com/jumboframes/gstree/suffixtree"
)

// WriteTree exports the tree below root to <name>.gv and returns the file
// written. Nodes are labeled with their incoming edge label and the
// identifiers they carry.
func WriteTree(root suffixtree.Node, name string) (string, error) {
	w := NewWriter(name)
	walk(w, root, w.NewNode(nodeLabel("root", root)))
	if err := w.Flush(); err != nil {
		return "", err
	}
	return w.File(), nil
}

func walk(w *Writer, n suffixtree.Node, from *Node) {
	for _, e := range n.Edges() {
		target := e.Target()
		to := w.NewNode(nodeLabel(e.Label(), target))
		w.Link(from, to)
		walk(w, target, to)
	}
}

// nodeLabel renders the node's own identifiers, not its subtree's.
func nodeLabel(label string, n suffixtree.Node) string {
	ids := n.Own()
	if ids.IsEmpty() {
		return label
	}
	strs := []string{}
	it := ids.Iterator()
	for it.HasNext() {
		strs = append(strs, strconv.FormatUint(uint64(it.Next()), 10))
	}
	return label + " {" + strings.Join(strs, ",") + "}"
}
