/*
 * Apache License 2.0
 *
 * Copyright (c) 2022, Austin Zhai
 * All rights reserved.
 */
package dot

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/jumboframes/gstree/io"
	"github.com/jumboframes/gstree/log"
	"github.com/pkg/errors"
)

const (
	DefaultName = "out"
	Suffix      = ".gv"
)

var ErrFlushed = errors.New("dot writer already flushed")

// Node is a graph vertex, ids are handed out in creation order.
type Node struct {
	ID    int
	Label string
}

// Writer accumulates a digraph and writes it to <name>.gv on Flush.
type Writer struct {
	file    string
	buf     bytes.Buffer
	nodes   []*Node
	flushed bool
}

func NewWriter(name string) *Writer {
	if name == "" {
		name = DefaultName
	}
	w := &Writer{
		file: name + Suffix,
	}
	w.buf.WriteString("digraph G {\n")
	return w
}

// File returns the path Flush writes to.
func (w *Writer) File() string {
	return w.file
}

func (w *Writer) NewNode(label string) *Node {
	node := &Node{
		ID:    len(w.nodes),
		Label: label,
	}
	w.nodes = append(w.nodes, node)
	return node
}

// Link appends "from -> to".
func (w *Writer) Link(from, to *Node) {
	w.buf.WriteString(strconv.Itoa(from.ID))
	w.buf.WriteString(" -> ")
	w.buf.WriteString(strconv.Itoa(to.ID))
	w.buf.WriteByte('\n')
}

// Flush labels every node, closes the graph and writes the file, creating it
// if absent. The writer can't be used afterwards.
func (w *Writer) Flush() error {
	if w.flushed {
		return ErrFlushed
	}
	w.flushed = true
	for _, node := range w.nodes {
		w.buf.WriteString(strconv.Itoa(node.ID))
		w.buf.WriteString(` [label = "`)
		w.buf.WriteString(escape(node.Label))
		w.buf.WriteString("\"]\n")
	}
	w.buf.WriteString("}")
	if err := io.WriteFile(w.file, w.buf.Bytes()); err != nil {
		return errors.Wrap(err, "flush dot graph")
	}
	log.Debugf("dot graph with %d nodes written to %s", len(w.nodes), w.file)
	return nil
}

var escaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)

func escape(label string) string {
	return escaper.Replace(label)
}
