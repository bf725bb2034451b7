/*
 * Apache License 2.0
 *
 * Copyright (c) 2022, Austin Zhai
 * All rights reserved.
 */
package suffixtree

func (t *tree) SearchMatchingSuffix(matcher Matcher) []string {
	t.check()
	suffixes := []string{}
	path := make([]rune, 0, 64)
	for _, e := range t.root.edges {
		suffixes = e.walk(path, matcher, suffixes)
	}
	return suffixes
}

// walk visits the subtree of e's target with path holding the labels above
// e. Nodes that end a suffix are leaves or carry identifiers.
func (e *edge) walk(path []rune, matcher Matcher, suffixes []string) []string {
	path = append(path, e.label...)
	n := e.target
	if n.IsLeaf() || len(n.data) > 0 {
		suffix := string(path)
		if matcher.Match(suffix) {
			suffixes = append(suffixes, suffix)
		}
	}
	for _, child := range n.edges {
		suffixes = child.walk(path, matcher, suffixes)
	}
	return suffixes
}
