package suffixtree

import (
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// substrings returns every non-empty contiguous substring of word.
func substrings(word string) []string {
	letters := []rune(word)
	set := map[string]struct{}{}
	for i := range letters {
		for j := i + 1; j <= len(letters); j++ {
			set[string(letters[i:j])] = struct{}{}
		}
	}
	subs := make([]string, 0, len(set))
	for sub := range set {
		subs = append(subs, sub)
	}
	sort.Strings(subs)
	return subs
}

// suffixes returns the distinct non-empty suffixes of words, sorted.
func suffixes(words []string) []string {
	set := map[string]struct{}{}
	for _, word := range words {
		letters := []rune(word)
		for i := range letters {
			set[string(letters[i:])] = struct{}{}
		}
	}
	all := make([]string, 0, len(set))
	for suffix := range set {
		all = append(all, suffix)
	}
	sort.Strings(all)
	return all
}

type entry struct {
	word string
	id   uint32
}

// containing is the brute force answer to Search.
func containing(entries []entry, pattern string) []uint32 {
	set := map[uint32]struct{}{}
	for _, e := range entries {
		if strings.Contains(e.word, pattern) {
			set[e.id] = struct{}{}
		}
	}
	ids := make([]uint32, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func randomWord(rnd *rand.Rand, alphabet string, maxLen int) string {
	letters := make([]byte, rnd.Intn(maxLen+1))
	for i := range letters {
		letters[i] = alphabet[rnd.Intn(len(alphabet))]
	}
	return string(letters)
}

// allStrings enumerates every string over alphabet up to maxLen runes.
func allStrings(alphabet string, maxLen int) []string {
	all := []string{}
	level := []string{""}
	for l := 1; l <= maxLen; l++ {
		next := []string{}
		for _, prefix := range level {
			for _, letter := range alphabet {
				next = append(next, prefix+string(letter))
			}
		}
		all = append(all, next...)
		level = next
	}
	return all
}

// requireInvariants walks the whole tree checking its structural invariants.
func requireInvariants(t *testing.T, tr *tree) {
	t.Helper()
	paths := map[int32]string{}
	var walk func(n *node, path string)
	walk = func(n *node, path string) {
		paths[n.id] = path
		for i, e := range n.edges {
			require.NotEmpty(t, e.label, "empty label below %q", path)
			if i > 0 {
				require.Less(t, n.edges[i-1].label[0], e.label[0], "branching below %q", path)
			}
			walk(e.target, path+string(e.label))
		}
		for i := 1; i < len(n.data); i++ {
			require.Less(t, n.data[i-1], n.data[i], "data of %q", path)
		}
	}
	walk(tr.root, "")
	require.Len(t, paths, len(tr.nodes))

	assert.Equal(t, tr.root.id, tr.root.suffix)
	for _, n := range tr.nodes[1:] {
		path := paths[n.id]
		if n.suffix == noLink {
			require.True(t, n.IsLeaf(), "internal node %q has no suffix link", path)
			continue
		}
		require.Equal(t, string([]rune(path)[1:]), paths[n.suffix], "suffix link of %q", path)
	}
}

func bitmapIDs(t *testing.T, tr Tree, pattern string) []uint32 {
	t.Helper()
	ids, ok := tr.Search(pattern)
	if !ok {
		return nil
	}
	return ids.ToArray()
}
