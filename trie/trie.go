package trie

import (
	"errors"

	"golang.org/x/exp/slices"
)

// ErrEmptyKey is returned when a mutation is attempted with an empty key.
var ErrEmptyKey = errors.New("trie: key must be non-empty")

// node is one trie level: children per rune, plus a terminal marker.
// terminal distinguishes "stored key ends here" from "path passes
// through", so nil payloads remain storable.
type node struct {
	children map[rune]*node
	value    any
	terminal bool
}

func newNode() *node {
	return &node{children: make(map[rune]*node)}
}

// Trie is a string prefix tree with per-key payloads.
//
// The zero value is not usable; construct with New.
// Trie is single-owner: no internal locking.
type Trie struct {
	root *node
	size int
}

// New creates an empty trie.
func New() *Trie {
	return &Trie{root: newNode()}
}

// Len returns the number of stored keys.
func (t *Trie) Len() int { return t.size }

// IsEmpty reports whether the trie stores no keys.
func (t *Trie) IsEmpty() bool { return t.size == 0 }

// Put stores value under key, overwriting any previous payload.
// Returns ErrEmptyKey for an empty key.
// Complexity: O(len(key))
func (t *Trie) Put(key string, value any) error {
	if key == "" {
		return ErrEmptyKey
	}

	cur := t.root
	for _, r := range key {
		next, ok := cur.children[r]
		if !ok {
			next = newNode()
			cur.children[r] = next
		}
		cur = next
	}
	if !cur.terminal {
		t.size++
	}
	cur.terminal = true
	cur.value = value

	return nil
}

// Get returns the payload stored under key and whether the key exists.
// Complexity: O(len(key))
func (t *Trie) Get(key string) (any, bool) {
	cur := t.walk(key)
	if cur == nil || !cur.terminal {
		return nil, false
	}

	return cur.value, true
}

// Contains reports whether key is stored in the trie.
func (t *Trie) Contains(key string) bool {
	_, ok := t.Get(key)
	return ok
}

// Delete removes key and prunes now-empty branches.
// It reports whether a key was actually removed.
// Complexity: O(len(key))
func (t *Trie) Delete(key string) bool {
	if key == "" {
		return false
	}

	removed := t.remove(t.root, []rune(key), 0)
	if removed {
		t.size--
	}

	return removed
}

// remove unmarks the terminal at depth d == len(key) and reports back
// whether the child link can be pruned on the way up.
func (t *Trie) remove(cur *node, key []rune, d int) bool {
	if d == len(key) {
		if !cur.terminal {
			return false
		}
		cur.terminal = false
		cur.value = nil

		return true
	}

	child, ok := cur.children[key[d]]
	if !ok {
		return false
	}
	if !t.remove(child, key, d+1) {
		return false
	}
	if len(child.children) == 0 && !child.terminal {
		delete(cur.children, key[d])
	}

	return true
}

// LongestPrefixOf returns the longest stored key that is a prefix of
// query, or "" when no stored key prefixes it.
// Complexity: O(len(query))
func (t *Trie) LongestPrefixOf(query string) string {
	cur := t.root
	longest := 0
	runes := []rune(query)

	for i, r := range runes {
		next, ok := cur.children[r]
		if !ok {
			break
		}
		cur = next
		if cur.terminal {
			longest = i + 1
		}
	}

	return string(runes[:longest])
}

// Keys returns every stored key, sorted ascending.
func (t *Trie) Keys() []string {
	return t.KeysWithPrefix("")
}

// KeysWithPrefix returns all stored keys beginning with prefix, sorted
// ascending. An empty prefix yields every key.
func (t *Trie) KeysWithPrefix(prefix string) []string {
	start := t.walk(prefix)
	if start == nil {
		return nil
	}

	var out []string
	collect(start, []rune(prefix), &out)
	slices.Sort(out)

	return out
}

// HasPrefix reports whether at least one stored key begins with prefix.
// Unlike KeysWithPrefix it stops at the first terminal found.
func (t *Trie) HasPrefix(prefix string) bool {
	start := t.walk(prefix)
	if start == nil {
		return false
	}

	return hasTerminal(start)
}

// walk descends along key and returns the node it ends at,
// or nil if the path breaks off.
func (t *Trie) walk(key string) *node {
	cur := t.root
	for _, r := range key {
		next, ok := cur.children[r]
		if !ok {
			return nil
		}
		cur = next
	}

	return cur
}

// collect gathers keys of all terminal nodes beneath n.
func collect(n *node, path []rune, out *[]string) {
	if n.terminal {
		*out = append(*out, string(path))
	}
	for r, child := range n.children {
		collect(child, append(path, r), out)
	}
}

// hasTerminal probes the subtree for any terminal node.
func hasTerminal(n *node) bool {
	if n.terminal {
		return true
	}
	for _, child := range n.children {
		if hasTerminal(child) {
			return true
		}
	}

	return false
}
