package trie

// CountWordsWithSuffix counts stored keys ending in pattern,
// case-sensitively. An empty pattern matches every key.
//
// One depth-first pass keeps the current path of runes and, at each
// terminal node, compares only its last len(pattern) runes against the
// pattern — no candidate key set is ever materialized.
//
// Complexity: O(N · k) over N trie nodes with pattern length k.
func (t *Trie) CountWordsWithSuffix(pattern string) int {
	if pattern == "" {
		return t.size
	}

	target := []rune(pattern)
	var (
		count int
		path  []rune
		dfs   func(n *node)
	)
	dfs = func(n *node) {
		if n.terminal && endsWith(path, target) {
			count++
		}
		for r, child := range n.children {
			path = append(path, r)
			dfs(child)
			path = path[:len(path)-1]
		}
	}
	dfs(t.root)

	return count
}

// endsWith reports whether path ends with target.
func endsWith(path, target []rune) bool {
	if len(path) < len(target) {
		return false
	}
	offset := len(path) - len(target)
	for i, r := range target {
		if path[offset+i] != r {
			return false
		}
	}

	return true
}
