// Package trie implements a string prefix tree with payload storage and
// prefix/suffix membership queries.
//
// Beyond the classic operations (Put, Get, Delete, LongestPrefixOf,
// Keys, KeysWithPrefix) it answers two membership questions without
// materializing candidate key sets:
//
//   - HasPrefix reports whether any stored key starts with a prefix, by
//     walking the prefix and probing the subtree for one terminal node.
//   - CountWordsWithSuffix counts keys ending in a pattern via a single
//     depth-first pass holding a sliding window of the last len(pattern)
//     bytes, so no full key strings are rebuilt along the way.
//
// Keys are non-empty strings, compared byte-wise and case-sensitively.
// The trie is single-owner: no internal locking.
//
// The package is a standalone utility; it shares no machinery with the
// flow engine.
package trie
