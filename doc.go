/*
Package collections holds two functional collections for Go. Functional is
defined as immutable and persistent: every change returns a new collection,
and every collection handed out before stays valid and unchanged. New versions
share every part of the old one they did not change, so a change costs
O(log N) rather than a copy.

The hamt32 package is a Hash Array Mapped Trie. It provides Hamt, a map from
any key.Key to any value, and Set, a set of key.Key. Keys are routed by their
32 bit hash, 5 bits per level of the Trie.

The triearray package is a dense trie with a tail buffer. It provides Array,
an indexed sequence with O(1) amortized Append and Remend, O(log N) Get and
Update, cheap prefixes with Take, and concatenation that reuses the full nodes
of the left hand Array.

The list package is a singly linked List with O(1) Prepend, Head and Tail,
where every new List shares the old one as its tail.

The key package holds the key.Key interface and the ready made keys key.Str,
key.Bytes and key.Int.
*/
package collections
