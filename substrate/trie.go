package substrate

import "sort"

// BuildTrie is the in-memory, mutable form of the lookup trie used only
// during build. Keys are inserted byte-at-a-time; a node's children are keyed
// by the next unconsumed byte of the key, the same sparse-index child
// dispatch a hash array mapped trie uses, adapted here to a read-only,
// single-writer build pass instead of a path-copying concurrent one.
type BuildTrie struct {
	root *buildTrieNode
}

type buildTrieNode struct {
	values   []LocatedID
	children map[byte]*buildTrieNode
}

// NewBuildTrie returns an empty trie ready for Insert calls.
func NewBuildTrie() *BuildTrie {
	return &BuildTrie{root: &buildTrieNode{}}
}

// Insert adds a (key, value) pair. Keys are UTF-8 byte strings; empty keys are
// rejected by the caller before reaching here.
func (t *BuildTrie) Insert(key []byte, value LocatedID) {
	node := t.root
	for _, b := range key {
		if node.children == nil {
			node.children = make(map[byte]*buildTrieNode)
		}
		child, ok := node.children[b]
		if !ok {
			child = &buildTrieNode{}
			node.children[b] = child
		}
		node = child
	}
	node.values = append(node.values, value)
}

// trieNodeRecordSize is the fixed, 20-byte on-disk node layout:
//
//	ValuesOffset   u32
//	ValuesCount    u32
//	ChildKeysOff   u32  -- []byte, one per child, sorted ascending
//	ChildRefsOff   u32  -- []u32 node offsets, parallel to ChildKeys
//	ChildCount     u32
const trieNodeRecordSize = 20

// Serialize writes the trie bottom-up (children before parents, a post-order
// write so every child offset is already known when its parent is written)
// and returns the root node's offset for the caller to store in the
// IndexHeader.
func (t *BuildTrie) Serialize(buf *Buffer) uint32 {
	return serializeTrieNode(buf, t.root)
}

func serializeTrieNode(buf *Buffer, node *buildTrieNode) uint32 {
	keys := make([]byte, 0, len(node.children))
	for k := range node.children {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	childOffsets := make([]uint32, len(keys))
	for i, k := range keys {
		childOffsets[i] = serializeTrieNode(buf, node.children[k])
	}

	sort.Slice(node.values, func(i, j int) bool {
		a, b := node.values[i], node.values[j]
		if a.Source != b.Source {
			return a.Source < b.Source
		}
		if a.Slot != b.Slot {
			return a.Slot < b.Slot
		}
		return a.EntryOffset < b.EntryOffset
	})
	valuesRef := buf.StoreLocatedIDs(node.values)

	childKeysOff := buf.StoreRaw(keys)
	childRefsOff := buf.Len()
	for _, off := range childOffsets {
		buf.StoreUint32(off)
	}

	nodeOff := buf.Len()
	buf.StoreUint32(valuesRef.Offset)
	buf.StoreUint32(valuesRef.Len)
	buf.StoreUint32(childKeysOff)
	buf.StoreUint32(childRefsOff)
	buf.StoreUint32(uint32(len(keys)))

	return nodeOff
}

// TrieRef is the read-side handle to a serialized trie: just the offset of
// its root node.
type TrieRef struct {
	RootOffset uint32
}

type trieNodeView struct {
	values       SliceRef
	childKeysOff uint32
	childRefsOff uint32
	childCount   uint32
}

func loadTrieNode(buf []byte, off uint32) (trieNodeView, error) {
	valuesOff, err := readUint32(buf, off)
	if err != nil {
		return trieNodeView{}, err
	}
	valuesLen, err := readUint32(buf, off+4)
	if err != nil {
		return trieNodeView{}, err
	}
	childKeysOff, err := readUint32(buf, off+8)
	if err != nil {
		return trieNodeView{}, err
	}
	childRefsOff, err := readUint32(buf, off+12)
	if err != nil {
		return trieNodeView{}, err
	}
	childCount, err := readUint32(buf, off+16)
	if err != nil {
		return trieNodeView{}, err
	}
	return trieNodeView{
		values:       SliceRef{Offset: valuesOff, Len: valuesLen},
		childKeysOff: childKeysOff,
		childRefsOff: childRefsOff,
		childCount:   childCount,
	}, nil
}

// child returns the offset of the child keyed by b, if present, via binary
// search over the sorted child-key byte array.
func (n trieNodeView) child(buf []byte, b byte) (uint32, bool, error) {
	keys, err := readSlice(buf, n.childKeysOff, n.childCount)
	if err != nil {
		return 0, false, err
	}
	lo, hi := 0, len(keys)
	for lo < hi {
		mid := (lo + hi) / 2
		if keys[mid] < b {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo >= len(keys) || keys[lo] != b {
		return 0, false, nil
	}
	off, err := readUint32(buf, n.childRefsOff+uint32(lo)*4)
	if err != nil {
		return 0, false, err
	}
	return off, true, nil
}

// Lookup walks buf from r.RootOffset consuming key byte-by-byte and returns
// the LocatedIDs stored at the terminal node, or nil if key was never
// inserted. Missing keys are not an error (spec §4.1 failure modes).
func (r TrieRef) Lookup(buf []byte, key []byte) ([]LocatedID, error) {
	off := r.RootOffset
	for _, b := range key {
		node, err := loadTrieNode(buf, off)
		if err != nil {
			return nil, err
		}
		childOff, ok, err := node.child(buf, b)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, nil
		}
		off = childOff
	}
	node, err := loadTrieNode(buf, off)
	if err != nil {
		return nil, err
	}
	return node.values.LoadLocatedIDs(buf)
}

// hasPath walks key from rootOffset and returns the offset of the node the
// walk ends at, or false if key leaves the trie before it is consumed.
func hasPath(buf []byte, rootOffset uint32, key []byte) (uint32, bool, error) {
	off := rootOffset
	for _, b := range key {
		node, err := loadTrieNode(buf, off)
		if err != nil {
			return 0, false, err
		}
		childOff, ok, err := node.child(buf, b)
		if err != nil {
			return 0, false, err
		}
		if !ok {
			return 0, false, nil
		}
		off = childOff
	}
	return off, true, nil
}

// WalkPrefixes descends buf one byte at a time following text from its
// start, invoking fn with the node's values each time a node with
// non-empty values is passed (i.e. text[:n] is itself a key in the trie),
// for every such prefix length n, shortest first. Used by Index.Analyze in
// the index package.
func (r TrieRef) WalkPrefixes(buf []byte, text []byte, fn func(length int, ids []LocatedID) error) error {
	off := r.RootOffset
	for i, b := range text {
		node, err := loadTrieNode(buf, off)
		if err != nil {
			return err
		}
		childOff, ok, err := node.child(buf, b)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		off = childOff

		childNode, err := loadTrieNode(buf, off)
		if err != nil {
			return err
		}
		if !childNode.values.IsEmpty() {
			ids, err := childNode.values.LoadLocatedIDs(buf)
			if err != nil {
				return err
			}
			if err := fn(i+1, ids); err != nil {
				return err
			}
		}
	}
	return nil
}
