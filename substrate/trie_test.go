package substrate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrieInsertAndLookup(t *testing.T) {
	trie := NewBuildTrie()
	trie.Insert([]byte("そば"), LocatedID{Source: SourcePhrase, Strength: StrengthExact, Slot: 0, EntryOffset: 100})
	trie.Insert([]byte("そばや"), LocatedID{Source: SourcePhrase, Strength: StrengthExact, Slot: 0, EntryOffset: 200})
	trie.Insert([]byte("蕎麦"), LocatedID{Source: SourceKanji, Strength: StrengthExact, Slot: 0, EntryOffset: 100})

	buf := NewBuffer()
	root := trie.Serialize(buf)
	ref := TrieRef{RootOffset: root}

	got, err := ref.Lookup(buf.Bytes(), []byte("そば"))
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.EqualValues(t, 100, got[0].EntryOffset)

	got, err = ref.Lookup(buf.Bytes(), []byte("そばや"))
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.EqualValues(t, 200, got[0].EntryOffset)

	got, err = ref.Lookup(buf.Bytes(), []byte("蕎麦"))
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.EqualValues(t, SourceKanji, got[0].Source)
}

func TestTrieLookupMissReturnsNilNotError(t *testing.T) {
	trie := NewBuildTrie()
	trie.Insert([]byte("猫"), LocatedID{Source: SourceKanji, EntryOffset: 1})

	buf := NewBuffer()
	root := trie.Serialize(buf)
	ref := TrieRef{RootOffset: root}

	got, err := ref.Lookup(buf.Bytes(), []byte("犬"))
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestTrieWalkPrefixes(t *testing.T) {
	trie := NewBuildTrie()
	trie.Insert([]byte("食べ"), LocatedID{Source: SourcePhrase, EntryOffset: 1})
	trie.Insert([]byte("食べる"), LocatedID{Source: SourcePhrase, EntryOffset: 2})

	buf := NewBuffer()
	root := trie.Serialize(buf)
	ref := TrieRef{RootOffset: root}

	var lengths []int
	err := ref.WalkPrefixes(buf.Bytes(), []byte("食べるとき"), func(length int, ids []LocatedID) error {
		lengths = append(lengths, length)
		return nil
	})
	assert.NoError(t, err)

	prefixBytes := len("食べ")
	wholeBytes := len("食べる")
	assert.Equal(t, []int{prefixBytes, wholeBytes}, lengths)
}
