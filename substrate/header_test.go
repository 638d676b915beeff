package substrate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGlobalHeaderAndIndexHeaderRoundTrip(t *testing.T) {
	buf := NewBuffer()
	WriteGlobalHeader(buf)

	nameOff := buf.StoreRaw([]byte("JMdict"))
	name := StrRef{Offset: nameOff, Len: 6}

	trie := NewBuildTrie()
	trie.Insert([]byte("猫"), LocatedID{Source: SourceKanji, EntryOffset: 1})
	trieRoot := trie.Serialize(buf)

	h := IndexHeader{
		Name:           name,
		TrieRootOffset: trieRoot,
	}
	idxOff := h.Serialize(buf)
	PatchIndexHeaderOffset(buf, idxOff)

	artifact, err := Open(buf.Bytes())
	assert.NoError(t, err)
	assert.Equal(t, trieRoot, artifact.Header.TrieRootOffset)

	gotName, err := artifact.Header.Name.Load(artifact.Data)
	assert.NoError(t, err)
	assert.Equal(t, "JMdict", gotName)
}

func TestOpenRejectsBadMagic(t *testing.T) {
	buf := NewBuffer()
	buf.StoreUint32(0xdeadbeef)
	buf.StoreUint32(CurrentVersion)
	buf.StoreUint32(0)

	_, err := Open(buf.Bytes())
	assert.Error(t, err)
}

func TestOpenRejectsIncompatibleVersion(t *testing.T) {
	buf := NewBuffer()
	buf.StoreUint32(Magic)
	buf.StoreUint32(CurrentVersion + 1)
	buf.StoreUint32(0)

	_, err := Open(buf.Bytes())
	assert.Error(t, err)

	var incompat *ErrIncompatible
	assert.ErrorAs(t, err, &incompat)
}

func TestOpenRejectsTruncatedHeader(t *testing.T) {
	_, err := Open([]byte{1, 2, 3})
	assert.Error(t, err)
}
