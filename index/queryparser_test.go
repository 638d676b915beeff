package index_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hazuki-dict/hazuki/index"
	"github.com/hazuki-dict/hazuki/taxonomy"
)

func TestParseQueryPhrasesAndTagFilter(t *testing.T) {
	got := index.ParseQuery("hello world #v5s first tail phrase*, second tail phrase")
	assert.Equal(t, []string{"hello world", "first tail phrase*", "second tail phrase"}, got.Phrases)

	want, ok := taxonomy.ParseKeyword("v5s")
	assert.True(t, ok)
	assert.Equal(t, []taxonomy.Entity{want}, got.Entities)
}

func TestParseQuerySentinelsEndPhraseWithoutConsuming(t *testing.T) {
	got := index.ParseQuery("猫。犬、鳥")
	assert.Equal(t, []string{"猫", "犬", "鳥"}, got.Phrases)
	assert.Empty(t, got.Entities)
}

func TestParseQueryUnknownTagIsDropped(t *testing.T) {
	got := index.ParseQuery("word #not-a-real-tag")
	assert.Equal(t, []string{"word"}, got.Phrases)
	assert.Empty(t, got.Entities)
}
