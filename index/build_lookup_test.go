package index_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hazuki-dict/hazuki/index"
	"github.com/hazuki-dict/hazuki/source"
)

func sampleInput() index.BuildInput {
	return index.BuildInput{
		Name: "test-artifact",
		Phrases: []source.PhraseEntry{
			{
				Sequence: 1,
				Kanji:    []source.KanjiWriting{{Text: "食べる", Priorities: []string{"ichi1"}}},
				Readings: []source.ReadingWriting{{Text: "たべる", Priorities: []string{"ichi1"}}},
				Senses: []source.Sense{
					{PartOfSpeech: []string{"v1"}, Glosses: []source.Gloss{{Text: "to eat"}}},
				},
			},
		},
		Names: []source.NameEntry{
			{
				Sequence: 2,
				Kanji:    []string{"東京"},
				Readings: []string{"とうきょう"},
				Translations: []source.NameTranslation{
					{NameTypes: []string{"place"}, Glosses: []string{"Tokyo"}},
				},
			},
		},
		Kanji: []source.Character{
			{Literal: "星", Radicals: []int{72}, Grade: 2, StrokeCount: 9, Meanings: []string{"star"}},
		},
		Radicals: []source.RadicalDecomposition{
			{Kanji: "星", Radicals: []string{"日", "生"}},
		},
		Logger: zerolog.Nop(),
	}
}

func TestBuildAndOpenRoundTrip(t *testing.T) {
	data := index.Build(sampleInput())
	require.NotEmpty(t, data)

	ix, err := index.Open(data)
	require.NoError(t, err)

	name, err := ix.Name()
	require.NoError(t, err)
	assert.Equal(t, "test-artifact", name)
}

func TestBuildIsDeterministic(t *testing.T) {
	a := index.Build(sampleInput())
	b := index.Build(sampleInput())
	assert.Equal(t, a, b)
}

func TestLookupFindsPhraseByExactReading(t *testing.T) {
	ix, err := index.Open(index.Build(sampleInput()))
	require.NoError(t, err)

	hits, err := ix.Lookup("たべる")
	require.NoError(t, err)
	require.NotEmpty(t, hits)
	require.NotNil(t, hits[0].Entry.Phrase)
	assert.Equal(t, uint64(1), hits[0].Entry.Phrase.Sequence)
}

func TestLookupFindsPhraseByGloss(t *testing.T) {
	ix, err := index.Open(index.Build(sampleInput()))
	require.NoError(t, err)

	hits, err := ix.Lookup("to eat")
	require.NoError(t, err)
	require.NotEmpty(t, hits)
	assert.Equal(t, index.KindPhrase, hits[0].Entry.Kind)
}

func TestLookupTagFilterExcludesNonMatchingEntries(t *testing.T) {
	ix, err := index.Open(index.Build(sampleInput()))
	require.NoError(t, err)

	hits, err := ix.Lookup("たべる #v1")
	require.NoError(t, err)
	require.NotEmpty(t, hits)

	hits, err = ix.Lookup("たべる #adj-i")
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestBySequenceResolvesEachCorpus(t *testing.T) {
	ix, err := index.Open(index.Build(sampleInput()))
	require.NoError(t, err)

	entry, ok, err := ix.BySequence(1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, index.KindPhrase, entry.Kind)

	entry, ok, err = ix.BySequence(2)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, index.KindName, entry.Kind)
}

func TestKanjiByLiteralAndRadicals(t *testing.T) {
	ix, err := index.Open(index.Build(sampleInput()))
	require.NoError(t, err)

	ce, ok, err := ix.KanjiByLiteral("星")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "星", ce.Literal)
	assert.Equal(t, []string{"star"}, ce.Meanings)

	radicals, err := ix.RadicalsOf("星")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"日", "生"}, radicals)

	kanji, err := ix.KanjiWithRadical("生")
	require.NoError(t, err)
	assert.Equal(t, []string{"星"}, kanji)
}

func TestAnalyzeReportsPrefixMatches(t *testing.T) {
	ix, err := index.Open(index.Build(sampleInput()))
	require.NoError(t, err)

	segs, err := ix.Analyze("たべる", 0)
	require.NoError(t, err)
	require.NotEmpty(t, segs)

	found := false
	for _, s := range segs {
		if s.RuneLength == len([]rune("たべる")) {
			found = true
		}
	}
	assert.True(t, found)
}
