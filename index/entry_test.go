package index_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hazuki-dict/hazuki/index"
	"github.com/hazuki-dict/hazuki/intern"
	"github.com/hazuki-dict/hazuki/source"
	"github.com/hazuki-dict/hazuki/substrate"
)

func TestPhraseEntryRoundTrip(t *testing.T) {
	buf := substrate.NewBuffer()
	in := intern.New(buf)

	pe := source.PhraseEntry{
		Sequence: 1234567,
		Kanji: []source.KanjiWriting{
			{Text: "食べる", Priorities: []string{"ichi1"}, Info: nil},
		},
		Readings: []source.ReadingWriting{
			{Text: "たべる", Priorities: []string{"ichi1"}, NoKanji: false, RestrictedTo: nil},
		},
		Senses: []source.Sense{
			{
				PartOfSpeech: []string{"v1"},
				Glosses: []source.Gloss{
					{Text: "to eat"},
					{Text: "to live on (e.g. a salary)"},
				},
			},
		},
	}

	offset := index.StorePhraseEntry(buf, in, pe)
	got, err := index.LoadPhraseEntry(buf.Bytes(), offset)
	require.NoError(t, err)

	assert.Equal(t, pe.Sequence, got.Sequence)
	require.Len(t, got.Kanji, 1)
	assert.Equal(t, "食べる", got.Kanji[0].Text)
	require.Len(t, got.Readings, 1)
	assert.Equal(t, "たべる", got.Readings[0].Text)
	require.Len(t, got.Senses, 1)
	require.Len(t, got.Senses[0].Glosses, 2)
	assert.Equal(t, "to eat", got.Senses[0].Glosses[0].Text)
	assert.Equal(t, "to live on (e.g. a salary)", got.Senses[0].Glosses[1].Text)
	assert.Equal(t, 1, got.SenseCount())
}

func TestNameEntryRoundTrip(t *testing.T) {
	buf := substrate.NewBuffer()
	in := intern.New(buf)

	ne := source.NameEntry{
		Sequence: 42,
		Kanji:    []string{"東京"},
		Readings: []string{"とうきょう"},
		Translations: []source.NameTranslation{
			{NameTypes: []string{"place"}, Glosses: []string{"Tokyo"}},
		},
	}

	offset := index.StoreNameEntry(buf, in, ne)
	got, err := index.LoadNameEntry(buf.Bytes(), offset)
	require.NoError(t, err)

	assert.Equal(t, ne.Sequence, got.Sequence)
	assert.Equal(t, []string{"東京"}, got.Kanji)
	assert.Equal(t, []string{"とうきょう"}, got.Readings)
	require.Len(t, got.Translations, 1)
	assert.Equal(t, []string{"Tokyo"}, got.Translations[0].Glosses)
}

func TestCharacterEntryRoundTrip(t *testing.T) {
	buf := substrate.NewBuffer()
	in := intern.New(buf)

	c := source.Character{
		Literal:     "星",
		Radicals:    []int{72},
		Grade:       2,
		StrokeCount: 9,
		Frequency:   346,
		JLPT:        3,
		OnReadings:  []string{"セイ", "ショウ"},
		KunReadings: []string{"ほし"},
		Nanori:      []string{"とし"},
		Meanings:    []string{"star"},
	}

	offset := index.StoreCharacterEntry(buf, in, c)
	got, err := index.LoadCharacterEntry(buf.Bytes(), offset)
	require.NoError(t, err)

	assert.Equal(t, c.Literal, got.Literal)
	assert.Equal(t, c.Radicals, got.Radicals)
	assert.Equal(t, c.Grade, got.Grade)
	assert.Equal(t, c.StrokeCount, got.StrokeCount)
	assert.Equal(t, c.Frequency, got.Frequency)
	assert.Equal(t, c.JLPT, got.JLPT)
	assert.Equal(t, c.OnReadings, got.OnReadings)
	assert.Equal(t, c.KunReadings, got.KunReadings)
	assert.Equal(t, c.Nanori, got.Nanori)
	assert.Equal(t, c.Meanings, got.Meanings)
}

func TestPeekEntryKindDispatches(t *testing.T) {
	buf := substrate.NewBuffer()
	in := intern.New(buf)

	phraseOff := index.StorePhraseEntry(buf, in, source.PhraseEntry{Sequence: 1})
	nameOff := index.StoreNameEntry(buf, in, source.NameEntry{Sequence: 2})
	kanjiOff := index.StoreCharacterEntry(buf, in, source.Character{Literal: "犬"})

	kind, err := index.PeekEntryKind(buf.Bytes(), phraseOff)
	require.NoError(t, err)
	assert.Equal(t, index.KindPhrase, kind)

	kind, err = index.PeekEntryKind(buf.Bytes(), nameOff)
	require.NoError(t, err)
	assert.Equal(t, index.KindName, kind)

	kind, err = index.PeekEntryKind(buf.Bytes(), kanjiOff)
	require.NoError(t, err)
	assert.Equal(t, index.KindKanji, kind)
}
