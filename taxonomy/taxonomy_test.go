package taxonomy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hazuki-dict/hazuki/taxonomy"
)

func TestParseKeywordKnownTag(t *testing.T) {
	e, ok := taxonomy.ParseKeyword("v5s")
	assert.True(t, ok)
	assert.Equal(t, taxonomy.VerbGodanS, e)
}

func TestParseKeywordUnknownTag(t *testing.T) {
	_, ok := taxonomy.ParseKeyword("not-a-real-tag")
	assert.False(t, ok)
}

func TestSymbolAndDescribeRoundTrip(t *testing.T) {
	assert.Equal(t, "v5s", taxonomy.Symbol(taxonomy.VerbGodanS))
	assert.Equal(t, "godan verb with 'su' ending", taxonomy.Describe(taxonomy.VerbGodanS))
}

func TestIsVerbAndIsAdjective(t *testing.T) {
	assert.True(t, taxonomy.IsVerb(taxonomy.VerbIchidan))
	assert.True(t, taxonomy.IsVerb(taxonomy.VerbGodanS))
	assert.False(t, taxonomy.IsVerb(taxonomy.PartOfSpeechNoun))

	assert.True(t, taxonomy.IsAdjective(taxonomy.PartOfSpeechAdjectiveI))
	assert.True(t, taxonomy.IsAdjective(taxonomy.PartOfSpeechAdjectiveNa))
	assert.False(t, taxonomy.IsAdjective(taxonomy.VerbIchidan))
}

func TestParsePriority(t *testing.T) {
	p, ok := taxonomy.ParsePriority("nf12")
	assert.True(t, ok)
	assert.Equal(t, taxonomy.Priority{Kind: taxonomy.PriorityWordFrequency, Level: 12}, p)

	p, ok = taxonomy.ParsePriority("ichi1")
	assert.True(t, ok)
	assert.Equal(t, taxonomy.Priority{Kind: taxonomy.PriorityIchi, Level: 1}, p)

	_, ok = taxonomy.ParsePriority("bogus1")
	assert.False(t, ok)
}

func TestPriorityWeightRange(t *testing.T) {
	p, _ := taxonomy.ParsePriority("ichi1")
	assert.InDelta(t, 4.0, p.Weight(), 0.001)

	p, _ = taxonomy.ParsePriority("nf01")
	assert.InDelta(t, 4.0, p.Weight(), 0.001)

	p, _ = taxonomy.ParsePriority("nf50")
	assert.InDelta(t, 2.04, p.Weight(), 0.001)
}
