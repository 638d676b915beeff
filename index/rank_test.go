package index_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hazuki-dict/hazuki/index"
	"github.com/hazuki-dict/hazuki/substrate"
	"github.com/hazuki-dict/hazuki/taxonomy"
)

func TestRankExactQueryBeatsPrefixMatch(t *testing.T) {
	exact := index.Candidate{EntryOffset: 1, Sequence: 2, SenseCount: 1, QueryExact: true}
	prefix := index.Candidate{EntryOffset: 2, Sequence: 1, SenseCount: 1, QueryExact: false}

	candidates := []index.Candidate{prefix, exact}
	index.Rank(candidates, 3)

	assert.Equal(t, uint32(1), candidates[0].EntryOffset)
	assert.Equal(t, uint32(2), candidates[1].EntryOffset)
}

func TestRankTiebreaksAscendingBySequence(t *testing.T) {
	a := index.Candidate{EntryOffset: 10, Sequence: 5, SenseCount: 2}
	b := index.Candidate{EntryOffset: 20, Sequence: 1, SenseCount: 2}

	candidates := []index.Candidate{a, b}
	index.Rank(candidates, 4)

	assert.Equal(t, uint32(20), candidates[0].EntryOffset)
	assert.Equal(t, uint32(10), candidates[1].EntryOffset)
}

func TestRankInflectionPenaltyLowersWeight(t *testing.T) {
	old := index.InflectionPenalty
	index.InflectionPenalty = 0.5
	defer func() { index.InflectionPenalty = old }()

	direct := index.Candidate{EntryOffset: 1, Sequence: 1, SenseCount: 1, Source: substrate.SourcePhrase}
	inflected := index.Candidate{EntryOffset: 2, Sequence: 1, SenseCount: 1, Source: substrate.SourceInflection}

	assert.Greater(t, direct.Weight(3), inflected.Weight(3))
}

func TestRankHigherPriorityBeatsLowerPriority(t *testing.T) {
	common := index.Candidate{EntryOffset: 1, Sequence: 1, SenseCount: 1, Priorities: []taxonomy.Priority{{Kind: taxonomy.PriorityNews, Level: 1}}}
	rare := index.Candidate{EntryOffset: 2, Sequence: 1, SenseCount: 1}

	candidates := []index.Candidate{rare, common}
	index.Rank(candidates, 2)

	assert.Equal(t, uint32(1), candidates[0].EntryOffset)
}
