package index

import (
	"sort"

	"github.com/hazuki-dict/hazuki/substrate"
	"github.com/hazuki-dict/hazuki/taxonomy"
)

// InflectionPenalty is the conjugation-term multiplier applied to a
// candidate reached through Source::Inflection. Spec §4.6/§9 leaves this
// tunable with an undetermined intended value beyond "less than 1.0 when
// reached via inflection", documenting 1.0 as the default until a corpus is
// available to tune it against.
var InflectionPenalty = 1.0

// Candidate is one deduplicated search result, carrying everything the
// ranking formula needs plus enough provenance for the caller to load the
// full entry.
type Candidate struct {
	EntryOffset uint32
	EntryKind   EntryKind
	Strength    substrate.Strength
	Source      substrate.Source
	Sequence    uint64
	Priorities  []taxonomy.Priority
	SenseCount  int
	QueryExact  bool
}

// Weight computes the candidate's sort-key per spec §4.6 Ranking:
// weight = query × priority × sense_count × conjugation × length.
func (c Candidate) Weight(queryRuneLength int) float64 {
	query := 1.0
	if c.QueryExact {
		query = 3.0
	}

	priority := 1.0
	for _, p := range c.Priorities {
		if w := p.Weight(); w > priority {
			priority = w
		}
	}

	senseCount := c.SenseCount
	if senseCount < 1 {
		senseCount = 1
	}
	if senseCount > 10 {
		senseCount = 10
	}
	senseTerm := float64(senseCount) / 10.0

	conjugation := 1.0
	if c.Source == substrate.SourceInflection {
		conjugation = InflectionPenalty
	}

	length := queryRuneLength
	if length > 10 {
		length = 10
	}
	lengthTerm := float64(length) / 10.0 * 1.2

	return query * priority * senseTerm * conjugation * lengthTerm
}

// Rank sorts candidates descending by weight, with a stable ascending
// tiebreak on sequence number (spec §4.6 step 7, §8 "ordering stability").
func Rank(candidates []Candidate, queryRuneLength int) {
	sort.SliceStable(candidates, func(i, j int) bool {
		wi := candidates[i].Weight(queryRuneLength)
		wj := candidates[j].Weight(queryRuneLength)
		if wi != wj {
			return wi > wj
		}
		return candidates[i].Sequence < candidates[j].Sequence
	})
}
