package index

import (
	"github.com/hazuki-dict/hazuki/inflect"
	"github.com/hazuki-dict/hazuki/substrate"
	"github.com/hazuki-dict/hazuki/taxonomy"
)

// SuffixKeys returns every suffix of s of length >= 1, longest first, per
// the per-entry key enumeration policy (spec §4.6 step 2, §9 open question:
// "emit every suffix... both policies yield a valid system"; this build
// chooses to emit every suffix so a partial kana input can still locate an
// entry through the trie without a fuzzy-matching layer).
func SuffixKeys(s string) []string {
	runes := []rune(s)
	out := make([]string, 0, len(runes))
	for i := range runes {
		out = append(out, string(runes[i:]))
	}
	return out
}

// classificationFor maps a part-of-speech entity to the inflection
// engine's classification, for the subset of tags the engine can conjugate.
func classificationFor(pos taxonomy.Entity) (inflect.Classification, bool) {
	switch pos {
	case taxonomy.VerbGodanB:
		return inflect.GodanB, true
	case taxonomy.VerbGodanG:
		return inflect.GodanG, true
	case taxonomy.VerbGodanK:
		return inflect.GodanK, true
	case taxonomy.VerbGodanSpecialIku:
		return inflect.GodanSpecialIku, true
	case taxonomy.VerbGodanM:
		return inflect.GodanM, true
	case taxonomy.VerbGodanN:
		return inflect.GodanN, true
	case taxonomy.VerbGodanR:
		return inflect.GodanR, true
	case taxonomy.VerbGodanS:
		return inflect.GodanS, true
	case taxonomy.VerbGodanT:
		return inflect.GodanT, true
	case taxonomy.VerbGodanU:
		return inflect.GodanU, true
	case taxonomy.VerbIchidan, taxonomy.VerbIchidanZuru:
		return inflect.Ichidan, true
	case taxonomy.VerbSuru, taxonomy.VerbSuruIncluded:
		return inflect.Suru, true
	case taxonomy.VerbSuruSpecial:
		return inflect.SuruSpecial, true
	case taxonomy.VerbKuru:
		return inflect.Kuru, true
	case taxonomy.PartOfSpeechAdjectiveI:
		return inflect.AdjectiveI, true
	case taxonomy.PartOfSpeechAdjectiveNa:
		return inflect.AdjectiveNa, true
	default:
		return 0, false
	}
}

func inflectionFlags(r inflect.Result) uint8 {
	var flags uint8
	if r.Polite {
		flags |= substrate.InflectionFlagPolite
	}
	if r.Alternate {
		flags |= substrate.InflectionFlagAlternate
	}
	return flags
}
