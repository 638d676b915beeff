package taxonomy

// Part-of-speech codes. Keywords match the short identifiers used across the
// source corpora (JMdict-style: "v5s" is a godan verb ending in す, "v1" an
// ichidan verb, "vs" a suru-verb, and so on).
const (
	posNoun uint16 = iota
	posNounSuffix
	posPronoun
	posAdverb
	posAdjectiveI
	posAdjectiveNa
	posAdjectiveNo
	posAdjectivePrenominal
	posVerbGodanB
	posVerbGodanG
	posVerbGodanK
	posVerbGodanSpecialIku
	posVerbGodanM
	posVerbGodanN
	posVerbGodanR
	posVerbGodanS
	posVerbGodanT
	posVerbGodanU
	posVerbIchidan
	posVerbSuru
	posVerbSuruSpecial
	posVerbSuruIncluded
	posVerbKuru
	posVerbIchidanZuru
	posAuxiliary
	posAuxiliaryVerb
	posAuxiliaryAdjective
	posConjunction
	posInterjection
	posPrefix
	posSuffix
	posCounter
	posParticle
	posExpression
	posPreNounAdjectival
)

var (
	// PartOfSpeechNoun through PartOfSpeechPreNounAdjectival are the Entity values
	// for every part-of-speech tag known to this build.
	PartOfSpeechNoun               = Entity{CategoryPartOfSpeech, define(CategoryPartOfSpeech, posNoun, "n", "noun (common)")}
	PartOfSpeechNounSuffix         = Entity{CategoryPartOfSpeech, define(CategoryPartOfSpeech, posNounSuffix, "n-suf", "noun, used as a suffix")}
	PartOfSpeechPronoun            = Entity{CategoryPartOfSpeech, define(CategoryPartOfSpeech, posPronoun, "pn", "pronoun")}
	PartOfSpeechAdverb             = Entity{CategoryPartOfSpeech, define(CategoryPartOfSpeech, posAdverb, "adv", "adverb")}
	PartOfSpeechAdjectiveI         = Entity{CategoryPartOfSpeech, define(CategoryPartOfSpeech, posAdjectiveI, "adj-i", "adjective (keiyoushi)")}
	PartOfSpeechAdjectiveNa        = Entity{CategoryPartOfSpeech, define(CategoryPartOfSpeech, posAdjectiveNa, "adj-na", "adjectival noun (keiyodoshi)")}
	PartOfSpeechAdjectiveNo        = Entity{CategoryPartOfSpeech, define(CategoryPartOfSpeech, posAdjectiveNo, "adj-no", "nouns which may take the genitive case particle 'no'")}
	PartOfSpeechAdjectivePrenominal = Entity{CategoryPartOfSpeech, define(CategoryPartOfSpeech, posAdjectivePrenominal, "adj-pn", "pre-noun adjectival")}
	VerbGodanB                     = Entity{CategoryPartOfSpeech, define(CategoryPartOfSpeech, posVerbGodanB, "v5b", "godan verb with 'bu' ending")}
	VerbGodanG                     = Entity{CategoryPartOfSpeech, define(CategoryPartOfSpeech, posVerbGodanG, "v5g", "godan verb with 'gu' ending")}
	VerbGodanK                     = Entity{CategoryPartOfSpeech, define(CategoryPartOfSpeech, posVerbGodanK, "v5k", "godan verb with 'ku' ending")}
	VerbGodanSpecialIku            = Entity{CategoryPartOfSpeech, define(CategoryPartOfSpeech, posVerbGodanSpecialIku, "v5k-s", "godan verb - iku/yuku special class")}
	VerbGodanM                     = Entity{CategoryPartOfSpeech, define(CategoryPartOfSpeech, posVerbGodanM, "v5m", "godan verb with 'mu' ending")}
	VerbGodanN                     = Entity{CategoryPartOfSpeech, define(CategoryPartOfSpeech, posVerbGodanN, "v5n", "godan verb with 'nu' ending")}
	VerbGodanR                     = Entity{CategoryPartOfSpeech, define(CategoryPartOfSpeech, posVerbGodanR, "v5r", "godan verb with 'ru' ending")}
	VerbGodanS                     = Entity{CategoryPartOfSpeech, define(CategoryPartOfSpeech, posVerbGodanS, "v5s", "godan verb with 'su' ending")}
	VerbGodanT                     = Entity{CategoryPartOfSpeech, define(CategoryPartOfSpeech, posVerbGodanT, "v5t", "godan verb with 'tsu' ending")}
	VerbGodanU                     = Entity{CategoryPartOfSpeech, define(CategoryPartOfSpeech, posVerbGodanU, "v5u", "godan verb with 'u' ending")}
	VerbIchidan                    = Entity{CategoryPartOfSpeech, define(CategoryPartOfSpeech, posVerbIchidan, "v1", "ichidan verb")}
	VerbSuru                       = Entity{CategoryPartOfSpeech, define(CategoryPartOfSpeech, posVerbSuru, "vs", "noun or participle which takes the aux. verb suru")}
	VerbSuruSpecial                = Entity{CategoryPartOfSpeech, define(CategoryPartOfSpeech, posVerbSuruSpecial, "vs-s", "suru verb - special class")}
	VerbSuruIncluded               = Entity{CategoryPartOfSpeech, define(CategoryPartOfSpeech, posVerbSuruIncluded, "vs-i", "suru verb - irregular")}
	VerbKuru                       = Entity{CategoryPartOfSpeech, define(CategoryPartOfSpeech, posVerbKuru, "vk", "kuru verb - special class")}
	VerbIchidanZuru                = Entity{CategoryPartOfSpeech, define(CategoryPartOfSpeech, posVerbIchidanZuru, "vz", "ichidan verb - zuru verb")}
	PartOfSpeechAuxiliary          = Entity{CategoryPartOfSpeech, define(CategoryPartOfSpeech, posAuxiliary, "aux", "auxiliary")}
	PartOfSpeechAuxiliaryVerb      = Entity{CategoryPartOfSpeech, define(CategoryPartOfSpeech, posAuxiliaryVerb, "aux-v", "auxiliary verb")}
	PartOfSpeechAuxiliaryAdjective = Entity{CategoryPartOfSpeech, define(CategoryPartOfSpeech, posAuxiliaryAdjective, "aux-adj", "auxiliary adjective")}
	PartOfSpeechConjunction        = Entity{CategoryPartOfSpeech, define(CategoryPartOfSpeech, posConjunction, "conj", "conjunction")}
	PartOfSpeechInterjection       = Entity{CategoryPartOfSpeech, define(CategoryPartOfSpeech, posInterjection, "int", "interjection")}
	PartOfSpeechPrefix             = Entity{CategoryPartOfSpeech, define(CategoryPartOfSpeech, posPrefix, "pref", "prefix")}
	PartOfSpeechSuffix             = Entity{CategoryPartOfSpeech, define(CategoryPartOfSpeech, posSuffix, "suf", "suffix")}
	PartOfSpeechCounter            = Entity{CategoryPartOfSpeech, define(CategoryPartOfSpeech, posCounter, "ctr", "counter")}
	PartOfSpeechParticle           = Entity{CategoryPartOfSpeech, define(CategoryPartOfSpeech, posParticle, "prt", "particle")}
	PartOfSpeechExpression         = Entity{CategoryPartOfSpeech, define(CategoryPartOfSpeech, posExpression, "exp", "expressions (phrases, clauses, etc.)")}
	PartOfSpeechPreNounAdjectival  = Entity{CategoryPartOfSpeech, define(CategoryPartOfSpeech, posPreNounAdjectival, "adnominal", "pre-noun adjectival (rentaishi)")}
)

// IsVerb reports whether e is one of the verb classifications the inflection
// engine can conjugate.
func IsVerb(e Entity) bool {
	if e.Category != CategoryPartOfSpeech {
		return false
	}
	switch e.Code {
	case posVerbGodanB, posVerbGodanG, posVerbGodanK, posVerbGodanSpecialIku,
		posVerbGodanM, posVerbGodanN, posVerbGodanR, posVerbGodanS, posVerbGodanT,
		posVerbGodanU, posVerbIchidan, posVerbSuru, posVerbSuruSpecial,
		posVerbSuruIncluded, posVerbKuru, posVerbIchidanZuru:
		return true
	default:
		return false
	}
}

// IsAdjective reports whether e is an i-adjective or na-adjective.
func IsAdjective(e Entity) bool {
	if e.Category != CategoryPartOfSpeech {
		return false
	}
	return e.Code == posAdjectiveI || e.Code == posAdjectiveNa
}
