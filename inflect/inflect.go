// Package inflect is the conjugation engine: given a verb or adjective
// reading and its morphological classification, it produces every surface
// form the index builder must emit a trie key for.
package inflect

// Classification is the closed set of conjugation classes this engine knows
// how to handle (spec §4.5).
type Classification uint8

const (
	GodanU Classification = iota
	GodanK
	GodanG
	GodanS
	GodanT
	GodanN
	GodanB
	GodanM
	GodanR
	GodanSpecialIku
	Ichidan
	Suru
	SuruSpecial
	Kuru
	AdjectiveI
	AdjectiveNa
)

// FormKind names one grammatical form in the cross-product spec §4.5
// defines.
type FormKind uint8

const (
	FormPresent FormKind = iota
	FormPast
	FormNegative
	FormTe
	FormCommand
	FormPotential
	FormPassive
	FormCausative
	FormConditionalBa
	FormHypotheticalTara
	FormVolitional
	FormTaiForm
	FormAlternative
)

// Result is one (surface form, tag set) pair the builder turns into a trie
// key plus an InflectionDescriptor.
type Result struct {
	DictionaryForm string
	InflectedForm  string
	Kind           FormKind
	Polite         bool
	Alternate      bool
}

// Conjugate produces every form this engine generates for reading under
// class. reading must be the kana reading of the headword — phonetic
// inflection operates on pronunciation, not on kanji orthography, so a
// kanji headword like 来る must be conjugated via its reading き/く/こ.
func Conjugate(reading string, class Classification) []Result {
	switch class {
	case Ichidan:
		return conjugateIchidan(reading)
	case Suru:
		stem := trimSuffixRunes(reading, 2) // trims "する"
		return conjugateIrregular(stem, "する", suruTable)
	case SuruSpecial:
		stem := trimSuffixRunes(reading, 2) // trims "する"
		return conjugateIrregular(stem, "する", suruCompoundTable)
	case Kuru:
		return conjugateKuru(reading)
	case AdjectiveI:
		return conjugateAdjectiveI(reading)
	case AdjectiveNa:
		return conjugateAdjectiveNa(reading)
	default:
		if col, ok := godanColumns[class]; ok {
			return conjugateGodan(reading, col)
		}
		return nil
	}
}

// ClassifyGodanColumn inspects a godan dictionary-form reading's final kana
// and returns the column classification it belongs to, by morphological
// inspection as spec §4.5 describes, for callers that only know a verb is
// godan without already knowing which column.
func ClassifyGodanColumn(reading string) (Classification, bool) {
	last := lastRune(reading)
	switch last {
	case 'う':
		return GodanU, true
	case 'く':
		return GodanK, true
	case 'ぐ':
		return GodanG, true
	case 'す':
		return GodanS, true
	case 'つ':
		return GodanT, true
	case 'ぬ':
		return GodanN, true
	case 'ぶ':
		return GodanB, true
	case 'む':
		return GodanM, true
	case 'る':
		return GodanR, true
	default:
		return 0, false
	}
}

func lastRune(s string) rune {
	r := []rune(s)
	if len(r) == 0 {
		return 0
	}
	return r[len(r)-1]
}

func trimSuffixRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return ""
	}
	return string(r[:len(r)-n])
}
