package inflect

// column is a godan ending table: the five vowel-row substitutions for the
// dictionary-form final kana, plus the three euphonic te/past fragments that
// don't follow the plain vowel pattern (design note 9: store these as
// constant data keyed by column identity, one substitution code path).
type column struct {
	aRow, iRow, eRow, oRow string // か/き/け/こ for the く column, etc.
	teFragment             string // euphonic て-form ending, e.g. "いて"
	continuativeFragment   string // euphonic stem used before past, e.g. "い"
	pastFragment           string // euphonic past ending, e.g. "いた"
}

var godanColumns = map[Classification]column{
	GodanU:          {aRow: "わ", iRow: "い", eRow: "え", oRow: "お", teFragment: "って", continuativeFragment: "っ", pastFragment: "った"},
	GodanK:          {aRow: "か", iRow: "き", eRow: "け", oRow: "こ", teFragment: "いて", continuativeFragment: "い", pastFragment: "いた"},
	GodanG:          {aRow: "が", iRow: "ぎ", eRow: "げ", oRow: "ご", teFragment: "いで", continuativeFragment: "い", pastFragment: "いだ"},
	GodanS:          {aRow: "さ", iRow: "し", eRow: "せ", oRow: "そ", teFragment: "して", continuativeFragment: "し", pastFragment: "した"},
	GodanT:          {aRow: "た", iRow: "ち", eRow: "て", oRow: "と", teFragment: "って", continuativeFragment: "っ", pastFragment: "った"},
	GodanN:          {aRow: "な", iRow: "に", eRow: "ね", oRow: "の", teFragment: "んで", continuativeFragment: "ん", pastFragment: "んだ"},
	GodanB:          {aRow: "ば", iRow: "び", eRow: "べ", oRow: "ぼ", teFragment: "んで", continuativeFragment: "ん", pastFragment: "んだ"},
	GodanM:          {aRow: "ま", iRow: "み", eRow: "め", oRow: "も", teFragment: "んで", continuativeFragment: "ん", pastFragment: "んだ"},
	GodanR:          {aRow: "ら", iRow: "り", eRow: "れ", oRow: "ろ", teFragment: "って", continuativeFragment: "っ", pastFragment: "った"},
	GodanSpecialIku: {aRow: "か", iRow: "き", eRow: "け", oRow: "こ", teFragment: "って", continuativeFragment: "っ", pastFragment: "った"},
}

func conjugateGodan(reading string, col column) []Result {
	stem := trimSuffixRunes(reading, 1)
	dict := reading

	results := []Result{
		{dict, dict, FormPresent, false, false},
		{dict, stem + col.iRow + "ます", FormPresent, true, false},
		{dict, stem + col.pastFragment, FormPast, false, false},
		{dict, stem + col.iRow + "ました", FormPast, true, false},
		{dict, stem + col.aRow + "ない", FormNegative, false, false},
		{dict, stem + col.iRow + "ません", FormNegative, true, false},
		{dict, stem + col.teFragment, FormTe, false, false},
		{dict, stem + col.eRow, FormCommand, false, false},
		{dict, stem + col.eRow + "ろ", FormCommand, false, true},
		{dict, stem + col.eRow + "る", FormPotential, false, false},
		{dict, stem + col.aRow + "れる", FormPassive, false, false},
		{dict, stem + col.aRow + "せる", FormCausative, false, false},
		{dict, stem + col.aRow + "せられる", FormCausative, false, true},
		{dict, stem + col.eRow + "ば", FormConditionalBa, false, false},
		{dict, stem + col.pastFragment + "ら", FormHypotheticalTara, false, false},
		{dict, stem + col.oRow + "う", FormVolitional, false, false},
		{dict, stem + col.iRow + "ましょう", FormVolitional, true, false},
		{dict, stem + col.iRow + "たい", FormTaiForm, false, false},
	}
	return results
}
