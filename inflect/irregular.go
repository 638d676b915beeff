package inflect

type irregularForm struct {
	ending    string
	kind      FormKind
	polite    bool
	alternate bool
}

// suruTable is for the bare verb する, whose potential form is the
// suppletive できる rather than a regular substitution.
var suruTable = []irregularForm{
	{"する", FormPresent, false, false},
	{"します", FormPresent, true, false},
	{"した", FormPast, false, false},
	{"しました", FormPast, true, false},
	{"しない", FormNegative, false, false},
	{"しません", FormNegative, true, false},
	{"して", FormTe, false, false},
	{"しろ", FormCommand, false, false},
	{"せよ", FormCommand, false, true},
	{"できる", FormPotential, false, false},
	{"される", FormPassive, false, false},
	{"させる", FormCausative, false, false},
	{"すれば", FormConditionalBa, false, false},
	{"したら", FormHypotheticalTara, false, false},
	{"しよう", FormVolitional, false, false},
	{"しましょう", FormVolitional, true, false},
	{"したい", FormTaiForm, false, false},
}

// suruCompoundTable is for verbs formed by suffixing する to a noun stem
// (e.g. 愛する aisuru); the potential form is the regular せる substitution
// rather than the suppletive できる, since "愛できる" isn't a real word.
var suruCompoundTable = func() []irregularForm {
	t := append([]irregularForm(nil), suruTable...)
	for i := range t {
		if t[i].kind == FormPotential && !t[i].alternate {
			t[i].ending = "せる"
		}
	}
	return t
}()

func conjugateIrregular(stem, dictSuffix string, table []irregularForm) []Result {
	dict := stem + dictSuffix
	results := make([]Result, len(table))
	for i, f := range table {
		results[i] = Result{
			DictionaryForm: dict,
			InflectedForm:  stem + f.ending,
			Kind:           f.kind,
			Polite:         f.polite,
			Alternate:      f.alternate,
		}
	}
	return results
}

// kuruTable pairs each form with the okurigana-bearing kana it needs — 来る
// changes its reading across the paradigm (くる/こない/きます/こい/...), so
// unlike suru this cannot share a single stem suffix; each entry supplies its
// own tail, which conjugateKuru prepends the compound's prefix to.
var kuruTable = []struct {
	reading string
	kind    FormKind
	polite  bool
	alt     bool
}{
	{"くる", FormPresent, false, false},
	{"きます", FormPresent, true, false},
	{"きた", FormPast, false, false},
	{"きました", FormPast, true, false},
	{"こない", FormNegative, false, false},
	{"きません", FormNegative, true, false},
	{"きて", FormTe, false, false},
	{"こい", FormCommand, false, false},
	{"こられる", FormPotential, false, false},
	{"これる", FormPotential, false, true},
	{"こられる", FormPassive, false, false},
	{"こさせる", FormCausative, false, false},
	{"くれば", FormConditionalBa, false, false},
	{"きたら", FormHypotheticalTara, false, false},
	{"こよう", FormVolitional, false, false},
	{"きましょう", FormVolitional, true, false},
	{"きたい", FormTaiForm, false, false},
}

// conjugateKuru handles both bare 来る and compound kuru-verbs such as
// 持ってくる, whose paradigm is 来る's with the compound's own prefix carried
// through every form (持ってくる/持ってきます/持ってきた/...).
func conjugateKuru(reading string) []Result {
	prefix := trimSuffixRunes(reading, 2) // drop "くる"
	dict := prefix + "くる"
	results := make([]Result, len(kuruTable))
	for i, f := range kuruTable {
		results[i] = Result{
			DictionaryForm: dict,
			InflectedForm:  prefix + f.reading,
			Kind:           f.kind,
			Polite:         f.polite,
			Alternate:      f.alt,
		}
	}
	return results
}
