package inflect

// conjugateAdjectiveI handles い-adjectives. These don't inflect for
// politeness the way verbs do (です is just appended to the plain form), and
// have no command, potential, passive, causative, or tai-form paradigm.
func conjugateAdjectiveI(reading string) []Result {
	stem := trimSuffixRunes(reading, 1) // drop い
	dict := reading

	return []Result{
		{dict, dict, FormPresent, false, false},
		{dict, dict + "です", FormPresent, true, false},
		{dict, stem + "かった", FormPast, false, false},
		{dict, dict + "でした", FormPast, true, false},
		{dict, stem + "くない", FormNegative, false, false},
		{dict, stem + "くありません", FormNegative, true, false},
		{dict, stem + "くて", FormTe, false, false},
		{dict, stem + "ければ", FormConditionalBa, false, false},
		{dict, stem + "かったら", FormHypotheticalTara, false, false},
	}
}

// conjugateAdjectiveNa handles な-adjectives, whose inflection is carried
// entirely by the copula だ/です rather than the stem itself. じゃ is the
// colloquial contraction of では, surfaced as an alternate form.
func conjugateAdjectiveNa(reading string) []Result {
	dict := reading

	return []Result{
		{dict, dict + "だ", FormPresent, false, false},
		{dict, dict + "です", FormPresent, true, false},
		{dict, dict + "だった", FormPast, false, false},
		{dict, dict + "でした", FormPast, true, false},
		{dict, dict + "ではない", FormNegative, false, false},
		{dict, dict + "じゃない", FormNegative, false, true},
		{dict, dict + "ではありません", FormNegative, true, false},
		{dict, dict + "で", FormTe, false, false},
		{dict, dict + "であれば", FormConditionalBa, false, false},
		{dict, dict + "だったら", FormHypotheticalTara, false, false},
	}
}
