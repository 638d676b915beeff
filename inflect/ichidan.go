package inflect

func conjugateIchidan(reading string) []Result {
	stem := trimSuffixRunes(reading, 1) // drop る
	dict := reading

	return []Result{
		{dict, dict, FormPresent, false, false},
		{dict, stem + "ます", FormPresent, true, false},
		{dict, stem + "た", FormPast, false, false},
		{dict, stem + "ました", FormPast, true, false},
		{dict, stem + "ない", FormNegative, false, false},
		{dict, stem + "ません", FormNegative, true, false},
		{dict, stem + "て", FormTe, false, false},
		{dict, stem + "ろ", FormCommand, false, false},
		{dict, stem + "よ", FormCommand, false, true},
		{dict, stem + "られる", FormPotential, false, false},
		{dict, stem + "れる", FormPotential, false, true},
		{dict, stem + "られる", FormPassive, false, false},
		{dict, stem + "させる", FormCausative, false, false},
		{dict, stem + "れば", FormConditionalBa, false, false},
		{dict, stem + "たら", FormHypotheticalTara, false, false},
		{dict, stem + "よう", FormVolitional, false, false},
		{dict, stem + "ましょう", FormVolitional, true, false},
		{dict, stem + "たい", FormTaiForm, false, false},
	}
}
