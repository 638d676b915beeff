package index

// FuriganaGroup is one segment of a furigana-aligned rendering: either a
// literal kana run or a kanji run paired with the portion of the reading it
// consumes.
type FuriganaGroup struct {
	IsKanji bool
	Text    string
	Reading string
}

// Furigana aligns kanji (the headword's kanji writing), reading (its kana
// reading) and an optional trailing okurigana tail into the group sequence
// spec §4.6 describes: kanji runs pair with the reading runs they
// correspond to, kana runs in the headword pass through verbatim as their
// own anchor into the reading, and any tail is appended as its own trailing
// kana group (tail is spelled identically in both the writing and the
// reading, so it never needs alignment).
func Furigana(kanji, reading, tail string) []FuriganaGroup {
	segments := segmentKanaRuns([]rune(kanji))
	readingRunes := []rune(reading)

	var out []FuriganaGroup
	rCursor := 0
	for i, seg := range segments {
		if seg.isKana {
			out = append(out, FuriganaGroup{IsKanji: false, Text: string(seg.runes)})
			rCursor += len(seg.runes)
			continue
		}

		var end int
		if next := nextKanaSegment(segments, i+1); next != nil {
			if j := indexOfRunes(readingRunes[rCursor:], next.runes); j >= 0 {
				end = rCursor + j
			} else {
				end = len(readingRunes)
			}
		} else {
			end = len(readingRunes)
		}
		out = append(out, FuriganaGroup{
			IsKanji: true,
			Text:    string(seg.runes),
			Reading: string(readingRunes[rCursor:end]),
		})
		rCursor = end
	}

	if tail != "" {
		out = append(out, FuriganaGroup{IsKanji: false, Text: tail})
	}
	return out
}

type kanaRun struct {
	isKana bool
	runes  []rune
}

func segmentKanaRuns(runes []rune) []kanaRun {
	var out []kanaRun
	for _, r := range runes {
		kana := isKanaRune(r)
		if len(out) > 0 && out[len(out)-1].isKana == kana {
			out[len(out)-1].runes = append(out[len(out)-1].runes, r)
			continue
		}
		out = append(out, kanaRun{isKana: kana, runes: []rune{r}})
	}
	return out
}

func nextKanaSegment(segments []kanaRun, from int) *kanaRun {
	for i := from; i < len(segments); i++ {
		if segments[i].isKana {
			return &segments[i]
		}
	}
	return nil
}

func isKanaRune(r rune) bool {
	return (r >= 0x3040 && r <= 0x309F) || (r >= 0x30A0 && r <= 0x30FF)
}

func indexOfRunes(haystack, needle []rune) int {
	if len(needle) == 0 {
		return 0
	}
	for i := 0; i+len(needle) <= len(haystack); i++ {
		match := true
		for j, nr := range needle {
			if haystack[i+j] != nr {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}
