// Package romaji segments kana text into morae, the pronunciation unit a
// romanization or input-method engine advances one at a time. A mora is
// either a single kana character or a consonant kana followed by a small
// yōon kana (ゃ/ゅ/ょ, or their katakana forms), which together romanize as
// one syllable (きゃ → kya, not ki + ya).
package romaji

// yoon is the set of small kana that fuse with the preceding consonant kana
// into a single mora instead of starting one of their own.
var yoon = map[rune]bool{
	'ゃ': true, 'ゅ': true, 'ょ': true,
	'ャ': true, 'ュ': true, 'ョ': true,
}

// Segment splits text into its morae, left to right. Non-kana runes (kanji,
// punctuation, latin text) each form their own single-rune segment, so
// Segment is safe to call on mixed text.
func Segment(text string) []string {
	runes := []rune(text)
	out := make([]string, 0, len(runes))
	for i := 0; i < len(runes); i++ {
		if i+1 < len(runes) && yoon[runes[i+1]] {
			out = append(out, string(runes[i:i+2]))
			i++
			continue
		}
		out = append(out, string(runes[i]))
	}
	return out
}
