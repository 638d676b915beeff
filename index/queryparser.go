package index

import (
	"strings"

	"github.com/hazuki-dict/hazuki/taxonomy"
)

// ParsedQuery is the result of tokenizing a raw user query (spec §4.6 step 1,
// §8 scenario 2): the phrase runs to look up, plus any `#tag` entity filters.
type ParsedQuery struct {
	Phrases  []string
	Entities []taxonomy.Entity
}

// ParseQuery consumes q character by character. Whitespace separates words
// within a phrase without ending it; a `#` word is resolved against the
// taxonomy as a tag filter and ends the current phrase; the sentinel
// characters `, 、 . 。` also end the current phrase without themselves
// becoming part of it.
func ParseQuery(q string) ParsedQuery {
	var result ParsedQuery
	var word []rune
	var phraseWords []string

	flushPhrase := func() {
		if len(phraseWords) == 0 {
			return
		}
		result.Phrases = append(result.Phrases, strings.Join(phraseWords, " "))
		phraseWords = nil
	}
	flushWord := func() {
		if len(word) == 0 {
			return
		}
		w := string(word)
		word = word[:0]
		if strings.HasPrefix(w, "#") {
			if e, ok := taxonomy.ParseKeyword(w[1:]); ok {
				result.Entities = append(result.Entities, e)
			}
			flushPhrase()
			return
		}
		phraseWords = append(phraseWords, w)
	}

	for _, r := range q {
		switch {
		case isSpace(r):
			flushWord()
		case isQuerySentinel(r):
			flushWord()
			flushPhrase()
		default:
			word = append(word, r)
		}
	}
	flushWord()
	flushPhrase()

	return result
}

func isQuerySentinel(r rune) bool {
	switch r {
	case ',', '、', '.', '。':
		return true
	default:
		return false
	}
}
