package index

// Glossary tokenizes a single gloss string into the overlapping prefix keys
// the builder emits as trie keys for it (spec §4.6 step 2, §8 scenario 1).
// The base for emission is either the start of the gloss, the position right
// after the last top-level comma, or the position right after the most
// recently opened, still-unmatched '(' — whichever scope is innermost. Every
// space, comma, or closing paren is a boundary: it emits the span from the
// active base to the current position, and a comma additionally advances
// the active base past itself (and any following spaces); an opening paren
// pushes a new, nested base, and a closing paren pops back to the enclosing
// one after emitting.
func Glossary(gloss string) []string {
	runes := []rune(gloss)
	n := len(runes)
	bases := []int{skipSpaces(runes, 0)}
	var out []string

	emit := func(cursor int) {
		base := bases[len(bases)-1]
		end := cursor
		for end > base && isSpace(runes[end-1]) {
			end--
		}
		if end > base {
			out = append(out, string(runes[base:end]))
		}
	}

	for cursor := 0; cursor < n; cursor++ {
		switch {
		case isSpace(runes[cursor]):
			if cursor == 0 || !isSpace(runes[cursor-1]) {
				emit(cursor)
			}
		case runes[cursor] == ',':
			emit(cursor)
			bases[len(bases)-1] = skipSpaces(runes, cursor+1)
		case runes[cursor] == '(':
			bases = append(bases, skipSpaces(runes, cursor+1))
		case runes[cursor] == ')':
			emit(cursor)
			if len(bases) > 1 {
				bases = bases[:len(bases)-1]
			}
		}
	}
	emit(n)
	return out
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

func skipSpaces(runes []rune, from int) int {
	i := from
	for i < len(runes) && isSpace(runes[i]) {
		i++
	}
	return i
}
