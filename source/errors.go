// Package source implements the streaming parsers for the four corpora this
// system indexes: JMdict (general phrase/sense dictionary), JMnedict (proper
// names), Kanjidic2 (per-character reference), and the radkfile
// radical-decomposition table.
package source

// ErrMalformed is returned by a corpus parser when the input cannot be
// interpreted as well-formed XML, or, for ParseRadkfile, when the line
// scanner fails. The XML parsers fill in the byte offset the decoder had
// reached, for error locators (spec §7: SourceMalformed{where}).
type ErrMalformed struct {
	Offset int64
	Err    error
}

func (e *ErrMalformed) Error() string {
	return "source: malformed input at offset " + itoa(e.Offset) + ": " + e.Err.Error()
}

func (e *ErrMalformed) Unwrap() error { return e.Err }

func itoa(n int64) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
