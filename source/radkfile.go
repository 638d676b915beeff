package source

import (
	"bufio"
	"io"
	"strings"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"

	"github.com/rs/zerolog"
)

// RadicalDecomposition is one radkfile record: a kanji character plus the
// ordered list of radical component strings that compose it.
type RadicalDecomposition struct {
	Kanji    string
	Radicals []string
}

// ParseRadkfile reads a radkfile-format stream, which is EUC-JP encoded and
// line-oriented: each radical section starts with a line of the form
// "$ <radical> <stroke-count> [<alternate>]", followed by lines listing the
// kanji that contain it. This parser inverts that layout into one record per
// kanji, accumulating every radical section it appeared under. Malformed
// lines are skipped with a log line rather than aborting the build (spec
// §4.4, §7).
func ParseRadkfile(r io.Reader, logger zerolog.Logger) ([]RadicalDecomposition, error) {
	decoder := japanese.EUCJP.NewDecoder()
	utf8Reader := transform.NewReader(r, decoder)
	scanner := bufio.NewScanner(utf8Reader)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	byKanji := make(map[string][]string)
	var order []string
	var currentRadical string

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "$") {
			fields := strings.Fields(line)
			if len(fields) < 2 {
				logger.Warn().Str("line", line).Msg("radkfile: malformed radical header, skipping")
				continue
			}
			currentRadical = fields[1]
			continue
		}
		if currentRadical == "" {
			logger.Warn().Str("line", line).Msg("radkfile: kanji line before any radical header, skipping")
			continue
		}
		for _, r := range line {
			kanji := string(r)
			if _, seen := byKanji[kanji]; !seen {
				order = append(order, kanji)
			}
			byKanji[kanji] = append(byKanji[kanji], currentRadical)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &ErrMalformed{Err: err}
	}

	out := make([]RadicalDecomposition, 0, len(order))
	for _, kanji := range order {
		out = append(out, RadicalDecomposition{Kanji: kanji, Radicals: byKanji[kanji]})
	}
	return out, nil
}
