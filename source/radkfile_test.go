package source_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"

	"github.com/hazuki-dict/hazuki/source"
)

func eucjp(t *testing.T, s string) []byte {
	t.Helper()
	encoded, _, err := transform.Bytes(japanese.EUCJP.NewEncoder(), []byte(s))
	require.NoError(t, err)
	return encoded
}

func TestParseRadkfileBasic(t *testing.T) {
	input := "$ 一 1\n" +
		"二三金\n" +
		"$ 人 2\n" +
		"金\n"

	decs, err := source.ParseRadkfile(bytes.NewReader(eucjp(t, input)), zerolog.Nop())
	require.NoError(t, err)

	byKanji := make(map[string][]string)
	for _, d := range decs {
		byKanji[d.Kanji] = d.Radicals
	}
	assert.Equal(t, []string{"一"}, byKanji["二"])
	assert.Equal(t, []string{"一"}, byKanji["三"])
	assert.Equal(t, []string{"一", "人"}, byKanji["金"])
}

func TestParseRadkfileSkipsMalformedHeader(t *testing.T) {
	input := "$\n金\n"
	decs, err := source.ParseRadkfile(bytes.NewReader(eucjp(t, input)), zerolog.Nop())
	require.NoError(t, err)
	assert.Empty(t, decs)
}
