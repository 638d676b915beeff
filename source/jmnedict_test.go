package source_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hazuki-dict/hazuki/source"
)

const sampleJMnedict = `<JMnedict>
<entry>
<ent_seq>5000000</ent_seq>
<k_ele><keb>東京</keb></k_ele>
<r_ele><reb>とうきょう</reb></r_ele>
<trans>
<name_type>place</name_type>
<trans_det>Tokyo</trans_det>
</trans>
</entry>
</JMnedict>`

func TestParseJMnedictBasic(t *testing.T) {
	entries, err := source.ParseJMnedict(strings.NewReader(sampleJMnedict))
	require.NoError(t, err)
	require.Len(t, entries, 1)

	e := entries[0]
	assert.EqualValues(t, 5000000, e.Sequence)
	assert.Equal(t, []string{"東京"}, e.Kanji)
	assert.Equal(t, []string{"とうきょう"}, e.Readings)
	require.Len(t, e.Translations, 1)
	assert.Equal(t, []string{"place"}, e.Translations[0].NameTypes)
	assert.Equal(t, []string{"Tokyo"}, e.Translations[0].Glosses)
}
