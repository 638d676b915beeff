package index_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hazuki-dict/hazuki/index"
)

func TestFuriganaMixedKanaAndKanji(t *testing.T) {
	groups := index.Furigana("私はお金がない星", "わたしはおかねがないほし", "")
	assert.Len(t, groups, 5)

	assert.True(t, groups[0].IsKanji)
	assert.Equal(t, "私", groups[0].Text)
	assert.Equal(t, "わたし", groups[0].Reading)

	assert.False(t, groups[1].IsKanji)
	assert.Equal(t, "はお", groups[1].Text)

	assert.True(t, groups[2].IsKanji)
	assert.Equal(t, "金", groups[2].Text)
	assert.Equal(t, "かね", groups[2].Reading)

	assert.False(t, groups[3].IsKanji)
	assert.Equal(t, "がない", groups[3].Text)

	assert.True(t, groups[4].IsKanji)
	assert.Equal(t, "星", groups[4].Text)
	assert.Equal(t, "ほし", groups[4].Reading)
}

func TestFuriganaWithTrailingOkurigana(t *testing.T) {
	groups := index.Furigana("見失", "みうしな", "う")
	assert.Len(t, groups, 2)
	assert.True(t, groups[0].IsKanji)
	assert.Equal(t, "見失", groups[0].Text)
	assert.Equal(t, "みうしな", groups[0].Reading)
	assert.False(t, groups[1].IsKanji)
	assert.Equal(t, "う", groups[1].Text)
}
