package intern_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hazuki-dict/hazuki/intern"
	"github.com/hazuki-dict/hazuki/substrate"
)

func TestInternRoundTrip(t *testing.T) {
	buf := substrate.NewBuffer()
	in := intern.New(buf)

	ref := in.Intern("こんにちは")
	got, err := ref.Load(buf.Bytes())
	assert.NoError(t, err)
	assert.Equal(t, "こんにちは", got)
}

func TestInternDedupesExactMatches(t *testing.T) {
	buf := substrate.NewBuffer()
	in := intern.New(buf)

	a := in.Intern("食べる")
	b := in.Intern("食べる")
	assert.Equal(t, a, b)
	assert.Equal(t, 1, in.Len())
}

func TestInternSharesSuffixBytes(t *testing.T) {
	buf := substrate.NewBuffer()
	in := intern.New(buf)

	full := in.Intern("食べさせられる")
	suffix := in.Intern("せられる")

	assert.Equal(t, full.Offset+(full.Len-suffix.Len), suffix.Offset)

	gotSuffix, err := suffix.Load(buf.Bytes())
	assert.NoError(t, err)
	assert.Equal(t, "せられる", gotSuffix)

	gotFull, err := full.Load(buf.Bytes())
	assert.NoError(t, err)
	assert.Equal(t, "食べさせられる", gotFull)
}

func TestInternEmptyString(t *testing.T) {
	buf := substrate.NewBuffer()
	in := intern.New(buf)

	ref := in.Intern("")
	got, err := ref.Load(buf.Bytes())
	assert.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestInternUnrelatedStringsDoNotShareBytes(t *testing.T) {
	buf := substrate.NewBuffer()
	in := intern.New(buf)

	a := in.Intern("猫")
	b := in.Intern("犬")

	gotA, err := a.Load(buf.Bytes())
	assert.NoError(t, err)
	assert.Equal(t, "猫", gotA)

	gotB, err := b.Load(buf.Bytes())
	assert.NoError(t, err)
	assert.Equal(t, "犬", gotB)
}
