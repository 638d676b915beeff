package inflect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hazuki-dict/hazuki/inflect"
)

func findForm(t *testing.T, results []inflect.Result, kind inflect.FormKind, polite, alternate bool) inflect.Result {
	t.Helper()
	for _, r := range results {
		if r.Kind == kind && r.Polite == polite && r.Alternate == alternate {
			return r
		}
	}
	t.Fatalf("no result for kind=%v polite=%v alternate=%v", kind, polite, alternate)
	return inflect.Result{}
}

func TestConjugateGodanU(t *testing.T) {
	results := inflect.Conjugate("かう", inflect.GodanU)
	assert.Equal(t, "かった", findForm(t, results, inflect.FormPast, false, false).InflectedForm)
	assert.Equal(t, "かいます", findForm(t, results, inflect.FormPresent, true, false).InflectedForm)
	assert.Equal(t, "かわない", findForm(t, results, inflect.FormNegative, false, false).InflectedForm)
	assert.Equal(t, "かって", findForm(t, results, inflect.FormTe, false, false).InflectedForm)
}

func TestConjugateGodanK(t *testing.T) {
	results := inflect.Conjugate("かく", inflect.GodanK)
	assert.Equal(t, "かいた", findForm(t, results, inflect.FormPast, false, false).InflectedForm)
	assert.Equal(t, "かいて", findForm(t, results, inflect.FormTe, false, false).InflectedForm)
}

func TestConjugateGodanSpecialIku(t *testing.T) {
	results := inflect.Conjugate("いく", inflect.GodanSpecialIku)
	assert.Equal(t, "いった", findForm(t, results, inflect.FormPast, false, false).InflectedForm)
	assert.Equal(t, "いって", findForm(t, results, inflect.FormTe, false, false).InflectedForm)
}

func TestConjugateGodanS(t *testing.T) {
	results := inflect.Conjugate("はなす", inflect.GodanS)
	assert.Equal(t, "はなした", findForm(t, results, inflect.FormPast, false, false).InflectedForm)
	assert.Equal(t, "はなして", findForm(t, results, inflect.FormTe, false, false).InflectedForm)
}

func TestConjugateGodanN(t *testing.T) {
	results := inflect.Conjugate("しぬ", inflect.GodanN)
	assert.Equal(t, "しんだ", findForm(t, results, inflect.FormPast, false, false).InflectedForm)
	assert.Equal(t, "しんで", findForm(t, results, inflect.FormTe, false, false).InflectedForm)
}

func TestConjugateGodanB(t *testing.T) {
	results := inflect.Conjugate("よぶ", inflect.GodanB)
	assert.Equal(t, "よんだ", findForm(t, results, inflect.FormPast, false, false).InflectedForm)
}

func TestConjugateGodanM(t *testing.T) {
	results := inflect.Conjugate("よむ", inflect.GodanM)
	assert.Equal(t, "よんだ", findForm(t, results, inflect.FormPast, false, false).InflectedForm)
}

func TestConjugateGodanR(t *testing.T) {
	results := inflect.Conjugate("わかる", inflect.GodanR)
	assert.Equal(t, "わかった", findForm(t, results, inflect.FormPast, false, false).InflectedForm)
	assert.Equal(t, "わかります", findForm(t, results, inflect.FormPresent, true, false).InflectedForm)
}

func TestConjugateGodanT(t *testing.T) {
	results := inflect.Conjugate("まつ", inflect.GodanT)
	assert.Equal(t, "まった", findForm(t, results, inflect.FormPast, false, false).InflectedForm)
}

func TestConjugateGodanG(t *testing.T) {
	results := inflect.Conjugate("およぐ", inflect.GodanG)
	assert.Equal(t, "およいだ", findForm(t, results, inflect.FormPast, false, false).InflectedForm)
}

func TestConjugateIchidan(t *testing.T) {
	results := inflect.Conjugate("たべる", inflect.Ichidan)
	assert.Equal(t, "たべた", findForm(t, results, inflect.FormPast, false, false).InflectedForm)
	assert.Equal(t, "たべます", findForm(t, results, inflect.FormPresent, true, false).InflectedForm)
	assert.Equal(t, "たべない", findForm(t, results, inflect.FormNegative, false, false).InflectedForm)
	assert.Equal(t, "たべて", findForm(t, results, inflect.FormTe, false, false).InflectedForm)
}

func TestConjugateSuru(t *testing.T) {
	results := inflect.Conjugate("する", inflect.Suru)
	assert.Equal(t, "した", findForm(t, results, inflect.FormPast, false, false).InflectedForm)
	assert.Equal(t, "できる", findForm(t, results, inflect.FormPotential, false, false).InflectedForm)
	assert.Equal(t, "して", findForm(t, results, inflect.FormTe, false, false).InflectedForm)
}

func TestConjugateSuruSpecial(t *testing.T) {
	results := inflect.Conjugate("あいする", inflect.SuruSpecial)
	assert.Equal(t, "あいした", findForm(t, results, inflect.FormPast, false, false).InflectedForm)
	assert.Equal(t, "あいせる", findForm(t, results, inflect.FormPotential, false, false).InflectedForm)
}

func TestConjugateKuru(t *testing.T) {
	results := inflect.Conjugate("くる", inflect.Kuru)
	assert.Equal(t, "きた", findForm(t, results, inflect.FormPast, false, false).InflectedForm)
	assert.Equal(t, "こない", findForm(t, results, inflect.FormNegative, false, false).InflectedForm)
	assert.Equal(t, "こい", findForm(t, results, inflect.FormCommand, false, false).InflectedForm)
	assert.Equal(t, "きて", findForm(t, results, inflect.FormTe, false, false).InflectedForm)
}

func TestConjugateKuruCompound(t *testing.T) {
	results := inflect.Conjugate("もってくる", inflect.Kuru)
	assert.Equal(t, "もってきた", findForm(t, results, inflect.FormPast, false, false).InflectedForm)
	assert.Equal(t, "もってこない", findForm(t, results, inflect.FormNegative, false, false).InflectedForm)
	assert.Equal(t, "もってきて", findForm(t, results, inflect.FormTe, false, false).InflectedForm)
}

func TestConjugateAdjectiveI(t *testing.T) {
	results := inflect.Conjugate("たかい", inflect.AdjectiveI)
	assert.Equal(t, "たかかった", findForm(t, results, inflect.FormPast, false, false).InflectedForm)
	assert.Equal(t, "たかくない", findForm(t, results, inflect.FormNegative, false, false).InflectedForm)
	assert.Equal(t, "たかくて", findForm(t, results, inflect.FormTe, false, false).InflectedForm)
}

func TestConjugateAdjectiveNa(t *testing.T) {
	results := inflect.Conjugate("しずか", inflect.AdjectiveNa)
	assert.Equal(t, "しずかだった", findForm(t, results, inflect.FormPast, false, false).InflectedForm)
	assert.Equal(t, "しずかではない", findForm(t, results, inflect.FormNegative, false, false).InflectedForm)
	assert.Equal(t, "しずかじゃない", findForm(t, results, inflect.FormNegative, false, true).InflectedForm)
}

func TestClassifyGodanColumn(t *testing.T) {
	class, ok := inflect.ClassifyGodanColumn("かう")
	assert.True(t, ok)
	assert.Equal(t, inflect.GodanU, class)

	class, ok = inflect.ClassifyGodanColumn("よむ")
	assert.True(t, ok)
	assert.Equal(t, inflect.GodanM, class)

	_, ok = inflect.ClassifyGodanColumn("")
	assert.False(t, ok)
}
