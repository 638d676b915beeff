package taxonomy

// KanjiInfo flags how a kanji writing relates to the standard form: whether
// it is an irregular okurigana usage, an outdated kanji, ateji, and so on.
const (
	kanjiInfoAteji uint16 = iota
	kanjiInfoIrregularKanaUsage
	kanjiInfoIrregularKanjiUsage
	kanjiInfoIrregularOkuriganaUsage
	kanjiInfoOutdatedKanji
	kanjiInfoRareKanjiForm
	kanjiInfoSearchOnlyKanjiForm
)

var (
	KanjiInfoAteji                    = Entity{CategoryKanjiInfo, define(CategoryKanjiInfo, kanjiInfoAteji, "ateji", "ateji (phonetic) reading")}
	KanjiInfoIrregularKanaUsage       = Entity{CategoryKanjiInfo, define(CategoryKanjiInfo, kanjiInfoIrregularKanaUsage, "ik", "word containing irregular kana usage")}
	KanjiInfoIrregularKanjiUsage      = Entity{CategoryKanjiInfo, define(CategoryKanjiInfo, kanjiInfoIrregularKanjiUsage, "iK", "word containing irregular kanji usage")}
	KanjiInfoIrregularOkuriganaUsage  = Entity{CategoryKanjiInfo, define(CategoryKanjiInfo, kanjiInfoIrregularOkuriganaUsage, "io", "irregular okurigana usage")}
	KanjiInfoOutdatedKanji            = Entity{CategoryKanjiInfo, define(CategoryKanjiInfo, kanjiInfoOutdatedKanji, "oK", "word containing out-dated kanji or kanji usage")}
	KanjiInfoRareKanjiForm            = Entity{CategoryKanjiInfo, define(CategoryKanjiInfo, kanjiInfoRareKanjiForm, "rK", "rarely used kanji form")}
	KanjiInfoSearchOnlyKanjiForm      = Entity{CategoryKanjiInfo, define(CategoryKanjiInfo, kanjiInfoSearchOnlyKanjiForm, "sK", "search-only kanji form")}
)

// ReadingInfo flags how a reading writing relates to its kanji writings.
const (
	readingInfoGikunOrJukujikun uint16 = iota
	readingInfoIrregularKanaUsage
	readingInfoOutdatedOrOldKanaUsage
	readingInfoSearchOnlyKanaForm
)

var (
	ReadingInfoGikunOrJukujikun      = Entity{CategoryReadingInfo, define(CategoryReadingInfo, readingInfoGikunOrJukujikun, "gikun", "gikun/jukujikun (meaning as reading) or irregular reading")}
	ReadingInfoIrregularKanaUsage    = Entity{CategoryReadingInfo, define(CategoryReadingInfo, readingInfoIrregularKanaUsage, "ik", "word containing irregular kana usage")}
	ReadingInfoOutdatedOrOldKanaUsage = Entity{CategoryReadingInfo, define(CategoryReadingInfo, readingInfoOutdatedOrOldKanaUsage, "ok", "out-dated or obsolete kana usage")}
	ReadingInfoSearchOnlyKanaForm    = Entity{CategoryReadingInfo, define(CategoryReadingInfo, readingInfoSearchOnlyKanaForm, "sk", "search-only kana form")}
)
