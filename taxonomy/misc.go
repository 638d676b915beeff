package taxonomy

const (
	miscAbbreviation uint16 = iota
	miscArchaic
	miscChildrensLanguage
	miscColloquialism
	miscDerogatory
	miscFamiliar
	miscHonorific
	miscHumble
	miscIdiomaticExpression
	miscJoking
	miscManga
	miscObsolete
	miscOnomatopoeic
	miscPoetical
	miscPolite
	miscProverb
	miscRareKanjiForm
	miscSensitive
	miscSlang
	miscUsuallyKana
	miscVulgar
	miscYojijukugo
)

var (
	MiscAbbreviation        = Entity{CategoryMisc, define(CategoryMisc, miscAbbreviation, "abbr", "abbreviation")}
	MiscArchaic             = Entity{CategoryMisc, define(CategoryMisc, miscArchaic, "arch", "archaic")}
	MiscChildrensLanguage   = Entity{CategoryMisc, define(CategoryMisc, miscChildrensLanguage, "chn", "children's language")}
	MiscColloquialism       = Entity{CategoryMisc, define(CategoryMisc, miscColloquialism, "col", "colloquialism")}
	MiscDerogatory          = Entity{CategoryMisc, define(CategoryMisc, miscDerogatory, "derog", "derogatory")}
	MiscFamiliar            = Entity{CategoryMisc, define(CategoryMisc, miscFamiliar, "fam", "familiar language")}
	MiscHonorific           = Entity{CategoryMisc, define(CategoryMisc, miscHonorific, "hon", "honorific or respectful (sonkeigo) language")}
	MiscHumble              = Entity{CategoryMisc, define(CategoryMisc, miscHumble, "hum", "humble (kenjougo) language")}
	MiscIdiomaticExpression = Entity{CategoryMisc, define(CategoryMisc, miscIdiomaticExpression, "id", "idiomatic expression")}
	MiscJoking              = Entity{CategoryMisc, define(CategoryMisc, miscJoking, "joc", "jocular, humorous term")}
	MiscManga               = Entity{CategoryMisc, define(CategoryMisc, miscManga, "m-sl", "manga slang")}
	MiscObsolete             = Entity{CategoryMisc, define(CategoryMisc, miscObsolete, "obs", "obsolete term")}
	MiscOnomatopoeic        = Entity{CategoryMisc, define(CategoryMisc, miscOnomatopoeic, "on-mim", "onomatopoeic or mimetic word")}
	MiscPoetical            = Entity{CategoryMisc, define(CategoryMisc, miscPoetical, "poet", "poetical term")}
	MiscPolite              = Entity{CategoryMisc, define(CategoryMisc, miscPolite, "pol", "polite (teineigo) language")}
	MiscProverb             = Entity{CategoryMisc, define(CategoryMisc, miscProverb, "proverb", "proverb")}
	MiscRareKanjiForm       = Entity{CategoryMisc, define(CategoryMisc, miscRareKanjiForm, "rK", "rarely-used kanji form")}
	MiscSensitive           = Entity{CategoryMisc, define(CategoryMisc, miscSensitive, "sens", "sensitive word")}
	MiscSlang               = Entity{CategoryMisc, define(CategoryMisc, miscSlang, "sl", "slang")}
	MiscUsuallyKana         = Entity{CategoryMisc, define(CategoryMisc, miscUsuallyKana, "uk", "word usually written using kana alone")}
	MiscVulgar              = Entity{CategoryMisc, define(CategoryMisc, miscVulgar, "vulg", "vulgar expression or word")}
	MiscYojijukugo          = Entity{CategoryMisc, define(CategoryMisc, miscYojijukugo, "yoji", "yojijukugo")}
)
