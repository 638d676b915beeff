package taxonomy

// GlossaryType classifies the nature of a single gloss string: a literal
// translation, a figurative one, an explanatory paraphrase, or a trademark.
const (
	glossaryTypeLiteral uint16 = iota
	glossaryTypeFigurative
	glossaryTypeExplanation
	glossaryTypeTrademark
)

var (
	GlossaryTypeLiteral     = Entity{CategoryGlossaryType, define(CategoryGlossaryType, glossaryTypeLiteral, "lit", "literal translation")}
	GlossaryTypeFigurative  = Entity{CategoryGlossaryType, define(CategoryGlossaryType, glossaryTypeFigurative, "fig", "figurative speech")}
	GlossaryTypeExplanation = Entity{CategoryGlossaryType, define(CategoryGlossaryType, glossaryTypeExplanation, "expl", "explanatory gloss")}
	GlossaryTypeTrademark   = Entity{CategoryGlossaryType, define(CategoryGlossaryType, glossaryTypeTrademark, "tm", "trademark")}
)

// ExampleSourceType records where an example sentence's source identifier
// comes from (currently only the Tanaka Corpus, tatoeba's forerunner).
const (
	exampleSourceTypeTanakaCorpus uint16 = iota
)

var (
	ExampleSourceTypeTanakaCorpus = Entity{CategoryExampleSourceType, define(CategoryExampleSourceType, exampleSourceTypeTanakaCorpus, "tan", "Tanaka Corpus")}
)
