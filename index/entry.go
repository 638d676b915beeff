package index

import (
	"github.com/hazuki-dict/hazuki/intern"
	"github.com/hazuki-dict/hazuki/source"
	"github.com/hazuki-dict/hazuki/substrate"
	"github.com/hazuki-dict/hazuki/taxonomy"
)

// EntryKind discriminates which of the three corpora's record shape an entry
// heap record holds. It is the first byte of every record, letting
// Index.LoadEntry dispatch without the caller needing to know the kind up
// front.
type EntryKind uint8

const (
	KindPhrase EntryKind = iota
	KindName
	KindKanji
)

// entryRecordPrefix is kind (1 byte) + payload length (4 bytes), letting a
// reader skip an entry heap record without decoding its body — the
// "self-describing serialized entries" spec §3 calls for.
const entryRecordPrefix = 5

// --- runtime projection types: borrowed-string views over a loaded Entry ---

type KanjiWriting struct {
	Text       string
	Priorities []taxonomy.Priority
	Info       []taxonomy.Entity
}

type ReadingWriting struct {
	Text         string
	Priorities   []taxonomy.Priority
	Info         []taxonomy.Entity
	NoKanji      bool
	RestrictedTo []string
}

type Gloss struct {
	Text    string
	Lang    string
	Kind    taxonomy.Entity
	HasKind bool
}

type LangSource struct {
	Lang  string
	Text  string
	Wasei bool
}

type Sense struct {
	PartOfSpeech []taxonomy.Entity
	Fields       []taxonomy.Entity
	Dialects     []taxonomy.Entity
	Misc         []taxonomy.Entity
	Glosses      []Gloss
	CrossRefs    []string
	Antonyms     []string
	SourceLangs  []LangSource
}

// PhraseEntry is the runtime projection of a general dictionary entry.
type PhraseEntry struct {
	Sequence uint64
	Kanji    []KanjiWriting
	Readings []ReadingWriting
	Senses   []Sense
}

// SenseCount is used directly by the ranking function's sense_count term.
func (e PhraseEntry) SenseCount() int { return len(e.Senses) }

// Priorities collects every priority marker across the entry's kanji and
// reading writings, which is what the ranking function's priority term
// maximizes over (spec §4.6: "maximum over the entry's priority tags").
func (e PhraseEntry) Priorities() []taxonomy.Priority {
	var out []taxonomy.Priority
	for _, k := range e.Kanji {
		out = append(out, k.Priorities...)
	}
	for _, r := range e.Readings {
		out = append(out, r.Priorities...)
	}
	return out
}

// HasTags reports whether every entity in want is present somewhere on the
// entry (part-of-speech, field, dialect, or misc tag of any sense), used by
// the query pipeline's tag-filter intersection step.
func (e PhraseEntry) HasTags(want []taxonomy.Entity) bool {
	for _, w := range want {
		if !e.hasTag(w) {
			return false
		}
	}
	return true
}

func (e PhraseEntry) hasTag(want taxonomy.Entity) bool {
	for _, s := range e.Senses {
		for _, groups := range [][]taxonomy.Entity{s.PartOfSpeech, s.Fields, s.Dialects, s.Misc} {
			for _, e := range groups {
				if e == want {
					return true
				}
			}
		}
	}
	return false
}

type NameTranslation struct {
	NameTypes []taxonomy.Entity
	Glosses   []string
}

// NameEntry is the runtime projection of a proper-name dictionary entry.
type NameEntry struct {
	Sequence     uint64
	Kanji        []string
	Readings     []string
	Translations []NameTranslation
}

type KanjiMeaning struct {
	Text string
	Lang string
}

// CharacterEntry is the runtime projection of a single kanji reference
// entry.
type CharacterEntry struct {
	Literal     string
	Radicals    []int
	Grade       int
	StrokeCount int
	Frequency   int
	JLPT        int
	OnReadings  []string
	KunReadings []string
	Nanori      []string
	Meanings    []string
}

// --- store: interns every string field, then writes the flat record ---

func internKanjiWriting(buf *substrate.Buffer, in *intern.Interner, w source.KanjiWriting) {
	storeStrRef(buf, in.Intern(w.Text))
	storePriorities(buf, parsePriorities(w.Priorities))
	storeEntities(buf, parseKeywords(w.Info))
}

func internReadingWriting(buf *substrate.Buffer, in *intern.Interner, w source.ReadingWriting) {
	storeStrRef(buf, in.Intern(w.Text))
	storePriorities(buf, parsePriorities(w.Priorities))
	storeEntities(buf, parseKeywords(w.Info))
	if w.NoKanji {
		buf.StoreUint8(1)
	} else {
		buf.StoreUint8(0)
	}
	refs := make([]substrate.StrRef, len(w.RestrictedTo))
	for i, s := range w.RestrictedTo {
		refs[i] = in.Intern(s)
	}
	storeStrRefs(buf, refs)
}

func internSense(buf *substrate.Buffer, in *intern.Interner, s source.Sense) {
	storeEntities(buf, parseKeywords(s.PartOfSpeech))
	storeEntities(buf, parseKeywords(s.Fields))
	storeEntities(buf, parseKeywords(s.Dialects))
	storeEntities(buf, parseKeywords(s.Misc))

	buf.StoreUint16(uint16(len(s.Glosses)))
	for _, g := range s.Glosses {
		storeStrRef(buf, in.Intern(g.Text))
		storeStrRef(buf, in.Intern(g.Lang))
		if kind, ok := taxonomy.ParseKeyword(g.Kind); ok {
			buf.StoreUint8(1)
			storeEntity(buf, kind)
		} else {
			buf.StoreUint8(0)
			storeEntity(buf, taxonomy.Entity{})
		}
	}

	crossRefs := make([]substrate.StrRef, len(s.CrossRefs))
	for i, c := range s.CrossRefs {
		crossRefs[i] = in.Intern(c)
	}
	storeStrRefs(buf, crossRefs)

	antonyms := make([]substrate.StrRef, len(s.Antonyms))
	for i, a := range s.Antonyms {
		antonyms[i] = in.Intern(a)
	}
	storeStrRefs(buf, antonyms)

	buf.StoreUint16(uint16(len(s.SourceLangs)))
	for _, ls := range s.SourceLangs {
		storeStrRef(buf, in.Intern(ls.Lang))
		storeStrRef(buf, in.Intern(ls.Text))
		if ls.Wasei {
			buf.StoreUint8(1)
		} else {
			buf.StoreUint8(0)
		}
	}
}

// StorePhraseEntry interns pe's strings, parses its tag keywords against the
// taxonomy, and appends the resulting record to buf. Returns the offset the
// record starts at, for use as a LocatedID.EntryOffset.
func StorePhraseEntry(buf *substrate.Buffer, in *intern.Interner, pe source.PhraseEntry) uint32 {
	body := substrate.NewBuffer()
	body.StoreUint64(pe.Sequence)

	body.StoreUint16(uint16(len(pe.Kanji)))
	for _, k := range pe.Kanji {
		internKanjiWriting(body, in, k)
	}
	body.StoreUint16(uint16(len(pe.Readings)))
	for _, r := range pe.Readings {
		internReadingWriting(body, in, r)
	}
	body.StoreUint16(uint16(len(pe.Senses)))
	for _, s := range pe.Senses {
		internSense(body, in, s)
	}

	return appendRecord(buf, KindPhrase, body)
}

// StoreNameEntry interns ne's strings, parses its tag keywords, and appends
// the resulting record to buf.
func StoreNameEntry(buf *substrate.Buffer, in *intern.Interner, ne source.NameEntry) uint32 {
	body := substrate.NewBuffer()
	body.StoreUint64(ne.Sequence)

	kanjiRefs := make([]substrate.StrRef, len(ne.Kanji))
	for i, k := range ne.Kanji {
		kanjiRefs[i] = in.Intern(k)
	}
	storeStrRefs(body, kanjiRefs)

	readingRefs := make([]substrate.StrRef, len(ne.Readings))
	for i, r := range ne.Readings {
		readingRefs[i] = in.Intern(r)
	}
	storeStrRefs(body, readingRefs)

	body.StoreUint16(uint16(len(ne.Translations)))
	for _, tr := range ne.Translations {
		storeEntities(body, parseKeywords(tr.NameTypes))
		glossRefs := make([]substrate.StrRef, len(tr.Glosses))
		for i, g := range tr.Glosses {
			glossRefs[i] = in.Intern(g)
		}
		storeStrRefs(body, glossRefs)
	}

	return appendRecord(buf, KindName, body)
}

// StoreCharacterEntry interns c's strings and appends the resulting record
// to buf.
func StoreCharacterEntry(buf *substrate.Buffer, in *intern.Interner, c source.Character) uint32 {
	body := substrate.NewBuffer()
	storeStrRef(body, in.Intern(c.Literal))

	body.StoreUint16(uint16(len(c.Radicals)))
	for _, r := range c.Radicals {
		body.StoreUint16(uint16(r))
	}

	body.StoreUint16(uint16(c.Grade))
	body.StoreUint16(uint16(c.StrokeCount))
	body.StoreUint16(uint16(c.Frequency))
	body.StoreUint16(uint16(c.JLPT))

	onRefs := make([]substrate.StrRef, len(c.OnReadings))
	for i, s := range c.OnReadings {
		onRefs[i] = in.Intern(s)
	}
	storeStrRefs(body, onRefs)

	kunRefs := make([]substrate.StrRef, len(c.KunReadings))
	for i, s := range c.KunReadings {
		kunRefs[i] = in.Intern(s)
	}
	storeStrRefs(body, kunRefs)

	nanoriRefs := make([]substrate.StrRef, len(c.Nanori))
	for i, s := range c.Nanori {
		nanoriRefs[i] = in.Intern(s)
	}
	storeStrRefs(body, nanoriRefs)

	meaningRefs := make([]substrate.StrRef, len(c.Meanings))
	for i, s := range c.Meanings {
		meaningRefs[i] = in.Intern(s)
	}
	storeStrRefs(body, meaningRefs)

	return appendRecord(buf, KindKanji, body)
}

func appendRecord(buf *substrate.Buffer, kind EntryKind, body *substrate.Buffer) uint32 {
	off := buf.Len()
	buf.StoreUint8(uint8(kind))
	buf.StoreUint32(uint32(len(body.Bytes())))
	buf.StoreRaw(body.Bytes())
	return off
}

// --- load: decode a record back into its runtime projection ---

// PeekEntryKind reads the kind discriminant of the record at offset without
// decoding the rest of it.
func PeekEntryKind(data []byte, offset uint32) (EntryKind, error) {
	if uint64(offset)+1 > uint64(len(data)) {
		return 0, corrupt(offset, "entry: kind out of range")
	}
	return EntryKind(data[offset]), nil
}

func loadKanjiWriting(c *cursor, heapData []byte) (KanjiWriting, error) {
	text, err := c.str(heapData)
	if err != nil {
		return KanjiWriting{}, err
	}
	priorities, err := c.priorities()
	if err != nil {
		return KanjiWriting{}, err
	}
	info, err := c.entities(heapData)
	if err != nil {
		return KanjiWriting{}, err
	}
	return KanjiWriting{Text: text, Priorities: priorities, Info: info}, nil
}

func loadReadingWriting(c *cursor, heapData []byte) (ReadingWriting, error) {
	text, err := c.str(heapData)
	if err != nil {
		return ReadingWriting{}, err
	}
	priorities, err := c.priorities()
	if err != nil {
		return ReadingWriting{}, err
	}
	info, err := c.entities(heapData)
	if err != nil {
		return ReadingWriting{}, err
	}
	noKanjiByte, err := c.u8()
	if err != nil {
		return ReadingWriting{}, err
	}
	restrictedTo, err := c.strings(heapData)
	if err != nil {
		return ReadingWriting{}, err
	}
	return ReadingWriting{
		Text:         text,
		Priorities:   priorities,
		Info:         info,
		NoKanji:      noKanjiByte != 0,
		RestrictedTo: restrictedTo,
	}, nil
}

func loadSense(c *cursor, heapData []byte) (Sense, error) {
	pos, err := c.entities(heapData)
	if err != nil {
		return Sense{}, err
	}
	fields, err := c.entities(heapData)
	if err != nil {
		return Sense{}, err
	}
	dialects, err := c.entities(heapData)
	if err != nil {
		return Sense{}, err
	}
	misc, err := c.entities(heapData)
	if err != nil {
		return Sense{}, err
	}

	glossCount, err := c.u16()
	if err != nil {
		return Sense{}, err
	}
	glosses := make([]Gloss, glossCount)
	for i := range glosses {
		text, err := c.str(heapData)
		if err != nil {
			return Sense{}, err
		}
		lang, err := c.str(heapData)
		if err != nil {
			return Sense{}, err
		}
		hasKind, err := c.u8()
		if err != nil {
			return Sense{}, err
		}
		kind, err := c.entity()
		if err != nil {
			return Sense{}, err
		}
		glosses[i] = Gloss{Text: text, Lang: lang, Kind: kind, HasKind: hasKind != 0}
	}

	crossRefs, err := c.strings(heapData)
	if err != nil {
		return Sense{}, err
	}
	antonyms, err := c.strings(heapData)
	if err != nil {
		return Sense{}, err
	}

	srcCount, err := c.u16()
	if err != nil {
		return Sense{}, err
	}
	sourceLangs := make([]LangSource, srcCount)
	for i := range sourceLangs {
		lang, err := c.str(heapData)
		if err != nil {
			return Sense{}, err
		}
		text, err := c.str(heapData)
		if err != nil {
			return Sense{}, err
		}
		wasei, err := c.u8()
		if err != nil {
			return Sense{}, err
		}
		sourceLangs[i] = LangSource{Lang: lang, Text: text, Wasei: wasei != 0}
	}

	return Sense{
		PartOfSpeech: pos,
		Fields:       fields,
		Dialects:     dialects,
		Misc:         misc,
		Glosses:      glosses,
		CrossRefs:    crossRefs,
		Antonyms:     antonyms,
		SourceLangs:  sourceLangs,
	}, nil
}

// LoadPhraseEntry decodes the phrase record at offset. data must be the full
// artifact buffer (interned strings are addressed relative to it).
func LoadPhraseEntry(data []byte, offset uint32) (PhraseEntry, error) {
	c := &cursor{data: data, off: offset + entryRecordPrefix}

	seq, err := c.u64()
	if err != nil {
		return PhraseEntry{}, err
	}
	kanjiCount, err := c.u16()
	if err != nil {
		return PhraseEntry{}, err
	}
	kanji := make([]KanjiWriting, kanjiCount)
	for i := range kanji {
		kanji[i], err = loadKanjiWriting(c, data)
		if err != nil {
			return PhraseEntry{}, err
		}
	}
	readingCount, err := c.u16()
	if err != nil {
		return PhraseEntry{}, err
	}
	readings := make([]ReadingWriting, readingCount)
	for i := range readings {
		readings[i], err = loadReadingWriting(c, data)
		if err != nil {
			return PhraseEntry{}, err
		}
	}
	senseCount, err := c.u16()
	if err != nil {
		return PhraseEntry{}, err
	}
	senses := make([]Sense, senseCount)
	for i := range senses {
		senses[i], err = loadSense(c, data)
		if err != nil {
			return PhraseEntry{}, err
		}
	}
	return PhraseEntry{Sequence: seq, Kanji: kanji, Readings: readings, Senses: senses}, nil
}

// LoadNameEntry decodes the name record at offset.
func LoadNameEntry(data []byte, offset uint32) (NameEntry, error) {
	c := &cursor{data: data, off: offset + entryRecordPrefix}

	seq, err := c.u64()
	if err != nil {
		return NameEntry{}, err
	}
	kanji, err := c.strings(data)
	if err != nil {
		return NameEntry{}, err
	}
	readings, err := c.strings(data)
	if err != nil {
		return NameEntry{}, err
	}
	trCount, err := c.u16()
	if err != nil {
		return NameEntry{}, err
	}
	translations := make([]NameTranslation, trCount)
	for i := range translations {
		nameTypes, err := c.entities(data)
		if err != nil {
			return NameEntry{}, err
		}
		glosses, err := c.strings(data)
		if err != nil {
			return NameEntry{}, err
		}
		translations[i] = NameTranslation{NameTypes: nameTypes, Glosses: glosses}
	}
	return NameEntry{Sequence: seq, Kanji: kanji, Readings: readings, Translations: translations}, nil
}

// LoadCharacterEntry decodes the kanji-character record at offset.
func LoadCharacterEntry(data []byte, offset uint32) (CharacterEntry, error) {
	c := &cursor{data: data, off: offset + entryRecordPrefix}

	literal, err := c.str(data)
	if err != nil {
		return CharacterEntry{}, err
	}
	radCount, err := c.u16()
	if err != nil {
		return CharacterEntry{}, err
	}
	radicals := make([]int, radCount)
	for i := range radicals {
		n, err := c.u16()
		if err != nil {
			return CharacterEntry{}, err
		}
		radicals[i] = int(n)
	}
	grade, err := c.u16()
	if err != nil {
		return CharacterEntry{}, err
	}
	strokes, err := c.u16()
	if err != nil {
		return CharacterEntry{}, err
	}
	freq, err := c.u16()
	if err != nil {
		return CharacterEntry{}, err
	}
	jlpt, err := c.u16()
	if err != nil {
		return CharacterEntry{}, err
	}
	on, err := c.strings(data)
	if err != nil {
		return CharacterEntry{}, err
	}
	kun, err := c.strings(data)
	if err != nil {
		return CharacterEntry{}, err
	}
	nanori, err := c.strings(data)
	if err != nil {
		return CharacterEntry{}, err
	}
	meanings, err := c.strings(data)
	if err != nil {
		return CharacterEntry{}, err
	}
	return CharacterEntry{
		Literal:     literal,
		Radicals:    radicals,
		Grade:       int(grade),
		StrokeCount: int(strokes),
		Frequency:   int(freq),
		JLPT:        int(jlpt),
		OnReadings:  on,
		KunReadings: kun,
		Nanori:      nanori,
		Meanings:    meanings,
	}, nil
}

func parseKeywords(tags []string) []taxonomy.Entity {
	var out []taxonomy.Entity
	for _, t := range tags {
		if e, ok := taxonomy.ParseKeyword(t); ok {
			out = append(out, e)
		}
	}
	return out
}

func parsePriorities(tags []string) []taxonomy.Priority {
	var out []taxonomy.Priority
	for _, t := range tags {
		if p, ok := taxonomy.ParsePriority(t); ok {
			out = append(out, p)
		}
	}
	return out
}
