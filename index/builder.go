package index

import (
	"strconv"

	"github.com/rs/zerolog"

	"github.com/hazuki-dict/hazuki/inflect"
	"github.com/hazuki-dict/hazuki/intern"
	"github.com/hazuki-dict/hazuki/source"
	"github.com/hazuki-dict/hazuki/substrate"
	"github.com/hazuki-dict/hazuki/taxonomy"
)

// BuildInput is everything a build pass needs: the parsed records from each
// source corpus, already decoded by the source package's parsers, plus the
// artifact's display name and a logger for progress reporting.
type BuildInput struct {
	Name     string
	Phrases  []source.PhraseEntry
	Names    []source.NameEntry
	Kanji    []source.Character
	Radicals []source.RadicalDecomposition
	Logger   zerolog.Logger
}

// builder accumulates every structure a Build pass produces before it's
// serialized: the shared buffer, the string interner, the lookup trie, and
// the five auxiliary maps plus the deduplicated inflection descriptor table.
type builder struct {
	buf *substrate.Buffer
	in  *intern.Interner
	trie *substrate.BuildTrie

	byPos           *substrate.BuildMap
	byPosAccum      map[string][]substrate.LocatedID
	byKanjiLiteral  *substrate.BuildMap
	radicalsMap     *substrate.BuildMap
	radicalsAccum   map[string][]substrate.StrRef
	radicalsToKanji *substrate.BuildMap
	radToKanjiAccum map[string][]substrate.StrRef
	bySequence      *substrate.BuildMap

	inflectionDescs  []substrate.InflectionDescriptor
	inflectionLookup map[substrate.InflectionDescriptor]uint16
}

// Build runs the whole offline build pipeline over in and returns the
// serialized artifact bytes (spec §5): parse results are already in hand by
// the time this is called; this stage enumerates every lookup key, interns
// every string, and assembles the trie and auxiliary maps.
func Build(in BuildInput) []byte {
	b := &builder{
		buf:              substrate.NewBuffer(),
		trie:             substrate.NewBuildTrie(),
		byPos:            substrate.NewBuildMap(),
		byPosAccum:       make(map[string][]substrate.LocatedID),
		byKanjiLiteral:   substrate.NewBuildMap(),
		radicalsMap:      substrate.NewBuildMap(),
		radicalsAccum:    make(map[string][]substrate.StrRef),
		radicalsToKanji:  substrate.NewBuildMap(),
		radToKanjiAccum:  make(map[string][]substrate.StrRef),
		bySequence:       substrate.NewBuildMap(),
		inflectionLookup: make(map[substrate.InflectionDescriptor]uint16),
	}
	substrate.WriteGlobalHeader(b.buf)
	b.in = intern.New(b.buf)

	bar := newProgressBar(len(in.Phrases)+len(in.Names)+len(in.Kanji)+len(in.Radicals), "building index")

	for _, pe := range in.Phrases {
		b.addPhrase(pe)
		bar.Add(1)
	}
	for _, ne := range in.Names {
		b.addName(ne)
		bar.Add(1)
	}
	for _, c := range in.Kanji {
		b.addCharacter(c)
		bar.Add(1)
	}
	for _, rd := range in.Radicals {
		b.addRadicalDecomposition(rd)
		bar.Add(1)
	}

	in.Logger.Info().
		Int("phrases", len(in.Phrases)).
		Int("names", len(in.Names)).
		Int("kanji", len(in.Kanji)).
		Int("interned_strings", b.in.Len()).
		Msg("enumerated all entries, serializing artifact")

	return b.serialize(in.Name)
}

func (b *builder) addPhrase(pe source.PhraseEntry) {
	entryOffset := StorePhraseEntry(b.buf, b.in, pe)

	for slot, k := range pe.Kanji {
		b.insertSuffixes(k.Text, substrate.SourceKanji, uint16(slot), entryOffset)
	}
	for slot, r := range pe.Readings {
		b.insertSuffixes(r.Text, substrate.SourcePhrase, uint16(slot), entryOffset)
	}

	seenPos := make(map[taxonomy.Entity]bool)
	for _, s := range pe.Senses {
		for _, tag := range s.PartOfSpeech {
			entity, ok := taxonomy.ParseKeyword(tag)
			if !ok || seenPos[entity] {
				continue
			}
			seenPos[entity] = true
			b.byPosAccum[taxonomy.Symbol(entity)] = append(b.byPosAccum[taxonomy.Symbol(entity)], substrate.LocatedID{
				Source:      substrate.SourcePhrase,
				Strength:    substrate.StrengthExact,
				EntryOffset: entryOffset,
			})

			class, ok := classificationFor(entity)
			if !ok {
				continue
			}
			for _, r := range pe.Readings {
				for _, res := range inflect.Conjugate(r.Text, class) {
					if res.InflectedForm == "" {
						continue
					}
					formID := b.internInflection(class, res)
					b.trie.Insert([]byte(res.InflectedForm), substrate.LocatedID{
						Source:      substrate.SourceInflection,
						Strength:    substrate.StrengthInflection,
						Slot:        formID,
						EntryOffset: entryOffset,
					})
				}
			}
		}

		for _, g := range s.Glosses {
			for _, key := range Glossary(g.Text) {
				if key == "" {
					continue
				}
				b.trie.Insert([]byte(key), substrate.LocatedID{
					Source:      substrate.SourcePhrase,
					Strength:    substrate.StrengthSuffix,
					EntryOffset: entryOffset,
				})
			}
		}
	}

	b.bySequence.Put(strconv.FormatUint(pe.Sequence, 10), encodeSequenceSlot(KindPhrase, entryOffset))
}

func (b *builder) addName(ne source.NameEntry) {
	entryOffset := StoreNameEntry(b.buf, b.in, ne)

	for slot, k := range ne.Kanji {
		b.insertSuffixes(k, substrate.SourceName, uint16(slot), entryOffset)
	}
	for slot, r := range ne.Readings {
		b.insertSuffixes(r, substrate.SourceName, uint16(slot), entryOffset)
	}
	for _, tr := range ne.Translations {
		for _, g := range tr.Glosses {
			for _, key := range Glossary(g) {
				if key == "" {
					continue
				}
				b.trie.Insert([]byte(key), substrate.LocatedID{
					Source:      substrate.SourceName,
					Strength:    substrate.StrengthSuffix,
					EntryOffset: entryOffset,
				})
			}
		}
	}

	b.bySequence.Put(strconv.FormatUint(ne.Sequence, 10), encodeSequenceSlot(KindName, entryOffset))
}

func (b *builder) addCharacter(c source.Character) {
	entryOffset := StoreCharacterEntry(b.buf, b.in, c)

	if c.Literal != "" {
		b.trie.Insert([]byte(c.Literal), substrate.LocatedID{
			Source:      substrate.SourceKanji,
			Strength:    substrate.StrengthExact,
			EntryOffset: entryOffset,
		})

		tmp := substrate.NewBuffer()
		tmp.StoreLocatedIDs([]substrate.LocatedID{{
			Source:      substrate.SourceKanji,
			Strength:    substrate.StrengthExact,
			EntryOffset: entryOffset,
		}})
		b.byKanjiLiteral.Put(c.Literal, tmp.Bytes())
	}
}

func (b *builder) addRadicalDecomposition(rd source.RadicalDecomposition) {
	if rd.Kanji == "" {
		return
	}
	kanjiRef := b.in.Intern(rd.Kanji)

	refs := make([]substrate.StrRef, len(rd.Radicals))
	for i, radical := range rd.Radicals {
		refs[i] = b.in.Intern(radical)
	}
	b.radicalsAccum[rd.Kanji] = refs

	for _, radical := range rd.Radicals {
		b.radToKanjiAccum[radical] = append(b.radToKanjiAccum[radical], kanjiRef)
	}
}

// insertSuffixes inserts the writing's full form (exact strength) and every
// shorter suffix (suffix strength) as trie keys pointing at entryOffset.
func (b *builder) insertSuffixes(writing string, src substrate.Source, slot uint16, entryOffset uint32) {
	suffixes := SuffixKeys(writing)
	for i, key := range suffixes {
		if key == "" {
			continue
		}
		strength := substrate.StrengthSuffix
		if i == 0 {
			strength = substrate.StrengthExact
		}
		b.trie.Insert([]byte(key), substrate.LocatedID{
			Source:      src,
			Strength:    strength,
			Slot:        slot,
			EntryOffset: entryOffset,
		})
	}
}

// internInflection deduplicates (class, form) descriptors so repeated forms
// across many entries share the same descriptor slot.
func (b *builder) internInflection(class inflect.Classification, res inflect.Result) uint16 {
	desc := substrate.InflectionDescriptor{
		Classification: uint8(class),
		FormKind:       uint8(res.Kind),
		Flags:          inflectionFlags(res),
	}
	if id, ok := b.inflectionLookup[desc]; ok {
		return id
	}
	id := uint16(len(b.inflectionDescs))
	b.inflectionDescs = append(b.inflectionDescs, desc)
	b.inflectionLookup[desc] = id
	return id
}

func encodeSequenceSlot(kind EntryKind, entryOffset uint32) []byte {
	out := make([]byte, 5)
	out[0] = byte(kind)
	out[1] = byte(entryOffset)
	out[2] = byte(entryOffset >> 8)
	out[3] = byte(entryOffset >> 16)
	out[4] = byte(entryOffset >> 24)
	return out
}

func decodeSequenceSlot(raw []byte) (EntryKind, uint32) {
	offset := uint32(raw[1]) | uint32(raw[2])<<8 | uint32(raw[3])<<16 | uint32(raw[4])<<24
	return EntryKind(raw[0]), offset
}

func (b *builder) serialize(name string) []byte {
	for key, ids := range b.byPosAccum {
		tmp := substrate.NewBuffer()
		tmp.StoreLocatedIDs(ids)
		b.byPos.Put(key, tmp.Bytes())
	}
	for kanji, refs := range b.radicalsAccum {
		b.radicalsMap.Put(kanji, encodeStrRefs(refs))
	}
	for radical, refs := range b.radToKanjiAccum {
		b.radicalsToKanji.Put(radical, encodeStrRefs(refs))
	}

	nameRef := b.in.Intern(name)

	trieRoot := b.trie.Serialize(b.buf)
	byPosRef := b.byPos.Serialize(b.buf)
	byKanjiRef := b.byKanjiLiteral.Serialize(b.buf)
	radicalsRef := b.radicalsMap.Serialize(b.buf)
	radicalsToKanjiRef := b.radicalsToKanji.Serialize(b.buf)
	bySequenceRef := b.bySequence.Serialize(b.buf)
	inflectionsRef := b.buf.StoreInflectionDescriptors(b.inflectionDescs)

	header := substrate.IndexHeader{
		Name:                  nameRef,
		TrieRootOffset:        trieRoot,
		ByPosMapOffset:        byPosRef.WriteHeader(b.buf),
		ByKanjiLiteralOffset:  byKanjiRef.WriteHeader(b.buf),
		RadicalsMapOffset:     radicalsRef.WriteHeader(b.buf),
		RadicalsToKanjiOffset: radicalsToKanjiRef.WriteHeader(b.buf),
		BySequenceMapOffset:   bySequenceRef.WriteHeader(b.buf),
		Inflections:           inflectionsRef,
	}
	headerOffset := header.Serialize(b.buf)
	substrate.PatchIndexHeaderOffset(b.buf, headerOffset)

	return b.buf.Bytes()
}

// encodeStrRefs writes a count-prefixed array of raw StrRef pairs, the
// payload format used by the radical maps (a list of interned strings rather
// than LocatedIDs, since a radical name or a kanji literal here is just text,
// not an entry reference).
func encodeStrRefs(refs []substrate.StrRef) []byte {
	tmp := substrate.NewBuffer()
	tmp.StoreUint16(uint16(len(refs)))
	for _, r := range refs {
		tmp.StoreUint32(r.Offset)
		tmp.StoreUint32(r.Len)
	}
	return tmp.Bytes()
}
