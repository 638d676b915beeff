package index

import (
	"encoding/binary"
	"strconv"

	"github.com/hazuki-dict/hazuki/substrate"
)

// Index is the read-side handle to a built artifact: a memory-mapped or
// otherwise already-materialized byte slice plus the decoded top-level
// structures every query touches. Nothing here copies out of the backing
// buffer except where the caller explicitly asks for an owned projection
// (LoadEntry and friends).
type Index struct {
	art             *substrate.Artifact
	trie            substrate.TrieRef
	byPos           substrate.MapRef
	byKanjiLiteral  substrate.MapRef
	radicalsMap     substrate.MapRef
	radicalsToKanji substrate.MapRef
	bySequence      substrate.MapRef
}

// Open validates and wraps a built artifact's bytes. data's lifetime must
// dominate the lifetime of the returned Index and everything derived from it.
func Open(data []byte) (*Index, error) {
	art, err := substrate.Open(data)
	if err != nil {
		return nil, err
	}
	byPos, err := substrate.LoadMapRef(data, art.Header.ByPosMapOffset)
	if err != nil {
		return nil, err
	}
	byKanji, err := substrate.LoadMapRef(data, art.Header.ByKanjiLiteralOffset)
	if err != nil {
		return nil, err
	}
	radicals, err := substrate.LoadMapRef(data, art.Header.RadicalsMapOffset)
	if err != nil {
		return nil, err
	}
	radicalsToKanji, err := substrate.LoadMapRef(data, art.Header.RadicalsToKanjiOffset)
	if err != nil {
		return nil, err
	}
	bySequence, err := substrate.LoadMapRef(data, art.Header.BySequenceMapOffset)
	if err != nil {
		return nil, err
	}
	return &Index{
		art:             art,
		trie:            substrate.TrieRef{RootOffset: art.Header.TrieRootOffset},
		byPos:           byPos,
		byKanjiLiteral:  byKanji,
		radicalsMap:     radicals,
		radicalsToKanji: radicalsToKanji,
		bySequence:      bySequence,
	}, nil
}

// Name returns the artifact's display name.
func (ix *Index) Name() (string, error) {
	return ix.art.Header.Name.Load(ix.art.Data)
}

// Entry is the loaded, owned projection of whichever corpus an entry heap
// record belongs to. Exactly one of Phrase, Name, or Kanji is set, per Kind.
type Entry struct {
	Kind   EntryKind
	Phrase *PhraseEntry
	Name   *NameEntry
	Kanji  *CharacterEntry
}

// LoadEntry decodes the entry heap record at offset into its owned runtime
// projection.
func (ix *Index) LoadEntry(offset uint32) (Entry, error) {
	kind, err := PeekEntryKind(ix.art.Data, offset)
	if err != nil {
		return Entry{}, err
	}
	switch kind {
	case KindPhrase:
		pe, err := LoadPhraseEntry(ix.art.Data, offset)
		if err != nil {
			return Entry{}, err
		}
		return Entry{Kind: kind, Phrase: &pe}, nil
	case KindName:
		ne, err := LoadNameEntry(ix.art.Data, offset)
		if err != nil {
			return Entry{}, err
		}
		return Entry{Kind: kind, Name: &ne}, nil
	case KindKanji:
		ce, err := LoadCharacterEntry(ix.art.Data, offset)
		if err != nil {
			return Entry{}, err
		}
		return Entry{Kind: kind, Kanji: &ce}, nil
	default:
		return Entry{}, corrupt(offset, "entry: unknown kind")
	}
}

// Hit pairs a ranked Candidate with its loaded entry.
type Hit struct {
	Candidate Candidate
	Entry     Entry
}

// Lookup tokenizes query (spec §4.6 step 1), resolves every phrase run
// against the trie, intersects against any `#tag` filters, deduplicates by
// entry keeping each entry's strongest-reached LocatedID, loads every
// surviving entry, and ranks the result (spec §4.6 steps 2-7).
func (ix *Index) Lookup(query string) ([]Hit, error) {
	pq := ParseQuery(query)

	best := make(map[uint32]substrate.LocatedID)
	queryRuneLength := 0
	for _, phrase := range pq.Phrases {
		if n := len([]rune(phrase)); n > queryRuneLength {
			queryRuneLength = n
		}
		ids, err := ix.trie.Lookup(ix.art.Data, []byte(phrase))
		if err != nil {
			return nil, err
		}
		for _, id := range ids {
			if cur, ok := best[id.EntryOffset]; !ok || id.Strength > cur.Strength {
				best[id.EntryOffset] = id
			}
		}
	}

	hits := make([]Hit, 0, len(best))
	for offset, id := range best {
		entry, err := ix.LoadEntry(offset)
		if err != nil {
			return nil, err
		}

		if len(pq.Entities) > 0 {
			if entry.Phrase == nil || !entry.Phrase.HasTags(pq.Entities) {
				continue
			}
		}

		hits = append(hits, Hit{
			Candidate: candidateFor(id, offset, entry),
			Entry:     entry,
		})
	}

	candidates := make([]Candidate, len(hits))
	for i, h := range hits {
		candidates[i] = h.Candidate
	}
	Rank(candidates, queryRuneLength)
	reordered := make([]Hit, len(hits))
	for i, c := range candidates {
		for _, h := range hits {
			if h.Candidate.EntryOffset == c.EntryOffset {
				reordered[i] = h
				break
			}
		}
	}
	return reordered, nil
}

func candidateFor(id substrate.LocatedID, offset uint32, entry Entry) Candidate {
	c := Candidate{
		EntryOffset: offset,
		EntryKind:   entry.Kind,
		Strength:    id.Strength,
		Source:      id.Source,
		QueryExact:  id.Strength == substrate.StrengthExact,
	}
	switch entry.Kind {
	case KindPhrase:
		c.Sequence = entry.Phrase.Sequence
		c.SenseCount = entry.Phrase.SenseCount()
		c.Priorities = entry.Phrase.Priorities()
	case KindName:
		c.Sequence = entry.Name.Sequence
		c.SenseCount = len(entry.Name.Translations)
	}
	return c
}

// BySequence resolves an exact JMdict/JMnedict sequence number to its entry
// (spec supplemented feature: direct sequence-number lookup).
func (ix *Index) BySequence(seq uint64) (Entry, bool, error) {
	payload, ok, err := ix.bySequence.Lookup(ix.art.Data, strconv.FormatUint(seq, 10))
	if err != nil || !ok {
		return Entry{}, ok, err
	}
	if len(payload) < 5 {
		return Entry{}, false, corrupt(0, "by_sequence: truncated slot")
	}
	_, offset := decodeSequenceSlot(payload)
	entry, err := ix.LoadEntry(offset)
	return entry, err == nil, err
}

// KanjiByLiteral resolves a single kanji character to its Kanjidic2 entry
// (spec §4.4 invariant: at most one Character entry per literal).
func (ix *Index) KanjiByLiteral(literal string) (CharacterEntry, bool, error) {
	payload, ok, err := ix.byKanjiLiteral.Lookup(ix.art.Data, literal)
	if err != nil || !ok {
		return CharacterEntry{}, ok, err
	}
	ids, err := decodeLocatedIDList(payload)
	if err != nil || len(ids) == 0 {
		return CharacterEntry{}, false, err
	}
	ce, err := LoadCharacterEntry(ix.art.Data, ids[0].EntryOffset)
	return ce, err == nil, err
}

// RadicalsOf returns the radical names that decompose literal.
func (ix *Index) RadicalsOf(literal string) ([]string, error) {
	payload, ok, err := ix.radicalsMap.Lookup(ix.art.Data, literal)
	if err != nil || !ok {
		return nil, err
	}
	return decodeStrList(ix.art.Data, payload)
}

// KanjiWithRadical returns every kanji literal that is decomposed into the
// named radical.
func (ix *Index) KanjiWithRadical(radical string) ([]string, error) {
	payload, ok, err := ix.radicalsToKanji.Lookup(ix.art.Data, radical)
	if err != nil || !ok {
		return nil, err
	}
	return decodeStrList(ix.art.Data, payload)
}

// Segmentation is one prefix of a longer text that is itself a known key,
// returned by Analyze.
type Segmentation struct {
	RuneLength int
	IDs        []substrate.LocatedID
}

// Analyze walks text starting at the given rune cursor, reporting every
// prefix length that is itself a trie key, longest first — the building block for
// furigana-free sentence segmentation (spec supplemented feature: text
// analysis over an arbitrary span, not just a single isolated query term).
func (ix *Index) Analyze(text string, cursorRune int) ([]Segmentation, error) {
	runes := []rune(text)
	if cursorRune < 0 {
		cursorRune = 0
	}
	if cursorRune > len(runes) {
		cursorRune = len(runes)
	}
	remainder := string(runes[cursorRune:])

	var out []Segmentation
	err := ix.trie.WalkPrefixes(ix.art.Data, []byte(remainder), func(byteLength int, ids []substrate.LocatedID) error {
		runeLength := len([]rune(remainder[:byteLength]))
		out = append(out, Segmentation{RuneLength: runeLength, IDs: ids})
		return nil
	})
	// WalkPrefixes reports shortest first; callers get the longest match first.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, err
}

func decodeLocatedIDList(payload []byte) ([]substrate.LocatedID, error) {
	ref := substrate.SliceRef{Len: uint32(len(payload) / 8)}
	return ref.LoadLocatedIDs(payload)
}

func decodeStrList(artifactData, payload []byte) ([]string, error) {
	if len(payload) < 2 {
		return nil, corrupt(0, "radicals: truncated list")
	}
	count := binary.LittleEndian.Uint16(payload[0:2])
	out := make([]string, count)
	off := 2
	for i := range out {
		if off+8 > len(payload) {
			return nil, corrupt(0, "radicals: truncated ref")
		}
		strOff := binary.LittleEndian.Uint32(payload[off : off+4])
		strLen := binary.LittleEndian.Uint32(payload[off+4 : off+8])
		off += 8
		s, err := (substrate.StrRef{Offset: strOff, Len: strLen}).Load(artifactData)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}
