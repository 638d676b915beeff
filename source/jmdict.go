package source

import (
	"encoding/xml"
	"io"
)

// PhraseEntry is one JMdict entry: a sequence number, kanji and reading
// writings, and one or more senses. All string fields borrow from the
// decoder's element content for the duration of a single DecodeElement call;
// ParseJMdict copies them out into owned strings before returning, per the
// "copy on extraction" borrow-lifetime approach design note 9 recommends
// against (note 9 prefers an arena of indices) but which this implementation
// takes for simplicity, accepting the allocation cost spec.md §9 permits.
type PhraseEntry struct {
	Sequence uint64
	Kanji    []KanjiWriting
	Readings []ReadingWriting
	Senses   []Sense
}

// KanjiWriting is one kanji (or kanji+kana) headword writing.
type KanjiWriting struct {
	Text       string
	Priorities []string
	Info       []string
}

// ReadingWriting is one kana writing, optionally restricted to a subset of
// the entry's kanji writings.
type ReadingWriting struct {
	Text         string
	Priorities   []string
	Info         []string
	NoKanji      bool
	RestrictedTo []string
}

// Sense is one numbered group of glosses plus its grammatical and usage
// tags.
type Sense struct {
	PartOfSpeech []string
	Fields       []string
	Dialects     []string
	Misc         []string
	Glosses      []Gloss
	CrossRefs    []string
	Antonyms     []string
	SourceLangs  []LangSource
}

// Gloss is a single sense translation, optionally tagged with a non-English
// language.
type Gloss struct {
	Text string
	Lang string
	Kind string
}

// LangSource is a source-language annotation on a sense (loanword origin).
// It may appear with or without text content (spec §4.4).
type LangSource struct {
	Lang string
	Text string
	Wasei bool
}

type xmlJMdictEntry struct {
	Sequence uint64   `xml:"ent_seq"`
	Kanji    []xmlKEle `xml:"k_ele"`
	Reading  []xmlREle `xml:"r_ele"`
	Sense    []xmlSense `xml:"sense"`
}

type xmlKEle struct {
	Keb string   `xml:"keb"`
	Ke_pri []string `xml:"ke_pri"`
	Ke_inf []string `xml:"ke_inf"`
}

type xmlREle struct {
	Reb     string   `xml:"reb"`
	ReNokanji *string `xml:"re_nokanji"`
	ReRestr []string `xml:"re_restr"`
	Re_pri  []string `xml:"re_pri"`
	Re_inf  []string `xml:"re_inf"`
}

type xmlSense struct {
	Pos      []string    `xml:"pos"`
	Field    []string    `xml:"field"`
	Dial     []string    `xml:"dial"`
	Misc     []string    `xml:"misc"`
	Gloss    []xmlGloss  `xml:"gloss"`
	Xref     []string    `xml:"xref"`
	Ant      []string    `xml:"ant"`
	LSource  []xmlLSource `xml:"lsource"`
}

type xmlGloss struct {
	Text string `xml:",chardata"`
	Lang string `xml:"lang,attr"`
	Type string `xml:"g_type,attr"`
}

type xmlLSource struct {
	Text  string `xml:",chardata"`
	Lang  string `xml:"lang,attr"`
	Wasei string `xml:"ls_wasei,attr"`
}

// ParseJMdict reads a full JMdict XML document and returns every entry. It
// reads the whole stream; callers supplying a gzip'd source decompress
// first. Malformed top-level XML aborts with ErrMalformed; individual
// entries that fail to decode are skipped (best-effort, matching the
// Non-goal of failing the whole build over one bad record only when the
// top-level structure itself is unreadable).
func ParseJMdict(r io.Reader) ([]PhraseEntry, error) {
	d := xml.NewDecoder(r)
	d.Strict = false

	var out []PhraseEntry
	for {
		tok, err := d.Token()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, &ErrMalformed{Offset: d.InputOffset(), Err: err}
		}
		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "entry" {
			continue
		}
		var raw xmlJMdictEntry
		if err := d.DecodeElement(&raw, &se); err != nil {
			continue
		}
		out = append(out, convertJMdictEntry(raw))
	}
	return out, nil
}

func convertJMdictEntry(raw xmlJMdictEntry) PhraseEntry {
	entry := PhraseEntry{Sequence: raw.Sequence}
	for _, k := range raw.Kanji {
		entry.Kanji = append(entry.Kanji, KanjiWriting{
			Text:       k.Keb,
			Priorities: append([]string(nil), k.Ke_pri...),
			Info:       append([]string(nil), k.Ke_inf...),
		})
	}
	for _, r := range raw.Reading {
		entry.Readings = append(entry.Readings, ReadingWriting{
			Text:         r.Reb,
			Priorities:   append([]string(nil), r.Re_pri...),
			Info:         append([]string(nil), r.Re_inf...),
			NoKanji:      r.ReNokanji != nil,
			RestrictedTo: append([]string(nil), r.ReRestr...),
		})
	}
	for _, s := range raw.Sense {
		sense := Sense{
			PartOfSpeech: append([]string(nil), s.Pos...),
			Fields:       append([]string(nil), s.Field...),
			Dialects:     append([]string(nil), s.Dial...),
			Misc:         append([]string(nil), s.Misc...),
			CrossRefs:    append([]string(nil), s.Xref...),
			Antonyms:     append([]string(nil), s.Ant...),
		}
		for _, g := range s.Gloss {
			sense.Glosses = append(sense.Glosses, Gloss{Text: g.Text, Lang: g.Lang, Kind: g.Type})
		}
		for _, ls := range s.LSource {
			sense.SourceLangs = append(sense.SourceLangs, LangSource{
				Lang:  ls.Lang,
				Text:  ls.Text,
				Wasei: ls.Wasei == "y",
			})
		}
		entry.Senses = append(entry.Senses, sense)
	}
	return entry
}
