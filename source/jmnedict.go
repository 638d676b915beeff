package source

import (
	"encoding/xml"
	"io"
)

// NameEntry is one JMnedict entry: sequence number, kanji/reading writings,
// and one or more name-translation groups.
type NameEntry struct {
	Sequence     uint64
	Kanji        []string
	Readings     []string
	Translations []NameTranslation
}

// NameTranslation is a group of name-type tags plus translation glosses.
type NameTranslation struct {
	NameTypes []string
	Glosses   []string
}

type xmlJMnedictEntry struct {
	Sequence uint64          `xml:"ent_seq"`
	Kanji    []xmlNameKEle   `xml:"k_ele"`
	Reading  []xmlNameREle   `xml:"r_ele"`
	Trans    []xmlNameTrans  `xml:"trans"`
}

type xmlNameKEle struct {
	Keb string `xml:"keb"`
}

type xmlNameREle struct {
	Reb string `xml:"reb"`
}

type xmlNameTrans struct {
	NameType []string `xml:"name_type"`
	Det      []string `xml:"trans_det"`
}

// ParseJMnedict reads a full JMnedict XML document and returns every entry.
func ParseJMnedict(r io.Reader) ([]NameEntry, error) {
	d := xml.NewDecoder(r)
	d.Strict = false

	var out []NameEntry
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
		var raw xmlJMnedictEntry
		if err := d.DecodeElement(&raw, &se); err != nil {
			continue
		}
		out = append(out, convertJMnedictEntry(raw))
	}
	return out, nil
}

func convertJMnedictEntry(raw xmlJMnedictEntry) NameEntry {
	entry := NameEntry{Sequence: raw.Sequence}
	for _, k := range raw.Kanji {
		entry.Kanji = append(entry.Kanji, k.Keb)
	}
	for _, r := range raw.Reading {
		entry.Readings = append(entry.Readings, r.Reb)
	}
	for _, tr := range raw.Trans {
		entry.Translations = append(entry.Translations, NameTranslation{
			NameTypes: append([]string(nil), tr.NameType...),
			Glosses:   append([]string(nil), tr.Det...),
		})
	}
	return entry
}
