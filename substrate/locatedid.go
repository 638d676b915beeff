package substrate

// Source tags how a LocatedID's key was reached, per spec: Kanji{slot},
// Phrase{slot} (reading writings), Inflection{form_id}, Name{slot}.
type Source uint8

const (
	SourceKanji Source = iota
	SourcePhrase
	SourceInflection
	SourceName
)

func (s Source) String() string {
	switch s {
	case SourceKanji:
		return "kanji"
	case SourcePhrase:
		return "phrase"
	case SourceInflection:
		return "inflection"
	case SourceName:
		return "name"
	default:
		return "unknown"
	}
}

// Strength ranks how directly a key identified its entry, used to pick the
// winner when the same entry is reached through several keys during
// deduplication (spec §4.6 step 5: exact outranks inflection outranks suffix).
type Strength uint8

const (
	StrengthSuffix Strength = iota
	StrengthInflection
	StrengthExact
)

// LocatedID is a 32-bit offset into the entry heap plus provenance. It is the
// value type stored in trie terminal nodes and in the auxiliary maps.
type LocatedID struct {
	Source      Source
	Strength    Strength
	Slot        uint16 // writing index (Kanji/Phrase/Name) or inflection form_id
	EntryOffset uint32
}

const locatedIDSize = 8

func encodeLocatedID(id LocatedID) [locatedIDSize]byte {
	var buf [locatedIDSize]byte
	buf[0] = byte(id.Source)
	buf[1] = byte(id.Strength)
	buf[2] = byte(id.Slot)
	buf[3] = byte(id.Slot >> 8)
	buf[4] = byte(id.EntryOffset)
	buf[5] = byte(id.EntryOffset >> 8)
	buf[6] = byte(id.EntryOffset >> 16)
	buf[7] = byte(id.EntryOffset >> 24)
	return buf
}

func decodeLocatedID(b []byte) LocatedID {
	return LocatedID{
		Source:      Source(b[0]),
		Strength:    Strength(b[1]),
		Slot:        uint16(b[2]) | uint16(b[3])<<8,
		EntryOffset: uint32(b[4]) | uint32(b[5])<<8 | uint32(b[6])<<16 | uint32(b[7])<<24,
	}
}

// StoreLocatedIDs appends a sorted-for-determinism list of LocatedIDs and
// returns a SliceRef over them.
func (b *Buffer) StoreLocatedIDs(ids []LocatedID) SliceRef {
	off := b.Len()
	for _, id := range ids {
		enc := encodeLocatedID(id)
		b.StoreRaw(enc[:])
	}
	return SliceRef{Offset: off, Len: uint32(len(ids))}
}

// LoadLocatedIDs decodes the LocatedID array referenced by r.
func (r SliceRef) LoadLocatedIDs(buf []byte) ([]LocatedID, error) {
	raw, err := r.Bytes(buf, locatedIDSize)
	if err != nil {
		return nil, err
	}
	out := make([]LocatedID, r.Len)
	for i := range out {
		out[i] = decodeLocatedID(raw[i*locatedIDSize : (i+1)*locatedIDSize])
	}
	return out, nil
}
