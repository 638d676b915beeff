package substrate

// Magic identifies a hazuki artifact; Version gates forward compatibility.
// Bumping Version is how a future incompatible layout change is detected by
// older readers instead of silently misinterpreting bytes.
const (
	Magic          uint32 = 0x484b4449 // "HKDI"
	CurrentVersion uint32 = 1
)

// globalHeaderSize is the fixed 12-byte leading record: Magic, Version,
// IndexHeaderOffset.
const globalHeaderSize = 12

// indexHeaderSize is the fixed 40-byte body: one StrRef (8 bytes) plus six
// u32 offsets plus one SliceRef (8 bytes) = 8 + 24 + 8.
const indexHeaderSize = 40

// IndexHeader locates every top-level structure of a built artifact. All
// fields are offsets into the same backing buffer the header itself lives
// in.
type IndexHeader struct {
	Name                  StrRef
	TrieRootOffset        uint32
	ByPosMapOffset        uint32
	ByKanjiLiteralOffset  uint32
	RadicalsMapOffset     uint32
	RadicalsToKanjiOffset uint32
	BySequenceMapOffset   uint32
	Inflections           SliceRef
}

// WriteGlobalHeader reserves and writes the leading 12-byte global header.
// It must be called first, before any other writes, since its own offset is
// always 0; the index header offset is patched in after the index header is
// written.
func WriteGlobalHeader(buf *Buffer) {
	buf.StoreUint32(Magic)
	buf.StoreUint32(CurrentVersion)
	buf.StoreUint32(0) // patched once the index header lands
}

// PatchIndexHeaderOffset back-fills the global header's pointer to the index
// header once the latter has been serialized.
func PatchIndexHeaderOffset(buf *Buffer, offset uint32) {
	buf.PatchUint32(8, offset)
}

// Serialize writes h and returns the offset it was written at.
func (h IndexHeader) Serialize(buf *Buffer) uint32 {
	off := buf.Len()
	buf.StoreUint32(h.Name.Offset)
	buf.StoreUint32(h.Name.Len)
	buf.StoreUint32(h.TrieRootOffset)
	buf.StoreUint32(h.ByPosMapOffset)
	buf.StoreUint32(h.ByKanjiLiteralOffset)
	buf.StoreUint32(h.RadicalsMapOffset)
	buf.StoreUint32(h.RadicalsToKanjiOffset)
	buf.StoreUint32(h.BySequenceMapOffset)
	buf.StoreUint32(h.Inflections.Offset)
	buf.StoreUint32(h.Inflections.Len)
	return off
}

// Artifact is the entrypoint to a loaded hazuki index: the raw backing bytes
// plus the decoded index header. Every query-side type hangs off this.
type Artifact struct {
	Data   []byte
	Header IndexHeader
}

// Open validates the global header (magic + version) and decodes the index
// header out of data. data's lifetime must dominate the lifetime of every
// view derived from the returned Artifact, since none of them copy.
func Open(data []byte) (*Artifact, error) {
	if uint64(len(data)) < globalHeaderSize {
		return nil, corrupt(0, "truncated global header")
	}
	magic, err := readUint32(data, 0)
	if err != nil {
		return nil, err
	}
	if magic != Magic {
		return nil, corrupt(0, "bad magic")
	}
	version, err := readUint32(data, 4)
	if err != nil {
		return nil, err
	}
	if version != CurrentVersion {
		return nil, &ErrIncompatible{Version: version}
	}
	indexOff, err := readUint32(data, 8)
	if err != nil {
		return nil, err
	}

	h, err := loadIndexHeader(data, indexOff)
	if err != nil {
		return nil, err
	}
	return &Artifact{Data: data, Header: h}, nil
}

func loadIndexHeader(buf []byte, off uint32) (IndexHeader, error) {
	fields := make([]uint32, 10)
	for i := range fields {
		v, err := readUint32(buf, off+uint32(i)*4)
		if err != nil {
			return IndexHeader{}, err
		}
		fields[i] = v
	}
	return IndexHeader{
		Name:                  StrRef{Offset: fields[0], Len: fields[1]},
		TrieRootOffset:        fields[2],
		ByPosMapOffset:        fields[3],
		ByKanjiLiteralOffset:  fields[4],
		RadicalsMapOffset:     fields[5],
		RadicalsToKanjiOffset: fields[6],
		BySequenceMapOffset:   fields[7],
		Inflections:           SliceRef{Offset: fields[8], Len: fields[9]},
	}, nil
}
