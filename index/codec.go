package index

import (
	"encoding/binary"

	"github.com/hazuki-dict/hazuki/substrate"
	"github.com/hazuki-dict/hazuki/taxonomy"
)

// cursor is a checked little-endian reader over an already-validated byte
// range of an artifact's entry heap. Entry records are flat, self-describing
// blobs (spec §3: "length-prefixed, self-describing serialized entries") —
// unlike the top-level trie/map structures, nothing inside one references
// substrate.Ref types directly except the interned StrRef pairs a record's
// string fields point at.
type cursor struct {
	data []byte
	off  uint32
}

func (c *cursor) u8() (uint8, error) {
	if uint64(c.off)+1 > uint64(len(c.data)) {
		return 0, corrupt(c.off, "entry: u8 out of range")
	}
	v := c.data[c.off]
	c.off++
	return v, nil
}

func (c *cursor) u16() (uint16, error) {
	if uint64(c.off)+2 > uint64(len(c.data)) {
		return 0, corrupt(c.off, "entry: u16 out of range")
	}
	v := binary.LittleEndian.Uint16(c.data[c.off : c.off+2])
	c.off += 2
	return v, nil
}

func (c *cursor) u32() (uint32, error) {
	if uint64(c.off)+4 > uint64(len(c.data)) {
		return 0, corrupt(c.off, "entry: u32 out of range")
	}
	v := binary.LittleEndian.Uint32(c.data[c.off : c.off+4])
	c.off += 4
	return v, nil
}

func (c *cursor) u64() (uint64, error) {
	if uint64(c.off)+8 > uint64(len(c.data)) {
		return 0, corrupt(c.off, "entry: u64 out of range")
	}
	v := binary.LittleEndian.Uint64(c.data[c.off : c.off+8])
	c.off += 8
	return v, nil
}

func (c *cursor) strRef() (substrate.StrRef, error) {
	off, err := c.u32()
	if err != nil {
		return substrate.StrRef{}, err
	}
	length, err := c.u32()
	if err != nil {
		return substrate.StrRef{}, err
	}
	return substrate.StrRef{Offset: off, Len: length}, nil
}

// str reads a StrRef and immediately loads it against heapData, which is
// always the full artifact buffer (interned strings live in the same backing
// array as the heap, just at earlier offsets).
func (c *cursor) str(heapData []byte) (string, error) {
	ref, err := c.strRef()
	if err != nil {
		return "", err
	}
	return ref.Load(heapData)
}

func (c *cursor) entity() (taxonomy.Entity, error) {
	cat, err := c.u8()
	if err != nil {
		return taxonomy.Entity{}, err
	}
	code, err := c.u16()
	if err != nil {
		return taxonomy.Entity{}, err
	}
	return taxonomy.Entity{Category: taxonomy.Category(cat), Code: code}, nil
}

func (c *cursor) entities(heapData []byte) ([]taxonomy.Entity, error) {
	n, err := c.u16()
	if err != nil {
		return nil, err
	}
	out := make([]taxonomy.Entity, n)
	for i := range out {
		out[i], err = c.entity()
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (c *cursor) priority() (taxonomy.Priority, error) {
	kind, err := c.u8()
	if err != nil {
		return taxonomy.Priority{}, err
	}
	level, err := c.u16()
	if err != nil {
		return taxonomy.Priority{}, err
	}
	return taxonomy.Priority{Kind: taxonomy.PriorityKind(kind), Level: int(level)}, nil
}

func (c *cursor) priorities() ([]taxonomy.Priority, error) {
	n, err := c.u16()
	if err != nil {
		return nil, err
	}
	out := make([]taxonomy.Priority, n)
	for i := range out {
		out[i], err = c.priority()
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (c *cursor) strings(heapData []byte) ([]string, error) {
	n, err := c.u16()
	if err != nil {
		return nil, err
	}
	out := make([]string, n)
	for i := range out {
		out[i], err = c.str(heapData)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// --- writers: thin wrappers over substrate.Buffer's append-only writes ---

func storeStrRef(buf *substrate.Buffer, s substrate.StrRef) {
	buf.StoreUint32(s.Offset)
	buf.StoreUint32(s.Len)
}

func storeEntity(buf *substrate.Buffer, e taxonomy.Entity) {
	buf.StoreUint8(uint8(e.Category))
	buf.StoreUint16(e.Code)
}

func storeEntities(buf *substrate.Buffer, es []taxonomy.Entity) {
	buf.StoreUint16(uint16(len(es)))
	for _, e := range es {
		storeEntity(buf, e)
	}
}

func storePriority(buf *substrate.Buffer, p taxonomy.Priority) {
	buf.StoreUint8(uint8(p.Kind))
	buf.StoreUint16(uint16(p.Level))
}

func storePriorities(buf *substrate.Buffer, ps []taxonomy.Priority) {
	buf.StoreUint16(uint16(len(ps)))
	for _, p := range ps {
		storePriority(buf, p)
	}
}

func storeStrRefs(buf *substrate.Buffer, refs []substrate.StrRef) {
	buf.StoreUint16(uint16(len(refs)))
	for _, r := range refs {
		storeStrRef(buf, r)
	}
}
