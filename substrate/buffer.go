// Package substrate implements the binary layer the artifact is built and
// read through: an append-only byte buffer writer used during build, and a
// set of typed, offset-based views read directly off an arbitrary byte slice
// at query time. Strings and byte ranges on the read path are borrowed:
// accessors slice the backing buffer and build strings over those bytes with
// no copy. Fixed-size records (LocatedID, InflectionDescriptor, map and trie
// node headers) are decoded into small Go values.
package substrate

import "encoding/binary"

// Buffer is the append-only byte accumulator used while building an artifact.
// Every Store* method appends to the end and returns the offset the caller
// should remember to reference the written data later.
type Buffer struct {
	bytes []byte
}

// NewBuffer returns an empty, ready-to-use Buffer.
func NewBuffer() *Buffer {
	return &Buffer{bytes: make([]byte, 0, 1<<20)}
}

// Len returns the current size of the buffer in bytes — also the offset the
// next Store call will begin writing at.
func (b *Buffer) Len() uint32 {
	return uint32(len(b.bytes))
}

// Bytes returns the underlying byte slice. Callers must not retain it across
// further writes to b.
func (b *Buffer) Bytes() []byte {
	return b.bytes
}

// StoreRaw appends raw bytes verbatim and returns the offset they start at.
func (b *Buffer) StoreRaw(p []byte) uint32 {
	off := b.Len()
	b.bytes = append(b.bytes, p...)
	return off
}

// StoreUint8 appends a single byte.
func (b *Buffer) StoreUint8(v uint8) uint32 {
	off := b.Len()
	b.bytes = append(b.bytes, v)
	return off
}

// StoreUint16 appends a little-endian uint16.
func (b *Buffer) StoreUint16(v uint16) uint32 {
	off := b.Len()
	var tmp [2]byte
	binary.LittleEndian.PutUint16(tmp[:], v)
	b.bytes = append(b.bytes, tmp[:]...)
	return off
}

// StoreUint32 appends a little-endian uint32.
func (b *Buffer) StoreUint32(v uint32) uint32 {
	off := b.Len()
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	b.bytes = append(b.bytes, tmp[:]...)
	return off
}

// StoreUint64 appends a little-endian uint64.
func (b *Buffer) StoreUint64(v uint64) uint32 {
	off := b.Len()
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], v)
	b.bytes = append(b.bytes, tmp[:]...)
	return off
}

// Align pads the buffer with zero bytes until its length is a multiple of n.
func (b *Buffer) Align(n int) {
	for len(b.bytes)%n != 0 {
		b.bytes = append(b.bytes, 0)
	}
}

// PatchUint32 overwrites an already-written little-endian uint32 at off. Used
// for forward references resolved after the fact (e.g. the global header's
// pointer to the index body, written once the body is fully serialized).
func (b *Buffer) PatchUint32(off uint32, v uint32) {
	binary.LittleEndian.PutUint32(b.bytes[off:off+4], v)
}

// --- checked reads over an arbitrary, already-materialized byte slice ---

func readUint8(buf []byte, off uint32) (uint8, error) {
	if uint64(off)+1 > uint64(len(buf)) {
		return 0, corrupt(off, "uint8 out of range")
	}
	return buf[off], nil
}

func readUint16(buf []byte, off uint32) (uint16, error) {
	if uint64(off)+2 > uint64(len(buf)) {
		return 0, corrupt(off, "uint16 out of range")
	}
	return binary.LittleEndian.Uint16(buf[off : off+2]), nil
}

func readUint32(buf []byte, off uint32) (uint32, error) {
	if uint64(off)+4 > uint64(len(buf)) {
		return 0, corrupt(off, "uint32 out of range")
	}
	return binary.LittleEndian.Uint32(buf[off : off+4]), nil
}

func readUint64(buf []byte, off uint32) (uint64, error) {
	if uint64(off)+8 > uint64(len(buf)) {
		return 0, corrupt(off, "uint64 out of range")
	}
	return binary.LittleEndian.Uint64(buf[off : off+8]), nil
}

func readSlice(buf []byte, off, length uint32) ([]byte, error) {
	if uint64(off)+uint64(length) > uint64(len(buf)) {
		return nil, corrupt(off, "byte range out of range")
	}
	return buf[off : off+length], nil
}
