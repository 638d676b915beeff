package substrate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBufferStoreAndRead(t *testing.T) {
	buf := NewBuffer()

	u8Off := buf.StoreUint8(7)
	u16Off := buf.StoreUint16(1000)
	u32Off := buf.StoreUint32(70000)
	u64Off := buf.StoreUint64(1 << 40)
	rawOff := buf.StoreRaw([]byte("hazuki"))

	v8, err := readUint8(buf.Bytes(), u8Off)
	assert.NoError(t, err)
	assert.EqualValues(t, 7, v8)

	v16, err := readUint16(buf.Bytes(), u16Off)
	assert.NoError(t, err)
	assert.EqualValues(t, 1000, v16)

	v32, err := readUint32(buf.Bytes(), u32Off)
	assert.NoError(t, err)
	assert.EqualValues(t, 70000, v32)

	v64, err := readUint64(buf.Bytes(), u64Off)
	assert.NoError(t, err)
	assert.EqualValues(t, 1<<40, v64)

	raw, err := readSlice(buf.Bytes(), rawOff, 6)
	assert.NoError(t, err)
	assert.Equal(t, "hazuki", string(raw))
}

func TestBufferAlign(t *testing.T) {
	buf := NewBuffer()
	buf.StoreUint8(1)
	buf.Align(4)
	assert.EqualValues(t, 4, buf.Len())
	buf.Align(4)
	assert.EqualValues(t, 4, buf.Len())
}

func TestBufferPatchUint32(t *testing.T) {
	buf := NewBuffer()
	off := buf.StoreUint32(0)
	buf.PatchUint32(off, 12345)

	v, err := readUint32(buf.Bytes(), off)
	assert.NoError(t, err)
	assert.EqualValues(t, 12345, v)
}

func TestCheckedReadsOutOfRange(t *testing.T) {
	buf := NewBuffer()
	buf.StoreUint32(1)

	_, err := readUint64(buf.Bytes(), 0)
	assert.Error(t, err)

	var corrupt *ErrCorrupt
	assert.ErrorAs(t, err, &corrupt)
}
