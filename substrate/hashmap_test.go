package substrate

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildMapRoundTrip(t *testing.T) {
	m := NewBuildMap()
	m.Put("一", []byte("ichi"))
	m.Put("二", []byte("ni"))
	m.Put("三", []byte("san"))

	buf := NewBuffer()
	ref := m.Serialize(buf)

	payload, ok, err := ref.Lookup(buf.Bytes(), "二")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "ni", string(payload))

	_, ok, err = ref.Lookup(buf.Bytes(), "四")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestBuildMapEmpty(t *testing.T) {
	m := NewBuildMap()
	buf := NewBuffer()
	ref := m.Serialize(buf)

	_, ok, err := ref.Lookup(buf.Bytes(), "anything")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestBuildMapManyKeysNoCollisions(t *testing.T) {
	m := NewBuildMap()
	want := make(map[string]string)
	for i := 0; i < 500; i++ {
		key := fmt.Sprintf("key-%d", i)
		val := fmt.Sprintf("val-%d", i)
		want[key] = val
		m.Put(key, []byte(val))
	}

	buf := NewBuffer()
	ref := m.Serialize(buf)

	for key, val := range want {
		payload, ok, err := ref.Lookup(buf.Bytes(), key)
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, val, string(payload))
	}
}

func TestMapRefHeaderRoundTrip(t *testing.T) {
	m := NewBuildMap()
	m.Put("a", []byte("1"))
	buf := NewBuffer()
	ref := m.Serialize(buf)
	headerOff := ref.WriteHeader(buf)

	loaded, err := LoadMapRef(buf.Bytes(), headerOff)
	assert.NoError(t, err)
	assert.Equal(t, ref, loaded)
}
