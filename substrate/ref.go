package substrate

import "unsafe"

// StrRef is Ref<str> from the design: an offset plus a UTF-8 byte length into
// the shared string region. Load never copies — it reinterprets the borrowed
// byte range as a string header over the same backing array.
type StrRef struct {
	Offset uint32
	Len    uint32
}

// Load returns the borrowed string referenced by r. The returned string
// aliases buf; callers must not mutate buf while holding it.
func (r StrRef) Load(buf []byte) (string, error) {
	if r.Len == 0 {
		return "", nil
	}
	b, err := readSlice(buf, r.Offset, r.Len)
	if err != nil {
		return "", err
	}
	return bytesToString(b), nil
}

func bytesToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}

// SliceRef is Ref<[T]> with a fixed 32-bit offset/length pair — the "compact"
// flavor fixed for this artifact version (see GLOSSARY: Trie flavor).
type SliceRef struct {
	Offset uint32
	Len    uint32
}

// Bytes returns the raw byte range the slice occupies, without any per-element
// interpretation; callers decode elements themselves.
func (r SliceRef) Bytes(buf []byte, elemSize uint32) ([]byte, error) {
	if r.Len == 0 {
		return nil, nil
	}
	total := r.Len * elemSize
	return readSlice(buf, r.Offset, total)
}

func (r SliceRef) IsEmpty() bool { return r.Len == 0 }
