package substrate

import "fmt"

// ErrCorrupt is returned whenever a typed view fails to validate against the
// underlying buffer: an offset runs past the end of the buffer, a length
// disagrees with what's available, or a nested reference fails the same check.
type ErrCorrupt struct {
	Offset uint32
	Kind   string
}

func (e *ErrCorrupt) Error() string {
	return fmt.Sprintf("substrate: corrupt artifact at offset %d (%s)", e.Offset, e.Kind)
}

func corrupt(offset uint32, kind string) error {
	return &ErrCorrupt{Offset: offset, Kind: kind}
}

// ErrIncompatible is returned on load when the artifact's version does not
// match the version this build of the library knows how to read.
type ErrIncompatible struct {
	Version uint32
}

func (e *ErrIncompatible) Error() string {
	return fmt.Sprintf("substrate: incompatible artifact version %d", e.Version)
}
