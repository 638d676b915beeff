//go:build linux || darwin

package substrate

import (
	"os"

	"golang.org/x/sys/unix"
)

// MMap is a memory-mapped region backing an Artifact's Data. It is just a
// byte slice; every typed view in this package operates on any []byte, mapped
// or not, so tests can exercise the same read path over a plain in-memory
// buffer without a file on disk.
type MMap []byte

// MapReadOnly maps f's full contents read-only. The caller owns f's lifetime
// and must keep it open at least as long as the returned MMap is in use;
// closing f after mapping does not invalidate the mapping on POSIX systems,
// but this package does not rely on that and expects callers to hold f open.
func MapReadOnly(f *os.File) (MMap, error) {
	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}
	size := fi.Size()
	if size == 0 {
		return MMap{}, nil
	}
	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, err
	}
	return MMap(data), nil
}

// Unmap releases the mapping. m must not be used afterward.
func (m MMap) Unmap() error {
	if len(m) == 0 {
		return nil
	}
	return unix.Munmap(m)
}
