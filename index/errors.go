package index

import "github.com/hazuki-dict/hazuki/substrate"

func corrupt(offset uint32, kind string) error {
	return &substrate.ErrCorrupt{Offset: offset, Kind: kind}
}
