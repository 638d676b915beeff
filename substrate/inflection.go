package substrate

// InflectionDescriptor is the fixed 4-byte record stored once per inflected
// form produced by the inflection engine. Classification and FormKind are
// the closed-taxonomy discriminants for the verb/adjective class and the
// grammatical form respectively; Flags packs the polite/alternate bits.
type InflectionDescriptor struct {
	Classification uint8
	FormKind       uint8
	Flags          uint8
}

const inflectionDescriptorSize = 4

const (
	// InflectionFlagPolite marks a form as the polite (desu/masu) register.
	InflectionFlagPolite uint8 = 1 << iota
	// InflectionFlagAlternate marks a secondary/alternate rendering of a form
	// that has more than one accepted surface (e.g. a euphonic variant).
	InflectionFlagAlternate
)

// StoreInflectionDescriptors appends descriptors in order and returns a
// SliceRef over them.
func (b *Buffer) StoreInflectionDescriptors(descs []InflectionDescriptor) SliceRef {
	off := b.Len()
	for _, d := range descs {
		b.StoreUint8(d.Classification)
		b.StoreUint8(d.FormKind)
		b.StoreUint8(d.Flags)
		b.StoreUint8(0) // reserved, keeps the record 4-byte aligned
	}
	return SliceRef{Offset: off, Len: uint32(len(descs))}
}

// LoadInflectionDescriptors decodes the descriptor array referenced by r.
func (r SliceRef) LoadInflectionDescriptors(buf []byte) ([]InflectionDescriptor, error) {
	raw, err := r.Bytes(buf, inflectionDescriptorSize)
	if err != nil {
		return nil, err
	}
	out := make([]InflectionDescriptor, r.Len)
	for i := range out {
		rec := raw[i*inflectionDescriptorSize : (i+1)*inflectionDescriptorSize]
		out[i] = InflectionDescriptor{
			Classification: rec[0],
			FormKind:       rec[1],
			Flags:          rec[2],
		}
	}
	return out, nil
}
