package substrate

import (
	"github.com/cespare/xxhash/v2"
)

// MapRef is the read-side handle to a serialized open-addressed hash table:
// a fixed-size bucket array, each bucket holding at most one occupied slot.
// Seeds are brute-forced at build time so every known key lands in a
// distinct bucket — a single probe either confirms occupancy by key-hash
// comparison or reports a miss, no chaining or probing sequence required.
// Grounded on rpcpool-yellowstone-faithful's compactindexsized design.
type MapRef struct {
	Seed        uint64
	BucketCount uint32
	SlotsOffset uint32
}

// mapSlotSize is the fixed, 20-byte on-disk slot layout:
//
//	Occupied      u8
//	_pad          [3]byte
//	KeyHash       u64
//	PayloadOffset u32
//	PayloadLen    u32
const mapSlotSize = 20

const mapHeaderSize = 16 // Seed u64, BucketCount u32, SlotsOffset u32

// BuildMap accumulates key/payload pairs during build, then serializes to a
// zero-collision open-addressed table.
type BuildMap struct {
	entries map[string][]byte
	order   []string
}

// NewBuildMap returns an empty map builder.
func NewBuildMap() *BuildMap {
	return &BuildMap{entries: make(map[string][]byte)}
}

// Put records key -> payload. Inserting the same key twice overwrites the
// earlier payload but preserves its original position, matching the
// builder's deterministic iteration order.
func (m *BuildMap) Put(key string, payload []byte) {
	if _, exists := m.entries[key]; !exists {
		m.order = append(m.order, key)
	}
	m.entries[key] = payload
}

func (m *BuildMap) Len() int { return len(m.order) }

// maxSeedAttempts bounds the brute-force search for a zero-collision seed at
// one bucket count. bucketCountFor keeps the load factor at or below 0.5;
// when every seed below this bound collides, findSeed doubles the bucket
// count and searches again.
const maxSeedAttempts = 100000

// Serialize writes the bucket array and slot payloads, brute-forcing a seed
// that places every key in its own bucket, and returns the resulting MapRef.
func (m *BuildMap) Serialize(buf *Buffer) MapRef {
	n := uint32(len(m.order))
	bucketCount := bucketCountFor(n)

	var seed uint64
	var buckets []int // bucket -> index into m.order, -1 if empty
	if n > 0 {
		seed, buckets = findSeed(m.order, bucketCount)
	} else {
		bucketCount = 1
		buckets = []int{-1}
	}

	// findSeed may have widened the table past the initial bucket count.
	bucketCount = uint32(len(buckets))

	// Payloads are written first so the slot array below is contiguous.
	payloadOffs := make([]uint32, len(buckets))
	for b, idx := range buckets {
		if idx >= 0 {
			payloadOffs[b] = buf.StoreRaw(m.entries[m.order[idx]])
		}
	}

	slotsOffset := buf.Len()
	for b, idx := range buckets {
		if idx < 0 {
			buf.StoreUint8(0)
			buf.StoreRaw(make([]byte, 3))
			buf.StoreUint64(0)
			buf.StoreUint32(0)
			buf.StoreUint32(0)
			continue
		}
		key := m.order[idx]
		payload := m.entries[key]
		buf.StoreUint8(1)
		buf.StoreRaw(make([]byte, 3))
		buf.StoreUint64(keyHash(seed, key))
		buf.StoreUint32(payloadOffs[b])
		buf.StoreUint32(uint32(len(payload)))
	}

	return MapRef{Seed: seed, BucketCount: bucketCount, SlotsOffset: slotsOffset}
}

// WriteHeader serializes r's own 16-byte header record (Seed, BucketCount,
// SlotsOffset) and returns the offset it was written at. IndexHeader fields
// point here, not at the slot array directly, so a MapRef can be loaded back
// with LoadMapRef without the caller needing to know the bucket count
// up front.
func (r MapRef) WriteHeader(buf *Buffer) uint32 {
	off := buf.Len()
	buf.StoreUint64(r.Seed)
	buf.StoreUint32(r.BucketCount)
	buf.StoreUint32(r.SlotsOffset)
	return off
}

// LoadMapRef decodes a MapRef header previously written at off.
func LoadMapRef(buf []byte, off uint32) (MapRef, error) {
	seed, err := readUint64(buf, off)
	if err != nil {
		return MapRef{}, err
	}
	bucketCount, err := readUint32(buf, off+8)
	if err != nil {
		return MapRef{}, err
	}
	slotsOffset, err := readUint32(buf, off+12)
	if err != nil {
		return MapRef{}, err
	}
	return MapRef{Seed: seed, BucketCount: bucketCount, SlotsOffset: slotsOffset}, nil
}

func bucketCountFor(n uint32) uint32 {
	if n == 0 {
		return 1
	}
	c := n * 2
	if c < 8 {
		c = 8
	}
	return c
}

func keyHash(seed uint64, key string) uint64 {
	d := xxhash.New()
	var seedBytes [8]byte
	for i := 0; i < 8; i++ {
		seedBytes[i] = byte(seed >> (8 * i))
	}
	d.Write(seedBytes[:])
	d.Write([]byte(key))
	return d.Sum64()
}

func findSeed(keys []string, bucketCount uint32) (uint64, []int) {
	for seed := uint64(0); seed < maxSeedAttempts; seed++ {
		buckets := make([]int, bucketCount)
		for i := range buckets {
			buckets[i] = -1
		}
		collided := false
		for idx, key := range keys {
			b := keyHash(seed, key) % uint64(bucketCount)
			if buckets[b] != -1 {
				collided = true
				break
			}
			buckets[b] = idx
		}
		if !collided {
			return seed, buckets
		}
	}
	// No seed worked at this table size: double the bucket count and search
	// again. This repeats until a seed is found; it never fails the build.
	return findSeed(keys, bucketCount*2)
}

// Lookup returns the payload bytes for key, or (nil, false) if absent.
func (r MapRef) Lookup(buf []byte, key string) ([]byte, bool, error) {
	if r.BucketCount == 0 {
		return nil, false, nil
	}
	h := keyHash(r.Seed, key)
	bucket := h % uint64(r.BucketCount)
	slotOff := r.SlotsOffset + uint32(bucket)*mapSlotSize

	occupied, err := readUint8(buf, slotOff)
	if err != nil {
		return nil, false, err
	}
	if occupied == 0 {
		return nil, false, nil
	}
	storedHash, err := readUint64(buf, slotOff+4)
	if err != nil {
		return nil, false, err
	}
	if storedHash != h {
		return nil, false, nil
	}
	payloadOff, err := readUint32(buf, slotOff+12)
	if err != nil {
		return nil, false, err
	}
	payloadLen, err := readUint32(buf, slotOff+16)
	if err != nil {
		return nil, false, err
	}
	payload, err := readSlice(buf, payloadOff, payloadLen)
	if err != nil {
		return nil, false, err
	}
	return payload, true, nil
}
