// Package intern implements the string interner used while building an
// artifact: every string written to the shared text region is deduplicated,
// and any string that is a suffix of one already stored reuses that
// occurrence's trailing bytes instead of writing a fresh copy.
package intern

import (
	"strings"

	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/hazuki-dict/hazuki/substrate"
)

// Interner owns the Buffer strings are written into. It is not safe for
// concurrent use; the build pipeline runs the enumerate/intern stage on a
// single goroutine.
type Interner struct {
	buf     *substrate.Buffer
	byExact map[string]substrate.StrRef
	byRev   *redblacktree.Tree
}

// New returns an Interner that writes into buf. buf may already contain
// other data; the interner only ever appends.
func New(buf *substrate.Buffer) *Interner {
	return &Interner{
		buf:     buf,
		byExact: make(map[string]substrate.StrRef),
		byRev:   redblacktree.NewWithStringComparator(),
	}
}

// Intern returns a StrRef for s, writing it to the buffer only if neither s
// nor any string containing it as a suffix has been interned before.
func (in *Interner) Intern(s string) substrate.StrRef {
	if ref, ok := in.byExact[s]; ok {
		return ref
	}
	if s == "" {
		ref := substrate.StrRef{}
		in.byExact[s] = ref
		return ref
	}

	revKey := reverse(s)

	if node, found := in.byRev.Ceiling(revKey); found {
		candidateRev := node.Key.(string)
		if strings.HasPrefix(candidateRev, revKey) {
			candidate := node.Value.(substrate.StrRef)
			suffixLen := uint32(len(s))
			ref := substrate.StrRef{
				Offset: candidate.Offset + (candidate.Len - suffixLen),
				Len:    suffixLen,
			}
			in.record(s, revKey, ref)
			return ref
		}
	}

	off := in.buf.StoreRaw([]byte(s))
	ref := substrate.StrRef{Offset: off, Len: uint32(len(s))}
	in.record(s, revKey, ref)
	return ref
}

func (in *Interner) record(s, revKey string, ref substrate.StrRef) {
	in.byExact[s] = ref
	in.byRev.Put(revKey, ref)
}

// Len reports how many distinct strings have been interned.
func (in *Interner) Len() int {
	return len(in.byExact)
}

func reverse(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}
