package huffpack

import (
	"math"

	"github.com/chronos-tachyon/assert"
	"golang.org/x/exp/slices"
)

// Entry is one row of a frequency table.
type Entry[S comparable] struct {
	Symbol S
	Count  uint32
}

// Frequencies maps each symbol to its number of occurrences.  Entries keep
// the order in which their symbols were first added; that order is both the
// order in which the table is persisted and the tie-break order used when
// building a Model.
//
// The zero value is an empty table ready for use.
type Frequencies[S comparable] struct {
	entries []Entry[S]
	index   map[S]int
	total   uint64
}

// Count builds the frequency table of seq.  Symbols appear in order of first
// occurrence.
func Count[S comparable](seq []S) *Frequencies[S] {
	f := &Frequencies[S]{}
	for _, sym := range seq {
		f.Add(sym, 1)
	}
	return f
}

// Add adds n occurrences of sym.  A symbol not yet in the table is appended
// at the end.  Adding zero occurrences of a new symbol is a no-op, since
// every entry must have a positive count.
func (f *Frequencies[S]) Add(sym S, n uint32) {
	if i, found := f.index[sym]; found {
		count := f.entries[i].Count
		assert.Assertf(count <= math.MaxUint32-n, "count for %s overflows: %d + %d", formatSymbol(sym), count, n)
		f.entries[i].Count = count + n
		f.total += uint64(n)
		return
	}
	if n == 0 {
		return
	}
	if f.index == nil {
		f.index = make(map[S]int)
	}
	f.index[sym] = len(f.entries)
	f.entries = append(f.entries, Entry[S]{Symbol: sym, Count: n})
	f.total += uint64(n)
}

// Len returns the number of distinct symbols.
func (f *Frequencies[S]) Len() int {
	return len(f.entries)
}

// Entry returns the i'th entry in insertion order.
func (f *Frequencies[S]) Entry(i int) Entry[S] {
	return f.entries[i]
}

// Entries returns a copy of all entries in insertion order.
func (f *Frequencies[S]) Entries() []Entry[S] {
	return slices.Clone(f.entries)
}

// Lookup returns the count for sym.
func (f *Frequencies[S]) Lookup(sym S) (uint32, bool) {
	i, found := f.index[sym]
	if !found {
		return 0, false
	}
	return f.entries[i].Count, true
}

// Total returns the sum of all counts, which is the length of the sequence
// the table was counted from.
func (f *Frequencies[S]) Total() uint64 {
	return f.total
}

// Clone returns an independent copy of the table.
func (f *Frequencies[S]) Clone() *Frequencies[S] {
	out := &Frequencies[S]{
		entries: slices.Clone(f.entries),
		index:   make(map[S]int, len(f.entries)),
		total:   f.total,
	}
	for i, e := range f.entries {
		out.index[e.Symbol] = i
	}
	return out
}
