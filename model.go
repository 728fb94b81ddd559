package huffpack

import (
	"bytes"
	"fmt"
	"io"
)

// Model is a Huffman code built from a frequency table: the code tree, the
// codeword for every symbol, and the inverse mapping from codeword to
// symbol.  Building a Model twice from the same table yields the same codes.
//
// A Model is read-only once built and may be shared between goroutines.
type Model[S comparable] struct {
	freqs   *Frequencies[S]
	root    *node[S]
	codes   map[S]Code
	table   map[Code]S
	minSize byte
	maxSize byte
}

// NewModel builds a Model from a frequency table.
func NewModel[S comparable](freqs *Frequencies[S]) (*Model[S], error) {
	m := &Model[S]{}
	if err := m.Init(freqs); err != nil {
		return nil, err
	}
	return m, nil
}

// Init initializes this Model from a frequency table.  The Model keeps its
// own copy of the table, so later changes to freqs do not affect it.
//
// A table with a single symbol yields a one-leaf tree whose only codeword is
// the empty Code.
//
func (m *Model[S]) Init(freqs *Frequencies[S]) error {
	if freqs == nil || freqs.Len() == 0 {
		return ErrEmptyInput
	}

	numEntries := freqs.Len()
	freqs = freqs.Clone()
	root := buildTree(freqs)

	*m = Model[S]{
		freqs: freqs,
		root:  root,
		codes: make(map[S]Code, numEntries),
		table: make(map[Code]S, numEntries),
	}
	return m.assignCodes()
}

// assignCodes walks the tree and records the codeword of every leaf.
//
// The walk uses an explicit stack; stackItem.x tracks progress:
//   x=0 → We just arrived at stackItem for the first time
//   x=1 → We have already processed the left child
//   x=2 → We have already processed both children
//
func (m *Model[S]) assignCodes() error {
	var hasMinMax bool
	record := func(leaf *node[S], hc Code) {
		m.codes[leaf.symbol] = hc
		m.table[hc] = leaf.symbol
		if !hasMinMax {
			hasMinMax = true
			m.minSize = hc.Size
			m.maxSize = hc.Size
			return
		}
		if m.minSize > hc.Size {
			m.minSize = hc.Size
		}
		if m.maxSize < hc.Size {
			m.maxSize = hc.Size
		}
	}

	if m.root.isLeaf() {
		record(m.root, Code{})
		return nil
	}

	type stackItem struct {
		n  *node[S]
		hc Code
		x  byte
	}

	stack := make([]stackItem, 0, log2int(m.freqs.Len())+1)
	stack = append(stack, stackItem{n: m.root})
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++

		var child *node[S]
		var bit bool
		switch x {
		case 0:
			child, bit = top.n.left, false
		case 1:
			child, bit = top.n.right, true
		default:
			stack = stack[:len(stack)-1]
			continue
		}

		if top.hc.Size >= MaxCodeSize {
			return ErrCodeTooLong
		}
		hc := top.hc.Append(bit)
		if child.isLeaf() {
			record(child, hc)
		} else {
			stack = append(stack, stackItem{n: child, hc: hc})
		}
	}
	return nil
}

// Frequencies returns the frequency table this Model was built from.  The
// caller must not modify it.
func (m *Model[S]) Frequencies() *Frequencies[S] {
	return m.freqs
}

// Len returns the number of symbols in the code.
func (m *Model[S]) Len() int {
	return len(m.codes)
}

// Code returns the codeword for sym.
func (m *Model[S]) Code(sym S) (Code, bool) {
	hc, found := m.codes[sym]
	return hc, found
}

// Symbol returns the symbol whose codeword is exactly hc.
func (m *Model[S]) Symbol(hc Code) (S, bool) {
	sym, found := m.table[hc]
	return sym, found
}

// MinSize is the bit length of the shortest codeword.
func (m *Model[S]) MinSize() byte {
	return m.minSize
}

// MaxSize is the bit length of the longest codeword.
func (m *Model[S]) MaxSize() byte {
	return m.maxSize
}

// Encoder returns an Encoder for this Model.
func (m *Model[S]) Encoder() Encoder[S] {
	return Encoder[S]{m: m}
}

// Decoder returns a Decoder for this Model.
func (m *Model[S]) Decoder() Decoder[S] {
	return Decoder[S]{m: m}
}

// Dump writes a programmer-readable debugging dump of the Model's current
// state to the given writer.  Symbols are listed in frequency table order.
func (m *Model[S]) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Model{\n")
	fmt.Fprintf(&buf, "\tLen() = %d\n", m.Len())
	fmt.Fprintf(&buf, "\tTotal() = %d\n", m.freqs.Total())
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", m.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", m.maxSize)
	for _, e := range m.freqs.entries {
		fmt.Fprintf(&buf, "\tCode(%s) = %s (%d)\n", formatSymbol(e.Symbol), m.codes[e.Symbol], e.Count)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
