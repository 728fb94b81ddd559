package huffpack

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
)

// Encoder packs symbol sequences into bitstreams using a Model.
type Encoder[S comparable] struct {
	m *Model[S]
}

// Model returns the Model this Encoder uses.
func (e Encoder[S]) Model() *Model[S] {
	return e.m
}

// Encode encodes a symbol sequence.  The output is a one-byte padding count
// p in [1, 8], followed by the codewords of seq, most significant bit first,
// followed by p zero bits.  The total length is always a whole number of
// bytes.
//
// Encode returns an *UnknownSymbolError if seq holds a symbol that has no
// codeword.
//
func (e Encoder[S]) Encode(seq []S) ([]byte, error) {
	nbits, err := e.BitLen(seq)
	if err != nil {
		return nil, err
	}
	padding := paddingFor(nbits)
	outLen := 1 + (nbits+uint64(padding))/8

	var buf bytes.Buffer
	buf.Grow(int(outLen))

	w := bitio.NewWriter(&buf)
	if err := w.WriteByte(padding); err != nil {
		return nil, err
	}
	for _, sym := range seq {
		hc := e.m.codes[sym]
		if hc.Size == 0 {
			continue
		}
		if err := w.WriteBits(hc.Bits, hc.Size); err != nil {
			return nil, err
		}
	}
	if err := w.WriteBits(0, padding); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	assert.Assertf(uint64(buf.Len()) == outLen, "encoded %d bytes, expected %d", buf.Len(), outLen)
	return buf.Bytes(), nil
}

// BitLen returns the number of bits the codewords of seq occupy, excluding
// the padding header and the padding itself.
func (e Encoder[S]) BitLen(seq []S) (uint64, error) {
	var nbits uint64
	for index, sym := range seq {
		hc, found := e.m.codes[sym]
		if !found {
			return 0, &UnknownSymbolError{Index: index, Symbol: sym}
		}
		nbits += uint64(hc.Size)
	}
	return nbits, nil
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.
func (e Encoder[S]) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", e.m.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", e.m.maxSize)
	for _, entry := range e.m.freqs.entries {
		fmt.Fprintf(&buf, "\tEncode(%s) = %s\n", formatSymbol(entry.Symbol), e.m.codes[entry.Symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
