package huffpack

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/icza/bitio"
	"golang.org/x/exp/maps"
)

// Decoder unpacks bitstreams produced by an Encoder for the same Model.
type Decoder[S comparable] struct {
	m *Model[S]
}

// Model returns the Model this Decoder uses.
func (d Decoder[S]) Model() *Model[S] {
	return d.m
}

// Decode decodes a bitstream produced by Encoder.Encode.
//
// The first byte is the padding count p, which must be in [1, 8] and no
// larger than the number of bits that follow.  After dropping the last p
// bits, the remaining bits are scanned left to right; a symbol is emitted as
// soon as the accumulated bits match a codeword.  Because the code is
// prefix-free, a well-formed stream is consumed exactly.
//
// If the Model has a single symbol, its codeword is empty and the stream
// carries no code bits; Decode then emits that symbol once per occurrence
// recorded in the frequency table.
//
// Decode returns a *MalformedStreamError if the header is inconsistent with
// the stream length or if the stream ends in the middle of a codeword.
//
func (d Decoder[S]) Decode(data []byte) ([]S, error) {
	if len(data) == 0 {
		return nil, malformedf(0, "missing padding header")
	}

	padding := int(data[0])
	if padding < 1 || padding > 8 {
		return nil, malformedf(0, "padding count %d outside [1, 8]", padding)
	}
	available := 8 * (len(data) - 1)
	if padding > available {
		return nil, malformedf(8, "padding count %d exceeds %d available bits", padding, available)
	}
	nbits := available - padding

	if d.m.maxSize == 0 {
		return d.decodeSingle(nbits)
	}

	out := make([]S, 0, nbits/int(d.m.maxSize))
	r := bitio.NewReader(bytes.NewReader(data[1:]))
	var hc Code
	for i := 0; i < nbits; i++ {
		bit, err := r.ReadBool()
		if err != nil {
			return nil, err
		}
		hc = hc.Append(bit)
		if sym, found := d.m.table[hc]; found {
			out = append(out, sym)
			hc = Code{}
		} else if hc.Size >= d.m.maxSize {
			return nil, malformedf(8+i+1-int(hc.Size), "bits %s match no codeword", hc)
		}
	}
	if hc.Size != 0 {
		return nil, malformedf(8+nbits-int(hc.Size), "stream ends inside a codeword: %d trailing bits %s", hc.Size, hc)
	}
	return out, nil
}

func (d Decoder[S]) decodeSingle(nbits int) ([]S, error) {
	if nbits != 0 {
		return nil, malformedf(8, "single-symbol stream carries %d code bits", nbits)
	}
	entry := d.m.freqs.entries[0]
	total := d.m.freqs.Total()
	out := make([]S, total)
	for i := range out {
		out[i] = entry.Symbol
	}
	return out, nil
}

// Dump writes a programmer-readable debugging dump of the Decoder's current
// state to the given writer.
func (d Decoder[S]) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", d.m.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", d.m.maxSize)
	keys := byCode(maps.Keys(d.m.table))
	keys.Sort()
	for _, hc := range keys {
		fmt.Fprintf(&buf, "\tDecode(%s) = %s\n", hc, formatSymbol(d.m.table[hc]))
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// type byCode {{{

type byCode []Code

func (list byCode) Sort() {
	sort.Sort(list)
}

func (list byCode) Len() int {
	return len(list)
}

func (list byCode) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byCode) Less(i, j int) bool {
	a, b := list[i], list[j]
	as, ab := a.Size, a.Bits
	bs, bb := b.Size, b.Bits
	if as != bs {
		return as < bs
	}
	return ab < bb
}

var _ sort.Interface = byCode(nil)

// }}}
