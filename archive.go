package huffpack

import (
	"encoding/binary"
	"unicode/utf8"
)

// Archive layout, all integers big-endian:
//
//     [2 bytes]  N, the number of distinct symbols
//     N times:
//       [1+ bytes] symbol, in the form chosen by the SymbolCodec
//       [4 bytes]  count
//     [rest]     packed bitstream, as produced by Encoder.Encode
//
// Entries appear in frequency table order, which the decoder relies on to
// rebuild the same tree.
//
const (
	symbolCountSize = 2
	countSize       = 4
)

// AppendFrequencies appends the frequency table section of an archive to
// dst.
func AppendFrequencies[S comparable](dst []byte, codec SymbolCodec[S], freqs *Frequencies[S]) ([]byte, error) {
	if freqs.Len() > MaxSymbols {
		return dst, ErrTooManySymbols
	}
	dst = binary.BigEndian.AppendUint16(dst, uint16(freqs.Len()))
	for _, e := range freqs.entries {
		var err error
		dst, err = codec.AppendSymbol(dst, e.Symbol)
		if err != nil {
			return dst, err
		}
		dst = binary.BigEndian.AppendUint32(dst, e.Count)
	}
	return dst, nil
}

// ParseFrequencies parses the frequency table section at the front of data.
// It returns the table and the number of bytes it occupied.
//
// ParseFrequencies returns a *FormatError if the section is truncated, lists
// a symbol twice, records a zero count, or holds a symbol the codec rejects.
//
func ParseFrequencies[S comparable](codec SymbolCodec[S], data []byte) (*Frequencies[S], int, error) {
	if len(data) < symbolCountSize {
		return nil, 0, formatErrorf(0, nil, "need %d bytes for the symbol count, have %d", symbolCountSize, len(data))
	}
	numSymbols := int(binary.BigEndian.Uint16(data))
	if numSymbols == 0 {
		return nil, 0, formatErrorf(0, nil, "frequency table is empty")
	}

	offset := symbolCountSize
	freqs := &Frequencies[S]{
		entries: make([]Entry[S], 0, numSymbols),
		index:   make(map[S]int, numSymbols),
	}
	for i := 0; i < numSymbols; i++ {
		sym, n, err := codec.ParseSymbol(data[offset:])
		if err != nil {
			return nil, 0, formatErrorf(offset, err, "symbol %d of %d", i+1, numSymbols)
		}
		if _, dupe := freqs.index[sym]; dupe {
			return nil, 0, formatErrorf(offset, nil, "symbol %s listed twice", formatSymbol(sym))
		}
		offset += n

		if len(data)-offset < countSize {
			return nil, 0, formatErrorf(offset, nil, "need %d bytes for the count of symbol %d of %d, have %d", countSize, i+1, numSymbols, len(data)-offset)
		}
		count := binary.BigEndian.Uint32(data[offset:])
		if count == 0 {
			return nil, 0, formatErrorf(offset, nil, "symbol %s has a zero count", formatSymbol(sym))
		}
		offset += countSize

		freqs.Add(sym, count)
	}
	return freqs, offset, nil
}

// Pack encodes seq into a self-contained archive: the frequency table
// followed by the packed bitstream.
func Pack[S comparable](codec SymbolCodec[S], seq []S) ([]byte, error) {
	freqs := Count(seq)
	m, err := NewModel(freqs)
	if err != nil {
		return nil, err
	}
	body, err := m.Encoder().Encode(seq)
	if err != nil {
		return nil, err
	}
	out, err := AppendFrequencies(nil, codec, freqs)
	if err != nil {
		return nil, err
	}
	return append(out, body...), nil
}

// Unpack reverses Pack.  It rebuilds the Model from the stored frequency
// table and decodes the bitstream that follows it.  The decoded sequence
// must have exactly as many symbols as the table accounts for.
func Unpack[S comparable](codec SymbolCodec[S], data []byte) ([]S, error) {
	freqs, offset, err := ParseFrequencies(codec, data)
	if err != nil {
		return nil, err
	}
	m, err := NewModel(freqs)
	if err != nil {
		return nil, err
	}
	seq, err := m.Decoder().Decode(data[offset:])
	if err != nil {
		return nil, err
	}
	if uint64(len(seq)) != freqs.Total() {
		return nil, malformedf(8*(len(data)-offset), "decoded %d symbols, frequency table accounts for %d", len(seq), freqs.Total())
	}
	return seq, nil
}

// Compress packs UTF-8 text into an archive whose symbols are code points.
func Compress(text string) ([]byte, error) {
	if !utf8.ValidString(text) {
		return nil, ErrInvalidUTF8
	}
	return Pack[rune](UTF8{}, []rune(text))
}

// Decompress reverses Compress.
func Decompress(data []byte) (string, error) {
	runes, err := Unpack[rune](UTF8{}, data)
	if err != nil {
		return "", err
	}
	return string(runes), nil
}

// CompressBytes packs arbitrary binary data into an archive whose symbols
// are bytes.
func CompressBytes(data []byte) ([]byte, error) {
	return Pack[byte](Bytes{}, data)
}

// DecompressBytes reverses CompressBytes.
func DecompressBytes(data []byte) ([]byte, error) {
	return Unpack[byte](Bytes{}, data)
}
