package huffpack

import (
	"fmt"
	"io"
	"math"
	"unicode/utf8"
)

// MaxSymbols is the maximum number of distinct symbols an archive can hold.
const MaxSymbols = math.MaxUint16

// SymbolCodec converts symbols to and from their persisted form.  The byte
// form of a symbol must be self-delimiting: ParseSymbol is handed everything
// that follows the symbol in the archive and reports how much it consumed.
type SymbolCodec[S comparable] interface {
	// AppendSymbol appends the byte form of sym to dst.
	AppendSymbol(dst []byte, sym S) ([]byte, error)

	// ParseSymbol parses one symbol from the front of src, returning the
	// symbol and the number of bytes it occupied.
	ParseSymbol(src []byte) (sym S, n int, err error)
}

// UTF8 is a SymbolCodec for Unicode code points, stored as UTF-8.  ASCII
// symbols occupy one byte; wider code points occupy as many bytes as their
// UTF-8 encoding, which is self-delimiting, so no length field is needed.
type UTF8 struct{}

// AppendSymbol implements SymbolCodec.
func (UTF8) AppendSymbol(dst []byte, sym rune) ([]byte, error) {
	if !utf8.ValidRune(sym) {
		return dst, fmt.Errorf("invalid code point %U", sym)
	}
	return utf8.AppendRune(dst, sym), nil
}

// ParseSymbol implements SymbolCodec.
func (UTF8) ParseSymbol(src []byte) (rune, int, error) {
	if len(src) == 0 {
		return 0, 0, io.ErrUnexpectedEOF
	}
	if !utf8.FullRune(src) {
		return 0, 0, io.ErrUnexpectedEOF
	}
	r, n := utf8.DecodeRune(src)
	if r == utf8.RuneError && n <= 1 {
		return 0, 0, fmt.Errorf("invalid UTF-8 sequence starting with %#02x", src[0])
	}
	return r, n, nil
}

var _ SymbolCodec[rune] = UTF8{}

// Bytes is a SymbolCodec for raw bytes, stored as themselves.
type Bytes struct{}

// AppendSymbol implements SymbolCodec.
func (Bytes) AppendSymbol(dst []byte, sym byte) ([]byte, error) {
	return append(dst, sym), nil
}

// ParseSymbol implements SymbolCodec.
func (Bytes) ParseSymbol(src []byte) (byte, int, error) {
	if len(src) == 0 {
		return 0, 0, io.ErrUnexpectedEOF
	}
	return src[0], 1, nil
}

var _ SymbolCodec[byte] = Bytes{}

// formatSymbol renders a symbol for dumps and error messages.
func formatSymbol(sym any) string {
	switch x := sym.(type) {
	case rune:
		return fmt.Sprintf("%q", x)
	case byte:
		return fmt.Sprintf("%q", x)
	case string:
		return fmt.Sprintf("%q", x)
	default:
		return fmt.Sprintf("%v", x)
	}
}
