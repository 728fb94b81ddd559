package huffpack

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when a model would be built from a
	// frequency table with no entries, i.e. there are no symbols to encode.
	ErrEmptyInput = errors.New("huffpack: no symbols to encode")

	// ErrCodeTooLong is returned when a frequency table is so skewed that
	// some codeword would exceed MaxCodeSize bits.  Tables counted from real
	// input cannot get there; crafted ones can.
	ErrCodeTooLong = fmt.Errorf("huffpack: codeword longer than %d bits", MaxCodeSize)

	// ErrTooManySymbols is returned when a frequency table has more entries
	// than the file format can record.
	ErrTooManySymbols = fmt.Errorf("huffpack: more than %d distinct symbols", MaxSymbols)

	// ErrInvalidUTF8 is returned by Compress when the input text is not
	// valid UTF-8.
	ErrInvalidUTF8 = errors.New("huffpack: text is not valid UTF-8")
)

// UnknownSymbolError is returned by Encoder.Encode when the sequence holds a
// symbol that has no codeword in the model.
type UnknownSymbolError struct {
	// Index is the position of the symbol in the sequence.
	Index int

	// Symbol is the offending symbol.
	Symbol any
}

// Error implements the error interface.
func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("huffpack: symbol %s at index %d has no codeword", formatSymbol(e.Symbol), e.Index)
}

// MalformedStreamError is returned when a packed bitstream cannot be decoded:
// the padding header is out of range or larger than the stream, or the bits
// run out in the middle of a codeword.
type MalformedStreamError struct {
	// Offset is the bit offset into the packed stream (header included)
	// at which the problem was detected.
	Offset int

	// Reason describes the problem.
	Reason string
}

// Error implements the error interface.
func (e *MalformedStreamError) Error() string {
	return fmt.Sprintf("huffpack: malformed stream at bit %d: %s", e.Offset, e.Reason)
}

// FormatError is returned when the frequency table section of a persisted
// archive is truncated or inconsistent.
type FormatError struct {
	// Offset is the byte offset into the archive at which the problem was
	// detected.
	Offset int

	// Reason describes the problem.
	Reason string

	// Err is the underlying error, if any.
	Err error
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("huffpack: bad archive at byte %d: %s: %v", e.Offset, e.Reason, e.Err)
	}
	return fmt.Sprintf("huffpack: bad archive at byte %d: %s", e.Offset, e.Reason)
}

// Unwrap returns the underlying error.
func (e *FormatError) Unwrap() error {
	return e.Err
}

func malformedf(offset int, format string, args ...interface{}) error {
	return &MalformedStreamError{Offset: offset, Reason: fmt.Sprintf(format, args...)}
}

func formatErrorf(offset int, err error, format string, args ...interface{}) error {
	return &FormatError{Offset: offset, Reason: fmt.Sprintf(format, args...), Err: err}
}
