package parse

import (
	"errors"
	"fmt"
)

var (
	ErrUnexpectedChar = errors.New("unexpected character")
	ErrUnexpectedEOF  = errors.New("unexpected end of input")
	ErrInvalidLiteral = errors.New("invalid literal")
	ErrInvalidNumber  = errors.New("invalid number")
)

// Error is a structured parse diagnostic. Pos is the 1-based position of the
// offending input counted in Unicode scalars; it is zero for end-of-input.
type Error struct {
	Err  error // one of the package sentinels
	Pos  int
	Char rune   // set for ErrUnexpectedChar
	Text string // offending slice for literal and number errors
}

func (e *Error) Error() string {
	switch {
	case errors.Is(e.Err, ErrUnexpectedEOF):
		return e.Err.Error()
	case errors.Is(e.Err, ErrUnexpectedChar):
		return fmt.Sprintf("%s %q at position %d", e.Err, e.Char, e.Pos)
	default:
		return fmt.Sprintf("%s %q at position %d", e.Err, e.Text, e.Pos)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}
