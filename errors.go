package huffman

import (
	"errors"
	"fmt"
)

// ErrorKind classifies the failures reported by Compress and Decompress.
type ErrorKind uint8

const (
	// WrongArguments means a required stream was missing.
	WrongArguments ErrorKind = iota + 1

	// IncorrectCode means the encoded data is truncated, corrupted, or
	// longer than its frequency header allows.
	IncorrectCode
)

// String returns the string representation of this ErrorKind.
func (k ErrorKind) String() string {
	switch k {
	case WrongArguments:
		return "wrong arguments"
	case IncorrectCode:
		return "incorrect code"
	default:
		return fmt.Sprintf("ErrorKind(%d)", uint8(k))
	}
}

var (
	ErrWrongArguments = errors.New("huffman: missing input or output stream")
	ErrIncorrectCode  = errors.New("huffman: encoded data does not match its frequency header")
	ErrInputChanged   = errors.New("huffman: input changed between counting and encoding")
)

// Error is returned by Compress and Decompress for failures of a known Kind.
// errors.Is matches it against ErrWrongArguments or ErrIncorrectCode
// according to Kind.
type Error struct {
	Op   string
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("huffman: %s: %v", e.Op, e.Kind)
	}
	return fmt.Sprintf("huffman: %s: %v: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	switch target {
	case ErrWrongArguments:
		return e.Kind == WrongArguments
	case ErrIncorrectCode:
		return e.Kind == IncorrectCode
	default:
		return false
	}
}

var _ error = (*Error)(nil)
