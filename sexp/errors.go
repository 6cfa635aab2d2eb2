package sexp

import "fmt"

// UnexpectedByteError reports a byte that cannot start a token.
type UnexpectedByteError struct {
	Offset int
	Byte   byte
}

func (e *UnexpectedByteError) Error() string {
	return fmt.Sprintf("sexp: unexpected byte %q at offset %d", e.Byte, e.Offset)
}

// MalformedLengthError reports an invalid atom length prefix: a
// superfluous leading zero, an empty digit sequence, or a length that
// overflows the native integer size.
type MalformedLengthError struct {
	Offset int
	Reason string
}

func (e *MalformedLengthError) Error() string {
	return fmt.Sprintf("sexp: malformed length at offset %d: %s", e.Offset, e.Reason)
}

// TruncatedAtomError reports an atom whose declared length exceeds the
// remaining input.
type TruncatedAtomError struct {
	Offset    int
	Declared  int
	Remaining int
}

func (e *TruncatedAtomError) Error() string {
	return fmt.Sprintf("sexp: truncated atom at offset %d: declared %d bytes, %d remain",
		e.Offset, e.Declared, e.Remaining)
}

// UnexpectedTokenError reports a token that violates the grammar at its
// position.
type UnexpectedTokenError struct {
	Offset   int
	Token    string
	Expected string
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("sexp: unexpected %s at offset %d, expected %s",
		e.Token, e.Offset, e.Expected)
}
