package sexp

import "math"

type tokenKind int8

const (
	tokenAtom tokenKind = iota
	tokenOpenList
	tokenCloseList
	tokenOpenHint
	tokenCloseHint
	tokenEOF
)

// token is produced by the lexer and consumed immediately by the
// parser; it is never retained beyond one parse pass. payload aliases
// the input buffer and is only set for tokenAtom.
type token struct {
	kind    tokenKind
	offset  int
	payload []byte
}

func (t token) describe() string {
	switch t.kind {
	case tokenAtom:
		return "atom"
	case tokenOpenList:
		return "'('"
	case tokenCloseList:
		return "')'"
	case tokenOpenHint:
		return "'['"
	case tokenCloseHint:
		return "']'"
	}
	return "end of input"
}

// lexer is a single forward pass over data. The grammar is LL(1) over
// its token stream, so no backtracking is ever needed.
type lexer struct {
	data []byte
	pos  int
}

func (lx *lexer) next() (token, error) {
	for lx.pos < len(lx.data) && isSpace(lx.data[lx.pos]) {
		lx.pos++
	}
	if lx.pos >= len(lx.data) {
		return token{kind: tokenEOF, offset: lx.pos}, nil
	}
	start := lx.pos
	c := lx.data[start]
	switch c {
	case '(':
		lx.pos++
		return token{kind: tokenOpenList, offset: start}, nil
	case ')':
		lx.pos++
		return token{kind: tokenCloseList, offset: start}, nil
	case '[':
		lx.pos++
		return token{kind: tokenOpenHint, offset: start}, nil
	case ']':
		lx.pos++
		return token{kind: tokenCloseHint, offset: start}, nil
	case ':':
		return token{}, &MalformedLengthError{Offset: start, Reason: "empty digit sequence"}
	}
	if isDigit(c) {
		return lx.atom()
	}
	return token{}, &UnexpectedByteError{Offset: start, Byte: c}
}

// atom reads a `<decimal-length>:<bytes>` token. The length must use
// the minimal decimal representation: a leading zero in a multi-digit
// length is a lexical error.
func (lx *lexer) atom() (token, error) {
	start := lx.pos
	if lx.data[lx.pos] == '0' && lx.pos+1 < len(lx.data) && isDigit(lx.data[lx.pos+1]) {
		return token{}, &MalformedLengthError{Offset: start, Reason: "superfluous leading zero"}
	}
	n := 0
	for lx.pos < len(lx.data) && isDigit(lx.data[lx.pos]) {
		d := int(lx.data[lx.pos] - '0')
		if n > (math.MaxInt-d)/10 {
			return token{}, &MalformedLengthError{Offset: start, Reason: "length overflows"}
		}
		n = n*10 + d
		lx.pos++
	}
	if lx.pos >= len(lx.data) || lx.data[lx.pos] != ':' {
		return token{}, &MalformedLengthError{Offset: start, Reason: "missing ':' after length"}
	}
	lx.pos++
	if remaining := len(lx.data) - lx.pos; remaining < n {
		return token{}, &TruncatedAtomError{Offset: start, Declared: n, Remaining: remaining}
	}
	payload := lx.data[lx.pos : lx.pos+n]
	lx.pos += n
	return token{kind: tokenAtom, offset: start, payload: payload}, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}
