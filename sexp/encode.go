package sexp

import "strconv"

// Encode serializes an expression to canonical form. Canonical-form
// input parses and re-encodes byte-identically; Parse(Encode(e)) is
// structurally Equal to e for every valid tree.
func Encode(e Expression) []byte {
	return e.appendTo(nil)
}

func (a *Atom) appendTo(dst []byte) []byte {
	if a.DisplayHint != nil {
		dst = append(dst, '[')
		dst = appendRawAtom(dst, a.DisplayHint)
		dst = append(dst, ']')
	}
	return appendRawAtom(dst, a.Value)
}

func (l List) appendTo(dst []byte) []byte {
	dst = append(dst, '(')
	for _, e := range l {
		dst = e.appendTo(dst)
	}
	return append(dst, ')')
}

// appendRawAtom writes `<len>:<bytes>` with the minimal decimal length,
// "0:" for an empty atom.
func appendRawAtom(dst, b []byte) []byte {
	dst = strconv.AppendInt(dst, int64(len(b)), 10)
	dst = append(dst, ':')
	return append(dst, b...)
}
