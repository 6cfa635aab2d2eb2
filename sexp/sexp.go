// Package sexp implements canonical S-expressions, the compact
// length-prefixed encoding of nested byte strings used by OpenPGP
// implementations to serialize structured values such as protected
// secret-key material.
//
// A canonical S-expression is either an atom, written as
// `<decimal-length>:<bytes>`, optionally preceded by a display hint
// `[<hint-atom>]`, or a list of expressions enclosed in parentheses.
// Display hints are carried opaquely; this package attaches no meaning
// to them.
package sexp

import "bytes"

// Expression is a node of a canonical S-expression tree. It is a
// closed union: the only implementations are *Atom and List.
type Expression interface {
	// appendTo appends the canonical encoding of the node to dst.
	appendTo(dst []byte) []byte
}

// Atom is a raw byte string with an optional display hint. A nil
// DisplayHint means the atom carries no hint; an empty non-nil hint is
// distinct and encodes as `[0:]`.
type Atom struct {
	Value       []byte
	DisplayHint []byte
}

// List is an ordered sequence of expressions. The empty list is valid
// and distinct from an atom.
type List []Expression

// NewAtom returns an atom without a display hint. The value is copied.
func NewAtom(value []byte) *Atom {
	return &Atom{Value: cloneBytes(value)}
}

// NewHintedAtom returns an atom carrying a display hint. Both inputs
// are copied; a nil hint is normalized to an empty present hint.
func NewHintedAtom(hint, value []byte) *Atom {
	return &Atom{Value: cloneBytes(value), DisplayHint: cloneBytes(hint)}
}

// Equal reports whether two expressions are structurally equal. Atoms
// compare by value and display hint, with hint absence distinct from an
// empty hint; lists compare element-wise.
func Equal(a, b Expression) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch x := a.(type) {
	case *Atom:
		y, ok := b.(*Atom)
		if !ok {
			return false
		}
		if !bytes.Equal(x.Value, y.Value) {
			return false
		}
		if (x.DisplayHint == nil) != (y.DisplayHint == nil) {
			return false
		}
		return bytes.Equal(x.DisplayHint, y.DisplayHint)
	case List:
		y, ok := b.(List)
		if !ok {
			return false
		}
		if len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Equal(x[i], y[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// cloneBytes always returns a non-nil slice, so that a present-but-empty
// display hint survives a copy.
func cloneBytes(b []byte) []byte {
	return append([]byte{}, b...)
}
