package sexp

// Parse reads exactly one expression from data and returns it together
// with the unconsumed remainder. The returned tree owns its bytes: atom
// values and display hints are copied out of data.
func Parse(data []byte) (Expression, []byte, error) {
	p := parser{lx: lexer{data: data}}
	tok, err := p.lx.next()
	if err != nil {
		return nil, nil, err
	}
	expr, err := p.expression(tok)
	if err != nil {
		return nil, nil, err
	}
	return expr, data[p.lx.pos:], nil
}

type parser struct {
	lx lexer
}

func (p *parser) expression(tok token) (Expression, error) {
	switch tok.kind {
	case tokenAtom:
		return &Atom{Value: cloneBytes(tok.payload)}, nil
	case tokenOpenList:
		return p.list()
	case tokenOpenHint:
		return p.hintedAtom()
	}
	return nil, &UnexpectedTokenError{
		Offset:   tok.offset,
		Token:    tok.describe(),
		Expected: "atom, '[' or '('",
	}
}

func (p *parser) list() (Expression, error) {
	list := List{}
	for {
		tok, err := p.lx.next()
		if err != nil {
			return nil, err
		}
		switch tok.kind {
		case tokenCloseList:
			return list, nil
		case tokenEOF:
			return nil, &UnexpectedTokenError{
				Offset:   tok.offset,
				Token:    tok.describe(),
				Expected: "expression or ')'",
			}
		}
		child, err := p.expression(tok)
		if err != nil {
			return nil, err
		}
		list = append(list, child)
	}
}

// hintedAtom parses `[<hint-atom>]<atom>`. The hint position admits
// only a raw atom, so hints cannot nest.
func (p *parser) hintedAtom() (Expression, error) {
	tok, err := p.lx.next()
	if err != nil {
		return nil, err
	}
	if tok.kind != tokenAtom {
		return nil, &UnexpectedTokenError{
			Offset:   tok.offset,
			Token:    tok.describe(),
			Expected: "display hint atom",
		}
	}
	hint := cloneBytes(tok.payload)

	tok, err = p.lx.next()
	if err != nil {
		return nil, err
	}
	if tok.kind != tokenCloseHint {
		return nil, &UnexpectedTokenError{
			Offset:   tok.offset,
			Token:    tok.describe(),
			Expected: "']'",
		}
	}

	tok, err = p.lx.next()
	if err != nil {
		return nil, err
	}
	if tok.kind != tokenAtom {
		return nil, &UnexpectedTokenError{
			Offset:   tok.offset,
			Token:    tok.describe(),
			Expected: "atom after display hint",
		}
	}
	return &Atom{Value: cloneBytes(tok.payload), DisplayHint: hint}, nil
}
