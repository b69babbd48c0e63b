// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package adf

import (
	"fmt"
	"io"
	"unicode"
)

// Input is the outcome of parsing: the statement names in declaration
// order and the acceptance condition of each statement. The order of Names
// is the default variable order of the ADF.
type Input struct {
	Names []string
	Conds map[string]*Formula
}

// ParseError reports a malformed input together with the position (1-based
// line and column) where parsing stopped.
type ParseError struct {
	Line int
	Col  int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d, column %d: %s", e.Line, e.Col, e.Msg)
}

// Parse reads a list of dot-terminated s(...) and ac(...) facts. Every
// statement must be declared exactly once, carry exactly one acceptance
// condition, and conditions may only reference declared statements;
// declarations and conditions can come in any order.
func Parse(r io.Reader) (*Input, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	p := &scanner{src: []rune(string(src)), line: 1, col: 1}
	in := &Input{Conds: make(map[string]*Formula)}
	declared := make(map[string]bool)
	for {
		tok, err := p.next()
		if err != nil {
			return nil, err
		}
		if tok.kind == tokEOF {
			break
		}
		if tok.kind != tokIdent {
			return nil, p.errorat(tok, "expected s(...) or ac(...)")
		}
		switch tok.text {
		case "s":
			name, err := p.parseDecl()
			if err != nil {
				return nil, err
			}
			if declared[name] {
				return nil, p.errorat(tok, fmt.Sprintf("statement %q declared twice", name))
			}
			declared[name] = true
			in.Names = append(in.Names, name)
		case "ac":
			name, f, err := p.parseCond()
			if err != nil {
				return nil, err
			}
			if _, ok := in.Conds[name]; ok {
				return nil, p.errorat(tok, fmt.Sprintf("statement %q has two acceptance conditions", name))
			}
			in.Conds[name] = f
		default:
			return nil, p.errorat(tok, fmt.Sprintf("unexpected %q, expected s or ac", tok.text))
		}
	}
	for name := range in.Conds {
		if !declared[name] {
			return nil, fmt.Errorf("acceptance condition for undeclared statement %q", name)
		}
	}
	for _, name := range in.Names {
		if in.Conds[name] == nil {
			return nil, fmt.Errorf("statement %q has no acceptance condition", name)
		}
	}
	for name, f := range in.Conds {
		if bad := undeclaredAtom(f, declared); bad != "" {
			return nil, fmt.Errorf("acceptance condition of %q references undeclared statement %q", name, bad)
		}
	}
	return in, nil
}

// undeclaredAtom returns the name of the first atom of f missing from
// declared, or the empty string.
func undeclaredAtom(f *Formula, declared map[string]bool) string {
	if f == nil {
		return ""
	}
	if f.Op == OpAtom && !declared[f.Name] {
		return f.Name
	}
	if bad := undeclaredAtom(f.Left, declared); bad != "" {
		return bad
	}
	return undeclaredAtom(f.Right, declared)
}

// ************************************************************

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokString
	tokLpar
	tokRpar
	tokComma
	tokDot
)

type token struct {
	kind tokenKind
	text string
	line int
	col  int
}

type scanner struct {
	src  []rune
	pos  int
	line int
	col  int
}

func (p *scanner) errorat(tok token, msg string) error {
	return &ParseError{Line: tok.line, Col: tok.col, Msg: msg}
}

func (p *scanner) advance() rune {
	c := p.src[p.pos]
	p.pos++
	if c == '\n' {
		p.line++
		p.col = 1
	} else {
		p.col++
	}
	return c
}

func (p *scanner) next() (token, error) {
	for p.pos < len(p.src) && unicode.IsSpace(p.src[p.pos]) {
		p.advance()
	}
	if p.pos >= len(p.src) {
		return token{kind: tokEOF, line: p.line, col: p.col}, nil
	}
	tok := token{line: p.line, col: p.col}
	switch c := p.src[p.pos]; {
	case c == '(':
		p.advance()
		tok.kind = tokLpar
	case c == ')':
		p.advance()
		tok.kind = tokRpar
	case c == ',':
		p.advance()
		tok.kind = tokComma
	case c == '.':
		p.advance()
		tok.kind = tokDot
	case c == '"':
		p.advance()
		start := p.pos
		for p.pos < len(p.src) && p.src[p.pos] != '"' {
			p.advance()
		}
		if p.pos >= len(p.src) {
			return tok, &ParseError{Line: tok.line, Col: tok.col, Msg: "unterminated quoted name"}
		}
		tok.kind = tokString
		tok.text = string(p.src[start:p.pos])
		p.advance()
	case isident(c):
		start := p.pos
		for p.pos < len(p.src) && isident(p.src[p.pos]) {
			p.advance()
		}
		tok.kind = tokIdent
		tok.text = string(p.src[start:p.pos])
	default:
		return tok, &ParseError{Line: tok.line, Col: tok.col, Msg: fmt.Sprintf("unexpected character %q", c)}
	}
	return tok, nil
}

func isident(c rune) bool {
	return c == '_' || unicode.IsLetter(c) || unicode.IsDigit(c)
}

// peekLpar skips whitespace and reports whether the next character opens an
// argument list.
func (p *scanner) peekLpar() bool {
	for p.pos < len(p.src) && unicode.IsSpace(p.src[p.pos]) {
		p.advance()
	}
	return p.pos < len(p.src) && p.src[p.pos] == '('
}

func (p *scanner) expect(kind tokenKind, what string) (token, error) {
	tok, err := p.next()
	if err != nil {
		return tok, err
	}
	if tok.kind != kind {
		return tok, p.errorat(tok, "expected "+what)
	}
	return tok, nil
}

// parseDecl parses the remainder of a declaration: "(" name ")" "."
func (p *scanner) parseDecl() (string, error) {
	if _, err := p.expect(tokLpar, "'('"); err != nil {
		return "", err
	}
	name, err := p.parseName()
	if err != nil {
		return "", err
	}
	if _, err := p.expect(tokRpar, "')'"); err != nil {
		return "", err
	}
	if _, err := p.expect(tokDot, "'.'"); err != nil {
		return "", err
	}
	return name, nil
}

// parseCond parses the remainder of a condition: "(" name "," formula ")" "."
func (p *scanner) parseCond() (string, *Formula, error) {
	if _, err := p.expect(tokLpar, "'('"); err != nil {
		return "", nil, err
	}
	name, err := p.parseName()
	if err != nil {
		return "", nil, err
	}
	if _, err := p.expect(tokComma, "','"); err != nil {
		return "", nil, err
	}
	f, err := p.parseFormula()
	if err != nil {
		return "", nil, err
	}
	if _, err := p.expect(tokRpar, "')'"); err != nil {
		return "", nil, err
	}
	if _, err := p.expect(tokDot, "'.'"); err != nil {
		return "", nil, err
	}
	return name, f, nil
}

func (p *scanner) parseName() (string, error) {
	tok, err := p.next()
	if err != nil {
		return "", err
	}
	if tok.kind != tokIdent && tok.kind != tokString {
		return "", p.errorat(tok, "expected a statement name")
	}
	return tok.text, nil
}

var binops = map[string]Op{
	"and": OpAnd,
	"or":  OpOr,
	"imp": OpImp,
	"xor": OpXor,
	"iff": OpIff,
}

func (p *scanner) parseFormula() (*Formula, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	if tok.kind == tokString {
		return &Formula{Op: OpAtom, Name: tok.text}, nil
	}
	if tok.kind != tokIdent {
		return nil, p.errorat(tok, "expected a formula")
	}
	// an identifier is a connective only when directly applied to
	// arguments; otherwise it is an atom
	if !p.peekLpar() {
		return &Formula{Op: OpAtom, Name: tok.text}, nil
	}
	op, isbin := binops[tok.text]
	switch {
	case tok.text == "c":
		arg, err := p.parseDecl0()
		if err != nil {
			return nil, err
		}
		switch arg {
		case "v":
			return &Formula{Op: OpTop}, nil
		case "f":
			return &Formula{Op: OpBot}, nil
		}
		return nil, p.errorat(tok, fmt.Sprintf("expected c(v) or c(f), found c(%s)", arg))
	case tok.text == "neg":
		p.advance() // consume '('
		sub, err := p.parseFormula()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRpar, "')'"); err != nil {
			return nil, err
		}
		return &Formula{Op: OpNeg, Left: sub}, nil
	case isbin:
		p.advance() // consume '('
		left, err := p.parseFormula()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokComma, "','"); err != nil {
			return nil, err
		}
		right, err := p.parseFormula()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRpar, "')'"); err != nil {
			return nil, err
		}
		return &Formula{Op: op, Left: left, Right: right}, nil
	}
	return nil, p.errorat(tok, fmt.Sprintf("unknown connective %q", tok.text))
}

// parseDecl0 parses "(" ident ")" for the constants c(v) and c(f).
func (p *scanner) parseDecl0() (string, error) {
	if _, err := p.expect(tokLpar, "'('"); err != nil {
		return "", err
	}
	tok, err := p.expect(tokIdent, "'v' or 'f'")
	if err != nil {
		return "", err
	}
	if _, err := p.expect(tokRpar, "')'"); err != nil {
		return "", err
	}
	return tok.text, nil
}
