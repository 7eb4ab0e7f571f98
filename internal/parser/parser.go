package parser

import (
	"unicode"
	"unicode/utf8"

	"github.com/Dani2044/First-order-resolution-engine/internal/errs"
	"github.com/Dani2044/First-order-resolution-engine/internal/ir"
)

type parser struct {
	line    string
	lineNum int
	toks    []token
	pos     int
}

// Parse tokenizes and parses a single line into an ir.Formula, per the
// grammar in spec §4.1. line is 1-based and used only for error
// reporting.
func Parse(line int, input string) (*ir.Formula, error) {
	toks := tokenize(input)
	p := &parser{line: input, lineNum: line, toks: toks}

	if t := p.peek(); t.kind == tokError {
		return nil, errs.AtLine(errs.ParseError, line, t.text, errParse("unexpected character"))
	}

	f, err := p.parseFormula()
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.kind != tokEOF {
		return nil, p.errorf(t, "unexpected trailing input")
	}
	return f, nil
}

type parseErr string

func (e parseErr) Error() string { return string(e) }

func errParse(msg string) error { return parseErr(msg) }

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) advance() token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

// errorf builds a ParseError positioned at the parser's own line
// number, regardless of how deep in the recursive-descent grammar the
// failure was detected.
func (p *parser) errorf(t token, msg string) error {
	offending := t.text
	if offending == "" {
		if t.kind == tokEOF {
			offending = "<end of line>"
		} else {
			offending = p.line
		}
	}
	return errs.AtLine(errs.ParseError, p.lineNum, offending, errParse(msg))
}

// parseFormula is the grammar entry point: a leading quantifier binds
// outermost within its scope, with the remainder of the formula (which
// may itself contain further quantifiers and binary connectives) as its
// body.
func (p *parser) parseFormula() (*ir.Formula, error) {
	switch p.peek().kind {
	case tokForAll, tokExists:
		quant := p.advance()
		v := p.peek()
		if v.kind != tokIdent {
			return nil, p.errorf(v, "expected variable name after quantifier")
		}
		p.advance()
		body, err := p.parseFormula()
		if err != nil {
			return nil, err
		}
		if quant.kind == tokForAll {
			return ir.ForAll(v.text, body), nil
		}
		return ir.Exists(v.text, body), nil
	default:
		return p.parseIff()
	}
}

// parseIff, parseImplies, parseOr, parseAnd implement the binary
// connective precedence ladder from lowest to highest (spec §4.1 point
// 5). Each finds the leftmost top-level occurrence of its connective
// (the next token after parsing the higher-precedence left operand)
// and recurses into itself for the right-hand side, rather than folding
// a chain leftward — this mirrors original_source/read.py's `_find_conn`
// (leftmost split, recurse on the remainder), which for a repeated
// non-associative connective like → or ↔ nests to the right:
// "P → Q → R" parses as P → (Q → R), not (P → Q) → R.
func (p *parser) parseIff() (*ir.Formula, error) {
	left, err := p.parseImplies()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokIff {
		return left, nil
	}
	p.advance()
	right, err := p.parseIff()
	if err != nil {
		return nil, err
	}
	return ir.Iff(left, right), nil
}

func (p *parser) parseImplies() (*ir.Formula, error) {
	left, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokImplies {
		return left, nil
	}
	p.advance()
	right, err := p.parseImplies()
	if err != nil {
		return nil, err
	}
	return ir.Implies(left, right), nil
}

func (p *parser) parseOr() (*ir.Formula, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokOr {
		return left, nil
	}
	p.advance()
	right, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	return ir.Or(left, right), nil
}

func (p *parser) parseAnd() (*ir.Formula, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokAnd {
		return left, nil
	}
	p.advance()
	right, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	return ir.And(left, right), nil
}

// parseUnary handles negation, which binds tighter than any binary
// connective (spec §4.1 point 3).
func (p *parser) parseUnary() (*ir.Formula, error) {
	if p.peek().kind == tokNot {
		p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return ir.Not(operand), nil
	}
	return p.parseGroupOrAtom()
}

// parseGroupOrAtom handles parenthesization (point 2): a parenthesized
// formula recurses into the full grammar and strips the parens,
// repeatedly, by nature of the recursive call.
func (p *parser) parseGroupOrAtom() (*ir.Formula, error) {
	if p.peek().kind == tokLParen {
		p.advance()
		inner, err := p.parseFormula()
		if err != nil {
			return nil, err
		}
		if p.peek().kind != tokRParen {
			return nil, p.errorf(p.peek(), "unbalanced parentheses")
		}
		p.advance()
		return inner, nil
	}
	return p.parseAtomicLiteral()
}

// parseAtomicLiteral handles point 1: a predicate identifier optionally
// followed by a parenthesized, comma-separated argument list.
func (p *parser) parseAtomicLiteral() (*ir.Formula, error) {
	t := p.peek()
	if t.kind != tokIdent {
		return nil, p.errorf(t, "expected a formula")
	}
	p.advance()

	var args []*ir.Term
	if p.peek().kind == tokLParen {
		p.advance()
		var err error
		args, err = p.parseTermList()
		if err != nil {
			return nil, err
		}
		if p.peek().kind != tokRParen {
			return nil, p.errorf(p.peek(), "unbalanced parentheses")
		}
		p.advance()
	}
	return ir.Lit(ir.NewLiteral(t.text, false, args...)), nil
}

func (p *parser) parseTermList() ([]*ir.Term, error) {
	first, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	terms := []*ir.Term{first}
	for p.peek().kind == tokComma {
		p.advance()
		next, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		terms = append(terms, next)
	}
	return terms, nil
}

// parseTerm parses a single term: a nested function application or a
// bare identifier, classified as variable or constant by the case of its
// first rune (spec §6's case convention).
func (p *parser) parseTerm() (*ir.Term, error) {
	t := p.peek()
	if t.kind != tokIdent {
		return nil, p.errorf(t, "expected a term")
	}
	p.advance()

	if p.peek().kind == tokLParen {
		if !startsUpper(t.text) {
			return nil, p.errorf(t, "a variable cannot take arguments: "+t.text)
		}
		p.advance()
		args, err := p.parseTermList()
		if err != nil {
			return nil, err
		}
		if p.peek().kind != tokRParen {
			return nil, p.errorf(p.peek(), "unbalanced parentheses")
		}
		p.advance()
		return ir.NewFunction(t.text, args...), nil
	}

	if startsUpper(t.text) {
		return ir.NewConstant(t.text), nil
	}
	return ir.NewVariable(t.text), nil
}

func startsUpper(s string) bool {
	if s == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}
