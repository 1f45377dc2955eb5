// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lang

import (
	"fmt"
	"strconv"

	"neoprene.dev/neoprene/build"
	"neoprene.dev/neoprene/expr"
	"neoprene.dev/neoprene/rat"
)

// Parse compiles a single expression to a canonical expr.Node. The
// grammar is:
//
//	expr   = term (('+' | '-') term)*
//	term   = power (('*' | '/') power)*
//	power  = unary ('^' ratLit)?
//	unary  = '-'? atom
//	atom   = ratLit | "pi" | "e" | '(' expr ')'
//	ratLit = Number ['/' Number]
//
// A Pow node's exponent is always a literal rational, not a general
// subexpression, matching the shape expr.NewPow builds: there is no
// surface syntax for a variable exponent because the tree itself has
// none.
//
// Parse returns an ordinary error for any syntactically malformed input
// rather than panicking. Input that parses but denotes an invalid value
// is not caught here: a zero denominator or a division by zero (e.g.
// "1/0" or "pi/0") panics with a rat.Error from the construction.
func Parse(src string) (n expr.Node, err error) {
	p := &parser{lex: NewLexer(src)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	defer func() {
		if r := recover(); r != nil {
			if perr, ok := r.(parseError); ok {
				err = error(perr)
				return
			}
			panic(r)
		}
	}()
	n = p.parseExpr()
	if p.tok.Type != EOF {
		return nil, fmt.Errorf("lang: unexpected token %q at position %d", p.tok.Text, p.tok.Pos)
	}
	return n, nil
}

type parseError string

func (e parseError) Error() string { return string(e) }

type parser struct {
	lex *Lexer
	tok Token
}

func (p *parser) advance() error {
	tok, err := p.lex.Next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *parser) mustAdvance() {
	if err := p.advance(); err != nil {
		panic(parseError(err.Error()))
	}
}

func (p *parser) expect(t Type) Token {
	if p.tok.Type != t {
		panic(parseError(fmt.Sprintf("lang: expected %v, got %q at position %d", t, p.tok.Text, p.tok.Pos)))
	}
	tok := p.tok
	p.mustAdvance()
	return tok
}

func (p *parser) parseExpr() expr.Node {
	n := p.parseTerm()
	for p.tok.Type == Plus || p.tok.Type == Minus {
		neg := p.tok.Type == Minus
		p.mustAdvance()
		rhs := p.parseTerm()
		if neg {
			n = build.Sum(0, 1, build.Plain(n), build.Weighted(-1, 1, rhs))
		} else {
			n = build.Add(n, rhs)
		}
	}
	return n
}

func (p *parser) parseTerm() expr.Node {
	n := p.parsePower()
	for p.tok.Type == Star || p.tok.Type == Slash {
		div := p.tok.Type == Slash
		p.mustAdvance()
		rhs := p.parsePower()
		if div {
			n = build.Prod(1, 1, build.Plain(n), build.Weighted(-1, 1, rhs))
		} else {
			n = build.Mul(n, rhs)
		}
	}
	return n
}

func (p *parser) parsePower() expr.Node {
	n := p.parseUnary()
	if p.tok.Type == Caret {
		p.mustAdvance()
		exp := p.parseRatLiteral()
		n = expr.NewPow(n, exp)
	}
	return n
}

func (p *parser) parseUnary() expr.Node {
	if p.tok.Type == Minus {
		p.mustAdvance()
		return build.Sum(0, 1, build.Weighted(-1, 1, p.parseUnary()))
	}
	return p.parseAtom()
}

func (p *parser) parseAtom() expr.Node {
	switch p.tok.Type {
	case Number:
		return expr.NewRat(p.parseRatLiteral())
	case Ident:
		name := p.tok.Text
		p.mustAdvance()
		switch name {
		case "pi":
			return build.Pi()
		case "e":
			return build.E()
		default:
			panic(parseError(fmt.Sprintf("lang: unknown identifier %q", name)))
		}
	case LeftParen:
		p.mustAdvance()
		n := p.parseExpr()
		p.expect(RightParen)
		return n
	default:
		panic(parseError(fmt.Sprintf("lang: unexpected token %q at position %d", p.tok.Text, p.tok.Pos)))
	}
}

// parseRatLiteral parses Number ['/' Number], optionally preceded by a
// unary minus, into a rat.Rat. Used both for ordinary numeric atoms and
// for a Pow node's exponent, which the grammar restricts to a literal.
func (p *parser) parseRatLiteral() rat.Rat {
	neg := false
	if p.tok.Type == Minus {
		neg = true
		p.mustAdvance()
	}
	numTok := p.expect(Number)
	num, err := strconv.ParseInt(numTok.Text, 10, 64)
	if err != nil {
		panic(parseError(fmt.Sprintf("lang: invalid integer %q at position %d", numTok.Text, numTok.Pos)))
	}
	den := int64(1)
	if p.tok.Type == Slash {
		p.mustAdvance()
		denTok := p.expect(Number)
		den, err = strconv.ParseInt(denTok.Text, 10, 64)
		if err != nil {
			panic(parseError(fmt.Sprintf("lang: invalid integer %q at position %d", denTok.Text, denTok.Pos)))
		}
	}
	if neg {
		num = -num
	}
	return rat.New(num, den)
}
