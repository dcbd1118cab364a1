// Package parser implements the grammar for signed formulas: the shared
// propositional connective set, predicates, and Ferguson's restricted
// quantifiers. It is a precedence-climbing (Pratt) recursive descent
// parser with prefix/infix function tables keyed by token type and one
// token of lookahead (curToken/peekToken), parameterized by a logic's
// ConnectiveSpec table (internal/formula/connective.go) so the same
// parser serves every shipped logic rather than one grammar per logic.
package parser

import (
	"fmt"

	"github.com/bradleypallen/tableaux-go/internal/diagnostics"
	"github.com/bradleypallen/tableaux-go/internal/formula"
	"github.com/bradleypallen/tableaux-go/internal/lexer"
	"github.com/bradleypallen/tableaux-go/internal/token"
)

const lowestPrecedence = 0

type prefixParseFn func() (formula.Formula, *diagnostics.Error)
type infixParseFn func(left formula.Formula) (formula.Formula, *diagnostics.Error)

// Parser turns formula source text into a formula.Formula AST, using
// curToken/peekToken with a single token of lookahead and prefix/infix
// dispatch tables built once in New.
type Parser struct {
	lex *lexer.Lexer

	connectives map[string]formula.ConnectiveSpec
	byToken     map[token.Type]string // token type -> canonical connective symbol

	curToken  token.Token
	peekToken token.Token

	prefixFns map[token.Type]prefixParseFn
	infixFns  map[token.Type]infixParseFn
}

// New builds a Parser over input using connectives for precedence/arity
// lookups (a logic.Plugin's Connectives field in normal use).
func New(input string, connectives map[string]formula.ConnectiveSpec) *Parser {
	p := &Parser{
		lex:         lexer.New(input),
		connectives: connectives,
		byToken: map[token.Type]string{
			token.NOT:     "~",
			token.AND:     "&",
			token.AND_ALT: "&",
			token.OR:      "|",
			token.IMPLIES: "->",
		},
	}
	p.prefixFns = map[token.Type]prefixParseFn{
		token.IDENT:    p.parseAtom,
		token.PREDNAME: p.parsePredicate,
		token.NOT:      p.parseNegation,
		token.LPAREN:   p.parseGrouped,
		token.LBRACKET: p.parseRestrictedQuantifier,
	}
	p.infixFns = map[token.Type]infixParseFn{
		token.AND:     p.parseBinary,
		token.AND_ALT: p.parseBinary,
		token.OR:      p.parseBinary,
		token.IMPLIES: p.parseBinary,
	}
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.lex.NextToken()
}

func (p *Parser) errorf(pos token.Token, format string, args ...any) *diagnostics.Error {
	return diagnostics.New(diagnostics.ErrParse,
		diagnostics.Position{Offset: pos.Offset, Line: pos.Line, Column: pos.Column},
		fmt.Sprintf(format, args...))
}

func (p *Parser) expect(tt token.Type) *diagnostics.Error {
	if p.curToken.Type != tt {
		return p.errorf(p.curToken, "expected %s, got %s %q", tt, p.curToken.Type, p.curToken.Lexeme)
	}
	p.nextToken()
	return nil
}

// ParseSignedFormula parses "Sign:Formula", the top-level input unit
// accepted by the CLI and the library facade, rejecting any trailing
// tokens after the formula.
func (p *Parser) ParseSignedFormula() (string, formula.Formula, *diagnostics.Error) {
	if p.lex.Err != nil {
		return "", nil, p.lex.Err
	}
	if p.curToken.Type != token.VARNAME && p.curToken.Type != token.PREDNAME {
		return "", nil, p.errorf(p.curToken, "expected a sign letter, got %s %q", p.curToken.Type, p.curToken.Lexeme)
	}
	signName := p.curToken.Lexeme
	p.nextToken()
	if err := p.expect(token.COLON); err != nil {
		return "", nil, err
	}
	f, err := p.ParseFormula()
	if err != nil {
		return "", nil, err
	}
	if p.curToken.Type != token.EOF {
		return "", nil, p.errorf(p.curToken, "unexpected trailing token %s %q", p.curToken.Type, p.curToken.Lexeme)
	}
	return signName, f, nil
}

// AtEOF reports whether the parser has consumed the entire input, letting
// callers that parse a bare formula (no sign prefix) detect trailing
// garbage the same way ParseSignedFormula does.
func (p *Parser) AtEOF() bool {
	return p.curToken.Type == token.EOF
}

// ParseFormula parses a bare (unsigned) formula, used for sub-expressions
// and for the Parse entry point when the caller supplies its own sign.
func (p *Parser) ParseFormula() (formula.Formula, *diagnostics.Error) {
	f, err := p.parseExpression(lowestPrecedence)
	if err != nil {
		return nil, err
	}
	if p.lex.Err != nil {
		return nil, p.lex.Err
	}
	return f, nil
}

func (p *Parser) peekPrecedence() int {
	symbol, ok := p.byToken[p.peekToken.Type]
	if !ok {
		return lowestPrecedence
	}
	return p.connectives[symbol].Precedence
}

func (p *Parser) parseExpression(precedence int) (formula.Formula, *diagnostics.Error) {
	prefix, ok := p.prefixFns[p.curToken.Type]
	if !ok {
		return nil, p.errorf(p.curToken, "unexpected token %s %q", p.curToken.Type, p.curToken.Lexeme)
	}
	left, err := prefix()
	if err != nil {
		return nil, err
	}

	for precedence < p.peekPrecedence() {
		infix, ok := p.infixFns[p.peekToken.Type]
		if !ok {
			return left, nil
		}
		p.nextToken()
		left, err = infix(left)
		if err != nil {
			return nil, err
		}
	}
	return left, nil
}

func (p *Parser) parseAtom() (formula.Formula, *diagnostics.Error) {
	f := formula.Atom{Name: p.curToken.Lexeme}
	p.nextToken()
	return f, nil
}

func (p *Parser) parsePredicate() (formula.Formula, *diagnostics.Error) {
	name := p.curToken.Lexeme
	p.nextToken()
	if err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	terms, err := p.parseTermList()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return formula.Predicate{Name: name, Terms: terms}, nil
}

func (p *Parser) parseTermList() ([]formula.Term, *diagnostics.Error) {
	var terms []formula.Term
	if p.curToken.Type == token.RPAREN {
		return terms, nil
	}
	for {
		t, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		terms = append(terms, t)
		if p.curToken.Type != token.COMMA {
			break
		}
		p.nextToken()
	}
	return terms, nil
}

func (p *Parser) parseTerm() (formula.Term, *diagnostics.Error) {
	switch p.curToken.Type {
	case token.VARNAME:
		t := formula.Variable{Name: p.curToken.Lexeme}
		p.nextToken()
		return t, nil
	case token.IDENT:
		name := p.curToken.Lexeme
		p.nextToken()
		if p.curToken.Type != token.LPAREN {
			return formula.Constant{Name: name}, nil
		}
		p.nextToken()
		args, err := p.parseTermList()
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return formula.FunctionApplication{Name: name, Terms: args}, nil
	default:
		return nil, p.errorf(p.curToken, "expected a term, got %s %q", p.curToken.Type, p.curToken.Lexeme)
	}
}

func (p *Parser) parseNegation() (formula.Formula, *diagnostics.Error) {
	spec, ok := p.connectives["~"]
	if !ok {
		return nil, p.errorf(p.curToken, "negation is not available in this logic")
	}
	p.nextToken()
	sub, err := p.parseExpression(spec.Precedence)
	if err != nil {
		return nil, err
	}
	c, cerr := formula.NewCompound(spec, []formula.Formula{sub})
	if cerr != nil {
		return nil, p.errorf(p.curToken, "%s", cerr)
	}
	return c, nil
}

func (p *Parser) parseBinary(left formula.Formula) (formula.Formula, *diagnostics.Error) {
	symbol := p.byToken[p.curToken.Type]
	spec, ok := p.connectives[symbol]
	if !ok {
		return nil, p.errorf(p.curToken, "%q is not available in this logic", symbol)
	}
	precedence := spec.Precedence
	p.nextToken()
	nextMin := precedence
	if spec.Assoc == formula.RightAssoc {
		nextMin = precedence - 1
	}
	right, err := p.parseExpression(nextMin)
	if err != nil {
		return nil, err
	}
	c, cerr := formula.NewCompound(spec, []formula.Formula{left, right})
	if cerr != nil {
		return nil, p.errorf(p.curToken, "%s", cerr)
	}
	return c, nil
}

func (p *Parser) parseGrouped() (formula.Formula, *diagnostics.Error) {
	p.nextToken() // consume '('
	f, err := p.parseExpression(lowestPrecedence)
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return f, nil
}

// parseRestrictedQuantifier parses Ferguson's [∀X Restriction]Matrix or
// [∃X Restriction]Matrix.
func (p *Parser) parseRestrictedQuantifier() (formula.Formula, *diagnostics.Error) {
	p.nextToken() // consume '['
	universal := p.curToken.Type == token.FORALL
	if !universal && p.curToken.Type != token.EXISTS {
		return nil, p.errorf(p.curToken, "expected ∀ or ∃, got %s %q", p.curToken.Type, p.curToken.Lexeme)
	}
	p.nextToken()
	if p.curToken.Type != token.VARNAME {
		return nil, p.errorf(p.curToken, "expected a bound variable, got %s %q", p.curToken.Type, p.curToken.Lexeme)
	}
	boundVar := p.curToken.Lexeme
	p.nextToken()

	restriction, err := p.parseExpression(lowestPrecedence)
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.RBRACKET); err != nil {
		return nil, err
	}
	matrix, err := p.parseExpression(lowestPrecedence)
	if err != nil {
		return nil, err
	}

	if universal {
		return formula.RestrictedUniversal{Var: boundVar, Restriction: restriction, Matrix: matrix}, nil
	}
	return formula.RestrictedExistential{Var: boundVar, Restriction: restriction, Matrix: matrix}, nil
}
