// Package parser implements a predictive recursive-descent parser over the
// CM grammar. It builds a concrete parse tree, including explicit epsilon
// nodes for empty productions, and records syntax errors with local
// panic-mode recovery rather than aborting on the first mismatch.
package parser

import (
	"fmt"

	"cm/pkg/parsetree"
	"cm/pkg/token"
)

// Parser consumes a materialized token sequence (as produced by
// scanner.ConsumeAll) and builds the concrete parse tree top-down from the
// start symbol Program.
type Parser struct {
	tokens []token.Token
	pos    int
	errs   []string
}

// New returns a Parser over tokens, which must end with an EOF token.
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Errors returns the syntax-error list in detection order.
func (p *Parser) Errors() []string {
	return p.errs
}

// Parse returns the root of the concrete parse tree for Program.
func (p *Parser) Parse() *parsetree.Node {
	root := parsetree.NewInternal("Program")
	root.Add(p.declarationList())
	if p.cur().Kind != token.EOF {
		p.expectedErr("EOF")
	}
	return root
}

func (p *Parser) cur() token.Token {
	if p.pos >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.pos]
}

func (p *Parser) advance() token.Token {
	t := p.cur()
	if t.Kind != token.EOF {
		p.pos++
	}
	return t
}

func (p *Parser) curIsKeyword(lexemes ...string) bool {
	t := p.cur()
	if t.Kind != token.KEYWORD {
		return false
	}
	for _, l := range lexemes {
		if t.Lexeme == l {
			return true
		}
	}
	return false
}

func (p *Parser) curIsSymbol(lexemes ...string) bool {
	t := p.cur()
	if t.Kind != token.SYMBOL {
		return false
	}
	for _, l := range lexemes {
		if t.Lexeme == l {
			return true
		}
	}
	return false
}

func (p *Parser) syntaxError(msg string) {
	p.errs = append(p.errs, msg)
}

func (p *Parser) expectedErr(what string) {
	t := p.cur()
	p.syntaxError(fmt.Sprintf("Expected %s but found '%s' at line %d col %d", what, t.Lexeme, t.Line, t.Col))
}

// match consumes the current token as a leaf if it satisfies pred,
// otherwise records a syntax error naming what was expected and skips one
// lookahead token (simple panic-mode recovery), returning nil.
func (p *Parser) match(pred func(token.Token) bool, what string) *parsetree.Node {
	t := p.cur()
	if !pred(t) {
		p.expectedErr(what)
		if t.Kind != token.EOF {
			p.advance()
		}
		return nil
	}
	p.advance()
	return parsetree.NewTokenLeaf(t)
}

func (p *Parser) matchKeyword(lexeme string) *parsetree.Node {
	return p.match(func(t token.Token) bool { return t.Kind == token.KEYWORD && t.Lexeme == lexeme }, "'"+lexeme+"'")
}

func (p *Parser) matchSymbol(lexeme string) *parsetree.Node {
	return p.match(func(t token.Token) bool { return t.Kind == token.SYMBOL && t.Lexeme == lexeme }, "'"+lexeme+"'")
}

func (p *Parser) matchKind(k token.Kind) *parsetree.Node {
	return p.match(func(t token.Token) bool { return t.Kind == k }, k.String())
}

// syncTo skips tokens until it finds lexeme (a plausible synchronizing
// symbol) or EOF, consuming and returning it as a leaf if found. Used by
// productions whose trailing terminator is critical to re-establishing the
// statement boundary.
func (p *Parser) syncTo(lexeme string) *parsetree.Node {
	for p.cur().Kind != token.EOF {
		if p.cur().Kind == token.SYMBOL && p.cur().Lexeme == lexeme {
			t := p.cur()
			p.advance()
			return parsetree.NewTokenLeaf(t)
		}
		p.advance()
	}
	return nil
}

func (p *Parser) declarationList() *parsetree.Node {
	n := parsetree.NewInternal("Declaration-list")
	if p.curIsKeyword("int", "void") {
		n.Add(p.declaration())
		n.Add(p.declarationList())
		return n
	}
	n.Add(parsetree.NewEpsilon())
	return n
}

func (p *Parser) declaration() *parsetree.Node {
	n := parsetree.NewInternal("Declaration")
	n.Add(p.declarationInitial())
	n.Add(p.declarationPrime())
	return n
}

func (p *Parser) declarationInitial() *parsetree.Node {
	n := parsetree.NewInternal("Declaration-initial")
	n.Add(p.typeSpecifier())
	n.Add(p.matchKind(token.ID))
	return n
}

func (p *Parser) declarationPrime() *parsetree.Node {
	n := parsetree.NewInternal("Declaration-prime")
	if p.curIsSymbol("(") {
		n.Add(p.funDeclarationPrime())
	} else {
		n.Add(p.varDeclarationPrime())
	}
	return n
}

func (p *Parser) varDeclarationPrime() *parsetree.Node {
	n := parsetree.NewInternal("Var-declaration-prime")
	switch {
	case p.curIsSymbol("["):
		n.Add(p.matchSymbol("["))
		n.Add(p.matchKind(token.NUM))
		n.Add(p.matchSymbol("]"))
		n.Add(p.matchSymbol(";"))
	case p.curIsSymbol(";"):
		n.Add(p.matchSymbol(";"))
	default:
		p.expectedErr("';' or '['")
		n.Add(p.syncTo(";"))
	}
	return n
}

func (p *Parser) funDeclarationPrime() *parsetree.Node {
	n := parsetree.NewInternal("Fun-declaration-prime")
	n.Add(p.matchSymbol("("))
	n.Add(p.params())
	n.Add(p.matchSymbol(")"))
	n.Add(p.compoundStmt())
	return n
}

func (p *Parser) typeSpecifier() *parsetree.Node {
	n := parsetree.NewInternal("Type-specifier")
	if p.curIsKeyword("int") {
		n.Add(p.matchKeyword("int"))
	} else if p.curIsKeyword("void") {
		n.Add(p.matchKeyword("void"))
	} else {
		p.expectedErr("'int' or 'void'")
	}
	return n
}

func (p *Parser) params() *parsetree.Node {
	n := parsetree.NewInternal("Params")
	if p.curIsKeyword("void") {
		n.Add(p.matchKeyword("void"))
		return n
	}
	n.Add(p.matchKeyword("int"))
	n.Add(p.matchKind(token.ID))
	n.Add(p.paramPrime())
	n.Add(p.paramList())
	return n
}

func (p *Parser) paramList() *parsetree.Node {
	n := parsetree.NewInternal("Param-list")
	if p.curIsSymbol(",") {
		n.Add(p.matchSymbol(","))
		n.Add(p.param())
		n.Add(p.paramList())
		return n
	}
	n.Add(parsetree.NewEpsilon())
	return n
}

func (p *Parser) param() *parsetree.Node {
	n := parsetree.NewInternal("Param")
	n.Add(p.declarationInitial())
	n.Add(p.paramPrime())
	return n
}

func (p *Parser) paramPrime() *parsetree.Node {
	n := parsetree.NewInternal("Param-prime")
	if p.curIsSymbol("[") {
		n.Add(p.matchSymbol("["))
		n.Add(p.matchSymbol("]"))
		return n
	}
	n.Add(parsetree.NewEpsilon())
	return n
}

func (p *Parser) compoundStmt() *parsetree.Node {
	n := parsetree.NewInternal("Compound-stmt")
	n.Add(p.matchSymbol("{"))
	n.Add(p.declarationList())
	n.Add(p.statementList())
	n.Add(p.matchSymbol("}"))
	return n
}
