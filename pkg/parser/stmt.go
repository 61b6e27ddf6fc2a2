package parser

import "cm/pkg/parsetree"

func (p *Parser) statementList() *parsetree.Node {
	n := parsetree.NewInternal("Statement-list")
	if p.startsStatement() {
		n.Add(p.statement())
		n.Add(p.statementList())
		return n
	}
	n.Add(parsetree.NewEpsilon())
	return n
}

// startsStatement reports whether the lookahead belongs to
// First(Statement) = First(Expression) ∪ {break, ;, {, if, for, return}.
func (p *Parser) startsStatement() bool {
	if p.curIsSymbol("{") || p.curIsSymbol(";") || p.curIsKeyword("if", "for", "return", "break") {
		return true
	}
	return p.startsExpression()
}

func (p *Parser) statement() *parsetree.Node {
	n := parsetree.NewInternal("Statement")
	switch {
	case p.curIsSymbol("{"):
		n.Add(p.compoundStmt())
	case p.curIsKeyword("if"):
		n.Add(p.selectionStmt())
	case p.curIsKeyword("for"):
		n.Add(p.iterationStmt())
	case p.curIsKeyword("return"):
		n.Add(p.returnStmt())
	default:
		n.Add(p.expressionStmt())
	}
	return n
}

func (p *Parser) expressionStmt() *parsetree.Node {
	n := parsetree.NewInternal("Expression-stmt")
	switch {
	case p.curIsKeyword("break"):
		n.Add(p.matchKeyword("break"))
		n.Add(p.matchSymbol(";"))
	case p.curIsSymbol(";"):
		n.Add(p.matchSymbol(";"))
	default:
		n.Add(p.expression())
		if p.curIsSymbol(";") {
			n.Add(p.matchSymbol(";"))
		} else {
			p.expectedErr("';'")
			n.Add(p.syncTo(";"))
		}
	}
	return n
}

func (p *Parser) selectionStmt() *parsetree.Node {
	n := parsetree.NewInternal("Selection-stmt")
	n.Add(p.matchKeyword("if"))
	n.Add(p.matchSymbol("("))
	n.Add(p.expression())
	n.Add(p.matchSymbol(")"))
	n.Add(p.statement())
	// Dangling else binds to the nearest unmatched if: consume greedily
	// whenever 'else' is the immediate next token.
	if p.curIsKeyword("else") {
		n.Add(p.matchKeyword("else"))
		n.Add(p.statement())
	} else {
		n.Add(parsetree.NewEpsilon())
	}
	return n
}

func (p *Parser) iterationStmt() *parsetree.Node {
	n := parsetree.NewInternal("Iteration-stmt")
	n.Add(p.matchKeyword("for"))
	n.Add(p.matchSymbol("("))
	n.Add(p.expression())
	n.Add(p.matchSymbol(";"))
	n.Add(p.expression())
	n.Add(p.matchSymbol(";"))
	n.Add(p.expression())
	n.Add(p.matchSymbol(")"))
	n.Add(p.compoundStmt())
	return n
}

func (p *Parser) returnStmt() *parsetree.Node {
	n := parsetree.NewInternal("Return-stmt")
	n.Add(p.matchKeyword("return"))
	if p.curIsSymbol(";") {
		n.Add(p.matchSymbol(";"))
		return n
	}
	n.Add(p.expression())
	if p.curIsSymbol(";") {
		n.Add(p.matchSymbol(";"))
	} else {
		p.expectedErr("';'")
		n.Add(p.syncTo(";"))
	}
	return n
}
