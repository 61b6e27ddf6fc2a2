package parser

import (
	"cm/pkg/parsetree"
	"cm/pkg/token"
)

// startsExpression reports whether the lookahead belongs to First(Expression)
// = {ID} ∪ First(Simple-expression-zegond) = {ID, NUM, '(', '+', '-'}.
func (p *Parser) startsExpression() bool {
	t := p.cur()
	if t.Kind == token.ID || t.Kind == token.NUM {
		return true
	}
	return p.curIsSymbol("(", "+", "-")
}

func (p *Parser) expression() *parsetree.Node {
	n := parsetree.NewInternal("Expression")
	if p.cur().Kind == token.ID {
		n.Add(p.matchKind(token.ID))
		n.Add(p.exprB())
		return n
	}
	n.Add(p.simpleExpressionZegond())
	return n
}

func (p *Parser) exprB() *parsetree.Node {
	n := parsetree.NewInternal("B")
	switch {
	case p.curIsSymbol("="):
		n.Add(p.matchSymbol("="))
		n.Add(p.expression())
	case p.curIsSymbol("["):
		n.Add(p.matchSymbol("["))
		n.Add(p.expression())
		n.Add(p.matchSymbol("]"))
		n.Add(p.exprH())
	default:
		n.Add(p.simpleExpressionPrime())
	}
	return n
}

func (p *Parser) exprH() *parsetree.Node {
	n := parsetree.NewInternal("H")
	if p.curIsSymbol("=") {
		n.Add(p.matchSymbol("="))
		n.Add(p.expression())
		return n
	}
	n.Add(p.exprG())
	n.Add(p.exprD())
	n.Add(p.exprC())
	return n
}

func (p *Parser) simpleExpressionZegond() *parsetree.Node {
	n := parsetree.NewInternal("Simple-expression-zegond")
	n.Add(p.additiveExpressionZegond())
	n.Add(p.exprC())
	return n
}

func (p *Parser) simpleExpressionPrime() *parsetree.Node {
	n := parsetree.NewInternal("Simple-expression-prime")
	n.Add(p.additiveExpressionPrime())
	n.Add(p.exprC())
	return n
}

func (p *Parser) exprC() *parsetree.Node {
	n := parsetree.NewInternal("C")
	if p.curIsSymbol("==", "<") {
		if p.curIsSymbol("==") {
			n.Add(p.matchSymbol("=="))
		} else {
			n.Add(p.matchSymbol("<"))
		}
		n.Add(p.additiveExpression())
		return n
	}
	n.Add(parsetree.NewEpsilon())
	return n
}

func (p *Parser) additiveExpression() *parsetree.Node {
	n := parsetree.NewInternal("Additive-expression")
	n.Add(p.term())
	n.Add(p.exprD())
	return n
}

func (p *Parser) additiveExpressionPrime() *parsetree.Node {
	n := parsetree.NewInternal("Additive-expression-prime")
	n.Add(p.termPrime())
	n.Add(p.exprD())
	return n
}

func (p *Parser) additiveExpressionZegond() *parsetree.Node {
	n := parsetree.NewInternal("Additive-expression-zegond")
	n.Add(p.termZegond())
	n.Add(p.exprD())
	return n
}

func (p *Parser) exprD() *parsetree.Node {
	n := parsetree.NewInternal("D")
	if p.curIsSymbol("+", "-") {
		if p.curIsSymbol("+") {
			n.Add(p.matchSymbol("+"))
		} else {
			n.Add(p.matchSymbol("-"))
		}
		n.Add(p.term())
		n.Add(p.exprD())
		return n
	}
	n.Add(parsetree.NewEpsilon())
	return n
}

func (p *Parser) term() *parsetree.Node {
	n := parsetree.NewInternal("Term")
	n.Add(p.signedFactor())
	n.Add(p.exprG())
	return n
}

func (p *Parser) termPrime() *parsetree.Node {
	n := parsetree.NewInternal("Term-prime")
	n.Add(p.factorPrime())
	n.Add(p.exprG())
	return n
}

func (p *Parser) termZegond() *parsetree.Node {
	n := parsetree.NewInternal("Term-zegond")
	n.Add(p.signedFactorZegond())
	n.Add(p.exprG())
	return n
}

func (p *Parser) exprG() *parsetree.Node {
	n := parsetree.NewInternal("G")
	if p.curIsSymbol("*", "/") {
		if p.curIsSymbol("*") {
			n.Add(p.matchSymbol("*"))
		} else {
			n.Add(p.matchSymbol("/"))
		}
		n.Add(p.signedFactor())
		n.Add(p.exprG())
		return n
	}
	n.Add(parsetree.NewEpsilon())
	return n
}

func (p *Parser) signedFactor() *parsetree.Node {
	n := parsetree.NewInternal("Signed-factor")
	if p.curIsSymbol("+", "-") {
		if p.curIsSymbol("+") {
			n.Add(p.matchSymbol("+"))
		} else {
			n.Add(p.matchSymbol("-"))
		}
	}
	n.Add(p.factor())
	return n
}

func (p *Parser) signedFactorZegond() *parsetree.Node {
	n := parsetree.NewInternal("Signed-factor-zegond")
	if p.curIsSymbol("+", "-") {
		if p.curIsSymbol("+") {
			n.Add(p.matchSymbol("+"))
		} else {
			n.Add(p.matchSymbol("-"))
		}
		n.Add(p.factor())
		return n
	}
	n.Add(p.factorZegond())
	return n
}

func (p *Parser) factor() *parsetree.Node {
	n := parsetree.NewInternal("Factor")
	switch {
	case p.curIsSymbol("("):
		n.Add(p.matchSymbol("("))
		n.Add(p.expression())
		n.Add(p.matchSymbol(")"))
	case p.cur().Kind == token.ID:
		n.Add(p.matchKind(token.ID))
		n.Add(p.varCallPrime())
	case p.cur().Kind == token.NUM:
		n.Add(p.matchKind(token.NUM))
	default:
		p.expectedErr("'(', ID, or NUM")
	}
	return n
}

func (p *Parser) varCallPrime() *parsetree.Node {
	n := parsetree.NewInternal("Var-call-prime")
	if p.curIsSymbol("(") {
		n.Add(p.matchSymbol("("))
		n.Add(p.args())
		n.Add(p.matchSymbol(")"))
		return n
	}
	n.Add(p.varPrime())
	return n
}

func (p *Parser) varPrime() *parsetree.Node {
	n := parsetree.NewInternal("Var-prime")
	if p.curIsSymbol("[") {
		n.Add(p.matchSymbol("["))
		n.Add(p.expression())
		n.Add(p.matchSymbol("]"))
		return n
	}
	n.Add(parsetree.NewEpsilon())
	return n
}

func (p *Parser) factorPrime() *parsetree.Node {
	n := parsetree.NewInternal("Factor-prime")
	if p.curIsSymbol("(") {
		n.Add(p.matchSymbol("("))
		n.Add(p.args())
		n.Add(p.matchSymbol(")"))
		return n
	}
	n.Add(parsetree.NewEpsilon())
	return n
}

func (p *Parser) factorZegond() *parsetree.Node {
	n := parsetree.NewInternal("Factor-zegond")
	switch {
	case p.curIsSymbol("("):
		n.Add(p.matchSymbol("("))
		n.Add(p.expression())
		n.Add(p.matchSymbol(")"))
	case p.cur().Kind == token.NUM:
		n.Add(p.matchKind(token.NUM))
	default:
		p.expectedErr("'(' or NUM")
	}
	return n
}

func (p *Parser) args() *parsetree.Node {
	n := parsetree.NewInternal("Args")
	if !p.startsExpression() {
		n.Add(parsetree.NewEpsilon())
		return n
	}
	n.Add(p.argList())
	return n
}

func (p *Parser) argList() *parsetree.Node {
	n := parsetree.NewInternal("Arg-list")
	n.Add(p.expression())
	n.Add(p.argListPrime())
	return n
}

func (p *Parser) argListPrime() *parsetree.Node {
	n := parsetree.NewInternal("Arg-list-prime")
	if p.curIsSymbol(",") {
		n.Add(p.matchSymbol(","))
		n.Add(p.expression())
		n.Add(p.argListPrime())
		return n
	}
	n.Add(parsetree.NewEpsilon())
	return n
}
