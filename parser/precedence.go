package parser

import (
	"strconv"

	"github.com/akashmaji946/kaleidoscope/ast"
	"github.com/akashmaji946/kaleidoscope/kerr"
	"github.com/akashmaji946/kaleidoscope/lexer"
)

// precedence assigns each operator its binding strength. Operators not
// in the table (including lexer.OpUnknown) bind at the lowest strength,
// which is lower than any real operator's precedence and so always
// terminates a climb immediately.
var precedenceTable = map[lexer.Operator]int{
	lexer.OpLess:    1,
	lexer.OpLe:      1,
	lexer.OpEq:      1,
	lexer.OpGe:      1,
	lexer.OpGreater: 1,
	lexer.OpPlus:    2,
	lexer.OpMinus:   2,
	lexer.OpStar:    3,
	lexer.OpSlash:   3,
}

const lowestPrecedence = 0

func precedence(op lexer.Operator) int {
	if p, ok := precedenceTable[op]; ok {
		return p
	}
	return lowestPrecedence
}

// parseExpression parses a primary expression followed by zero or more
// binary operators, climbing by precedence.
func (p *Parser) parseExpression() (ast.ExprNode, *kerr.Error) {
	lhs, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	return p.parseBinOpRHS(lhs, lowestPrecedence)
}

// parseBinOpRHS implements the RHS-climb algorithm: fold left-to-right
// at a given operator's precedence, recursing only when the following
// operator binds strictly tighter. Equal precedence continues the loop
// rather than recursing, producing left-associativity.
func (p *Parser) parseBinOpRHS(lhs ast.ExprNode, m int) (ast.ExprNode, *kerr.Error) {
	for {
		opTok, err := p.Peek()
		if err != nil {
			return nil, err
		}
		if opTok.Kind != lexer.OperatorTok {
			return lhs, nil
		}
		lop := opTok.Operator
		lopPrec := precedence(lop)
		if lopPrec == lowestPrecedence || lopPrec < m {
			return lhs, nil
		}
		if _, err := p.Consume(); err != nil {
			return nil, err
		}

		rhs, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}

		nextTok, err := p.Peek()
		if err != nil {
			return nil, err
		}
		if nextTok.Kind == lexer.OperatorTok && precedence(nextTok.Operator) > lopPrec {
			rhs, err = p.parseBinOpRHS(rhs, lopPrec+1)
			if err != nil {
				return nil, err
			}
		}

		lhs = ast.BinaryOperatorNode{Op: ast.Operator{Symbol: string(lop)}, Lhs: lhs, Rhs: rhs}
	}
}

// parsePrimary parses a literal, variable reference, call, or
// parenthesized expression.
func (p *Parser) parsePrimary() (ast.ExprNode, *kerr.Error) {
	tok, err := p.Peek()
	if err != nil {
		return nil, err
	}
	switch tok.Kind {
	case lexer.Integer:
		if _, err := p.Consume(); err != nil {
			return nil, err
		}
		return parseIntegerLiteral(tok)
	case lexer.Float:
		if _, err := p.Consume(); err != nil {
			return nil, err
		}
		f, perr := strconv.ParseFloat(tok.Span, 64)
		if perr != nil {
			return nil, kerr.At(kerr.TypeCasting, tok.Start, "malformed float literal %q", tok.Span)
		}
		return ast.FloatNode{Value: f}, nil
	case lexer.Identifier:
		return p.parseIdentifierExpr()
	case lexer.BracketTok:
		if isLeftRound(tok) {
			return p.parseParenExpr()
		}
		return nil, kerr.At(kerr.SyntaxError, tok.Start, "unexpected bracket %q", tok.Span)
	default:
		return nil, kerr.At(kerr.SyntaxError, tok.Start, "expected expression, found %s", tok.Kind)
	}
}

// parseIdentifierExpr disambiguates a bare variable reference from a
// function call by looking one token past the identifier: if it is a
// left round bracket, this is a call.
func (p *Parser) parseIdentifierExpr() (ast.ExprNode, *kerr.Error) {
	idTok, err := p.Consume()
	if err != nil {
		return nil, err
	}
	name := ast.IdentifierNode{Name: idTok.Span}

	next, err := p.Peek()
	if err != nil {
		return nil, err
	}
	if isLeftRound(next) {
		args, err := p.parseExprList()
		if err != nil {
			return nil, err
		}
		return ast.FunctionCallNode{Callee: name, Args: args}, nil
	}
	return ast.VariableExpressionNode{Name: name}, nil
}

// parseExprList parses '(' (expr (',' expr)*)? ')', always flanked by
// matching round brackets. A trailing comma surfaces as a syntax error
// from the subsequent attempt to parse an expression at ')'.
func (p *Parser) parseExprList() ([]ast.ExprNode, *kerr.Error) {
	if _, err := p.Consume(); err != nil { // '('
		return nil, err
	}

	tok, err := p.Peek()
	if err != nil {
		return nil, err
	}
	if isRightRound(tok) {
		if _, err := p.Consume(); err != nil {
			return nil, err
		}
		return nil, nil
	}

	var args []ast.ExprNode
	for {
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		sep, err := p.Peek()
		if err != nil {
			return nil, err
		}
		switch {
		case sep.Kind == lexer.Comma:
			if _, err := p.Consume(); err != nil {
				return nil, err
			}
		case isRightRound(sep):
			if _, err := p.Consume(); err != nil {
				return nil, err
			}
			return args, nil
		default:
			return nil, kerr.At(kerr.SyntaxError, sep.Start, "expected ',' or ')' in argument list, found %s", sep.Kind)
		}
	}
}

// parseParenExpr parses '(' expression ')', stripping the brackets.
func (p *Parser) parseParenExpr() (ast.ExprNode, *kerr.Error) {
	if _, err := p.Consume(); err != nil { // '('
		return nil, err
	}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	closeTok, err := p.Peek()
	if err != nil {
		return nil, err
	}
	if !isRightRound(closeTok) {
		return nil, kerr.At(kerr.SyntaxError, closeTok.Start, "missing closing ')'")
	}
	if _, err := p.Consume(); err != nil {
		return nil, err
	}
	return expr, nil
}
