/*
Package parser implements the recursive-descent parser that turns a
lexer.Lexer's token sequence into ast.Node values, one top-level form at
a time.
*/
package parser

import (
	"math/big"

	"github.com/akashmaji946/kaleidoscope/ast"
	"github.com/akashmaji946/kaleidoscope/kerr"
	"github.com/akashmaji946/kaleidoscope/lexer"
)

// Parser holds a lexer and a single-slot look-ahead buffer. buffered is
// nil exactly when no token has been read ahead yet; this replaces the
// use-count idiom of counting how many times a buffered token has been
// examined with an explicit present-or-absent buffer.
type Parser struct {
	lex      *lexer.Lexer
	buffered *lexer.Token
}

// New builds a Parser reading from l.
func New(l *lexer.Lexer) *Parser {
	return &Parser{lex: l}
}

// Peek returns the current look-ahead token without consuming it.
// Repeated calls to Peek with no intervening Consume are idempotent.
func (p *Parser) Peek() (lexer.Token, *kerr.Error) {
	if p.buffered == nil {
		tok, err := p.lex.NextToken()
		if err != nil {
			return lexer.Token{}, err
		}
		p.buffered = &tok
	}
	return *p.buffered, nil
}

// Consume returns the current look-ahead token and clears the buffer, so
// the next Peek or Consume asks the lexer for a fresh token.
func (p *Parser) Consume() (lexer.Token, *kerr.Error) {
	tok, err := p.Peek()
	if err != nil {
		return tok, err
	}
	p.buffered = nil
	return tok, nil
}

// Resync discards the parser's buffered look-ahead token, if any. A
// ParseTop error leaves the offending token sitting in the buffer
// un-consumed (e.g. a ')' or a top-level 'if' that parsePrimary rejects
// without advancing past it); calling Resync after such an error lets
// the next ParseTop's Peek pull a fresh token from the lexer instead of
// re-examining the same one, so an error-tolerant caller makes forward
// progress. It is a no-op when the buffer is already empty, which is
// always safe to call.
func (p *Parser) Resync() {
	p.buffered = nil
}

// ParseTop parses exactly one top-level form: an extern declaration, a
// function definition, or a bare expression. ok is false once the
// stream is exhausted and there is no form to return.
func (p *Parser) ParseTop() (node ast.Node, ok bool, kerrv *kerr.Error) {
	tok, err := p.Peek()
	if err != nil {
		return nil, false, err
	}
	if tok.Kind == lexer.Eof {
		return nil, false, nil
	}

	if tok.Kind == lexer.KeywordTok && tok.Keyword == lexer.KeywordExtern {
		if _, err := p.Consume(); err != nil {
			return nil, false, err
		}
		// An original-language quirk lets 'extern' be immediately
		// followed by an optional 'def' before the prototype.
		next, err := p.Peek()
		if err != nil {
			return nil, false, err
		}
		if next.Kind == lexer.KeywordTok && next.Keyword == lexer.KeywordDef {
			if _, err := p.Consume(); err != nil {
				return nil, false, err
			}
		}
		proto, err := p.parsePrototype()
		if err != nil {
			return nil, false, err
		}
		return ast.ExternFunctionNode{Prototype: proto}, true, nil
	}

	if tok.Kind == lexer.KeywordTok && tok.Keyword == lexer.KeywordDef {
		if _, err := p.Consume(); err != nil {
			return nil, false, err
		}
		proto, err := p.parsePrototype()
		if err != nil {
			return nil, false, err
		}
		body, err := p.parseExpression()
		if err != nil {
			return nil, false, err
		}
		return ast.FunctionNode{Prototype: proto, Body: body}, true, nil
	}

	expr, err := p.parseExpression()
	if err != nil {
		return nil, false, err
	}
	if err := p.expectTermination(); err != nil {
		return nil, false, err
	}
	return expr, true, nil
}

// expectTermination enforces that an expression is followed by a
// semicolon or end of input; it consumes a trailing semicolon.
func (p *Parser) expectTermination() *kerr.Error {
	tok, err := p.Peek()
	if err != nil {
		return err
	}
	switch tok.Kind {
	case lexer.Semicolon:
		_, err := p.Consume()
		return err
	case lexer.Eof:
		return nil
	default:
		return kerr.At(kerr.SyntaxError, tok.Start, "unexpected %s after expression", tok.Kind)
	}
}

// parsePrototype parses 'name' '(' (identifier (',' identifier)*)? ')'.
func (p *Parser) parsePrototype() (ast.FunctionPrototypeNode, *kerr.Error) {
	nameTok, err := p.Consume()
	if err != nil {
		return ast.FunctionPrototypeNode{}, err
	}
	if nameTok.Kind != lexer.Identifier {
		return ast.FunctionPrototypeNode{}, kerr.At(kerr.SyntaxError, nameTok.Start,
			"expected function name, found %s", nameTok.Kind)
	}
	name := ast.IdentifierNode{Name: nameTok.Span}

	open, err := p.Consume()
	if err != nil {
		return ast.FunctionPrototypeNode{}, err
	}
	if !isLeftRound(open) {
		return ast.FunctionPrototypeNode{}, kerr.At(kerr.SyntaxError, open.Start,
			"expected '(' after function name, found %s", open.Kind)
	}

	var params []ast.IdentifierNode
	tok, err := p.Peek()
	if err != nil {
		return ast.FunctionPrototypeNode{}, err
	}
	if !isRightRound(tok) {
		for {
			ptok, err := p.Consume()
			if err != nil {
				return ast.FunctionPrototypeNode{}, err
			}
			if ptok.Kind != lexer.Identifier {
				return ast.FunctionPrototypeNode{}, kerr.At(kerr.SyntaxError, ptok.Start,
					"expected parameter name, found %s", ptok.Kind)
			}
			params = append(params, ast.IdentifierNode{Name: ptok.Span})

			sep, err := p.Peek()
			if err != nil {
				return ast.FunctionPrototypeNode{}, err
			}
			if sep.Kind != lexer.Comma {
				break
			}
			if _, err := p.Consume(); err != nil {
				return ast.FunctionPrototypeNode{}, err
			}
		}
	}

	closeTok, err := p.Consume()
	if err != nil {
		return ast.FunctionPrototypeNode{}, err
	}
	if !isRightRound(closeTok) {
		return ast.FunctionPrototypeNode{}, kerr.At(kerr.SyntaxError, closeTok.Start,
			"expected ')' to close parameter list, found %s", closeTok.Kind)
	}
	return ast.FunctionPrototypeNode{Name: name, Params: params}, nil
}

func isLeftRound(tok lexer.Token) bool {
	return tok.Kind == lexer.BracketTok && tok.BracketKind == lexer.BracketRound && tok.BracketSide == lexer.Left
}

func isRightRound(tok lexer.Token) bool {
	return tok.Kind == lexer.BracketTok && tok.BracketKind == lexer.BracketRound && tok.BracketSide == lexer.Right
}

func parseIntegerLiteral(tok lexer.Token) (ast.IntegerNode, *kerr.Error) {
	v, ok := new(big.Int).SetString(tok.Span, 10)
	if !ok {
		return ast.IntegerNode{}, kerr.At(kerr.TypeCasting, tok.Start, "malformed integer literal %q", tok.Span)
	}
	return ast.NewInteger(v), nil
}
