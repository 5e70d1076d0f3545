package lexer

import (
	"strings"

	"github.com/akashmaji946/kaleidoscope/charstream"
	"github.com/akashmaji946/kaleidoscope/kerr"
)

// Lexer drives a charstream.Stream one character at a time, classifying
// runs of characters into Tokens. It never un-reads: the underlying
// stream's own one-character Peek/Advance pair is the only look-ahead.
type Lexer struct {
	stream *charstream.Stream
}

// New wraps s for tokenization.
func New(s *charstream.Stream) *Lexer {
	return &Lexer{stream: s}
}

func isAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isAlnum(r rune) bool {
	return isAlpha(r) || isDigit(r)
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

func isOpChar(r rune) bool {
	switch r {
	case '+', '-', '*', '/', '<', '>', '=':
		return true
	default:
		return false
	}
}

// NextToken skips whitespace and comments, then produces exactly one
// Token. Returns an Eof token, never an error, once the stream is
// exhausted. A nil error with a valid token is the common case; only
// lex-level failures (invalid characters, malformed operator runs,
// trailing-dot floats) produce an error.
func (l *Lexer) NextToken() (Token, *kerr.Error) {
	if err := l.skipWhitespaceAndComments(); err != nil {
		return Token{}, err
	}

	start := l.stream.Position()
	r, ok := l.stream.Peek()
	if !ok {
		if l.stream.Err() != nil {
			return Token{}, l.stream.Err()
		}
		return Token{Kind: Eof, Start: start, End: start}, nil
	}

	switch {
	case isAlpha(r):
		return l.lexIdentifier(start)
	case isDigit(r):
		return l.lexNumber(start)
	case isOpChar(r):
		return l.lexOperator(start)
	case r == '(', r == ')', r == '[', r == ']', r == '{', r == '}':
		return l.lexBracket(start)
	case r == ',':
		l.stream.Advance()
		return Token{Kind: Comma, Span: ",", Start: start, End: l.stream.Position()}, nil
	case r == '.':
		l.stream.Advance()
		return Token{Kind: Dot, Span: ".", Start: start, End: l.stream.Position()}, nil
	case r == ';':
		l.stream.Advance()
		return Token{Kind: Semicolon, Span: ";", Start: start, End: l.stream.Position()}, nil
	default:
		l.stream.Advance()
		return Token{}, kerr.At(kerr.InvalidChar, start, "invalid character %q", r)
	}
}

func (l *Lexer) skipWhitespaceAndComments() *kerr.Error {
	for {
		r, ok := l.stream.Peek()
		if !ok {
			if l.stream.Err() != nil {
				return l.stream.Err()
			}
			return nil
		}
		switch {
		case isSpace(r):
			l.stream.Advance()
		case r == '#':
			for {
				r, ok := l.stream.Peek()
				if !ok {
					return nil
				}
				l.stream.Advance()
				if r == '\n' {
					break
				}
			}
		default:
			return nil
		}
	}
}

func (l *Lexer) lexIdentifier(start charstream.Position) (Token, *kerr.Error) {
	var sb strings.Builder
	for {
		r, ok := l.stream.Peek()
		if !ok || !isAlnum(r) {
			break
		}
		l.stream.Advance()
		sb.WriteRune(r)
	}
	span := sb.String()
	end := l.stream.Position()
	if kw, ok := lookupKeyword(span); ok {
		return Token{Kind: KeywordTok, Span: span, Start: start, End: end, Keyword: kw}, nil
	}
	return Token{Kind: Identifier, Span: span, Start: start, End: end}, nil
}

func (l *Lexer) lexNumber(start charstream.Position) (Token, *kerr.Error) {
	var sb strings.Builder
	for {
		r, ok := l.stream.Peek()
		if !ok || !isDigit(r) {
			break
		}
		l.stream.Advance()
		sb.WriteRune(r)
	}

	r, ok := l.stream.Peek()
	if !ok || r != '.' {
		span := sb.String()
		return Token{Kind: Integer, Span: span, Start: start, End: l.stream.Position()}, nil
	}

	l.stream.Advance()
	sb.WriteRune('.')
	fracStart := l.stream.Position()
	fracDigits := 0
	for {
		r, ok := l.stream.Peek()
		if !ok || !isDigit(r) {
			break
		}
		l.stream.Advance()
		sb.WriteRune(r)
		fracDigits++
	}
	if fracDigits == 0 {
		return Token{}, kerr.At(kerr.BadChar, fracStart, "expected digits after '.' in float literal")
	}
	span := sb.String()
	return Token{Kind: Float, Span: span, Start: start, End: l.stream.Position()}, nil
}

func (l *Lexer) lexOperator(start charstream.Position) (Token, *kerr.Error) {
	var sb strings.Builder
	for {
		r, ok := l.stream.Peek()
		if !ok || !isOpChar(r) {
			break
		}
		l.stream.Advance()
		sb.WriteRune(r)
	}
	span := sb.String()
	end := l.stream.Position()
	op, ok := lookupOperator(span)
	if !ok {
		return Token{}, kerr.At(kerr.InvalidCombo, start, "unrecognized operator %q", span)
	}
	return Token{Kind: OperatorTok, Span: span, Start: start, End: end, Operator: op}, nil
}

func (l *Lexer) lexBracket(start charstream.Position) (Token, *kerr.Error) {
	r, _ := l.stream.Advance()
	kind, side, ok := lookupBracket(r)
	if !ok {
		return Token{}, kerr.At(kerr.InvalidChar, start, "unrecognized bracket %q", r)
	}
	return Token{
		Kind:        BracketTok,
		Span:        string(r),
		Start:       start,
		End:         l.stream.Position(),
		BracketKind: kind,
		BracketSide: side,
	}, nil
}
