package lexer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/kaleidoscope/charstream"
	"github.com/akashmaji946/kaleidoscope/kerr"
)

func tokenize(t *testing.T, src string) []Token {
	t.Helper()
	l := New(charstream.New(strings.NewReader(src)))
	var toks []Token
	for {
		tok, err := l.NextToken()
		require.Nil(t, err)
		toks = append(toks, tok)
		if tok.Kind == Eof {
			break
		}
	}
	return toks
}

func TestLexerIdentifierAndKeyword(t *testing.T) {
	toks := tokenize(t, "def foo bar123")
	require.Len(t, toks, 4)
	assert.Equal(t, KeywordTok, toks[0].Kind)
	assert.Equal(t, KeywordDef, toks[0].Keyword)
	assert.Equal(t, Identifier, toks[1].Kind)
	assert.Equal(t, "foo", toks[1].Span)
	assert.Equal(t, "bar123", toks[2].Span)
	assert.Equal(t, Eof, toks[3].Kind)
}

func TestLexerIntegerAndFloat(t *testing.T) {
	toks := tokenize(t, "420 3.8")
	require.Len(t, toks, 3)
	assert.Equal(t, Integer, toks[0].Kind)
	assert.Equal(t, "420", toks[0].Span)
	assert.Equal(t, Float, toks[1].Kind)
	assert.Equal(t, "3.8", toks[1].Span)
}

func TestLexerBadCharKindOnTrailingDot(t *testing.T) {
	l := New(charstream.New(strings.NewReader("1.")))
	tok, lexErr := l.NextToken()
	require.NotNil(t, lexErr)
	assert.Equal(t, kerr.BadChar, lexErr.Kind)
	assert.Equal(t, "0:2", lexErr.Pos.String())
	assert.Equal(t, Unknown, tok.Kind)
}

func TestLexerOperatorRuns(t *testing.T) {
	toks := tokenize(t, "+ - * / < > == <= >=")
	ops := []string{"+", "-", "*", "/", "<", ">", "==", "<=", ">="}
	for i, want := range ops {
		require.Equal(t, OperatorTok, toks[i].Kind)
		assert.Equal(t, want, string(toks[i].Operator))
	}
}

func TestLexerUnrecognizedOperatorCombo(t *testing.T) {
	l := New(charstream.New(strings.NewReader("=+")))
	_, err := l.NextToken()
	require.NotNil(t, err)
}

func TestLexerBracketsAndPunctuation(t *testing.T) {
	toks := tokenize(t, "(a, b);.")
	kinds := []Kind{BracketTok, Identifier, Comma, Identifier, BracketTok, Semicolon, Dot, Eof}
	require.Len(t, toks, len(kinds))
	for i, k := range kinds {
		assert.Equal(t, k, toks[i].Kind, "token %d", i)
	}
	assert.Equal(t, Left, toks[0].BracketSide)
	assert.Equal(t, Right, toks[4].BracketSide)
}

func TestLexerCommentToEndOfLine(t *testing.T) {
	toks := tokenize(t, "# comment\n1 + 1")
	require.Len(t, toks, 4)
	assert.Equal(t, Integer, toks[0].Kind)
	assert.Equal(t, "1", toks[0].Span)
	assert.Equal(t, OperatorTok, toks[1].Kind)
	assert.Equal(t, Integer, toks[2].Kind)
}

func TestLexerPositionsMonotonic(t *testing.T) {
	toks := tokenize(t, "abc def")
	for i := 1; i < len(toks); i++ {
		prevEndLine := toks[i-1].End.GetLine()
		curStartLine := toks[i].Start.GetLine()
		if prevEndLine == curStartLine {
			assert.LessOrEqual(t, toks[i-1].End.Column, toks[i].Start.Column)
		}
	}
}
