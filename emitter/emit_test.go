package emitter_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/kaleidoscope/ast"
	"github.com/akashmaji946/kaleidoscope/charstream"
	"github.com/akashmaji946/kaleidoscope/emitter"
	"github.com/akashmaji946/kaleidoscope/emitter/mock"
	"github.com/akashmaji946/kaleidoscope/lexer"
	"github.com/akashmaji946/kaleidoscope/parser"
)

func mustParseTop(t *testing.T, src string) ast.Node {
	t.Helper()
	p := parser.New(lexer.New(charstream.New(strings.NewReader(src))))
	node, ok, err := p.ParseTop()
	require.Nil(t, err)
	require.True(t, ok)
	return node
}

func TestEmitIntegerLiteral(t *testing.T) {
	node := mustParseTop(t, "42")
	b := mock.NewMockBuilder()
	v, err := emitter.Emit(node, b)
	require.Nil(t, err)
	assert.True(t, v.IsInt)
	assert.Equal(t, "42", v.Int.String())
}

func TestEmitBinaryOperatorPromotesToFloat(t *testing.T) {
	node := mustParseTop(t, "1 + 2.5")
	b := mock.NewMockBuilder()
	v, err := emitter.Emit(node, b)
	require.Nil(t, err)
	assert.False(t, v.IsInt)
	assert.Equal(t, 3.5, v.Float)
}

func TestEmitUndefinedVariableErrors(t *testing.T) {
	node := mustParseTop(t, "x")
	b := mock.NewMockBuilder()
	_, err := emitter.Emit(node, b)
	require.NotNil(t, err)
	assert.Equal(t, "UndefinedName", err.Kind.String())
}

func TestEmitFunctionDefinitionAndCall(t *testing.T) {
	b := mock.NewMockBuilder()

	defNode := mustParseTop(t, "def addone(a) a + 1")
	_, err := emitter.Emit(defNode, b)
	require.Nil(t, err)

	callNode := mustParseTop(t, "addone(41)")
	result, err := emitter.Emit(callNode, b)
	require.Nil(t, err)
	assert.True(t, result.IsInt)
}

func TestEmitExternDeclaresWithoutBody(t *testing.T) {
	b := mock.NewMockBuilder()
	externNode := mustParseTop(t, "extern foo(x, y)")
	_, err := emitter.Emit(externNode, b)
	require.Nil(t, err)

	_, ok := b.GetFunction("foo")
	assert.True(t, ok)
}

func TestEmitOversizedIntegerLiteralIsBitWidthError(t *testing.T) {
	node := mustParseTop(t, "340282366920938463463374607431768211456") // 2^128
	b := mock.NewMockBuilder()
	_, err := emitter.Emit(node, b)
	require.NotNil(t, err)
	assert.Equal(t, "BitWidth", err.Kind.String())
}

func TestEmitUndefinedFunctionCallErrors(t *testing.T) {
	node := mustParseTop(t, "nope(1)")
	b := mock.NewMockBuilder()
	_, err := emitter.Emit(node, b)
	require.NotNil(t, err)
	assert.Equal(t, "UndefinedName", err.Kind.String())
}
