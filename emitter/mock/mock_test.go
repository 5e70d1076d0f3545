package mock

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/kaleidoscope/emitter"
)

func TestIntPlusIntStaysInt(t *testing.T) {
	b := NewMockBuilder()
	sum, err := b.Add(b.ConstInt(big.NewInt(2)), b.ConstInt(big.NewInt(3)))
	require.NoError(t, err)
	assert.True(t, sum.IsInt)
	assert.Equal(t, "5", sum.Int.String())
}

func TestIntPlusFloatPromotesToFloat(t *testing.T) {
	b := NewMockBuilder()
	sum, err := b.Add(b.ConstInt(big.NewInt(2)), b.ConstFloat(1.5))
	require.NoError(t, err)
	assert.False(t, sum.IsInt)
	assert.Equal(t, 3.5, sum.Float)
}

func TestIntDivisionByZeroErrors(t *testing.T) {
	b := NewMockBuilder()
	_, err := b.Div(b.ConstInt(big.NewInt(1)), b.ConstInt(big.NewInt(0)))
	assert.Error(t, err)
}

func TestCompareProducesIntegerBoolean(t *testing.T) {
	b := NewMockBuilder()
	result, err := b.Compare("<", b.ConstInt(big.NewInt(1)), b.ConstInt(big.NewInt(2)))
	require.NoError(t, err)
	assert.True(t, result.IsInt)
	assert.Equal(t, "1", result.Int.String())
}

func TestCompareIntIntStaysExactPastFloat64Precision(t *testing.T) {
	// 9007199254740993 and 9007199254740992 both round to the same
	// float64 (2^53); a Compare that converts through AsFloat64 first
	// would wrongly call these equal.
	b := NewMockBuilder()
	a, _ := new(big.Int).SetString("9007199254740993", 10)
	c, _ := new(big.Int).SetString("9007199254740992", 10)

	eq, err := b.Compare("==", b.ConstInt(a), b.ConstInt(c))
	require.NoError(t, err)
	assert.Equal(t, "0", eq.Int.String())

	gt, err := b.Compare(">", b.ConstInt(a), b.ConstInt(c))
	require.NoError(t, err)
	assert.Equal(t, "1", gt.Int.String())
}

func TestDeclareGetAndCallFunction(t *testing.T) {
	b := NewMockBuilder()
	fn, err := b.DeclareFunction("f", []string{"a"})
	require.NoError(t, err)

	got, ok := b.GetFunction("f")
	require.True(t, ok)
	assert.Equal(t, fn, got)

	require.NoError(t, b.AppendEntryBlock(fn))
	b.ClearValues()
	b.SetValue("a", b.ConstInt(big.NewInt(7)))
	v, ok := b.GetValue("a")
	require.True(t, ok)

	require.NoError(t, b.Return(fn, v))
	require.NoError(t, b.VerifyFunction(fn))

	result, err := b.Call(fn, []emitter.Num{b.ConstInt(big.NewInt(7))})
	require.NoError(t, err)
	assert.Equal(t, "7", result.Int.String())
}

func TestCallBeforeVerifyFails(t *testing.T) {
	b := NewMockBuilder()
	fn, err := b.DeclareFunction("g", nil)
	require.NoError(t, err)
	_, err = b.Call(fn, nil)
	assert.Error(t, err)
}

func TestDeleteFunctionRemovesDeclaration(t *testing.T) {
	b := NewMockBuilder()
	fn, err := b.DeclareFunction("h", nil)
	require.NoError(t, err)
	require.NoError(t, b.DeleteFunction(fn))
	_, ok := b.GetFunction("h")
	assert.False(t, ok)
}
