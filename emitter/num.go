package emitter

import "math/big"

// Num is Kaleidoscope's unified numeric value: every expression the
// emitter produces is one of these, carrying both an integer and a
// float representation plus a discriminator saying which is live.
type Num struct {
	Int    *big.Int
	Float  float64
	IsInt  bool
}

// NewIntNum builds an integer-valued Num.
func NewIntNum(v *big.Int) Num {
	return Num{Int: v, IsInt: true}
}

// NewFloatNum builds a float-valued Num.
func NewFloatNum(v float64) Num {
	return Num{Float: v, IsInt: false}
}

// AsFloat64 returns the Num's value as a float64 regardless of which
// representation is live, for use by promotion logic.
func (n Num) AsFloat64() float64 {
	if n.IsInt {
		f := new(big.Float).SetInt(n.Int)
		v, _ := f.Float64()
		return v
	}
	return n.Float
}

// zeroBig returns a fresh big.Int holding 0, used wherever the emitter
// needs an integer-valued placeholder (unary negation's identity,
// unbound parameter placeholders).
func zeroBig() *big.Int {
	return big.NewInt(0)
}
