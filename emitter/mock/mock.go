/*
Package mock is an in-memory reference implementation of emitter.Builder.
It stands in for a real LLVM-backed builder (out of scope for this
front-end) so the emission path, the cmd/ binaries, and the test suite
can all exercise emitter.Emit end to end without a JIT.
*/
package mock

import (
	"fmt"
	"math/big"

	"github.com/akashmaji946/kaleidoscope/emitter"
)

// funcDef is the concrete type behind every emitter.FunctionHandle this
// builder hands out.
type funcDef struct {
	name        string
	params      []string
	hasBody     bool
	returnValue emitter.Num
}

// MockBuilder implements emitter.Builder over plain Go maps. The
// embedded *emitter.Scope supplies SetValue/GetValue/ClearValues
// directly, satisfying that slice of the interface with no extra code.
type MockBuilder struct {
	*emitter.Scope
	functions map[string]*funcDef
	verified  map[string]bool
}

// NewMockBuilder returns an empty builder ready to emit a session's
// worth of top-level forms.
func NewMockBuilder() *MockBuilder {
	return &MockBuilder{
		Scope:     emitter.NewScope(),
		functions: make(map[string]*funcDef),
		verified:  make(map[string]bool),
	}
}

func (m *MockBuilder) ConstInt(v *big.Int) emitter.Num {
	return emitter.NewIntNum(new(big.Int).Set(v))
}

func (m *MockBuilder) ConstFloat(v float64) emitter.Num {
	return emitter.NewFloatNum(v)
}

func (m *MockBuilder) Add(lhs, rhs emitter.Num) (emitter.Num, error) {
	if lhs.IsInt && rhs.IsInt {
		return emitter.NewIntNum(new(big.Int).Add(lhs.Int, rhs.Int)), nil
	}
	return emitter.NewFloatNum(lhs.AsFloat64() + rhs.AsFloat64()), nil
}

func (m *MockBuilder) Sub(lhs, rhs emitter.Num) (emitter.Num, error) {
	if lhs.IsInt && rhs.IsInt {
		return emitter.NewIntNum(new(big.Int).Sub(lhs.Int, rhs.Int)), nil
	}
	return emitter.NewFloatNum(lhs.AsFloat64() - rhs.AsFloat64()), nil
}

func (m *MockBuilder) Mul(lhs, rhs emitter.Num) (emitter.Num, error) {
	if lhs.IsInt && rhs.IsInt {
		return emitter.NewIntNum(new(big.Int).Mul(lhs.Int, rhs.Int)), nil
	}
	return emitter.NewFloatNum(lhs.AsFloat64() * rhs.AsFloat64()), nil
}

func (m *MockBuilder) Div(lhs, rhs emitter.Num) (emitter.Num, error) {
	if lhs.IsInt && rhs.IsInt {
		if rhs.Int.Sign() == 0 {
			return emitter.Num{}, fmt.Errorf("integer division by zero")
		}
		return emitter.NewIntNum(new(big.Int).Quo(lhs.Int, rhs.Int)), nil
	}
	return emitter.NewFloatNum(lhs.AsFloat64() / rhs.AsFloat64()), nil
}

func (m *MockBuilder) Compare(op string, lhs, rhs emitter.Num) (emitter.Num, error) {
	// Integer-integer comparison must stay on big.Int: routing it through
	// AsFloat64 would lose precision past 2^53 and silently corrupt
	// comparisons between distinct large int128 values, the same failure
	// mode big.Int is here to avoid (cf. Add/Sub/Mul/Div).
	var cmp int
	if lhs.IsInt && rhs.IsInt {
		cmp = lhs.Int.Cmp(rhs.Int)
	} else {
		l, r := lhs.AsFloat64(), rhs.AsFloat64()
		switch {
		case l < r:
			cmp = -1
		case l > r:
			cmp = 1
		default:
			cmp = 0
		}
	}

	var result bool
	switch op {
	case "<":
		result = cmp < 0
	case ">":
		result = cmp > 0
	case "==":
		result = cmp == 0
	case "<=":
		result = cmp <= 0
	case ">=":
		result = cmp >= 0
	default:
		return emitter.Num{}, fmt.Errorf("unknown comparison operator %q", op)
	}
	if result {
		return emitter.NewIntNum(big.NewInt(1)), nil
	}
	return emitter.NewIntNum(big.NewInt(0)), nil
}

func (m *MockBuilder) DeclareFunction(name string, params []string) (emitter.FunctionHandle, error) {
	if _, ok := m.functions[name]; ok {
		return nil, fmt.Errorf("function %q already declared", name)
	}
	fd := &funcDef{name: name, params: append([]string(nil), params...)}
	m.functions[name] = fd
	return fd, nil
}

func (m *MockBuilder) GetFunction(name string) (emitter.FunctionHandle, bool) {
	fd, ok := m.functions[name]
	if !ok {
		return nil, false
	}
	return fd, true
}

func (m *MockBuilder) AppendEntryBlock(fn emitter.FunctionHandle) error {
	fd, ok := fn.(*funcDef)
	if !ok {
		return fmt.Errorf("invalid function handle")
	}
	fd.hasBody = true
	return nil
}

func (m *MockBuilder) Return(fn emitter.FunctionHandle, value emitter.Num) error {
	fd, ok := fn.(*funcDef)
	if !ok {
		return fmt.Errorf("invalid function handle")
	}
	fd.returnValue = value
	return nil
}

func (m *MockBuilder) VerifyFunction(fn emitter.FunctionHandle) error {
	fd, ok := fn.(*funcDef)
	if !ok || !fd.hasBody {
		return fmt.Errorf("function has no emitted body to verify")
	}
	m.verified[fd.name] = true
	return nil
}

func (m *MockBuilder) DeleteFunction(fn emitter.FunctionHandle) error {
	fd, ok := fn.(*funcDef)
	if !ok {
		return fmt.Errorf("invalid function handle")
	}
	delete(m.functions, fd.name)
	delete(m.verified, fd.name)
	return nil
}

func (m *MockBuilder) Call(fn emitter.FunctionHandle, args []emitter.Num) (emitter.Num, error) {
	fd, ok := fn.(*funcDef)
	if !ok {
		return emitter.Num{}, fmt.Errorf("invalid function handle")
	}
	if !m.verified[fd.name] {
		return emitter.Num{}, fmt.Errorf("function %q has no verified body", fd.name)
	}
	if len(args) != len(fd.params) {
		return emitter.Num{}, fmt.Errorf("function %q expects %d arguments, got %d", fd.name, len(fd.params), len(args))
	}
	return fd.returnValue, nil
}
