/*
Package emitter defines the capability surface an external IR builder
must provide for this front-end to turn an AST into code, and walks the
AST dispatching to that surface. The package never talks to LLVM (or any
other backend) directly — emitter/mock supplies an in-memory reference
implementation of Builder for tests and for the cmd/ binaries, standing
in for the real Inkwell-backed builder that is out of scope here.
*/
package emitter

import "math/big"

// FunctionHandle is an opaque reference to a declared function, as
// returned by Builder.DeclareFunction/GetFunction.
type FunctionHandle interface{}

// Builder is the capability set the emitter consumes from an IR
// builder. A BinaryOperatorNode, for instance, asks its Builder to
// add/sub/mul/div two already-emitted Num values; it never touches
// LLVM types or instructions directly.
type Builder interface {
	// ConstInt wraps a signed 128-bit integer constant into a Num.
	ConstInt(v *big.Int) Num
	// ConstFloat wraps a binary64 constant into a Num.
	ConstFloat(v float64) Num

	// Add, Sub, Mul, Div implement int-op-int stays int, any-op-float
	// promotes to float, matching spec.md's unified `num` semantics.
	Add(lhs, rhs Num) (Num, error)
	Sub(lhs, rhs Num) (Num, error)
	Mul(lhs, rhs Num) (Num, error)
	Div(lhs, rhs Num) (Num, error)
	// Compare evaluates one of the five comparison operators and
	// returns a Num carrying a 0/1 integer result.
	Compare(op string, lhs, rhs Num) (Num, error)

	// DeclareFunction registers a prototype with the given parameter
	// names and external linkage, yielding a handle new callers can
	// look up with GetFunction.
	DeclareFunction(name string, params []string) (FunctionHandle, error)
	// GetFunction returns a prior declaration, or ok=false if name was
	// never declared.
	GetFunction(name string) (FunctionHandle, bool)
	// AppendEntryBlock opens the function body for emission.
	AppendEntryBlock(fn FunctionHandle) error
	// Return closes the function body with value as its result.
	Return(fn FunctionHandle, value Num) error
	// VerifyFunction checks the emitted body is well-formed.
	VerifyFunction(fn FunctionHandle) error
	// DeleteFunction rolls back a declaration whose body failed
	// verification.
	DeleteFunction(fn FunctionHandle) error

	// SetValue binds name to value in the current function's scope.
	SetValue(name string, value Num)
	// GetValue looks up a bound name, reporting ok=false if unbound.
	GetValue(name string) (Num, bool)
	// ClearValues discards all bindings, called at function entry.
	ClearValues()

	// Call invokes a previously declared function with already-emitted
	// argument values and returns its result.
	Call(fn FunctionHandle, args []Num) (Num, error)
}
