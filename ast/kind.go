/*
Package ast defines the Kaleidoscope abstract syntax tree: a two-tier
capability hierarchy (Node, ExprNode) over eleven concrete node types.

Per the design note this supersedes, reification from a polymorphic
handle to a concrete variant is not implemented with unsafe pointer
reinterpretation. Every concrete type answers Kind() with a package-level
constant unique to that type, and recovering a concrete variant from a
Node or ExprNode value is an ordinary Go type assertion/switch — the
accessors in cast.go exist only so callers don't have to repeat the
assertion boilerplate.
*/
package ast

// Kind is the discriminant every concrete node type answers with. Two
// instances of the same concrete type always return the same Kind.
type Kind int

const (
	KindInteger Kind = iota
	KindFloat
	KindIdentifier
	KindOperator
	KindVariableExpression
	KindUnaryOperator
	KindBinaryOperator
	KindFunctionCall
	KindFunctionPrototype
	KindFunction
	KindExternFunction
)

var kindNames = map[Kind]string{
	KindInteger:            "Integer",
	KindFloat:              "Float",
	KindIdentifier:         "Identifier",
	KindOperator:           "Operator",
	KindVariableExpression: "VariableExpression",
	KindUnaryOperator:      "UnaryOperator",
	KindBinaryOperator:     "BinaryOperator",
	KindFunctionCall:       "FunctionCall",
	KindFunctionPrototype:  "FunctionPrototype",
	KindFunction:           "Function",
	KindExternFunction:     "ExternFunction",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}
