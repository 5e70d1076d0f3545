package ast

// Node is the base capability every AST element carries: a stable kind
// discriminant and deep cloning behind the polymorphic boundary.
type Node interface {
	Kind() Kind
	Clone() Node
	String() string
}

// ExprNode is a Node that additionally participates in expression
// position. The unexported marker method seals the interface to this
// package, mirroring a tagged sum: only the concrete types declared here
// can ever satisfy ExprNode.
type ExprNode interface {
	Node
	exprNode()
}

// Operator carries one of the lexer's operator tags into the AST, shared
// verbatim between the two packages per the data model.
type Operator struct {
	Symbol string
}

func (o Operator) Kind() Kind     { return KindOperator }
func (o Operator) Clone() Node    { return Operator{Symbol: o.Symbol} }
func (o Operator) String() string { return o.Symbol }

// IdentifierNode names a variable, function, or parameter.
type IdentifierNode struct {
	Name string
}

func (n IdentifierNode) Kind() Kind     { return KindIdentifier }
func (n IdentifierNode) Clone() Node    { return IdentifierNode{Name: n.Name} }
func (n IdentifierNode) String() string { return n.Name }
