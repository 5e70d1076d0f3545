package ast

import "strings"

// VariableExpressionNode references a bound name in expression position.
type VariableExpressionNode struct {
	Name IdentifierNode
}

func (n VariableExpressionNode) Kind() Kind { return KindVariableExpression }
func (n VariableExpressionNode) exprNode()  {}
func (n VariableExpressionNode) Clone() Node {
	return VariableExpressionNode{Name: n.Name.Clone().(IdentifierNode)}
}
func (n VariableExpressionNode) String() string { return n.Name.Name }

// UnaryOperatorNode applies a prefix operator to a single operand. The
// grammar in this implementation never produces one directly; the node
// exists for a grammar extension to parse into.
type UnaryOperatorNode struct {
	Op  Operator
	Arg ExprNode
}

func (n UnaryOperatorNode) Kind() Kind { return KindUnaryOperator }
func (n UnaryOperatorNode) exprNode()  {}
func (n UnaryOperatorNode) Clone() Node {
	return UnaryOperatorNode{Op: n.Op, Arg: n.Arg.Clone().(ExprNode)}
}
func (n UnaryOperatorNode) String() string {
	return "(" + n.Op.Symbol + n.Arg.String() + ")"
}

// BinaryOperatorNode owns both of its operands exclusively.
type BinaryOperatorNode struct {
	Op  Operator
	Lhs ExprNode
	Rhs ExprNode
}

func (n BinaryOperatorNode) Kind() Kind { return KindBinaryOperator }
func (n BinaryOperatorNode) exprNode()  {}
func (n BinaryOperatorNode) Clone() Node {
	return BinaryOperatorNode{
		Op:  n.Op,
		Lhs: n.Lhs.Clone().(ExprNode),
		Rhs: n.Rhs.Clone().(ExprNode),
	}
}
func (n BinaryOperatorNode) String() string {
	return "(" + n.Lhs.String() + " " + n.Op.Symbol + " " + n.Rhs.String() + ")"
}

// FunctionCallNode invokes callee with an ordered argument list. Each
// argument is exclusively owned by this node.
type FunctionCallNode struct {
	Callee IdentifierNode
	Args   []ExprNode
}

func (n FunctionCallNode) Kind() Kind { return KindFunctionCall }
func (n FunctionCallNode) exprNode()  {}
func (n FunctionCallNode) Clone() Node {
	args := make([]ExprNode, len(n.Args))
	for i, a := range n.Args {
		args[i] = a.Clone().(ExprNode)
	}
	return FunctionCallNode{Callee: n.Callee.Clone().(IdentifierNode), Args: args}
}
func (n FunctionCallNode) String() string {
	parts := make([]string, len(n.Args))
	for i, a := range n.Args {
		parts[i] = a.String()
	}
	return n.Callee.Name + "(" + strings.Join(parts, ", ") + ")"
}
