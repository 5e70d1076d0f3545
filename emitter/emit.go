package emitter

import (
	"math/big"

	"github.com/akashmaji946/kaleidoscope/ast"
	"github.com/akashmaji946/kaleidoscope/kerr"
)

// int128Min and int128Max bound the signed 128-bit range every
// IntegerNode must fit before it can be emitted as a constant.
var (
	int128Min = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
	int128Max = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
)

// Emit walks node and asks b to produce the IR for it, recursing into
// children. Integer/Float/Variable/BinaryOperator/FunctionCall all
// return the Num their expression produces. FunctionPrototype and
// ExternFunction return a zero Num on success (declaration has no
// runtime value); Function returns its body's value.
func Emit(node ast.Node, b Builder) (Num, *kerr.Error) {
	switch node.Kind() {
	case ast.KindInteger:
		v, _ := ast.AsInteger(node)
		if v.Value.Cmp(int128Min) < 0 || v.Value.Cmp(int128Max) > 0 {
			return Num{}, kerr.New(kerr.BitWidth, "integer literal %s does not fit in a signed 128-bit integer", v.Value.String())
		}
		return b.ConstInt(v.Value), nil

	case ast.KindFloat:
		v, _ := ast.AsFloat(node)
		return b.ConstFloat(v.Value), nil

	case ast.KindVariableExpression:
		v, _ := ast.AsVariableExpression(node)
		val, ok := b.GetValue(v.Name.Name)
		if !ok {
			return Num{}, kerr.New(kerr.UndefinedName, "undefined name %q", v.Name.Name)
		}
		return val, nil

	case ast.KindUnaryOperator:
		return emitUnary(node, b)

	case ast.KindBinaryOperator:
		return emitBinary(node, b)

	case ast.KindFunctionCall:
		return emitCall(node, b)

	case ast.KindFunctionPrototype:
		proto, _ := ast.AsFunctionPrototype(node)
		_, err := declarePrototype(proto, b)
		return Num{}, err

	case ast.KindExternFunction:
		ext, _ := ast.AsExternFunction(node)
		_, err := declarePrototype(ext.Prototype, b)
		return Num{}, err

	case ast.KindFunction:
		return emitFunction(node, b)

	default:
		return Num{}, kerr.New(kerr.Other, "cannot emit node of kind %s", node.Kind())
	}
}

func emitUnary(node ast.Node, b Builder) (Num, *kerr.Error) {
	u, _ := ast.AsUnaryOperator(node)
	arg, err := Emit(u.Arg, b)
	if err != nil {
		return Num{}, err
	}
	if u.Op.Symbol != "-" {
		return Num{}, kerr.New(kerr.UnknownOperation, "unsupported unary operator %q", u.Op.Symbol)
	}
	var zero Num
	if arg.IsInt {
		zero = b.ConstInt(zeroBig())
	} else {
		zero = b.ConstFloat(0)
	}
	result, rerr := b.Sub(zero, arg)
	if rerr != nil {
		return Num{}, kerr.Wrap(kerr.TypeError, rerr, "unary '-' failed")
	}
	return result, nil
}

func emitBinary(node ast.Node, b Builder) (Num, *kerr.Error) {
	bo, _ := ast.AsBinaryOperator(node)
	lhs, err := Emit(bo.Lhs, b)
	if err != nil {
		return Num{}, err
	}
	rhs, err := Emit(bo.Rhs, b)
	if err != nil {
		return Num{}, err
	}

	var (
		result Num
		oerr   error
	)
	switch bo.Op.Symbol {
	case "+":
		result, oerr = b.Add(lhs, rhs)
	case "-":
		result, oerr = b.Sub(lhs, rhs)
	case "*":
		result, oerr = b.Mul(lhs, rhs)
	case "/":
		result, oerr = b.Div(lhs, rhs)
	case "<", ">", "==", "<=", ">=":
		result, oerr = b.Compare(bo.Op.Symbol, lhs, rhs)
	default:
		return Num{}, kerr.New(kerr.UnknownOperation, "unsupported operator %q", bo.Op.Symbol)
	}
	if oerr != nil {
		return Num{}, kerr.Wrap(kerr.TypeError, oerr, "operator %q failed", bo.Op.Symbol)
	}
	return result, nil
}

func emitCall(node ast.Node, b Builder) (Num, *kerr.Error) {
	call, _ := ast.AsFunctionCall(node)
	fn, ok := b.GetFunction(call.Callee.Name)
	if !ok {
		return Num{}, kerr.New(kerr.UndefinedName, "undefined function %q", call.Callee.Name)
	}
	args := make([]Num, len(call.Args))
	for i, a := range call.Args {
		v, err := Emit(a, b)
		if err != nil {
			return Num{}, err
		}
		args[i] = v
	}
	result, err := b.Call(fn, args)
	if err != nil {
		return Num{}, kerr.Wrap(kerr.NotBasicValue, err, "call to %q did not produce a value", call.Callee.Name)
	}
	return result, nil
}

// declarePrototype reuses an existing declaration of the same name, or
// registers a new one with external linkage.
func declarePrototype(proto ast.FunctionPrototypeNode, b Builder) (FunctionHandle, *kerr.Error) {
	if fn, ok := b.GetFunction(proto.Name.Name); ok {
		return fn, nil
	}
	params := make([]string, len(proto.Params))
	for i, p := range proto.Params {
		params[i] = p.Name
	}
	fn, err := b.DeclareFunction(proto.Name.Name, params)
	if err != nil {
		return nil, kerr.Wrap(kerr.CouldNotMakeFunction, err, "could not declare function %q", proto.Name.Name)
	}
	return fn, nil
}

// emitFunction declares (or reuses) the prototype, opens an entry
// block, binds parameters, emits the body, and verifies the result.
// Any failure after the entry block is opened rolls the declaration
// back with DeleteFunction, per the scoped-release requirement on
// emitter state.
func emitFunction(node ast.Node, b Builder) (Num, *kerr.Error) {
	fnNode, _ := ast.AsFunction(node)
	fn, kerrv := declarePrototype(fnNode.Prototype, b)
	if kerrv != nil {
		return Num{}, kerrv
	}
	if err := b.AppendEntryBlock(fn); err != nil {
		return Num{}, kerr.Wrap(kerr.CouldNotMakeFunction, err, "could not open entry block for %q", fnNode.Prototype.Name.Name)
	}

	b.ClearValues()
	for _, p := range fnNode.Prototype.Params {
		// The real IR builder binds each name to the Value carrying
		// the function's incoming argument; the opaque Builder here
		// has no caller context at definition time, so each parameter
		// is bound to a placeholder integer zero.
		b.SetValue(p.Name, b.ConstInt(zeroBig()))
	}

	body, err := Emit(fnNode.Body, b)
	if err != nil {
		_ = b.DeleteFunction(fn)
		return Num{}, err
	}
	if rerr := b.Return(fn, body); rerr != nil {
		_ = b.DeleteFunction(fn)
		return Num{}, kerr.Wrap(kerr.CouldNotMakeFunction, rerr, "could not return from %q", fnNode.Prototype.Name.Name)
	}
	if verr := b.VerifyFunction(fn); verr != nil {
		_ = b.DeleteFunction(fn)
		return Num{}, kerr.Wrap(kerr.CouldNotMakeFunction, verr, "function %q failed verification", fnNode.Prototype.Name.Name)
	}
	return body, nil
}
