package walk

import (
	"mc/ast"
	"mc/symbols"
	"mc/types"
)

// walkExpr checks an expression bottom-up, records the computed type on the
// node, and returns it.  Expressions that fail to check produce Unknown.
func (w *Walker) walkExpr(expr ast.Expr) types.Type {
	var typ types.Type

	switch v := expr.(type) {
	case *ast.Literal:
		typ = literalType(v)
	case *ast.Identifier:
		typ = w.walkIdentifier(v)
	case *ast.UnaryOp:
		typ = w.walkUnaryOp(v)
	case *ast.BinaryOp:
		typ = w.walkBinaryOp(v)
	case *ast.Call:
		typ = w.walkCall(v)
	case *ast.Cast:
		typ = w.walkCast(v)
	default:
		typ = types.Unknown
	}

	expr.SetType(typ)

	return typ
}

// literalType returns the type of a literal: integer literals are i32, float
// literals f32.
func literalType(lit *ast.Literal) types.Type {
	switch lit.Kind {
	case ast.LitInt:
		return types.I32
	case ast.LitFloat:
		return types.F32
	case ast.LitBool:
		return types.Bool
	default:
		return types.String
	}
}

// walkIdentifier checks an identifier reference.  Reading a declared but
// uninitialized variable warns but still produces the declared type.
func (w *Walker) walkIdentifier(id *ast.Identifier) types.Type {
	pos := id.Position()
	sym := w.table.Resolve(id.Name)

	if sym == nil {
		w.h.ReportUndefinedSymbol(id.Name, pos.Line, pos.Col)
		return types.Unknown
	}

	if varSym, ok := sym.(*symbols.VarSymbol); ok && !varSym.Initialized {
		w.h.ReportUninitializedVariable(id.Name, pos.Line, pos.Col)
	}

	return sym.Type()
}

// walkUnaryOp checks a unary operator application.
func (w *Walker) walkUnaryOp(uop *ast.UnaryOp) types.Type {
	operandType := w.walkExpr(uop.Operand)
	pos := uop.Position()

	if uop.Op == "!" {
		if operandType != types.Bool && operandType != types.Unknown {
			w.h.ReportTypeError("bool", operandType.Repr(), pos.Line, pos.Col)
		}

		return types.Bool
	}

	// Unary minus.
	if !operandType.IsNumeric() && operandType != types.Unknown {
		w.h.ReportIncompatibleTypes("numeric", operandType.Repr(), "unary -", pos.Line, pos.Col)
	}

	return operandType
}

// walkBinaryOp checks a binary operator application, dispatching on the
// operator: arithmetic, comparison, or logical.
func (w *Walker) walkBinaryOp(bop *ast.BinaryOp) types.Type {
	leftType := w.walkExpr(bop.Lhs)
	rightType := w.walkExpr(bop.Rhs)
	pos := bop.Position()

	switch bop.Op {
	case "+", "-", "*", "/", "%":
		if leftType == types.Unknown || rightType == types.Unknown {
			return types.Unknown
		}

		if !leftType.IsNumeric() || !rightType.IsNumeric() {
			w.h.ReportIncompatibleTypes(leftType.Repr(), rightType.Repr(), bop.Op, pos.Line, pos.Col)
			return types.Unknown
		}

		return types.WidenBinary(leftType, rightType)
	case "<", "<=", ">", ">=", "==", "!=":
		if leftType != types.Unknown && rightType != types.Unknown && !types.Comparable(leftType, rightType) {
			w.h.ReportIncompatibleTypes(leftType.Repr(), rightType.Repr(), bop.Op, pos.Line, pos.Col)
		}

		return types.Bool
	default:
		// Logical && and ||.
		if leftType != types.Bool && leftType != types.Unknown {
			lpos := bop.Lhs.Position()
			w.h.ReportTypeError("bool", leftType.Repr(), lpos.Line, lpos.Col)
		}

		if rightType != types.Bool && rightType != types.Unknown {
			rpos := bop.Rhs.Position()
			w.h.ReportTypeError("bool", rightType.Repr(), rpos.Line, rpos.Col)
		}

		return types.Bool
	}
}

// walkCall checks a function call.  On an arity mismatch the per-argument
// type checks are skipped for the call.
func (w *Walker) walkCall(call *ast.Call) types.Type {
	pos := call.Position()
	sym := w.table.Resolve(call.Name)

	if sym == nil {
		w.h.ReportUndefinedSymbol(call.Name, pos.Line, pos.Col)
		return types.Unknown
	}

	funcSym, ok := sym.(*symbols.FuncSymbol)
	if !ok {
		w.h.ReportFunctionNotFound(call.Name, pos.Line, pos.Col)
		return types.Unknown
	}

	if len(funcSym.Params) != len(call.Args) {
		w.h.ReportWrongArgumentCount(call.Name, len(funcSym.Params), len(call.Args), pos.Line, pos.Col)
		return funcSym.Type()
	}

	for i, arg := range call.Args {
		argType := w.walkExpr(arg)
		paramType := funcSym.Params[i].Type()

		if !types.Assignable(paramType, argType) {
			apos := arg.Position()
			w.h.ReportTypeError(paramType.Repr(), argType.Repr(), apos.Line, apos.Col)
		}
	}

	return funcSym.Type()
}

// walkCast checks an explicit cast expression.
func (w *Walker) walkCast(cast *ast.Cast) types.Type {
	srcType := w.walkExpr(cast.Src)
	pos := cast.Position()

	if !types.CastAllowed(srcType, cast.Target) {
		w.h.ReportIncompatibleTypes(srcType.Repr(), cast.Target.Repr(), "as", pos.Line, pos.Col)
	}

	return cast.Target
}
