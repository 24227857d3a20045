package generate

import (
	"strconv"

	"mc/ast"
	"mc/report"
	"mc/types"

	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	lltypes "github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

// genExpr emits an expression and returns its SSA value.
func (g *Generator) genExpr(expr ast.Expr) value.Value {
	switch v := expr.(type) {
	case *ast.Literal:
		return g.genLiteral(v)
	case *ast.Identifier:
		{
			sl := g.lookup(v.Name)
			return g.block.NewLoad(sl.elemType, sl.ptr)
		}
	case *ast.UnaryOp:
		return g.genUnaryOp(v)
	case *ast.BinaryOp:
		return g.genBinaryOp(v)
	case *ast.Call:
		return g.genCall(v)
	case *ast.Cast:
		return g.castToType(g.genExpr(v.Src), g.convType(v.Target))
	}

	report.Fatal("code generator: expression not supported")
	return nil
}

// genLiteral emits a literal constant.  Integer literals are 32-bit signed
// constants and float literals 32-bit float constants; widening to the
// surrounding context happens at the store, return, or argument site.
func (g *Generator) genLiteral(lit *ast.Literal) value.Value {
	switch lit.Kind {
	case ast.LitInt:
		{
			// Always succeeds: the lexer only produces decimal digit runs.
			x, _ := strconv.ParseInt(lit.Value, 10, 64)
			return constant.NewInt(lltypes.I32, x)
		}
	case ast.LitFloat:
		{
			x, _ := strconv.ParseFloat(lit.Value, 32)
			return constant.NewFloat(lltypes.Float, x)
		}
	case ast.LitBool:
		return constant.NewBool(lit.Value == "true")
	default:
		report.Fatal("code generator: string literals not supported")
		return nil
	}
}

// genUnaryOp emits a unary operator application.
func (g *Generator) genUnaryOp(uop *ast.UnaryOp) value.Value {
	operand := g.genExpr(uop.Operand)

	if uop.Op == "!" {
		return g.block.NewXor(operand, constant.NewInt(lltypes.I1, 1))
	}

	// Unary minus: integer negate or float negate.
	if it, ok := operand.Type().(*lltypes.IntType); ok {
		return g.block.NewSub(constant.NewInt(it, 0), operand)
	}

	return g.block.NewFNeg(operand)
}

// genBinaryOp emits a binary operator application.  Both operands are first
// widened to the operation's common type computed during semantic analysis,
// so mixed integer/float operand pairs never reach the instruction dispatch.
func (g *Generator) genBinaryOp(bop *ast.BinaryOp) value.Value {
	lhs := g.genExpr(bop.Lhs)
	rhs := g.genExpr(bop.Rhs)

	switch bop.Op {
	case "+", "-", "*", "/", "%":
		{
			common := g.convType(bop.Type())
			lhs = g.castToType(lhs, common)
			rhs = g.castToType(rhs, common)

			return g.genArith(bop.Op, lhs, rhs)
		}
	case "<", "<=", ">", ">=", "==", "!=":
		{
			common := g.convType(comparisonType(bop.Lhs.Type(), bop.Rhs.Type()))
			lhs = g.castToType(lhs, common)
			rhs = g.castToType(rhs, common)

			return g.genComparison(bop.Op, lhs, rhs)
		}
	default:
		// Logical && and ||, emitted as bitwise operations on i1 values.
		if bop.Op == "&&" {
			return g.block.NewAnd(lhs, rhs)
		}

		return g.block.NewOr(lhs, rhs)
	}
}

// comparisonType computes the common type both comparison operands are
// widened to before the compare: the numeric widening of the two operand
// types, or the shared operand type when they already agree.
func comparisonType(left, right types.Type) types.Type {
	if left.IsNumeric() && right.IsNumeric() {
		return types.WidenBinary(left, right)
	}

	return left
}

// genArith emits an arithmetic instruction over two same-typed operands:
// signed operations for integers, float operations for floats.
func (g *Generator) genArith(op string, lhs, rhs value.Value) value.Value {
	if isIntType(lhs.Type()) {
		switch op {
		case "+":
			return g.block.NewAdd(lhs, rhs)
		case "-":
			return g.block.NewSub(lhs, rhs)
		case "*":
			return g.block.NewMul(lhs, rhs)
		case "/":
			return g.block.NewSDiv(lhs, rhs)
		default:
			return g.block.NewSRem(lhs, rhs)
		}
	}

	if isFloatType(lhs.Type()) {
		switch op {
		case "+":
			return g.block.NewFAdd(lhs, rhs)
		case "-":
			return g.block.NewFSub(lhs, rhs)
		case "*":
			return g.block.NewFMul(lhs, rhs)
		case "/":
			return g.block.NewFDiv(lhs, rhs)
		default:
			report.Fatal("code generator: unsupported float operator: %s", op)
		}
	}

	report.Fatal("code generator: unsupported operand types for '%s'", op)
	return nil
}

// intPredicates maps comparison operators to their signed integer predicate.
var intPredicates = map[string]enum.IPred{
	"<":  enum.IPredSLT,
	"<=": enum.IPredSLE,
	">":  enum.IPredSGT,
	">=": enum.IPredSGE,
	"==": enum.IPredEQ,
	"!=": enum.IPredNE,
}

// floatPredicates maps comparison operators to their ordered float predicate.
var floatPredicates = map[string]enum.FPred{
	"<":  enum.FPredOLT,
	"<=": enum.FPredOLE,
	">":  enum.FPredOGT,
	">=": enum.FPredOGE,
	"==": enum.FPredOEQ,
	"!=": enum.FPredONE,
}

// genComparison emits a comparison instruction over two same-typed operands:
// signed predicates for integers, ordered predicates for floats.
func (g *Generator) genComparison(op string, lhs, rhs value.Value) value.Value {
	typ := lhs.Type()

	if isIntType(typ) || isBoolType(typ) {
		return g.block.NewICmp(intPredicates[op], lhs, rhs)
	}

	if isFloatType(typ) {
		return g.block.NewFCmp(floatPredicates[op], lhs, rhs)
	}

	report.Fatal("code generator: unsupported operand types for '%s'", op)
	return nil
}

// genCall emits a function call, casting each argument to the corresponding
// parameter type of the callee's recorded prototype.
func (g *Generator) genCall(call *ast.Call) value.Value {
	f, ok := g.funcs[call.Name]
	if !ok {
		report.Fatal("code generator: undefined function: %s", call.Name)
	}

	args := make([]value.Value, len(call.Args))
	for i, arg := range call.Args {
		args[i] = g.castToType(g.genExpr(arg), f.Sig.Params[i])
	}

	return g.block.NewCall(f, args...)
}
