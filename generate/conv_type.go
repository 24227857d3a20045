package generate

import (
	"mc/report"
	"mc/types"

	lltypes "github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

// convType maps a language primitive type to its backend type.  Signed and
// unsigned integers map by width: signedness is conveyed by operation choice,
// not by type.  Types the generator has no representation for are fatal; they
// are never reached for well-typed input.
func (g *Generator) convType(typ types.Type) lltypes.Type {
	switch typ {
	case types.I8, types.U8:
		return lltypes.I8
	case types.I16, types.U16:
		return lltypes.I16
	case types.I32, types.U32:
		return lltypes.I32
	case types.I64, types.U64:
		return lltypes.I64
	case types.F32:
		return lltypes.Float
	case types.F64:
		return lltypes.Double
	case types.Bool:
		return lltypes.I1
	case types.Void:
		return lltypes.Void
	default:
		report.Fatal("code generator: unsupported type: %s", typ.Repr())
		return nil
	}
}

// -----------------------------------------------------------------------------

// isIntType returns whether the backend type is an integer type wider than
// one bit.  The one-bit type is bool and is deliberately excluded.
func isIntType(typ lltypes.Type) bool {
	it, ok := typ.(*lltypes.IntType)
	return ok && it.BitSize > 1
}

// isBoolType returns whether the backend type is the one-bit integer type.
func isBoolType(typ lltypes.Type) bool {
	it, ok := typ.(*lltypes.IntType)
	return ok && it.BitSize == 1
}

// isFloatType returns whether the backend type is a floating-point type.
func isFloatType(typ lltypes.Type) bool {
	_, ok := typ.(*lltypes.FloatType)
	return ok
}

// floatWidth orders the floating-point kinds by width.
func floatWidth(typ lltypes.Type) int {
	if typ.(*lltypes.FloatType).Kind == lltypes.FloatKindDouble {
		return 64
	}

	return 32
}

// castToType converts a value to the destination backend type.  This is the
// single implicit-coercion point applied at every store, return, and
// call-argument site: integer widening sign-extends, narrowing truncates,
// float conversions extend or truncate, and integer/float conversions go
// through the signed forms.  Any pairing the function does not recognize is
// passed through unchanged; that is recovery behavior and is unreachable for
// well-typed input.
func (g *Generator) castToType(v value.Value, dstType lltypes.Type) value.Value {
	srcType := v.Type()
	if lltypes.Equal(srcType, dstType) {
		return v
	}

	if isIntType(srcType) && isIntType(dstType) {
		srcW := srcType.(*lltypes.IntType).BitSize
		dstW := dstType.(*lltypes.IntType).BitSize

		switch {
		case srcW == dstW:
			return v
		case srcW < dstW:
			return g.block.NewSExt(v, dstType)
		default:
			return g.block.NewTrunc(v, dstType)
		}
	}

	if isFloatType(srcType) && isFloatType(dstType) {
		switch {
		case floatWidth(srcType) < floatWidth(dstType):
			return g.block.NewFPExt(v, dstType)
		case floatWidth(srcType) > floatWidth(dstType):
			return g.block.NewFPTrunc(v, dstType)
		default:
			return v
		}
	}

	if isIntType(srcType) && isFloatType(dstType) {
		return g.block.NewSIToFP(v, dstType)
	}

	if isFloatType(srcType) && isIntType(dstType) {
		return g.block.NewFPToSI(v, dstType)
	}

	return v
}
