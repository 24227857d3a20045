package types

// Assignable returns whether a value of type source may be implicitly
// converted to type target in an initialization, argument passing, or return
// statement.  The permitted widenings are i32 -> i64, f32 -> f64, and any
// integer -> any float.  Unknown on either side passes to avoid cascading
// errors.
func Assignable(target, source Type) bool {
	if target == source {
		return true
	}

	if target == Unknown || source == Unknown {
		return true
	}

	if target == I64 && source == I32 {
		return true
	}

	if target == F64 && source == F32 {
		return true
	}

	return target.IsFloat() && source.IsInteger()
}

// Comparable returns whether values of the two types may be compared with the
// relational operators: equal types, or both numeric.
func Comparable(a, b Type) bool {
	if a == b {
		return true
	}

	return a.IsNumeric() && b.IsNumeric()
}

// CastAllowed returns whether an explicit cast from source to target is
// admissible: identity, any numeric to any numeric, or Unknown on either
// side.
func CastAllowed(source, target Type) bool {
	if source == Unknown || target == Unknown {
		return true
	}

	if source == target {
		return true
	}

	return source.IsNumeric() && target.IsNumeric()
}

// WidenBinary computes the result type of a binary arithmetic operation over
// two numeric operands: any f64 operand widens the result to f64, else any
// f32 to f32, else any i64 to i64, else i32.
func WidenBinary(left, right Type) Type {
	if left == F64 || right == F64 {
		return F64
	}

	if left == F32 || right == F32 {
		return F32
	}

	if left == I64 || right == I64 {
		return I64
	}

	return I32
}
