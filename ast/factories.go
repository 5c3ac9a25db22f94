package ast

func Eq(left, right Expression) *BinaryExpr    { return NewBinaryExpr(left, OpEqual, right) }
func NotEq(left, right Expression) *BinaryExpr { return NewBinaryExpr(left, OpNotEqual, right) }
func Lt(left, right Expression) *BinaryExpr    { return NewBinaryExpr(left, OpLessThan, right) }
func Lte(left, right Expression) *BinaryExpr   { return NewBinaryExpr(left, OpLessThanOrEqual, right) }
func Gt(left, right Expression) *BinaryExpr    { return NewBinaryExpr(left, OpGreaterThan, right) }
func Gte(left, right Expression) *BinaryExpr {
	return NewBinaryExpr(left, OpGreaterThanOrEqual, right)
}

func Like(left Expression, pattern string) *BinaryExpr {
	return NewBinaryExpr(left, OpLike, Val(pattern))
}

func In(left Expression, values ...any) *BinaryExpr {
	return NewBinaryExpr(left, OpIn, NewArray(values))
}

func NotIn(left Expression, values ...any) *BinaryExpr {
	return NewBinaryExpr(left, OpNotIn, NewArray(values))
}

func IsNull(expr Expression) *UnaryExpr    { return NewUnaryExpr(expr, OpIsNull, false) }
func IsNotNull(expr Expression) *UnaryExpr { return NewUnaryExpr(expr, OpIsNotNull, false) }
func Not(cond Condition) *UnaryExpr        { return NewUnaryExpr(cond, OpNot, true) }

// And combines left and right; the result is left-associative when chained:
// And(And(a, b), c).
func And(left, right Condition) *BinaryExpr {
	return NewBinaryExpr(left, OpAnd, right)
}

func Or(left, right Condition) *BinaryExpr {
	return NewBinaryExpr(left, OpOr, right)
}

// ColumnEq is the common "t.c = value" predicate.
func ColumnEq(column string, value any) *BinaryExpr {
	return Eq(Col(column), Val(value))
}
