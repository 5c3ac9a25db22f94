package ast

// Comparison operators
const (
	OpEqual              = "="
	OpNotEqual           = "<>"
	OpLessThan           = "<"
	OpLessThanOrEqual    = "<="
	OpGreaterThan        = ">"
	OpGreaterThanOrEqual = ">="
)

// Logical Operators
const (
	OpAnd = "AND"
	OpOr  = "OR"
	OpNot = "NOT"
)

// Pattern Matching
const (
	OpLike    = "LIKE"
	OpNotLike = "NOT LIKE"
)

// Set Operations
const (
	OpIn    = "IN"
	OpNotIn = "NOT IN"
)

// Null Operations
const (
	OpIsNull    = "IS NULL"
	OpIsNotNull = "IS NOT NULL"
)
