package ast

type Visitor interface {
	VisitSelect(*SelectStmt) error

	VisitColumn(*Column) error
	VisitTable(*Table) error
	VisitRaw(*Raw) error
	VisitValue(*Value) error
	VisitArray(*Array) error
	VisitFunction(*Function) error
	VisitGroupedExpr(*GroupedExpr) error
	VisitBinaryExpr(*BinaryExpr) error
	VisitUnaryExpr(*UnaryExpr) error

	VisitJoinClause(*JoinClause) error
	VisitOrderByField(*OrderByField) error
	VisitLimitClause(*LimitClause) error
}
