package query

import "github.com/Konsultn-Engineering/stagesql/ast"

// WhereStage holds the WHERE condition. And and Or wrap the existing tree as
// their left operand.
type WhereStage struct {
	s *selectState
}

func where(st *selectState, cond ast.Condition) WhereStage {
	s := use(st, "Where")
	s.setWhere("Where", cond)
	return WhereStage{s: s}
}

// And combines the current condition with cond using AND.
func (w WhereStage) And(cond ast.Condition) WhereStage {
	s := use(w.s, "And")
	s.combine("And", ast.OpAnd, cond)
	return WhereStage{s: s}
}

// Or combines the current condition with cond using OR.
func (w WhereStage) Or(cond ast.Condition) WhereStage {
	s := use(w.s, "Or")
	s.combine("Or", ast.OpOr, cond)
	return WhereStage{s: s}
}

// OrderBy appends fields to the ORDER BY list.
func (w WhereStage) OrderBy(fields ...*ast.OrderByField) OrderedStage {
	return orderBy(w.s, "OrderBy", fields)
}

// OrderByName orders by an output name, usually a select alias.
func (w WhereStage) OrderByName(name string) OrderedStage {
	return orderByName(w.s, name)
}

// OrderByColumns orders by each column with no explicit direction.
func (w WhereStage) OrderByColumns(cols ...*ast.Column) OrderedStage {
	return orderByColumns(w.s, cols)
}

// OrderByIndex orders by 1-based positions in the select list.
func (w WhereStage) OrderByIndex(positions ...int) OrderedStage {
	return orderByIndex(w.s, positions)
}

// LimitOffset sets both LIMIT and OFFSET.
func (w WhereStage) LimitOffset(limit, offset int) WhereStage {
	return WhereStage{s: limits(w.s, "LimitOffset", &limit, &offset)}
}

// Limit sets LIMIT, replacing any earlier value.
func (w WhereStage) Limit(limit int) WhereStage {
	return WhereStage{s: limits(w.s, "Limit", &limit, nil)}
}

// Offset sets OFFSET, replacing any earlier value.
func (w WhereStage) Offset(offset int) WhereStage {
	return WhereStage{s: limits(w.s, "Offset", nil, &offset)}
}

// Build returns a detached snapshot of the statement or the latched error.
func (w WhereStage) Build() (*ast.SelectStmt, error) {
	return use(w.s, "Build").build("Build")
}

// Err reports the error latched on the chain, if any.
func (w WhereStage) Err() error { return errOf(w.s) }

// Clone returns an independent copy of the chain for branching.
func (w WhereStage) Clone() WhereStage {
	return WhereStage{s: use(w.s, "Clone").clone("Clone")}
}
