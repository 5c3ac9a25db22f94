package query

import "github.com/Konsultn-Engineering/stagesql/ast"

// JoinStage is an open join clause waiting for its first column pair.
type JoinStage struct {
	s *selectState
}

// OnStage holds the source column of a pair and waits for Equals.
type OnStage struct {
	s *selectState
}

// JoinConditionStage follows a completed pair. And adds another pair to the
// same clause; everything else moves on.
type JoinConditionStage struct {
	s *selectState
}

func join(st *selectState, name string, joinType ast.JoinType, table *ast.Table) JoinStage {
	s := use(st, name)
	s.openJoin(name, joinType, table)
	return JoinStage{s: s}
}

// On starts a column pair. An unqualified column is taken from the joined
// table.
func (j JoinStage) On(col *ast.Column) OnStage {
	s := use(j.s, "On")
	s.beginPair(opOn, "On", col)
	return OnStage{s: s}
}

// Equals completes the pair with col, used as written.
func (o OnStage) Equals(col *ast.Column) JoinConditionStage {
	s := use(o.s, "Equals")
	s.closePair("Equals", col)
	return JoinConditionStage{s: s}
}

// And starts another pair on the current join clause, bound like On.
func (c JoinConditionStage) And(col *ast.Column) OnStage {
	s := use(c.s, "And")
	s.beginPair(opJoinAnd, "And", col)
	return OnStage{s: s}
}

// Join opens the next inner join on table.
func (c JoinConditionStage) Join(table *ast.Table) JoinStage {
	return join(c.s, "Join", ast.JoinInner, table)
}

// LeftOuterJoin opens the next left outer join on table.
func (c JoinConditionStage) LeftOuterJoin(table *ast.Table) JoinStage {
	return join(c.s, "LeftOuterJoin", ast.JoinLeft, table)
}

// Where sets the WHERE condition.
func (c JoinConditionStage) Where(cond ast.Condition) WhereStage {
	return where(c.s, cond)
}

// OrderBy appends fields to the ORDER BY list.
func (c JoinConditionStage) OrderBy(fields ...*ast.OrderByField) OrderedStage {
	return orderBy(c.s, "OrderBy", fields)
}

// OrderByName orders by an output name, usually a select alias.
func (c JoinConditionStage) OrderByName(name string) OrderedStage {
	return orderByName(c.s, name)
}

// OrderByColumns orders by each column with no explicit direction.
func (c JoinConditionStage) OrderByColumns(cols ...*ast.Column) OrderedStage {
	return orderByColumns(c.s, cols)
}

// OrderByIndex orders by 1-based positions in the select list.
func (c JoinConditionStage) OrderByIndex(positions ...int) OrderedStage {
	return orderByIndex(c.s, positions)
}

// LimitOffset sets both LIMIT and OFFSET.
func (c JoinConditionStage) LimitOffset(limit, offset int) JoinConditionStage {
	return JoinConditionStage{s: limits(c.s, "LimitOffset", &limit, &offset)}
}

// Limit sets LIMIT, replacing any earlier value.
func (c JoinConditionStage) Limit(limit int) JoinConditionStage {
	return JoinConditionStage{s: limits(c.s, "Limit", &limit, nil)}
}

// Offset sets OFFSET, replacing any earlier value.
func (c JoinConditionStage) Offset(offset int) JoinConditionStage {
	return JoinConditionStage{s: limits(c.s, "Offset", nil, &offset)}
}

// Build returns a detached snapshot of the statement or the latched error.
func (c JoinConditionStage) Build() (*ast.SelectStmt, error) {
	return use(c.s, "Build").build("Build")
}

// Err reports the error latched on the chain, if any.
func (c JoinConditionStage) Err() error { return errOf(c.s) }

// Clone returns an independent copy of the chain for branching.
func (c JoinConditionStage) Clone() JoinConditionStage {
	return JoinConditionStage{s: use(c.s, "Clone").clone("Clone")}
}

// Err reports the error latched on the chain, if any.
func (j JoinStage) Err() error { return errOf(j.s) }
func (o OnStage) Err() error   { return errOf(o.s) }
