package query

import "github.com/Konsultn-Engineering/stagesql/ast"

// FromStage is reached once at least one table is declared. Every clause
// after FROM is still available.
type FromStage struct {
	s *selectState
}

// Select appends more items to the select list.
func (f FromStage) Select(items ...ast.Expression) FromStage {
	s := use(f.s, "Select")
	s.addColumns("Select", items)
	return FromStage{s: s}
}

// From appends more tables to the FROM list.
func (f FromStage) From(tables ...*ast.Table) FromStage {
	s := use(f.s, "From")
	s.addTables("From", tables)
	return FromStage{s: s}
}

// Join opens an inner join on table. The clause needs at least one
// On/Equals pair before the statement can continue.
func (f FromStage) Join(table *ast.Table) JoinStage {
	return join(f.s, "Join", ast.JoinInner, table)
}

// LeftOuterJoin is Join with LEFT OUTER semantics.
func (f FromStage) LeftOuterJoin(table *ast.Table) JoinStage {
	return join(f.s, "LeftOuterJoin", ast.JoinLeft, table)
}

// Where sets the WHERE condition.
func (f FromStage) Where(cond ast.Condition) WhereStage {
	return where(f.s, cond)
}

// OrderBy appends fields to the ORDER BY list.
func (f FromStage) OrderBy(fields ...*ast.OrderByField) OrderedStage {
	return orderBy(f.s, "OrderBy", fields)
}

// OrderByName orders by an output name, usually a select alias.
func (f FromStage) OrderByName(name string) OrderedStage {
	return orderByName(f.s, name)
}

// OrderByColumns orders by each column with no explicit direction.
func (f FromStage) OrderByColumns(cols ...*ast.Column) OrderedStage {
	return orderByColumns(f.s, cols)
}

// OrderByIndex orders by 1-based positions in the select list.
func (f FromStage) OrderByIndex(positions ...int) OrderedStage {
	return orderByIndex(f.s, positions)
}

// LimitOffset sets both LIMIT and OFFSET.
func (f FromStage) LimitOffset(limit, offset int) FromStage {
	return FromStage{s: limits(f.s, "LimitOffset", &limit, &offset)}
}

// Limit sets LIMIT, replacing any earlier value.
func (f FromStage) Limit(limit int) FromStage {
	return FromStage{s: limits(f.s, "Limit", &limit, nil)}
}

// Offset sets OFFSET, replacing any earlier value.
func (f FromStage) Offset(offset int) FromStage {
	return FromStage{s: limits(f.s, "Offset", nil, &offset)}
}

// Build returns a detached snapshot of the statement or the latched error.
func (f FromStage) Build() (*ast.SelectStmt, error) {
	return use(f.s, "Build").build("Build")
}

// Err reports the error latched on the chain, if any.
func (f FromStage) Err() error { return errOf(f.s) }

// Clone returns an independent copy of the chain for branching.
func (f FromStage) Clone() FromStage {
	return FromStage{s: use(f.s, "Clone").clone("Clone")}
}
