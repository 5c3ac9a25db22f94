package query

import "github.com/Konsultn-Engineering/stagesql/ast"

// OrderedStage follows ORDER BY. Further OrderBy calls append.
type OrderedStage struct {
	s *selectState
}

func orderBy(st *selectState, name string, fields []*ast.OrderByField) OrderedStage {
	s := use(st, name)
	s.addOrder(name, fields)
	return OrderedStage{s: s}
}

// orderByName sorts on an unqualified name in the default direction.
func orderByName(st *selectState, name string) OrderedStage {
	if blank(name) {
		s := use(st, "OrderByName")
		if s.enter(opOrderBy, "OrderByName") {
			s.fail(argError("OrderByName", "name", "must not be blank"))
		}
		return OrderedStage{s: s}
	}
	return orderBy(st, "OrderByName", []*ast.OrderByField{ast.OrderByExpr(&ast.Column{Name: name})})
}

func orderByColumns(st *selectState, cols []*ast.Column) OrderedStage {
	fields := make([]*ast.OrderByField, len(cols))
	for i, col := range cols {
		if col == nil {
			continue // left nil for addOrder to reject
		}
		fields[i] = ast.OrderByExpr(col)
	}
	return orderBy(st, "OrderByColumns", fields)
}

// orderByIndex sorts on 1-based select list positions. The upper bound is
// checked by Build.
func orderByIndex(st *selectState, positions []int) OrderedStage {
	fields := make([]*ast.OrderByField, len(positions))
	for i, p := range positions {
		fields[i] = ast.OrderByOrdinal(p)
	}
	return orderBy(st, "OrderByIndex", fields)
}

// OrderBy appends fields to the ORDER BY list.
func (o OrderedStage) OrderBy(fields ...*ast.OrderByField) OrderedStage {
	return orderBy(o.s, "OrderBy", fields)
}

// OrderByName orders by an output name, usually a select alias.
func (o OrderedStage) OrderByName(name string) OrderedStage {
	return orderByName(o.s, name)
}

// OrderByColumns orders by each column with no explicit direction.
func (o OrderedStage) OrderByColumns(cols ...*ast.Column) OrderedStage {
	return orderByColumns(o.s, cols)
}

// OrderByIndex orders by 1-based positions in the select list.
func (o OrderedStage) OrderByIndex(positions ...int) OrderedStage {
	return orderByIndex(o.s, positions)
}

func (o OrderedStage) LimitOffset(limit, offset int) OrderedStage {
	return OrderedStage{s: limits(o.s, "LimitOffset", &limit, &offset)}
}

func (o OrderedStage) Limit(limit int) OrderedStage {
	return OrderedStage{s: limits(o.s, "Limit", &limit, nil)}
}

func (o OrderedStage) Offset(offset int) OrderedStage {
	return OrderedStage{s: limits(o.s, "Offset", nil, &offset)}
}

func (o OrderedStage) Build() (*ast.SelectStmt, error) {
	return use(o.s, "Build").build("Build")
}

func (o OrderedStage) Err() error { return errOf(o.s) }

func (o OrderedStage) Clone() OrderedStage {
	return OrderedStage{s: use(o.s, "Clone").clone("Clone")}
}
