// Package query builds SELECT statements through a chain of stage types.
// Each stage only offers the operations the grammar allows next:
//
//	SELECT [TOP n] items FROM tables [JOIN t ON a = b [AND c = d]...]...
//	    [WHERE cond [AND|OR cond]...] [ORDER BY fields] [LIMIT n] [OFFSET n]
//
// Stages share one accumulator. Argument errors are latched on the chain:
// the failing call changes nothing, later calls become no-ops, Err reports
// the error straight away and Build returns it.
package query

import "github.com/Konsultn-Engineering/stagesql/ast"

// TopStage is returned by Top and only offers Select.
type TopStage struct {
	s *selectState
}

// SelectStage is reached after the first Select and before any FROM.
type SelectStage struct {
	s *selectState
}

// Top starts a statement limited to the first count rows.
func Top(count int) TopStage {
	s := newState()
	if err := checkCount("Top", "count", count); err != nil {
		s.fail(err)
	} else {
		s.top = &count
	}
	return TopStage{s: s}
}

// Select starts a statement projecting items, in order. Plain names are
// passed as ast.Expr("name"), qualified columns as ast.Col("t.c").
func Select(items ...ast.Expression) SelectStage {
	s := newState()
	s.addColumns("Select", items)
	return SelectStage{s: s}
}

// Select starts the select list of a TOP statement.
func (t TopStage) Select(items ...ast.Expression) SelectStage {
	s := use(t.s, "Select")
	s.addColumns("Select", items)
	return SelectStage{s: s}
}

// Err reports the error latched on the chain, such as a negative count.
func (t TopStage) Err() error { return errOf(t.s) }

// Select appends more items to the select list.
func (st SelectStage) Select(items ...ast.Expression) SelectStage {
	s := use(st.s, "Select")
	s.addColumns("Select", items)
	return SelectStage{s: s}
}

// From appends tables to the FROM list.
func (st SelectStage) From(tables ...*ast.Table) FromStage {
	s := use(st.s, "From")
	s.addTables("From", tables)
	return FromStage{s: s}
}

// Build returns a detached snapshot of the statement or the latched error.
func (st SelectStage) Build() (*ast.SelectStmt, error) {
	return use(st.s, "Build").build("Build")
}

// Err reports the error latched on the chain, if any.
func (st SelectStage) Err() error { return errOf(st.s) }
