package query

import "github.com/Konsultn-Engineering/stagesql/ast"

// resolver walks clause expressions and fails on the first column whose
// table qualifier is not a declared FROM or JOIN table. Unqualified columns
// and raw fragments are not checked.
type resolver struct {
	declared map[string]struct{}
	clause   Clause
}

var _ ast.Visitor = (*resolver)(nil)

func newResolver(s *selectState) *resolver {
	r := &resolver{declared: make(map[string]struct{}, len(s.from)+len(s.joins))}
	for _, t := range s.from {
		r.declare(t)
	}
	for _, j := range s.joins {
		r.declare(j.Table)
	}
	return r
}

// declare registers the names a column may use to qualify itself against t.
func (r *resolver) declare(t *ast.Table) {
	r.declared[t.ReferenceName()] = struct{}{}
	if t.Alias == "" && t.Schema != "" {
		r.declared[t.Schema+"."+t.Name] = struct{}{}
	}
}

func (r *resolver) in(clause Clause, n ast.Node) error {
	if n == nil {
		return nil
	}
	r.clause = clause
	return n.Accept(r)
}

// resolve checks every clause in statement order.
func (s *selectState) resolve() error {
	r := newResolver(s)

	for _, col := range s.columns {
		if err := r.in(ClauseSelect, col); err != nil {
			return err
		}
	}
	for _, j := range s.joins {
		if err := r.in(ClauseJoin, j); err != nil {
			return err
		}
	}
	if s.where != nil {
		if err := r.in(ClauseWhere, s.where); err != nil {
			return err
		}
	}
	for _, o := range s.orderBy {
		if o.IsOrdinal() && o.Ordinal > len(s.columns) {
			return &ReferenceError{Clause: ClauseOrderBy, Ordinal: o.Ordinal}
		}
		if err := r.in(ClauseOrderBy, o); err != nil {
			return err
		}
	}
	return nil
}

func (r *resolver) VisitColumn(c *ast.Column) error {
	if !c.Qualified() {
		return nil
	}
	if _, ok := r.declared[c.Table]; ok {
		return nil
	}
	return &ReferenceError{Clause: r.clause, Reference: c.Ref(), Table: c.Table}
}

func (r *resolver) VisitFunction(f *ast.Function) error {
	for _, arg := range f.Args {
		if err := r.visit(arg); err != nil {
			return err
		}
	}
	return nil
}

func (r *resolver) VisitGroupedExpr(g *ast.GroupedExpr) error {
	return r.visit(g.Expr)
}

func (r *resolver) VisitBinaryExpr(b *ast.BinaryExpr) error {
	if err := r.visit(b.Left); err != nil {
		return err
	}
	return r.visit(b.Right)
}

func (r *resolver) VisitUnaryExpr(u *ast.UnaryExpr) error {
	return r.visit(u.Operand)
}

func (r *resolver) VisitJoinClause(j *ast.JoinClause) error {
	for _, p := range j.Pairs {
		if err := r.visit(p.From); err != nil {
			return err
		}
		if err := r.visit(p.To); err != nil {
			return err
		}
	}
	return nil
}

func (r *resolver) VisitOrderByField(o *ast.OrderByField) error {
	return r.visit(o.Expr)
}

func (r *resolver) visit(e ast.Expression) error {
	if isNil(e) {
		return nil
	}
	return e.Accept(r)
}

func (r *resolver) VisitSelect(*ast.SelectStmt) error       { return nil }
func (r *resolver) VisitTable(*ast.Table) error             { return nil }
func (r *resolver) VisitRaw(*ast.Raw) error                 { return nil }
func (r *resolver) VisitValue(*ast.Value) error             { return nil }
func (r *resolver) VisitArray(*ast.Array) error             { return nil }
func (r *resolver) VisitLimitClause(*ast.LimitClause) error { return nil }
