package visitor

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/Konsultn-Engineering/stagesql/ast"
	"github.com/Konsultn-Engineering/stagesql/dialect"
)

var visitorPool = sync.Pool{
	New: func() any {
		return &SQLVisitor{
			args: make([]any, 0, 8),
		}
	},
}

// SQLVisitor renders a statement tree into SQL text and bind arguments for
// one dialect. A visitor is not safe for concurrent use; take one per render
// from NewSQLVisitor and hand it back with Release.
type SQLVisitor struct {
	sb      strings.Builder
	args    []any
	dialect dialect.Dialect
	inline  bool

	// set while rendering the select list, the only place aliases are written
	projecting bool
	ordered    bool
}

func NewSQLVisitor(d dialect.Dialect) *SQLVisitor {
	v := visitorPool.Get().(*SQLVisitor)
	v.dialect = d
	v.Reset()
	return v
}

// InlineValues makes values render as literals instead of placeholders.
func (v *SQLVisitor) InlineValues(inline bool) *SQLVisitor {
	v.inline = inline
	return v
}

func (v *SQLVisitor) Release() {
	v.dialect = nil
	v.inline = false
	v.Reset()
	visitorPool.Put(v)
}

func (v *SQLVisitor) Reset() {
	v.sb.Reset()
	v.args = v.args[:0]
	v.projecting = false
	v.ordered = false
}

// Render writes root and returns the SQL with a copy of its arguments.
func (v *SQLVisitor) Render(root ast.Node) (string, []any, error) {
	if root == nil {
		return "", nil, fmt.Errorf("visitor: nothing to render")
	}
	v.Reset()

	if err := root.Accept(v); err != nil {
		return "", nil, err
	}

	var args []any
	if len(v.args) > 0 {
		args = make([]any, len(v.args))
		copy(args, v.args)
	}
	return v.sb.String(), args, nil
}

func (v *SQLVisitor) arg(a any) {
	v.args = append(v.args, a)
}

func (v *SQLVisitor) VisitSelect(s *ast.SelectStmt) error {
	limit, offset := effectiveLimit(s)
	useTop := limit != nil && offset == nil && v.dialect.SupportsTop()

	v.sb.WriteString("SELECT ")
	if useTop {
		v.sb.WriteString("TOP ")
		v.sb.WriteString(strconv.Itoa(*limit))
		v.sb.WriteByte(' ')
	}

	v.projecting = true
	for i, col := range s.Columns {
		if i > 0 {
			v.sb.WriteString(", ")
		}
		if err := col.Accept(v); err != nil {
			return err
		}
	}
	v.projecting = false

	if len(s.From) > 0 {
		v.sb.WriteString(" FROM ")
		for i, t := range s.From {
			if i > 0 {
				v.sb.WriteString(", ")
			}
			if err := t.Accept(v); err != nil {
				return err
			}
		}
	}

	for _, join := range s.Joins {
		if err := join.Accept(v); err != nil {
			return err
		}
	}

	if s.Where != nil {
		v.sb.WriteString(" WHERE ")
		if err := s.Where.Accept(v); err != nil {
			return err
		}
	}

	if len(s.OrderBy) > 0 {
		v.sb.WriteString(" ORDER BY ")
		for i, field := range s.OrderBy {
			if i > 0 {
				v.sb.WriteString(", ")
			}
			if err := field.Accept(v); err != nil {
				return err
			}
		}
	}

	v.ordered = len(s.OrderBy) > 0
	if !useTop && (limit != nil || offset != nil) {
		return ast.NewLimitClause(limit, offset).Accept(v)
	}
	return nil
}

// effectiveLimit folds TOP into the row limit; the smaller bound wins.
func effectiveLimit(s *ast.SelectStmt) (limit, offset *int) {
	if s.Limit != nil {
		limit, offset = s.Limit.Count, s.Limit.Offset
	}
	if s.Top != nil && (limit == nil || *s.Top < *limit) {
		limit = s.Top
	}
	return limit, offset
}

func (v *SQLVisitor) VisitColumn(c *ast.Column) error {
	if c.Table != "" {
		v.writeQualified(c.Table)
		v.sb.WriteByte('.')
	}
	if c.Name == "*" {
		v.sb.WriteByte('*')
	} else {
		v.sb.WriteString(v.dialect.QuoteIdentifier(c.Name))
	}

	if v.projecting && c.Alias != "" && c.Alias != c.Name {
		v.sb.WriteString(" AS ")
		v.sb.WriteString(v.dialect.QuoteIdentifier(c.Alias))
	}
	return nil
}

// writeQualified quotes each dot-separated part of a table qualifier.
func (v *SQLVisitor) writeQualified(name string) {
	for i, part := range strings.Split(name, ".") {
		if i > 0 {
			v.sb.WriteByte('.')
		}
		v.sb.WriteString(v.dialect.QuoteIdentifier(part))
	}
}

func (v *SQLVisitor) VisitTable(t *ast.Table) error {
	if t.Schema != "" {
		v.sb.WriteString(v.dialect.QuoteIdentifier(t.Schema))
		v.sb.WriteByte('.')
	}
	v.sb.WriteString(v.dialect.QuoteIdentifier(t.Name))

	if t.Alias != "" && t.Alias != t.Name {
		v.sb.WriteString(" AS ")
		v.sb.WriteString(v.dialect.QuoteIdentifier(t.Alias))
	}
	return nil
}

func (v *SQLVisitor) VisitRaw(r *ast.Raw) error {
	v.sb.WriteString(r.SQL)
	return nil
}

func (v *SQLVisitor) VisitValue(val *ast.Value) error {
	v.writeValue(val.Val)
	return nil
}

func (v *SQLVisitor) writeValue(val any) {
	if v.inline {
		v.sb.WriteString(v.dialect.RenderValue(val))
		return
	}
	v.arg(val)
	v.sb.WriteString(v.dialect.Placeholder(len(v.args)))
}

func (v *SQLVisitor) VisitArray(a *ast.Array) error {
	v.sb.WriteByte('(')
	if len(a.Values) == 0 {
		// IN () is a syntax error everywhere; (NULL) matches nothing
		v.sb.WriteString("NULL")
	}
	for i, val := range a.Values {
		if i > 0 {
			v.sb.WriteString(", ")
		}
		v.writeValue(val.Val)
	}
	v.sb.WriteByte(')')
	return nil
}

func (v *SQLVisitor) VisitFunction(f *ast.Function) error {
	v.sb.WriteString(f.Name)
	v.sb.WriteByte('(')
	for i, arg := range f.Args {
		if i > 0 {
			v.sb.WriteString(", ")
		}
		if err := arg.Accept(v); err != nil {
			return err
		}
	}
	v.sb.WriteByte(')')
	return nil
}

func (v *SQLVisitor) VisitGroupedExpr(g *ast.GroupedExpr) error {
	v.sb.WriteByte('(')
	err := g.Expr.Accept(v)
	v.sb.WriteByte(')')
	return err
}

func (v *SQLVisitor) VisitBinaryExpr(expr *ast.BinaryExpr) error {
	if expr.Left == nil || expr.Right == nil {
		return fmt.Errorf("visitor: %s expression is missing an operand", expr.Operator)
	}
	if err := v.operand(expr, expr.Left); err != nil {
		return err
	}

	v.sb.WriteByte(' ')
	v.sb.WriteString(expr.Operator)
	v.sb.WriteByte(' ')

	return v.operand(expr, expr.Right)
}

// operand writes child, parenthesised when it binds looser than parent.
func (v *SQLVisitor) operand(parent *ast.BinaryExpr, child ast.Expression) error {
	if !needsParens(parent, child) {
		return child.Accept(v)
	}
	v.sb.WriteByte('(')
	err := child.Accept(v)
	v.sb.WriteByte(')')
	return err
}

// needsParens is true for OR under AND and for any AND/OR under a comparison.
func needsParens(parent *ast.BinaryExpr, child ast.Expression) bool {
	b, ok := child.(*ast.BinaryExpr)
	if !ok || !b.IsLogical() {
		return false
	}
	if !parent.IsLogical() {
		return true
	}
	return parent.Operator == ast.OpAnd && b.Operator == ast.OpOr
}

func (v *SQLVisitor) VisitUnaryExpr(expr *ast.UnaryExpr) error {
	if expr.Operand == nil {
		return fmt.Errorf("visitor: %s expression is missing its operand", expr.Operator)
	}

	if expr.IsPrefix {
		v.sb.WriteString(expr.Operator)
		v.sb.WriteByte(' ')
		if b, ok := expr.Operand.(*ast.BinaryExpr); ok {
			v.sb.WriteByte('(')
			err := b.Accept(v)
			v.sb.WriteByte(')')
			return err
		}
		return expr.Operand.Accept(v)
	}

	if err := expr.Operand.Accept(v); err != nil {
		return err
	}
	v.sb.WriteByte(' ')
	v.sb.WriteString(expr.Operator)
	return nil
}

func (v *SQLVisitor) VisitJoinClause(clause *ast.JoinClause) error {
	if clause == nil || clause.Table == nil {
		return nil
	}

	// JOIN <table>
	v.sb.WriteByte(' ')
	v.sb.WriteString(clause.JoinType.String())
	v.sb.WriteByte(' ')
	if err := clause.Table.Accept(v); err != nil {
		return err
	}

	// ON <a> = <b> [AND <c> = <d> ...]
	for i, pair := range clause.Pairs {
		if i == 0 {
			v.sb.WriteString(" ON ")
		} else {
			v.sb.WriteString(" AND ")
		}
		if err := pair.From.Accept(v); err != nil {
			return err
		}
		v.sb.WriteString(" = ")
		if err := pair.To.Accept(v); err != nil {
			return err
		}
	}
	return nil
}

func (v *SQLVisitor) VisitOrderByField(field *ast.OrderByField) error {
	if field.IsOrdinal() {
		v.sb.WriteString(strconv.Itoa(field.Ordinal))
	} else if err := field.Expr.Accept(v); err != nil {
		return err
	}

	if dir := field.Direction.String(); dir != "" {
		v.sb.WriteByte(' ')
		v.sb.WriteString(dir)
	}
	return nil
}

func (v *SQLVisitor) VisitLimitClause(clause *ast.LimitClause) error {
	v.sb.WriteString(v.dialect.LimitOffset(clause.Count, clause.Offset, v.ordered))
	return nil
}

var _ ast.Visitor = (*SQLVisitor)(nil)
