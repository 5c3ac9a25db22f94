package ast

// Clone deep-copies n. Node types defined outside this package are returned
// as-is.
func Clone[T Node](n T) T {
	if any(n) == nil {
		return n
	}
	return cloneNode(n).(T)
}

func cloneNode(template Node) Node {
	switch n := template.(type) {
	case *Column:
		if n == nil {
			return n
		}
		cp := *n
		return &cp
	case *Table:
		if n == nil {
			return n
		}
		cp := *n
		return &cp
	case *Raw:
		if n == nil {
			return n
		}
		return &Raw{SQL: n.SQL}
	case *Value:
		if n == nil {
			return n
		}
		return &Value{Val: n.Val, ValueType: n.ValueType}
	case *Array:
		if n == nil {
			return n
		}
		return &Array{Values: append([]Value(nil), n.Values...)}
	case *Function:
		if n == nil {
			return n
		}
		f := &Function{Name: n.Name}
		if n.Args != nil {
			f.Args = make([]Expression, len(n.Args))
			for i, arg := range n.Args {
				f.Args[i] = Clone(arg)
			}
		}
		return f
	case *GroupedExpr:
		if n == nil {
			return n
		}
		return &GroupedExpr{Expr: Clone(n.Expr)}
	case *BinaryExpr:
		if n == nil {
			return n
		}
		return &BinaryExpr{
			Left:     Clone(n.Left),
			Operator: n.Operator,
			Right:    Clone(n.Right),
		}
	case *UnaryExpr:
		if n == nil {
			return n
		}
		return &UnaryExpr{
			Operator: n.Operator,
			Operand:  Clone(n.Operand),
			IsPrefix: n.IsPrefix,
		}
	case *JoinClause:
		if n == nil {
			return n
		}
		j := &JoinClause{JoinType: n.JoinType, Table: Clone(n.Table)}
		if n.Pairs != nil {
			j.Pairs = make([]ColumnPair, len(n.Pairs))
			for i, p := range n.Pairs {
				j.Pairs[i] = ColumnPair{From: Clone(p.From), To: Clone(p.To)}
			}
		}
		return j
	case *OrderByField:
		if n == nil {
			return n
		}
		return &OrderByField{Expr: Clone(n.Expr), Ordinal: n.Ordinal, Direction: n.Direction}
	case *LimitClause:
		if n == nil {
			return n
		}
		return &LimitClause{Count: cloneInt(n.Count), Offset: cloneInt(n.Offset)}
	case *SelectStmt:
		return n.Clone()
	default:
		return template
	}
}

func cloneInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
