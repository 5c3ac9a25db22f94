package ast

// GroupedExpr forces parentheses around Expr when rendered.
type GroupedExpr struct {
	Expr Expression
}

func Group(expr Expression) *GroupedExpr {
	return &GroupedExpr{Expr: expr}
}

func (g *GroupedExpr) Type() NodeType {
	return NodeGroupedExpr
}

func (g *GroupedExpr) Accept(v Visitor) error {
	return v.VisitGroupedExpr(g)
}

func (g *GroupedExpr) Fingerprint() uint64 {
	if g.Expr == nil {
		return 0
	}
	return g.Expr.Fingerprint() ^ 0x67726f7570
}

func (*GroupedExpr) expressionNode() {}
func (*GroupedExpr) conditionNode()  {}
