package ast

import (
	"hash/fnv"

	"github.com/Konsultn-Engineering/stagesql/utils"
)

// Raw is a bare SQL fragment rendered verbatim, e.g. Expr("id") or
// Expr("price * qty"). It carries no table reference.
type Raw struct {
	SQL string
}

func Expr(sql string) *Raw {
	return &Raw{SQL: sql}
}

// RawCondition is Expr typed as a predicate, e.g. RawCondition("deleted_at IS NULL").
func RawCondition(sql string) Condition {
	return &Raw{SQL: sql}
}

// Exprs is shorthand for a select list of bare expressions.
func Exprs(sqls ...string) []Expression {
	out := make([]Expression, len(sqls))
	for i, s := range sqls {
		out[i] = Expr(s)
	}
	return out
}

func (r *Raw) Type() NodeType         { return NodeRaw }
func (r *Raw) Accept(v Visitor) error { return v.VisitRaw(r) }
func (r *Raw) Fingerprint() uint64    { return utils.FingerprintString("raw:" + r.SQL) }

func (*Raw) expressionNode() {}
func (*Raw) conditionNode()  {}

type BinaryExpr struct {
	Left     Expression
	Operator string
	Right    Expression
}

func NewBinaryExpr(left Expression, op string, right Expression) *BinaryExpr {
	return &BinaryExpr{Left: left, Operator: op, Right: right}
}

func (b *BinaryExpr) Type() NodeType         { return NodeBinaryExpr }
func (b *BinaryExpr) Accept(v Visitor) error { return v.VisitBinaryExpr(b) }
func (b *BinaryExpr) Fingerprint() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("bin:" + b.Operator))
	if b.Left != nil {
		_, _ = h.Write(utils.U64ToBytes(b.Left.Fingerprint()))
	}
	if b.Right != nil {
		_, _ = h.Write(utils.U64ToBytes(b.Right.Fingerprint()))
	}
	return h.Sum64()
}

// IsLogical reports whether b combines two conditions with AND or OR.
func (b *BinaryExpr) IsLogical() bool {
	return b.Operator == OpAnd || b.Operator == OpOr
}

func (*BinaryExpr) expressionNode() {}
func (*BinaryExpr) conditionNode()  {}

type UnaryExpr struct {
	Operator string
	Operand  Expression
	IsPrefix bool
}

func NewUnaryExpr(operand Expression, op string, prefix bool) *UnaryExpr {
	return &UnaryExpr{Operator: op, Operand: operand, IsPrefix: prefix}
}

func (u *UnaryExpr) Type() NodeType         { return NodeUnaryExpr }
func (u *UnaryExpr) Accept(v Visitor) error { return v.VisitUnaryExpr(u) }
func (u *UnaryExpr) Fingerprint() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("unary:" + u.Operator))
	if u.IsPrefix {
		_, _ = h.Write([]byte{1})
	}
	if u.Operand != nil {
		_, _ = h.Write(utils.U64ToBytes(u.Operand.Fingerprint()))
	}
	return h.Sum64()
}

func (*UnaryExpr) expressionNode() {}
func (*UnaryExpr) conditionNode()  {}
