package ast

import (
	"hash/fnv"
	"strconv"

	"github.com/Konsultn-Engineering/stagesql/utils"
)

type Direction int

const (
	// DirectionUnspecified leaves the direction to the database default (ascending).
	DirectionUnspecified Direction = iota
	DirectionAsc
	DirectionDesc
)

func (d Direction) String() string {
	switch d {
	case DirectionAsc:
		return "ASC"
	case DirectionDesc:
		return "DESC"
	default:
		return ""
	}
}

// OrderByField sorts on Expr, or on the 1-based select list position Ordinal
// when Expr is nil.
type OrderByField struct {
	Expr      Expression
	Ordinal   int
	Direction Direction
}

func OrderByExpr(expr Expression) *OrderByField {
	return &OrderByField{Expr: expr}
}

func OrderByOrdinal(position int) *OrderByField {
	return &OrderByField{Ordinal: position}
}

func Asc(expr Expression) *OrderByField {
	return &OrderByField{Expr: expr, Direction: DirectionAsc}
}

func Desc(expr Expression) *OrderByField {
	return &OrderByField{Expr: expr, Direction: DirectionDesc}
}

// WithDirection returns a copy of o sorted in direction d.
func (o *OrderByField) WithDirection(d Direction) *OrderByField {
	cp := *o
	cp.Direction = d
	return &cp
}

func (o *OrderByField) IsOrdinal() bool { return o.Expr == nil }

func (o *OrderByField) Type() NodeType         { return NodeOrderBy }
func (o *OrderByField) Accept(v Visitor) error { return v.VisitOrderByField(o) }
func (o *OrderByField) Fingerprint() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("order:" + strconv.Itoa(int(o.Direction)) + ":" + strconv.Itoa(o.Ordinal)))
	if o.Expr != nil {
		_, _ = h.Write(utils.U64ToBytes(o.Expr.Fingerprint()))
	}
	return h.Sum64()
}
