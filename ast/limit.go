package ast

import (
	"hash/fnv"
	"strconv"
)

// LimitClause holds the row limit and offset; either may be nil.
type LimitClause struct {
	Count  *int
	Offset *int
}

func NewLimitClause(count, offset *int) *LimitClause {
	return &LimitClause{Count: count, Offset: offset}
}

func (l *LimitClause) Type() NodeType         { return NodeLimit }
func (l *LimitClause) Accept(v Visitor) error { return v.VisitLimitClause(l) }
func (l *LimitClause) Fingerprint() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("limit:"))
	if l.Count != nil {
		_, _ = h.Write([]byte(strconv.Itoa(*l.Count)))
	}
	_, _ = h.Write([]byte(":"))
	if l.Offset != nil {
		_, _ = h.Write([]byte(strconv.Itoa(*l.Offset)))
	}
	return h.Sum64()
}
