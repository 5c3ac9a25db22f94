package ast

import (
	"hash/fnv"
	"strconv"

	"github.com/Konsultn-Engineering/stagesql/utils"
)

// SelectStmt is a built SELECT statement. Statements handed out by the query
// builder are detached copies; changing one never affects the builder or
// other snapshots.
type SelectStmt struct {
	Top     *int
	Columns []Expression
	From    []*Table
	Joins   []*JoinClause
	Where   Condition
	OrderBy []*OrderByField
	Limit   *LimitClause
}

func (s *SelectStmt) Type() NodeType         { return NodeSelect }
func (s *SelectStmt) Accept(v Visitor) error { return v.VisitSelect(s) }
func (s *SelectStmt) Fingerprint() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("select:"))
	if s.Top != nil {
		_, _ = h.Write([]byte("top:" + strconv.Itoa(*s.Top)))
	}
	for _, col := range s.Columns {
		_, _ = h.Write(utils.U64ToBytes(col.Fingerprint()))
	}
	_, _ = h.Write([]byte("from:"))
	for _, t := range s.From {
		_, _ = h.Write(utils.U64ToBytes(t.Fingerprint()))
	}
	for _, j := range s.Joins {
		_, _ = h.Write(utils.U64ToBytes(j.Fingerprint()))
	}
	if s.Where != nil {
		_, _ = h.Write([]byte("where:"))
		_, _ = h.Write(utils.U64ToBytes(s.Where.Fingerprint()))
	}
	for _, o := range s.OrderBy {
		_, _ = h.Write(utils.U64ToBytes(o.Fingerprint()))
	}
	if s.Limit != nil {
		_, _ = h.Write(utils.U64ToBytes(s.Limit.Fingerprint()))
	}
	return h.Sum64()
}

// HasJoins reports whether s joins any table beyond its FROM list.
func (s *SelectStmt) HasJoins() bool { return len(s.Joins) > 0 }

// Clone returns a deep copy of s.
func (s *SelectStmt) Clone() *SelectStmt {
	if s == nil {
		return nil
	}
	c := &SelectStmt{
		Top:   cloneInt(s.Top),
		Where: Clone(s.Where),
	}
	if s.Columns != nil {
		c.Columns = make([]Expression, len(s.Columns))
		for i, col := range s.Columns {
			c.Columns[i] = Clone(col)
		}
	}
	if s.From != nil {
		c.From = make([]*Table, len(s.From))
		for i, t := range s.From {
			c.From[i] = Clone(t)
		}
	}
	if s.Joins != nil {
		c.Joins = make([]*JoinClause, len(s.Joins))
		for i, j := range s.Joins {
			c.Joins[i] = Clone(j)
		}
	}
	if s.OrderBy != nil {
		c.OrderBy = make([]*OrderByField, len(s.OrderBy))
		for i, o := range s.OrderBy {
			c.OrderBy[i] = Clone(o)
		}
	}
	if s.Limit != nil {
		c.Limit = Clone(s.Limit)
	}
	return c
}
