package ast

import (
	"hash/fnv"
	"strconv"

	"github.com/Konsultn-Engineering/stagesql/utils"
)

type JoinType int

const (
	JoinInner JoinType = iota
	JoinLeft
	JoinRight
	JoinFull
	JoinCross
)

func (t JoinType) String() string {
	switch t {
	case JoinLeft:
		return "LEFT OUTER JOIN"
	case JoinRight:
		return "RIGHT OUTER JOIN"
	case JoinFull:
		return "FULL OUTER JOIN"
	case JoinCross:
		return "CROSS JOIN"
	default:
		return "JOIN"
	}
}

// ColumnPair is one "From = To" equality inside a join's ON clause.
type ColumnPair struct {
	From Expression
	To   Expression
}

func (p ColumnPair) Fingerprint() uint64 {
	var from, to uint64
	if p.From != nil {
		from = p.From.Fingerprint()
	}
	if p.To != nil {
		to = p.To.Fingerprint()
	}
	return utils.Mix64(from, to)
}

// Condition returns the pair as an equality predicate.
func (p ColumnPair) Condition() *BinaryExpr {
	return Eq(p.From, p.To)
}

// JoinClause is one joined table plus the column pairs of its ON clause,
// combined with AND in declaration order.
type JoinClause struct {
	JoinType JoinType
	Table    *Table
	Pairs    []ColumnPair
}

func NewJoinClause(joinType JoinType, table *Table) *JoinClause {
	return &JoinClause{JoinType: joinType, Table: table}
}

func (j *JoinClause) Append(from, to Expression) {
	j.Pairs = append(j.Pairs, ColumnPair{From: from, To: to})
}

// Condition folds the pairs into a left-associative AND tree, nil when the
// clause has no pairs.
func (j *JoinClause) Condition() Condition {
	var cond Condition
	for _, p := range j.Pairs {
		if cond == nil {
			cond = p.Condition()
			continue
		}
		cond = And(cond, p.Condition())
	}
	return cond
}

func (j *JoinClause) Type() NodeType         { return NodeJoin }
func (j *JoinClause) Accept(v Visitor) error { return v.VisitJoinClause(j) }

func (j *JoinClause) Fingerprint() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("join:" + strconv.Itoa(int(j.JoinType))))
	fp := h.Sum64()

	if j.Table != nil {
		fp = utils.Mix64(fp, j.Table.Fingerprint())
	}
	// rolling fingerprint over the pairs, seeded so an empty chain differs from nil
	acc := uint64(0x9e3779b185ebca87)
	for _, p := range j.Pairs {
		acc = utils.Mix64(acc, p.Fingerprint())
	}
	return utils.Mix64(fp, acc)
}
