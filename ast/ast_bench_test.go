package ast

import (
	"testing"
)

func benchStmt() *SelectStmt {
	users := NewTable("users").As("u")
	return &SelectStmt{
		Columns: []Expression{
			users.Column("id"),
			users.Column("first_name"),
			users.Column("email"),
			users.Column("created_at"),
			users.Column("updated_at"),
		},
		From:    []*Table{users},
		Where:   And(Eq(users.Column("active"), Val(true)), Gt(users.Column("likes"), Val(10))),
		OrderBy: []*OrderByField{Desc(users.Column("created_at"))},
		Limit:   &LimitClause{Count: ptr(1)},
	}
}

func BenchmarkSelectStmtFingerprint(b *testing.B) {
	stmt := benchStmt()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = stmt.Fingerprint()
	}
	b.ReportAllocs()
}

func BenchmarkSelectStmtClone(b *testing.B) {
	stmt := benchStmt()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = stmt.Clone()
	}
	b.ReportAllocs()
}

func ptr[T any](v T) *T { return &v }
