package query

import (
	"errors"
	"testing"

	"github.com/Konsultn-Engineering/stagesql/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectFromBuild(t *testing.T) {
	stmt, err := Select(ast.Expr("id")).From(ast.NewTable("person")).Build()
	require.NoError(t, err)

	assert.Equal(t, []ast.Expression{ast.Expr("id")}, stmt.Columns)
	assert.Equal(t, []*ast.Table{ast.NewTable("person")}, stmt.From)
	assert.Nil(t, stmt.Top)
	assert.Empty(t, stmt.Joins)
	assert.Nil(t, stmt.Where)
	assert.Empty(t, stmt.OrderBy)
	assert.Nil(t, stmt.Limit)
}

func TestFullChain(t *testing.T) {
	person := ast.NewTable("person")
	address := ast.NewTable("address")
	cond := ast.Eq(address.Column("city"), ast.Val("Berlin"))

	stmt, err := Select(person.Column("name")).
		From(person).
		Join(address).On(ast.Col("a")).Equals(ast.Col("b")).
		Where(cond).
		OrderByName("name").
		Limit(10).
		Build()
	require.NoError(t, err)

	require.Len(t, stmt.Joins, 1)
	assert.Equal(t, ast.JoinInner, stmt.Joins[0].JoinType)
	assert.Equal(t, []ast.ColumnPair{{From: ast.Col("address.a"), To: ast.Col("b")}}, stmt.Joins[0].Pairs)
	assert.Equal(t, cond, stmt.Where)
	require.Len(t, stmt.OrderBy, 1)
	assert.Equal(t, &ast.Column{Name: "name"}, stmt.OrderBy[0].Expr)
	assert.Equal(t, ast.DirectionUnspecified, stmt.OrderBy[0].Direction)
	require.NotNil(t, stmt.Limit)
	require.NotNil(t, stmt.Limit.Count)
	assert.Equal(t, 10, *stmt.Limit.Count)
	assert.Nil(t, stmt.Limit.Offset)
}

func TestTop(t *testing.T) {
	stmt, err := Top(5).Select(ast.Star()).From(ast.NewTable("person")).Build()
	require.NoError(t, err)
	require.NotNil(t, stmt.Top)
	assert.Equal(t, 5, *stmt.Top)

	stmt, err = Top(0).Select(ast.Star()).Build()
	require.NoError(t, err)
	assert.Equal(t, 0, *stmt.Top)

	assert.NoError(t, Top(3).Err())
	assert.ErrorIs(t, Top(-1).Err(), ErrInvalidArgument)
}

func TestAppendsAreCumulative(t *testing.T) {
	a, b := ast.Expr("a"), ast.Expr("b")
	person, address := ast.NewTable("person"), ast.NewTable("address")

	chained, err := Select(a).Select(b).
		From(person).From(address).
		OrderByName("a").OrderByIndex(2).
		Build()
	require.NoError(t, err)

	variadic, err := Select(a, b).
		From(person, address).
		OrderBy(ast.OrderByExpr(&ast.Column{Name: "a"}), ast.OrderByOrdinal(2)).
		Build()
	require.NoError(t, err)

	assert.Equal(t, variadic, chained)
	assert.Equal(t, []ast.Expression{a, b}, chained.Columns)
	assert.Equal(t, []*ast.Table{person, address}, chained.From)
	assert.Equal(t, 2, chained.OrderBy[1].Ordinal)
}

func TestSelectAfterFromKeepsJoinCapability(t *testing.T) {
	person, address := ast.NewTable("person"), ast.NewTable("address")

	stmt, err := Select(person.Column("id")).
		From(person).
		Select(address.Column("city")).
		Join(address).On(ast.Col("person_id")).Equals(person.Column("id")).
		Build()
	require.NoError(t, err)
	assert.Len(t, stmt.Columns, 2)
	assert.Len(t, stmt.Joins, 1)
}

func TestWhereIsLeftAssociative(t *testing.T) {
	a := ast.ColumnEq("person.a", 1)
	b := ast.ColumnEq("person.b", 2)
	c := ast.ColumnEq("person.c", 3)

	stmt, err := Select(ast.Star()).From(ast.NewTable("person")).
		Where(a).And(b).Or(c).
		Build()
	require.NoError(t, err)

	or, ok := stmt.Where.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, ast.OpOr, or.Operator)
	assert.Equal(t, c, or.Right)

	and, ok := or.Left.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, ast.OpAnd, and.Operator)
	assert.Equal(t, a, and.Left)
	assert.Equal(t, b, and.Right)
}

func TestMultiColumnJoinIsOneClause(t *testing.T) {
	stmt, err := Select(ast.Star()).From(ast.NewTable("s")).
		Join(ast.NewTable("t")).On(ast.Col("x")).Equals(ast.Col("y")).
		And(ast.Col("p")).Equals(ast.Col("q")).
		Build()
	require.NoError(t, err)

	require.Len(t, stmt.Joins, 1)
	assert.Equal(t, []ast.ColumnPair{
		{From: ast.Col("t.x"), To: ast.Col("y")},
		{From: ast.Col("t.p"), To: ast.Col("q")},
	}, stmt.Joins[0].Pairs)
}

func TestJoins(t *testing.T) {
	person := ast.NewTable("person")
	addr := ast.NewTable("address").As("a")
	orders := ast.NewTable("orders")

	stmt, err := Select(person.Column("id"), addr.Column("city"), orders.Column("total")).
		From(person).
		Join(addr).On(ast.Col("person_id")).Equals(person.Column("id")).
		LeftOuterJoin(orders).On(orders.Column("person_id")).Equals(person.Column("id")).
		Build()
	require.NoError(t, err)

	require.Len(t, stmt.Joins, 2)
	assert.Equal(t, ast.JoinInner, stmt.Joins[0].JoinType)
	assert.Equal(t, "a", stmt.Joins[0].Pairs[0].From.(*ast.Column).Table, "unqualified On binds to the joined alias")
	assert.Equal(t, ast.JoinLeft, stmt.Joins[1].JoinType)
	assert.Equal(t, "orders", stmt.Joins[1].Table.Name)
}

func TestOnDoesNotModifyCallerColumn(t *testing.T) {
	col := ast.Col("person_id")
	_, err := Select(ast.Star()).From(ast.NewTable("person")).
		Join(ast.NewTable("address")).On(col).Equals(ast.Col("person.id")).
		Build()
	require.NoError(t, err)
	assert.Equal(t, "", col.Table)
}

func TestLimitOffsetLastWriteWins(t *testing.T) {
	stmt, err := Select(ast.Star()).From(ast.NewTable("person")).
		LimitOffset(20, 0).
		Limit(5).
		Build()
	require.NoError(t, err)
	require.NotNil(t, stmt.Limit)
	assert.Equal(t, 5, *stmt.Limit.Count)
	require.NotNil(t, stmt.Limit.Offset)
	assert.Equal(t, 0, *stmt.Limit.Offset)

	stmt, err = Select(ast.Star()).From(ast.NewTable("person")).
		OrderByName("id").
		Offset(40).
		OrderByIndex(1).
		Offset(60).
		Build()
	require.NoError(t, err)
	assert.Nil(t, stmt.Limit.Count)
	assert.Equal(t, 60, *stmt.Limit.Offset)
	assert.Len(t, stmt.OrderBy, 2)
}

func TestLimitKeepsStageCapabilities(t *testing.T) {
	person, address := ast.NewTable("person"), ast.NewTable("address")

	stmt, err := Select(ast.Star()).From(person).
		Limit(10).
		Join(address).On(ast.Col("person_id")).Equals(person.Column("id")).
		Offset(3).
		Where(ast.IsNotNull(address.Column("city"))).
		Limit(20).
		And(ast.ColumnEq("person.active", true)).
		Build()
	require.NoError(t, err)
	assert.Equal(t, 20, *stmt.Limit.Count)
	assert.Equal(t, 3, *stmt.Limit.Offset)
	assert.Len(t, stmt.Joins, 1)
}

func TestReferenceErrors(t *testing.T) {
	person := ast.NewTable("person")

	tests := []struct {
		name      string
		build     func() (*ast.SelectStmt, error)
		clause    Clause
		reference string
		table     string
	}{
		{
			name: "where on undeclared table",
			build: func() (*ast.SelectStmt, error) {
				return Select(ast.Expr("id")).From(person).
					Where(ast.ColumnEq("address.city", "Berlin")).Build()
			},
			clause:    ClauseWhere,
			reference: "address.city",
			table:     "address",
		},
		{
			name: "select item",
			build: func() (*ast.SelectStmt, error) {
				return Select(ast.Col("orders.total")).From(person).Build()
			},
			clause:    ClauseSelect,
			reference: "orders.total",
			table:     "orders",
		},
		{
			name: "function argument",
			build: func() (*ast.SelectStmt, error) {
				return Select(ast.Fn("COUNT", ast.Col("orders.id"))).From(person).Build()
			},
			clause:    ClauseSelect,
			reference: "orders.id",
			table:     "orders",
		},
		{
			name: "join pair target",
			build: func() (*ast.SelectStmt, error) {
				return Select(ast.Star()).From(person).
					Join(ast.NewTable("address")).On(ast.Col("person_id")).Equals(ast.Col("ghost.id")).
					Build()
			},
			clause:    ClauseJoin,
			reference: "ghost.id",
			table:     "ghost",
		},
		{
			name: "order field",
			build: func() (*ast.SelectStmt, error) {
				return Select(ast.Star()).From(person).OrderBy(ast.Desc(ast.Col("address.zip"))).Build()
			},
			clause:    ClauseOrderBy,
			reference: "address.zip",
			table:     "address",
		},
		{
			name: "alias hides table name",
			build: func() (*ast.SelectStmt, error) {
				return Select(ast.Col("person.id")).From(person.As("p")).Build()
			},
			clause:    ClauseSelect,
			reference: "person.id",
			table:     "person",
		},
		{
			name: "nested in grouped not",
			build: func() (*ast.SelectStmt, error) {
				return Select(ast.Star()).From(person).
					Where(ast.Not(ast.Group(ast.In(ast.Col("x.id"), 1, 2)))).Build()
			},
			clause:    ClauseWhere,
			reference: "x.id",
			table:     "x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt, err := tt.build()
			require.Error(t, err)
			assert.Nil(t, stmt)
			assert.True(t, IsReferenceError(err))
			assert.True(t, errors.Is(err, ErrUnresolvedReference))

			var refErr *ReferenceError
			require.ErrorAs(t, err, &refErr)
			assert.Equal(t, tt.clause, refErr.Clause)
			assert.Equal(t, tt.reference, refErr.Reference)
			assert.Equal(t, tt.table, refErr.Table)
			assert.Contains(t, err.Error(), tt.reference)
		})
	}
}

func TestReferencesResolve(t *testing.T) {
	tests := []struct {
		name  string
		build func() (*ast.SelectStmt, error)
	}{
		{
			name: "joined table",
			build: func() (*ast.SelectStmt, error) {
				return Select(ast.Col("address.city")).From(ast.NewTable("person")).
					Join(ast.NewTable("address")).On(ast.Col("person_id")).Equals(ast.Col("person.id")).
					Where(ast.ColumnEq("address.zip", "10115")).
					Build()
			},
		},
		{
			name: "alias",
			build: func() (*ast.SelectStmt, error) {
				return Select(ast.Col("p.id")).From(ast.NewTable("person").As("p")).Build()
			},
		},
		{
			name: "schema qualified",
			build: func() (*ast.SelectStmt, error) {
				return Select(ast.Col("public.person.id"), ast.Col("person.name")).
					From(ast.NewSchemaTable("public", "person")).Build()
			},
		},
		{
			name: "unqualified and raw",
			build: func() (*ast.SelectStmt, error) {
				return Select(ast.Col("id"), ast.Expr("price * qty")).From(ast.NewTable("item")).
					Where(ast.Expr("qty > 0")).Build()
			},
		},
		{
			name: "no from",
			build: func() (*ast.SelectStmt, error) {
				return Select(ast.Expr("1")).Build()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.build()
			assert.NoError(t, err)
		})
	}
}

func TestOrderByOrdinalOutOfRange(t *testing.T) {
	chain := Select(ast.Expr("id"), ast.Expr("name")).From(ast.NewTable("person")).OrderByIndex(2)
	_, err := chain.Build()
	require.NoError(t, err)

	_, err = chain.OrderByIndex(3).Build()
	require.Error(t, err)

	var refErr *ReferenceError
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, ClauseOrderBy, refErr.Clause)
	assert.Equal(t, 3, refErr.Ordinal)
}

func TestArgumentErrors(t *testing.T) {
	person := ast.NewTable("person")
	var nilColumn *ast.Column

	tests := []struct {
		name string
		err  func() error
		op   string
	}{
		{"negative top", func() error { return Top(-1).Select(ast.Star()).Err() }, "Top"},
		{"negative top before select", func() error { return Top(-1).Err() }, "Top"},
		{"empty select", func() error { return Select().Err() }, "Select"},
		{"nil select item", func() error { return Select(ast.Star(), nil).Err() }, "Select"},
		{"typed nil select item", func() error { return Select(nilColumn).Err() }, "Select"},
		{"blank expression", func() error { return Select(ast.Expr("  ")).Err() }, "Select"},
		{"empty from", func() error { return Select(ast.Star()).From().Err() }, "From"},
		{"nil table", func() error { return Select(ast.Star()).From(person, nil).Err() }, "From"},
		{"blank table", func() error { return Select(ast.Star()).From(ast.NewTable("")).Err() }, "From"},
		{"nil join table", func() error { return Select(ast.Star()).From(person).Join(nil).Err() }, "Join"},
		{"nil on column", func() error {
			return Select(ast.Star()).From(person).Join(ast.NewTable("a")).On(nil).Err()
		}, "On"},
		{"blank equals column", func() error {
			return Select(ast.Star()).From(person).Join(ast.NewTable("a")).On(ast.Col("x")).Equals(ast.Col("")).Err()
		}, "Equals"},
		{"nil where", func() error { return Select(ast.Star()).From(person).Where(nil).Err() }, "Where"},
		{"nil or", func() error {
			return Select(ast.Star()).From(person).Where(ast.Expr("1 = 1")).Or(nil).Err()
		}, "Or"},
		{"empty order by", func() error { return Select(ast.Star()).From(person).OrderBy().Err() }, "OrderBy"},
		{"blank order name", func() error { return Select(ast.Star()).From(person).OrderByName("").Err() }, "OrderByName"},
		{"nil order column", func() error {
			return Select(ast.Star()).From(person).OrderByColumns(nil).Err()
		}, "OrderByColumns"},
		{"zero ordinal", func() error { return Select(ast.Star()).From(person).OrderByIndex(0).Err() }, "OrderByIndex"},
		{"negative limit", func() error { return Select(ast.Star()).From(person).Limit(-1).Err() }, "Limit"},
		{"negative offset", func() error { return Select(ast.Star()).From(person).Offset(-5).Err() }, "Offset"},
		{"negative limit offset", func() error {
			return Select(ast.Star()).From(person).LimitOffset(10, -1).Err()
		}, "LimitOffset"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.err()
			require.Error(t, err)
			assert.True(t, IsArgumentError(err))
			assert.False(t, IsStructuralError(err))

			var argErr *ArgumentError
			require.ErrorAs(t, err, &argErr)
			assert.Equal(t, tt.op, argErr.Op)
		})
	}
}

func TestArgumentErrorLeavesStatementUntouched(t *testing.T) {
	from := Select(ast.Expr("id")).From(ast.NewTable("person"))

	failed := from.LimitOffset(10, -1)
	require.Error(t, failed.Err())
	assert.Nil(t, from.s.limit, "limit must not be written when offset is rejected")
	assert.Nil(t, from.s.offset)

	// later calls are no-ops and Build reports the first error
	later := failed.Select(ast.Expr("name")).Where(ast.Expr("1 = 1"))
	assert.Len(t, from.s.columns, 1)
	assert.Nil(t, from.s.where)

	_, err := later.Build()
	var argErr *ArgumentError
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, "LimitOffset", argErr.Op)
	assert.Equal(t, "offset", argErr.Arg)
}

func TestStaleStageIsStructuralError(t *testing.T) {
	person, address := ast.NewTable("person"), ast.NewTable("address")

	tests := []struct {
		name string
		err  func() error
	}{
		{"where while join has no pair", func() error {
			from := Select(ast.Star()).From(person)
			from.Join(address)
			return from.Where(ast.Expr("1 = 1")).Err()
		}},
		{"build while join has no pair", func() error {
			from := Select(ast.Star()).From(person)
			from.Join(address)
			_, err := from.Build()
			return err
		}},
		{"on twice before equals", func() error {
			join := Select(ast.Star()).From(person).Join(address)
			join.On(ast.Col("person_id"))
			return join.On(ast.Col("x")).Err()
		}},
		{"second where", func() error {
			from := Select(ast.Star()).From(person)
			from.Where(ast.Expr("a"))
			return from.Where(ast.Expr("b")).Err()
		}},
		{"join after where", func() error {
			from := Select(ast.Star()).From(person)
			from.Where(ast.Expr("a"))
			return from.Join(address).Err()
		}},
		{"join pair after where", func() error {
			cond := Select(ast.Star()).From(person).Join(address).On(ast.Col("a")).Equals(ast.Col("b"))
			cond.Where(ast.Expr("1 = 1"))
			return cond.And(ast.Col("c")).Err()
		}},
		{"select after order by", func() error {
			from := Select(ast.Star()).From(person)
			from.OrderByName("id")
			return from.Select(ast.Expr("x")).Err()
		}},
		{"where after order by", func() error {
			from := Select(ast.Star()).From(person)
			from.OrderByName("id")
			return from.Where(ast.Expr("1 = 1")).Err()
		}},
		{"zero value stage", func() error {
			_, err := FromStage{}.Build()
			return err
		}},
		{"zero value err", func() error {
			return WhereStage{}.Err()
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.err()
			require.Error(t, err)
			assert.True(t, IsStructuralError(err))
			assert.True(t, errors.Is(err, ErrIllegalState))
			assert.False(t, IsArgumentError(err))
		})
	}
}

func TestErrIsNilOnValidChain(t *testing.T) {
	w := Select(ast.Star()).From(ast.NewTable("person")).Where(ast.Expr("1 = 1"))
	assert.NoError(t, w.Err())
	assert.NoError(t, w.OrderByIndex(1).Err())
}

func TestBuildIsRepeatable(t *testing.T) {
	chain := Select(ast.Col("person.id")).From(ast.NewTable("person")).Where(ast.ColumnEq("person.id", 1))

	first, err := chain.Build()
	require.NoError(t, err)
	second, err := chain.Build()
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.NotSame(t, first, second)
	assert.Equal(t, first.Fingerprint(), second.Fingerprint())

	first.Columns[0].(*ast.Column).Name = "changed"
	assert.Equal(t, "id", second.Columns[0].(*ast.Column).Name)

	third, err := chain.And(ast.ColumnEq("person.active", true)).Limit(1).Build()
	require.NoError(t, err)
	assert.Nil(t, second.Limit, "later stage calls must not reach earlier snapshots")
	assert.NotEqual(t, second.Fingerprint(), third.Fingerprint())
	assert.Equal(t, ast.OpEqual, second.Where.(*ast.BinaryExpr).Operator)
}

func TestSnapshotIsDetachedFromArguments(t *testing.T) {
	person := ast.NewTable("person")
	col := person.Column("id")

	stmt, err := Select(col).From(person).Build()
	require.NoError(t, err)

	col.Name = "changed"
	person.Name = "changed"
	assert.Equal(t, "id", stmt.Columns[0].(*ast.Column).Name)
	assert.Equal(t, "person", stmt.From[0].Name)
}

func TestArgumentsAreCopiedOnEntry(t *testing.T) {
	cases := []struct {
		name  string
		build func() (*ast.SelectStmt, error)
		check func(t *testing.T, stmt *ast.SelectStmt)
	}{
		{
			name: "select item",
			build: func() (*ast.SelectStmt, error) {
				col := ast.Col("person.id")
				from := Select(col).From(ast.NewTable("person"))
				col.Name = ""
				return from.Build()
			},
			check: func(t *testing.T, stmt *ast.SelectStmt) {
				assert.Equal(t, "id", stmt.Columns[0].(*ast.Column).Name)
			},
		},
		{
			name: "from table",
			build: func() (*ast.SelectStmt, error) {
				person := ast.NewTable("person")
				from := Select(ast.Col("person.id")).From(person)
				person.Name = "other"
				return from.Build()
			},
			check: func(t *testing.T, stmt *ast.SelectStmt) {
				assert.Equal(t, "person", stmt.From[0].Name)
			},
		},
		{
			name: "join table and pair columns",
			build: func() (*ast.SelectStmt, error) {
				addr := ast.NewTable("address")
				on := ast.Col("address.person_id")
				to := ast.Col("person.id")
				joined := Select(ast.Star()).From(ast.NewTable("person")).Join(addr).On(on).Equals(to)
				addr.Name = "other"
				on.Name = ""
				to.Table = "missing"
				return joined.Build()
			},
			check: func(t *testing.T, stmt *ast.SelectStmt) {
				assert.Equal(t, "address", stmt.Joins[0].Table.Name)
				assert.Equal(t, []ast.ColumnPair{
					{From: ast.Col("address.person_id"), To: ast.Col("person.id")},
				}, stmt.Joins[0].Pairs)
			},
		},
		{
			name: "where and combined conditions",
			build: func() (*ast.SelectStmt, error) {
				first := ast.ColumnEq("person.id", 1)
				second := ast.ColumnEq("person.active", true)
				w := Select(ast.Star()).From(ast.NewTable("person")).Where(first).And(second)
				first.Left = nil
				second.Operator = ast.OpNotEqual
				return w.Build()
			},
			check: func(t *testing.T, stmt *ast.SelectStmt) {
				assert.Equal(t, ast.And(ast.ColumnEq("person.id", 1), ast.ColumnEq("person.active", true)), stmt.Where)
			},
		},
		{
			name: "order field",
			build: func() (*ast.SelectStmt, error) {
				field := ast.Desc(ast.Col("person.id"))
				ordered := Select(ast.Star()).From(ast.NewTable("person")).OrderBy(field)
				field.Expr = nil
				return ordered.Build()
			},
			check: func(t *testing.T, stmt *ast.SelectStmt) {
				assert.Equal(t, ast.Desc(ast.Col("person.id")), stmt.OrderBy[0])
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stmt, err := tc.build()
			require.NoError(t, err)
			tc.check(t, stmt)
		})
	}
}

func TestCloneBranchesAreIndependent(t *testing.T) {
	person := ast.NewTable("person")
	base := Select(person.Column("id")).From(person).Where(ast.ColumnEq("person.active", true))

	active, err := base.Clone().OrderBy(ast.Desc(person.Column("id"))).Limit(10).Build()
	require.NoError(t, err)
	recent, err := base.Clone().Or(ast.ColumnEq("person.admin", true)).Build()
	require.NoError(t, err)
	plain, err := base.Build()
	require.NoError(t, err)

	assert.Len(t, active.OrderBy, 1)
	assert.Nil(t, recent.Limit)
	assert.Empty(t, recent.OrderBy)
	assert.Equal(t, ast.OpOr, recent.Where.(*ast.BinaryExpr).Operator)

	assert.Empty(t, plain.OrderBy)
	assert.Nil(t, plain.Limit)
	assert.Equal(t, ast.OpEqual, plain.Where.(*ast.BinaryExpr).Operator)
}

func TestCloneOfJoinCondition(t *testing.T) {
	person, address := ast.NewTable("person"), ast.NewTable("address")
	base := Select(ast.Star()).From(person).Join(address).On(ast.Col("person_id")).Equals(person.Column("id"))

	multi, err := base.Clone().And(ast.Col("tenant")).Equals(person.Column("tenant")).Build()
	require.NoError(t, err)
	single, err := base.Build()
	require.NoError(t, err)

	assert.Len(t, multi.Joins[0].Pairs, 2)
	assert.Len(t, single.Joins[0].Pairs, 1)
}

func TestCloneCarriesError(t *testing.T) {
	failed := Select(ast.Star()).From(ast.NewTable("person")).Limit(-1)
	clone := failed.Clone()
	assert.True(t, IsArgumentError(clone.Err()))

	from := Select(ast.Star()).From(ast.NewTable("person"))
	from.Join(ast.NewTable("address"))
	stale := from.Clone()
	assert.True(t, IsStructuralError(stale.Err()))
	assert.NoError(t, from.s.err, "cloning a stale stage must not fail the original chain")
}

func TestErrorMessages(t *testing.T) {
	err := Select(ast.Star()).From(ast.NewTable("person")).Limit(-3).Err()
	assert.Equal(t, "stagesql: Limit: invalid limit: must not be negative", err.Error())

	from := Select(ast.Star()).From(ast.NewTable("person"))
	from.Join(ast.NewTable("address"))
	err = from.Where(ast.Expr("1 = 1")).Err()
	assert.Equal(t, "stagesql: Where in join stage: join clause has no ON column pair yet", err.Error())

	assert.Equal(t, "ORDER BY", ClauseOrderBy.String())
	assert.Equal(t, "JOIN", ClauseJoin.String())
}
