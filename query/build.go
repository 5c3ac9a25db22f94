package query

import (
	"log/slog"

	"github.com/Konsultn-Engineering/stagesql/ast"
)

// build validates the accumulator and returns a detached copy of it. It
// never changes the accumulator, so it can run any number of times and
// later stage calls do not reach earlier results.
func (s *selectState) build(name string) (*ast.SelectStmt, error) {
	err := s.err
	if err == nil {
		err = s.check(opBuild, name)
	}
	if err == nil {
		err = s.resolve()
	}
	if err != nil {
		slog.Default().Debug("stagesql: select build rejected", "phase", s.phase.String(), "error", err)
		return nil, err
	}
	return s.statement().Clone(), nil
}

// statement views the accumulator as a SelectStmt. The result aliases the
// accumulator and must be cloned before it leaves the package.
func (s *selectState) statement() *ast.SelectStmt {
	stmt := &ast.SelectStmt{
		Top:     s.top,
		Columns: s.columns,
		From:    s.from,
		Joins:   s.joins,
		Where:   s.where,
		OrderBy: s.orderBy,
	}
	if s.limit != nil || s.offset != nil {
		stmt.Limit = ast.NewLimitClause(s.limit, s.offset)
	}
	return stmt
}
