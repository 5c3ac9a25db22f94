package dialect

import (
	"fmt"
	"strconv"
	"strings"
)

// SQLServer renders T-SQL: bracket quoting, @pN parameters, SELECT TOP and
// OFFSET ... FETCH paging.
type SQLServer struct{}

func NewSQLServerDialect() Dialect {
	return &SQLServer{}
}

var sqlServerLiterals = literalStyle{
	trueLit:  "1",
	falseLit: "0",
	bytes:    func(b []byte) string { return fmt.Sprintf("0x%x", b) },
}

func (SQLServer) Name() string { return "sqlserver" }

func (SQLServer) QuoteIdentifier(name string) string {
	return "[" + strings.ReplaceAll(name, "]", "]]") + "]"
}

func (SQLServer) Placeholder(n int) string {
	return "@p" + strconv.Itoa(n)
}

func (SQLServer) RenderValue(v any) string {
	return sqlServerLiterals.render(v)
}

func (SQLServer) SupportsTop() bool { return true }

// LimitOffset renders OFFSET ... FETCH. T-SQL only accepts it after an
// ORDER BY, so unordered statements get ORDER BY (SELECT NULL).
func (SQLServer) LimitOffset(limit, offset *int, ordered bool) string {
	if limit == nil && offset == nil {
		return ""
	}

	var b strings.Builder
	if !ordered {
		b.WriteString(" ORDER BY (SELECT NULL)")
	}
	skip := 0
	if offset != nil {
		skip = *offset
	}
	b.WriteString(" OFFSET " + strconv.Itoa(skip) + " ROWS")
	if limit != nil {
		b.WriteString(" FETCH NEXT " + strconv.Itoa(*limit) + " ROWS ONLY")
	}
	return b.String()
}
