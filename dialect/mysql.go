package dialect

import (
	"fmt"
	"strings"
)

type MySQL struct{}

func NewMySQLDialect() Dialect {
	return &MySQL{}
}

// mysqlMaxRows is the documented way to OFFSET without a LIMIT.
const mysqlMaxRows = "18446744073709551615"

var mysqlLiterals = literalStyle{
	trueLit:  "TRUE",
	falseLit: "FALSE",
	bytes:    func(b []byte) string { return fmt.Sprintf("X'%x'", b) },
	quote:    quoteBackslashString,
}

func (m MySQL) Name() string { return "mysql" }

func (m MySQL) QuoteIdentifier(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

func (m MySQL) Placeholder(n int) string {
	return "?"
}

func (m MySQL) RenderValue(v any) string {
	return mysqlLiterals.render(v)
}

func (m MySQL) SupportsTop() bool { return false }

func (m MySQL) LimitOffset(limit, offset *int, _ bool) string {
	return limitOffset(limit, offset, mysqlMaxRows)
}
