package dialect

import (
	"fmt"
	"strings"
)

// Dialect spells identifiers, parameters, literals and row limits for one
// database.
type Dialect interface {
	Name() string
	QuoteIdentifier(name string) string
	Placeholder(n int) string
	RenderValue(v any) string

	// SupportsTop reports whether a leading SELECT TOP n is valid.
	SupportsTop() bool

	// LimitOffset renders the trailing row limit clause with a leading space,
	// or "" when both are nil. ordered tells whether the statement already
	// has an ORDER BY.
	LimitOffset(limit, offset *int, ordered bool) string
}

// ByName returns the dialect registered under name. Matching ignores case.
func ByName(name string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "postgres", "postgresql", "pgx":
		return NewPostgresDialect(), nil
	case "mysql":
		return NewMySQLDialect(), nil
	case "tidb":
		return NewTiDBDialect(), nil
	case "sqlserver", "mssql":
		return NewSQLServerDialect(), nil
	default:
		return nil, fmt.Errorf("dialect: unknown dialect %q", name)
	}
}
