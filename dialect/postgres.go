package dialect

import (
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
)

type Postgres struct{}

func NewPostgresDialect() Dialect {
	return &Postgres{}
}

var postgresLiterals = literalStyle{
	trueLit:  "TRUE",
	falseLit: "FALSE",
	bytes:    func(b []byte) string { return fmt.Sprintf("'\\x%x'::bytea", b) },
}

func (Postgres) Name() string { return "postgres" }

// QuoteIdentifier quotes name the way pgx sanitizes identifiers: double
// quotes, embedded quotes doubled.
func (Postgres) QuoteIdentifier(name string) string {
	return pgx.Identifier{name}.Sanitize()
}

func (Postgres) Placeholder(n int) string {
	return "$" + strconv.Itoa(n)
}

func (Postgres) RenderValue(v any) string {
	return postgresLiterals.render(v)
}

func (Postgres) SupportsTop() bool { return false }

func (Postgres) LimitOffset(limit, offset *int, _ bool) string {
	return limitOffset(limit, offset, "")
}

// limitOffset is the LIMIT n OFFSET m form shared by most dialects.
// noLimit stands in for a missing limit when the database cannot take a bare
// OFFSET.
func limitOffset(limit, offset *int, noLimit string) string {
	var out string
	switch {
	case limit != nil:
		out = " LIMIT " + strconv.Itoa(*limit)
	case offset != nil && noLimit != "":
		out = " LIMIT " + noLimit
	}
	if offset != nil {
		out += " OFFSET " + strconv.Itoa(*offset)
	}
	return out
}
