package ast

import (
	"strings"

	"github.com/Konsultn-Engineering/stagesql/utils"
)

// Column is a column reference, optionally qualified by the reference name
// (alias or name) of its owning table.
type Column struct {
	Table string
	Name  string
	Alias string
}

func NewColumn(table, name, alias string) *Column {
	return &Column{Table: table, Name: name, Alias: alias}
}

// Col parses "table.column AS alias" style specs. Every part except the
// column name is optional.
func Col(spec string) *Column {
	table, name, alias := parseColumnString(spec)
	return &Column{Table: table, Name: name, Alias: alias}
}

// Star is the unqualified "*" projection.
func Star() *Column {
	return &Column{Name: "*"}
}

// As returns a copy of c projected under alias.
func (c *Column) As(alias string) *Column {
	cp := *c
	cp.Alias = alias
	return &cp
}

func (c *Column) Qualified() bool { return c.Table != "" }

// Ref renders the reference the way it appears in error messages: "table.name".
func (c *Column) Ref() string {
	if c.Table == "" {
		return c.Name
	}
	return c.Table + "." + c.Name
}

func (c *Column) Type() NodeType         { return NodeColumn }
func (c *Column) Accept(v Visitor) error { return v.VisitColumn(c) }
func (c *Column) Fingerprint() uint64 {
	return utils.FingerprintString("col:" + c.Table + "." + c.Name + ":" + c.Alias)
}

func (*Column) expressionNode() {}

// parseColumnString parses "table.column AS alias" formats.
// Returns table, name, alias (any can be empty).
func parseColumnString(spec string) (table, name, alias string) {
	spec = strings.TrimSpace(spec)
	if asIdx := strings.Index(strings.ToUpper(spec), " AS "); asIdx > 0 {
		alias = strings.TrimSpace(spec[asIdx+4:])
		spec = strings.TrimSpace(spec[:asIdx])
	}

	if dotIdx := strings.LastIndex(spec, "."); dotIdx > 0 {
		table = spec[:dotIdx]
		name = spec[dotIdx+1:]
	} else {
		name = spec
	}

	return
}
