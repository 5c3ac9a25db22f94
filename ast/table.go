package ast

import "github.com/Konsultn-Engineering/stagesql/utils"

type Table struct {
	Schema string
	Name   string
	Alias  string
}

func NewTable(name string) *Table {
	return &Table{Name: name}
}

func NewSchemaTable(schema, name string) *Table {
	return &Table{Schema: schema, Name: name}
}

// Tables is shorthand for a FROM list of plain table names.
func Tables(names ...string) []*Table {
	tables := make([]*Table, len(names))
	for i, name := range names {
		tables[i] = NewTable(name)
	}
	return tables
}

// As returns an aliased copy of t.
func (t *Table) As(alias string) *Table {
	cp := *t
	cp.Alias = alias
	return &cp
}

// ReferenceName is the name columns use to qualify themselves against t:
// the alias when set, the table name otherwise.
func (t *Table) ReferenceName() string {
	if t.Alias != "" {
		return t.Alias
	}
	return t.Name
}

// Column returns a column owned by t.
func (t *Table) Column(name string) *Column {
	return &Column{Table: t.ReferenceName(), Name: name}
}

// Columns returns one owned column per name, in order.
func (t *Table) Columns(names ...string) []Expression {
	cols := make([]Expression, len(names))
	for i, name := range names {
		cols[i] = t.Column(name)
	}
	return cols
}

func (t *Table) Type() NodeType         { return NodeTable }
func (t *Table) Accept(v Visitor) error { return v.VisitTable(t) }
func (t *Table) Fingerprint() uint64 {
	return utils.FingerprintString("table:" + t.Schema + "." + t.Name + "." + t.Alias)
}
