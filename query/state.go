package query

import (
	"fmt"

	"github.com/Konsultn-Engineering/stagesql/ast"
)

type phase uint8

const (
	phaseTop phase = iota
	phaseSelect
	phaseFrom
	phaseJoinTable
	phaseJoinColumn
	phaseJoined
	phaseWhere
	phaseOrdered
)

var phaseNames = [...]string{
	phaseTop:        "top",
	phaseSelect:     "select",
	phaseFrom:       "from",
	phaseJoinTable:  "join",
	phaseJoinColumn: "join condition",
	phaseJoined:     "joined",
	phaseWhere:      "where",
	phaseOrdered:    "order by",
}

func (p phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "unknown"
}

type op uint16

const (
	opSelect op = 1 << iota
	opFrom
	opJoin
	opOn
	opEquals
	opJoinAnd
	opWhere
	opCombine
	opOrderBy
	opLimit
	opBuild
	opClone
)

// tail is what every stage past FROM keeps offering.
const tail = opOrderBy | opLimit | opBuild | opClone

// allowed lists the operations legal in each phase. Stage types already
// restrict this at compile time; the table catches stage values reused after
// the statement moved on.
var allowed = [...]op{
	phaseTop:        opSelect,
	phaseSelect:     opSelect | opFrom | opBuild,
	phaseFrom:       opSelect | opFrom | opJoin | opWhere | tail,
	phaseJoinTable:  opOn,
	phaseJoinColumn: opEquals,
	phaseJoined:     opJoinAnd | opJoin | opWhere | tail,
	phaseWhere:      opCombine | tail,
	phaseOrdered:    tail,
}

// selectState is the statement under construction, shared by every stage
// value of one chain.
type selectState struct {
	phase phase
	err   error

	top     *int
	columns []ast.Expression
	from    []*ast.Table
	joins   []*ast.JoinClause
	where   ast.Condition
	orderBy []*ast.OrderByField
	limit   *int
	offset  *int

	// source column of the join pair waiting for Equals
	pending *ast.Column
}

func newState() *selectState {
	return &selectState{phase: phaseTop}
}

// use returns s, or a failed state for stage values that were never
// obtained from Top or Select.
func use(s *selectState, name string) *selectState {
	if s == nil {
		return &selectState{
			phase: phaseTop,
			err:   &StructuralError{Op: name, Phase: "none", Reason: "stage was not obtained from Top or Select"},
		}
	}
	return s
}

func errOf(s *selectState) error {
	return use(s, "Err").err
}

// fail latches the first error; everything after it is a no-op.
func (s *selectState) fail(err error) {
	if s.err == nil {
		s.err = err
	}
}

// enter reports whether name may run now, latching a StructuralError when the
// current phase forbids it.
func (s *selectState) enter(o op, name string) bool {
	if s.err != nil {
		return false
	}
	if err := s.check(o, name); err != nil {
		s.fail(err)
		return false
	}
	return true
}

func (s *selectState) check(o op, name string) error {
	if allowed[s.phase]&o != 0 {
		return nil
	}
	return &StructuralError{Op: name, Phase: s.phase.String(), Reason: illegalReason(s.phase, o, name)}
}

func illegalReason(p phase, o op, name string) string {
	switch {
	case p == phaseJoinTable:
		return "join clause has no ON column pair yet"
	case p == phaseJoinColumn:
		return "join column pair is missing its Equals column"
	case p == phaseWhere && o == opWhere:
		return "WHERE is already set; extend it with And or Or"
	default:
		return fmt.Sprintf("%s is not legal once the statement reached the %s stage", name, p)
	}
}

func (s *selectState) addColumns(name string, items []ast.Expression) {
	if !s.enter(opSelect, name) {
		return
	}
	if len(items) == 0 {
		s.fail(argError(name, "items", "at least one select item is required"))
		return
	}
	for i, item := range items {
		if err := checkExpression(name, fmt.Sprintf("items[%d]", i), item); err != nil {
			s.fail(err)
			return
		}
	}

	for _, item := range items {
		s.columns = append(s.columns, ast.Clone(item))
	}
	if s.phase == phaseTop {
		s.phase = phaseSelect
	}
}

func (s *selectState) addTables(name string, tables []*ast.Table) {
	if !s.enter(opFrom, name) {
		return
	}
	if len(tables) == 0 {
		s.fail(argError(name, "tables", "at least one table is required"))
		return
	}
	for i, t := range tables {
		if err := checkTable(name, fmt.Sprintf("tables[%d]", i), t); err != nil {
			s.fail(err)
			return
		}
	}

	for _, t := range tables {
		s.from = append(s.from, ast.Clone(t))
	}
	s.phase = phaseFrom
}

func (s *selectState) openJoin(name string, joinType ast.JoinType, table *ast.Table) {
	if !s.enter(opJoin, name) {
		return
	}
	if err := checkTable(name, "table", table); err != nil {
		s.fail(err)
		return
	}

	s.joins = append(s.joins, ast.NewJoinClause(joinType, ast.Clone(table)))
	s.phase = phaseJoinTable
}

// beginPair records the source column of a join pair. Unqualified columns
// belong to the table being joined.
func (s *selectState) beginPair(o op, name string, col *ast.Column) {
	if !s.enter(o, name) {
		return
	}
	if err := checkColumn(name, "column", col); err != nil {
		s.fail(err)
		return
	}

	bound := ast.Clone(col)
	if !bound.Qualified() {
		bound.Table = s.joins[len(s.joins)-1].Table.ReferenceName()
	}
	s.pending = bound
	s.phase = phaseJoinColumn
}

func (s *selectState) closePair(name string, col *ast.Column) {
	if !s.enter(opEquals, name) {
		return
	}
	if err := checkColumn(name, "column", col); err != nil {
		s.fail(err)
		return
	}

	s.joins[len(s.joins)-1].Append(s.pending, ast.Clone(col))
	s.pending = nil
	s.phase = phaseJoined
}

func (s *selectState) setWhere(name string, cond ast.Condition) {
	if !s.enter(opWhere, name) {
		return
	}
	if err := checkExpression(name, "condition", cond); err != nil {
		s.fail(err)
		return
	}

	s.where = ast.Clone(cond)
	s.phase = phaseWhere
}

// combine makes the existing condition the left operand, so chains stay
// left-associative: Where(a).And(b).Or(c) is OR(AND(a, b), c).
func (s *selectState) combine(name, operator string, cond ast.Condition) {
	if !s.enter(opCombine, name) {
		return
	}
	if err := checkExpression(name, "condition", cond); err != nil {
		s.fail(err)
		return
	}

	s.where = ast.NewBinaryExpr(s.where, operator, ast.Clone(cond))
}

func (s *selectState) addOrder(name string, fields []*ast.OrderByField) {
	if !s.enter(opOrderBy, name) {
		return
	}
	if len(fields) == 0 {
		s.fail(argError(name, "fields", "at least one order field is required"))
		return
	}
	for i, f := range fields {
		if err := checkOrderField(name, fmt.Sprintf("fields[%d]", i), f); err != nil {
			s.fail(err)
			return
		}
	}

	for _, f := range fields {
		s.orderBy = append(s.orderBy, ast.Clone(f))
	}
	s.phase = phaseOrdered
}

// setLimits writes whichever of limit and offset is non-nil; the phase is
// left alone so callers keep the capabilities they had.
func (s *selectState) setLimits(name string, limit, offset *int) {
	if !s.enter(opLimit, name) {
		return
	}
	if limit != nil {
		if err := checkCount(name, "limit", *limit); err != nil {
			s.fail(err)
			return
		}
	}
	if offset != nil {
		if err := checkCount(name, "offset", *offset); err != nil {
			s.fail(err)
			return
		}
	}

	if limit != nil {
		s.limit = limit
	}
	if offset != nil {
		s.offset = offset
	}
}

// clone deep-copies the accumulator for branching. Stale stage values clone
// into a failed state instead of latching onto the original chain.
func (s *selectState) clone(name string) *selectState {
	if s.err != nil {
		return &selectState{phase: s.phase, err: s.err}
	}
	if err := s.check(opClone, name); err != nil {
		return &selectState{phase: s.phase, err: err}
	}

	c := &selectState{
		phase:  s.phase,
		top:    cloneInt(s.top),
		where:  ast.Clone(s.where),
		limit:  cloneInt(s.limit),
		offset: cloneInt(s.offset),
	}
	if s.pending != nil {
		c.pending = ast.Clone(s.pending)
	}
	if s.columns != nil {
		c.columns = make([]ast.Expression, len(s.columns))
		for i, col := range s.columns {
			c.columns[i] = ast.Clone(col)
		}
	}
	if s.from != nil {
		c.from = make([]*ast.Table, len(s.from))
		for i, t := range s.from {
			c.from[i] = ast.Clone(t)
		}
	}
	if s.joins != nil {
		c.joins = make([]*ast.JoinClause, len(s.joins))
		for i, j := range s.joins {
			c.joins[i] = ast.Clone(j)
		}
	}
	if s.orderBy != nil {
		c.orderBy = make([]*ast.OrderByField, len(s.orderBy))
		for i, o := range s.orderBy {
			c.orderBy[i] = ast.Clone(o)
		}
	}
	return c
}

func cloneInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
