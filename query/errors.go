package query

import (
	"errors"
	"fmt"
)

// Sentinel errors matched by the typed errors below through errors.Is.
var (
	// ErrInvalidArgument is returned when a stage operation receives an
	// argument it cannot accept: nil or blank references, negative counts,
	// empty variadic lists.
	ErrInvalidArgument = errors.New("stagesql: invalid argument")

	// ErrIllegalState is returned when a stage value is used after the
	// statement has moved past the point where its operations are legal.
	ErrIllegalState = errors.New("stagesql: illegal builder state")

	// ErrUnresolvedReference is returned by Build when a clause references a
	// table that is not declared in FROM or JOIN.
	ErrUnresolvedReference = errors.New("stagesql: unresolved reference")
)

// Clause names the part of the statement a reference appeared in.
type Clause int

const (
	ClauseSelect Clause = iota
	ClauseJoin
	ClauseWhere
	ClauseOrderBy
)

func (c Clause) String() string {
	switch c {
	case ClauseSelect:
		return "SELECT"
	case ClauseJoin:
		return "JOIN"
	case ClauseWhere:
		return "WHERE"
	case ClauseOrderBy:
		return "ORDER BY"
	default:
		return "UNKNOWN"
	}
}

// ArgumentError reports a rejected argument. The call that produced it left
// the statement untouched.
type ArgumentError struct {
	Op     string
	Arg    string
	Reason string
}

// Error returns the error string.
func (e *ArgumentError) Error() string {
	return fmt.Sprintf("stagesql: %s: invalid %s: %s", e.Op, e.Arg, e.Reason)
}

// Is reports whether the target error matches ArgumentError.
func (e *ArgumentError) Is(err error) bool {
	return err == ErrInvalidArgument
}

// StructuralError reports an operation invoked from a phase that does not
// allow it, typically through a stage value that was already advanced.
type StructuralError struct {
	Op     string
	Phase  string
	Reason string
}

// Error returns the error string.
func (e *StructuralError) Error() string {
	return fmt.Sprintf("stagesql: %s in %s stage: %s", e.Op, e.Phase, e.Reason)
}

// Is reports whether the target error matches StructuralError.
func (e *StructuralError) Is(err error) bool {
	return err == ErrIllegalState
}

// ReferenceError reports a reference that does not resolve against the
// declared FROM and JOIN tables. Ordinal is set instead of Table when an
// ORDER BY position exceeds the select list.
type ReferenceError struct {
	Clause    Clause
	Reference string
	Table     string
	Ordinal   int
}

// Error returns the error string.
func (e *ReferenceError) Error() string {
	if e.Ordinal > 0 {
		return fmt.Sprintf("stagesql: %s position %d is out of range of the select list", e.Clause, e.Ordinal)
	}
	return fmt.Sprintf("stagesql: unresolved reference %q in %s: table %q is not declared in FROM or JOIN",
		e.Reference, e.Clause, e.Table)
}

// Is reports whether the target error matches ReferenceError.
func (e *ReferenceError) Is(err error) bool {
	return err == ErrUnresolvedReference
}

// IsArgumentError returns true if the error is an ArgumentError.
func IsArgumentError(err error) bool {
	if err == nil {
		return false
	}
	var e *ArgumentError
	return errors.As(err, &e) || errors.Is(err, ErrInvalidArgument)
}

// IsStructuralError returns true if the error is a StructuralError.
func IsStructuralError(err error) bool {
	if err == nil {
		return false
	}
	var e *StructuralError
	return errors.As(err, &e) || errors.Is(err, ErrIllegalState)
}

// IsReferenceError returns true if the error is a ReferenceError.
func IsReferenceError(err error) bool {
	if err == nil {
		return false
	}
	var e *ReferenceError
	return errors.As(err, &e) || errors.Is(err, ErrUnresolvedReference)
}

func argError(op, arg, reason string) *ArgumentError {
	return &ArgumentError{Op: op, Arg: arg, Reason: reason}
}
