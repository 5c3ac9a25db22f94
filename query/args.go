package query

import (
	"reflect"
	"strings"

	"github.com/Konsultn-Engineering/stagesql/ast"
)

// isNil catches typed nil pointers hidden inside node interfaces.
func isNil(n ast.Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func checkExpression(op, arg string, e ast.Expression) error {
	if isNil(e) {
		return argError(op, arg, "must not be nil")
	}
	switch n := e.(type) {
	case *ast.Column:
		if blank(n.Name) {
			return argError(op, arg, "column name must not be blank")
		}
	case *ast.Raw:
		if blank(n.SQL) {
			return argError(op, arg, "expression must not be blank")
		}
	case *ast.Function:
		if blank(n.Name) {
			return argError(op, arg, "function name must not be blank")
		}
	}
	return nil
}

func checkTable(op, arg string, t *ast.Table) error {
	if t == nil {
		return argError(op, arg, "must not be nil")
	}
	if blank(t.Name) {
		return argError(op, arg, "table name must not be blank")
	}
	return nil
}

func checkColumn(op, arg string, c *ast.Column) error {
	if c == nil {
		return argError(op, arg, "must not be nil")
	}
	if blank(c.Name) {
		return argError(op, arg, "column name must not be blank")
	}
	return nil
}

func checkOrderField(op, arg string, f *ast.OrderByField) error {
	if f == nil {
		return argError(op, arg, "must not be nil")
	}
	if f.IsOrdinal() {
		if f.Ordinal < 1 {
			return argError(op, arg, "select list positions start at 1")
		}
		return nil
	}
	return checkExpression(op, arg, f.Expr)
}

func checkCount(op, arg string, n int) error {
	if n < 0 {
		return argError(op, arg, "must not be negative")
	}
	return nil
}
