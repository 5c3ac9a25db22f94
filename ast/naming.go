package ast

import (
	"reflect"
	"strings"
	"unicode"

	pluralizer "github.com/gertd/go-pluralize"
)

// pluralizeClient is shared; the client is safe for concurrent reads.
var pluralizeClient = pluralizer.NewClient()

// TableNamer lets a model override the derived table name.
type TableNamer interface {
	TableName() string
}

// TableFor derives a table reference from a Go model: TableName() when the
// model implements TableNamer, otherwise the snake_case plural of its struct
// name (BlogPost -> blog_posts, Person -> people).
func TableFor(model any) *Table {
	if n, ok := model.(TableNamer); ok {
		return NewTable(n.TableName())
	}

	t := reflect.TypeOf(model)
	for t != nil && (t.Kind() == reflect.Pointer || t.Kind() == reflect.Slice || t.Kind() == reflect.Array) {
		t = t.Elem()
	}
	if t == nil || t.Name() == "" {
		return NewTable("")
	}
	return NewTable(pluralize(toSnakeCase(t.Name())))
}

func pluralize(name string) string {
	if name == "" {
		return ""
	}
	// only the last word of a snake_case name takes the plural
	if idx := strings.LastIndexByte(name, '_'); idx >= 0 && idx < len(name)-1 {
		return name[:idx+1] + pluralizeClient.Plural(name[idx+1:])
	}
	return pluralizeClient.Plural(name)
}

// toSnakeCase splits on case changes and keeps acronyms together:
// HTTPRequest -> http_request, UserID -> user_id.
func toSnakeCase(name string) string {
	runes := []rune(name)
	var b strings.Builder
	b.Grow(len(name) + 4)

	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 {
				prev := runes[i-1]
				nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
				if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
					b.WriteByte('_')
				}
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
