package dialect

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

const timeLayout = "2006-01-02 15:04:05.000000"

// literalStyle covers the parts of inline literals that differ per database.
type literalStyle struct {
	trueLit  string
	falseLit string
	bytes    func([]byte) string
	// quote wraps a string literal; nil means standard SQL quote doubling.
	quote func(string) string
}

func (ls literalStyle) render(v any) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case string:
		return ls.quoteString(val)
	case bool:
		if val {
			return ls.trueLit
		}
		return ls.falseLit
	case int, int8, int16, int32, int64:
		return fmt.Sprintf("%d", val)
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", val)
	case float32, float64:
		return strconv.FormatFloat(reflect.ValueOf(val).Float(), 'f', -1, 64)
	case time.Time:
		return "'" + val.Format(timeLayout) + "'"
	case []byte:
		return ls.bytes(val)
	case fmt.Stringer:
		return ls.quoteString(val.String())
	default:
		return ls.quoteString(fmt.Sprint(val))
	}
}

func (ls literalStyle) quoteString(s string) string {
	if ls.quote != nil {
		return ls.quote(s)
	}
	return quoteString(s)
}

func quoteString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// quoteBackslashString is for servers that treat backslash as an escape
// inside string literals. Backslashes are doubled before quotes.
func quoteBackslashString(s string) string {
	return quoteString(strings.ReplaceAll(s, `\`, `\\`))
}
