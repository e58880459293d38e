package salesforce

import (
	"fmt"
	"strconv"
	"strings"
)

// Builder assembles a SOQL query from typed parts. Caller-supplied values go
// through Where/WhereLike, which quote and escape them; raw query text never
// carries interpolated input.
type Builder struct {
	fields  []string
	object  string
	conds   []string
	orderBy string
	limit   int
}

// NewQuery starts a SELECT over the given sobject with a fixed field list.
func NewQuery(object string, fields ...string) *Builder {
	return &Builder{
		object: object,
		fields: fields,
	}
}

// Where adds an equality or comparison condition with a typed value.
// Supported value types: string, bool, int, float64.
func (b *Builder) Where(field, op string, value any) *Builder {
	b.conds = append(b.conds, fmt.Sprintf("%s %s %s", field, op, renderValue(value)))
	return b
}

// WhereLike adds a LIKE condition matching the pattern anywhere in the field.
// The pattern is escaped before the wildcards are added.
func (b *Builder) WhereLike(field, pattern string) *Builder {
	b.conds = append(b.conds, fmt.Sprintf("%s LIKE '%%%s%%'", field, escapeString(pattern)))
	return b
}

// OrderBy sets the ordering clause. The direction must be "ASC" or "DESC".
func (b *Builder) OrderBy(field, direction string) *Builder {
	b.orderBy = field + " " + direction
	return b
}

// Limit caps the number of returned records.
func (b *Builder) Limit(n int) *Builder {
	b.limit = n
	return b
}

// String renders the query.
func (b *Builder) String() string {
	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(strings.Join(b.fields, ", "))
	sb.WriteString(" FROM ")
	sb.WriteString(b.object)
	if len(b.conds) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(b.conds, " AND "))
	}
	if b.orderBy != "" {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(b.orderBy)
	}
	if b.limit > 0 {
		sb.WriteString(" LIMIT ")
		sb.WriteString(strconv.Itoa(b.limit))
	}
	return sb.String()
}

func renderValue(value any) string {
	switch v := value.(type) {
	case string:
		return "'" + escapeString(v) + "'"
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		// Unknown types are quoted via fmt to stay on the safe side.
		return "'" + escapeString(fmt.Sprint(v)) + "'"
	}
}

// escapeString escapes the SOQL string-literal metacharacters. Backslash
// must be escaped first.
func escapeString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `'`, `\'`)
	return s
}
