package types

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Render returns "[<TypeName>] (<id>) {<fields>}". The field map lists id,
// created_at and updated_at, then the dynamic fields in insertion order, as a
// dictionary literal: quoted strings, bare numbers, True/False and None.
func (b *BaseModel) Render() string {
	var sb strings.Builder
	sb.WriteByte('{')
	writePair(&sb, KeyID, b.id, true)
	writePair(&sb, KeyCreatedAt, FormatTimestamp(b.createdAt), false)
	writePair(&sb, KeyUpdatedAt, FormatTimestamp(b.updatedAt), false)
	for _, k := range b.fields.keys {
		writePair(&sb, k, b.fields.values[k], false)
	}
	sb.WriteByte('}')
	return fmt.Sprintf("[%s] (%s) %s", b.typeName, b.id, sb.String())
}

func (b *BaseModel) String() string { return b.Render() }

func writePair(sb *strings.Builder, key string, value any, first bool) {
	if !first {
		sb.WriteString(", ")
	}
	sb.WriteString(quote(key))
	sb.WriteString(": ")
	sb.WriteString(literal(value))
}

// literal renders one value in dictionary-literal form.
func literal(v any) string {
	switch x := v.(type) {
	case nil:
		return "None"
	case string:
		return quote(x)
	case bool:
		if x {
			return "True"
		}
		return "False"
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return formatFloat(x)
	case []any:
		parts := make([]string, len(x))
		for i, e := range x {
			parts[i] = literal(e)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = quote(k) + ": " + literal(x[k])
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return fmt.Sprintf("%v", v)
	}
}

// quote wraps s in single quotes, switching to double quotes when s holds a
// single quote but no double quote.
func quote(s string) string {
	q := byte('\'')
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		q = '"'
	}
	var sb strings.Builder
	sb.WriteByte(q)
	for _, r := range s {
		switch {
		case r == '\\':
			sb.WriteString(`\\`)
		case r == rune(q):
			sb.WriteByte('\\')
			sb.WriteRune(r)
		case r == '\n':
			sb.WriteString(`\n`)
		case r == '\r':
			sb.WriteString(`\r`)
		case r == '\t':
			sb.WriteString(`\t`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte(q)
	return sb.String()
}

// formatFloat writes f in its shortest form, always with a fraction or an
// exponent so it reads back as a float.
func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	}
	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
