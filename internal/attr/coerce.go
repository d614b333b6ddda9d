// Package attr decides whether a field value is worth emitting and formats
// it as an XML attribute value. It also converts parsed values back into the
// Go types the documents use.
package attr

import (
	"math"
	"reflect"
	"strconv"
	"strings"
	"unicode"
)

var (
	attrEscaper = strings.NewReplacer(`&`, "&amp;", `<`, "&lt;", `>`, "&gt;", `"`, "&quot;", `'`, "&apos;")
	textEscaper = strings.NewReplacer(`&`, "&amp;", `<`, "&lt;", `>`, "&gt;")
)

// Escape makes s safe inside a double-quoted attribute.
func Escape(s string) string { return attrEscaper.Replace(s) }

// EscapeText makes s safe as element text.
func EscapeText(s string) string { return textEscaper.Replace(s) }

func IsBoolean(v any) bool {
	_, ok := v.(bool)
	return ok
}

// IsInteger reports whether v is an integer, including floats with no
// fractional part.
func IsInteger(v any) bool {
	switch t := v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	case float32:
		return isWhole(float64(t))
	case float64:
		return isWhole(t)
	}
	return false
}

func IsNumber(v any) bool {
	switch t := v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	case float32:
		return isFinite(float64(t))
	case float64:
		return isFinite(t)
	}
	return false
}

func IsNonEmptyString(v any) bool {
	s, ok := v.(string)
	return ok && strings.TrimSpace(s) != ""
}

// IsPlainObject reports whether v is a string-keyed map.
func IsPlainObject(v any) bool {
	if v == nil {
		return false
	}
	rt := reflect.TypeOf(v)
	return rt.Kind() == reflect.Map && rt.Key().Kind() == reflect.String
}

func isFinite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

func isWhole(f float64) bool { return isFinite(f) && f == math.Trunc(f) }

// Format renders v as an unescaped attribute value. The second result is
// false when v should be omitted: nil, blank strings, empty lists, NaN.
// Lists are comma-joined.
func Format(v any) (string, bool) {
	return FormatList(v, ",")
}

// FormatList is Format with an explicit list separator.
func FormatList(v any, sep string) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", false
	case string:
		if strings.TrimSpace(t) == "" {
			return "", false
		}
		return t, true
	case bool:
		return strconv.FormatBool(t), true
	case int:
		return strconv.Itoa(t), true
	case int32:
		return strconv.FormatInt(int64(t), 10), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case uint:
		return strconv.FormatUint(uint64(t), 10), true
	case uint64:
		return strconv.FormatUint(t, 10), true
	case float32:
		return formatFloat(float64(t))
	case float64:
		return formatFloat(t)
	case *string:
		if t == nil {
			return "", false
		}
		return FormatList(*t, sep)
	case *bool:
		if t == nil {
			return "", false
		}
		return FormatList(*t, sep)
	case *int64:
		if t == nil {
			return "", false
		}
		return FormatList(*t, sep)
	case *float64:
		if t == nil {
			return "", false
		}
		return FormatList(*t, sep)
	case []string:
		return joinFormatted(len(t), func(i int) any { return t[i] }, sep)
	case []int64:
		return joinFormatted(len(t), func(i int) any { return t[i] }, sep)
	case []float64:
		return joinFormatted(len(t), func(i int) any { return t[i] }, sep)
	case []any:
		return joinFormatted(len(t), func(i int) any { return t[i] }, sep)
	}
	return "", false
}

func joinFormatted(n int, at func(int) any, sep string) (string, bool) {
	parts := make([]string, 0, n)
	for i := 0; i < n; i++ {
		if s, ok := Format(at(i)); ok {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return "", false
	}
	return strings.Join(parts, sep), true
}

func formatFloat(f float64) (string, bool) {
	if !isFinite(f) {
		return "", false
	}
	return strconv.FormatFloat(f, 'f', -1, 64), true
}

// IsName reports whether s can be used as an XML attribute name.
func IsName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || r == ':' || unicode.IsLetter(r):
		case i > 0 && (r == '-' || r == '.' || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r)):
		default:
			return false
		}
	}
	return true
}

// Pair renders name="value" with the value escaped. It reports false when the
// name is not an XML name or the value fails Format.
func Pair(name string, v any) (string, bool) {
	if !IsName(name) {
		return "", false
	}
	s, ok := Format(v)
	if !ok {
		return "", false
	}
	return name + `="` + Escape(s) + `"`, true
}

// ListPair is Pair with an explicit list separator.
func ListPair(name string, v any, sep string) (string, bool) {
	if !IsName(name) {
		return "", false
	}
	s, ok := FormatList(v, sep)
	if !ok {
		return "", false
	}
	return name + `="` + Escape(s) + `"`, true
}

// Pairs collects the pairs that pass Format, preserving order.
type Pairs []string

// Add appends name="v" when v is worth emitting.
func (p *Pairs) Add(name string, v any) {
	if s, ok := Pair(name, v); ok {
		*p = append(*p, s)
	}
}

// AddList appends a list joined with sep when it is not empty.
func (p *Pairs) AddList(name string, v any, sep string) {
	if s, ok := ListPair(name, v, sep); ok {
		*p = append(*p, s)
	}
}
