package attr

import (
	"math"
	"strconv"
	"strings"
)

// ToString converts a parsed scalar back into text. Numbers and booleans are
// formatted; maps and lists are rejected.
func ToString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case bool, int, int32, int64, uint, uint64, float32, float64:
		return Format(t)
	}
	return "", false
}

func ToInt(v any) (int64, bool) {
	switch t := v.(type) {
	case int:
		return int64(t), true
	case int32:
		return int64(t), true
	case int64:
		return t, true
	case uint:
		return int64(t), true
	case uint64:
		if t > math.MaxInt64 {
			return 0, false
		}
		return int64(t), true
	case float64:
		if !isWhole(t) {
			return 0, false
		}
		return int64(t), true
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		return n, err == nil
	}
	return 0, false
}

func ToFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case int:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint:
		return float64(t), true
	case uint64:
		return float64(t), true
	case float32:
		return float64(t), isFinite(float64(t))
	case float64:
		return t, isFinite(t)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil && isFinite(f)
	}
	return 0, false
}

func ToBool(v any) (bool, bool) {
	switch t := v.(type) {
	case bool:
		return t, true
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(t))
		return b, err == nil
	}
	return false, false
}

// ToList splits a separated string into trimmed, non-empty items. A single
// scalar becomes a one-item list.
func ToList(v any, sep string) []string {
	switch items := v.(type) {
	case []any:
		var out []string
		for _, item := range items {
			out = append(out, ToList(item, sep)...)
		}
		return out
	case []string:
		var out []string
		for _, item := range items {
			out = append(out, ToList(item, sep)...)
		}
		return out
	}

	s, ok := ToString(v)
	if !ok {
		return nil
	}

	var out []string
	for _, part := range splitList(s, sep) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// ToFloats is ToList followed by ToFloat on every item. Any bad item rejects
// the whole list.
func ToFloats(v any, sep string) ([]float64, bool) {
	items := ToList(v, sep)
	if len(items) == 0 {
		return nil, false
	}
	out := make([]float64, 0, len(items))
	for _, item := range items {
		f, ok := ToFloat(item)
		if !ok {
			return nil, false
		}
		out = append(out, f)
	}
	return out, true
}

func splitList(s, sep string) []string {
	if strings.TrimSpace(sep) == "" {
		return strings.Fields(s)
	}
	return strings.Split(s, sep)
}
