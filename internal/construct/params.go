package construct

import (
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/blacksmoke26/dawn-of-man-generator-sub003/internal/attr"
	"github.com/blacksmoke26/dawn-of-man-generator-sub003/internal/xmlnode"
)

// Kind is the value type of a condition or action parameter.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
	// KindList is a comma-separated list of strings.
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindList:
		return "list"
	default:
		return "string"
	}
}

// ParamSpec describes one attribute of a condition or action type.
type ParamSpec struct {
	Name     string `json:"name"`
	Kind     Kind   `json:"kind"`
	Required bool   `json:"required,omitempty"`
}

// Params are the attributes of a general condition or an action, keyed by
// attribute name.
type Params map[string]any

const listSeparator = ","

// coerce converts v to the Go type used for kind. It reports false when v
// is absent or cannot be converted.
func coerce(kind Kind, v any) (any, bool) {
	switch kind {
	case KindInt:
		return attr.ToInt(v)
	case KindFloat:
		return attr.ToFloat(v)
	case KindBool:
		return attr.ToBool(v)
	case KindList:
		items := attr.ToList(v, listSeparator)
		return items, len(items) > 0
	default:
		s, ok := attr.ToString(v)
		if !ok || strings.TrimSpace(s) == "" {
			return nil, false
		}
		return s, true
	}
}

// renderParams formats params in declared order followed by any extra params in
// name order. It fails when a required param is missing.
func renderParams(specs []ParamSpec, params Params) ([]string, bool) {
	var pairs attr.Pairs
	known := make(map[string]struct{}, len(specs))

	for _, spec := range specs {
		known[spec.Name] = struct{}{}
		v, ok := coerce(spec.Kind, params[spec.Name])
		if !ok {
			if spec.Required {
				return nil, false
			}
			continue
		}
		pairs.Add(spec.Name, v)
	}

	extra := lo.Filter(lo.Keys(map[string]any(params)), func(k string, _ int) bool {
		_, isKnown := known[k]
		return !isKnown && k != "type" && strings.TrimSpace(k) != ""
	})
	sort.Strings(extra)
	for _, k := range extra {
		pairs.Add(k, params[k])
	}

	return pairs, true
}

// decodeParams reads every scalar attribute of n except the discriminant.
// Known params are converted to their kind and dropped when that fails.
func decodeParams(specs []ParamSpec, n xmlnode.Node) Params {
	byName := lo.KeyBy(specs, func(s ParamSpec) string { return s.Name })

	out := Params{}
	for key, v := range n {
		if key == "type" || key == xmlnode.TextKey {
			continue
		}
		if spec, ok := byName[key]; ok {
			if cv, ok := coerce(spec.Kind, v); ok {
				out[key] = cv
			}
			continue
		}
		switch v.(type) {
		case string, bool, int64, float64:
			out[key] = v
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
