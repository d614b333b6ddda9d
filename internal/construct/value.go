package construct

import (
	"github.com/blacksmoke26/dawn-of-man-generator-sub003/internal/attr"
	"github.com/blacksmoke26/dawn-of-man-generator-sub003/internal/template"
	"github.com/blacksmoke26/dawn-of-man-generator-sub003/internal/xmlnode"
)

// NullResolver supplies the value used for a top-level key that is absent
// or null in the parsed tree.
type NullResolver func(key string) any

// RenderValue renders <tag value="v"/>, or "" when v is not worth emitting.
func RenderValue(tag string, v any) string {
	var pairs attr.Pairs
	pairs.Add("value", v)
	if len(pairs) == 0 {
		return ""
	}
	return template.Element(tag, "", pairs, "")
}

// RenderValues renders <tag values="a b c"/> with a space-separated list.
func RenderValues(tag string, v any) string {
	var pairs attr.Pairs
	pairs.AddList("values", v, " ")
	if len(pairs) == 0 {
		return ""
	}
	return template.Element(tag, "", pairs, "")
}

// FieldValue renders an enabled field with fn, or returns "".
func FieldValue[T any](f Field[T], fn func(T) string) string {
	v, ok := f.Get()
	if !ok {
		return ""
	}
	return fn(v)
}

// ValueOf reads the value attribute of a <tag value="..."/> element.
func ValueOf(v any) (any, bool) {
	n, ok := v.(xmlnode.Node)
	if !ok {
		return nil, false
	}
	val, ok := n["value"]
	return val, ok
}

// ValuesOf reads the values attribute of a <tag values="..."/> element.
func ValuesOf(v any) (any, bool) {
	n, ok := v.(xmlnode.Node)
	if !ok {
		return nil, false
	}
	val, ok := n["values"]
	return val, ok
}
