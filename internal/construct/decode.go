package construct

import (
	"strings"

	"github.com/blacksmoke26/dawn-of-man-generator-sub003/internal/attr"
	"github.com/blacksmoke26/dawn-of-man-generator-sub003/internal/xmlnode"
)

// decodeAll decodes nodes, skipping the ones decode rejects.
func decodeAll[T Renderable](nodes []xmlnode.Node, decode func(xmlnode.Node) (T, bool)) []Entry[T] {
	var out []Entry[T]
	for _, n := range nodes {
		if v, ok := decode(n); ok {
			out = append(out, Of(v))
		}
	}
	return out
}

// ListFromNode decodes the <tag> children of a plural wrapper value such as
// the value stored under "goals".
func ListFromNode[T Renderable](wrapper any, tag string, decode func(xmlnode.Node) (T, bool)) []Entry[T] {
	var out []Entry[T]
	for _, w := range xmlnode.Nodes(wrapper) {
		out = append(out, decodeAll(xmlnode.Nodes(w[tag]), decode)...)
	}
	return out
}

func stringAttr(n xmlnode.Node, key string) string {
	s, ok := attr.ToString(n[key])
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

func intAttr(n xmlnode.Node, key string) (int64, bool) {
	return attr.ToInt(n[key])
}

func boolAttr(n xmlnode.Node, key string) (bool, bool) {
	return attr.ToBool(n[key])
}
