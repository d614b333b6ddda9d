// Package xmlnode turns XML text into a generic, JSON-like tree and back into
// display text. It knows nothing about environments or scenarios.
package xmlnode

import "sort"

// TextKey holds the trimmed text of an element that also carries attributes
// or child elements.
const TextKey = "#text"

// Node is one parsed element. Attributes and child elements share the same
// key space. Values are string, int64, float64, bool, Node or []any when an
// element name repeats.
type Node map[string]any

// Get returns the value stored under key.
func (n Node) Get(key string) (any, bool) {
	if n == nil {
		return nil, false
	}
	v, ok := n[key]
	return v, ok
}

// Child returns the element stored under key when it is a Node. A repeated
// element yields its first occurrence.
func (n Node) Child(key string) (Node, bool) {
	v, ok := n.Get(key)
	if !ok {
		return nil, false
	}
	nodes := Nodes(v)
	if len(nodes) == 0 {
		return nil, false
	}
	return nodes[0], true
}

// Keys returns the keys of n in sorted order.
func (n Node) Keys() []string {
	keys := make([]string, 0, len(n))
	for k := range n {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// List normalizes a single value or a repeated sequence into a slice.
func List(v any) []any {
	switch t := v.(type) {
	case nil:
		return nil
	case []any:
		return t
	case []Node:
		out := make([]any, len(t))
		for i, n := range t {
			out[i] = n
		}
		return out
	default:
		return []any{t}
	}
}

// Nodes returns the Node values of v, skipping scalars.
func Nodes(v any) []Node {
	var out []Node
	for _, item := range List(v) {
		switch t := item.(type) {
		case Node:
			out = append(out, t)
		case map[string]any:
			out = append(out, Node(t))
		}
	}
	return out
}

// Root returns the single top-level element of a parsed document.
func (n Node) Root() (string, Node, bool) {
	if len(n) != 1 {
		return "", nil, false
	}
	for name, v := range n {
		if child, ok := v.(Node); ok {
			return name, child, true
		}
		// <scenario/> parses to an empty string
		if s, ok := v.(string); ok && s == "" {
			return name, Node{}, true
		}
		return name, nil, false
	}
	return "", nil, false
}
