// Package template assembles single XML elements from pre-formatted parts.
package template

import "strings"

// Element renders <name type="discriminant" attrs...>inner</name>.
//
// The discriminant, when non-empty, is always the first attribute. Attributes
// are written verbatim in the given order and blank ones are skipped. A blank
// inner body produces a self-closing element. Nothing is escaped here.
func Element(name, discriminant string, attrs []string, inner string) string {
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(name)

	if discriminant != "" {
		b.WriteString(` type="`)
		b.WriteString(discriminant)
		b.WriteByte('"')
	}

	for _, a := range attrs {
		if strings.TrimSpace(a) == "" {
			continue
		}
		b.WriteByte(' ')
		b.WriteString(a)
	}

	if strings.TrimSpace(inner) == "" {
		b.WriteString("/>")
		return b.String()
	}

	b.WriteByte('>')
	b.WriteString(inner)
	b.WriteString("</")
	b.WriteString(name)
	b.WriteByte('>')
	return b.String()
}

// Wrap renders inner inside a plural element, or nothing when inner is blank.
func Wrap(name, inner string) string {
	if strings.TrimSpace(inner) == "" {
		return ""
	}
	return Element(name, "", nil, inner)
}
