package construct

import (
	"strings"

	"github.com/blacksmoke26/dawn-of-man-generator-sub003/internal/attr"
	"github.com/blacksmoke26/dawn-of-man-generator-sub003/internal/template"
	"github.com/blacksmoke26/dawn-of-man-generator-sub003/internal/xmlnode"
)

// StringTag is the element name of a localized string. Its text must be
// parsed without type inference.
const StringTag = "string"

// LocalizedString is one key/text pair of the <strings> table.
type LocalizedString struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

func (s LocalizedString) Render() (string, bool) {
	if strings.TrimSpace(s.ID) == "" || strings.TrimSpace(s.Text) == "" {
		return "", false
	}
	var pairs attr.Pairs
	pairs.Add("id", s.ID)
	return template.Element(StringTag, "", pairs, attr.EscapeText(s.Text)), true
}

func RenderString(s LocalizedString, disabled bool) string {
	return Text(s, disabled)
}

func RenderStrings(entries []Entry[LocalizedString], disabled bool) string {
	return RenderList("strings", entries, disabled)
}

func StringFromNode(n xmlnode.Node) (LocalizedString, bool) {
	s := LocalizedString{ID: stringAttr(n, "id"), Text: stringAttr(n, xmlnode.TextKey)}
	if s.ID == "" || s.Text == "" {
		return LocalizedString{}, false
	}
	return s, true
}

// Disaster schedules a recurring natural disaster.
type Disaster struct {
	Type     string `json:"type"`
	Period   string `json:"period"`
	Variance string `json:"variance"`
}

func (d Disaster) Render() (string, bool) {
	if strings.TrimSpace(d.Type) == "" || strings.TrimSpace(d.Period) == "" || strings.TrimSpace(d.Variance) == "" {
		return "", false
	}
	var pairs attr.Pairs
	pairs.Add("period", d.Period)
	pairs.Add("variance", d.Variance)
	return template.Element("disaster", attr.Escape(d.Type), pairs, ""), true
}

func RenderDisaster(d Disaster, disabled bool) string {
	return Text(d, disabled)
}

func RenderDisasters(entries []Entry[Disaster], disabled bool) string {
	return RenderList("disasters", entries, disabled)
}

func DisasterFromNode(n xmlnode.Node) (Disaster, bool) {
	d := Disaster{
		Type:     stringAttr(n, "type"),
		Period:   stringAttr(n, "period"),
		Variance: stringAttr(n, "variance"),
	}
	if d.Type == "" {
		return Disaster{}, false
	}
	return d, true
}
