package construct

import (
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/blacksmoke26/dawn-of-man-generator-sub003/internal/attr"
	"github.com/blacksmoke26/dawn-of-man-generator-sub003/internal/template"
	"github.com/blacksmoke26/dawn-of-man-generator-sub003/internal/xmlnode"
)

// Event fires its actions once its root condition holds.
type Event struct {
	ID        string           `json:"id,omitempty"`
	Flags     map[string]bool  `json:"flags,omitempty"`
	Condition Entry[Condition] `json:"condition"`
	Actions   []Entry[Action]  `json:"actions"`
}

// Render needs a rendered condition and at least one rendered action.
func (e Event) Render() (string, bool) {
	cond, ok := e.Condition.Render()
	if !ok || strings.TrimSpace(cond) == "" {
		return "", false
	}
	actions := RenderActions(e.Actions, false)
	if actions == "" {
		return "", false
	}

	var pairs attr.Pairs
	pairs.Add("id", strings.TrimSpace(e.ID))
	flags := lo.Keys(e.Flags)
	sort.Strings(flags)
	for _, name := range flags {
		if name == "id" {
			continue
		}
		pairs.Add(name, e.Flags[name])
	}

	return template.Element("event", "", pairs, cond+actions), true
}

func RenderEvent(e Event, disabled bool) string {
	return Text(e, disabled)
}

func RenderEvents(entries []Entry[Event], disabled bool) string {
	return RenderList("events", entries, disabled)
}

// EventFromNode decodes an <event>. Every boolean attribute other than id is
// read as a flag.
func EventFromNode(n xmlnode.Node) (Event, bool) {
	e := Event{ID: stringAttr(n, "id")}

	if c, ok := n.Child("condition"); ok {
		if cond, ok := ConditionFromNode(c); ok {
			e.Condition = Of(cond)
		}
	}
	e.Actions = ListFromNode(n["actions"], "action", ActionFromNode)

	for key, v := range n {
		if key == "id" {
			continue
		}
		if b, ok := v.(bool); ok {
			if e.Flags == nil {
				e.Flags = map[string]bool{}
			}
			e.Flags[key] = b
		}
	}
	return e, true
}
