package environment

import (
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/blacksmoke26/dawn-of-man-generator-sub003/internal/attr"
	"github.com/blacksmoke26/dawn-of-man-generator-sub003/internal/template"
	"github.com/blacksmoke26/dawn-of-man-generator-sub003/internal/xmlnode"
)

// PrototypeOverride adjusts where a tree, deposit or detritus prototype
// spawns.
type PrototypeOverride struct {
	MinAltitude *float64 `json:"min_altitude,omitempty"`
	MaxAltitude *float64 `json:"max_altitude,omitempty"`
	MinAngle    *float64 `json:"min_angle,omitempty"`
	MaxAngle    *float64 `json:"max_angle,omitempty"`
	Density     *float64 `json:"density,omitempty"`
}

// Overrides maps a prototype id to its override.
type Overrides map[string]PrototypeOverride

func (o PrototypeOverride) pairs(id string) attr.Pairs {
	var pairs attr.Pairs
	pairs.Add("id", id)
	pairs.Add("min_altitude", o.MinAltitude)
	pairs.Add("max_altitude", o.MaxAltitude)
	pairs.Add("min_angle", o.MinAngle)
	pairs.Add("max_angle", o.MaxAngle)
	pairs.Add("density", o.Density)
	return pairs
}

// render writes the overrides sorted by id inside wrapper. Overrides with a
// blank id or no values are dropped.
func (o Overrides) render(wrapper, tag string) string {
	ids := lo.Keys(map[string]PrototypeOverride(o))
	sort.Strings(ids)

	var b strings.Builder
	for _, id := range ids {
		if strings.TrimSpace(id) == "" {
			continue
		}
		pairs := o[id].pairs(id)
		if len(pairs) < 2 {
			continue
		}
		b.WriteString(template.Element(tag, "", pairs, ""))
	}
	return template.Wrap(wrapper, b.String())
}

func overridesFromNode(wrapper xmlnode.Node, tag string) Overrides {
	out := Overrides{}
	for _, n := range xmlnode.Nodes(wrapper[tag]) {
		id, ok := attr.ToString(n["id"])
		if !ok || strings.TrimSpace(id) == "" {
			continue
		}
		out[id] = PrototypeOverride{
			MinAltitude: floatPtr(n["min_altitude"]),
			MaxAltitude: floatPtr(n["max_altitude"]),
			MinAngle:    floatPtr(n["min_angle"]),
			MaxAngle:    floatPtr(n["max_angle"]),
			Density:     floatPtr(n["density"]),
		}
	}
	return out
}

func floatPtr(v any) *float64 {
	f, ok := attr.ToFloat(v)
	if !ok {
		return nil
	}
	return &f
}
