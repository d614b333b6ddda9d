package construct

import (
	"fmt"
	"strings"

	"github.com/blacksmoke26/dawn-of-man-generator-sub003/internal/attr"
	"github.com/blacksmoke26/dawn-of-man-generator-sub003/internal/template"
	"github.com/blacksmoke26/dawn-of-man-generator-sub003/internal/xmlnode"
)

const coordSeparator = ","

// Location is a playable map in a scenario.
type Location struct {
	ID          string    `json:"id"`
	Seed        *int64    `json:"seed,omitempty"`
	Environment string    `json:"environment"`
	MapLocation []float64 `json:"map_location"`
	Position    []float64 `json:"position,omitempty"`
	River       *bool     `json:"river,omitempty"`
	Lake        *int64    `json:"lake,omitempty"`
}

// Render needs an id, an environment, a seed and map coordinates. The seed
// is zero-padded to eight digits.
func (l Location) Render() (string, bool) {
	if strings.TrimSpace(l.ID) == "" || strings.TrimSpace(l.Environment) == "" {
		return "", false
	}
	if l.Seed == nil || len(l.MapLocation) == 0 {
		return "", false
	}

	var pairs attr.Pairs
	pairs.Add("id", l.ID)
	pairs.Add("seed", fmt.Sprintf("%08d", *l.Seed))
	pairs.Add("environment", l.Environment)
	pairs.AddList("map_location", l.MapLocation, coordSeparator)
	pairs.AddList("position", l.Position, coordSeparator)
	pairs.Add("river", l.River)
	pairs.Add("lake", l.Lake)

	return template.Element("location", "", pairs, ""), true
}

func RenderLocation(l Location, disabled bool) string {
	return Text(l, disabled)
}

func RenderLocations(entries []Entry[Location], disabled bool) string {
	return RenderList("locations", entries, disabled)
}

func LocationFromNode(n xmlnode.Node) (Location, bool) {
	l := Location{
		ID:          stringAttr(n, "id"),
		Environment: stringAttr(n, "environment"),
	}
	if l.ID == "" {
		return Location{}, false
	}
	if seed, ok := intAttr(n, "seed"); ok {
		l.Seed = &seed
	}
	if coords, ok := attr.ToFloats(n["map_location"], coordSeparator); ok {
		l.MapLocation = coords
	}
	if pos, ok := attr.ToFloats(n["position"], coordSeparator); ok {
		l.Position = pos
	}
	if river, ok := boolAttr(n, "river"); ok {
		l.River = &river
	}
	if lake, ok := intAttr(n, "lake"); ok {
		l.Lake = &lake
	}
	return l, true
}
