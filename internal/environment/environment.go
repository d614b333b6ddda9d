// Package environment models the <environment> document: terrain noise,
// vegetation, resource prototypes and the four seasons.
package environment

import (
	"strings"

	"github.com/blacksmoke26/dawn-of-man-generator-sub003/internal/attr"
	"github.com/blacksmoke26/dawn-of-man-generator-sub003/internal/construct"
	"github.com/blacksmoke26/dawn-of-man-generator-sub003/internal/template"
)

// RootTag is the root element of an environment document.
const RootTag = "environment"

// Top-level element names.
const (
	KeyNoiseAmplitudes      = "noise_amplitudes"
	KeyResourceFactor       = "resource_factor"
	KeyDistanceHeightOffset = "distance_height_offset"
	KeyFordDistanceFactor   = "ford_distance_factor"
	KeySunAngleFactor       = "sun_angle_factor"
	KeyBackdropScale        = "backdrop_scale"
	KeyTrees                = "trees"
	KeyDeposits             = "deposits"
	KeyDetritus             = "detritus"
	KeyTreeOverrides        = "tree_override_prototypes"
	KeyDepositOverrides     = "deposit_override_prototypes"
	KeyDetritusOverrides    = "detritus_override_prototypes"
	KeySeasons              = "seasons"
)

const backdropSeparator = ","

// Environment is the structured form of an <environment> document. Every
// field is optional and can be disabled independently.
type Environment struct {
	NoiseAmplitudes      construct.Field[[]float64] `json:"noise_amplitudes"`
	ResourceFactor       construct.Field[float64]   `json:"resource_factor"`
	DistanceHeightOffset construct.Field[float64]   `json:"distance_height_offset"`
	FordDistanceFactor   construct.Field[float64]   `json:"ford_distance_factor"`
	SunAngleFactor       construct.Field[float64]   `json:"sun_angle_factor"`
	BackdropScale        construct.Field[[]float64] `json:"backdrop_scale"`
	Trees                construct.Field[[]string]  `json:"trees"`
	Deposits             construct.Field[[]string]  `json:"deposits"`
	Detritus             construct.Field[[]string]  `json:"detritus"`
	TreeOverrides        construct.Field[Overrides] `json:"tree_override_prototypes"`
	DepositOverrides     construct.Field[Overrides] `json:"deposit_override_prototypes"`
	DetritusOverrides    construct.Field[Overrides] `json:"detritus_override_prototypes"`
	Spring               construct.Field[Season]    `json:"spring"`
	Summer               construct.Field[Season]    `json:"summer"`
	Fall                 construct.Field[Season]    `json:"fall"`
	Winter               construct.Field[Season]    `json:"winter"`
}

func (e *Environment) Kind() string { return RootTag }

// Season returns the field holding the season id.
func (e *Environment) Season(id SeasonID) *construct.Field[Season] {
	switch id {
	case Spring:
		return &e.Spring
	case Summer:
		return &e.Summer
	case Fall:
		return &e.Fall
	case Winter:
		return &e.Winter
	}
	return nil
}

// Render writes the whole <environment> element. Disabled and absent fields
// are left out.
func (e *Environment) Render() string {
	parts := []string{
		construct.FieldValue(e.NoiseAmplitudes, func(v []float64) string {
			return construct.RenderValues(KeyNoiseAmplitudes, v)
		}),
		construct.FieldValue(e.ResourceFactor, func(v float64) string {
			return construct.RenderValue(KeyResourceFactor, v)
		}),
		construct.FieldValue(e.DistanceHeightOffset, func(v float64) string {
			return construct.RenderValue(KeyDistanceHeightOffset, v)
		}),
		construct.FieldValue(e.FordDistanceFactor, func(v float64) string {
			return construct.RenderValue(KeyFordDistanceFactor, v)
		}),
		construct.FieldValue(e.SunAngleFactor, func(v float64) string {
			return construct.RenderValue(KeySunAngleFactor, v)
		}),
		construct.FieldValue(e.BackdropScale, renderBackdrop),
		construct.FieldValue(e.Trees, func(v []string) string {
			return construct.RenderValues(KeyTrees, v)
		}),
		construct.FieldValue(e.Deposits, func(v []string) string {
			return construct.RenderValues(KeyDeposits, v)
		}),
		construct.FieldValue(e.Detritus, func(v []string) string {
			return construct.RenderValues(KeyDetritus, v)
		}),
		construct.FieldValue(e.TreeOverrides, func(v Overrides) string {
			return v.render(KeyTreeOverrides, "tree_override_prototype")
		}),
		construct.FieldValue(e.DepositOverrides, func(v Overrides) string {
			return v.render(KeyDepositOverrides, "deposit_override_prototype")
		}),
		construct.FieldValue(e.DetritusOverrides, func(v Overrides) string {
			return v.render(KeyDetritusOverrides, "detritus_override_prototype")
		}),
		e.renderSeasons(),
	}
	return template.Element(RootTag, "", nil, strings.Join(parts, ""))
}

func renderBackdrop(v []float64) string {
	var pairs attr.Pairs
	pairs.AddList("value", v, backdropSeparator)
	if len(pairs) == 0 {
		return ""
	}
	return template.Element(KeyBackdropScale, "", pairs, "")
}

// renderSeasons writes enabled seasons in SeasonOrder. Each slot forces its
// own id.
func (e *Environment) renderSeasons() string {
	var b strings.Builder
	for _, id := range SeasonOrder {
		s, ok := e.Season(id).Get()
		if !ok {
			continue
		}
		s.ID = id
		b.WriteString(construct.Text(s, false))
	}
	return template.Wrap(KeySeasons, b.String())
}
