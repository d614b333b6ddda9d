package environment

import (
	"github.com/blacksmoke26/dawn-of-man-generator-sub003/internal/attr"
	"github.com/blacksmoke26/dawn-of-man-generator-sub003/internal/construct"
	"github.com/blacksmoke26/dawn-of-man-generator-sub003/internal/xmlnode"
)

// Options tunes FromNode.
type Options struct {
	// NullResolver supplies values for absent or empty keys. Nil means
	// DefaultNullResolver.
	NullResolver construct.NullResolver
}

// DefaultNullResolver resolves every environment key to an empty mapping.
func DefaultNullResolver(string) any { return xmlnode.Node{} }

// FromNode builds an Environment from the children of a parsed
// <environment> element. Unknown keys are ignored and values that do not
// convert leave their field unset.
func FromNode(root xmlnode.Node, opts Options) *Environment {
	resolve := opts.NullResolver
	if resolve == nil {
		resolve = DefaultNullResolver
	}
	get := func(key string) any {
		v, ok := root[key]
		if !ok || v == nil || v == "" {
			return resolve(key)
		}
		return v
	}

	e := &Environment{}
	e.NoiseAmplitudes = floatsField(get(KeyNoiseAmplitudes), construct.ValuesOf, " ")
	e.ResourceFactor = floatField(get(KeyResourceFactor))
	e.DistanceHeightOffset = floatField(get(KeyDistanceHeightOffset))
	e.FordDistanceFactor = floatField(get(KeyFordDistanceFactor))
	e.SunAngleFactor = floatField(get(KeySunAngleFactor))
	e.BackdropScale = floatsField(get(KeyBackdropScale), construct.ValueOf, backdropSeparator)
	e.Trees = namesField(get(KeyTrees))
	e.Deposits = namesField(get(KeyDeposits))
	e.Detritus = namesField(get(KeyDetritus))
	e.TreeOverrides = overridesField(get(KeyTreeOverrides), "tree_override_prototype")
	e.DepositOverrides = overridesField(get(KeyDepositOverrides), "deposit_override_prototype")
	e.DetritusOverrides = overridesField(get(KeyDetritusOverrides), "detritus_override_prototype")

	if seasons, ok := firstNode(get(KeySeasons)); ok {
		for _, n := range xmlnode.Nodes(seasons["season"]) {
			s, ok := SeasonFromNode(n)
			if !ok {
				continue
			}
			*e.Season(s.ID) = construct.Some(s)
		}
	}
	return e
}

func firstNode(v any) (xmlnode.Node, bool) {
	nodes := xmlnode.Nodes(v)
	if len(nodes) == 0 {
		return nil, false
	}
	return nodes[0], true
}

func floatField(v any) construct.Field[float64] {
	raw, ok := construct.ValueOf(first(v))
	if !ok {
		return construct.Field[float64]{}
	}
	f, ok := attr.ToFloat(raw)
	if !ok {
		return construct.Field[float64]{}
	}
	return construct.Some(f)
}

func floatsField(v any, read func(any) (any, bool), sep string) construct.Field[[]float64] {
	raw, ok := read(first(v))
	if !ok {
		return construct.Field[[]float64]{}
	}
	fs, ok := attr.ToFloats(raw, sep)
	if !ok {
		return construct.Field[[]float64]{}
	}
	return construct.Some(fs)
}

func namesField(v any) construct.Field[[]string] {
	raw, ok := construct.ValuesOf(first(v))
	if !ok {
		return construct.Field[[]string]{}
	}
	names := attr.ToList(raw, " ")
	if len(names) == 0 {
		return construct.Field[[]string]{}
	}
	return construct.Some(names)
}

// overridesField is set whenever the value is a mapping, so the resolved
// empty mapping yields an empty, present override table.
func overridesField(v any, tag string) construct.Field[Overrides] {
	n, ok := firstNode(v)
	if !ok {
		return construct.Field[Overrides]{}
	}
	return construct.Some(overridesFromNode(n, tag))
}

// first unwraps a repeated element to its first occurrence.
func first(v any) any {
	items := xmlnode.List(v)
	if len(items) == 0 {
		return nil
	}
	return items[0]
}
