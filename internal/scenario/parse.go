package scenario

import (
	"strings"

	"github.com/samber/lo"

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

// DefaultNullResolver resolves list keys to an empty sequence and every
// other key to an empty mapping.
func DefaultNullResolver(key string) any {
	if lo.Contains(ListKeys, key) {
		return []any{}
	}
	return xmlnode.Node{}
}

// FromNode builds a Scenario from the children of a parsed <scenario>
// element. Unknown keys are ignored and values that do not convert leave
// their field unset.
func FromNode(root xmlnode.Node, opts Options) *Scenario {
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

	return &Scenario{
		GroupID:             stringField(get(KeyGroupID)),
		Category:            stringField(get(KeyCategory)),
		RequiredScenario:    stringField(get(KeyRequiredScenario)),
		RequiredMilestones:  intField(get(KeyRequiredMilestones)),
		Size:                intField(get(KeySize)),
		Visible:             boolField(get(KeyVisible)),
		ShowCompletionIcon:  boolField(get(KeyShowCompletionIcon)),
		HardcoreModeAllowed: boolField(get(KeyHardcoreModeAllowed)),
		NomadModeAllowed:    boolField(get(KeyNomadModeAllowed)),

		Locations:  listField(get(KeyLocations), "location", construct.LocationFromNode),
		Goals:      listField(get(KeyGoals), "goal", construct.GoalFromNode),
		Milestones: listField(get(KeyMilestones), "milestone", construct.MilestoneFromNode),
		Events:     listField(get(KeyEvents), "event", construct.EventFromNode),
		Disasters:  listField(get(KeyDisasters), "disaster", construct.DisasterFromNode),
		Strings:    listField(get(KeyStrings), construct.StringTag, construct.StringFromNode),
	}
}

func scalar(v any) (any, bool) {
	items := xmlnode.List(v)
	if len(items) == 0 {
		return nil, false
	}
	return construct.ValueOf(items[0])
}

func stringField(v any) construct.Field[string] {
	raw, ok := scalar(v)
	if !ok {
		return construct.Field[string]{}
	}
	s, ok := attr.ToString(raw)
	if !ok || strings.TrimSpace(s) == "" {
		return construct.Field[string]{}
	}
	return construct.Some(strings.TrimSpace(s))
}

func intField(v any) construct.Field[int64] {
	raw, ok := scalar(v)
	if !ok {
		return construct.Field[int64]{}
	}
	n, ok := attr.ToInt(raw)
	if !ok {
		return construct.Field[int64]{}
	}
	return construct.Some(n)
}

func boolField(v any) construct.Field[bool] {
	raw, ok := scalar(v)
	if !ok {
		return construct.Field[bool]{}
	}
	b, ok := attr.ToBool(raw)
	if !ok {
		return construct.Field[bool]{}
	}
	return construct.Some(b)
}

// listField decodes a plural wrapper. A mapping or a sequence yields a
// present list, possibly empty; any other shape leaves the field unset.
func listField[T construct.Renderable](v any, tag string, decode func(xmlnode.Node) (T, bool)) construct.Field[[]construct.Entry[T]] {
	switch v.(type) {
	case xmlnode.Node, map[string]any, []any:
	default:
		return construct.Field[[]construct.Entry[T]]{}
	}
	entries := construct.ListFromNode(v, tag, decode)
	if entries == nil {
		entries = []construct.Entry[T]{}
	}
	return construct.Some(entries)
}
