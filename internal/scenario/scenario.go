// Package scenario models the <scenario> document: metadata, locations,
// goals, milestones, events, disasters and localized strings.
package scenario

import (
	"strings"

	"github.com/blacksmoke26/dawn-of-man-generator-sub003/internal/construct"
	"github.com/blacksmoke26/dawn-of-man-generator-sub003/internal/template"
)

// RootTag is the root element of a scenario document.
const RootTag = "scenario"

const (
	KeyGroupID             = "group_id"
	KeyCategory            = "category"
	KeyRequiredScenario    = "required_scenario"
	KeyRequiredMilestones  = "required_milestones"
	KeySize                = "size"
	KeyVisible             = "visible"
	KeyShowCompletionIcon  = "show_completion_icon"
	KeyHardcoreModeAllowed = "hardcore_mode_allowed"
	KeyNomadModeAllowed    = "nomad_mode_allowed"
	KeyLocations           = "locations"
	KeyGoals               = "goals"
	KeyMilestones          = "milestones"
	KeyEvents              = "events"
	KeyDisasters           = "disasters"
	KeyStrings             = "strings"
)

// ListKeys are the keys whose children repeat.
var ListKeys = []string{KeyLocations, KeyGoals, KeyMilestones, KeyEvents, KeyDisasters, KeyStrings}

// Scenario is the structured form of a <scenario> document.
type Scenario struct {
	GroupID             construct.Field[string] `json:"group_id"`
	Category            construct.Field[string] `json:"category"`
	RequiredScenario    construct.Field[string] `json:"required_scenario"`
	RequiredMilestones  construct.Field[int64]  `json:"required_milestones"`
	Size                construct.Field[int64]  `json:"size"`
	Visible             construct.Field[bool]   `json:"visible"`
	ShowCompletionIcon  construct.Field[bool]   `json:"show_completion_icon"`
	HardcoreModeAllowed construct.Field[bool]   `json:"hardcore_mode_allowed"`
	NomadModeAllowed    construct.Field[bool]   `json:"nomad_mode_allowed"`

	Locations  construct.Field[[]construct.Entry[construct.Location]]        `json:"locations"`
	Goals      construct.Field[[]construct.Entry[construct.Goal]]            `json:"goals"`
	Milestones construct.Field[[]construct.Entry[construct.Milestone]]       `json:"milestones"`
	Events     construct.Field[[]construct.Entry[construct.Event]]           `json:"events"`
	Disasters  construct.Field[[]construct.Entry[construct.Disaster]]        `json:"disasters"`
	Strings    construct.Field[[]construct.Entry[construct.LocalizedString]] `json:"strings"`
}

func (s *Scenario) Kind() string { return RootTag }

func valueOf[T any](tag string) func(T) string {
	return func(v T) string { return construct.RenderValue(tag, v) }
}

// Render writes the whole <scenario> element. Disabled and absent fields
// are left out, and so are lists with nothing renderable in them.
func (s *Scenario) Render() string {
	parts := []string{
		construct.FieldValue(s.GroupID, valueOf[string](KeyGroupID)),
		construct.FieldValue(s.Category, valueOf[string](KeyCategory)),
		construct.FieldValue(s.RequiredScenario, valueOf[string](KeyRequiredScenario)),
		construct.FieldValue(s.RequiredMilestones, valueOf[int64](KeyRequiredMilestones)),
		construct.FieldValue(s.Size, valueOf[int64](KeySize)),
		construct.FieldValue(s.Visible, valueOf[bool](KeyVisible)),
		construct.FieldValue(s.ShowCompletionIcon, valueOf[bool](KeyShowCompletionIcon)),
		construct.FieldValue(s.HardcoreModeAllowed, valueOf[bool](KeyHardcoreModeAllowed)),
		construct.FieldValue(s.NomadModeAllowed, valueOf[bool](KeyNomadModeAllowed)),
		construct.FieldValue(s.Locations, func(v []construct.Entry[construct.Location]) string {
			return construct.RenderLocations(v, false)
		}),
		construct.FieldValue(s.Goals, func(v []construct.Entry[construct.Goal]) string {
			return construct.RenderGoals(v, false)
		}),
		construct.FieldValue(s.Milestones, func(v []construct.Entry[construct.Milestone]) string {
			return construct.RenderMilestones(v, false)
		}),
		construct.FieldValue(s.Events, func(v []construct.Entry[construct.Event]) string {
			return construct.RenderEvents(v, false)
		}),
		construct.FieldValue(s.Disasters, func(v []construct.Entry[construct.Disaster]) string {
			return construct.RenderDisasters(v, false)
		}),
		construct.FieldValue(s.Strings, func(v []construct.Entry[construct.LocalizedString]) string {
			return construct.RenderStrings(v, false)
		}),
	}
	return template.Element(RootTag, "", nil, strings.Join(parts, ""))
}
