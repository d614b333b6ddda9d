package construct

import (
	"sort"
	"strings"

	"github.com/blacksmoke26/dawn-of-man-generator-sub003/internal/attr"
	"github.com/blacksmoke26/dawn-of-man-generator-sub003/internal/template"
	"github.com/blacksmoke26/dawn-of-man-generator-sub003/internal/xmlnode"
)

// Logical condition types.
const (
	ConditionAnd = "And"
	ConditionOr  = "Or"
	ConditionNot = "Not"
)

// General condition types.
const (
	ConditionTimeElapsed              = "TimeElapsed"
	ConditionEntityCountReached       = "EntityCountReached"
	ConditionEntityCountComparison    = "EntityCountComparison"
	ConditionIsTechnologyResearched   = "IsTechnologyResearched"
	ConditionValueEquals              = "ValueEquals"
	ConditionValueReached             = "ValueReached"
	ConditionInitialEvent             = "InitialEvent"
	ConditionAnyTasksActive           = "AnyTasksActive"
	ConditionAnyWorkAreasActive       = "AnyWorkAreasActive"
	ConditionIsGameInteractionPending = "IsGameInteractionPending"
	ConditionInteractionHappened      = "InteractionHappened"
	ConditionScenarioCompleted        = "ScenarioCompleted"
)

var logicalConditions = map[string]struct{}{
	ConditionAnd: {},
	ConditionOr:  {},
	ConditionNot: {},
}

var conditionParams = map[string][]ParamSpec{
	ConditionTimeElapsed: {
		{Name: "timer", Kind: KindString},
		{Name: "value", Kind: KindString, Required: true},
	},
	ConditionEntityCountReached: {
		{Name: "entity_type", Kind: KindString, Required: true},
		{Name: "value", Kind: KindInt, Required: true},
		{Name: "counter", Kind: KindString},
	},
	ConditionEntityCountComparison: {
		{Name: "entity_type", Kind: KindString, Required: true},
		{Name: "comparison", Kind: KindString, Required: true},
		{Name: "value", Kind: KindInt, Required: true},
		{Name: "counter", Kind: KindString},
	},
	ConditionIsTechnologyResearched: {
		{Name: "technology", Kind: KindString, Required: true},
	},
	ConditionValueEquals: {
		{Name: "id", Kind: KindString, Required: true},
		{Name: "value", Kind: KindInt, Required: true},
	},
	ConditionValueReached: {
		{Name: "id", Kind: KindString, Required: true},
		{Name: "value", Kind: KindInt, Required: true},
	},
	ConditionInitialEvent: nil,
	ConditionAnyTasksActive: {
		{Name: "task_type", Kind: KindString},
	},
	ConditionAnyWorkAreasActive: {
		{Name: "work_area_id", Kind: KindString},
	},
	ConditionIsGameInteractionPending: {
		{Name: "value", Kind: KindBool},
	},
	ConditionInteractionHappened: {
		{Name: "interaction", Kind: KindString, Required: true},
	},
	ConditionScenarioCompleted: {
		{Name: "id", Kind: KindString},
	},
}

// IsLogical reports whether typ is a composite condition type.
func IsLogical(typ string) bool {
	_, ok := logicalConditions[typ]
	return ok
}

// ConditionTypes lists every known condition type, logical ones included.
func ConditionTypes() []string {
	types := make([]string, 0, len(conditionParams)+len(logicalConditions))
	for t := range conditionParams {
		types = append(types, t)
	}
	for t := range logicalConditions {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// ConditionParams returns the attribute specs of a general condition type.
func ConditionParams(typ string) ([]ParamSpec, bool) {
	specs, ok := conditionParams[typ]
	return specs, ok
}

// Condition is either a general condition, carrying Params, or a logical
// condition (And, Or, Not), carrying child Conditions. Type decides which.
type Condition struct {
	Type       string             `json:"type"`
	Params     Params             `json:"params,omitempty"`
	Conditions []Entry[Condition] `json:"conditions,omitempty"`
}

// General builds a general condition.
func General(typ string, params Params) Condition {
	return Condition{Type: typ, Params: params}
}

// Logical builds a composite condition over children.
func Logical(typ string, children ...Entry[Condition]) Condition {
	return Condition{Type: typ, Conditions: children}
}

func (c Condition) IsLogical() bool { return IsLogical(c.Type) }

func (c Condition) Render() (string, bool) {
	if strings.TrimSpace(c.Type) == "" {
		return "", false
	}
	if c.IsLogical() {
		return c.renderLogical()
	}
	return c.renderGeneral()
}

func (c Condition) renderLogical() (string, bool) {
	inner := renderEntries(c.Conditions)
	if inner == "" {
		return "", false
	}
	return template.Element("condition", attr.Escape(c.Type), nil, inner), true
}

func (c Condition) renderGeneral() (string, bool) {
	attrs, ok := renderParams(conditionParams[c.Type], c.Params)
	if !ok {
		return "", false
	}
	return template.Element("condition", attr.Escape(c.Type), attrs, ""), true
}

func RenderCondition(c Condition, disabled bool) string {
	return Text(c, disabled)
}

// RenderConditions renders a <conditions> wrapper.
func RenderConditions(entries []Entry[Condition], disabled bool) string {
	return RenderList("conditions", entries, disabled)
}

// ConditionFromNode decodes a <condition> element.
func ConditionFromNode(n xmlnode.Node) (Condition, bool) {
	typ, ok := attr.ToString(n["type"])
	if !ok || strings.TrimSpace(typ) == "" {
		return Condition{}, false
	}

	if !IsLogical(typ) {
		return General(typ, decodeParams(conditionParams[typ], n)), true
	}

	return Logical(typ, childConditions(n)...), true
}

// childConditions reads the <condition> children of n, both direct and from
// a nested <conditions> wrapper.
func childConditions(n xmlnode.Node) []Entry[Condition] {
	children := decodeAll(xmlnode.Nodes(n["condition"]), ConditionFromNode)
	if wrapper, ok := n.Child("conditions"); ok {
		children = append(children, decodeAll(xmlnode.Nodes(wrapper["condition"]), ConditionFromNode)...)
	}
	return children
}
