package construct

import (
	"sort"
	"strings"

	"github.com/blacksmoke26/dawn-of-man-generator-sub003/internal/attr"
	"github.com/blacksmoke26/dawn-of-man-generator-sub003/internal/template"
	"github.com/blacksmoke26/dawn-of-man-generator-sub003/internal/xmlnode"
)

// Action types.
const (
	ActionShowMessage           = "ShowMessage"
	ActionShowGoal              = "ShowGoal"
	ActionSetTraderPeriod       = "SetTraderPeriod"
	ActionSetRaidPeriod         = "SetRaidPeriod"
	ActionSetDisasterPeriod     = "SetDisasterPeriod"
	ActionSetTechCostMultiplier = "SetTechCostMultiplier"
	ActionSetValue              = "SetValue"
	ActionUpdateValue           = "UpdateValue"
	ActionSpawn                 = "Spawn"
	ActionTriggerTrader         = "TriggerTrader"
	ActionTriggerRaid           = "TriggerRaid"
)

var actionParams = map[string][]ParamSpec{
	ActionShowMessage: {
		{Name: "title", Kind: KindString, Required: true},
		{Name: "text", Kind: KindString, Required: true},
	},
	ActionShowGoal: {
		{Name: "id", Kind: KindString, Required: true},
	},
	ActionSetTraderPeriod: {
		{Name: "period", Kind: KindString, Required: true},
		{Name: "variance", Kind: KindString, Required: true},
	},
	ActionSetRaidPeriod: {
		{Name: "period", Kind: KindString, Required: true},
		{Name: "variance", Kind: KindString, Required: true},
	},
	ActionSetDisasterPeriod: {
		{Name: "disaster_type", Kind: KindString, Required: true},
		{Name: "period", Kind: KindString, Required: true},
		{Name: "variance", Kind: KindString, Required: true},
	},
	ActionSetTechCostMultiplier: {
		{Name: "value", Kind: KindFloat, Required: true},
	},
	ActionSetValue: {
		{Name: "id", Kind: KindString, Required: true},
		{Name: "value", Kind: KindInt, Required: true},
	},
	ActionUpdateValue: {
		{Name: "id", Kind: KindString, Required: true},
		{Name: "value", Kind: KindInt, Required: true},
	},
	ActionSpawn: {
		{Name: "entity_types", Kind: KindList, Required: true},
		{Name: "amount", Kind: KindInt, Required: true},
		{Name: "location", Kind: KindString, Required: true},
		{Name: "distance", Kind: KindFloat},
	},
	ActionTriggerTrader: nil,
	ActionTriggerRaid:   nil,
}

// ActionTypes lists every known action type.
func ActionTypes() []string {
	types := make([]string, 0, len(actionParams))
	for t := range actionParams {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// ActionParams returns the attribute specs of an action type.
func ActionParams(typ string) ([]ParamSpec, bool) {
	specs, ok := actionParams[typ]
	return specs, ok
}

// Action is one event action. Waves is only used by TriggerRaid.
type Action struct {
	Type   string              `json:"type"`
	Params Params              `json:"params,omitempty"`
	Waves  []Entry[AttackWave] `json:"waves,omitempty"`
}

func (a Action) Render() (string, bool) {
	if strings.TrimSpace(a.Type) == "" {
		return "", false
	}

	attrs, ok := renderParams(actionParams[a.Type], a.Params)
	if !ok {
		return "", false
	}

	var inner string
	if a.Type == ActionTriggerRaid {
		inner = RenderList("attack_waves", a.Waves, false)
		if inner == "" {
			return "", false
		}
	}

	return template.Element("action", attr.Escape(a.Type), attrs, inner), true
}

func RenderAction(a Action, disabled bool) string {
	return Text(a, disabled)
}

// RenderActions renders an <actions> wrapper.
func RenderActions(entries []Entry[Action], disabled bool) string {
	return RenderList("actions", entries, disabled)
}

func ActionFromNode(n xmlnode.Node) (Action, bool) {
	typ := stringAttr(n, "type")
	if typ == "" {
		return Action{}, false
	}

	a := Action{Type: typ, Params: decodeParams(actionParams[typ], n)}
	if typ == ActionTriggerRaid {
		a.Waves = ListFromNode(n["attack_waves"], "attack_wave", AttackWaveFromNode)
	}
	return a, true
}

// AttackWave is one wave of a raid.
type AttackWave struct {
	Delay *int64              `json:"delay,omitempty"`
	Units []Entry[AttackUnit] `json:"units"`
}

func (w AttackWave) Render() (string, bool) {
	inner := renderEntries(w.Units)
	if inner == "" {
		return "", false
	}
	var pairs attr.Pairs
	pairs.Add("delay", w.Delay)
	return template.Element("attack_wave", "", pairs, inner), true
}

func AttackWaveFromNode(n xmlnode.Node) (AttackWave, bool) {
	w := AttackWave{Units: decodeAll(xmlnode.Nodes(n["attack_unit"]), AttackUnitFromNode)}
	if d, ok := intAttr(n, "delay"); ok {
		w.Delay = &d
	}
	return w, true
}

// AttackUnit is a group of raiders of one entity type.
type AttackUnit struct {
	EntityType string `json:"entity_type"`
	Min        int64  `json:"min"`
	Max        int64  `json:"max"`
}

func (u AttackUnit) Render() (string, bool) {
	if u.EntityType == "" || u.Max <= 0 || u.Min < 0 || u.Min > u.Max {
		return "", false
	}
	var pairs attr.Pairs
	pairs.Add("entity_type", u.EntityType)
	pairs.Add("min", u.Min)
	pairs.Add("max", u.Max)
	return template.Element("attack_unit", "", pairs, ""), true
}

func AttackUnitFromNode(n xmlnode.Node) (AttackUnit, bool) {
	u := AttackUnit{EntityType: stringAttr(n, "entity_type")}
	if u.EntityType == "" {
		return AttackUnit{}, false
	}
	u.Min, _ = intAttr(n, "min")
	u.Max, _ = intAttr(n, "max")
	return u, true
}
