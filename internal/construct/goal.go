package construct

import (
	"strings"

	"github.com/blacksmoke26/dawn-of-man-generator-sub003/internal/attr"
	"github.com/blacksmoke26/dawn-of-man-generator-sub003/internal/template"
	"github.com/blacksmoke26/dawn-of-man-generator-sub003/internal/xmlnode"
)

// Goal is a scenario objective shown to the player.
type Goal struct {
	ID          string             `json:"id"`
	Conditions  []Entry[Condition] `json:"conditions"`
	HideDisplay bool               `json:"hide_display,omitempty"`
}

// Render needs a non-blank id and at least one rendered condition.
func (g Goal) Render() (string, bool) {
	if strings.TrimSpace(g.ID) == "" {
		return "", false
	}
	inner := renderEntries(g.Conditions)
	if inner == "" {
		return "", false
	}

	var pairs attr.Pairs
	pairs.Add("id", g.ID)
	if g.HideDisplay {
		pairs.Add("disable_display", true)
	}
	return template.Element("goal", "", pairs, inner), true
}

func RenderGoal(g Goal, disabled bool) string {
	return Text(g, disabled)
}

func RenderGoals(entries []Entry[Goal], disabled bool) string {
	return RenderList("goals", entries, disabled)
}

func GoalFromNode(n xmlnode.Node) (Goal, bool) {
	g := Goal{
		ID:         stringAttr(n, "id"),
		Conditions: childConditions(n),
	}
	if g.ID == "" {
		return Goal{}, false
	}
	g.HideDisplay, _ = boolAttr(n, "disable_display")
	return g, true
}

// Milestone is a progress marker unlocked by its conditions.
type Milestone struct {
	ID         string             `json:"id"`
	Conditions []Entry[Condition] `json:"conditions"`
}

// Render needs a non-blank id and at least one rendered condition entry.
func (m Milestone) Render() (string, bool) {
	if strings.TrimSpace(m.ID) == "" {
		return "", false
	}
	inner := renderEntries(m.Conditions)
	if inner == "" {
		return "", false
	}

	var pairs attr.Pairs
	pairs.Add("id", m.ID)
	return template.Element("milestone", "", pairs, inner), true
}

func RenderMilestone(m Milestone, disabled bool) string {
	return Text(m, disabled)
}

func RenderMilestones(entries []Entry[Milestone], disabled bool) string {
	return RenderList("milestones", entries, disabled)
}

func MilestoneFromNode(n xmlnode.Node) (Milestone, bool) {
	m := Milestone{
		ID:         stringAttr(n, "id"),
		Conditions: childConditions(n),
	}
	if m.ID == "" {
		return Milestone{}, false
	}
	return m, true
}
