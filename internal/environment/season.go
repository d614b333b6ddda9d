package environment

import (
	"strings"

	"github.com/blacksmoke26/dawn-of-man-generator-sub003/internal/attr"
	"github.com/blacksmoke26/dawn-of-man-generator-sub003/internal/template"
	"github.com/blacksmoke26/dawn-of-man-generator-sub003/internal/xmlnode"
)

type SeasonID string

const (
	Spring SeasonID = "Spring"
	Summer SeasonID = "Summer"
	Fall   SeasonID = "Fall"
	Winter SeasonID = "Winter"
)

// SeasonOrder is the order seasons are written in.
var SeasonOrder = [...]SeasonID{Spring, Summer, Fall, Winter}

// Range is a numeric [min, max] pair written as two attributes.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Season is the weather setup of one season. SnowSetupID and ReducedFauna
// only apply to Winter.
type Season struct {
	ID                  SeasonID `json:"id"`
	SetupID             string   `json:"setup_id"`
	SnowSetupID         string   `json:"snow_setup_id,omitempty"`
	Duration            float64  `json:"duration"`
	PrecipitationChance float64  `json:"precipitation_chance"`
	WindyChance         float64  `json:"windy_chance"`
	VeryWindyChance     float64  `json:"very_windy_chance"`
	FishBoost           *float64 `json:"fish_boost,omitempty"`
	ReducedFauna        *bool    `json:"reduced_fauna,omitempty"`
	Temperature         Range    `json:"temperature"`
	Wind                Range    `json:"wind"`
}

// Clone returns a copy that shares no pointers with s.
func (s Season) Clone() Season {
	c := s
	if s.FishBoost != nil {
		v := *s.FishBoost
		c.FishBoost = &v
	}
	if s.ReducedFauna != nil {
		v := *s.ReducedFauna
		c.ReducedFauna = &v
	}
	return c
}

// Render needs a known season id and a setup id.
func (s Season) Render() (string, bool) {
	if !validSeason(s.ID) || strings.TrimSpace(s.SetupID) == "" {
		return "", false
	}

	var pairs attr.Pairs
	pairs.Add("id", string(s.ID))
	pairs.Add("setup_id", s.SetupID)
	if s.ID == Winter {
		pairs.Add("snow_setup_id", s.SnowSetupID)
	}
	pairs.Add("duration", s.Duration)
	pairs.Add("precipitation_chance", s.PrecipitationChance)
	pairs.Add("windy_chance", s.WindyChance)
	pairs.Add("very_windy_chance", s.VeryWindyChance)
	pairs.Add("fish_boost", s.FishBoost)
	if s.ID == Winter {
		pairs.Add("reduced_fauna", s.ReducedFauna)
	}
	pairs.Add("min_temperature", s.Temperature.Min)
	pairs.Add("max_temperature", s.Temperature.Max)
	pairs.Add("min_wind", s.Wind.Min)
	pairs.Add("max_wind", s.Wind.Max)

	return template.Element("season", "", pairs, ""), true
}

func validSeason(id SeasonID) bool {
	for _, s := range SeasonOrder {
		if s == id {
			return true
		}
	}
	return false
}

// SeasonFromNode decodes a <season> element. Numbers that fail to convert
// are left at zero.
func SeasonFromNode(n xmlnode.Node) (Season, bool) {
	id, _ := attr.ToString(n["id"])
	s := Season{ID: SeasonID(strings.TrimSpace(id))}
	if !validSeason(s.ID) {
		return Season{}, false
	}

	s.SetupID, _ = attr.ToString(n["setup_id"])
	s.Duration, _ = attr.ToFloat(n["duration"])
	s.PrecipitationChance, _ = attr.ToFloat(n["precipitation_chance"])
	s.WindyChance, _ = attr.ToFloat(n["windy_chance"])
	s.VeryWindyChance, _ = attr.ToFloat(n["very_windy_chance"])
	if v, ok := attr.ToFloat(n["fish_boost"]); ok {
		s.FishBoost = &v
	}
	s.Temperature.Min, _ = attr.ToFloat(n["min_temperature"])
	s.Temperature.Max, _ = attr.ToFloat(n["max_temperature"])
	s.Wind.Min, _ = attr.ToFloat(n["min_wind"])
	s.Wind.Max, _ = attr.ToFloat(n["max_wind"])

	if s.ID == Winter {
		s.SnowSetupID, _ = attr.ToString(n["snow_setup_id"])
		if v, ok := attr.ToBool(n["reduced_fauna"]); ok {
			s.ReducedFauna = &v
		}
	}
	return s, true
}
