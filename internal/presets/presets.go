// Package presets holds the stock season and environment values the editor
// starts from. The tables are never handed out directly; callers get copies.
package presets

import (
	"github.com/blacksmoke26/dawn-of-man-generator-sub003/internal/construct"
	"github.com/blacksmoke26/dawn-of-man-generator-sub003/internal/environment"
)

func f64(v float64) *float64 { return &v }

func boolp(v bool) *bool { return &v }

var seasons = map[environment.SeasonID]environment.Season{
	environment.Spring: {
		ID:                  environment.Spring,
		SetupID:             "Spring",
		Duration:            0.225,
		PrecipitationChance: 0.3,
		WindyChance:         0.25,
		VeryWindyChance:     0.05,
		Temperature:         environment.Range{Min: 2, Max: 20},
		Wind:                environment.Range{Min: 0, Max: 0.6},
	},
	environment.Summer: {
		ID:                  environment.Summer,
		SetupID:             "Summer",
		Duration:            0.325,
		PrecipitationChance: 0.15,
		WindyChance:         0.15,
		VeryWindyChance:     0.025,
		Temperature:         environment.Range{Min: 14, Max: 32},
		Wind:                environment.Range{Min: 0, Max: 0.4},
	},
	environment.Fall: {
		ID:                  environment.Fall,
		SetupID:             "Fall",
		Duration:            0.225,
		PrecipitationChance: 0.35,
		WindyChance:         0.3,
		VeryWindyChance:     0.1,
		FishBoost:           f64(0.5),
		Temperature:         environment.Range{Min: 4, Max: 18},
		Wind:                environment.Range{Min: 0.1, Max: 0.8},
	},
	environment.Winter: {
		ID:                  environment.Winter,
		SetupID:             "Winter",
		SnowSetupID:         "WinterSnow",
		Duration:            0.225,
		PrecipitationChance: 0.5,
		WindyChance:         0.3,
		VeryWindyChance:     0.15,
		ReducedFauna:        boolp(true),
		Temperature:         environment.Range{Min: -15, Max: 2},
		Wind:                environment.Range{Min: 0.2, Max: 1},
	},
}

var (
	noiseAmplitudes = []float64{0.5, 0.25, 0.125, 0.0625, 0.03125, 0.015625, 0.0078125, 0.00390625}
	trees           = []string{"Oak", "Pine", "Birch", "Beech", "Maple", "Fir"}
	deposits        = []string{"Flint", "Copper", "Tin", "Iron"}
	detritus        = []string{"Stick", "Rock", "Bush"}
)

// Season returns a copy of the preset for id.
func Season(id environment.SeasonID) (environment.Season, bool) {
	s, ok := seasons[id]
	if !ok {
		return environment.Season{}, false
	}
	return s.Clone(), true
}

// Seasons returns copies of every preset in season order.
func Seasons() []environment.Season {
	out := make([]environment.Season, 0, len(environment.SeasonOrder))
	for _, id := range environment.SeasonOrder {
		s, _ := Season(id)
		out = append(out, s)
	}
	return out
}

// Environment returns a new environment filled with the stock values.
func Environment() *environment.Environment {
	e := &environment.Environment{
		NoiseAmplitudes:      construct.Some(clone(noiseAmplitudes)),
		ResourceFactor:       construct.Some(1.0),
		DistanceHeightOffset: construct.Some(0.0),
		FordDistanceFactor:   construct.Some(0.5),
		SunAngleFactor:       construct.Some(1.0),
		BackdropScale:        construct.Some([]float64{1, 1, 1}),
		Trees:                construct.Some(clone(trees)),
		Deposits:             construct.Some(clone(deposits)),
		Detritus:             construct.Some(clone(detritus)),
	}
	for _, s := range Seasons() {
		*e.Season(s.ID) = construct.Some(s)
	}
	return e
}

func clone[T any](s []T) []T {
	return append([]T(nil), s...)
}
