package presets

import (
	"strings"
	"testing"

	"github.com/blacksmoke26/dawn-of-man-generator-sub003/internal/environment"
)

func TestSeasonReturnsCopy(t *testing.T) {
	t.Parallel()

	a, ok := Season(environment.Winter)
	if !ok {
		t.Fatalf("missing winter preset")
	}
	*a.ReducedFauna = false
	a.SetupID = "Changed"

	b, _ := Season(environment.Winter)
	if !*b.ReducedFauna || b.SetupID != "Winter" {
		t.Fatalf("preset table was mutated: %#v", b)
	}

	if _, ok := Season("Monsoon"); ok {
		t.Fatalf("unexpected preset for unknown season")
	}
}

func TestSeasonsOrder(t *testing.T) {
	t.Parallel()

	got := Seasons()
	if len(got) != len(environment.SeasonOrder) {
		t.Fatalf("got %d seasons", len(got))
	}
	for i, id := range environment.SeasonOrder {
		if got[i].ID != id {
			t.Fatalf("position %d: got %s want %s", i, got[i].ID, id)
		}
	}
}

func TestEnvironmentRenders(t *testing.T) {
	t.Parallel()

	e := Environment()
	e.Trees.Value[0] = "Palm"

	out := Environment().Render()
	for _, want := range []string{
		`<trees values="Oak Pine Birch Beech Maple Fir"/>`,
		`<distance_height_offset value="0"/>`,
		`<season id="Winter" setup_id="Winter" snow_setup_id="WinterSnow"`,
		`<season id="Fall" setup_id="Fall" duration="0.225" precipitation_chance="0.35" windy_chance="0.3" very_windy_chance="0.1" fish_boost="0.5"`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %s in\n%s", want, out)
		}
	}
}
