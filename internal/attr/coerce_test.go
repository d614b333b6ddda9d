package attr

import (
	"math"
	"reflect"
	"testing"
)

func TestPredicates(t *testing.T) {
	t.Parallel()

	if !IsBoolean(false) || IsBoolean("true") {
		t.Fatalf("IsBoolean mismatch")
	}
	if !IsInteger(int64(3)) || !IsInteger(4.0) || IsInteger(4.5) || IsInteger("4") {
		t.Fatalf("IsInteger mismatch")
	}
	if !IsNumber(0.5) || IsNumber(math.NaN()) || IsNumber(true) {
		t.Fatalf("IsNumber mismatch")
	}
	if !IsNonEmptyString("x") || IsNonEmptyString("  ") || IsNonEmptyString(1) {
		t.Fatalf("IsNonEmptyString mismatch")
	}
	if !IsPlainObject(map[string]any{}) || IsPlainObject([]any{}) || IsPlainObject(nil) {
		t.Fatalf("IsPlainObject mismatch")
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	yes := true
	tests := []struct {
		name string
		in   any
		want string
		ok   bool
	}{
		{"nil", nil, "", false},
		{"blank string", "  ", "", false},
		{"string", "Spring", "Spring", true},
		{"true", true, "true", true},
		{"false", false, "false", true},
		{"int64", int64(-4), "-4", true},
		{"whole float", 5.0, "5", true},
		{"fraction", 0.25, "0.25", true},
		{"nan", math.NaN(), "", false},
		{"bool pointer", &yes, "true", true},
		{"nil pointer", (*int64)(nil), "", false},
		{"string list", []string{"Deer", "Boar"}, "Deer,Boar", true},
		{"empty list", []string{}, "", false},
		{"float list", []float64{0.5, 0.25}, "0.5,0.25", true},
		{"map", map[string]any{"a": 1}, "", false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, ok := Format(tc.in)
			if got != tc.want || ok != tc.ok {
				t.Fatalf("Format(%#v) = %q, %v; want %q, %v", tc.in, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestPairEscapes(t *testing.T) {
	t.Parallel()

	got, ok := Pair("title", `Fire & "Ice"`)
	if !ok || got != `title="Fire &amp; &quot;Ice&quot;"` {
		t.Fatalf("unexpected pair %q", got)
	}

	var p Pairs
	p.Add("id", "G1")
	p.Add("skip", "")
	p.AddList("values", []float64{1, 2.5}, " ")
	if want := (Pairs{`id="G1"`, `values="1 2.5"`}); !reflect.DeepEqual(p, want) {
		t.Fatalf("got %v, want %v", p, want)
	}
}

func TestPairRejectsInvalidNames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ok   bool
	}{
		{name: "repeatable", ok: true},
		{name: "xml:lang", ok: true},
		{name: "min_altitude-2.5", ok: true},
		{name: "", ok: false},
		{name: "bad name", ok: false},
		{name: `x"y`, ok: false},
		{name: "2nd", ok: false},
		{name: "a=b", ok: false},
		{name: "a/>", ok: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := IsName(tc.name); got != tc.ok {
				t.Fatalf("IsName(%q) = %v, want %v", tc.name, got, tc.ok)
			}
			if _, ok := Pair(tc.name, "1"); ok != tc.ok {
				t.Fatalf("Pair(%q) ok = %v, want %v", tc.name, ok, tc.ok)
			}
			if _, ok := ListPair(tc.name, []string{"a"}, " "); ok != tc.ok {
				t.Fatalf("ListPair(%q) ok = %v, want %v", tc.name, ok, tc.ok)
			}
		})
	}
}

func TestConversions(t *testing.T) {
	t.Parallel()

	if n, ok := ToInt("00000042"); !ok || n != 42 {
		t.Fatalf("ToInt string: %d %v", n, ok)
	}
	if _, ok := ToInt(1.5); ok {
		t.Fatalf("ToInt accepted a fraction")
	}
	if f, ok := ToFloat(int64(3)); !ok || f != 3 {
		t.Fatalf("ToFloat int: %v %v", f, ok)
	}
	if b, ok := ToBool("true"); !ok || !b {
		t.Fatalf("ToBool string")
	}
	if s, ok := ToString(int64(7)); !ok || s != "7" {
		t.Fatalf("ToString int: %q", s)
	}
	if _, ok := ToString(map[string]any{}); ok {
		t.Fatalf("ToString accepted a map")
	}
	if got := ToList("Deer, Boar,,Bison", ","); !reflect.DeepEqual(got, []string{"Deer", "Boar", "Bison"}) {
		t.Fatalf("ToList: %v", got)
	}
	if got := ToList("Oak  Pine", " "); !reflect.DeepEqual(got, []string{"Oak", "Pine"}) {
		t.Fatalf("ToList fields: %v", got)
	}
	if got, ok := ToFloats("0.5,0.25", ","); !ok || !reflect.DeepEqual(got, []float64{0.5, 0.25}) {
		t.Fatalf("ToFloats: %v", got)
	}
	if _, ok := ToFloats("0.5,x", ","); ok {
		t.Fatalf("ToFloats accepted junk")
	}
}
