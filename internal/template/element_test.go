package template

import "testing"

func TestElement(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		tag          string
		discriminant string
		attrs        []string
		inner        string
		want         string
	}{
		{
			name:  "self closing",
			tag:   "x",
			attrs: []string{`a="1"`},
			want:  `<x a="1"/>`,
		},
		{
			name:  "body",
			tag:   "x",
			inner: "body",
			want:  `<x>body</x>`,
		},
		{
			name:         "discriminant first",
			tag:          "condition",
			discriminant: "TimeElapsed",
			attrs:        []string{`value="5"`},
			want:         `<condition type="TimeElapsed" value="5"/>`,
		},
		{
			name:  "blank body self closes",
			tag:   "goals",
			inner: " \n\t",
			want:  `<goals/>`,
		},
		{
			name:  "attribute order kept and blanks skipped",
			tag:   "location",
			attrs: []string{`id="L"`, "", `seed="00000042"`},
			want:  `<location id="L" seed="00000042"/>`,
		},
		{
			name:  "inner text verbatim",
			tag:   "string",
			attrs: []string{`id="Name"`},
			inner: "a &amp; b",
			want:  `<string id="Name">a &amp; b</string>`,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := Element(tc.tag, tc.discriminant, tc.attrs, tc.inner); got != tc.want {
				t.Fatalf("got %s, want %s", got, tc.want)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	t.Parallel()

	if got := Wrap("goals", ""); got != "" {
		t.Fatalf("expected empty wrapper to vanish, got %q", got)
	}
	if got := Wrap("goals", "<goal/>"); got != "<goals><goal/></goals>" {
		t.Fatalf("unexpected wrapper %q", got)
	}
}
