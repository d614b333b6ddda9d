package xmlnode

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		text    string
		wantErr string
		line    int
	}{
		{name: "well formed", text: `<?xml version="1.0"?><scenario><goals/></scenario>`},
		{name: "valueless attribute", text: `<location river/>`},
		{name: "mismatched close", text: "<a>\n<b></a>", wantErr: "expected </b>, found </a>", line: 2},
		{name: "unclosed", text: "<a><b/>", wantErr: "unclosed tag <a>"},
		{name: "stray close", text: "<a/></b>", wantErr: "no matching opening tag"},
		{name: "two roots", text: "<a/><b/>", wantErr: "multiple root elements"},
		{name: "text outside root", text: "hello<a/>", wantErr: "text outside the root element"},
		{name: "empty input", text: "  ", wantErr: "no root element"},
		{name: "duplicate attribute", text: `<a x="1" x="2"/>`, wantErr: "duplicate attribute"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := Validate(tc.text)
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("expected valid, got %v", err)
				}
				return
			}

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %T (%v)", err, err)
			}
			if !strings.Contains(verr.Msg, tc.wantErr) {
				t.Fatalf("expected message containing %q, got %q", tc.wantErr, verr.Msg)
			}
			if tc.line != 0 && verr.Line != tc.line {
				t.Fatalf("expected line %d, got %d", tc.line, verr.Line)
			}
		})
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	text := `<?xml version="1.0" encoding="utf-8"?>
<scenario>
  <size value="2"/>
  <visible value="true"/>
  <locations>
    <location id="Loc1" seed="00000042" map_location="0.5,0.25" river/>
    <location id="Loc2" seed="7" lake="1.5"/>
  </locations>
  <strings>
    <string id="Name">  The Long Winter  </string>
  </strings>
  <note>12</note>
</scenario>`

	got, err := Parse(text, Options{})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	want := Node{
		"scenario": Node{
			"size":    Node{"value": int64(2)},
			"visible": Node{"value": true},
			"locations": Node{
				"location": []any{
					Node{"id": "Loc1", "seed": int64(42), "map_location": "0.5,0.25", "river": true},
					Node{"id": "Loc2", "seed": int64(7), "lake": 1.5},
				},
			},
			"strings": Node{
				"string": Node{"id": "Name", TextKey: "The Long Winter"},
			},
			"note": int64(12),
		},
	}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected tree:\n got  %#v\n want %#v", got, want)
	}

	name, root, ok := got.Root()
	if !ok || name != "scenario" {
		t.Fatalf("expected scenario root, got %q (%v)", name, ok)
	}
	if len(Nodes(root["locations"].(Node)["location"])) != 2 {
		t.Fatalf("expected two locations")
	}
}

func TestParseAttributeValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want Node
	}{
		{name: "value equal to name", text: `<x id="id"/>`, want: Node{"id": "id"}},
		{name: "single quoted", text: `<x value='value' n='3'/>`, want: Node{"value": "value", "n": int64(3)}},
		{name: "valueless", text: `<x river lake="2"/>`, want: Node{"river": true, "lake": int64(2)}},
		{name: "valueless last", text: `<x
  lake="a b"
  river/>`, want: Node{"lake": "a b", "river": true}},
		{name: "spaced equals", text: `<x id = "id" flag></x>`, want: Node{"id": "id", "flag": true}},
		{name: "quoted text mentions a bare word", text: `<x title="river delta" river/>`, want: Node{"title": "river delta", "river": true}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := Parse(tc.text, Options{})
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if x, _ := got.Child("x"); !reflect.DeepEqual(x, tc.want) {
				t.Fatalf("got %#v, want %#v", x, tc.want)
			}
		})
	}
}

func TestParseRawText(t *testing.T) {
	t.Parallel()

	got, err := Parse(`<strings><string id="Year">1999</string></strings>`, Options{RawText: []string{"string"}})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	s, ok := got.Child("strings")
	if !ok {
		t.Fatalf("missing strings")
	}
	entry, _ := s.Child("string")
	if entry[TextKey] != "1999" {
		t.Fatalf("expected raw text, got %#v", entry[TextKey])
	}
}

func TestParseFailsWithoutPartialTree(t *testing.T) {
	t.Parallel()

	got, err := Parse(`<scenario><goals></scenario>`, Options{})
	if got != nil {
		t.Fatalf("expected no tree, got %#v", got)
	}

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected wrapped *ValidationError")
	}
}

func TestInfer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want any
	}{
		{"true", true},
		{"false", false},
		{"42", int64(42)},
		{"-7", int64(-7)},
		{"0.25", 0.25},
		{".5", 0.5},
		{"1,2", "1,2"},
		{"Spring", "Spring"},
		{"", ""},
		{"99999999999999999999", "99999999999999999999"},
	}

	for _, tc := range tests {
		if got := Infer(tc.in); got != tc.want {
			t.Errorf("Infer(%q) = %#v, want %#v", tc.in, got, tc.want)
		}
	}
}
