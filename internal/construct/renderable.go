// Package construct holds the typed building blocks of environment and
// scenario documents (conditions, actions, goals, milestones, events,
// locations, strings) and renders each of them to XML.
//
// Incomplete constructs are not errors. Render reports false and the
// construct is left out of the output, so an editor can hold half-finished
// values without tripping anything.
package construct

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/samber/lo"

	"github.com/blacksmoke26/dawn-of-man-generator-sub003/internal/template"
)

// Renderable is implemented by every construct. The second result is false
// when the value is too incomplete to render and must be omitted.
type Renderable interface {
	Render() (string, bool)
}

// Text renders r, or returns "" when disabled or incomplete.
func Text(r Renderable, disabled bool) string {
	if disabled {
		return ""
	}
	s, ok := r.Render()
	if !ok {
		return ""
	}
	return s
}

// Entry is a list item that is either a pre-rendered XML fragment or a
// structured value.
type Entry[T Renderable] struct {
	raw   string
	value T
	isRaw bool
}

// Raw wraps an XML fragment that is copied into the output verbatim.
func Raw[T Renderable](fragment string) Entry[T] {
	return Entry[T]{raw: fragment, isRaw: true}
}

// Of wraps a structured value.
func Of[T Renderable](v T) Entry[T] {
	return Entry[T]{value: v}
}

// OfAll wraps every value.
func OfAll[T Renderable](values ...T) []Entry[T] {
	return lo.Map(values, func(v T, _ int) Entry[T] { return Of(v) })
}

func (e Entry[T]) IsRaw() bool { return e.isRaw }

func (e Entry[T]) Fragment() string { return e.raw }

// Value returns the structured value; ok is false for raw fragments.
func (e Entry[T]) Value() (T, bool) {
	return e.value, !e.isRaw
}

func (e Entry[T]) Render() (string, bool) {
	if e.isRaw {
		s := strings.TrimSpace(e.raw)
		return s, s != ""
	}
	return e.value.Render()
}

// MarshalJSON writes raw fragments as JSON strings and structured values as
// objects.
func (e Entry[T]) MarshalJSON() ([]byte, error) {
	if e.isRaw {
		return json.Marshal(e.raw)
	}
	return json.Marshal(e.value)
}

func (e *Entry[T]) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*e = Raw[T](s)
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*e = Of(v)
	return nil
}

// renderEntries renders every entry and concatenates the ones that produced
// output.
func renderEntries[T Renderable](entries []Entry[T]) string {
	parts := lo.FilterMap(entries, func(e Entry[T], _ int) (string, bool) {
		s, ok := e.Render()
		return s, ok && strings.TrimSpace(s) != ""
	})
	return strings.Join(parts, "")
}

// RenderList renders entries inside a plural wrapper element. Children that
// fail to render are dropped; the wrapper is dropped when none rendered.
func RenderList[T Renderable](wrapper string, entries []Entry[T], disabled bool) string {
	if disabled || len(entries) == 0 {
		return ""
	}
	return template.Wrap(wrapper, renderEntries(entries))
}

// Field is a top-level document field. A field that is not Set or is
// Disabled is left out of the output.
type Field[T any] struct {
	Value    T
	Set      bool
	Disabled bool
}

// Some returns an enabled field holding v.
func Some[T any](v T) Field[T] {
	return Field[T]{Value: v, Set: true}
}

func (f Field[T]) Enabled() bool { return f.Set && !f.Disabled }

// Get returns the value when the field is enabled.
func (f Field[T]) Get() (T, bool) {
	if !f.Enabled() {
		var zero T
		return zero, false
	}
	return f.Value, true
}

type fieldJSON[T any] struct {
	Value    T    `json:"value"`
	Disabled bool `json:"disabled,omitempty"`
}

func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.Set {
		return []byte("null"), nil
	}
	return json.Marshal(fieldJSON[T]{Value: f.Value, Disabled: f.Disabled})
}

func (f *Field[T]) UnmarshalJSON(data []byte) error {
	if string(bytes.TrimSpace(data)) == "null" {
		*f = Field[T]{}
		return nil
	}
	var v fieldJSON[T]
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = Field[T]{Value: v.Value, Set: true, Disabled: v.Disabled}
	return nil
}
