package xmlnode

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// ValidationError reports the first structural problem found in XML text.
type ValidationError struct {
	Line   int
	Column int
	Offset int64
	Msg    string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("line %d, column %d: %s", e.Line, e.Column, e.Msg)
}

// ParseError is returned by Parse when the input is not well-formed.
type ParseError struct {
	Err *ValidationError
}

func (e *ParseError) Error() string {
	return "xml parse: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Options tunes type inference. The zero value infers every attribute and
// text value.
type Options struct {
	// NoInference keeps every value as a string.
	NoInference bool
	// RawText lists element names whose text is kept as a string.
	RawText []string
}

func (o Options) rawText(name string) bool {
	if o.NoInference {
		return true
	}
	for _, n := range o.RawText {
		if n == name {
			return true
		}
	}
	return false
}

// Validate checks that text is a single well-formed element tree. It
// returns nil or a *ValidationError.
func Validate(text string) error {
	err := scan(text, nil)
	if err == nil {
		return nil
	}
	return err
}

// Parse converts text into a Node keyed by the root element name.
func Parse(text string, opts Options) (Node, error) {
	b := &builder{opts: opts, stack: []*frame{{node: Node{}}}}
	if err := scan(text, b); err != nil {
		return nil, &ParseError{Err: err}
	}
	return b.stack[0].node, nil
}

type handler interface {
	start(name string, attrs []xml.Attr, bare map[string]bool)
	text(data string)
	end(name string)
}

func scan(text string, h handler) *ValidationError {
	d := xml.NewDecoder(strings.NewReader(text))
	d.Strict = false

	fail := func(msg string) *ValidationError {
		line, col := d.InputPos()
		return &ValidationError{Line: line, Column: col, Offset: d.InputOffset(), Msg: msg}
	}

	var open []string
	rootSeen := false
	for {
		offset := d.InputOffset()
		tok, err := d.RawToken()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var se *xml.SyntaxError
			if errors.As(err, &se) {
				return fail(se.Msg)
			}
			return fail(err.Error())
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if len(open) == 0 && rootSeen {
				return fail("multiple root elements")
			}
			name := qualified(t.Name)
			seen := make(map[string]struct{}, len(t.Attr))
			for _, a := range t.Attr {
				an := qualified(a.Name)
				if _, dup := seen[an]; dup {
					return fail(fmt.Sprintf("duplicate attribute %q in <%s>", an, name))
				}
				seen[an] = struct{}{}
			}
			rootSeen = true
			open = append(open, name)
			if h != nil {
				h.start(name, t.Attr, valueless(text[offset:d.InputOffset()]))
			}
		case xml.EndElement:
			name := qualified(t.Name)
			if len(open) == 0 {
				return fail(fmt.Sprintf("closing tag </%s> has no matching opening tag", name))
			}
			if top := open[len(open)-1]; top != name {
				return fail(fmt.Sprintf("expected </%s>, found </%s>", top, name))
			}
			open = open[:len(open)-1]
			if h != nil {
				h.end(name)
			}
		case xml.CharData:
			if len(open) == 0 {
				if strings.TrimSpace(string(t)) != "" {
					return fail("text outside the root element")
				}
				continue
			}
			if h != nil {
				h.text(string(t))
			}
		}
	}

	if len(open) > 0 {
		return fail(fmt.Sprintf("unclosed tag <%s>", open[len(open)-1]))
	}
	if !rootSeen {
		return fail("no root element")
	}
	return nil
}

// valueless returns the attribute names in a raw start tag that are not
// followed by "=".
func valueless(tag string) map[string]bool {
	var bare map[string]bool
	i := strings.IndexAny(tag, " \t\r\n/>")
	if i < 0 {
		return nil
	}
	for i < len(tag) {
		for i < len(tag) && isSpace(tag[i]) {
			i++
		}
		if i >= len(tag) || tag[i] == '/' || tag[i] == '>' {
			break
		}
		start := i
		for i < len(tag) && !isSpace(tag[i]) && !strings.ContainsRune("=/>", rune(tag[i])) {
			i++
		}
		name := tag[start:i]
		for i < len(tag) && isSpace(tag[i]) {
			i++
		}
		if i >= len(tag) || tag[i] != '=' {
			if bare == nil {
				bare = map[string]bool{}
			}
			bare[name] = true
			continue
		}
		i++
		for i < len(tag) && isSpace(tag[i]) {
			i++
		}
		if i < len(tag) && (tag[i] == '"' || tag[i] == '\'') {
			end := strings.IndexByte(tag[i+1:], tag[i])
			if end < 0 {
				break
			}
			i += end + 2
			continue
		}
		for i < len(tag) && !isSpace(tag[i]) && tag[i] != '/' && tag[i] != '>' {
			i++
		}
	}
	return bare
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func qualified(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}

type frame struct {
	name string
	node Node
	text strings.Builder
}

type builder struct {
	opts  Options
	stack []*frame
}

func (b *builder) start(name string, attrs []xml.Attr, bare map[string]bool) {
	f := &frame{name: name, node: Node{}}
	for _, a := range attrs {
		key := qualified(a.Name)
		if bare[key] && !b.opts.NoInference {
			// non-strict decoding reports <x flag> as flag="flag"
			f.node[key] = true
			continue
		}
		f.node[key] = b.value(a.Value, false)
	}
	b.stack = append(b.stack, f)
}

func (b *builder) text(data string) {
	b.stack[len(b.stack)-1].text.WriteString(data)
}

func (b *builder) end(string) {
	f := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	parent := b.stack[len(b.stack)-1]

	text := strings.TrimSpace(f.text.String())
	raw := b.opts.rawText(f.name)

	var v any
	switch {
	case len(f.node) == 0:
		v = b.value(text, raw)
	default:
		if text != "" {
			f.node[TextKey] = b.value(text, raw)
		}
		v = f.node
	}

	existing, ok := parent.node[f.name]
	switch {
	case !ok:
		parent.node[f.name] = v
	default:
		if seq, isSeq := existing.([]any); isSeq {
			parent.node[f.name] = append(seq, v)
		} else {
			parent.node[f.name] = []any{existing, v}
		}
	}
}

var (
	intPattern   = regexp.MustCompile(`^[-+]?\d+$`)
	floatPattern = regexp.MustCompile(`^[-+]?(\d+\.\d*|\.\d+|\d+)([eE][-+]?\d+)?$`)
)

func (b *builder) value(s string, raw bool) any {
	if raw || b.opts.NoInference {
		return s
	}
	return Infer(s)
}

// Infer converts numeric and boolean text into int64, float64 or bool.
// Anything else is returned unchanged.
func Infer(s string) any {
	switch s {
	case "true":
		return true
	case "false":
		return false
	}
	if intPattern.MatchString(s) {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n
		}
		return s
	}
	if floatPattern.MatchString(s) {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}
	return s
}
