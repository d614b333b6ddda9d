// Package codec is the boundary the editor talks to: XML text in, typed
// document out, and back again.
package codec

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/blacksmoke26/dawn-of-man-generator-sub003/internal/construct"
	"github.com/blacksmoke26/dawn-of-man-generator-sub003/internal/environment"
	"github.com/blacksmoke26/dawn-of-man-generator-sub003/internal/scenario"
	"github.com/blacksmoke26/dawn-of-man-generator-sub003/internal/xmlnode"
)

// Declaration prefixes every rendered document.
const Declaration = `<?xml version="1.0" encoding="utf-8"?>` + "\n"

var (
	ErrUnknownRoot = errors.New("unknown document root")
	ErrUnknownKind = errors.New("unknown document kind")
)

// Document is *environment.Environment or *scenario.Scenario.
type Document interface {
	Kind() string
	Render() string
}

var (
	_ Document = (*environment.Environment)(nil)
	_ Document = (*scenario.Scenario)(nil)
)

// Kinds lists the accepted document kinds.
func Kinds() []string {
	return []string{environment.RootTag, scenario.RootTag}
}

var parseOptions = xmlnode.Options{RawText: []string{construct.StringTag}}

// Parse reads an environment or scenario document. Malformed text yields a
// *xmlnode.ParseError; any other root yields ErrUnknownRoot.
func Parse(text string) (Document, error) {
	tree, err := xmlnode.Parse(text, parseOptions)
	if err != nil {
		return nil, err
	}
	return fromTree(tree)
}

func fromTree(tree xmlnode.Node) (Document, error) {
	// a root holding only text still names its kind; the text is ignored
	name, root, _ := tree.Root()
	switch name {
	case environment.RootTag:
		return environment.FromNode(root, environment.Options{}), nil
	case scenario.RootTag:
		return scenario.FromNode(root, scenario.Options{}), nil
	}
	return nil, errors.Wrapf(ErrUnknownRoot, "<%s>", name)
}

// Render writes doc with the XML declaration.
func Render(doc Document) string {
	return Declaration + doc.Render()
}

// Normalize parses text and renders it back in canonical form.
func Normalize(text string) (Document, string, error) {
	doc, err := Parse(text)
	if err != nil {
		return nil, "", err
	}
	return doc, Render(doc), nil
}

// New returns an empty document of kind.
func New(kind string) (Document, error) {
	switch kind {
	case environment.RootTag:
		return &environment.Environment{}, nil
	case scenario.RootTag:
		return &scenario.Scenario{}, nil
	}
	return nil, errors.Wrapf(ErrUnknownKind, "%q", kind)
}

// DecodeJSON decodes the structured form of a document of kind.
func DecodeJSON(kind string, raw []byte) (Document, error) {
	doc, err := New(kind)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, doc); err != nil {
		return nil, errors.Wrapf(err, "decode %s", kind)
	}
	return doc, nil
}
