package xmlnode

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"
)

const indent = "  "

// FormatOptions controls Format output.
type FormatOptions struct {
	// OmitDeclaration drops a leading <?xml ...?> instruction.
	OmitDeclaration bool
}

// Format pretty-prints text with two-space indentation. The result is for
// display only; it is not guaranteed to parse back into the same Node.
func Format(text string, opts FormatOptions) (string, error) {
	if err := scan(text, nil); err != nil {
		return "", &ParseError{Err: err}
	}

	d := xml.NewDecoder(strings.NewReader(text))
	d.Strict = false

	var buf bytes.Buffer
	enc := xml.NewEncoder(&buf)
	enc.Indent("", indent)

	for {
		tok, err := d.RawToken()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			t.Name = xml.Name{Local: qualified(t.Name)}
			attrs := make([]xml.Attr, len(t.Attr))
			for i, a := range t.Attr {
				attrs[i] = xml.Attr{Name: xml.Name{Local: qualified(a.Name)}, Value: a.Value}
			}
			t.Attr = attrs
			err = enc.EncodeToken(t)
		case xml.EndElement:
			err = enc.EncodeToken(xml.EndElement{Name: xml.Name{Local: qualified(t.Name)}})
		case xml.CharData:
			trimmed := bytes.TrimSpace(t)
			if len(trimmed) == 0 {
				continue
			}
			err = enc.EncodeToken(xml.CharData(trimmed))
		case xml.ProcInst:
			if opts.OmitDeclaration || t.Target != "xml" {
				continue
			}
			if err = enc.EncodeToken(t.Copy()); err == nil {
				err = enc.EncodeToken(xml.CharData("\n"))
			}
		case xml.Comment:
			err = enc.EncodeToken(t.Copy())
		case xml.Directive:
			err = enc.EncodeToken(t.Copy())
		}
		if err != nil {
			return "", err
		}
	}

	if err := enc.Flush(); err != nil {
		return "", err
	}
	return buf.String(), nil
}
