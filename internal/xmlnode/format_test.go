package xmlnode

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	t.Parallel()

	in := `<?xml version="1.0" encoding="utf-8"?><scenario><goals><goal id="G1"><condition type="TimeElapsed" value="5"></condition></goal></goals><strings><string id="Name">  Hello  </string></strings></scenario>`

	want := `<?xml version="1.0" encoding="utf-8"?>
<scenario>
  <goals>
    <goal id="G1">
      <condition type="TimeElapsed" value="5"></condition>
    </goal>
  </goals>
  <strings>
    <string id="Name">Hello</string>
  </strings>
</scenario>`

	got, err := Format(in, FormatOptions{})
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if got != want {
		t.Fatalf("unexpected output:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatOmitDeclaration(t *testing.T) {
	t.Parallel()

	got, err := Format(`<?xml version="1.0"?><a><b/></a>`, FormatOptions{OmitDeclaration: true})
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if want := "<a>\n  <b></b>\n</a>"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFormatRejectsMalformed(t *testing.T) {
	t.Parallel()

	_, err := Format(`<a><b></a>`, FormatOptions{})
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
}
