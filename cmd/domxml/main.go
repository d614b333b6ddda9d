// Command domxml checks, pretty-prints or normalizes a Dawn of Man
// environment or scenario file.
//
//	domxml -mode validate scenario.xml
//	domxml -mode format scenario.xml
//	domxml -mode normalize - < scenario.xml
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/blacksmoke26/dawn-of-man-generator-sub003/internal/codec"
	"github.com/blacksmoke26/dawn-of-man-generator-sub003/internal/xmlnode"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "domxml:", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("domxml", flag.ContinueOnError)
	mode := fs.String("mode", "validate", "validate, format or normalize")
	omitDecl := fs.Bool("no-declaration", false, "drop the xml declaration when formatting")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("expected exactly one file argument (use - for stdin)")
	}

	text, err := readInput(fs.Arg(0), stdin)
	if err != nil {
		return err
	}

	switch *mode {
	case "validate":
		if err := xmlnode.Validate(text); err != nil {
			return errors.Wrap(err, fs.Arg(0))
		}
		doc, err := codec.Parse(text)
		if err != nil {
			return errors.Wrap(err, fs.Arg(0))
		}
		_, err = fmt.Fprintf(stdout, "%s: ok (%s)\n", fs.Arg(0), doc.Kind())
		return err
	case "format":
		out, err := xmlnode.Format(text, xmlnode.FormatOptions{OmitDeclaration: *omitDecl})
		if err != nil {
			return errors.Wrap(err, fs.Arg(0))
		}
		_, err = fmt.Fprintln(stdout, out)
		return err
	case "normalize":
		_, out, err := codec.Normalize(text)
		if err != nil {
			return errors.Wrap(err, fs.Arg(0))
		}
		_, err = fmt.Fprintln(stdout, out)
		return err
	}
	return errors.Errorf("unknown mode %q", *mode)
}

func readInput(name string, stdin io.Reader) (string, error) {
	var (
		data []byte
		err  error
	)
	if name == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return "", errors.Wrap(err, "read input")
	}
	return string(data), nil
}
