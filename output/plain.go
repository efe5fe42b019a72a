package output

import (
	"fmt"
	"io"

	"github.com/HexmosTech/webclient/input"
	"github.com/pkg/errors"
)

type PlainPrinter struct {
	writer         io.Writer
	sortNestedKeys bool
}

func NewPlainPrinter(writer io.Writer, sortNestedKeys bool) Printer {
	return &PlainPrinter{
		writer:         writer,
		sortNestedKeys: sortNestedKeys,
	}
}

func (p *PlainPrinter) PrintRequestLine(in *input.Input) error {
	fmt.Fprintf(p.writer, "Requesting URL: %s\n", in.URL)
	fmt.Fprintf(p.writer, "Method: %s\n", in.Method)
	return nil
}

func (p *PlainPrinter) PrintError(message string) error {
	if message == "" {
		return nil
	}
	fmt.Fprintln(p.writer, message)
	return nil
}

func (p *PlainPrinter) PrintBody(body []byte, canonicalize bool) error {
	fmt.Fprintln(p.writer, "Response body:")
	if canonicalize {
		if s, err := Canonicalize(body, p.sortNestedKeys); err == nil {
			fmt.Fprintln(p.writer, s)
			return nil
		}
	}
	return p.printRaw(body)
}

func (p *PlainPrinter) printRaw(body []byte) error {
	if _, err := p.writer.Write(body); err != nil {
		return errors.Wrap(err, "printing response body")
	}
	return nil
}
