package output

import (
	"io"

	"github.com/HexmosTech/webclient/input"
)

type Printer interface {
	// PrintRequestLine announces the request about to be made.
	PrintRequestLine(in *input.Input) error
	// PrintError prints a one-line diagnostic such as a URL or status error.
	PrintError(message string) error
	// PrintBody prints a successful response body. When canonicalize is true
	// and the body is a JSON object it is printed with sorted keys; otherwise
	// the raw text is printed.
	PrintBody(body []byte, canonicalize bool) error
}

func NewPrinter(w io.Writer, options *Options) Printer {
	if options.EnableColor {
		return NewPrettyPrinter(PrettyPrinterConfig{
			Writer:         w,
			EnableColor:    true,
			SortNestedKeys: options.SortNestedKeys,
		})
	}
	return NewPlainPrinter(w, options.SortNestedKeys)
}
