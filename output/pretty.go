package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/HexmosTech/webclient/input"
	"github.com/logrusorgru/aurora"
)

type PrettyPrinter struct {
	writer         io.Writer
	plain          *PlainPrinter
	aurora         aurora.Aurora
	messagePalette *MessagePalette
	jsonPalette    *JSONPalette
	sortNestedKeys bool
}

type PrettyPrinterConfig struct {
	Writer         io.Writer
	EnableColor    bool
	SortNestedKeys bool
}

type MessagePalette struct {
	Label  aurora.Color
	URL    aurora.Color
	Method aurora.Color
	Error  aurora.Color
}

var defaultMessagePalette = MessagePalette{
	Label:  aurora.GrayFg,
	URL:    aurora.CyanFg,
	Method: aurora.GreenFg | aurora.BoldFm,
	Error:  aurora.RedFg | aurora.BoldFm,
}

type JSONPalette struct {
	Name   aurora.Color
	Symbol aurora.Color
}

var defaultJSONPalette = JSONPalette{
	Name:   aurora.BlueFg,
	Symbol: aurora.GrayFg,
}

func NewPrettyPrinter(config PrettyPrinterConfig) Printer {
	return &PrettyPrinter{
		writer: config.Writer,
		plain: &PlainPrinter{
			writer:         config.Writer,
			sortNestedKeys: config.SortNestedKeys,
		},
		aurora:         aurora.NewAurora(config.EnableColor),
		messagePalette: &defaultMessagePalette,
		jsonPalette:    &defaultJSONPalette,
		sortNestedKeys: config.SortNestedKeys,
	}
}

func (p *PrettyPrinter) PrintRequestLine(in *input.Input) error {
	fmt.Fprintf(p.writer, "%s %s\n",
		p.aurora.Colorize("Requesting URL:", p.messagePalette.Label),
		p.aurora.Colorize(in.URL, p.messagePalette.URL))
	fmt.Fprintf(p.writer, "%s %s\n",
		p.aurora.Colorize("Method:", p.messagePalette.Label),
		p.aurora.Colorize(string(in.Method), p.messagePalette.Method))
	return nil
}

func (p *PrettyPrinter) PrintError(message string) error {
	if message == "" {
		return nil
	}
	fmt.Fprintln(p.writer, p.aurora.Colorize(message, p.messagePalette.Error))
	return nil
}

func (p *PrettyPrinter) PrintBody(body []byte, canonicalize bool) error {
	fmt.Fprintln(p.writer, p.aurora.Colorize("Response body:", p.messagePalette.Label))
	if canonicalize {
		var buf strings.Builder
		err := writeCanonical(&buf, body, p.sortNestedKeys, p.aurora, p.jsonPalette)
		if err == nil {
			fmt.Fprintln(p.writer, buf.String())
			return nil
		}
	}
	// Fallback to the raw text when the body is not a JSON object
	return p.plain.printRaw(body)
}
