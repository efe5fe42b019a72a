package input

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

type UsageError string

func (e *UsageError) Error() string {
	return string(*e)
}

func newUsageError(message string) error {
	u := UsageError(message)
	return errors.WithStack(&u)
}

// JSONError reports a --json value that is not a valid JSON document.
// It is fatal: the program terminates abnormally without sending anything.
type JSONError struct {
	Err error
}

func (e *JSONError) Error() string {
	return "invalid JSON in --json: " + e.Err.Error()
}

func (e *JSONError) Unwrap() error {
	return e.Err
}

func ParseArgs(args []string, options *Options) (*Input, error) {
	switch len(args) {
	case 0:
		return nil, newUsageError("URL is required")
	case 1:
	default:
		return nil, newUsageError("too many arguments: only one URL is accepted")
	}

	in := Input{URL: args[0]}

	body, err := parseBody(options)
	if err != nil {
		return nil, err
	}
	in.Body = body
	in.Method = guessMethod(&in)

	return &in, nil
}

func parseBody(options *Options) (Body, error) {
	switch {
	case options.HasJSON:
		raw, err := parseRawJSON(options.JSON)
		if err != nil {
			return Body{}, err
		}
		return Body{BodyType: RawJSONBody, RawJSON: raw}, nil

	case options.HasMethod:
		if !options.HasData {
			return Body{}, newUsageError("-d is required when -X is given")
		}
		bodyType := JSONBody
		if options.Form {
			bodyType = FormBody
		}
		return Body{BodyType: bodyType, Fields: ParseFormPairs(options.Data)}, nil

	default:
		return Body{BodyType: EmptyBody}, nil
	}
}

func parseRawJSON(s string) ([]byte, error) {
	var v interface{}
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return nil, errors.WithStack(&JSONError{Err: err})
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, []byte(s)); err != nil {
		return nil, errors.WithStack(&JSONError{Err: err})
	}
	return buf.Bytes(), nil
}

func guessMethod(in *Input) Method {
	if in.Body.BodyType == EmptyBody {
		return MethodGet
	} else {
		return MethodPost
	}
}
