package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
)

const indent = "    "

// ErrNotObject is returned by Canonicalize when the top-level JSON value is
// an array or a scalar.
var ErrNotObject = errors.New("top-level JSON value is not an object")

// Canonicalize pretty-prints the JSON object in data with its keys in
// ascending byte order. Only the top-level keys are sorted unless recursive
// is true; nested values otherwise keep their member order.
func Canonicalize(data []byte, recursive bool) (string, error) {
	var sb strings.Builder
	if err := writeCanonical(&sb, data, recursive, aurora.NewAurora(false), &defaultJSONPalette); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func writeCanonical(w io.Writer, data []byte, recursive bool, au aurora.Aurora, palette *JSONPalette) error {
	members, err := decodeObject(data)
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(members))
	for key := range members {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	// Render everything first so that nothing is written on failure.
	names := make([]string, len(keys))
	values := make([]string, len(keys))
	for i, key := range keys {
		if names[i], err = encodeString(key); err != nil {
			return err
		}
		if values[i], err = formatValue(members[key], recursive); err != nil {
			return err
		}
	}

	if len(keys) == 0 {
		fmt.Fprint(w, au.Colorize("{}", palette.Symbol))
		return nil
	}
	fmt.Fprintln(w, au.Colorize("{", palette.Symbol))
	for i := range keys {
		fmt.Fprintf(w, "%s%s%s %s", indent,
			au.Colorize(names[i], palette.Name),
			au.Colorize(":", palette.Symbol),
			values[i])
		if i < len(keys)-1 {
			fmt.Fprint(w, au.Colorize(",", palette.Symbol))
		}
		fmt.Fprintln(w)
	}
	fmt.Fprint(w, au.Colorize("}", palette.Symbol))
	return nil
}

func decodeObject(data []byte) (map[string]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(data)
	if !json.Valid(trimmed) {
		return nil, errors.New("parsing response body as JSON: invalid JSON")
	}
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, ErrNotObject
	}
	var members map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &members); err != nil {
		return nil, errors.Wrap(err, "parsing response body as JSON")
	}
	return members, nil
}

func formatValue(raw json.RawMessage, recursive bool) (string, error) {
	if recursive {
		decoder := json.NewDecoder(bytes.NewReader(raw))
		decoder.UseNumber()
		var v interface{}
		if err := decoder.Decode(&v); err != nil {
			return "", errors.Wrap(err, "decoding nested JSON value")
		}
		return encode(v, indent)
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, bytes.TrimSpace(raw), indent, indent); err != nil {
		return "", errors.Wrap(err, "indenting nested JSON value")
	}
	return buf.String(), nil
}

func encodeString(s string) (string, error) {
	return encode(s, "")
}

// encode marshals v without HTML escaping. Objects nested in v come out with
// sorted keys, since encoding/json sorts map keys.
func encode(v interface{}, prefix string) (string, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if prefix != "" {
		encoder.SetIndent(prefix, indent)
	}
	if err := encoder.Encode(v); err != nil {
		return "", errors.Wrap(err, "encoding JSON")
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
