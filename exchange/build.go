package exchange

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"

	"github.com/HexmosTech/webclient/input"
	"github.com/HexmosTech/webclient/version"
	"github.com/pkg/errors"
)

func BuildHTTPRequest(in *input.Input, options *Options) (*http.Request, error) {
	u, err := url.Parse(in.URL)
	if err != nil {
		return nil, errors.Wrap(err, "parsing URL")
	}

	bodyTuple, err := buildHTTPBody(in)
	if err != nil {
		return nil, err
	}

	header := make(http.Header)
	if bodyTuple.contentType != "" {
		header.Set("Content-Type", bodyTuple.contentType)
	}
	header.Set("User-Agent", fmt.Sprintf("webclient/%s", version.Current()))

	r := http.Request{
		Method:        string(in.Method),
		URL:           u,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        header,
		Host:          u.Host,
		Body:          bodyTuple.body,
		ContentLength: bodyTuple.contentLength,
	}
	if bodyTuple.body != nil {
		raw := bodyTuple.raw
		r.GetBody = func() (io.ReadCloser, error) {
			return ioutil.NopCloser(bytes.NewReader(raw)), nil
		}
	}
	if options.Auth.Enabled {
		r.SetBasicAuth(options.Auth.UserName, options.Auth.Password)
	}
	return &r, nil
}

type bodyTuple struct {
	body          io.ReadCloser
	raw           []byte
	contentLength int64
	contentType   string
}

func newBodyTuple(raw []byte, contentType string) bodyTuple {
	return bodyTuple{
		body:          ioutil.NopCloser(bytes.NewReader(raw)),
		raw:           raw,
		contentLength: int64(len(raw)),
		contentType:   contentType,
	}
}

func buildHTTPBody(in *input.Input) (bodyTuple, error) {
	switch in.Body.BodyType {
	case input.EmptyBody:
		return bodyTuple{}, nil
	case input.JSONBody:
		return buildJSONBody(in)
	case input.FormBody:
		return buildFormBody(in)
	case input.RawJSONBody:
		return buildRawJSONBody(in)
	default:
		return bodyTuple{}, errors.Errorf("unknown body type: %v", in.Body.BodyType)
	}
}

// buildJSONBody sends the form pairs as a JSON object of strings.
func buildJSONBody(in *input.Input) (bodyTuple, error) {
	obj := map[string]interface{}{}
	for _, field := range in.Body.Fields {
		obj[field.Name] = field.Value
	}
	body, err := json.Marshal(obj)
	if err != nil {
		return bodyTuple{}, errors.Wrap(err, "marshaling JSON of HTTP body")
	}
	return newBodyTuple(body, "application/json"), nil
}

func buildFormBody(in *input.Input) (bodyTuple, error) {
	form := url.Values{}
	for _, field := range in.Body.Fields {
		form.Set(field.Name, field.Value)
	}
	body := form.Encode()
	return newBodyTuple([]byte(body), "application/x-www-form-urlencoded; charset=utf-8"), nil
}

func buildRawJSONBody(in *input.Input) (bodyTuple, error) {
	if !json.Valid(in.Body.RawJSON) {
		return bodyTuple{}, errors.New("raw JSON body is not valid JSON")
	}
	return newBodyTuple(in.Body.RawJSON, "application/json"), nil
}
