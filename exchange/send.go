package exchange

import (
	"net/http"

	"github.com/HexmosTech/webclient/input"
	"github.com/pkg/errors"
)

// SendRequest performs exactly one HTTP exchange for in.
// A transport failure is reported as *ConnectError; any status code is
// returned as a normal response and left to CheckStatus.
func SendRequest(in *input.Input, options *Options) (*http.Response, error) {
	client, err := BuildHTTPClient(options)
	if err != nil {
		return nil, err
	}
	r, err := BuildHTTPRequest(in, options)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(r)
	if err != nil {
		return nil, errors.WithStack(&ConnectError{URL: in.URL, Err: err})
	}

	return resp, nil
}

func CheckStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	return &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
}
