package flags

import (
	"reflect"
	"testing"

	"github.com/HexmosTech/webclient/exchange"
	"github.com/HexmosTech/webclient/input"
	"github.com/HexmosTech/webclient/output"
	"github.com/pkg/errors"
)

func noPassword(userName string) (string, error) {
	return "", errors.New("password prompt is not expected")
}

func TestParse(t *testing.T) {
	flagSet, optionSet, err := parse([]string{"webclient", "http://example.com"}, terminalInfo{
		stdoutIsTerminal: true,
	}, noPassword)
	if err != nil {
		t.Fatalf("unexpected error: err=%+v", err)
	}

	expectedArgs := []string{"http://example.com"}
	if !reflect.DeepEqual(expectedArgs, flagSet.Args()) {
		t.Errorf("unexpected returned args: expected=%v, actual=%v", expectedArgs, flagSet.Args())
	}
	expectedOptionSet := &OptionSet{
		ExchangeOptions: exchange.Options{
			FollowRedirects: true,
		},
		OutputOptions: output.Options{
			EnableColor: true,
		},
	}
	if !reflect.DeepEqual(expectedOptionSet, optionSet) {
		t.Errorf("unexpected option set: expected=\n%+v\nactual=\n%+v", expectedOptionSet, optionSet)
	}
}

func TestParse_InputOptions(t *testing.T) {
	testCases := []struct {
		title        string
		args         []string
		expectedArgs []string
		expected     input.Options
	}{
		{
			title:        "POST with data",
			args:         []string{"webclient", "-X", "POST", "-d", "a=1&b=2", "http://example.com"},
			expectedArgs: []string{"http://example.com"},
			expected: input.Options{
				Method: "POST", HasMethod: true,
				Data: "a=1&b=2", HasData: true,
			},
		},
		{
			title:        "Long names",
			args:         []string{"webclient", "--request=anything", "--data", "a=1", "--form", "http://example.com"},
			expectedArgs: []string{"http://example.com"},
			expected: input.Options{
				Method: "anything", HasMethod: true,
				Data: "a=1", HasData: true,
				Form: true,
			},
		},
		{
			title:        "Empty data is still present",
			args:         []string{"webclient", "-X", "POST", "-d", "", "http://example.com"},
			expectedArgs: []string{"http://example.com"},
			expected: input.Options{
				Method: "POST", HasMethod: true,
				HasData: true,
			},
		},
		{
			title:        "Raw JSON",
			args:         []string{"webclient", "--json", `{"a": 1}`, "http://example.com"},
			expectedArgs: []string{"http://example.com"},
			expected: input.Options{
				JSON: `{"a": 1}`, HasJSON: true,
			},
		},
		{
			title:        "Flags after URL",
			args:         []string{"webclient", "http://example.com", "-X", "POST", "-d", "a=1"},
			expectedArgs: []string{"http://example.com"},
			expected: input.Options{
				Method: "POST", HasMethod: true,
				Data: "a=1", HasData: true,
			},
		},
		{
			title:        "Flags on both sides of URL",
			args:         []string{"webclient", "-X", "POST", "http://example.com", "--data=a=1", "extra"},
			expectedArgs: []string{"http://example.com", "extra"},
			expected: input.Options{
				Method: "POST", HasMethod: true,
				Data: "a=1", HasData: true,
			},
		},
		{
			title:        "Double dash ends options",
			args:         []string{"webclient", "--", "-X", "http://example.com"},
			expectedArgs: []string{"-X", "http://example.com"},
			expected:     input.Options{},
		},
		{
			title:        "No URL",
			args:         []string{"webclient", "-X", "POST"},
			expectedArgs: []string{},
			expected: input.Options{
				Method: "POST", HasMethod: true,
			},
		},
	}
	for _, tt := range testCases {
		t.Run(tt.title, func(t *testing.T) {
			flagSet, optionSet, err := parse(tt.args, terminalInfo{}, noPassword)
			if err != nil {
				t.Fatalf("unexpected error: err=%+v", err)
			}
			if len(flagSet.Args()) != len(tt.expectedArgs) ||
				(len(tt.expectedArgs) > 0 && !reflect.DeepEqual(flagSet.Args(), tt.expectedArgs)) {
				t.Errorf("unexpected args: expected=%v, actual=%v", tt.expectedArgs, flagSet.Args())
			}
			if !reflect.DeepEqual(optionSet.InputOptions, tt.expected) {
				t.Errorf("unexpected input options: expected=%+v, actual=%+v", tt.expected, optionSet.InputOptions)
			}
		})
	}
}

func TestParse_Switches(t *testing.T) {
	_, optionSet, err := parse(
		[]string{"webclient", "-v", "--sort-nested", "--version", "--licenses", "-h"},
		terminalInfo{}, noPassword)
	if err != nil {
		t.Fatalf("unexpected error: err=%+v", err)
	}
	if !optionSet.Verbose || !optionSet.OutputOptions.SortNestedKeys ||
		!optionSet.PrintVersion || !optionSet.PrintLicense || !optionSet.PrintHelp {
		t.Errorf("unexpected option set: %+v", optionSet)
	}
	if optionSet.OutputOptions.EnableColor {
		t.Errorf("color must be disabled when stdout is not a terminal")
	}
}

func TestParse_UnknownFlag(t *testing.T) {
	flagSet, _, err := parse([]string{"webclient", "--no-such-flag", "http://example.com"}, terminalInfo{}, noPassword)
	if err == nil {
		t.Fatalf("expected an error")
	}
	if _, ok := errors.Cause(err).(*input.UsageError); !ok {
		t.Errorf("expected a usage error: %T", errors.Cause(err))
	}
	if flagSet == nil {
		t.Errorf("flag set must be returned for printing usage")
	}
}

func TestParse_Auth(t *testing.T) {
	testCases := []struct {
		title         string
		auth          string
		password      string
		expected      exchange.AuthOptions
		shouldBeError bool
	}{
		{
			title:    "User and password",
			auth:     "alice:open sesame",
			expected: exchange.AuthOptions{Enabled: true, UserName: "alice", Password: "open sesame"},
		},
		{
			title:    "Password containing colon",
			auth:     "alice:a:b",
			expected: exchange.AuthOptions{Enabled: true, UserName: "alice", Password: "a:b"},
		},
		{
			title:    "Empty password",
			auth:     "alice:",
			expected: exchange.AuthOptions{Enabled: true, UserName: "alice", Password: ""},
		},
		{
			title:    "Password is prompted",
			auth:     "alice",
			password: "prompted",
			expected: exchange.AuthOptions{Enabled: true, UserName: "alice", Password: "prompted"},
		},
		{
			title:         "Empty value",
			auth:          "",
			shouldBeError: true,
		},
	}
	for _, tt := range testCases {
		t.Run(tt.title, func(t *testing.T) {
			ask := func(userName string) (string, error) {
				if tt.password == "" {
					return noPassword(userName)
				}
				return tt.password, nil
			}
			_, optionSet, err := parse([]string{"webclient", "--auth", tt.auth, "http://example.com"}, terminalInfo{}, ask)
			if (err != nil) != tt.shouldBeError {
				t.Fatalf("unexpected error: shouldBeError=%v, err=%v", tt.shouldBeError, err)
			}
			if err != nil {
				return
			}
			if !reflect.DeepEqual(optionSet.ExchangeOptions.Auth, tt.expected) {
				t.Errorf("unexpected auth options: expected=%+v, actual=%+v", tt.expected, optionSet.ExchangeOptions.Auth)
			}
		})
	}
}
