package flags

import (
	"io"
	"os"
	"strings"

	"github.com/HexmosTech/webclient/exchange"
	"github.com/HexmosTech/webclient/input"
	"github.com/HexmosTech/webclient/output"
	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt"
	"github.com/pkg/errors"
)

type FlagSet interface {
	Args() []string
	PrintUsage(w io.Writer)
}

type OptionSet struct {
	InputOptions    input.Options
	ExchangeOptions exchange.Options
	OutputOptions   output.Options

	Verbose      bool
	PrintHelp    bool
	PrintVersion bool
	PrintLicense bool
}

type terminalInfo struct {
	stdoutIsTerminal bool
}

func Parse(args []string) (FlagSet, *OptionSet, error) {
	return parse(args, terminalInfo{
		stdoutIsTerminal: isatty.IsTerminal(os.Stdout.Fd()),
	}, askPassword)
}

// parse returns the flag set even on error so that the caller can print usage.
func parse(args []string, terminalInfo terminalInfo, askPassword func(userName string) (string, error)) (FlagSet, *OptionSet, error) {
	inputOptions := input.Options{}
	outputOptions := output.Options{}
	exchangeOptions := exchange.Options{
		FollowRedirects: true,
	}
	optionSet := &OptionSet{}
	var auth string

	flagSet := &optionFlagSet{Set: getopt.New()}
	flagSet.SetParameters("URL")
	methodFlag := flagSet.StringVarLong(&inputOptions.Method, "request", 'X', "send a POST request with the -d data (any value)", "METHOD")
	dataFlag := flagSet.StringVarLong(&inputOptions.Data, "data", 'd', "form data, e.g. 'a=1&b=2' (required with -X)", "DATA")
	jsonFlag := flagSet.StringVarLong(&inputOptions.JSON, "json", 0, "send a raw JSON document as a POST body (overrides -X and -d)", "JSON")
	flagSet.BoolVarLong(&inputOptions.Form, "form", 'f', "serialize -d data as application/x-www-form-urlencoded instead of JSON")
	flagSet.BoolVarLong(&outputOptions.SortNestedKeys, "sort-nested", 0, "sort keys of nested JSON objects too")
	authFlag := flagSet.StringVarLong(&auth, "auth", 'a', "basic authentication; the password is prompted when omitted", "USER[:PASS]")
	flagSet.BoolVarLong(&optionSet.Verbose, "verbose", 'v', "write debug logs to stderr")
	flagSet.BoolVarLong(&optionSet.PrintVersion, "version", 0, "print version and exit")
	flagSet.BoolVarLong(&optionSet.PrintLicense, "licenses", 0, "print license information and exit")
	flagSet.BoolVarLong(&optionSet.PrintHelp, "help", 'h', "print this help and exit")
	operands, err := getoptInterspersed(flagSet, args)
	if err != nil {
		return flagSet, nil, err
	}
	flagSet.operands = operands

	inputOptions.HasMethod = methodFlag.Seen()
	inputOptions.HasData = dataFlag.Seen()
	inputOptions.HasJSON = jsonFlag.Seen()

	// Parse --auth
	if authFlag.Seen() {
		authOptions, err := parseAuth(auth, askPassword)
		if err != nil {
			return flagSet, nil, err
		}
		exchangeOptions.Auth = *authOptions
	}

	// Color
	outputOptions.EnableColor = terminalInfo.stdoutIsTerminal

	optionSet.InputOptions = inputOptions
	optionSet.ExchangeOptions = exchangeOptions
	optionSet.OutputOptions = outputOptions
	return flagSet, optionSet, nil
}

// optionFlagSet reports the operands collected across all Getopt passes.
type optionFlagSet struct {
	*getopt.Set
	operands []string
}

func (f *optionFlagSet) Args() []string {
	return f.operands
}

// getoptInterspersed lets flags appear on either side of the URL. getopt
// stops at the first operand, so parsing restarts after each one until the
// arguments are used up or "--" ends option processing.
func getoptInterspersed(flagSet *optionFlagSet, args []string) ([]string, error) {
	if len(args) == 0 {
		return nil, nil
	}
	program := args[0]
	var operands []string
	for {
		if err := flagSet.Getopt(args, nil); err != nil {
			return nil, newUsageError(err.Error())
		}
		rest := flagSet.Set.Args()
		if len(rest) == 0 {
			return operands, nil
		}
		if flagSet.State == getopt.DashDash {
			return append(operands, rest...), nil
		}
		operands = append(operands, rest[0])
		args = append([]string{program}, rest[1:]...)
	}
}

func parseAuth(auth string, askPassword func(userName string) (string, error)) (*exchange.AuthOptions, error) {
	if auth == "" {
		return nil, newUsageError("--auth requires USER[:PASS]")
	}
	userName, password, ok := strings.Cut(auth, ":")
	if !ok {
		var err error
		password, err = askPassword(userName)
		if err != nil {
			return nil, err
		}
	}
	return &exchange.AuthOptions{
		Enabled:  true,
		UserName: userName,
		Password: password,
	}, nil
}

func newUsageError(message string) error {
	u := input.UsageError(message)
	return errors.WithStack(&u)
}
