package webclient

import (
	"bufio"
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"code.cloudfoundry.org/bytefmt"
	"github.com/HexmosTech/webclient/exchange"
	"github.com/HexmosTech/webclient/flags"
	"github.com/HexmosTech/webclient/input"
	"github.com/HexmosTech/webclient/output"
	"github.com/HexmosTech/webclient/version"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Exit codes returned by ExitCode.
const (
	ExitOK    = 0
	ExitError = 1
	// ExitFatal mirrors an abnormal termination, used for an invalid --json.
	ExitFatal = 101
)

type Options struct {
	// Args defaults to os.Args. Args[0] is the program name.
	Args   []string
	Stdout io.Writer
	Stderr io.Writer
}

func Main(options *Options) error {
	args := options.Args
	if args == nil {
		args = os.Args
	}
	stdout := options.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := options.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	// Parse flags
	flagSet, optionSet, err := flags.Parse(args)
	if err != nil {
		if _, ok := errors.Cause(err).(*input.UsageError); ok {
			flagSet.PrintUsage(stderr)
		}
		return err
	}
	if optionSet.PrintHelp {
		flagSet.PrintUsage(stdout)
		return nil
	}
	if optionSet.PrintVersion {
		fmt.Fprintf(stdout, "webclient %s\n", version.Current())
		return nil
	}
	if optionSet.PrintLicense {
		version.PrintLicenses(stdout)
		return nil
	}

	logger := newLogger(optionSet.Verbose, stderr)
	defer logger.Sync()

	// Parse positional arguments
	in, err := input.ParseArgs(flagSet.Args(), &optionSet.InputOptions)
	if _, ok := errors.Cause(err).(*input.UsageError); ok {
		flagSet.PrintUsage(stderr)
		return err
	}
	if err != nil {
		return err
	}
	logger.Debug("parsed request",
		zap.String("method", string(in.Method)),
		zap.String("url", in.URL),
		zap.Stringer("body", in.Body.BodyType))

	writer := bufio.NewWriter(stdout)
	defer writer.Flush()
	printer := output.NewPrinter(writer, &optionSet.OutputOptions)

	return exchangeAndPrint(in, &optionSet.ExchangeOptions, printer, logger)
}

// exchangeAndPrint validates the URL, sends the request and prints the
// outcome. URL, connection and status failures are reported to the user and
// are not returned as errors.
func exchangeAndPrint(in *input.Input, options *exchange.Options, printer output.Printer, logger *zap.Logger) error {
	if err := printer.PrintRequestLine(in); err != nil {
		return err
	}

	target, err := input.NormalizeURL(in.URL)
	if err != nil {
		urlErr, ok := err.(*input.URLError)
		if !ok {
			return err
		}
		logger.Debug("URL rejected", zap.Stringer("kind", urlErr.Kind), zap.Error(urlErr))
		return printer.PrintError(urlErr.Message())
	}
	request := *in
	if target != in.URL {
		logger.Debug("URL normalized", zap.String("url", target))
		request.URL = target
	}

	// Send request and receive response
	resp, err := exchange.SendRequest(&request, options)
	if connectErr, ok := errors.Cause(err).(*exchange.ConnectError); ok {
		logger.Debug("connection failed", zap.Error(connectErr.Err))
		return printer.PrintError(connectErr.Message())
	}
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	logger.Debug("response received",
		zap.Int("status", resp.StatusCode),
		zap.String("proto", resp.Proto))

	if err := exchange.CheckStatus(resp); err != nil {
		statusErr := err.(*exchange.StatusError)
		return printer.PrintError(statusErr.Message())
	}

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "reading response body")
	}
	logger.Debug("response body read", zap.String("size", bytefmt.ByteSize(uint64(len(body)))))

	// Only POST responses are interpreted as JSON.
	return printer.PrintBody(body, in.Method == input.MethodPost)
}

func newLogger(verbose bool, w io.Writer) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(w),
		zapcore.DebugLevel,
	)
	return zap.New(core)
}

// ExitCode maps an error returned by Main to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if _, ok := errors.Cause(err).(*input.JSONError); ok {
		return ExitFatal
	}
	return ExitError
}
