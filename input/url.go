package input

import (
	"fmt"
	"net"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

var reScheme = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*:`)

// Schemes that must carry a non-empty host.
var specialSchemes = map[string]bool{
	"http":  true,
	"https": true,
	"ws":    true,
	"wss":   true,
	"ftp":   true,
}

type URLErrorKind int

const (
	OtherURLError URLErrorKind = iota
	NoBaseProtocol
	InvalidIPv6Address
	InvalidIPv4Address
	InvalidPort
)

func (k URLErrorKind) String() string {
	switch k {
	case NoBaseProtocol:
		return "no base protocol"
	case InvalidIPv6Address:
		return "invalid IPv6 address"
	case InvalidIPv4Address:
		return "invalid IPv4 address"
	case InvalidPort:
		return "invalid port number"
	default:
		return "invalid URL"
	}
}

// URLError is returned by ValidateURL.
type URLError struct {
	Kind URLErrorKind
	URL  string
	Err  error
}

func (e *URLError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.URL, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.URL)
}

func (e *URLError) Unwrap() error {
	return e.Err
}

// Message returns the diagnostic shown to the user.
// It is empty for OtherURLError, which is reported silently.
func (e *URLError) Message() string {
	switch e.Kind {
	case NoBaseProtocol:
		return "Error: The URL does not have a valid base protocol."
	case InvalidIPv6Address:
		return "Error: The URL contains an invalid IPv6 address."
	case InvalidIPv4Address:
		return "Error: The URL contains an invalid IPv4 address."
	case InvalidPort:
		return "Error: The URL contains an invalid port number."
	default:
		return ""
	}
}

// ValidateURL checks that rawurl is an absolute URL that can be requested.
// It never touches the network. The returned error, if any, is a *URLError.
func ValidateURL(rawurl string) error {
	_, err := NormalizeURL(rawurl)
	return err
}

// NormalizeURL validates rawurl like ValidateURL and returns the URL to
// request. Numeric IPv4 hosts in short or hex form are rewritten to dotted
// quads and a special scheme written without "//" gets its authority back;
// any other URL is returned unchanged.
func NormalizeURL(rawurl string) (string, error) {
	// net/url accepts data:// as an absolute URL with a host.
	if strings.HasPrefix(rawurl, "data://") {
		return "", &URLError{Kind: NoBaseProtocol, URL: rawurl}
	}
	scheme := reScheme.FindString(rawurl)
	if scheme == "" {
		return "", &URLError{Kind: NoBaseProtocol, URL: rawurl}
	}

	target := rawurl
	special := specialSchemes[strings.ToLower(strings.TrimSuffix(scheme, ":"))]
	if special {
		// "http:host", "http:/host" and "http:///host" all name host.
		rest := strings.TrimLeft(rawurl[len(scheme):], `/\`)
		if candidate := scheme + "//" + rest; candidate != rawurl {
			target = candidate
		}
	}

	u, err := url.Parse(target)
	if err != nil {
		return "", &URLError{Kind: classifyParseError(err), URL: rawurl, Err: err}
	}
	if u.Scheme == "" {
		return "", &URLError{Kind: NoBaseProtocol, URL: rawurl}
	}

	if strings.HasPrefix(u.Host, "[") {
		if !isIPv6Literal(u.Host) {
			return "", &URLError{Kind: InvalidIPv6Address, URL: rawurl}
		}
	} else if hostname := u.Hostname(); endsInNumber(hostname) {
		ipv4, ok := parseIPv4(hostname)
		if !ok {
			return "", &URLError{Kind: InvalidIPv4Address, URL: rawurl}
		}
		if dotted := formatIPv4(ipv4); dotted != hostname {
			if port := u.Port(); port != "" {
				u.Host = net.JoinHostPort(dotted, port)
			} else {
				u.Host = dotted
			}
			target = u.String()
		}
	}

	if port := u.Port(); port != "" {
		n, err := strconv.Atoi(port)
		if err != nil || n > 65535 {
			return "", &URLError{Kind: InvalidPort, URL: rawurl, Err: err}
		}
	}

	if special && u.Hostname() == "" {
		return "", &URLError{Kind: OtherURLError, URL: rawurl}
	}
	return target, nil
}

func classifyParseError(err error) URLErrorKind {
	message := err.Error()
	if ue, ok := err.(*url.Error); ok {
		message = ue.Err.Error()
	}
	switch {
	case strings.HasPrefix(message, "missing protocol scheme"):
		return NoBaseProtocol
	case strings.HasPrefix(message, "invalid port"):
		return InvalidPort
	case strings.HasPrefix(message, "missing ']'"), strings.Contains(message, "IPv6"), strings.Contains(message, "IP-literal"):
		return InvalidIPv6Address
	default:
		return OtherURLError
	}
}

// isIPv6Literal reports whether host is "[addr]" or "[addr]:port" with an
// IPv6 address inside the brackets. Zone identifiers are not accepted.
func isIPv6Literal(host string) bool {
	end := strings.Index(host, "]")
	if end < 0 {
		return false
	}
	addr := host[1:end]
	if !strings.Contains(addr, ":") || strings.Contains(addr, "%") {
		return false
	}
	return net.ParseIP(addr) != nil
}

// endsInNumber reports whether the last label of host looks numeric, in which
// case host has to be parsed as an IPv4 address.
func endsInNumber(host string) bool {
	if host == "" {
		return false
	}
	labels := strings.Split(host, ".")
	if labels[len(labels)-1] == "" {
		if len(labels) == 1 {
			return false
		}
		labels = labels[:len(labels)-1]
	}
	last := labels[len(labels)-1]
	if last != "" && strings.Trim(last, "0123456789") == "" {
		return true
	}
	_, ok := parseIPv4Number(last)
	return ok
}

// parseIPv4 parses host with the WHATWG URL rules: one to four parts, each in
// decimal, hex (0x) or octal (leading 0), the last part filling the remaining bytes.
func parseIPv4(host string) (uint32, bool) {
	parts := strings.Split(host, ".")
	if parts[len(parts)-1] == "" && len(parts) > 1 {
		parts = parts[:len(parts)-1]
	}
	if len(parts) > 4 {
		return 0, false
	}

	numbers := make([]uint64, 0, len(parts))
	for _, part := range parts {
		n, ok := parseIPv4Number(part)
		if !ok {
			return 0, false
		}
		numbers = append(numbers, n)
	}

	for _, n := range numbers[:len(numbers)-1] {
		if n > 255 {
			return 0, false
		}
	}
	last := numbers[len(numbers)-1]
	if last >= 1<<(8*uint(5-len(numbers))) {
		return 0, false
	}

	ipv4 := last
	for i, n := range numbers[:len(numbers)-1] {
		ipv4 += n << (8 * uint(3-i))
	}
	return uint32(ipv4), true
}

func formatIPv4(ipv4 uint32) string {
	return net.IPv4(byte(ipv4>>24), byte(ipv4>>16), byte(ipv4>>8), byte(ipv4)).String()
}

func parseIPv4Number(s string) (uint64, bool) {
	if s == "" {
		return 0, false
	}
	base := 10
	if len(s) >= 2 && (s[:2] == "0x" || s[:2] == "0X") {
		base = 16
		s = s[2:]
	} else if len(s) >= 2 && s[0] == '0' {
		base = 8
		s = s[1:]
	}
	if s == "" {
		return 0, true
	}
	n, err := strconv.ParseUint(s, base, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
