package input

// Input is the request intent resolved from the command line.
// It is built once by ParseArgs and never modified afterwards.
type Input struct {
	Method Method
	URL    string
	Body   Body
}

type Method string

const (
	MethodGet  Method = "GET"
	MethodPost Method = "POST"
)

type BodyType int

const (
	EmptyBody BodyType = iota
	JSONBody
	FormBody
	RawJSONBody
)

func (t BodyType) String() string {
	switch t {
	case EmptyBody:
		return "empty"
	case JSONBody:
		return "json"
	case FormBody:
		return "form"
	case RawJSONBody:
		return "raw-json"
	default:
		return "unknown"
	}
}

type Body struct {
	BodyType BodyType
	Fields   []Field // used only when BodyType is JSONBody or FormBody
	RawJSON  []byte  // used only when BodyType == RawJSONBody
}

type Field struct {
	Name  string
	Value string
}
