package input

type Options struct {
	// Method is the value of -X. Any value selects a POST with form data.
	Method    string
	HasMethod bool

	Data    string
	HasData bool

	// JSON is the value of --json. When present it overrides -X and -d.
	JSON    string
	HasJSON bool

	// Form sends the -d pairs as application/x-www-form-urlencoded
	// instead of a JSON object.
	Form bool
}
