package output

type Options struct {
	EnableColor bool

	// SortNestedKeys makes the canonicalizer sort nested objects as well
	// as the top-level one.
	SortNestedKeys bool
}
