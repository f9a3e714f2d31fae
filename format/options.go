package format

type options struct {
	origin string
	indent int
}

type Option func(*options)

// Origin labels errors with where the document came from.
func Origin(o string) Option { return func(c *options) { c.origin = o } }

// Indent sets the indentation of written documents. Zero writes compact
// JSON; YAML always indents, by 2 when unset.
func Indent(n int) Option { return func(c *options) { c.indent = n } }

func newOptions(opts []Option) *options {
	res := &options{}
	for _, o := range opts {
		o(res)
	}
	return res
}
