package format

import (
	"io"
	"os"

	"github.com/signadot/vtree/ir"
)

// Read reads a whole document in format f from r.
func Read(r io.Reader, f Format, opts ...Option) (ir.Value, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return ir.Value{}, &IOError{Op: "read", Origin: newOptions(opts).origin, Err: err}
	}
	return Parse(d, f, opts...)
}

// Parse parses a document in format f.
func Parse(d []byte, f Format, opts ...Option) (ir.Value, error) {
	switch f {
	case YAMLFormat:
		return ReadYAML(d, opts...)
	case JSONFormat:
		return ReadJSON(d, opts...)
	}
	_, err := f.MarshalText()
	return ir.Value{}, err
}

// ReadFile reads the file name, choosing the format by its extension.
// Extensions other than .json, .yaml and .yml are handed to viper.
func ReadFile(name string, opts ...Option) (ir.Value, error) {
	f, err := ForFile(name)
	if err != nil {
		return readViper(name)
	}
	d, err := os.ReadFile(name)
	if err != nil {
		return ir.Value{}, &IOError{Op: "read", Origin: name, Err: err}
	}
	return Parse(d, f, append([]Option{Origin(name)}, opts...)...)
}

// Encode renders v in format f.
func Encode(v ir.Value, f Format, opts ...Option) ([]byte, error) {
	switch f {
	case YAMLFormat:
		return WriteYAML(v, opts...)
	case JSONFormat:
		return WriteJSON(v, opts...)
	}
	_, err := f.MarshalText()
	return nil, err
}

// Write renders v in format f to w.
func Write(w io.Writer, v ir.Value, f Format, opts ...Option) error {
	d, err := Encode(v, f, opts...)
	if err != nil {
		return err
	}
	if _, err := w.Write(d); err != nil {
		return &IOError{Op: "write", Origin: newOptions(opts).origin, Err: err}
	}
	return nil
}
