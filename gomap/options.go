package gomap

// EncodeOption configures ToValue and Walk.
type EncodeOption interface {
	applyEncode(*encodeConfig)
}

// DecodeOption configures FromValue and NewDecoder.
type DecodeOption interface {
	applyDecode(*decodeConfig)
}

// Option is accepted in both directions.
type Option interface {
	EncodeOption
	DecodeOption
}

const defaultTag = "vt"

type encodeConfig struct {
	tag       string
	omitEmpty bool
}

type decodeConfig struct {
	tag             string
	disallowUnknown bool
}

func newEncodeConfig(opts []EncodeOption) *encodeConfig {
	cfg := &encodeConfig{tag: defaultTag}
	for _, opt := range opts {
		opt.applyEncode(cfg)
	}
	return cfg
}

func newDecodeConfig(opts []DecodeOption) *decodeConfig {
	cfg := &decodeConfig{tag: defaultTag}
	for _, opt := range opts {
		opt.applyDecode(cfg)
	}
	return cfg
}

type tagName string

func (t tagName) applyEncode(c *encodeConfig) { c.tag = string(t) }
func (t tagName) applyDecode(c *decodeConfig) { c.tag = string(t) }

// TagName selects the struct tag key naming fields. The default is "vt".
func TagName(name string) Option { return tagName(name) }

type omitEmpty bool

func (o omitEmpty) applyEncode(c *encodeConfig) { c.omitEmpty = bool(o) }

// OmitEmpty makes every struct field behave as if tagged omitempty.
func OmitEmpty(v bool) EncodeOption { return omitEmpty(v) }

type disallowUnknown bool

func (d disallowUnknown) applyDecode(c *decodeConfig) { c.disallowUnknown = bool(d) }

// DisallowUnknownFields makes decoding into a struct fail on map keys which
// name no field.
func DisallowUnknownFields(v bool) DecodeOption { return disallowUnknown(v) }
