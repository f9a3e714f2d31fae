package gomap

import "fmt"

// MarshalError reports a failure while encoding a Go value into a Value.
type MarshalError struct {
	FieldPath string // path in the Value being built, e.g. "/spec/ports[2]"
	Message   string
	Err       error
}

func (e *MarshalError) Error() string {
	msg := e.Message
	if e.Err != nil {
		if msg == "" {
			msg = e.Err.Error()
		} else {
			msg += ": " + e.Err.Error()
		}
	}
	if e.FieldPath != "" {
		return fmt.Sprintf("marshal error at %s: %s", e.FieldPath, msg)
	}
	return fmt.Sprintf("marshal error: %s", msg)
}

func (e *MarshalError) Unwrap() error {
	return e.Err
}

// UnmarshalError reports a Value whose shape does not match the Go value it
// is decoded into.
type UnmarshalError struct {
	FieldPath string
	Message   string
	Err       error
}

func (e *UnmarshalError) Error() string {
	msg := e.Message
	if e.Err != nil {
		if msg == "" {
			msg = e.Err.Error()
		} else {
			msg += ": " + e.Err.Error()
		}
	}
	if e.FieldPath != "" {
		return fmt.Sprintf("unmarshal error at %s: %s", e.FieldPath, msg)
	}
	return fmt.Sprintf("unmarshal error: %s", msg)
}

func (e *UnmarshalError) Unwrap() error {
	return e.Err
}
