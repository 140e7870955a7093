package ll2utm

import (
	"fmt"
)

// Every failure in a run is one of these.  Each wraps its cause so callers
// can still test for fs.ErrNotExist, strconv.ErrSyntax and friends.

// SourceOpenError reports an input that could not be opened.
type SourceOpenError struct {
	Path string
	Err  error
}

func (e *SourceOpenError) Error() string {
	return fmt.Sprintf("can't open %s for read: %s", e.Path, e.Err)
}

func (e *SourceOpenError) Unwrap() error { return e.Err }

// ParseError reports the first input row that could not be decoded.
// Line is the 1-based line in the source, 0 if unknown.
// Column is the header name involved, empty if the whole row was bad.
type ParseError struct {
	Line   int
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	switch {
	case e.Column == "" && e.Line == 0:
		return fmt.Sprintf("parse error: %s", e.Err)
	case e.Column == "":
		return fmt.Sprintf("parse error on line %d: %s", e.Line, e.Err)
	case e.Line == 0:
		return fmt.Sprintf("parse error in column %q: %s", e.Column, e.Err)
	default:
		return fmt.Sprintf("parse error on line %d, column %q, value %q: %s", e.Line, e.Column, e.Value, e.Err)
	}
}

func (e *ParseError) Unwrap() error { return e.Err }

// TransformError reports coordinates the projection refused.
type TransformError struct {
	Point     uint16
	Latitude  float64
	Longitude float64
	Err       error
}

func (e *TransformError) Error() string {
	return fmt.Sprintf("point %d (latitude %g, longitude %g): conversion to UTM failed: %s", e.Point, e.Latitude, e.Longitude, e.Err)
}

func (e *TransformError) Unwrap() error { return e.Err }

// SinkOpenError reports an output that could not be created.
type SinkOpenError struct {
	Path string
	Err  error
}

func (e *SinkOpenError) Error() string {
	return fmt.Sprintf("can't open %s for write: %s", e.Path, e.Err)
}

func (e *SinkOpenError) Unwrap() error { return e.Err }

// WriteError reports a write, flush or sync failure part way through.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write to %s failed: %s", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// ConfigError reports a missing or inconsistent setting.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}
