package ll2utm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseError_Error(t *testing.T) {
	var cause = errors.New("bad")

	tests := []struct {
		name     string
		err      *ParseError
		expected string
	}{
		{"nothing known", &ParseError{Err: cause}, "parse error: bad"},
		{"line only", &ParseError{Line: 4, Err: cause}, "parse error on line 4: bad"},
		{"column only", &ParseError{Column: "ahd", Err: cause}, `parse error in column "ahd": bad`},
		{"everything", &ParseError{Line: 4, Column: "ahd", Value: "x", Err: cause}, `parse error on line 4, column "ahd", value "x": bad`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
			assert.ErrorIs(t, tt.err, cause)
		})
	}
}

func TestErrorsUnwrap(t *testing.T) {
	var cause = errors.New("cause")

	for _, err := range []error{
		&SourceOpenError{Path: "in.csv", Err: cause},
		&TransformError{Point: 1, Err: cause},
		&SinkOpenError{Path: "out.csv", Err: cause},
		&WriteError{Path: "out.csv", Err: cause},
	} {
		assert.ErrorIs(t, err, cause, err.Error())
	}
}
