package cwver

import (
	"errors"
	"fmt"

	"github.com/username/cwver/pkg/dateutil"
)

var (
	// ErrMalformed means the input matches no recognized grammar
	ErrMalformed = errors.New("malformed string")

	// ErrOutOfRange means a numeric field is outside its lexical bound
	ErrOutOfRange = errors.New("value out of range")

	// ErrInvalidWeek means the week does not exist in the resolved ISO year
	ErrInvalidWeek = dateutil.ErrInvalidWeek

	// ErrYearOutOfCentury means the year has no two-digit representation
	ErrYearOutOfCentury = errors.New("year out of century")
)

// ParseError reports the offending input along with the failure class
type ParseError struct {
	Input  string
	Err    error
	Detail string
}

func (e *ParseError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %q", e.Err, e.Input)
	}
	return fmt.Sprintf("%s: %q: %s", e.Err, e.Input, e.Detail)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func newError(input string, err error, format string, args ...interface{}) error {
	return &ParseError{Input: input, Err: err, Detail: fmt.Sprintf(format, args...)}
}
