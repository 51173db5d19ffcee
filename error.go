// SPDX-License-Identifier: Apache-2.0

package foodb

import (
	"errors"
	"fmt"

	"github.com/foodb/go-foodb/internal/digits"
)

var (
	// ErrInvalidRange reports an interval whose low bound exceeds its
	// high bound.
	ErrInvalidRange = errors.New("interval low bound exceeds high bound")

	// ErrUnmergeable reports a merge of two intervals separated by a
	// genuine gap.
	ErrUnmergeable = errors.New("intervals neither overlap nor touch")

	// ErrNoSeparator reports interval text without a "-" between the
	// two bounds.
	ErrNoSeparator = errors.New(`interval is missing the "-" separator`)

	// ErrTrailingBytes reports interval or query text with bytes left
	// over after the expected numbers were read.
	ErrTrailingBytes = errors.New("unexpected bytes after number")
)

// ErrInvalidNumber reports a numeric field that is empty or does not
// begin with a decimal digit.
var ErrInvalidNumber = digits.ErrInvalidNumber

// A ParseError describes why one line of interval text could not be
// parsed.
type ParseError struct {
	Cause error
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse interval %q: %s", e.Input, e.Cause.Error())
}

func (e *ParseError) Unwrap() error { return e.Cause }

// An InputError identifies the line of a problem input that could not
// be parsed. The engine reports it to the caller; whether to abort is
// the caller's decision.
type InputError struct {
	Cause error
	Line  int
	Text  string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("line %d %q: %s", e.Line, e.Text, e.Cause.Error())
}

func (e *InputError) Unwrap() error { return e.Cause }

func IsInvalidRangeErr(err error) bool  { return errors.Is(err, ErrInvalidRange) }
func IsInvalidNumberErr(err error) bool { return errors.Is(err, ErrInvalidNumber) }
func IsUnmergeableErr(err error) bool   { return errors.Is(err, ErrUnmergeable) }

// IsParseErr reports whether err stems from malformed interval text,
// regardless of which stage of parsing rejected it.
func IsParseErr(err error) bool {
	var e *ParseError
	return errors.As(err, &e)
}
