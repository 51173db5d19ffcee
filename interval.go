// SPDX-License-Identifier: Apache-2.0

package foodb

import (
	"cmp"
	"fmt"

	"github.com/foodb/go-foodb/internal/digits"
)

// Interval represents the span between two points on a number line,
// inclusive on both ends.
//
// An Interval is immutable: operations that would change it, such as
// [Interval.Merge], return a new value instead.
type Interval struct {
	Low, High uint64
}

// NewInterval constructs the interval [low, high]. It returns [ErrInvalidRange]
// when low > high.
func NewInterval(low, high uint64) (Interval, error) {
	if low > high {
		return Interval{}, fmt.Errorf("bad interval [%d,%d]: %w", low, high, ErrInvalidRange)
	}
	return Interval{Low: low, High: high}, nil
}

// ParseInterval reads an interval from its textual form "<low>-<high>": two
// decimal runs separated by a single '-' byte. Failures are reported
// as a *ParseError wrapping the stage that rejected the text.
func ParseInterval(text string) (Interval, error) {
	b := []byte(text)

	low, n, err := digits.Parse(b)
	if err != nil {
		return Interval{}, &ParseError{Cause: err, Input: text}
	}
	b = b[n:]

	if len(b) == 0 || b[0] != '-' {
		return Interval{}, &ParseError{Cause: ErrNoSeparator, Input: text}
	}
	b = b[1:]

	high, n, err := digits.Parse(b)
	if err != nil {
		return Interval{}, &ParseError{Cause: err, Input: text}
	}
	if n != len(b) {
		return Interval{}, &ParseError{Cause: ErrTrailingBytes, Input: text}
	}

	i, err := NewInterval(low, high)
	if err != nil {
		return Interval{}, &ParseError{Cause: err, Input: text}
	}
	return i, nil
}

// Contains returns true if v lies within the interval. Both endpoints
// are included.
func (i Interval) Contains(v uint64) bool {
	return i.Low <= v && v <= i.High
}

// Before returns true if the interval lies entirely below v.
func (i Interval) Before(v uint64) bool {
	return i.High < v
}

// After returns true if the interval lies entirely above v.
func (i Interval) After(v uint64) bool {
	return v < i.Low
}

// Merge combines the interval with other into their minimal covering
// interval [min(Low), max(High)]. It returns [ErrUnmergeable] when the
// two are separated by a gap, that is, when one interval's high end
// precedes the other's low end.
func (i Interval) Merge(other Interval) (Interval, error) {
	if i.High < other.Low || other.High < i.Low {
		return Interval{}, fmt.Errorf("merge %s with %s: %w", i, other, ErrUnmergeable)
	}
	return Interval{
		Low:  min(i.Low, other.Low),
		High: max(i.High, other.High),
	}, nil
}

// Compare orders intervals by their low bound alone, for sorting.
//
// This is not an order on interval identity: two distinct intervals
// with equal low bounds compare as equal regardless of their high
// bounds, and sorting algorithms must treat them as interchangeable.
func (i Interval) Compare(other Interval) int {
	return cmp.Compare(i.Low, other.Low)
}

func (i Interval) String() string {
	return fmt.Sprintf("%d-%d", i.Low, i.High)
}
