// SPDX-License-Identifier: Apache-2.0

// Package digits parses runs of ASCII decimal digits from raw bytes.
package digits

import (
	"errors"
)

// ErrInvalidNumber is returned when the input is empty or does not
// begin with an ASCII decimal digit.
var ErrInvalidNumber = errors.New("number must begin with a decimal digit")

// Parse consumes the maximal prefix of ASCII decimal digits from b and
// returns its unsigned value along with the count of bytes consumed.
//
// Values wider than 64 bits wrap around silently; callers working near
// the top of the uint64 range must bound their inputs themselves.
func Parse(b []byte) (value uint64, n int, err error) {
	for n < len(b) && b[n] >= '0' && b[n] <= '9' {
		value = value*10 + uint64(b[n]-'0')
		n++
	}
	if n == 0 {
		return 0, 0, ErrInvalidNumber
	}
	return value, n, nil
}
