// SPDX-License-Identifier: Apache-2.0

package digits

import (
	"errors"
	"fmt"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in    string
		value uint64
		n     int
		err   error
	}{
		{in: "123123", value: 123123, n: 6},
		{in: "0", value: 0, n: 1},
		{in: "007", value: 7, n: 3},
		{in: "42-55", value: 42, n: 2},
		{in: "9 trailing", value: 9, n: 1},
		{in: "18446744073709551615", value: 18446744073709551615, n: 20},
		{in: "", err: ErrInvalidNumber},
		{in: "-42", err: ErrInvalidNumber},
		{in: "x9", err: ErrInvalidNumber},
		{in: " 9", err: ErrInvalidNumber},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.in), func(t *testing.T) {
			value, n, err := Parse([]byte(tt.in))

			if !errors.Is(err, tt.err) {
				t.Fatalf("want err %v, got %v", tt.err, err)
			}
			if value != tt.value {
				t.Errorf("want value %d, got %d", tt.value, value)
			}
			if n != tt.n {
				t.Errorf("want %d digits consumed, got %d", tt.n, n)
			}
		})
	}
}
