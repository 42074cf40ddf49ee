// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package counter8

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrValueRange is returned when a value does not fit in 8 bits. Use
// errors.Cause to test for it.
//
var ErrValueRange = errors.New("value out of range [0, 255]")

// ParseValue parses an 8-bit value. Decimal, hexadecimal (0x), octal (0o) and
// binary (0b) notations are accepted.
//
func ParseValue(s string) (uint8, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return 0, errors.Wrapf(ErrValueRange, "parse %q", s)
		}
		return 0, errors.Wrapf(err, "invalid value %q", s)
	}
	if v < 0 || v > 0xFF {
		return 0, errors.Wrapf(ErrValueRange, "parse %q", s)
	}
	return uint8(v), nil
}
