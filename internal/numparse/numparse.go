// Package numparse implements lenient base-10 integer parsing.
package numparse

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

// Prefix returns the longest leading part of s that reads as a base-10
// integer: an optional sign followed by ASCII digits, after any leading
// whitespace. ok is false when s has no digits in that position.
func Prefix(s string) (digits string, ok bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return "", false
	}
	return s[:end], true
}

// Int parses the integer prefix of s and returns 0 when there is none.
// A prefix too large for an int is clamped to math.MaxInt or math.MinInt.
//
// A prefix that legitimately reads as zero also yields 0; callers cannot
// tell it apart from a failed parse.
func Int(s string) int {
	digits, ok := Prefix(s)
	if !ok {
		return 0
	}
	n, err := strconv.ParseInt(digits, 10, strconv.IntSize)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0
	}
	return int(n)
}
