package arrayfn

import (
	"strconv"
	"strings"
	"unicode/utf8"
	"unsafe"

	"github.com/KasperOmsK/arrayfn/internal/numparse"
)

// Bookend returns a new slice holding only the first and last values of xs.
//
// An empty input gives an empty slice; a single value is repeated twice.
func Bookend[T Number](xs []T) []T {
	if len(xs) == 0 {
		return []T{}
	}
	return []T{xs[0], xs[len(xs)-1]}
}

// Triple returns a new slice where every value of xs is multiplied by 3.
func Triple[T Number](xs []T) []T {
	return Map(xs, func(v T) T {
		return v * 3
	})
}

// ParseIntegers parses every string as a base-10 integer prefix.
// Strings that cannot be parsed become 0.
func ParseIntegers(ss []string) []int {
	return Map(ss, numparse.Int)
}

// StripDollarsAndParse behaves like ParseIntegers, except that a single
// leading "$" is dropped from each string before parsing.
func StripDollarsAndParse(ss []string) []int {
	stripped := Map(ss, func(s string) string {
		return strings.TrimPrefix(s, "$")
	})
	return ParseIntegers(stripped)
}

// ShoutFilterQuestions uppercases every string ending in "!" and then drops
// every string ending in "?".
//
// Uppercasing maps each rune on its own (strings.ToUpper), so "ß" stays "ß"
// rather than expanding to "SS".
func ShoutFilterQuestions(ss []string) []string {
	shouted := Map(ss, func(s string) string {
		if strings.HasSuffix(s, "!") {
			return strings.ToUpper(s)
		}
		return s
	})
	return Filter(shouted, func(s string) bool {
		return !strings.HasSuffix(s, "?")
	})
}

// shortWordLen is the exclusive upper bound, in runes, of a short word.
const shortWordLen = 4

// CountShort returns how many strings are shorter than four runes.
// Length is counted in runes, not bytes: "😀😀" is two runes long.
func CountShort(ss []string) int {
	return Count(ss, func(s string) bool {
		return utf8.RuneCountInString(s) < shortWordLen
	})
}

var colorSet = map[string]struct{}{
	"red":   {},
	"blue":  {},
	"green": {},
}

// AllInColorSet reports whether every string is exactly "red", "blue" or
// "green". It is true for an empty slice.
func AllInColorSet(ss []string) bool {
	return Every(ss, func(s string) bool {
		_, ok := colorSet[s]
		return ok
	})
}

// SumExpression renders xs as an addition, e.g. [1 2 3] becomes "6=1+2+3".
// An empty slice renders as "0=0".
func SumExpression[T Number](xs []T) string {
	addends := "0"
	if len(xs) > 0 {
		addends = strings.Join(Map(xs, formatNumber[T]), "+")
	}
	return formatNumber(Sum(xs)) + "=" + addends
}

// InjectRunningSumAfterFirstNegative returns a copy of xs with the sum of
// the values preceding the first negative value inserted right after it.
// When no value is negative, the sum of all values is appended instead.
//
// For example, [1 9 -5 7] becomes [1 9 -5 10 7] and [1 9 7] becomes [1 9 7 17].
func InjectRunningSumAfterFirstNegative[T Number](xs []T) []T {
	i := IndexFunc(xs, func(v T) bool {
		return v < 0
	})
	if i < 0 {
		return InsertAt(xs, len(xs), Sum(xs))
	}
	return InsertAt(xs, i+1, Sum(xs[:i]))
}

func formatNumber[T Number](v T) string {
	// T(1)/2 is only non-zero for floating point types, and T(0)-1 only
	// wraps above zero for unsigned ones.
	switch {
	case T(1)/2 != 0:
		return strconv.FormatFloat(float64(v), 'f', -1, int(unsafe.Sizeof(v))*8)
	case T(0)-1 > 0:
		return strconv.FormatUint(uint64(v), 10)
	default:
		return strconv.FormatInt(int64(v), 10)
	}
}
