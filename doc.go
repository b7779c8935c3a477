/*
Package arrayfn provides small, pure transformations over slices of numbers
and strings.

Every function returns a newly allocated value and never modifies its
input, so results can be retained or modified freely by the caller.
Functions do not fail: malformed input degrades to a documented default
(for instance, strings that do not start with an integer parse as 0).

The package is built from a handful of generic transforms (Map, Filter,
Reduce, Every, Count, Sum, IndexFunc and InsertAt), which are exported
for reuse. Transformations are simple functions, making it easy to reuse
existing code:

	trimmed := arrayfn.Map(lines, strings.TrimSpace)

	nonEmpty := arrayfn.Filter(trimmed, func(s string) bool {
	    return s != ""
	})

The named operations compose these transforms:

	arrayfn.Bookend([]int{1, 2, 3})                          // [1 3]
	arrayfn.Triple([]int{1, 2})                              // [3 6]
	arrayfn.ParseIntegers([]string{"3", "x", "-4"})          // [3 0 -4]
	arrayfn.StripDollarsAndParse([]string{"$5", "10"})       // [5 10]
	arrayfn.ShoutFilterQuestions([]string{"hi!", "what?"})   // [HI!]
	arrayfn.CountShort([]string{"a", "bb", "dddd"})          // 2
	arrayfn.AllInColorSet([]string{"red", "blue"})           // true
	arrayfn.SumExpression([]int{1, 2, 3})                    // "6=1+2+3"
	arrayfn.InjectRunningSumAfterFirstNegative([]int{1, -5}) // [1 -5 1]

Numeric operations accept any integer or floating point element type.

The cmd/arrayfn command exposes each named operation on the command line.
*/
package arrayfn
