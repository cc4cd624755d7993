package seqs

import (
	"fmt"
	"iter"
	"regexp"

	"github.com/go-softwarelab/common/pkg/is"
)

// A Matcher decides whether a sequence element matches. The comparison
// strategy is fixed when the matcher is built, so Grep and First dispatch on
// a single function call rather than inspecting the matcher per element.
//
// Four kinds are provided: value equality ([Eq]), type test ([OfType]),
// regular expression ([Pattern]) and arbitrary predicate ([Pred]).
type Matcher[T any] interface {
	Match(v T) bool
}

type matcherFunc[T any] func(T) bool

func (f matcherFunc[T]) Match(v T) bool { return f(v) }

// Eq matches elements equal to want.
func Eq[T comparable](want T) Matcher[T] {
	return matcherFunc[T](is.EqualTo(want))
}

// Pred matches elements for which the predicate returns true.
func Pred[T any](predicate func(T) bool) Matcher[T] {
	return matcherFunc[T](predicate)
}

// OfType matches elements whose dynamic type is U (or implements U).
// It is typically used with sequences of interface values.
func OfType[U any, T any]() Matcher[T] {
	return matcherFunc[T](func(v T) bool {
		_, ok := any(v).(U)
		return ok
	})
}

// Pattern matches elements whose string form matches the regular expression.
// Elements that are strings are matched directly; elements implementing
// fmt.Stringer are matched on their String result; anything else is rendered
// with the %v verb first.
func Pattern[T any](re *regexp.Regexp) Matcher[T] {
	return matcherFunc[T](func(v T) bool {
		return re.MatchString(stringify(v))
	})
}

func stringify(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case fmt.Stringer:
		return s.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Grep yields the elements of seq accepted by the matcher.
func Grep[T any](seq iter.Seq[T], m Matcher[T]) iter.Seq[T] {
	return Filter(seq, m.Match)
}

// GrepIndexed yields (index, element) for every accepted element. Indexes are
// zero-based offsets from the start of seq, counted over all elements, not
// just the accepted ones.
func GrepIndexed[T any](seq iter.Seq[T], m Matcher[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for v := range seq {
			if m.Match(v) {
				if !yield(i, v) {
					return
				}
			}
			i++
		}
	}
}
