package validator

import (
	"cmp"
	"fmt"
	"iter"
	"maps"
	"slices"
)

// Tags of the collection validators.
const (
	TagIteratorLength Tag = "iterator:length"
	TagSliceLength    Tag = "length:slice"
	TagMapLength      Tag = "length:map"
)

// Sized is implemented by targets that know their length without iteration.
type Sized interface {
	Len() int
}

// CollectionIterate converts the target into an iteration source and forwards
// it to inner. It opens no report scope of its own.
func CollectionIterate[C, S, D any](source func(C) S, inner Validator[S, D]) Validator[C, D] {
	return ValidatorFunc[C, D](func(c Collector, acc Accessor, target C, data D, parent *Report) error {
		return inner.Run(c, acc, source(target), data, parent)
	})
}

// SliceValues is a CollectionIterate source over slice elements.
func SliceValues[E any](s []E) iter.Seq[E] {
	return slices.Values(s)
}

type mapEntry[K, V any] struct {
	key   K
	value V
}

// MapEntries is a CollectionIterate source over map entries in ascending key
// order. Entries are copied before sorting, so keys that never compare equal to
// themselves (NaN) keep their values.
func MapEntries[K cmp.Ordered, V any](m map[K]V) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		entries := make([]mapEntry[K, V], 0, len(m))
		for k, v := range maps.All(m) {
			entries = append(entries, mapEntry[K, V]{key: k, value: v})
		}
		slices.SortStableFunc(entries, func(a, b mapEntry[K, V]) int {
			return cmp.Compare(a.key, b.key)
		})
		for _, e := range entries {
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

// IteratorIndexed runs inner on every element with an Index accessor. All
// element reports are gathered under one intermediate report labelled with
// the outer accessor, which is merged into parent once. An exit signal from an
// element skips the remaining elements.
func IteratorIndexed[E, D any](inner Validator[E, D]) Validator[iter.Seq[E], D] {
	return ValidatorFunc[iter.Seq[E], D](func(c Collector, acc Accessor, target iter.Seq[E], data D, parent *Report) error {
		child := NewReport(acc)

		var runErr error
		i := 0
		for elem := range target {
			if runErr = inner.Run(c, Index(i), elem, data, child); runErr != nil {
				break
			}
			i++
		}

		applyErr := c.Apply(parent, child)
		if runErr != nil {
			return runErr
		}
		return applyErr
	})
}

// IteratorKeyed runs inner on every value with a Key accessor built from the
// entry's key. Reports are gathered like IteratorIndexed.
func IteratorKeyed[K, V, D any](inner Validator[V, D]) Validator[iter.Seq2[K, V], D] {
	return ValidatorFunc[iter.Seq2[K, V], D](func(c Collector, acc Accessor, target iter.Seq2[K, V], data D, parent *Report) error {
		child := NewReport(acc)

		var runErr error
		for k, v := range target {
			if runErr = inner.Run(c, Key(fmt.Sprint(k)), v, data, child); runErr != nil {
				break
			}
		}

		applyErr := c.Apply(parent, child)
		if runErr != nil {
			return runErr
		}
		return applyErr
	})
}

// EachIndexed validates every element of a slice.
func EachIndexed[E, D any](inner Validator[E, D]) Validator[[]E, D] {
	return CollectionIterate(SliceValues[E], IteratorIndexed(inner))
}

// EachKeyed validates every value of a map, in key order.
func EachKeyed[K cmp.Ordered, V, D any](inner Validator[V, D]) Validator[map[K]V, D] {
	return CollectionIterate(MapEntries[K, V], IteratorKeyed[K](inner))
}

// IteratorLengthEquals drains the sequence and checks it yields exactly n elements.
func IteratorLengthEquals[E, D any](n int) Validator[iter.Seq[E], D] {
	return Check[iter.Seq[E], D](TagIteratorLength, fmt.Sprintf("is not %d items long", n), func(seq iter.Seq[E]) bool {
		count := 0
		for range seq {
			count++
		}
		return count == n
	}, n)
}

// ExactSizeIteratorLengthEquals checks the length with a single Len call.
func ExactSizeIteratorLengthEquals[T Sized, D any](n int) Validator[T, D] {
	return Check[T, D](TagIteratorLength, fmt.Sprintf("is not %d items long", n), func(target T) bool {
		return target.Len() == n
	}, n)
}

// SliceLen forwards the slice length to inner.
func SliceLen[D, E any](inner Validator[int, D]) Validator[[]E, D] {
	return Derive(TagSliceLength, func(s []E) int { return len(s) }, inner)
}

// MapLen forwards the map size to inner.
func MapLen[D any, K comparable, V any](inner Validator[int, D]) Validator[map[K]V, D] {
	return Derive(TagMapLength, func(m map[K]V) int { return len(m) }, inner)
}
