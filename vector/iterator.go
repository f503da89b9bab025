// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"

	"github.com/katalvlaran/dmath/scalar"
)

// Sequence is implemented by *Vector[T] and *Vec3[T]: anything an Iterator
// can walk. The unexported method keeps the set closed to this package.
type Sequence[T scalar.Number] interface {
	Len() int
	elem(i int) *T
}

// Iterator is a bidirectional cursor over the elements of a Sequence.
//
// Positions run from 0 to Len; Len is the End sentinel.
//   - Next stops at End (it never runs past it).
//   - Prev from index 0 wraps to End, so a reverse walk terminates on the
//     same Done() check as a forward one:
//
//	for it := v.ReverseBegin(); !it.Done(); it.Prev() { ... }
//
// Writes through Set are visible in the underlying vector.
//
// The zero Iterator walks nothing: it is already Done, Next and Prev keep it
// there, and Get/Set return ErrIteratorEnd.
type Iterator[T scalar.Number] struct {
	target Sequence[T]
	index  int
}

// newIterator clamps index into [0, Len].
func newIterator[T scalar.Number](target Sequence[T], index int) Iterator[T] {
	n := target.Len()
	if index > n || index < 0 {
		index = n
	}

	return Iterator[T]{target: target, index: index}
}

// end returns the End position; 0 for the zero Iterator.
func (it *Iterator[T]) end() int {
	if it.target == nil {
		return 0
	}

	return it.target.Len()
}

// Index returns the current position (Len when at End).
func (it *Iterator[T]) Index() int { return it.index }

// Done reports whether the iterator sits on the End sentinel.
func (it *Iterator[T]) Done() bool { return it.index >= it.end() }

// Next advances one position, saturating at End.
func (it *Iterator[T]) Next() {
	if it.index < it.end() {
		it.index++
	}
}

// Prev moves back one position; from index 0 it wraps to End.
func (it *Iterator[T]) Prev() {
	if it.index == 0 {
		it.index = it.end()
		return
	}
	it.index--
}

// Get returns the current element.
// Errors: ErrIteratorEnd at End.
func (it *Iterator[T]) Get() (T, error) {
	if it.Done() {
		return 0, fmt.Errorf("Iterator.Get(%d): %w", it.index, ErrIteratorEnd)
	}

	return *it.target.elem(it.index), nil
}

// Set overwrites the current element in the underlying vector.
// Errors: ErrIteratorEnd at End.
func (it *Iterator[T]) Set(value T) error {
	if it.Done() {
		return fmt.Errorf("Iterator.Set(%d): %w", it.index, ErrIteratorEnd)
	}
	*it.target.elem(it.index) = value

	return nil
}

// Equal reports whether both iterators walk the same vector and sit on the
// same position.
func (it Iterator[T]) Equal(o Iterator[T]) bool {
	return it.target == o.target && it.index == o.index
}
