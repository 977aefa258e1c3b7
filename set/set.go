// Package set provides a generic set type backed by a map, along with the
// set algebra operating on it.
//
// Every operation treats its inputs as read-only and returns a freshly
// allocated set, so a result never aliases one of its arguments.
package set

import (
	"cmp"
	"slices"
)

// Set represents a generic set data structure
type Set[T comparable] map[T]struct{}

// New creates a new empty set
func New[T comparable]() Set[T] {
	return make(Set[T])
}

// NewWithValues creates a new set with the given values
func NewWithValues[T comparable](values ...T) Set[T] {
	return NewFromSlice(values)
}

// NewFromSlice creates a new set from the given slice
func NewFromSlice[T comparable](slice []T) Set[T] {
	s := make(Set[T], len(slice))
	for _, elem := range slice {
		s.Add(elem)
	}
	return s
}

// Add adds a value to the set
func (s Set[T]) Add(value T) {
	s[value] = struct{}{}
}

// Contains checks if a value exists in the set
func (s Set[T]) Contains(value T) bool {
	_, exists := s[value]
	return exists
}

// DoesNotContain checks if a value does not exist in the set
func (s Set[T]) DoesNotContain(value T) bool {
	return !s.Contains(value)
}

// Remove removes a value from the set
func (s Set[T]) Remove(value T) {
	delete(s, value)
}

// Size returns the number of elements in the set
func (s Set[T]) Size() int {
	return len(s)
}

// IsEmpty returns true if the set is empty
func (s Set[T]) IsEmpty() bool {
	return len(s) == 0
}

// ToSlice returns all values as a slice, in no particular order.
func (s Set[T]) ToSlice() []T {
	result := make([]T, 0, len(s))
	for value := range s {
		result = append(result, value)
	}
	return result
}

// Clear removes all elements from the set
func (s Set[T]) Clear() {
	clear(s)
}

// Clone returns a shallow copy of the set. The elements themselves are not copied.
func (s Set[T]) Clone() Set[T] {
	result := make(Set[T], len(s))
	for value := range s {
		result.Add(value)
	}
	return result
}

// Union returns a new set containing all elements from both sets
func (s Set[T]) Union(other Set[T]) Set[T] {
	return Union(s, other)
}

// Intersection returns a new set containing only elements present in both sets
func (s Set[T]) Intersection(other Set[T]) Set[T] {
	return Intersection(s, other)
}

// Difference returns a new set containing elements in s but not in other
func (s Set[T]) Difference(other Set[T]) Set[T] {
	return Difference(s, other)
}

// SymmetricDifference returns a new set containing elements in exactly one of s and other
func (s Set[T]) SymmetricDifference(other Set[T]) Set[T] {
	return SymmetricDifference(s, other)
}

// Equal reports whether s and other hold the same elements
func (s Set[T]) Equal(other Set[T]) bool {
	return Equal(s, other)
}

// Sorted returns the elements of the set in ascending order.
func Sorted[T cmp.Ordered](s Set[T]) []T {
	result := s.ToSlice()
	slices.Sort(result)
	return result
}
