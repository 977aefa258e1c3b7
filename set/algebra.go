package set

// Union returns the set of elements appearing in at least one of the given sets.
//
// With no sets it returns an empty set, with a single set it returns a copy of it.
func Union[T comparable](sets ...Set[T]) Set[T] {
	switch len(sets) {
	case 0:
		return New[T]()
	case 1:
		return sets[0].Clone()
	}

	result := New[T]()
	for _, s := range sets {
		for value := range s {
			result.Add(value)
		}
	}
	return result
}

// UnionPair returns the union of two sets whose element types may differ.
//
// Go has no union types, so the result is widened to a set of any. Two
// elements of different dynamic types are never equal, hence int(1) and
// int64(1) are kept as distinct members.
func UnionPair[T1 comparable, T2 comparable](a Set[T1], b Set[T2]) Set[any] {
	result := make(Set[any], len(a)+len(b))
	for value := range a {
		result.Add(value)
	}
	for value := range b {
		result.Add(value)
	}
	return result
}

// Intersection returns the elements present in every one of the given sets.
//
// The first set is used as the candidate pool, each candidate is probed
// against all remaining sets. Argument order therefore only affects cost.
func Intersection[T comparable](sets ...Set[T]) Set[T] {
	switch len(sets) {
	case 0:
		return New[T]()
	case 1:
		return sets[0].Clone()
	}

	first, rest := sets[0], sets[1:]
	result := New[T]()
	for value := range first {
		if containedInAll(rest, value) {
			result.Add(value)
		}
	}
	return result
}

func containedInAll[T comparable](sets []Set[T], value T) bool {
	for _, s := range sets {
		if s.DoesNotContain(value) {
			return false
		}
	}
	return true
}

// Disjoint returns true if a and b share no element.
func Disjoint[T comparable](a, b Set[T]) bool {
	for value := range b {
		if a.Contains(value) {
			return false
		}
	}
	return true
}

// Subset returns true if every element of b is in a, that is b ⊆ a.
//
// Note the argument order: a is the containing set.
func Subset[T comparable](a, b Set[T]) bool {
	for value := range b {
		if a.DoesNotContain(value) {
			return false
		}
	}
	return true
}

// ProperSubset returns true if b ⊆ a and a has strictly more elements than b.
func ProperSubset[T comparable](a, b Set[T]) bool {
	if a.Size() <= b.Size() {
		return false
	}
	return Subset(a, b)
}

// Equal returns true if a and b contain exactly the same elements.
func Equal[T comparable](a, b Set[T]) bool {
	if a.Size() != b.Size() {
		return false
	}
	// same cardinality and b ⊆ a implies a ⊆ b
	return Subset(a, b)
}

// Difference returns the elements of a that are not in b.
func Difference[T comparable](a, b Set[T]) Set[T] {
	result := New[T]()
	for value := range a {
		if b.DoesNotContain(value) {
			result.Add(value)
		}
	}
	return result
}

// SymmetricDifference returns the elements present in an odd number of the given sets.
//
// Each element of each set toggles its membership in the result. For two
// sets this is (a ∪ b) − (a ∩ b); for more sets it is a parity count, so an
// element shared by all of three sets is kept.
func SymmetricDifference[T comparable](sets ...Set[T]) Set[T] {
	result := New[T]()
	for _, s := range sets {
		for value := range s {
			if result.Contains(value) {
				result.Remove(value)
			} else {
				result.Add(value)
			}
		}
	}
	return result
}
