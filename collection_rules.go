package lengthcheck

import "fmt"

// Measurable is implemented by collections that report their element count,
// such as container/list.List, container/ring.Ring, and heap or deque
// implementations. A nil Measurable measures as empty.
type Measurable interface {
	Len() int
}

func measure(value Measurable) int {
	if value == nil {
		return 0
	}
	return value.Len()
}

// MinLenSlice validates that a slice has at least min elements. Fixed-size
// arrays participate by slicing (arr[:]).
func MinLenSlice[T any](field string, value []T, min int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) >= min
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must have at least %d items", min),
			TranslationKey: "validation.min_items",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}

// MaxLenSlice validates that a slice has at most max elements.
func MaxLenSlice[T any](field string, value []T, max int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must have at most %d items", max),
			TranslationKey: "validation.max_items",
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}

// LenSlice validates that a slice has exactly the given number of elements.
func LenSlice[T any](field string, value []T, exact int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) == exact
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must have exactly %d items", exact),
			TranslationKey: "validation.exact_items",
			TranslationValues: map[string]any{
				"field": field,
				"count": exact,
			},
		},
	}
}

// LenSliceBetween validates that a slice's element count falls within the
// inclusive [min, max] bound.
func LenSliceBetween[T any](field string, value []T, min, max int) Rule {
	return Rule{
		Check: func() bool {
			return inRange(len(value), min, max)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must have between %d and %d items", min, max),
			TranslationKey: "validation.items_between",
			TranslationValues: map[string]any{
				"field":  field,
				"min":    min,
				"max":    max,
				"actual": len(value),
			},
		},
	}
}

// MinLenMap validates that a map has at least min entries. Entry count is
// well defined for maps even though iteration order is not.
func MinLenMap[K comparable, V any](field string, value map[K]V, min int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) >= min
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must have at least %d items", min),
			TranslationKey: "validation.min_items",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}

// MaxLenMap validates that a map has at most max entries.
func MaxLenMap[K comparable, V any](field string, value map[K]V, max int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must have at most %d items", max),
			TranslationKey: "validation.max_items",
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}

// LenMap validates that a map has exactly the given number of entries.
func LenMap[K comparable, V any](field string, value map[K]V, exact int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) == exact
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must have exactly %d items", exact),
			TranslationKey: "validation.exact_items",
			TranslationValues: map[string]any{
				"field": field,
				"count": exact,
			},
		},
	}
}

// LenMapBetween validates that a map's entry count falls within the
// inclusive [min, max] bound.
func LenMapBetween[K comparable, V any](field string, value map[K]V, min, max int) Rule {
	return Rule{
		Check: func() bool {
			return inRange(len(value), min, max)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must have between %d and %d items", min, max),
			TranslationKey: "validation.items_between",
			TranslationValues: map[string]any{
				"field":  field,
				"min":    min,
				"max":    max,
				"actual": len(value),
			},
		},
	}
}

// MinLenOf validates that a Measurable collection has at least min elements.
func MinLenOf(field string, value Measurable, min int) Rule {
	return Rule{
		Check: func() bool {
			return measure(value) >= min
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must have at least %d items", min),
			TranslationKey: "validation.min_items",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}

// MaxLenOf validates that a Measurable collection has at most max elements.
func MaxLenOf(field string, value Measurable, max int) Rule {
	return Rule{
		Check: func() bool {
			return measure(value) <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must have at most %d items", max),
			TranslationKey: "validation.max_items",
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}

// LenOf validates that a Measurable collection has exactly the given number
// of elements.
func LenOf(field string, value Measurable, exact int) Rule {
	return Rule{
		Check: func() bool {
			return measure(value) == exact
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must have exactly %d items", exact),
			TranslationKey: "validation.exact_items",
			TranslationValues: map[string]any{
				"field": field,
				"count": exact,
			},
		},
	}
}

// LenOfBetween validates that a Measurable collection's element count falls
// within the inclusive [min, max] bound.
func LenOfBetween(field string, value Measurable, min, max int) Rule {
	count := measure(value)
	return Rule{
		Check: func() bool {
			return inRange(count, min, max)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must have between %d and %d items", min, max),
			TranslationKey: "validation.items_between",
			TranslationValues: map[string]any{
				"field":  field,
				"min":    min,
				"max":    max,
				"actual": count,
			},
		},
	}
}
