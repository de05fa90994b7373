package lengthcheck

import "fmt"

// The intrinsic length of a string is its byte count, matching len. It is
// the cheap default; reach for the chars rules when the value may contain
// multi-byte scalars and the scalar count is what matters.

// MinLenString validates that a string is at least min long.
func MinLenString[S ~string](field string, value S, min int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) >= min
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at least %d characters long", min),
			TranslationKey: "validation.min_length",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}

// MaxLenString validates that a string is at most max long.
func MaxLenString[S ~string](field string, value S, max int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at most %d characters long", max),
			TranslationKey: "validation.max_length",
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}

// LenString validates that a string is exactly the given length.
func LenString[S ~string](field string, value S, exact int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) == exact
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be exactly %d characters long", exact),
			TranslationKey: "validation.exact_length",
			TranslationValues: map[string]any{
				"field":  field,
				"length": exact,
			},
		},
	}
}

// LenStringBetween validates that a string's length falls within the
// inclusive [min, max] bound.
func LenStringBetween[S ~string](field string, value S, min, max int) Rule {
	return Rule{
		Check: func() bool {
			return inRange(len(value), min, max)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be between %d and %d characters long", min, max),
			TranslationKey: "validation.length_between",
			TranslationValues: map[string]any{
				"field":  field,
				"min":    min,
				"max":    max,
				"actual": len(value),
			},
		},
	}
}

// Convenience aliases for common string validation cases

// MinLen is an alias for MinLenString.
func MinLen[S ~string](field string, value S, min int) Rule {
	return MinLenString(field, value, min)
}

// MaxLen is an alias for MaxLenString.
func MaxLen[S ~string](field string, value S, max int) Rule {
	return MaxLenString(field, value, max)
}

// Len is an alias for LenString.
func Len[S ~string](field string, value S, exact int) Rule {
	return LenString(field, value, exact)
}
