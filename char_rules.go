package lengthcheck

import (
	"fmt"
	"unicode/utf8"
)

// RuneSeq constrains sequences that are already scalar-granular: their
// scalar count is the element count, no decoding involved.
type RuneSeq interface {
	~[]rune
}

// runeCount returns the number of Unicode scalar values value decodes to.
// Invalid UTF-8 bytes each decode to one replacement character.
func runeCount[S ByteSeq](value S) int {
	return utf8.RuneCountInString(string(value))
}

// MinChars validates that a value decodes to at least min Unicode scalar
// values. This walks the full encoding, unlike MinBytes which reads the
// stored length.
func MinChars[S ByteSeq](field string, value S, min int) Rule {
	return Rule{
		Check: func() bool {
			return runeCount(value) >= min
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at least %d characters long", min),
			TranslationKey: "validation.min_chars",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}

// MaxChars validates that a value decodes to at most max Unicode scalar
// values.
func MaxChars[S ByteSeq](field string, value S, max int) Rule {
	return Rule{
		Check: func() bool {
			return runeCount(value) <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at most %d characters long", max),
			TranslationKey: "validation.max_chars",
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}

// LenChars validates that a value decodes to exactly the given number of
// Unicode scalar values.
func LenChars[S ByteSeq](field string, value S, exact int) Rule {
	return Rule{
		Check: func() bool {
			return runeCount(value) == exact
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be exactly %d characters long", exact),
			TranslationKey: "validation.exact_chars",
			TranslationValues: map[string]any{
				"field":  field,
				"length": exact,
			},
		},
	}
}

// CharsBetween validates that the number of Unicode scalar values a value
// decodes to falls within the inclusive [min, max] bound.
func CharsBetween[S ByteSeq](field string, value S, min, max int) Rule {
	count := runeCount(value)
	return Rule{
		Check: func() bool {
			return inRange(count, min, max)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be between %d and %d characters long", min, max),
			TranslationKey: "validation.chars_between",
			TranslationValues: map[string]any{
				"field":  field,
				"min":    min,
				"max":    max,
				"actual": count,
			},
		},
	}
}

// MinRunes validates that a rune sequence holds at least min scalar values.
// The sequence is already decoded, so the count is the element count.
func MinRunes[S RuneSeq](field string, value S, min int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) >= min
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at least %d characters long", min),
			TranslationKey: "validation.min_chars",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}

// MaxRunes validates that a rune sequence holds at most max scalar values.
func MaxRunes[S RuneSeq](field string, value S, max int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at most %d characters long", max),
			TranslationKey: "validation.max_chars",
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}

// LenRunes validates that a rune sequence holds exactly the given number of
// scalar values.
func LenRunes[S RuneSeq](field string, value S, exact int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) == exact
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be exactly %d characters long", exact),
			TranslationKey: "validation.exact_chars",
			TranslationValues: map[string]any{
				"field":  field,
				"length": exact,
			},
		},
	}
}

// RunesBetween validates that a rune sequence's element count falls within
// the inclusive [min, max] bound.
func RunesBetween[S RuneSeq](field string, value S, min, max int) Rule {
	return Rule{
		Check: func() bool {
			return inRange(len(value), min, max)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be between %d and %d characters long", min, max),
			TranslationKey: "validation.chars_between",
			TranslationValues: map[string]any{
				"field":  field,
				"min":    min,
				"max":    max,
				"actual": len(value),
			},
		},
	}
}
