package lengthcheck

import (
	"fmt"
	"unicode/utf16"
)

// utf16Count returns the number of 16-bit code units in the UTF-16 encoding
// of value. Scalars above U+FFFF encode as a surrogate pair and count as 2.
func utf16Count[S ByteSeq](value S) int {
	n := 0
	for _, r := range string(value) {
		n += utf16.RuneLen(r)
	}
	return n
}

// MinUTF16 validates that a value encodes to at least min UTF-16 code units.
// Useful when the value is consumed by a UTF-16-based system such as a
// JavaScript runtime or a Windows API.
func MinUTF16[S ByteSeq](field string, value S, min int) Rule {
	return Rule{
		Check: func() bool {
			return utf16Count(value) >= min
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at least %d UTF-16 code units long", min),
			TranslationKey: "validation.min_utf16",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}

// MaxUTF16 validates that a value encodes to at most max UTF-16 code units.
func MaxUTF16[S ByteSeq](field string, value S, max int) Rule {
	return Rule{
		Check: func() bool {
			return utf16Count(value) <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at most %d UTF-16 code units long", max),
			TranslationKey: "validation.max_utf16",
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}

// LenUTF16 validates that a value encodes to exactly the given number of
// UTF-16 code units.
func LenUTF16[S ByteSeq](field string, value S, exact int) Rule {
	return Rule{
		Check: func() bool {
			return utf16Count(value) == exact
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be exactly %d UTF-16 code units long", exact),
			TranslationKey: "validation.exact_utf16",
			TranslationValues: map[string]any{
				"field":  field,
				"length": exact,
			},
		},
	}
}

// UTF16Between validates that a value's UTF-16 code unit count falls within
// the inclusive [min, max] bound.
func UTF16Between[S ByteSeq](field string, value S, min, max int) Rule {
	count := utf16Count(value)
	return Rule{
		Check: func() bool {
			return inRange(count, min, max)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be between %d and %d UTF-16 code units long", min, max),
			TranslationKey: "validation.utf16_between",
			TranslationValues: map[string]any{
				"field":  field,
				"min":    min,
				"max":    max,
				"actual": count,
			},
		},
	}
}
