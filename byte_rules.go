package lengthcheck

import "fmt"

// ByteSeq constrains values whose byte length is measured in storage units:
// UTF-8 code units for string kinds, raw octets for byte-slice kinds. A
// fixed-size byte array participates by slicing (arr[:]).
type ByteSeq interface {
	~string | ~[]byte
}

// MinBytes validates that a value is at least min bytes long. Multi-byte
// scalars count as multiple bytes; use MinChars to count decoded scalars
// instead.
func MinBytes[S ByteSeq](field string, value S, min int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) >= min
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at least %d bytes long", min),
			TranslationKey: "validation.min_bytes",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}

// MaxBytes validates that a value is at most max bytes long.
func MaxBytes[S ByteSeq](field string, value S, max int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at most %d bytes long", max),
			TranslationKey: "validation.max_bytes",
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}

// LenBytes validates that a value is exactly the given number of bytes long.
func LenBytes[S ByteSeq](field string, value S, exact int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) == exact
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be exactly %d bytes long", exact),
			TranslationKey: "validation.exact_bytes",
			TranslationValues: map[string]any{
				"field":  field,
				"length": exact,
			},
		},
	}
}

// BytesBetween validates that a value's byte length falls within the
// inclusive [min, max] bound.
func BytesBetween[S ByteSeq](field string, value S, min, max int) Rule {
	return Rule{
		Check: func() bool {
			return inRange(len(value), min, max)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be between %d and %d bytes long", min, max),
			TranslationKey: "validation.bytes_between",
			TranslationValues: map[string]any{
				"field":  field,
				"min":    min,
				"max":    max,
				"actual": len(value),
			},
		},
	}
}
