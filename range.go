package lengthcheck

import "fmt"

// inRange reports whether count lies within the inclusive [min, max] bound.
// Both ends are inclusive and no ordering of min and max is assumed; an
// inverted bound admits no count. Every Between rule delegates here.
func inRange(count, min, max int) bool {
	return count >= min && count <= max
}

// CountBetween validates a pre-measured count against an inclusive
// [min, max] bound. It is the terminal primitive behind every Between rule;
// use it directly when the count is already known, e.g. from a custom
// measurement.
func CountBetween(field string, count, min, max int) Rule {
	return Rule{
		Check: func() bool {
			return inRange(count, min, max)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("length must be between %d and %d", min, max),
			TranslationKey: "validation.length_between",
			TranslationValues: map[string]any{
				"field":  field,
				"min":    min,
				"max":    max,
				"actual": count,
			},
		},
	}
}
