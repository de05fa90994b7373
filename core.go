package lengthcheck

// Rule is a single validation rule: a check closure paired with the error
// reported when the check fails. Rule constructors capture the value and
// bound at construction time, so a Rule is immutable and safe to evaluate
// from any goroutine.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Apply evaluates the given rules and returns nil when every check passes,
// or a ValidationErrors value collecting the errors of every failed rule.
// Rules are always evaluated in order with no short-circuiting, so one call
// reports every violation at once.
func Apply(rules ...Rule) error {
	var verrs ValidationErrors

	for _, rule := range rules {
		if !rule.Check() {
			verrs = append(verrs, rule.Error)
		}
	}

	if verrs.IsEmpty() {
		return nil
	}

	return verrs
}
