package lengthcheck

// Optional adapts any rule to an optional value. A nil pointer passes
// unconditionally with no measurement performed, regardless of how strict
// the underlying bound is; absence is exempt from the policy, not treated
// as zero length. A present value is handed, unmodified, to the rule
// returned by build, so the outcome is exactly the inner value's outcome.
//
//	lengthcheck.Optional(form.Nickname, func(v string) lengthcheck.Rule {
//		return lengthcheck.CharsBetween("nickname", v, 3, 20)
//	})
func Optional[T any](value *T, build func(T) Rule) Rule {
	if value == nil {
		return Rule{Check: func() bool { return true }}
	}
	return build(*value)
}
