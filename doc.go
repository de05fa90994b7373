// Package lengthcheck provides length-bounded validation rules for strings,
// byte buffers, rune sequences, and collections, with an explicit choice of
// how "length" is measured.
//
// The same value can have several defensible lengths: a string containing a
// single emoji is one character to a user, one Unicode scalar value to a
// decoder, two UTF-16 code units to a JavaScript runtime, and four bytes to a
// database column. Rather than picking one meaning silently, the package
// exposes one rule family per measurement policy and lets the caller say
// which count they are bounding.
//
// # Measurement Policies
//
// Four policies are available, each with Min/Max/exact/Between rule
// constructors:
//
//   - Byte length (MinBytes, MaxBytes, LenBytes, BytesBetween): the number of
//     storage units: UTF-8 code units for strings, raw octets for byte
//     slices. Multi-byte scalars count as multiple units.
//   - Scalar length (MinChars, MaxChars, LenChars, CharsBetween, and the
//     MinRunes family for []rune values): the number of Unicode scalar values
//     the text decodes to. Requires a full decode pass over strings and byte
//     slices; []rune values are already scalar-granular and count elements
//     directly.
//   - Intrinsic length (MinLenString, MinLenSlice, MinLenMap, MinLenOf and
//     friends): the type's own notion of length, meaning byte count for strings and
//     element count for slices, maps, and any collection exposing Len() int.
//     This is the low-cost default when the distinction does not matter.
//   - UTF-16 length (MinUTF16, MaxUTF16, LenUTF16, UTF16Between): the number
//     of 16-bit code units in the UTF-16 encoding, useful when bounding
//     values consumed by UTF-16-based systems.
//
// Grapheme cluster counting (user-perceived characters) is out of scope; use
// a dedicated text segmentation package if you need it.
//
// # Usage
//
//	err := lengthcheck.Apply(
//		lengthcheck.CharsBetween("username", form.Username, 3, 32),
//		lengthcheck.MaxBytes("bio", form.Bio, 4096),
//		lengthcheck.LenSliceBetween("tags", form.Tags, 1, 10),
//		lengthcheck.Optional(form.Nickname, func(v string) lengthcheck.Rule {
//			return lengthcheck.CharsBetween("nickname", v, 3, 20)
//		}),
//	)
//	if err != nil {
//		if verrs := lengthcheck.ExtractValidationErrors(err); verrs != nil {
//			// inspect per-field messages or translate them
//		}
//	}
//
// All bounds are inclusive on both ends. A bound with min greater than max
// admits no length and fails every value; this is a valid (if unusual) bound,
// not an error. Optional values validate through Optional: a nil pointer
// passes unconditionally, a present value is validated exactly as the inner
// value would be.
//
// # Error Handling
//
// Every failed rule contributes a ValidationError carrying the field name, a
// human-readable message, and translation metadata including the violated
// bound and the measured count. Apply aggregates failures into a
// ValidationErrors slice that implements the error interface and supports
// errors.As, so callers can report all problems in one pass.
//
// # Performance Considerations
//
// Rules are plain comparisons over counts the Go runtime already tracks,
// except the scalar and UTF-16 policies on strings and byte slices, which
// decode the value in O(n). Nothing is cached or mutated; every rule is
// stateless and safe for concurrent use.
package lengthcheck
