// Package rational provides the exact number type used by every tableau cell.
//
// 🚀 What is it?
//
//	A Rational is an immutable fraction p/q kept in lowest terms with q > 0.
//	It wraps math/big.Rat, so elimination never overflows and never rounds:
//	a pivot sequence that returns to an earlier basis reproduces the earlier
//	matrix bit for bit.
//
// ✨ Key features:
//   - strict literal grammar: "5", "-3", "+7", "3/6", "-1/-2", "4 / 8"
//   - sentinel errors ErrMalformed / ErrDivisionByZero behind *ParseError
//   - ParseCell: fail-to-zero policy for editor cells (zero AND the error)
//   - canonical formatting ("2", "-1/2") with Parse(r.String()) == r
//
// ⚙️ Usage:
//
//	r, err := rational.Parse("3/6") // 1/2
//	v, err := rational.ParseCell("abc") // 0, err wraps ErrMalformed
//
// The zero value of Rational is the rational zero and is ready to use.
package rational
