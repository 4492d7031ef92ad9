// SPDX-License-Identifier: MIT

// Package rational - value type & exact arithmetic.
//
// Purpose:
//   - Provide an immutable fraction: every operation allocates a fresh big.Rat,
//     so a Rational can be copied, stored in slices and shared between tableau
//     snapshots without aliasing.
//   - Keep the canonical form (lowest terms, positive denominator) that big.Rat
//     maintains after every operation.
//
// Complexity quicksheet:
//   - Add/Sub/Mul/Quo: O(M(b)) for b-bit operands (big.Int multiply + gcd).
//   - Sign/IsZero: O(1).

package rational

import (
	"math/big"
)

// Rational is an exact fraction in lowest terms with a positive denominator.
// The zero value is 0/1. Values are immutable; methods never modify the receiver.
type Rational struct {
	v *big.Rat // nil means zero
}

// rat returns the underlying value, materializing zero for the zero Rational.
// The result must be treated as read-only.
func (r Rational) rat() *big.Rat {
	if r.v == nil {
		return new(big.Rat)
	}

	return r.v
}

// wrap takes ownership of x.
func wrap(x *big.Rat) Rational { return Rational{v: x} }

// Zero returns 0/1.
func Zero() Rational { return Rational{} }

// One returns 1/1.
func One() Rational { return wrap(big.NewRat(1, 1)) }

// FromInt returns n/1.
func FromInt(n int64) Rational { return wrap(new(big.Rat).SetInt64(n)) }

// New returns p/q normalized to lowest terms with q > 0.
// Returns ErrDivisionByZero when q == 0.
func New(p, q int64) (Rational, error) {
	if q == 0 {
		return Rational{}, ErrDivisionByZero
	}

	return wrap(big.NewRat(p, q)), nil
}

// FromBig returns a Rational holding a copy of x. A nil x yields zero.
func FromBig(x *big.Rat) Rational {
	if x == nil {
		return Rational{}
	}

	return wrap(new(big.Rat).Set(x))
}

// Rat returns a fresh copy of the value as *big.Rat.
func (r Rational) Rat() *big.Rat { return new(big.Rat).Set(r.rat()) }

// Num returns a copy of the numerator (sign carried here).
func (r Rational) Num() *big.Int { return new(big.Int).Set(r.rat().Num()) }

// Denom returns a copy of the denominator (always > 0).
func (r Rational) Denom() *big.Int { return new(big.Int).Set(r.rat().Denom()) }

// Sign returns -1, 0 or +1.
func (r Rational) Sign() int { return r.rat().Sign() }

// IsZero reports r == 0.
func (r Rational) IsZero() bool { return r.Sign() == 0 }

// IsOne reports r == 1.
func (r Rational) IsOne() bool { return r.rat().Cmp(big.NewRat(1, 1)) == 0 }

// IsInt reports whether the denominator is 1.
func (r Rational) IsInt() bool { return r.rat().IsInt() }

// Cmp compares r and s: -1 if r < s, 0 if equal, +1 if r > s.
func (r Rational) Cmp(s Rational) int { return r.rat().Cmp(s.rat()) }

// Equal reports r == s exactly.
func (r Rational) Equal(s Rational) bool { return r.Cmp(s) == 0 }

// Add returns r + s.
func (r Rational) Add(s Rational) Rational { return wrap(new(big.Rat).Add(r.rat(), s.rat())) }

// Sub returns r - s.
func (r Rational) Sub(s Rational) Rational { return wrap(new(big.Rat).Sub(r.rat(), s.rat())) }

// Mul returns r * s.
func (r Rational) Mul(s Rational) Rational { return wrap(new(big.Rat).Mul(r.rat(), s.rat())) }

// Neg returns -r.
func (r Rational) Neg() Rational { return wrap(new(big.Rat).Neg(r.rat())) }

// Abs returns |r|.
func (r Rational) Abs() Rational { return wrap(new(big.Rat).Abs(r.rat())) }

// Quo returns r / s, or ErrDivisionByZero when s == 0.
func (r Rational) Quo(s Rational) (Rational, error) {
	if s.IsZero() {
		return Rational{}, ErrDivisionByZero
	}

	return wrap(new(big.Rat).Quo(r.rat(), s.rat())), nil
}

// Inv returns 1 / r, or ErrDivisionByZero when r == 0.
func (r Rational) Inv() (Rational, error) {
	if r.IsZero() {
		return Rational{}, ErrDivisionByZero
	}

	return wrap(new(big.Rat).Inv(r.rat())), nil
}

// Float64 returns the nearest float64 and whether it is exact.
// Intended for display and plotting only; the engine never computes in floats.
func (r Rational) Float64() (float64, bool) { return r.rat().Float64() }

// String formats r as "p" when the denominator is 1, otherwise "p/q".
func (r Rational) String() string {
	x := r.rat()
	if x.IsInt() {
		return x.Num().String()
	}

	return x.String() // big.Rat prints "p/q"
}

// Format is the package-level spelling of r.String(), paired with Parse.
func Format(r Rational) string { return r.String() }

// MarshalText implements encoding.TextMarshaler using the canonical form.
func (r Rational) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler with strict parsing.
func (r *Rational) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*r = v

	return nil
}
