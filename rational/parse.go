// SPDX-License-Identifier: MIT

package rational

import (
	"math/big"
	"strings"
)

// fracSep separates numerator and denominator in a fraction literal.
const fracSep = "/"

// Parse converts user text into a Rational.
//
// Grammar (surrounding whitespace ignored, also around the slash):
//
//	literal  = integer | integer "/" integer
//	integer  = [ "+" | "-" ] digit { digit }
//
// Errors (always *ParseError):
//   - ErrMalformed for anything else (empty text, decimals, letters, "1/2/3").
//   - ErrDivisionByZero when the denominator is zero.
//
// The result is normalized: "3/6" → 1/2, "3/-6" → -1/2, "-0" → 0.
// Complexity: O(len(text)) plus big.Int gcd.
func Parse(text string) (Rational, error) {
	parts := strings.Split(strings.TrimSpace(text), fracSep)
	if len(parts) > 2 {
		return Rational{}, &ParseError{Text: text, Err: ErrMalformed}
	}

	num, ok := parseInteger(parts[0])
	if !ok {
		return Rational{}, &ParseError{Text: text, Err: ErrMalformed}
	}
	if len(parts) == 1 {
		return wrap(new(big.Rat).SetInt(num)), nil
	}

	den, ok := parseInteger(parts[1])
	if !ok {
		return Rational{}, &ParseError{Text: text, Err: ErrMalformed}
	}
	if den.Sign() == 0 {
		return Rational{}, &ParseError{Text: text, Err: ErrDivisionByZero}
	}

	// SetFrac reduces and moves the sign onto the numerator.
	return wrap(new(big.Rat).SetFrac(num, den)), nil
}

// ParseCell applies the editor policy: invalid text becomes zero.
// The returned value is always usable; err is the Parse failure (or nil) so the
// caller can show the user why the cell was reset.
func ParseCell(text string) (Rational, error) {
	v, err := Parse(text)
	if err != nil {
		return Zero(), err
	}

	return v, nil
}

// MustParse is like Parse but panics on error. For literals in tests and examples.
func MustParse(text string) Rational {
	v, err := Parse(text)
	if err != nil {
		panic(err)
	}

	return v
}

// parseInteger accepts an optionally signed run of ASCII digits.
func parseInteger(s string) (*big.Int, bool) {
	s = strings.TrimSpace(s)
	digits := s
	if len(digits) > 0 && (digits[0] == '+' || digits[0] == '-') {
		digits = digits[1:]
	}
	if digits == "" {
		return nil, false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return nil, false
		}
	}

	n, ok := new(big.Int).SetString(s, 10)

	return n, ok
}
