package rational_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pivotlab/rational"
)

// requireRat asserts that got equals the literal want exactly.
func requireRat(t *testing.T, want string, got rational.Rational) {
	t.Helper()
	require.Truef(t, rational.MustParse(want).Equal(got), "want %s, got %s", want, got)
}

// TestParseValid covers integer and fraction literals and their normal form.
func TestParseValid(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"5", "5"},
		{"-3", "-3"},
		{"+7", "7"},
		{"0", "0"},
		{"-0", "0"},
		{"3/6", "1/2"},
		{"3/-6", "-1/2"},
		{"-3/-6", "1/2"},
		{"  4 / 8 ", "1/2"},
		{"10/5", "2"},
		{"0/9", "0"},
		{"123456789012345678901234567890/3", "41152263004115226300411522630"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := rational.Parse(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.want, got.String())
		})
	}
}

// TestParseThreeSixths pins the normal form: 3/6 is stored as 1/2, never 3/6.
func TestParseThreeSixths(t *testing.T) {
	r, err := rational.Parse("3/6")
	require.NoError(t, err)
	require.Equal(t, int64(1), r.Num().Int64())
	require.Equal(t, int64(2), r.Denom().Int64())
}

// TestParseMalformed checks that non-numeric text fails with ErrMalformed.
func TestParseMalformed(t *testing.T) {
	for _, in := range []string{"", " ", "abc", "1.5", "1e3", "1/2/3", "/", "3/", "/4", "--1", "+", "1 2", "0x10", "½"} {
		t.Run(in, func(t *testing.T) {
			_, err := rational.Parse(in)
			require.ErrorIs(t, err, rational.ErrMalformed)

			var pe *rational.ParseError
			require.True(t, errors.As(err, &pe))
			require.Equal(t, in, pe.Text)
		})
	}
}

// TestParseDivisionByZero checks q == 0 is reported distinctly.
func TestParseDivisionByZero(t *testing.T) {
	for _, in := range []string{"1/0", "-5/0", "0/0", "7/-0"} {
		_, err := rational.Parse(in)
		require.ErrorIs(t, err, rational.ErrDivisionByZero, in)
		require.NotErrorIs(t, err, rational.ErrMalformed, in)
	}
}

// TestParseCellFailsToZero verifies the editor policy: zero plus the error.
func TestParseCellFailsToZero(t *testing.T) {
	for _, in := range []string{"abc", "1/0", "", "2..", "x/y"} {
		v, err := rational.ParseCell(in)
		require.Error(t, err, in)
		require.True(t, v.IsZero(), in)
		require.Equal(t, "0", v.String())
	}

	v, err := rational.ParseCell("-6/4")
	require.NoError(t, err)
	requireRat(t, "-3/2", v)
}

// TestParseRoundTrip checks Parse(Format(r)) == r over a grid of fractions.
func TestParseRoundTrip(t *testing.T) {
	var p, q int64
	for p = -12; p <= 12; p++ {
		for q = -7; q <= 7; q++ {
			if q == 0 {
				continue
			}
			r, err := rational.New(p, q)
			require.NoError(t, err)

			back, err := rational.Parse(rational.Format(r))
			require.NoError(t, err)
			require.Truef(t, r.Equal(back), "%d/%d -> %s -> %s", p, q, r, back)
		}
	}
}

// TestUnmarshalTextStrict ensures text decoding does not apply fail-to-zero.
func TestUnmarshalTextStrict(t *testing.T) {
	var r rational.Rational
	require.NoError(t, r.UnmarshalText([]byte("-2/4")))
	requireRat(t, "-1/2", r)

	require.ErrorIs(t, r.UnmarshalText([]byte("nope")), rational.ErrMalformed)
	requireRat(t, "-1/2", r) // unchanged on error

	b, err := r.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "-1/2", string(b))
}
