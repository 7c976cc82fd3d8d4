package form

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestRules(t *testing.T) {
	cases := []struct {
		name  string
		rule  Rule
		value string
		ok    bool
	}{
		{"min length ok", MinLength(2, "short"), "Al", true},
		{"min length blank", MinLength(2, "short"), "  a ", false},
		{"min length runes", MinLength(2, "short"), "ção", true},
		{"email ok", Email("bad"), "contact@acme.com", true},
		{"email empty", Email("bad"), "", false},
		{"optional email empty", Optional(Email("bad")), "", true},
		{"optional email bad", Optional(Email("bad")), "x", false},
		{"email missing at", Email("bad"), "acme.com", false},
		{"email display name", Email("bad"), "Acme <contact@acme.com>", false},
		{"one of ok", OneOf([]string{"a", "b"}, "bad"), "b", true},
		{"one of miss", OneOf([]string{"a", "b"}, "bad"), "B", false},
		{"decimal ok", Decimal("bad"), "120.50", true},
		{"decimal bad", Decimal("bad"), "12,50", false},
		{"positive zero", Positive("bad"), "0", false},
		{"positive negative", Positive("bad"), "-5", false},
		{"positive ok", Positive("bad"), "0.01", true},
		{"non-negative zero", NonNegative("bad"), "0", true},
		{"non-negative negative", NonNegative("bad"), "-0.01", false},
		{"max scale cents", MaxScale(2, "bad"), "10.12", true},
		{"max scale trailing zeros", MaxScale(2, "bad"), "10.1200", true},
		{"max scale whole", MaxScale(2, "bad"), "1500", true},
		{"max scale mills", MaxScale(2, "bad"), "0.004", false},
		{"max scale unparsable", MaxScale(2, "bad"), "abc", true},
		{"date ok", Date("bad"), "2023-05-15", true},
		{"date bad", Date("bad"), "15/05/2023", false},
		{"clock ok", Clock("bad"), "09:30", true},
		{"clock bad", Clock("bad"), "9.30", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			msg := tc.rule(tc.value)
			if tc.ok {
				require.Empty(t, msg)
			} else {
				require.Equal(t, "bad", msg)
			}
		})
	}
}

func TestFieldCheckReturnsFirstFailure(t *testing.T) {
	f := Field{Name: "amount", Rules: []Rule{Decimal("not a number"), Positive("must be positive")}}
	require.Equal(t, "not a number", f.Check("x"))
	require.Equal(t, "must be positive", f.Check("-5"))
	require.Empty(t, f.Check("5"))
}

func TestFieldErrorsError(t *testing.T) {
	err := FieldErrors{"name": "Name is required.", "email": "Bad email."}
	require.Equal(t, "email: Bad email.; name: Name is required.", err.Error())
	require.ErrorIs(t, err, ErrInvalid)
}

func TestCombineDateClock(t *testing.T) {
	got, err := CombineDateClock("2023-05-15", "10:00", time.UTC)
	require.NoError(t, err)
	require.Equal(t, time.Date(2023, 5, 15, 10, 0, 0, 0, time.UTC), got)

	_, err = CombineDateClock("2023-05-15", "25:00", time.UTC)
	require.Error(t, err)
}

func TestFormatDecimal(t *testing.T) {
	require.Equal(t, "1500.00", FormatDecimal(decimal.RequireFromString("1500"), 2))
	require.Equal(t, "10.10", FormatDecimal(decimal.RequireFromString("10.1"), 2))
	require.Equal(t, "0.004", FormatDecimal(decimal.RequireFromString("0.004"), 2))
	require.Equal(t, "10.125", FormatDecimal(decimal.RequireFromString("10.125"), 2))
}
