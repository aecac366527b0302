package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// StringPtr converts a string to a pointer to a string
func StringPtr(s string) *string {
	return &s
}

// SafeString returns a safe string from a pointer to a string
func SafeString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ParseTimestamp parses an upstream RFC 3339 timestamp. Empty or invalid values yield nil.
func ParseTimestamp(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return nil
	}
	t = t.UTC()
	return &t
}

// NullDecimalFromMap returns the value under key, or an invalid NullDecimal when it is absent
func NullDecimalFromMap(m map[string]decimal.Decimal, key string) decimal.NullDecimal {
	v, ok := m[key]
	if !ok {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(v)
}

// FormatUSD renders an amount with two decimals and a dollar sign, e.g. $1234.50
func FormatUSD(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-$" + d.Neg().StringFixed(2)
	}
	return "$" + d.StringFixed(2)
}
