package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// ChartDays is the duration bucket of a market chart series
type ChartDays int

const (
	ChartDays1   ChartDays = 1
	ChartDays7   ChartDays = 7
	ChartDays30  ChartDays = 30
	ChartDays365 ChartDays = 365
)

// AllChartDays lists every supported bucket in ascending order
var AllChartDays = []ChartDays{ChartDays1, ChartDays7, ChartDays30, ChartDays365}

// Valid reports whether d is one of the supported buckets
func (d ChartDays) Valid() bool {
	switch d {
	case ChartDays1, ChartDays7, ChartDays30, ChartDays365:
		return true
	default:
		return false
	}
}

// String returns the bucket in upstream query form, e.g. "7"
func (d ChartDays) String() string {
	return strconv.Itoa(int(d))
}

// ParseChartDays parses "7", "7d" or "7D" into a supported bucket
func ParseChartDays(s string) (ChartDays, error) {
	trimmed := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "d")
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownChartDuration, s)
	}

	d := ChartDays(n)
	if !d.Valid() {
		return 0, fmt.Errorf("%w: %q", ErrUnknownChartDuration, s)
	}

	return d, nil
}
