package domain

import (
	"fmt"
	"strings"
)

// JobName identifies a synchronization job
type JobName string

const (
	JobCoinsList            JobName = "coins-list"
	JobExchangeRate         JobName = "exchange-rate"
	JobMarketChart          JobName = "market-chart"
	JobTrending             JobName = "trending"
	JobCategories           JobName = "categories"
	JobNotificationsCleanup JobName = "notifications-cleanup"
	JobPriceTargets         JobName = "price-targets"
)

// JobParams carries the optional parameters of a job run
type JobParams struct {
	// Days selects the market chart bucket for JobMarketChart
	Days ChartDays `json:"days,omitempty"`
}

// LockKey returns the overlap-guard key for a job run.
// Market chart runs lock per bucket so different buckets may refresh concurrently.
func (n JobName) LockKey(params JobParams) string {
	if n == JobMarketChart {
		return string(n) + ":" + params.Days.String()
	}
	return string(n)
}

// Valid reports whether n names a registered job
func (n JobName) Valid() bool {
	switch n {
	case JobCoinsList, JobExchangeRate, JobMarketChart, JobTrending, JobCategories,
		JobNotificationsCleanup, JobPriceTargets:
		return true
	default:
		return false
	}
}

// ParseJobKey is the inverse of LockKey. "market-chart:7" yields JobMarketChart with Days 7.
func ParseJobKey(key string) (JobName, JobParams, error) {
	name, days, hasDays := strings.Cut(strings.TrimSpace(key), ":")
	n := JobName(name)
	if !n.Valid() {
		return "", JobParams{}, fmt.Errorf("%w: %q", ErrUnknownJob, key)
	}

	if n != JobMarketChart {
		if hasDays {
			return "", JobParams{}, fmt.Errorf("%w: %q takes no parameters", ErrUnknownJob, key)
		}
		return n, JobParams{}, nil
	}

	d, err := ParseChartDays(days)
	if err != nil {
		return "", JobParams{}, err
	}
	return n, JobParams{Days: d}, nil
}

// SyncStats holds the aggregate counters of one job run
type SyncStats struct {
	Success  int `json:"success"`
	Skipped  int `json:"skipped"`
	Errors   int `json:"errors"`
	Requests int `json:"requests"`
}

// Add accumulates other into s
func (s *SyncStats) Add(other SyncStats) {
	s.Success += other.Success
	s.Skipped += other.Skipped
	s.Errors += other.Errors
	s.Requests += other.Requests
}
