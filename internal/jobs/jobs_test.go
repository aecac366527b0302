package jobs_test

import (
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/coinfolio/coinfolio-sync/internal/logger"
	"github.com/coinfolio/coinfolio-sync/internal/mocks"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

var testNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

// fired returns a channel that is immediately readable, so pacing waits complete without sleeping
func fired() <-chan time.Time {
	ch := make(chan time.Time, 1)
	ch <- testNow
	return ch
}

// recordingClock returns a mock clock frozen at testNow whose After calls are appended to waits.
// Since always reports zero latency.
func recordingClock(ctrl *gomock.Controller, waits *[]time.Duration) *mocks.MockClock {
	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(testNow).AnyTimes()
	clock.EXPECT().Since(gomock.Any()).Return(time.Duration(0)).AnyTimes()
	clock.EXPECT().After(gomock.Any()).DoAndReturn(func(d time.Duration) <-chan time.Time {
		*waits = append(*waits, d)
		return fired()
	}).AnyTimes()
	return clock
}

func sum(durations []time.Duration) time.Duration {
	var total time.Duration
	for _, d := range durations {
		total += d
	}
	return total
}
