package config

import (
	"os"
	"strconv"
	"time"
)

const (
	horizonHoursEnv     = "SCHEDULER_HORIZON_HOURS"
	mergeWindowMinEnv   = "SCHEDULER_MERGE_WINDOW_MINUTES"
	sweepIntervalMinEnv = "SCHEDULER_SWEEP_INTERVAL_MINUTES"
	sweepParallelismEnv = "SCHEDULER_SWEEP_PARALLELISM"
	upcomingQueryLimEnv = "UPCOMING_QUERY_LIMIT"

	defaultHorizonHours     = 26
	defaultMergeWindowMin   = 5
	defaultSweepIntervalMin = 60
	defaultSweepParallelism = 4
	defaultUpcomingLimit    = 50
)

type SchedulerConfig struct {
	Horizon          time.Duration
	MergeWindow      time.Duration
	SweepInterval    time.Duration
	SweepParallelism int
	UpcomingLimit    int
}

func LoadSchedulerConfig() *SchedulerConfig {
	horizonHours := defaultHorizonHours
	if v := os.Getenv(horizonHoursEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			horizonHours = parsed
		}
	}

	mergeWindowMin := defaultMergeWindowMin
	if v := os.Getenv(mergeWindowMinEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			mergeWindowMin = parsed
		}
	}

	sweepIntervalMin := defaultSweepIntervalMin
	if v := os.Getenv(sweepIntervalMinEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			sweepIntervalMin = parsed
		}
	}

	sweepParallelism := defaultSweepParallelism
	if v := os.Getenv(sweepParallelismEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			sweepParallelism = parsed
		}
	}

	upcomingLimit := defaultUpcomingLimit
	if v := os.Getenv(upcomingQueryLimEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			upcomingLimit = parsed
		}
	}

	return &SchedulerConfig{
		Horizon:          time.Duration(horizonHours) * time.Hour,
		MergeWindow:      time.Duration(mergeWindowMin) * time.Minute,
		SweepInterval:    time.Duration(sweepIntervalMin) * time.Minute,
		SweepParallelism: sweepParallelism,
		UpcomingLimit:    upcomingLimit,
	}
}
