package metrics

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	scheduleMeterName = "review.scheduler"
)

type ScheduleMetrics struct {
	candidatesProjected metric.Int64Counter
	rulesSkipped        metric.Int64Counter
	groupsSubmitted     metric.Int64Counter
	jobsCancelled       metric.Int64Counter
	groupsDropped       metric.Int64Counter
	dispatchesFired     metric.Int64Counter
	recomputeDuration   metric.Float64Histogram
	dispatchLateness    metric.Float64Histogram
}

func NewScheduleMetrics() (*ScheduleMetrics, error) {
	meter := otel.Meter(scheduleMeterName)

	candidatesProjected, err := meter.Int64Counter(
		"review_candidates_projected_total",
		metric.WithDescription("Total review candidates produced by horizon projection"),
		metric.WithUnit("{candidate}"),
	)
	if err != nil {
		return nil, err
	}

	rulesSkipped, err := meter.Int64Counter(
		"review_rules_skipped_total",
		metric.WithDescription("Total malformed interval rules skipped during projection"),
		metric.WithUnit("{rule}"),
	)
	if err != nil {
		return nil, err
	}

	groupsSubmitted, err := meter.Int64Counter(
		"review_groups_submitted_total",
		metric.WithDescription("Total notification groups handed to the delayed task queue"),
		metric.WithUnit("{group}"),
	)
	if err != nil {
		return nil, err
	}

	jobsCancelled, err := meter.Int64Counter(
		"review_jobs_cancelled_total",
		metric.WithDescription("Total pending dispatch jobs cancelled before resubmission"),
		metric.WithUnit("{job}"),
	)
	if err != nil {
		return nil, err
	}

	groupsDropped, err := meter.Int64Counter(
		"review_groups_dropped_total",
		metric.WithDescription("Total notification groups dropped for violating scheduling invariants"),
		metric.WithUnit("{group}"),
	)
	if err != nil {
		return nil, err
	}

	dispatchesFired, err := meter.Int64Counter(
		"review_dispatches_fired_total",
		metric.WithDescription("Total notification groups delivered to the sink"),
		metric.WithUnit("{group}"),
	)
	if err != nil {
		return nil, err
	}

	recomputeDuration, err := meter.Float64Histogram(
		"review_recompute_duration_seconds",
		metric.WithDescription("End-to-end duration of a single-user recompute"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5,
		),
	)
	if err != nil {
		return nil, err
	}

	dispatchLateness, err := meter.Float64Histogram(
		"review_dispatch_lateness_seconds",
		metric.WithDescription("Delay between a group's anchor send time and its actual firing"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.1, 0.5, 1, 5, 15, 30, 60, 120, 300,
		),
	)
	if err != nil {
		return nil, err
	}

	return &ScheduleMetrics{
		candidatesProjected: candidatesProjected,
		rulesSkipped:        rulesSkipped,
		groupsSubmitted:     groupsSubmitted,
		jobsCancelled:       jobsCancelled,
		groupsDropped:       groupsDropped,
		dispatchesFired:     dispatchesFired,
		recomputeDuration:   recomputeDuration,
		dispatchLateness:    dispatchLateness,
	}, nil
}

func (m *ScheduleMetrics) RecordCandidatesProjected(ctx context.Context, count int64) {
	m.candidatesProjected.Add(ctx, count)
}

func (m *ScheduleMetrics) RecordRuleSkipped(ctx context.Context, unit string) {
	m.rulesSkipped.Add(ctx, 1, metric.WithAttributes(
		attribute.String("unit", unit),
	))
}

func (m *ScheduleMetrics) RecordGroupsSubmitted(ctx context.Context, count int64) {
	m.groupsSubmitted.Add(ctx, count)
}

func (m *ScheduleMetrics) RecordJobsCancelled(ctx context.Context, count int64) {
	m.jobsCancelled.Add(ctx, count)
}

func (m *ScheduleMetrics) RecordGroupDropped(ctx context.Context, reason string) {
	m.groupsDropped.Add(ctx, 1, metric.WithAttributes(
		attribute.String("reason", reason),
	))
}

func (m *ScheduleMetrics) RecordDispatchFired(ctx context.Context, latenessSeconds float64) {
	m.dispatchesFired.Add(ctx, 1)
	m.dispatchLateness.Record(ctx, latenessSeconds)
}

func (m *ScheduleMetrics) RecordRecomputeDuration(ctx context.Context, seconds float64, trigger string) {
	m.recomputeDuration.Record(ctx, seconds, metric.WithAttributes(
		attribute.String("trigger", trigger),
	))
}
