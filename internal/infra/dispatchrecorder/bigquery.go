//go:build gcloud

package dispatchrecorder

import (
	"context"
	"log/slog"
	"time"

	"cloud.google.com/go/bigquery"

	"github.com/KasumiMercury/primind-review-scheduling/internal/domain"
)

type bigQueryRecord struct {
	RecordedAt      time.Time `bigquery:"recorded_at"`
	UserID          string    `bigquery:"user_id"`
	JobKey          string    `bigquery:"job_key"`
	AnchorSendAt    time.Time `bigquery:"anchor_send_at"`
	FiredAt         time.Time `bigquery:"fired_at"`
	MemberCount     int64     `bigquery:"member_count"`
	LatenessSeconds float64   `bigquery:"lateness_seconds"`
}

type bigQueryRecorder struct {
	client   *bigquery.Client
	inserter *bigquery.Inserter
	dataset  string
	table    string
}

func NewRecorder(ctx context.Context, cfg *Config) (domain.DispatchRecorder, error) {
	if cfg.Disabled {
		slog.InfoContext(ctx, "dispatch recording disabled")
		return NewNoopRecorder(), nil
	}

	if cfg.BigQueryProjectID == "" {
		slog.WarnContext(ctx, "BigQuery project ID not configured, dispatch recording disabled")
		return NewNoopRecorder(), nil
	}

	client, err := bigquery.NewClient(ctx, cfg.BigQueryProjectID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to create BigQuery client, dispatch recording disabled",
			slog.String("error", err.Error()),
			slog.String("project_id", cfg.BigQueryProjectID),
		)
		return NewNoopRecorder(), nil
	}

	table := client.Dataset(cfg.BigQueryDataset).Table(cfg.BigQueryTable)
	inserter := table.Inserter()

	slog.InfoContext(ctx, "dispatch recorder initialized",
		slog.String("type", "bigquery"),
		slog.String("project_id", cfg.BigQueryProjectID),
		slog.String("dataset", cfg.BigQueryDataset),
		slog.String("table", cfg.BigQueryTable),
	)

	return &bigQueryRecorder{
		client:   client,
		inserter: inserter,
		dataset:  cfg.BigQueryDataset,
		table:    cfg.BigQueryTable,
	}, nil
}

func (r *bigQueryRecorder) RecordDispatch(ctx context.Context, record *domain.DispatchRecord) error {
	row := &bigQueryRecord{
		RecordedAt:      time.Now().UTC(),
		UserID:          record.UserID,
		JobKey:          record.JobKey,
		AnchorSendAt:    record.AnchorSendAt,
		FiredAt:         record.FiredAt,
		MemberCount:     int64(record.MemberCount),
		LatenessSeconds: record.Lateness().Seconds(),
	}

	if err := r.inserter.Put(ctx, row); err != nil {
		slog.WarnContext(ctx, "failed to insert dispatch record",
			slog.String("job_key", record.JobKey),
			slog.String("error", err.Error()),
		)
		return err
	}

	return nil
}

func (r *bigQueryRecorder) Flush(_ context.Context) error {
	return nil
}

func (r *bigQueryRecorder) Close() error {
	return r.client.Close()
}
