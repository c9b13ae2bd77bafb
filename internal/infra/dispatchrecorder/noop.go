package dispatchrecorder

import (
	"context"

	"github.com/KasumiMercury/primind-review-scheduling/internal/domain"
)

type noopRecorder struct{}

func NewNoopRecorder() domain.DispatchRecorder {
	return &noopRecorder{}
}

func (n *noopRecorder) RecordDispatch(_ context.Context, _ *domain.DispatchRecord) error {
	return nil
}

func (n *noopRecorder) Flush(_ context.Context) error {
	return nil
}

func (n *noopRecorder) Close() error {
	return nil
}
