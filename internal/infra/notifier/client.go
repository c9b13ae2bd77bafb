// Package notifier delivers fired review batches to the notification
// sink service. Delivery is fire-and-forget from the scheduler's point
// of view; the sink owns retries toward the user's devices.
package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/KasumiMercury/primind-review-scheduling/internal/infra/taskqueue"
	"github.com/KasumiMercury/primind-review-scheduling/internal/observability/logging"
	"github.com/KasumiMercury/primind-review-scheduling/internal/observability/tracing"
)

//go:generate mockgen -source=client.go -destination=mock.go -package=notifier

// Sink accepts one fully-formed review batch for delivery.
type Sink interface {
	SendReviewBatch(ctx context.Context, userID string, items []taskqueue.ReviewItem) error
}

type sendRequest struct {
	UserID string                 `json:"user_id"`
	Items  []taskqueue.ReviewItem `json:"items"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) SendReviewBatch(ctx context.Context, userID string, items []taskqueue.ReviewItem) error {
	body, err := json.Marshal(sendRequest{
		UserID: userID,
		Items:  items,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal send request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/notifications/review-batch", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	requestID := logging.ValidateAndExtractRequestID(logging.RequestIDFromContext(ctx))
	req.Header.Set("x-request-id", requestID)
	tracing.InjectToHTTPRequest(ctx, req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.ErrorContext(ctx, "failed to send review batch to sink",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		slog.ErrorContext(ctx, "unexpected status code from notification sink",
			slog.String("user_id", userID),
			slog.Int("status_code", resp.StatusCode),
		)
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	slog.InfoContext(ctx, "review batch delivered to sink",
		slog.String("user_id", userID),
		slog.Int("item_count", len(items)),
	)

	return nil
}
