// Package learnerstore reads study events, interval rules, and time
// windows from the learning platform's Postgres database. The scheduler
// is a read-only consumer; the CRUD services own the tables.
package learnerstore

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/KasumiMercury/primind-review-scheduling/internal/domain"
)

const (
	studyEventsQuery = `
		SELECT id, user_id, subject_id, subject_name, title, occurred_at, COALESCE(note, '')
		FROM study_events
		WHERE user_id = $1
		ORDER BY occurred_at`

	intervalRulesQuery = `
		SELECT id, user_id, magnitude, unit, mode, COALESCE(note, '')
		FROM interval_rules
		WHERE user_id = $1
		ORDER BY id`

	timeWindowsQuery = `
		SELECT id, user_id, start_time, end_time
		FROM time_windows
		WHERE user_id = $1
		ORDER BY start_time`

	activeUserIDsQuery = `
		SELECT DISTINCT user_id
		FROM study_events`
)

type learnerStore struct {
	pool *pgxpool.Pool
}

// NewPool connects to the learning platform database and verifies the
// connection. The caller owns the pool's lifecycle.
func NewPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}
	poolCfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return pool, nil
}

func New(ctx context.Context, databaseURL string) (domain.LearnerStore, func(), error) {
	pool, err := NewPool(ctx, databaseURL)
	if err != nil {
		return nil, nil, err
	}
	return &learnerStore{pool: pool}, pool.Close, nil
}

// NewWithPool wraps an existing pool, for tests and shared wiring.
func NewWithPool(pool *pgxpool.Pool) domain.LearnerStore {
	return &learnerStore{pool: pool}
}

func (s *learnerStore) StudyEventsByUser(ctx context.Context, userID string) ([]domain.StudyEvent, error) {
	rows, err := s.pool.Query(ctx, studyEventsQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("query study events: %w", err)
	}
	defer rows.Close()

	var events []domain.StudyEvent
	for rows.Next() {
		var e domain.StudyEvent
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.SubjectID, &e.SubjectName,
			&e.Title, &e.OccurredAt, &e.Note,
		); err != nil {
			return nil, fmt.Errorf("scan study event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (s *learnerStore) IntervalRulesByUser(ctx context.Context, userID string) ([]domain.IntervalRule, error) {
	rows, err := s.pool.Query(ctx, intervalRulesQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("query interval rules: %w", err)
	}
	defer rows.Close()

	var rules []domain.IntervalRule
	for rows.Next() {
		var r domain.IntervalRule
		var unit, mode string
		if err := rows.Scan(&r.ID, &r.UserID, &r.Magnitude, &unit, &mode, &r.Note); err != nil {
			return nil, fmt.Errorf("scan interval rule: %w", err)
		}
		r.Unit = domain.IntervalUnit(unit)
		r.Mode = domain.RuleMode(mode)
		rules = append(rules, r)
	}
	return rules, rows.Err()
}

func (s *learnerStore) TimeWindowsByUser(ctx context.Context, userID string) ([]domain.TimeWindow, error) {
	rows, err := s.pool.Query(ctx, timeWindowsQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("query time windows: %w", err)
	}
	defer rows.Close()

	var windows []domain.TimeWindow
	for rows.Next() {
		var w domain.TimeWindow
		var start, end string
		if err := rows.Scan(&w.ID, &w.UserID, &start, &end); err != nil {
			return nil, fmt.Errorf("scan time window: %w", err)
		}
		if w.Start, err = domain.ParseClockTime(start); err != nil {
			return nil, fmt.Errorf("time window %s: %w", w.ID, err)
		}
		if w.End, err = domain.ParseClockTime(end); err != nil {
			return nil, fmt.Errorf("time window %s: %w", w.ID, err)
		}
		windows = append(windows, w)
	}
	return windows, rows.Err()
}

func (s *learnerStore) ActiveUserIDs(ctx context.Context) ([]string, error) {
	rows, err := s.pool.Query(ctx, activeUserIDsQuery)
	if err != nil {
		return nil, fmt.Errorf("query active users: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan user id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
