package repository

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KasumiMercury/primind-review-scheduling/internal/domain"
)

const (
	upcomingKeyPrefix = "review:upcoming:"
	jobIndexKeyPrefix = "review:jobs:"
	jobDataKeyPrefix  = "review:jobdata:"

	// The upcoming snapshot outlives the projection horizon by a wide
	// margin so display queries keep working between sweeps.
	upcomingTTL = 8 * 24 * time.Hour

	// Pending jobs fire within the horizon; keep the index a little
	// longer for post-hoc inspection.
	jobIndexTTL = 48 * time.Hour
)

type candidateRecord struct {
	UserID      string    `json:"user_id"`
	EventID     string    `json:"event_id"`
	RuleID      string    `json:"rule_id"`
	Title       string    `json:"title"`
	SubjectName string    `json:"subject_name"`
	DueAt       time.Time `json:"due_at"`
	SendAt      time.Time `json:"send_at"`
}

type jobRecord struct {
	Key          string    `json:"key"`
	UserID       string    `json:"user_id"`
	AnchorSendAt time.Time `json:"anchor_send_at"`
	TaskName     string    `json:"task_name"`
	MemberCount  int       `json:"member_count"`
	SubmittedAt  time.Time `json:"submitted_at"`
}

type scheduleRepository struct {
	client *redis.Client
}

func NewScheduleRepository(client *redis.Client) domain.ScheduleRepository {
	return &scheduleRepository{
		client: client,
	}
}

func (r *scheduleRepository) ReplaceUpcoming(ctx context.Context, userID string, candidates []domain.ReviewCandidate) error {
	key := upcomingKeyPrefix + userID

	members := make([]redis.Z, 0, len(candidates))
	for _, c := range candidates {
		data, err := json.Marshal(candidateRecord{
			UserID:      c.UserID,
			EventID:     c.EventID,
			RuleID:      c.RuleID,
			Title:       c.Title,
			SubjectName: c.SubjectName,
			DueAt:       c.DueAt,
			SendAt:      c.SendAt,
		})
		if err != nil {
			return ErrInvalidCandidateData
		}
		members = append(members, redis.Z{
			Score:  float64(c.DueAt.UTC().UnixMilli()),
			Member: data,
		})
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, key)
	if len(members) > 0 {
		pipe.ZAdd(ctx, key, members...)
		pipe.Expire(ctx, key, upcomingTTL)
	}

	_, err := pipe.Exec(ctx)
	return err
}

func (r *scheduleRepository) ListUpcoming(ctx context.Context, userID string, limit int) ([]domain.ReviewCandidate, error) {
	key := upcomingKeyPrefix + userID

	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit) - 1
	}

	raw, err := r.client.ZRange(ctx, key, 0, stop).Result()
	if err != nil {
		return nil, err
	}

	candidates := make([]domain.ReviewCandidate, 0, len(raw))
	for _, data := range raw {
		var record candidateRecord
		if err := json.Unmarshal([]byte(data), &record); err != nil {
			return nil, ErrInvalidCandidateData
		}
		candidates = append(candidates, domain.ReviewCandidate{
			UserID:      record.UserID,
			EventID:     record.EventID,
			RuleID:      record.RuleID,
			Title:       record.Title,
			SubjectName: record.SubjectName,
			DueAt:       record.DueAt,
			SendAt:      record.SendAt,
		})
	}

	return candidates, nil
}

func (r *scheduleRepository) SavePendingJob(ctx context.Context, job *domain.PendingJob) error {
	if job == nil {
		return ErrInvalidJobData
	}

	data, err := json.Marshal(jobRecord{
		Key:          job.Key,
		UserID:       job.UserID,
		AnchorSendAt: job.AnchorSendAt,
		TaskName:     job.TaskName,
		MemberCount:  job.MemberCount,
		SubmittedAt:  job.SubmittedAt,
	})
	if err != nil {
		return ErrInvalidJobData
	}

	indexKey := jobIndexKeyPrefix + job.UserID
	dataKey := jobDataKeyPrefix + job.UserID

	pipe := r.client.TxPipeline()
	pipe.ZAdd(ctx, indexKey, redis.Z{
		Score:  float64(job.AnchorSendAt.UTC().UnixMilli()),
		Member: job.Key,
	})
	pipe.HSet(ctx, dataKey, job.Key, data)
	pipe.Expire(ctx, indexKey, jobIndexTTL)
	pipe.Expire(ctx, dataKey, jobIndexTTL)

	_, err = pipe.Exec(ctx)
	return err
}

func (r *scheduleRepository) PendingJobsInRange(ctx context.Context, userID string, from, to time.Time) ([]domain.PendingJob, error) {
	indexKey := jobIndexKeyPrefix + userID
	dataKey := jobDataKeyPrefix + userID

	keys, err := r.client.ZRangeByScore(ctx, indexKey, &redis.ZRangeBy{
		Min: strconv.FormatInt(from.UTC().UnixMilli(), 10),
		Max: strconv.FormatInt(to.UTC().UnixMilli(), 10),
	}).Result()
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return nil, nil
	}

	values, err := r.client.HMGet(ctx, dataKey, keys...).Result()
	if err != nil {
		return nil, err
	}

	jobs := make([]domain.PendingJob, 0, len(keys))
	for _, v := range values {
		raw, ok := v.(string)
		if !ok {
			// Index and data drifted apart; skip the orphan.
			continue
		}
		var record jobRecord
		if err := json.Unmarshal([]byte(raw), &record); err != nil {
			return nil, ErrInvalidJobData
		}
		jobs = append(jobs, domain.PendingJob{
			Key:          record.Key,
			UserID:       record.UserID,
			AnchorSendAt: record.AnchorSendAt,
			TaskName:     record.TaskName,
			MemberCount:  record.MemberCount,
			SubmittedAt:  record.SubmittedAt,
		})
	}

	return jobs, nil
}

func (r *scheduleRepository) RemovePendingJobs(ctx context.Context, userID string, keys []string) error {
	if len(keys) == 0 {
		return nil
	}

	indexKey := jobIndexKeyPrefix + userID
	dataKey := jobDataKeyPrefix + userID

	members := make([]interface{}, 0, len(keys))
	for _, k := range keys {
		members = append(members, k)
	}

	pipe := r.client.TxPipeline()
	pipe.ZRem(ctx, indexKey, members...)
	pipe.HDel(ctx, dataKey, keys...)

	_, err := pipe.Exec(ctx)
	return err
}
