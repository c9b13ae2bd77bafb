package repository

import "errors"

var (
	ErrRedisConnection      = errors.New("redis connection error")
	ErrInvalidCandidateData = errors.New("invalid review candidate data")
	ErrInvalidJobData       = errors.New("invalid pending job data")
)
