//go:build !gcloud

package config

import "errors"

func (c *TaskQueueConfig) Validate() error {
	if c.PrimindTasksURL == "" {
		return errors.New("PRIMIND_TASKS_URL is required")
	}
	if c.CallbackURL == "" {
		return errors.New("TASK_CALLBACK_URL is required")
	}
	return nil
}
