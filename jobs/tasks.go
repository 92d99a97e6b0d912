// Package jobs contains background task definitions and the Asynq worker.
package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskPermissionsWarmup re-warms the role permission cache.
	TaskPermissionsWarmup = "permissions:warmup"
)

// PermissionsWarmupPayload selects which roles to warm. An empty Roles
// slice warms every provisioned role.
type PermissionsWarmupPayload struct {
	Roles []string `json:"roles,omitempty"`
}

// NewPermissionsWarmupTask constructs an Asynq task.
func NewPermissionsWarmupTask(payload PermissionsWarmupPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskPermissionsWarmup, data), nil
}
