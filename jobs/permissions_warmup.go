package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/hibiken/asynq"

	jobmetrics "github.com/staffdesk/staffdesk/internal/jobs"
)

// RoleLister enumerates provisioned role names.
type RoleLister interface {
	ListRoleNames(ctx context.Context) ([]string, error)
}

// PermissionRefresher reloads one role's permission document into the cache.
type PermissionRefresher interface {
	Refresh(ctx context.Context, role string) error
}

// PermissionsWarmupJob re-populates the role permission cache so the access
// gate serves cache hits after deploys and cache flushes.
type PermissionsWarmupJob struct {
	Roles   RoleLister
	Cache   PermissionRefresher
	Logger  *slog.Logger
	Metrics *jobmetrics.Metrics
}

// NewPermissionsWarmupJob wires dependencies for the warmup handler.
func NewPermissionsWarmupJob(roles RoleLister, cache PermissionRefresher, logger *slog.Logger, metrics *jobmetrics.Metrics) *PermissionsWarmupJob {
	return &PermissionsWarmupJob{Roles: roles, Cache: cache, Logger: logger, Metrics: metrics}
}

// Handle processes TaskPermissionsWarmup tasks.
func (j *PermissionsWarmupJob) Handle(ctx context.Context, t *asynq.Task) (err error) {
	if j == nil || j.Roles == nil || j.Cache == nil {
		return errors.New("permissions warmup: handler not configured")
	}
	var payload PermissionsWarmupPayload
	if uerr := json.Unmarshal(t.Payload(), &payload); uerr != nil {
		return asynq.SkipRetry
	}

	tracker := j.metrics().Track(TaskPermissionsWarmup)
	defer func() {
		err = tracker.End(err)
	}()

	logger := j.logger()
	roles := payload.Roles
	if len(roles) == 0 {
		roles, err = j.Roles.ListRoleNames(ctx)
		if err != nil {
			logger.Error("list roles for warmup", slog.Any("error", err))
			return err
		}
	}

	for _, role := range roles {
		if err = j.Cache.Refresh(ctx, role); err != nil {
			logger.Error("warm role", slog.String("role", role), slog.Any("error", err))
			return err
		}
	}
	logger.Info("completed permissions warmup", slog.Int("roles", len(roles)))
	return nil
}

func (j *PermissionsWarmupJob) logger() *slog.Logger {
	if j.Logger != nil {
		return j.Logger.With(slog.String("job", TaskPermissionsWarmup))
	}
	return slog.Default().With(slog.String("job", TaskPermissionsWarmup))
}

func (j *PermissionsWarmupJob) metrics() *jobmetrics.Metrics {
	if j.Metrics != nil {
		return j.Metrics
	}
	return jobmetrics.NewMetrics(nil)
}
