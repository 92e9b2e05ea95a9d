package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"nfc-transfer-service/internal/repositories"

	"github.com/robfig/cron/v3"
)

const retentionRunTimeout = 5 * time.Minute

// AuditRetentionJob deletes audit log rows older than the retention window.
// Transfer records are never touched.
type AuditRetentionJob struct {
	auditLogRepo repositories.AuditLogRepositoryInterface
	retention    time.Duration
	logger       *slog.Logger
}

func NewAuditRetentionJob(auditLogRepo repositories.AuditLogRepositoryInterface, retention time.Duration, logger *slog.Logger) *AuditRetentionJob {
	return &AuditRetentionJob{
		auditLogRepo: auditLogRepo,
		retention:    retention,
		logger:       logger,
	}
}

// Run performs one retention pass
func (j *AuditRetentionJob) Run(ctx context.Context) (int64, error) {
	if j.retention <= 0 {
		return 0, fmt.Errorf("audit retention must be positive, got %s", j.retention)
	}

	deleted, err := j.auditLogRepo.DeleteOlderThan(ctx, j.retention)
	if err != nil {
		j.logger.ErrorContext(ctx, "audit retention failed", "error", err)
		return 0, fmt.Errorf("failed to delete old audit logs: %w", err)
	}

	j.logger.InfoContext(ctx, "audit retention completed",
		"deleted", deleted,
		"retention", j.retention.String(),
	)
	return deleted, nil
}

// Scheduler wraps a cron runner for the service's background jobs
type Scheduler struct {
	cron   *cron.Cron
	logger *slog.Logger
}

func NewScheduler(logger *slog.Logger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(cron.WithChain(cron.Recover(cron.DefaultLogger))),
		logger: logger,
	}
}

// AddAuditRetention registers job under a standard cron spec or descriptor
// such as "@daily"
func (s *Scheduler) AddAuditRetention(spec string, job *AuditRetentionJob) error {
	_, err := s.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), retentionRunTimeout)
		defer cancel()
		_, _ = job.Run(ctx)
	})
	if err != nil {
		return fmt.Errorf("invalid audit retention schedule %q: %w", spec, err)
	}

	s.logger.Info("audit retention scheduled", "schedule", spec)
	return nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop prevents new runs and waits for a running job until ctx is done
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
		s.logger.Warn("scheduler stop timed out")
	}
}

func (s *Scheduler) entryCount() int {
	return len(s.cron.Entries())
}
