package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pramindu123/hazardx-gateway/internal/models"
	"go.uber.org/zap"
)

// dbtx is the subset of pgxpool.Pool used by the activity log.
type dbtx interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// ActivityRecorder records officer actions.
type ActivityRecorder interface {
	Log(ctx context.Context, entry *models.ActivityLogEntry) error
}

// ActivityLogService handles activity log business logic.
// With no database configured it drops writes and returns empty reads.
type ActivityLogService struct {
	db     dbtx
	logger *zap.SugaredLogger
}

// NewActivityLogService creates a new activity log service. db may be nil.
func NewActivityLogService(db *pgxpool.Pool, logger *zap.SugaredLogger) *ActivityLogService {
	s := &ActivityLogService{logger: logger}
	if db != nil {
		s.db = db
	}
	return s
}

// Enabled reports whether actions are persisted.
func (s *ActivityLogService) Enabled() bool { return s.db != nil }

// Log records an officer action
func (s *ActivityLogService) Log(ctx context.Context, entry *models.ActivityLogEntry) error {
	if s.db == nil {
		return nil
	}

	query := `
		INSERT INTO activity_logs (id, report_id, activity_type, action_description, actor, district, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := s.db.Exec(ctx, query,
		uuid.New(),
		entry.ReportID,
		entry.ActivityType,
		entry.ActionDescription,
		entry.Actor,
		entry.District,
		entry.Metadata,
		clock.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert activity log: %w", err)
	}

	s.logger.Infow("Activity logged",
		"actor", entry.Actor,
		"type", entry.ActivityType,
		"action", entry.ActionDescription,
	)

	return nil
}

// FetchByReport returns activity logs for one symptom report, newest first
func (s *ActivityLogService) FetchByReport(ctx context.Context, reportID int, limit int) ([]models.ActivityLog, error) {
	query := `
		SELECT id, report_id, activity_type, action_description, actor, district, metadata, created_at
		FROM activity_logs
		WHERE report_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	return s.fetch(ctx, query, reportID, limit)
}

// FetchRecent returns recent activity logs across all reports
func (s *ActivityLogService) FetchRecent(ctx context.Context, limit int) ([]models.ActivityLog, error) {
	query := `
		SELECT id, report_id, activity_type, action_description, actor, district, metadata, created_at
		FROM activity_logs
		ORDER BY created_at DESC
		LIMIT $1
	`
	return s.fetch(ctx, query, limit)
}

func (s *ActivityLogService) fetch(ctx context.Context, query string, args ...any) ([]models.ActivityLog, error) {
	logs := []models.ActivityLog{}
	if s.db == nil {
		return logs, nil
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query activity logs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var log models.ActivityLog
		if err := rows.Scan(&log.ID, &log.ReportID, &log.ActivityType,
			&log.ActionDescription, &log.Actor, &log.District,
			&log.Metadata, &log.CreatedAt); err != nil {
			s.logger.Warnw("Skipping unreadable activity row", "error", err)
			continue
		}
		logs = append(logs, log)
	}

	return logs, rows.Err()
}

// recordAction logs an action without failing the caller's request.
func recordAction(ctx context.Context, rec ActivityRecorder, logger *zap.SugaredLogger, entry *models.ActivityLogEntry) {
	if rec == nil {
		return
	}
	if err := rec.Log(ctx, entry); err != nil {
		logger.Errorw("Failed to record activity", "type", entry.ActivityType, "error", err)
	}
}
