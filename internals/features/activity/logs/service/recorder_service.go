// file: internals/features/activity/logs/service/recorder_service.go
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	logModel "nunchakuclub_backend/internals/features/activity/logs/model"
	"nunchakuclub_backend/internals/helpers/errs"
)

/* =========================================================
   ACTIVITY RECORDER

   Best-effort audit sink. A failed insert is reported as
   errs.ErrLogUnavailable and logged, but must never roll back
   the business operation that triggered it; callers therefore
   record AFTER their transaction commits, on the root DB
   handle, never inside the tx.
========================================================= */

// Provenance carries request origin data from the external API layer.
type Provenance struct {
	IPAddress *string
	UserAgent *string
}

type Recorder struct {
	DB  *gorm.DB
	Log *zap.SugaredLogger
}

func NewRecorder(db *gorm.DB, log *zap.SugaredLogger) *Recorder {
	if log == nil {
		log = zap.S()
	}
	return &Recorder{DB: db, Log: log}
}

// Record appends one entry. actor and entityID may be nil (system or
// anonymous action). details is free text, e.g. "draft -> published".
func (r *Recorder) Record(
	ctx context.Context,
	actor *uuid.UUID,
	action string,
	entityType logModel.EntityKind,
	entityID *uuid.UUID,
	details string,
	prov Provenance,
) error {
	if !entityType.Valid() {
		return fmt.Errorf("%w: unknown entity kind %q", errs.ErrLogUnavailable, entityType)
	}

	entry := logModel.ActivityLogModel{
		ActivityLogUserID:     actor,
		ActivityLogAction:     action,
		ActivityLogEntityType: entityType,
		ActivityLogEntityID:   entityID,
		ActivityLogIPAddress:  prov.IPAddress,
		ActivityLogUserAgent:  prov.UserAgent,
	}
	if details != "" {
		entry.ActivityLogDetails = &details
	}

	if err := r.DB.WithContext(ctx).Create(&entry).Error; err != nil {
		r.Log.Warnw("activity log write failed",
			"action", action,
			"entity_type", entityType,
			"err", err,
		)
		return fmt.Errorf("%w: %v", errs.ErrLogUnavailable, err)
	}
	return nil
}

// EntriesFor lists the audit trail of one entity, newest first.
func (r *Recorder) EntriesFor(ctx context.Context, entityType logModel.EntityKind, entityID uuid.UUID, limit int) ([]logModel.ActivityLogModel, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var out []logModel.ActivityLogModel
	err := r.DB.WithContext(ctx).
		Where("activity_log_entity_type = ? AND activity_log_entity_id = ?", entityType, entityID).
		Order("activity_log_created_at DESC").
		Limit(limit).
		Find(&out).Error
	return out, err
}

// EntriesByActor lists what one user did, newest first.
func (r *Recorder) EntriesByActor(ctx context.Context, userID uuid.UUID, limit int) ([]logModel.ActivityLogModel, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var out []logModel.ActivityLogModel
	err := r.DB.WithContext(ctx).
		Where("activity_log_user_id = ?", userID).
		Order("activity_log_created_at DESC").
		Limit(limit).
		Find(&out).Error
	return out, err
}
