// file: internals/features/home/media/service/media_service.go
package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	logModel "nunchakuclub_backend/internals/features/activity/logs/model"
	logSvc "nunchakuclub_backend/internals/features/activity/logs/service"
	model "nunchakuclub_backend/internals/features/home/media/model"
	"nunchakuclub_backend/internals/helpers/errs"
)

/* =========================================================
   MEDIA SERVICE

   Bookkeeping over the media library. Upload and storage
   happen outside this module; rows arrive here with the file
   already persisted, so the service only registers, lists,
   annotates and removes entries.
========================================================= */

type Service struct {
	DB       *gorm.DB
	Recorder *logSvc.Recorder
}

func New(db *gorm.DB, rec *logSvc.Recorder) *Service {
	return &Service{DB: db, Recorder: rec}
}

// Register records a file that storage has already accepted.
func (s *Service) Register(ctx context.Context, m *model.MediaModel, actor *uuid.UUID, prov logSvc.Provenance) (*model.MediaModel, error) {
	if strings.TrimSpace(m.MediaFileName) == "" || strings.TrimSpace(m.MediaFilePath) == "" {
		return nil, errs.GuardViolationf("media: file name and path are required")
	}
	m.MediaUploadedBy = actor
	if err := s.DB.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return m, s.Recorder.Record(ctx, actor, "media.register", logModel.EntityMedia, &m.MediaID, m.MediaOriginalName, prov)
}

func (s *Service) ByID(ctx context.Context, id uuid.UUID) (*model.MediaModel, error) {
	var m model.MediaModel
	if err := s.DB.WithContext(ctx).First(&m, "media_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFoundf("media %s", id)
		}
		return nil, err
	}
	return &m, nil
}

// Library lists entries newest first, optionally narrowed to one mime
// family ("image", "video", ...).
func (s *Service) Library(ctx context.Context, mimePrefix string, limit int) ([]model.MediaModel, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	q := s.DB.WithContext(ctx).Order("media_created_at DESC").Limit(limit)
	if mimePrefix != "" {
		q = q.Where("media_mime_type LIKE ?", mimePrefix+"/%")
	}
	var out []model.MediaModel
	err := q.Find(&out).Error
	return out, err
}

// UpdateMeta rewrites the descriptive fields; the file itself is immutable.
func (s *Service) UpdateMeta(ctx context.Context, id uuid.UUID, altText, caption *string, actor *uuid.UUID, prov logSvc.Provenance) (*model.MediaModel, error) {
	var m model.MediaModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m, "media_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NotFoundf("media %s", id)
			}
			return err
		}
		if altText != nil {
			m.MediaAltText = altText
		}
		if caption != nil {
			m.MediaCaption = caption
		}
		return tx.Save(&m).Error
	})
	if err != nil {
		return nil, err
	}
	return &m, s.Recorder.Record(ctx, actor, "media.update", logModel.EntityMedia, &id, "", prov)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID, actor *uuid.UUID, prov logSvc.Provenance) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&model.MediaModel{}, "media_id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errs.NotFoundf("media %s", id)
		}
		return nil
	})
	if err != nil {
		return err
	}
	return s.Recorder.Record(ctx, actor, "media.delete", logModel.EntityMedia, &id, "", prov)
}
