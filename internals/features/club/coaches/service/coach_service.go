// file: internals/features/club/coaches/service/coach_service.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	logModel "nunchakuclub_backend/internals/features/activity/logs/model"
	logSvc "nunchakuclub_backend/internals/features/activity/logs/service"
	"nunchakuclub_backend/internals/features/club/coaches/dto"
	model "nunchakuclub_backend/internals/features/club/coaches/model"
	helper "nunchakuclub_backend/internals/helpers"
	"nunchakuclub_backend/internals/helpers/errs"
)

type Service struct {
	DB       *gorm.DB
	Recorder *logSvc.Recorder
	Log      *zap.SugaredLogger
}

func New(db *gorm.DB, rec *logSvc.Recorder, log *zap.SugaredLogger) *Service {
	if log == nil {
		log = zap.S()
	}
	return &Service{DB: db, Recorder: rec, Log: log}
}

/* =========================================================
   COACHES
========================================================= */

func (s *Service) Create(ctx context.Context, req *dto.CreateCoachRequest, actor *uuid.UUID, prov logSvc.Provenance) (*model.CoachModel, error) {
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}

	base := req.CoachSlug
	if base == "" {
		base = req.CoachFullName
	}
	slug, err := helper.EnsureUniqueSlugCI(ctx, s.DB, "coaches", "coach_slug",
		helper.Slugify(base, 170), nil, 170)
	if err != nil {
		return nil, err
	}

	m := model.CoachModel{
		CoachFullName:        req.CoachFullName,
		CoachSlug:            slug,
		CoachTitle:           req.CoachTitle,
		CoachBio:             req.CoachBio,
		CoachPhotoURL:        req.CoachPhotoURL,
		CoachCertifications:  req.CoachCertifications,
		CoachAchievements:    req.CoachAchievements,
		CoachYearsExperience: req.CoachYearsExperience,
		CoachDisplayOrder:    req.CoachDisplayOrder,
		CoachIsActive:        true,
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&m).Error; err != nil {
			return errs.MapUnique(err, "coach slug")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &m, s.Recorder.Record(ctx, actor, "coach.create", logModel.EntityCoach, &m.CoachID, m.CoachFullName, prov)
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateCoachRequest, actor *uuid.UUID, prov logSvc.Provenance) (*model.CoachModel, error) {
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}

	var m model.CoachModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m, "coach_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NotFoundf("coach %s", id)
			}
			return err
		}

		if req.CoachFullName != nil {
			m.CoachFullName = *req.CoachFullName
		}
		if req.CoachTitle != nil {
			m.CoachTitle = req.CoachTitle
		}
		if req.CoachBio != nil {
			m.CoachBio = req.CoachBio
		}
		if req.CoachPhotoURL != nil {
			m.CoachPhotoURL = req.CoachPhotoURL
		}
		if req.CoachCertifications != nil {
			m.CoachCertifications = req.CoachCertifications
		}
		if req.CoachAchievements != nil {
			m.CoachAchievements = req.CoachAchievements
		}
		if req.CoachYearsExperience != nil {
			m.CoachYearsExperience = *req.CoachYearsExperience
		}
		if req.CoachDisplayOrder != nil {
			m.CoachDisplayOrder = *req.CoachDisplayOrder
		}
		if req.CoachIsActive != nil {
			m.CoachIsActive = *req.CoachIsActive
		}

		return tx.Save(&m).Error
	})
	if err != nil {
		return nil, err
	}

	return &m, s.Recorder.Record(ctx, actor, "coach.update", logModel.EntityCoach, &id, m.CoachFullName, prov)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID, actor *uuid.UUID, prov logSvc.Provenance) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Achievements lose their coach link, not their rows.
		if err := tx.Model(&model.AchievementModel{}).
			Where("achievement_coach_id = ?", id).
			Update("achievement_coach_id", nil).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.CoachModel{}, "coach_id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errs.NotFoundf("coach %s", id)
		}
		return nil
	})
	if err != nil {
		return err
	}
	return s.Recorder.Record(ctx, actor, "coach.delete", logModel.EntityCoach, &id, "", prov)
}

func (s *Service) BySlug(ctx context.Context, slug string) (*model.CoachModel, error) {
	var m model.CoachModel
	if err := s.DB.WithContext(ctx).
		First(&m, "LOWER(coach_slug) = LOWER(?)", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFoundf("coach %q", slug)
		}
		return nil, err
	}
	return &m, nil
}

func (s *Service) Active(ctx context.Context) ([]model.CoachModel, error) {
	var out []model.CoachModel
	err := s.DB.WithContext(ctx).
		Where("coach_is_active = ?", true).
		Order("coach_display_order ASC, coach_created_at ASC").
		Find(&out).Error
	return out, err
}

/* =========================================================
   ACHIEVEMENTS
========================================================= */

func (s *Service) AddAchievement(ctx context.Context, req *dto.CreateAchievementRequest, actor *uuid.UUID, prov logSvc.Provenance) (*model.AchievementModel, error) {
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}

	typ := model.AchievementType(req.AchievementType)
	if req.AchievementType == "" {
		typ = model.AchievementTypeMilestone
	}
	if !typ.Valid() {
		return nil, errs.GuardViolationf("achievement: unknown type %q", req.AchievementType)
	}

	m := model.AchievementModel{
		AchievementTitle:        req.AchievementTitle,
		AchievementDescription:  req.AchievementDescription,
		AchievementType:         typ,
		AchievementYear:         req.AchievementYear,
		AchievementImageURL:     req.AchievementImageURL,
		AchievementDisplayOrder: req.AchievementDisplayOrder,
		AchievementIsFeatured:   req.AchievementIsFeatured,
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if req.AchievementCoachID != nil {
			coachID, err := uuid.Parse(*req.AchievementCoachID)
			if err != nil {
				return errs.NotFoundf("coach %q", *req.AchievementCoachID)
			}
			var n int64
			if err := tx.Model(&model.CoachModel{}).
				Where("coach_id = ?", coachID).
				Count(&n).Error; err != nil {
				return err
			}
			if n == 0 {
				return errs.NotFoundf("coach %s", coachID)
			}
			m.AchievementCoachID = &coachID
		}
		return tx.Create(&m).Error
	})
	if err != nil {
		return nil, err
	}

	return &m, s.Recorder.Record(ctx, actor, "achievement.create",
		logModel.EntityAchievement, &m.AchievementID, m.AchievementTitle, prov)
}

func (s *Service) DeleteAchievement(ctx context.Context, id uuid.UUID, actor *uuid.UUID, prov logSvc.Provenance) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&model.AchievementModel{}, "achievement_id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errs.NotFoundf("achievement %s", id)
		}
		return nil
	})
	if err != nil {
		return err
	}
	return s.Recorder.Record(ctx, actor, "achievement.delete", logModel.EntityAchievement, &id, "", prov)
}

func (s *Service) Achievements(ctx context.Context, coachID *uuid.UUID) ([]model.AchievementModel, error) {
	q := s.DB.WithContext(ctx).
		Order("achievement_year DESC, achievement_display_order ASC")
	if coachID != nil {
		q = q.Where("achievement_coach_id = ?", *coachID)
	}
	var out []model.AchievementModel
	err := q.Find(&out).Error
	return out, err
}
