// file: internals/features/home/contact/service/contact_service.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	logModel "nunchakuclub_backend/internals/features/activity/logs/model"
	logSvc "nunchakuclub_backend/internals/features/activity/logs/service"
	courseModel "nunchakuclub_backend/internals/features/club/courses/model"
	"nunchakuclub_backend/internals/features/home/contact/dto"
	model "nunchakuclub_backend/internals/features/home/contact/model"
	helper "nunchakuclub_backend/internals/helpers"
	"nunchakuclub_backend/internals/helpers/errs"
	"nunchakuclub_backend/internals/helpers/workflow"
)

/* =========================================================
   CONTACT SERVICE

   Inbox workflow: new -> read -> replied. Archiving is
   allowed from any state; an archived message stays archived.
========================================================= */

var machine = workflow.New("contact_submission",
	[]workflow.Edge[model.ContactStatus]{
		{From: model.ContactStatusNew, To: model.ContactStatusRead},
		{From: model.ContactStatusRead, To: model.ContactStatusReplied},
	},
	model.ContactStatusArchived, // reachable from any state
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

// Submit stores a visitor message. The sender is anonymous, so the
// activity entry carries no actor; provenance keeps the IP and UA.
func (s *Service) Submit(ctx context.Context, req *dto.SubmitContactRequest, prov logSvc.Provenance) (*model.ContactSubmissionModel, error) {
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}

	m := model.ContactSubmissionModel{
		ContactSubmissionName:      req.ContactSubmissionName,
		ContactSubmissionEmail:     req.ContactSubmissionEmail,
		ContactSubmissionPhone:     req.ContactSubmissionPhone,
		ContactSubmissionSubject:   req.ContactSubmissionSubject,
		ContactSubmissionMessage:   req.ContactSubmissionMessage,
		ContactSubmissionStatus:    model.ContactStatusNew,
		ContactSubmissionIPAddress: prov.IPAddress,
		ContactSubmissionUserAgent: prov.UserAgent,
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if req.ContactSubmissionCourseID != nil {
			courseID, err := uuid.Parse(*req.ContactSubmissionCourseID)
			if err != nil {
				return errs.NotFoundf("course %q", *req.ContactSubmissionCourseID)
			}
			var n int64
			if err := tx.Model(&courseModel.CourseModel{}).
				Where("course_id = ?", courseID).
				Count(&n).Error; err != nil {
				return err
			}
			if n == 0 {
				return errs.NotFoundf("course %s", courseID)
			}
			m.ContactSubmissionCourseID = &courseID
		}
		return tx.Create(&m).Error
	})
	if err != nil {
		return nil, err
	}

	return &m, s.Recorder.Record(ctx, nil, "contact_submission.create",
		logModel.EntityContactSubmission, &m.ContactSubmissionID, m.ContactSubmissionEmail, prov)
}

// Transition moves a submission through the inbox workflow and stamps
// the handling staff member.
func (s *Service) Transition(ctx context.Context, id uuid.UUID, target model.ContactStatus, actor *uuid.UUID, notes *string, prov logSvc.Provenance) (*model.ContactSubmissionModel, error) {
	if !target.Valid() {
		return nil, errs.IllegalTransitionf("contact_submission: unknown status %q", target)
	}

	var m model.ContactSubmissionModel
	var detail string
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&m, "contact_submission_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NotFoundf("contact submission %s", id)
			}
			return err
		}

		from := m.ContactSubmissionStatus
		if err := machine.Step(from, target); err != nil {
			return err
		}

		now := time.Now().UTC()
		m.ContactSubmissionStatus = target
		m.ContactSubmissionHandledBy = actor
		m.ContactSubmissionHandledAt = &now
		if notes != nil {
			m.ContactSubmissionAdminNotes = notes
		}
		detail = machine.Detail(from, target)
		return tx.Save(&m).Error
	})
	if err != nil {
		return nil, err
	}

	return &m, s.Recorder.Record(ctx, actor, "contact_submission.transition",
		logModel.EntityContactSubmission, &id, detail, prov)
}

func (s *Service) MarkRead(ctx context.Context, id uuid.UUID, actor *uuid.UUID, prov logSvc.Provenance) (*model.ContactSubmissionModel, error) {
	return s.Transition(ctx, id, model.ContactStatusRead, actor, nil, prov)
}

func (s *Service) MarkReplied(ctx context.Context, id uuid.UUID, actor *uuid.UUID, prov logSvc.Provenance) (*model.ContactSubmissionModel, error) {
	return s.Transition(ctx, id, model.ContactStatusReplied, actor, nil, prov)
}

func (s *Service) Archive(ctx context.Context, id uuid.UUID, actor *uuid.UUID, prov logSvc.Provenance) (*model.ContactSubmissionModel, error) {
	return s.Transition(ctx, id, model.ContactStatusArchived, actor, nil, prov)
}

func (s *Service) ByID(ctx context.Context, id uuid.UUID) (*model.ContactSubmissionModel, error) {
	var m model.ContactSubmissionModel
	if err := s.DB.WithContext(ctx).First(&m, "contact_submission_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFoundf("contact submission %s", id)
		}
		return nil, err
	}
	return &m, nil
}

// Inbox lists submissions newest first, optionally filtered by status.
func (s *Service) Inbox(ctx context.Context, status *model.ContactStatus, limit int) ([]model.ContactSubmissionModel, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	q := s.DB.WithContext(ctx).Order("contact_submission_created_at DESC").Limit(limit)
	if status != nil {
		q = q.Where("contact_submission_status = ?", *status)
	}
	var out []model.ContactSubmissionModel
	err := q.Find(&out).Error
	return out, err
}
