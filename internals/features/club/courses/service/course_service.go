// file: internals/features/club/courses/service/course_service.go
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
	"nunchakuclub_backend/internals/features/club/courses/dto"
	model "nunchakuclub_backend/internals/features/club/courses/model"
	helper "nunchakuclub_backend/internals/helpers"
	"nunchakuclub_backend/internals/helpers/errs"
	"nunchakuclub_backend/internals/helpers/workflow"
)

/* =========================================================
   COURSE SERVICE

   Enrollment workflow: pending -> approved | rejected, then
   approved -> completed. Rejected and completed are terminal;
   nothing routes back to pending. Approve and reject are
   staff decisions, so the transition refuses a nil actor.
========================================================= */

var machine = workflow.New("course_enrollment",
	[]workflow.Edge[model.EnrollmentStatus]{
		{From: model.EnrollmentStatusPending, To: model.EnrollmentStatusApproved},
		{From: model.EnrollmentStatusPending, To: model.EnrollmentStatusRejected},
		{From: model.EnrollmentStatusApproved, To: model.EnrollmentStatusCompleted},
	},
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
   COURSE CRUD
========================================================= */

func (s *Service) Create(ctx context.Context, req *dto.CreateCourseRequest, actor *uuid.UUID, prov logSvc.Provenance) (*model.CourseModel, error) {
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}

	level := model.CourseLevel(req.CourseLevel)
	if req.CourseLevel == "" {
		level = model.CourseLevelBeginner
	}
	if !level.Valid() {
		return nil, errs.GuardViolationf("course: unknown level %q", req.CourseLevel)
	}

	base := req.CourseSlug
	if base == "" {
		base = req.CourseName
	}
	slug, err := helper.EnsureUniqueSlugCI(ctx, s.DB, "courses", "course_slug",
		helper.Slugify(base, 170), nil, 170)
	if err != nil {
		return nil, err
	}

	m := model.CourseModel{
		CourseName:            req.CourseName,
		CourseSlug:            slug,
		CourseDescription:     req.CourseDescription,
		CourseLevel:           level,
		CourseDurationMonths:  req.CourseDurationMonths,
		CourseSessionsPerWeek: req.CourseSessionsPerWeek,
		CoursePrice:           req.CoursePrice,
		CourseIsFree:          req.CourseIsFree,
		CourseFeatures:        req.CourseFeatures,
		CourseDisplayOrder:    req.CourseDisplayOrder,
		CourseIsFeatured:      req.CourseIsFeatured,
		CourseIsActive:        true,
		CourseThumbnailURL:    req.CourseThumbnailURL,
		CourseCoverImageURL:   req.CourseCoverImageURL,
	}
	if m.CourseIsFree {
		m.CoursePrice = 0
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&m).Error; err != nil {
			return errs.MapUnique(err, "course slug")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &m, s.Recorder.Record(ctx, actor, "course.create", logModel.EntityCourse, &m.CourseID, m.CourseName, prov)
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateCourseRequest, actor *uuid.UUID, prov logSvc.Provenance) (*model.CourseModel, error) {
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}

	var m model.CourseModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m, "course_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NotFoundf("course %s", id)
			}
			return err
		}

		if req.CourseName != nil {
			m.CourseName = *req.CourseName
		}
		if req.CourseDescription != nil {
			m.CourseDescription = req.CourseDescription
		}
		if req.CourseLevel != nil {
			level := model.CourseLevel(*req.CourseLevel)
			if !level.Valid() {
				return errs.GuardViolationf("course: unknown level %q", *req.CourseLevel)
			}
			m.CourseLevel = level
		}
		if req.CourseDurationMonths != nil {
			m.CourseDurationMonths = *req.CourseDurationMonths
		}
		if req.CourseSessionsPerWeek != nil {
			m.CourseSessionsPerWeek = *req.CourseSessionsPerWeek
		}
		if req.CoursePrice != nil {
			m.CoursePrice = *req.CoursePrice
		}
		if req.CourseIsFree != nil {
			m.CourseIsFree = *req.CourseIsFree
			if m.CourseIsFree {
				m.CoursePrice = 0
			}
		}
		if req.CourseFeatures != nil {
			m.CourseFeatures = req.CourseFeatures
		}
		if req.CourseDisplayOrder != nil {
			m.CourseDisplayOrder = *req.CourseDisplayOrder
		}
		if req.CourseIsFeatured != nil {
			m.CourseIsFeatured = *req.CourseIsFeatured
		}
		if req.CourseIsActive != nil {
			m.CourseIsActive = *req.CourseIsActive
		}
		if req.CourseThumbnailURL != nil {
			m.CourseThumbnailURL = req.CourseThumbnailURL
		}
		if req.CourseCoverImageURL != nil {
			m.CourseCoverImageURL = req.CourseCoverImageURL
		}

		return tx.Save(&m).Error
	})
	if err != nil {
		return nil, err
	}

	return &m, s.Recorder.Record(ctx, actor, "course.update", logModel.EntityCourse, &id, m.CourseName, prov)
}

// Delete soft-deletes a course. Enrollments keep their rows so the
// history of who joined what stays queryable.
func (s *Service) Delete(ctx context.Context, id uuid.UUID, actor *uuid.UUID, prov logSvc.Provenance) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&model.CourseModel{}, "course_id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errs.NotFoundf("course %s", id)
		}
		return nil
	})
	if err != nil {
		return err
	}
	return s.Recorder.Record(ctx, actor, "course.delete", logModel.EntityCourse, &id, "", prov)
}

func (s *Service) ByID(ctx context.Context, id uuid.UUID) (*model.CourseModel, error) {
	var m model.CourseModel
	if err := s.DB.WithContext(ctx).First(&m, "course_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFoundf("course %s", id)
		}
		return nil, err
	}
	return &m, nil
}

func (s *Service) BySlug(ctx context.Context, slug string) (*model.CourseModel, error) {
	var m model.CourseModel
	if err := s.DB.WithContext(ctx).
		First(&m, "LOWER(course_slug) = LOWER(?)", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFoundf("course %q", slug)
		}
		return nil, err
	}
	return &m, nil
}

// Active lists active courses in display order for the public site.
func (s *Service) Active(ctx context.Context) ([]model.CourseModel, error) {
	var out []model.CourseModel
	err := s.DB.WithContext(ctx).
		Where("course_is_active = ?", true).
		Order("course_display_order ASC, course_created_at ASC").
		Find(&out).Error
	return out, err
}

/* =========================================================
   ENROLLMENTS
========================================================= */

func (s *Service) Enroll(ctx context.Context, req *dto.EnrollRequest, prov logSvc.Provenance) (*model.CourseEnrollmentModel, error) {
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}

	courseID, err := uuid.Parse(req.CourseEnrollmentCourseID)
	if err != nil {
		return nil, errs.NotFoundf("course %q", req.CourseEnrollmentCourseID)
	}

	var m model.CourseEnrollmentModel
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var course model.CourseModel
		if err := tx.Select("course_id", "course_is_active").
			First(&course, "course_id = ?", courseID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NotFoundf("course %s", courseID)
			}
			return err
		}
		if !course.CourseIsActive {
			return errs.GuardViolationf("course %s is not open for enrollment", courseID)
		}

		m = model.CourseEnrollmentModel{
			CourseEnrollmentCourseID:   courseID,
			CourseEnrollmentFullName:   req.CourseEnrollmentFullName,
			CourseEnrollmentPhone:      req.CourseEnrollmentPhone,
			CourseEnrollmentEmail:      req.CourseEnrollmentEmail,
			CourseEnrollmentMessage:    req.CourseEnrollmentMessage,
			CourseEnrollmentStatus:     model.EnrollmentStatusPending,
			CourseEnrollmentEnrolledAt: time.Now().UTC(),
		}
		if req.CourseEnrollmentUserID != nil {
			uid, err := uuid.Parse(*req.CourseEnrollmentUserID)
			if err != nil {
				return errs.NotFoundf("user %q", *req.CourseEnrollmentUserID)
			}
			m.CourseEnrollmentUserID = &uid
		}
		return tx.Create(&m).Error
	})
	if err != nil {
		return nil, err
	}

	// The applicant may be anonymous; the enrollment's own user id (if
	// any) is the closest thing to an actor here.
	return &m, s.Recorder.Record(ctx, m.CourseEnrollmentUserID, "course_enrollment.create",
		logModel.EntityCourseEnrollment, &m.CourseEnrollmentID, m.CourseEnrollmentFullName, prov)
}

// Transition moves an enrollment along the workflow. Approvals and
// rejections are staff decisions and must be attributable; completion
// may be system-driven (e.g. the course duration elapsing).
func (s *Service) Transition(ctx context.Context, id uuid.UUID, target model.EnrollmentStatus, actor *uuid.UUID, notes *string, prov logSvc.Provenance) (*model.CourseEnrollmentModel, error) {
	if !target.Valid() {
		return nil, errs.IllegalTransitionf("course_enrollment: unknown status %q", target)
	}
	if actor == nil && requiresActor(target) {
		return nil, errs.GuardViolationf("course_enrollment: %s requires a processing actor", target)
	}

	var m model.CourseEnrollmentModel
	var detail string
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&m, "course_enrollment_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NotFoundf("course enrollment %s", id)
			}
			return err
		}

		from := m.CourseEnrollmentStatus
		if err := machine.Step(from, target); err != nil {
			return err
		}

		now := time.Now().UTC()
		m.CourseEnrollmentStatus = target
		m.CourseEnrollmentProcessedBy = actor
		m.CourseEnrollmentProcessedAt = &now
		if notes != nil {
			m.CourseEnrollmentAdminNotes = notes
		}
		detail = machine.Detail(from, target)
		return tx.Save(&m).Error
	})
	if err != nil {
		return nil, err
	}

	return &m, s.Recorder.Record(ctx, actor, "course_enrollment.transition",
		logModel.EntityCourseEnrollment, &id, detail, prov)
}

// requiresActor reports whether a transition target must be attributable
// to a staff member.
func requiresActor(target model.EnrollmentStatus) bool {
	return target == model.EnrollmentStatusApproved || target == model.EnrollmentStatusRejected
}

func (s *Service) Approve(ctx context.Context, id uuid.UUID, actor *uuid.UUID, notes *string, prov logSvc.Provenance) (*model.CourseEnrollmentModel, error) {
	return s.Transition(ctx, id, model.EnrollmentStatusApproved, actor, notes, prov)
}

func (s *Service) Reject(ctx context.Context, id uuid.UUID, actor *uuid.UUID, notes *string, prov logSvc.Provenance) (*model.CourseEnrollmentModel, error) {
	return s.Transition(ctx, id, model.EnrollmentStatusRejected, actor, notes, prov)
}

func (s *Service) Complete(ctx context.Context, id uuid.UUID, actor *uuid.UUID, prov logSvc.Provenance) (*model.CourseEnrollmentModel, error) {
	return s.Transition(ctx, id, model.EnrollmentStatusCompleted, actor, nil, prov)
}

func (s *Service) EnrollmentsOf(ctx context.Context, courseID uuid.UUID, status *model.EnrollmentStatus) ([]model.CourseEnrollmentModel, error) {
	q := s.DB.WithContext(ctx).
		Where("course_enrollment_course_id = ?", courseID)
	if status != nil {
		q = q.Where("course_enrollment_status = ?", *status)
	}
	var out []model.CourseEnrollmentModel
	err := q.Order("course_enrollment_enrolled_at ASC").Find(&out).Error
	return out, err
}

func (s *Service) PendingEnrollments(ctx context.Context, limit int) ([]model.CourseEnrollmentModel, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var out []model.CourseEnrollmentModel
	err := s.DB.WithContext(ctx).
		Where("course_enrollment_status = ?", model.EnrollmentStatusPending).
		Order("course_enrollment_enrolled_at ASC").
		Limit(limit).
		Find(&out).Error
	return out, err
}
