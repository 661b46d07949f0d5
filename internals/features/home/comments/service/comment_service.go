// file: internals/features/home/comments/service/comment_service.go
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
	"nunchakuclub_backend/internals/features/home/comments/dto"
	model "nunchakuclub_backend/internals/features/home/comments/model"
	helper "nunchakuclub_backend/internals/helpers"
	"nunchakuclub_backend/internals/helpers/errs"
	"nunchakuclub_backend/internals/helpers/tree"
	"nunchakuclub_backend/internals/helpers/workflow"
)

/* =========================================================
   COMMENT SERVICE

   Moderation: pending -> approved | spam, any -> trash,
   trash -> pending. Only approved comments count toward the
   post's comment counter; the counter moves in the same
   transaction as the status.

   Tree policy on hard delete: Reparent to the deleted
   comment's own parent, so replies float up one level and the
   thread stays readable.
========================================================= */

var machine = workflow.New("comment",
	[]workflow.Edge[model.CommentStatus]{
		{From: model.CommentStatusPending, To: model.CommentStatusApproved},
		{From: model.CommentStatusPending, To: model.CommentStatusSpam},
		{From: model.CommentStatusTrash, To: model.CommentStatusPending},
	},
	model.CommentStatusTrash, // reachable from any state
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

func commentStore(tx *gorm.DB) *tree.GormStore {
	return &tree.GormStore{
		DB:          tx,
		Table:       "comments",
		IDCol:       "comment_id",
		ParentCol:   "comment_parent_id",
		PositionCol: "comment_display_order",
		CreatedCol:  "comment_created_at",
		DeletedCol:  "comment_deleted_at",
	}
}

/* =========================================================
   ADD
========================================================= */

// Add creates a pending comment. A reply's parent must exist on the same
// post; the counter is untouched until moderation approves it.
func (s *Service) Add(ctx context.Context, req *dto.AddCommentRequest, prov logSvc.Provenance) (*model.CommentModel, error) {
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}

	m := req.ToModel()
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Table("posts").
			Where("post_id = ? AND post_deleted_at IS NULL", m.CommentPostID).
			Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return errs.NotFoundf("post %s", m.CommentPostID)
		}

		if req.CommentParentID != nil {
			var parent model.CommentModel
			if err := tx.First(&parent, "comment_id = ?", *req.CommentParentID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return errs.NotFoundf("parent comment %s", *req.CommentParentID)
				}
				return err
			}
			if parent.CommentPostID != m.CommentPostID {
				return errs.NotFoundf("parent comment %s on this post", *req.CommentParentID)
			}
		}

		if err := tx.Create(m).Error; err != nil {
			return err
		}
		if req.CommentParentID != nil {
			return tree.Attach(ctx, commentStore(tx), m.CommentID, *req.CommentParentID, nil)
		}
		return tree.MoveToRoot(ctx, commentStore(tx), m.CommentID)
	})
	if err != nil {
		return nil, err
	}

	return m, s.Recorder.Record(ctx, m.CommentUserID, "comment.add", logModel.EntityComment, &m.CommentID, "", prov)
}

/* =========================================================
   MODERATION WORKFLOW
========================================================= */

// Transition moderates one comment. Counter side effects ride in the
// same transaction: entering approved increments the post counter,
// leaving approved decrements it (clamped at zero; a clamp is logged as
// a data-consistency warning, not an error).
func (s *Service) Transition(ctx context.Context, id uuid.UUID, target model.CommentStatus, actor *uuid.UUID, prov logSvc.Provenance) (*model.CommentModel, error) {
	if !target.Valid() {
		return nil, errs.IllegalTransitionf("comment: unknown status %q", target)
	}

	var m model.CommentModel
	var detail string
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&m, "comment_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NotFoundf("comment %s", id)
			}
			return err
		}

		from := m.CommentStatus
		if err := machine.Step(from, target); err != nil {
			return err
		}

		if !from.Counted() && target.Counted() {
			if err := s.bumpPostCounter(tx, m.CommentPostID, +1); err != nil {
				return err
			}
		}
		if from.Counted() && !target.Counted() {
			if err := s.bumpPostCounter(tx, m.CommentPostID, -1); err != nil {
				return err
			}
		}

		now := time.Now().UTC()
		m.CommentStatus = target
		m.CommentProcessedBy = actor
		m.CommentProcessedAt = &now
		detail = machine.Detail(from, target)
		return tx.Save(&m).Error
	})
	if err != nil {
		return nil, err
	}

	return &m, s.Recorder.Record(ctx, actor, "comment.transition", logModel.EntityComment, &id, detail, prov)
}

func (s *Service) Approve(ctx context.Context, id uuid.UUID, actor *uuid.UUID, prov logSvc.Provenance) (*model.CommentModel, error) {
	return s.Transition(ctx, id, model.CommentStatusApproved, actor, prov)
}

func (s *Service) MarkSpam(ctx context.Context, id uuid.UUID, actor *uuid.UUID, prov logSvc.Provenance) (*model.CommentModel, error) {
	return s.Transition(ctx, id, model.CommentStatusSpam, actor, prov)
}

/* =========================================================
   DELETE (Reparent policy)
========================================================= */

// Delete hard-removes one comment; its direct replies are re-attached to
// the deleted comment's own parent (or become roots of the thread). A
// counted comment releases its slot in the post counter; replies keep
// their own status and count.
func (s *Service) Delete(ctx context.Context, id uuid.UUID, actor *uuid.UUID, prov logSvc.Provenance) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m model.CommentModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&m, "comment_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NotFoundf("comment %s", id)
			}
			return err
		}

		if m.CommentStatus.Counted() {
			if err := s.bumpPostCounter(tx, m.CommentPostID, -1); err != nil {
				return err
			}
		}
		return tree.Detach(ctx, commentStore(tx), id, tree.PolicyReparent, nil)
	})
	if err != nil {
		return err
	}
	return s.Recorder.Record(ctx, actor, "comment.delete", logModel.EntityComment, &id, "reparent", prov)
}

/* =========================================================
   QUERIES
========================================================= */

// CommentsOf returns approved comments of a post in thread order
// (roots first, then position within each level), freshly computed.
func (s *Service) CommentsOf(ctx context.Context, postID uuid.UUID) ([]model.CommentModel, error) {
	var out []model.CommentModel
	err := s.DB.WithContext(ctx).
		Where("comment_post_id = ? AND comment_status = ?", postID, model.CommentStatusApproved).
		Order("comment_parent_id ASC NULLS FIRST, comment_display_order ASC, comment_created_at ASC").
		Find(&out).Error
	return out, err
}

// PendingQueue lists comments awaiting moderation, oldest first.
func (s *Service) PendingQueue(ctx context.Context, limit int) ([]model.CommentModel, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var out []model.CommentModel
	err := s.DB.WithContext(ctx).
		Where("comment_status = ?", model.CommentStatusPending).
		Order("comment_created_at ASC").
		Limit(limit).
		Find(&out).Error
	return out, err
}

/* =========================================================
   INTERNALS
========================================================= */

// bumpPostCounter moves the post's comment counter by delta, clamped at
// zero. A clamp means the counter and the comment rows disagree; warn
// and continue rather than fail the moderation.
func (s *Service) bumpPostCounter(tx *gorm.DB, postID uuid.UUID, delta int) error {
	if delta >= 0 {
		return tx.Table("posts").
			Where("post_id = ?", postID).
			Update("post_comment_count", gorm.Expr("post_comment_count + ?", delta)).Error
	}

	var current int
	row := tx.Table("posts").
		Select("post_comment_count").
		Where("post_id = ?", postID).
		Row()
	if err := row.Scan(&current); err != nil {
		return err
	}
	if current+delta < 0 {
		s.Log.Warnw("comment counter clamped at zero",
			"post_id", postID, "count", current, "delta", delta)
		delta = -current
	}
	if delta == 0 {
		return nil
	}
	return tx.Table("posts").
		Where("post_id = ?", postID).
		Update("post_comment_count", gorm.Expr("post_comment_count + ?", delta)).Error
}
