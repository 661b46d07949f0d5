// file: internals/features/home/posts/service/post_service.go
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	logModel "nunchakuclub_backend/internals/features/activity/logs/model"
	logSvc "nunchakuclub_backend/internals/features/activity/logs/service"
	"nunchakuclub_backend/internals/features/home/posts/dto"
	model "nunchakuclub_backend/internals/features/home/posts/model"
	helper "nunchakuclub_backend/internals/helpers"
	"nunchakuclub_backend/internals/helpers/errs"
	"nunchakuclub_backend/internals/helpers/workflow"
)

/* =========================================================
   POST SERVICE

   Workflow: draft -> published -> archived -> draft.
   Publishing requires non-empty title, slug and content;
   post_published_at is set on the FIRST publish only.
========================================================= */

var machine = workflow.New("post", []workflow.Edge[model.PostStatus]{
	{From: model.PostStatusDraft, To: model.PostStatusPublished},
	{From: model.PostStatusPublished, To: model.PostStatusArchived},
	{From: model.PostStatusArchived, To: model.PostStatusDraft},
})

type Service struct {
	DB       *gorm.DB
	Recorder *logSvc.Recorder
}

func New(db *gorm.DB, rec *logSvc.Recorder) *Service {
	return &Service{DB: db, Recorder: rec}
}

/* =========================================================
   CREATE / UPDATE / DELETE
========================================================= */

func (s *Service) Create(ctx context.Context, req *dto.CreatePostRequest, actor *uuid.UUID, prov logSvc.Provenance) (*model.PostModel, error) {
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}

	m := req.ToModel()
	helper.Stamp(m, actor, true)

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if m.PostCategoryID != nil {
			var n int64
			if err := tx.Table("categories").
				Where("category_id = ? AND category_deleted_at IS NULL", *m.PostCategoryID).
				Count(&n).Error; err != nil {
				return err
			}
			if n == 0 {
				return errs.NotFoundf("category %s", *m.PostCategoryID)
			}
		}

		base := helper.Slugify(req.PostTitle, 255)
		if req.PostSlug != nil && *req.PostSlug != "" {
			base = helper.Slugify(*req.PostSlug, 255)
		}
		slug, err := helper.EnsureUniqueSlugCI(ctx, tx, "posts", "post_slug", base, nil, 255)
		if err != nil {
			return err
		}
		m.PostSlug = slug

		if err := tx.Create(m).Error; err != nil {
			return errs.MapUnique(err, "slug")
		}
		if len(req.PostTagNames) > 0 {
			return replaceTagsTx(ctx, tx, m.PostID, req.PostTagNames)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return m, s.Recorder.Record(ctx, actor, "post.create", logModel.EntityPost, &m.PostID, m.PostSlug, prov)
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req *dto.UpdatePostRequest, actor *uuid.UUID, prov logSvc.Provenance) (*model.PostModel, error) {
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}

	var m model.PostModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m, "post_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NotFoundf("post %s", id)
			}
			return err
		}
		req.Apply(&m)
		helper.Stamp(&m, actor, false)
		return tx.Save(&m).Error
	})
	if err != nil {
		return nil, err
	}

	return &m, s.Recorder.Record(ctx, actor, "post.update", logModel.EntityPost, &id, "", prov)
}

// Delete removes the post with everything it owns: images and tag
// associations go with it (tags themselves survive), comments are
// soft-deleted alongside.
func (s *Service) Delete(ctx context.Context, id uuid.UUID, actor *uuid.UUID, prov logSvc.Provenance) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m model.PostModel
		if err := tx.First(&m, "post_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NotFoundf("post %s", id)
			}
			return err
		}
		if err := tx.Where("post_image_post_id = ?", id).Delete(&model.PostImageModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_tag_post_id = ?", id).Delete(&model.PostTagModel{}).Error; err != nil {
			return err
		}
		if err := tx.Exec(
			"UPDATE comments SET comment_deleted_at = now() WHERE comment_post_id = ? AND comment_deleted_at IS NULL", id,
		).Error; err != nil {
			return err
		}
		return tx.Delete(&m).Error
	})
	if err != nil {
		return err
	}
	return s.Recorder.Record(ctx, actor, "post.delete", logModel.EntityPost, &id, "", prov)
}

/* =========================================================
   WORKFLOW
========================================================= */

// Transition moves the post to target within the declared edge set. The
// row is re-read under FOR UPDATE inside the transaction so two
// concurrent transitions serialize instead of both committing against a
// stale status.
func (s *Service) Transition(ctx context.Context, id uuid.UUID, target model.PostStatus, actor *uuid.UUID, prov logSvc.Provenance) (*model.PostModel, error) {
	if !target.Valid() {
		return nil, errs.IllegalTransitionf("post: unknown status %q", target)
	}

	var m model.PostModel
	var detail string
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&m, "post_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NotFoundf("post %s", id)
			}
			return err
		}

		from := m.PostStatus
		if err := machine.Step(from, target); err != nil {
			return err
		}
		if target == model.PostStatusPublished {
			if err := publishGuard(&m); err != nil {
				return err
			}
			if m.PostPublishedAt == nil {
				now := time.Now().UTC()
				m.PostPublishedAt = &now
			}
		}

		m.PostStatus = target
		helper.Stamp(&m, actor, false)
		detail = machine.Detail(from, target)
		return tx.Save(&m).Error
	})
	if err != nil {
		return nil, err
	}

	return &m, s.Recorder.Record(ctx, actor, "post.transition", logModel.EntityPost, &id, detail, prov)
}

// publishGuard: a post may only go live with real content behind it.
func publishGuard(m *model.PostModel) error {
	if strings.TrimSpace(m.PostTitle) == "" ||
		strings.TrimSpace(m.PostSlug) == "" ||
		strings.TrimSpace(m.PostContent) == "" {
		return errs.GuardViolationf("post: publishing requires non-empty title, slug and content")
	}
	return nil
}

func (s *Service) Publish(ctx context.Context, id uuid.UUID, actor *uuid.UUID, prov logSvc.Provenance) (*model.PostModel, error) {
	return s.Transition(ctx, id, model.PostStatusPublished, actor, prov)
}

func (s *Service) Archive(ctx context.Context, id uuid.UUID, actor *uuid.UUID, prov logSvc.Provenance) (*model.PostModel, error) {
	return s.Transition(ctx, id, model.PostStatusArchived, actor, prov)
}

/* =========================================================
   COUNTERS
========================================================= */

// Like bumps the like counter and returns the new value.
func (s *Service) Like(ctx context.Context, id uuid.UUID) (int, error) {
	var count int
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.PostModel{}).
			Where("post_id = ?", id).
			Update("post_like_count", gorm.Expr("post_like_count + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errs.NotFoundf("post %s", id)
		}
		return tx.Model(&model.PostModel{}).
			Where("post_id = ?", id).
			Pluck("post_like_count", &count).Error
	})
	return count, err
}

// IncrementView bumps the view counter; not audited (read traffic).
func (s *Service) IncrementView(ctx context.Context, id uuid.UUID) error {
	return s.DB.WithContext(ctx).Model(&model.PostModel{}).
		Where("post_id = ?", id).
		Update("post_view_count", gorm.Expr("post_view_count + 1")).Error
}

/* =========================================================
   IMAGES & TAGS
========================================================= */

func (s *Service) AddImage(ctx context.Context, postID uuid.UUID, req *dto.AddPostImageRequest, actor *uuid.UUID, prov logSvc.Provenance) (*model.PostImageModel, error) {
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}
	img := req.ToModel(postID)
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&model.PostModel{}).Where("post_id = ?", postID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return errs.NotFoundf("post %s", postID)
		}
		return tx.Create(img).Error
	})
	if err != nil {
		return nil, err
	}
	return img, s.Recorder.Record(ctx, actor, "post.add_image", logModel.EntityPost, &postID, img.PostImageURL, prov)
}

// ReplaceTags swaps the post's tag set. Tags are upserted by slug and
// shared across posts; only associations are rewritten here.
func (s *Service) ReplaceTags(ctx context.Context, postID uuid.UUID, names []string, actor *uuid.UUID, prov logSvc.Provenance) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&model.PostModel{}).Where("post_id = ?", postID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return errs.NotFoundf("post %s", postID)
		}
		return replaceTagsTx(ctx, tx, postID, names)
	})
	if err != nil {
		return err
	}
	return s.Recorder.Record(ctx, actor, "post.replace_tags", logModel.EntityPost, &postID, strings.Join(names, ","), prov)
}

func replaceTagsTx(ctx context.Context, tx *gorm.DB, postID uuid.UUID, names []string) error {
	if err := tx.Where("post_tag_post_id = ?", postID).Delete(&model.PostTagModel{}).Error; err != nil {
		return err
	}
	seen := map[string]bool{}
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		slug := helper.Slugify(name, 80)
		if seen[slug] {
			continue
		}
		seen[slug] = true

		var tag model.TagModel
		err := tx.Where("tag_slug = ?", slug).
			Attrs(model.TagModel{TagName: name, TagSlug: slug}).
			FirstOrCreate(&tag).Error
		if err != nil {
			return errs.MapUnique(err, "tag slug")
		}
		if err := tx.Create(&model.PostTagModel{
			PostTagPostID: postID,
			PostTagTagID:  tag.TagID,
		}).Error; err != nil {
			return err
		}
	}
	return nil
}

/* =========================================================
   QUERIES
========================================================= */

func (s *Service) BySlug(ctx context.Context, slug string, publishedOnly bool) (*model.PostModel, error) {
	q := s.DB.WithContext(ctx).Where("LOWER(post_slug) = LOWER(?)", slug)
	if publishedOnly {
		q = q.Where("post_status = ?", model.PostStatusPublished)
	}
	var m model.PostModel
	err := q.First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NotFoundf("post slug %q", slug)
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Related returns other published posts in the same category, newest first.
func (s *Service) Related(ctx context.Context, id uuid.UUID, limit int) ([]model.PostModel, error) {
	if limit <= 0 || limit > 20 {
		limit = 5
	}
	var m model.PostModel
	if err := s.DB.WithContext(ctx).First(&m, "post_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFoundf("post %s", id)
		}
		return nil, err
	}
	if m.PostCategoryID == nil {
		return []model.PostModel{}, nil
	}
	var out []model.PostModel
	err := s.DB.WithContext(ctx).
		Where("post_category_id = ? AND post_id <> ? AND post_status = ?",
			*m.PostCategoryID, id, model.PostStatusPublished).
		Order("post_published_at DESC").
		Limit(limit).
		Find(&out).Error
	return out, err
}

// ImagesOf returns the post's gallery in display order.
func (s *Service) ImagesOf(ctx context.Context, postID uuid.UUID) ([]model.PostImageModel, error) {
	var out []model.PostImageModel
	err := s.DB.WithContext(ctx).
		Where("post_image_post_id = ?", postID).
		Order("post_image_display_order ASC, post_image_created_at ASC").
		Find(&out).Error
	return out, err
}

// TagsOf returns the post's tags by name.
func (s *Service) TagsOf(ctx context.Context, postID uuid.UUID) ([]model.TagModel, error) {
	var out []model.TagModel
	err := s.DB.WithContext(ctx).
		Joins("JOIN post_tags ON post_tag_tag_id = tag_id").
		Where("post_tag_post_id = ?", postID).
		Order("tag_name ASC").
		Find(&out).Error
	return out, err
}
