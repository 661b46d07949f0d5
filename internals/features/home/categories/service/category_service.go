// file: internals/features/home/categories/service/category_service.go
package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	logModel "nunchakuclub_backend/internals/features/activity/logs/model"
	logSvc "nunchakuclub_backend/internals/features/activity/logs/service"
	"nunchakuclub_backend/internals/features/home/categories/dto"
	model "nunchakuclub_backend/internals/features/home/categories/model"
	helper "nunchakuclub_backend/internals/helpers"
	"nunchakuclub_backend/internals/helpers/errs"
	"nunchakuclub_backend/internals/helpers/tree"
)

/* =========================================================
   CATEGORY SERVICE

   Tree policy: Block. A category with children can never be
   deleted; callers must empty or re-home it first.

   All mutations run in one transaction; the activity entry is
   recorded after commit. A returned errs.ErrLogUnavailable
   therefore means the change itself is already committed.
========================================================= */

type Service struct {
	DB       *gorm.DB
	Recorder *logSvc.Recorder
}

func New(db *gorm.DB, rec *logSvc.Recorder) *Service {
	return &Service{DB: db, Recorder: rec}
}

func categoryStore(tx *gorm.DB) *tree.GormStore {
	return &tree.GormStore{
		DB:          tx,
		Table:       "categories",
		IDCol:       "category_id",
		ParentCol:   "category_parent_id",
		PositionCol: "category_display_order",
		CreatedCol:  "category_created_at",
		DeletedCol:  "category_deleted_at",
	}
}

/* =========================================================
   CREATE / UPDATE
========================================================= */

func (s *Service) Create(ctx context.Context, req *dto.CreateCategoryRequest, actor *uuid.UUID, prov logSvc.Provenance) (*model.CategoryModel, error) {
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}

	m := req.ToModel()
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		base := helper.Slugify(req.CategoryName, 120)
		if req.CategorySlug != nil && *req.CategorySlug != "" {
			base = helper.Slugify(*req.CategorySlug, 120)
		}
		slug, err := helper.EnsureUniqueSlugCI(ctx, tx, "categories", "category_slug", base, nil, 120)
		if err != nil {
			return err
		}
		m.CategorySlug = slug

		if err := tx.Create(m).Error; err != nil {
			return errs.MapUnique(err, "slug")
		}
		if req.CategoryParentID != nil {
			return tree.Attach(ctx, categoryStore(tx), m.CategoryID, *req.CategoryParentID, nil)
		}
		return tree.MoveToRoot(ctx, categoryStore(tx), m.CategoryID)
	})
	if err != nil {
		return nil, err
	}

	return m, s.Recorder.Record(ctx, actor, "category.create", logModel.EntityCategory, &m.CategoryID, m.CategorySlug, prov)
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateCategoryRequest, actor *uuid.UUID, prov logSvc.Provenance) (*model.CategoryModel, error) {
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}

	var m model.CategoryModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m, "category_id = ?", id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return errs.NotFoundf("category %s", id)
			}
			return err
		}
		req.Apply(&m)
		return tx.Save(&m).Error
	})
	if err != nil {
		return nil, err
	}

	return &m, s.Recorder.Record(ctx, actor, "category.update", logModel.EntityCategory, &id, "", prov)
}

// ChangeSlug replaces the slug. Refused once the category is publicly
// referenced (any post lives under it); slugs are link identity.
func (s *Service) ChangeSlug(ctx context.Context, id uuid.UUID, newSlug string, actor *uuid.UUID, prov logSvc.Provenance) (*model.CategoryModel, error) {
	var m model.CategoryModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m, "category_id = ?", id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return errs.NotFoundf("category %s", id)
			}
			return err
		}

		var posts int64
		if err := tx.Table("posts").
			Where("post_category_id = ? AND post_deleted_at IS NULL", id).
			Count(&posts).Error; err != nil {
			return err
		}
		if posts > 0 {
			return errs.ErrSlugFrozen
		}

		slug, err := helper.EnsureUniqueSlugCI(ctx, tx, "categories", "category_slug",
			helper.Slugify(newSlug, 120),
			func(q *gorm.DB) *gorm.DB { return q.Where("category_id <> ?", id) },
			120)
		if err != nil {
			return err
		}
		m.CategorySlug = slug
		return errs.MapUnique(tx.Save(&m).Error, "slug")
	})
	if err != nil {
		return nil, err
	}

	return &m, s.Recorder.Record(ctx, actor, "category.change_slug", logModel.EntityCategory, &id, m.CategorySlug, prov)
}

/* =========================================================
   TREE OPERATIONS
========================================================= */

func (s *Service) AttachParent(ctx context.Context, id, parentID uuid.UUID, position *int, actor *uuid.UUID, prov logSvc.Provenance) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tree.Attach(ctx, categoryStore(tx), id, parentID, position)
	})
	if err != nil {
		return err
	}
	return s.Recorder.Record(ctx, actor, "category.attach", logModel.EntityCategory, &id, "parent="+parentID.String(), prov)
}

func (s *Service) MoveToRoot(ctx context.Context, id uuid.UUID, actor *uuid.UUID, prov logSvc.Provenance) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tree.MoveToRoot(ctx, categoryStore(tx), id)
	})
	if err != nil {
		return err
	}
	return s.Recorder.Record(ctx, actor, "category.detach_parent", logModel.EntityCategory, &id, "", prov)
}

// Reorder rewrites sibling order under one parent (nil = roots).
func (s *Service) Reorder(ctx context.Context, parentID *uuid.UUID, orderedIDs []uuid.UUID, actor *uuid.UUID, prov logSvc.Provenance) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tree.Reorder(ctx, categoryStore(tx), parentID, orderedIDs)
	})
	if err != nil {
		return err
	}
	return s.Recorder.Record(ctx, actor, "category.reorder", logModel.EntityCategory, parentID, "", prov)
}

// Delete applies the Block policy: errs.ErrHasChildren while direct
// children exist.
func (s *Service) Delete(ctx context.Context, id uuid.UUID, actor *uuid.UUID, prov logSvc.Provenance) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tree.Detach(ctx, categoryStore(tx), id, tree.PolicyBlock, nil)
	})
	if err != nil {
		return err
	}
	return s.Recorder.Record(ctx, actor, "category.delete", logModel.EntityCategory, &id, "", prov)
}

/* =========================================================
   QUERIES

   Freshly computed each call; no cached navigation slices.
========================================================= */

func (s *Service) ByID(ctx context.Context, id uuid.UUID) (*model.CategoryModel, error) {
	var m model.CategoryModel
	err := s.DB.WithContext(ctx).First(&m, "category_id = ?", id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, errs.NotFoundf("category %s", id)
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *Service) BySlug(ctx context.Context, slug string) (*model.CategoryModel, error) {
	var m model.CategoryModel
	err := s.DB.WithContext(ctx).First(&m, "LOWER(category_slug) = LOWER(?)", slug).Error
	if err == gorm.ErrRecordNotFound {
		return nil, errs.NotFoundf("category slug %q", slug)
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ChildrenOf returns direct children in sibling order (nil = roots).
func (s *Service) ChildrenOf(ctx context.Context, parentID *uuid.UUID) ([]model.CategoryModel, error) {
	q := s.DB.WithContext(ctx)
	if parentID == nil {
		q = q.Where("category_parent_id IS NULL")
	} else {
		q = q.Where("category_parent_id = ?", *parentID)
	}
	var out []model.CategoryModel
	err := q.Order("category_display_order ASC, category_created_at ASC").Find(&out).Error
	return out, err
}

// Ancestors returns the chain nearest-first, for breadcrumbs.
func (s *Service) Ancestors(ctx context.Context, id uuid.UUID) ([]model.CategoryModel, error) {
	return s.collect(ctx, tree.Ancestors(ctx, categoryStore(s.DB), id))
}

// Descendants returns the subtree breadth-first, for menu rendering.
func (s *Service) Descendants(ctx context.Context, id uuid.UUID) ([]model.CategoryModel, error) {
	return s.collect(ctx, tree.Descendants(ctx, categoryStore(s.DB), id))
}

func (s *Service) collect(ctx context.Context, seq func(func(tree.Node, error) bool)) ([]model.CategoryModel, error) {
	var ids []uuid.UUID
	for n, err := range seq {
		if err != nil {
			return nil, err
		}
		ids = append(ids, n.ID)
	}
	if len(ids) == 0 {
		return []model.CategoryModel{}, nil
	}
	var rows []model.CategoryModel
	if err := s.DB.WithContext(ctx).Where("category_id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]model.CategoryModel, len(rows))
	for _, r := range rows {
		byID[r.CategoryID] = r
	}
	out := make([]model.CategoryModel, 0, len(ids))
	for _, id := range ids {
		if m, ok := byID[id]; ok {
			out = append(out, m)
		}
	}
	return out, nil
}
