// file: internals/features/home/pages/service/page_service.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	logModel "nunchakuclub_backend/internals/features/activity/logs/model"
	logSvc "nunchakuclub_backend/internals/features/activity/logs/service"
	"nunchakuclub_backend/internals/features/home/pages/dto"
	model "nunchakuclub_backend/internals/features/home/pages/model"
	helper "nunchakuclub_backend/internals/helpers"
	"nunchakuclub_backend/internals/helpers/errs"
	"nunchakuclub_backend/internals/helpers/tree"
)

/* =========================================================
   PAGE SERVICE

   Tree policy: Cascade. Deleting a page removes its whole
   subtree in the same transaction.
========================================================= */

type Service struct {
	DB       *gorm.DB
	Recorder *logSvc.Recorder
}

func New(db *gorm.DB, rec *logSvc.Recorder) *Service {
	return &Service{DB: db, Recorder: rec}
}

func pageStore(tx *gorm.DB) *tree.GormStore {
	return &tree.GormStore{
		DB:          tx,
		Table:       "pages",
		IDCol:       "page_id",
		ParentCol:   "page_parent_id",
		PositionCol: "page_display_order",
		CreatedCol:  "page_created_at",
		DeletedCol:  "page_deleted_at",
	}
}

/* =========================================================
   CREATE / UPDATE
========================================================= */

func (s *Service) Create(ctx context.Context, req *dto.CreatePageRequest, actor *uuid.UUID, prov logSvc.Provenance) (*model.PageModel, error) {
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}

	m := req.ToModel()
	helper.Stamp(m, actor, true)

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		base := helper.Slugify(req.PageTitle, 255)
		if req.PageSlug != nil && *req.PageSlug != "" {
			base = helper.Slugify(*req.PageSlug, 255)
		}
		slug, err := helper.EnsureUniqueSlugCI(ctx, tx, "pages", "page_slug", base, nil, 255)
		if err != nil {
			return err
		}
		m.PageSlug = slug

		if err := tx.Create(m).Error; err != nil {
			return errs.MapUnique(err, "slug")
		}
		if req.PageParentID != nil {
			return tree.Attach(ctx, pageStore(tx), m.PageID, *req.PageParentID, nil)
		}
		return tree.MoveToRoot(ctx, pageStore(tx), m.PageID)
	})
	if err != nil {
		return nil, err
	}

	return m, s.Recorder.Record(ctx, actor, "page.create", logModel.EntityPage, &m.PageID, m.PageSlug, prov)
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req *dto.UpdatePageRequest, actor *uuid.UUID, prov logSvc.Provenance) (*model.PageModel, error) {
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}

	var m model.PageModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m, "page_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NotFoundf("page %s", id)
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

	return &m, s.Recorder.Record(ctx, actor, "page.update", logModel.EntityPage, &id, "", prov)
}

// SetLayout applies a layout template and/or local config override and
// bumps the layout version (versioning supports rollback upstream).
func (s *Service) SetLayout(ctx context.Context, id uuid.UUID, req *dto.SetPageLayoutRequest, actor *uuid.UUID, prov logSvc.Provenance) (*model.PageModel, error) {
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}

	var m model.PageModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m, "page_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NotFoundf("page %s", id)
			}
			return err
		}

		if req.PageLayoutTemplateID != nil {
			var tpl model.LayoutTemplateModel
			if err := tx.First(&tpl, "layout_template_id = ? AND layout_template_is_active", *req.PageLayoutTemplateID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return errs.NotFoundf("layout template %s", *req.PageLayoutTemplateID)
				}
				return err
			}
			if err := tx.Model(&tpl).
				Update("layout_template_usage_count", gorm.Expr("layout_template_usage_count + 1")).Error; err != nil {
				return err
			}
		}

		m.PageLayoutTemplateID = req.PageLayoutTemplateID
		m.PageLayoutConfig = req.PageLayoutConfig
		m.PageLayoutVersion++
		helper.Stamp(&m, actor, false)
		return tx.Save(&m).Error
	})
	if err != nil {
		return nil, err
	}

	return &m, s.Recorder.Record(ctx, actor, "page.set_layout", logModel.EntityPage, &id,
		fmt.Sprintf("layout_version=%d", m.PageLayoutVersion), prov)
}

/* =========================================================
   TREE OPERATIONS
========================================================= */

func (s *Service) AttachParent(ctx context.Context, id, parentID uuid.UUID, position *int, actor *uuid.UUID, prov logSvc.Provenance) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tree.Attach(ctx, pageStore(tx), id, parentID, position)
	})
	if err != nil {
		return err
	}
	return s.Recorder.Record(ctx, actor, "page.attach", logModel.EntityPage, &id, "parent="+parentID.String(), prov)
}

func (s *Service) MoveToRoot(ctx context.Context, id uuid.UUID, actor *uuid.UUID, prov logSvc.Provenance) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tree.MoveToRoot(ctx, pageStore(tx), id)
	})
	if err != nil {
		return err
	}
	return s.Recorder.Record(ctx, actor, "page.detach_parent", logModel.EntityPage, &id, "", prov)
}

func (s *Service) Reorder(ctx context.Context, parentID *uuid.UUID, orderedIDs []uuid.UUID, actor *uuid.UUID, prov logSvc.Provenance) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tree.Reorder(ctx, pageStore(tx), parentID, orderedIDs)
	})
	if err != nil {
		return err
	}
	return s.Recorder.Record(ctx, actor, "page.reorder", logModel.EntityPage, parentID, "", prov)
}

// Delete cascades: the page and every descendant go in one transaction.
func (s *Service) Delete(ctx context.Context, id uuid.UUID, actor *uuid.UUID, prov logSvc.Provenance) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tree.Detach(ctx, pageStore(tx), id, tree.PolicyCascade, nil)
	})
	if err != nil {
		return err
	}
	return s.Recorder.Record(ctx, actor, "page.delete", logModel.EntityPage, &id, "cascade", prov)
}

/* =========================================================
   QUERIES
========================================================= */

func (s *Service) BySlug(ctx context.Context, slug string) (*model.PageModel, error) {
	var m model.PageModel
	err := s.DB.WithContext(ctx).First(&m, "LOWER(page_slug) = LOWER(?)", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NotFoundf("page slug %q", slug)
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *Service) ChildrenOf(ctx context.Context, parentID *uuid.UUID) ([]model.PageModel, error) {
	q := s.DB.WithContext(ctx)
	if parentID == nil {
		q = q.Where("page_parent_id IS NULL")
	} else {
		q = q.Where("page_parent_id = ?", *parentID)
	}
	var out []model.PageModel
	err := q.Order("page_display_order ASC, page_created_at ASC").Find(&out).Error
	return out, err
}

// Ancestors returns the chain nearest-first, for breadcrumbs.
func (s *Service) Ancestors(ctx context.Context, id uuid.UUID) ([]tree.Node, error) {
	var out []tree.Node
	for n, err := range tree.Ancestors(ctx, pageStore(s.DB), id) {
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// Descendants returns the subtree breadth-first.
func (s *Service) Descendants(ctx context.Context, id uuid.UUID) ([]tree.Node, error) {
	var out []tree.Node
	for n, err := range tree.Descendants(ctx, pageStore(s.DB), id) {
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}
