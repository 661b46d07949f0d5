// file: internals/features/home/menus/service/menu_item_service.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	logModel "nunchakuclub_backend/internals/features/activity/logs/model"
	logSvc "nunchakuclub_backend/internals/features/activity/logs/service"
	"nunchakuclub_backend/internals/features/home/menus/dto"
	model "nunchakuclub_backend/internals/features/home/menus/model"
	helper "nunchakuclub_backend/internals/helpers"
	"nunchakuclub_backend/internals/helpers/errs"
	"nunchakuclub_backend/internals/helpers/tree"
)

/* =========================================================
   MENU ITEM SERVICE

   Tree policy: Cascade (removing a menu entry removes its
   submenu). A child inherits no location check from the
   engine, so attach verifies both items share one location.
========================================================= */

type Service struct {
	DB       *gorm.DB
	Recorder *logSvc.Recorder
}

func New(db *gorm.DB, rec *logSvc.Recorder) *Service {
	return &Service{DB: db, Recorder: rec}
}

func menuStore(tx *gorm.DB) *tree.GormStore {
	return &tree.GormStore{
		DB:          tx,
		Table:       "menu_items",
		IDCol:       "menu_item_id",
		ParentCol:   "menu_item_parent_id",
		PositionCol: "menu_item_display_order",
		CreatedCol:  "menu_item_created_at",
		DeletedCol:  "menu_item_deleted_at",
	}
}

// menuStoreAt narrows the store to one location so root-level siblings
// belong to the same menu.
func menuStoreAt(tx *gorm.DB, location string) *tree.GormStore {
	st := menuStore(tx)
	st.Scope = func(q *gorm.DB) *gorm.DB {
		return q.Where("menu_item_location = ?", location)
	}
	return st
}

func (s *Service) Create(ctx context.Context, req *dto.CreateMenuItemRequest, actor *uuid.UUID, prov logSvc.Provenance) (*model.MenuItemModel, error) {
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}

	m := req.ToModel()
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if m.MenuItemPageID != nil {
			var n int64
			if err := tx.Table("pages").
				Where("page_id = ? AND page_deleted_at IS NULL", *m.MenuItemPageID).
				Count(&n).Error; err != nil {
				return err
			}
			if n == 0 {
				return errs.NotFoundf("page %s", *m.MenuItemPageID)
			}
		}
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		if req.MenuItemParentID != nil {
			if err := s.sameLocation(tx, m.MenuItemID, *req.MenuItemParentID); err != nil {
				return err
			}
			return tree.Attach(ctx, menuStore(tx), m.MenuItemID, *req.MenuItemParentID, nil)
		}
		return tree.MoveToRoot(ctx, menuStore(tx), m.MenuItemID)
	})
	if err != nil {
		return nil, err
	}

	return m, s.Recorder.Record(ctx, actor, "menu_item.create", logModel.EntityMenuItem, &m.MenuItemID, m.MenuItemLabel, prov)
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateMenuItemRequest, actor *uuid.UUID, prov logSvc.Provenance) (*model.MenuItemModel, error) {
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}

	var m model.MenuItemModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m, "menu_item_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NotFoundf("menu item %s", id)
			}
			return err
		}
		req.Apply(&m)
		return tx.Save(&m).Error
	})
	if err != nil {
		return nil, err
	}

	return &m, s.Recorder.Record(ctx, actor, "menu_item.update", logModel.EntityMenuItem, &id, "", prov)
}

func (s *Service) AttachParent(ctx context.Context, id, parentID uuid.UUID, position *int, actor *uuid.UUID, prov logSvc.Provenance) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.sameLocation(tx, id, parentID); err != nil {
			return err
		}
		return tree.Attach(ctx, menuStore(tx), id, parentID, position)
	})
	if err != nil {
		return err
	}
	return s.Recorder.Record(ctx, actor, "menu_item.attach", logModel.EntityMenuItem, &id, "parent="+parentID.String(), prov)
}

// Reorder rewrites one item's submenu order. The root level spans every
// menu location, so top-level reordering goes through ReorderRoots.
func (s *Service) Reorder(ctx context.Context, parentID *uuid.UUID, orderedIDs []uuid.UUID, actor *uuid.UUID, prov logSvc.Provenance) error {
	if parentID == nil {
		return errs.InvalidOrderf("top-level menu order is per location; use ReorderRoots")
	}
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tree.Reorder(ctx, menuStore(tx), parentID, orderedIDs)
	})
	if err != nil {
		return err
	}
	return s.Recorder.Record(ctx, actor, "menu_item.reorder", logModel.EntityMenuItem, parentID, "", prov)
}

// ReorderRoots rewrites the top-level order of one menu location. The
// ordered set must match that location's roots exactly; roots of other
// locations are not part of the sibling set.
func (s *Service) ReorderRoots(ctx context.Context, location string, orderedIDs []uuid.UUID, actor *uuid.UUID, prov logSvc.Provenance) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tree.Reorder(ctx, menuStoreAt(tx, location), nil, orderedIDs)
	})
	if err != nil {
		return err
	}
	return s.Recorder.Record(ctx, actor, "menu_item.reorder", logModel.EntityMenuItem, nil, "roots "+location, prov)
}

// Delete cascades to the submenu.
func (s *Service) Delete(ctx context.Context, id uuid.UUID, actor *uuid.UUID, prov logSvc.Provenance) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tree.Detach(ctx, menuStore(tx), id, tree.PolicyCascade, nil)
	})
	if err != nil {
		return err
	}
	return s.Recorder.Record(ctx, actor, "menu_item.delete", logModel.EntityMenuItem, &id, "cascade", prov)
}

/* =========================================================
   QUERIES
========================================================= */

// RootsAt returns active top-level items of one location in order.
func (s *Service) RootsAt(ctx context.Context, location string) ([]model.MenuItemModel, error) {
	var out []model.MenuItemModel
	err := s.DB.WithContext(ctx).
		Where("menu_item_location = ? AND menu_item_parent_id IS NULL AND menu_item_is_active", location).
		Order("menu_item_display_order ASC, menu_item_created_at ASC").
		Find(&out).Error
	return out, err
}

func (s *Service) ChildrenOf(ctx context.Context, parentID uuid.UUID) ([]model.MenuItemModel, error) {
	var out []model.MenuItemModel
	err := s.DB.WithContext(ctx).
		Where("menu_item_parent_id = ?", parentID).
		Order("menu_item_display_order ASC, menu_item_created_at ASC").
		Find(&out).Error
	return out, err
}

func (s *Service) sameLocation(tx *gorm.DB, id, parentID uuid.UUID) error {
	var locs []string
	if err := tx.Table("menu_items").
		Where("menu_item_id IN ?", []uuid.UUID{id, parentID}).
		Where("menu_item_deleted_at IS NULL").
		Pluck("menu_item_location", &locs).Error; err != nil {
		return err
	}
	if len(locs) == 2 && locs[0] != locs[1] {
		return errLocationMismatch
	}
	return nil
}

var errLocationMismatch = errors.New("menu items live in different menu locations")
