// file: internals/helpers/tree/gorm_store.go
package tree

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"nunchakuclub_backend/internals/helpers/errs"
)

/* =========================================================
   GORM-BACKED STORE

   One adapter serves every self-referential table; only the
   table/column names differ per entity. Bind it to the *gorm.DB
   of the surrounding transaction so the whole tree operation
   commits or rolls back as one.
========================================================= */

type GormStore struct {
	DB *gorm.DB

	Table       string
	IDCol       string
	ParentCol   string
	PositionCol string
	CreatedCol  string // sibling tiebreak
	DeletedCol  string // optional; "" = hard delete, no liveness filter

	// Scope optionally narrows every query, e.g. to one menu location
	// so root siblings do not span unrelated menus.
	Scope func(*gorm.DB) *gorm.DB
}

type nodeRow struct {
	ID       uuid.UUID  `gorm:"column:id"`
	ParentID *uuid.UUID `gorm:"column:parent_id"`
	Position int        `gorm:"column:position"`
}

func (g *GormStore) base(ctx context.Context) *gorm.DB {
	q := g.DB.WithContext(ctx).Table(g.Table)
	if g.DeletedCol != "" {
		q = q.Where(fmt.Sprintf("%s IS NULL", g.DeletedCol))
	}
	if g.Scope != nil {
		q = g.Scope(q)
	}
	return q
}

func (g *GormStore) selectCols() string {
	return fmt.Sprintf("%s AS id, %s AS parent_id, %s AS position",
		g.IDCol, g.ParentCol, g.PositionCol)
}

func (g *GormStore) Node(ctx context.Context, id uuid.UUID) (Node, error) {
	var r nodeRow
	err := g.base(ctx).
		Select(g.selectCols()).
		Where(fmt.Sprintf("%s = ?", g.IDCol), id).
		Take(&r).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Node{}, errs.NotFoundf("%s %s", g.Table, id)
	}
	if err != nil {
		return Node{}, err
	}
	return Node{ID: r.ID, ParentID: r.ParentID, Position: r.Position}, nil
}

func (g *GormStore) Children(ctx context.Context, parentID *uuid.UUID) ([]Node, error) {
	q := g.base(ctx).Select(g.selectCols())
	if parentID == nil {
		q = q.Where(fmt.Sprintf("%s IS NULL", g.ParentCol))
	} else {
		q = q.Where(fmt.Sprintf("%s = ?", g.ParentCol), *parentID)
	}
	var rows []nodeRow
	if err := q.Order(fmt.Sprintf("%s ASC, %s ASC", g.PositionCol, g.CreatedCol)).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]Node, 0, len(rows))
	for _, r := range rows {
		out = append(out, Node{ID: r.ID, ParentID: r.ParentID, Position: r.Position})
	}
	return out, nil
}

func (g *GormStore) SetParent(ctx context.Context, id uuid.UUID, parentID *uuid.UUID, position int) error {
	return g.base(ctx).
		Where(fmt.Sprintf("%s = ?", g.IDCol), id).
		Updates(map[string]interface{}{
			g.ParentCol:   parentID,
			g.PositionCol: position,
		}).Error
}

func (g *GormStore) SetPosition(ctx context.Context, id uuid.UUID, position int) error {
	return g.base(ctx).
		Where(fmt.Sprintf("%s = ?", g.IDCol), id).
		Update(g.PositionCol, position).Error
}

func (g *GormStore) Delete(ctx context.Context, id uuid.UUID) error {
	if g.DeletedCol != "" {
		return g.base(ctx).
			Where(fmt.Sprintf("%s = ?", g.IDCol), id).
			Update(g.DeletedCol, time.Now()).Error
	}
	return g.DB.WithContext(ctx).
		Exec(fmt.Sprintf("DELETE FROM %s WHERE %s = ?", g.Table, g.IDCol), id).Error
}
