// file: internals/features/home/menus/service/menu_item_service_test.go
package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	logSvc "nunchakuclub_backend/internals/features/activity/logs/service"
	"nunchakuclub_backend/internals/helpers/errs"
)

func TestReorderRejectsNilParent(t *testing.T) {
	// nil DB: the guard must fire before any storage access
	s := New(nil, nil)
	err := s.Reorder(context.Background(), nil, []uuid.UUID{uuid.New()}, nil, logSvc.Provenance{})
	assert.ErrorIs(t, err, errs.ErrInvalidOrder)
}

func TestMenuStoreAtScopesByLocation(t *testing.T) {
	st := menuStoreAt(nil, "header")
	assert.NotNil(t, st.Scope)
	assert.Equal(t, "menu_items", st.Table)
	assert.Nil(t, menuStore(nil).Scope)
}
