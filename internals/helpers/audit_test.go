// file: internals/helpers/audit_test.go
package helper

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type auditRec struct {
	createdBy *uuid.UUID
	updatedBy *uuid.UUID
	updatedAt time.Time
}

func (r *auditRec) SetCreatedBy(actor *uuid.UUID) { r.createdBy = actor }
func (r *auditRec) SetUpdatedBy(actor *uuid.UUID, at time.Time) {
	r.updatedBy = actor
	r.updatedAt = at
}

func TestStampOnCreate(t *testing.T) {
	actor := uuid.New()
	rec := &auditRec{}

	Stamp(rec, &actor, true)

	require.NotNil(t, rec.createdBy)
	assert.Equal(t, actor, *rec.createdBy)
	require.NotNil(t, rec.updatedBy)
	assert.Equal(t, actor, *rec.updatedBy)
	assert.False(t, rec.updatedAt.IsZero())
}

func TestStampOnUpdateLeavesCreatorAlone(t *testing.T) {
	creator := uuid.New()
	editor := uuid.New()
	rec := &auditRec{createdBy: &creator}

	Stamp(rec, &editor, false)

	assert.Equal(t, creator, *rec.createdBy, "creator is written once")
	require.NotNil(t, rec.updatedBy)
	assert.Equal(t, editor, *rec.updatedBy)
}

func TestStampSystemActor(t *testing.T) {
	rec := &auditRec{}

	Stamp(rec, nil, true)

	assert.Nil(t, rec.createdBy)
	assert.Nil(t, rec.updatedBy)
	assert.False(t, rec.updatedAt.IsZero(), "timestamp moves even for system changes")
}
