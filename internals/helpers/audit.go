package helper

import (
	"time"

	"github.com/google/uuid"
)

/* =========================================================
   AUDIT STAMP

   Auditable records carry who created / last updated them.
   The acting user may be nil (system-initiated change).
   created_at / updated_at themselves ride on GORM
   autoCreateTime / autoUpdateTime.
========================================================= */

type Auditable interface {
	SetCreatedBy(actor *uuid.UUID)
	SetUpdatedBy(actor *uuid.UUID, at time.Time)
}

// Stamp writes provenance onto rec before it is persisted.
// Creation fields are only touched when isCreate is true; the
// modification side is refreshed on every call.
func Stamp(rec Auditable, actor *uuid.UUID, isCreate bool) {
	if isCreate {
		rec.SetCreatedBy(actor)
	}
	rec.SetUpdatedBy(actor, time.Now().UTC())
}
