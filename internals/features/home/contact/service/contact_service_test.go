// file: internals/features/home/contact/service/contact_service_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	model "nunchakuclub_backend/internals/features/home/contact/model"
	"nunchakuclub_backend/internals/helpers/errs"
)

func TestInboxEdges(t *testing.T) {
	assert.NoError(t, machine.Step(model.ContactStatusNew, model.ContactStatusRead))
	assert.NoError(t, machine.Step(model.ContactStatusRead, model.ContactStatusReplied))
}

func TestArchiveFromAnywhere(t *testing.T) {
	for _, from := range []model.ContactStatus{
		model.ContactStatusNew,
		model.ContactStatusRead,
		model.ContactStatusReplied,
	} {
		assert.NoError(t, machine.Step(from, model.ContactStatusArchived), "from %q", from)
	}
}

func TestArchivedStaysArchived(t *testing.T) {
	for _, to := range []model.ContactStatus{
		model.ContactStatusNew,
		model.ContactStatusRead,
		model.ContactStatusReplied,
		model.ContactStatusArchived,
	} {
		err := machine.Step(model.ContactStatusArchived, to)
		assert.ErrorIs(t, err, errs.ErrIllegalTransition, "archived -> %s", to)
	}
}

func TestNoSkippingRead(t *testing.T) {
	assert.ErrorIs(t, machine.Step(model.ContactStatusNew, model.ContactStatusReplied), errs.ErrIllegalTransition)
	assert.ErrorIs(t, machine.Step(model.ContactStatusReplied, model.ContactStatusRead), errs.ErrIllegalTransition)
}
