// file: internals/features/home/posts/service/post_service_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	model "nunchakuclub_backend/internals/features/home/posts/model"
	"nunchakuclub_backend/internals/helpers/errs"
)

func TestPostLifecycleEdges(t *testing.T) {
	assert.NoError(t, machine.Step(model.PostStatusDraft, model.PostStatusPublished))
	assert.NoError(t, machine.Step(model.PostStatusPublished, model.PostStatusArchived))
	assert.NoError(t, machine.Step(model.PostStatusArchived, model.PostStatusDraft))
}

func TestPostIllegalEdges(t *testing.T) {
	cases := []struct{ from, to model.PostStatus }{
		{model.PostStatusPublished, model.PostStatusDraft},
		{model.PostStatusDraft, model.PostStatusArchived},
		{model.PostStatusArchived, model.PostStatusPublished},
		{model.PostStatusDraft, model.PostStatusDraft},
	}
	for _, c := range cases {
		err := machine.Step(c.from, c.to)
		assert.ErrorIs(t, err, errs.ErrIllegalTransition, "%s -> %s", c.from, c.to)
	}
}

func TestPublishGuardChecksContent(t *testing.T) {
	m := &model.PostModel{PostTitle: "Ready", PostSlug: "ready", PostContent: "body"}
	assert.NoError(t, publishGuard(m))

	for _, broken := range []*model.PostModel{
		{PostSlug: "x", PostContent: "y"},
		{PostTitle: "x", PostContent: "y"},
		{PostTitle: "x", PostSlug: "y"},
	} {
		assert.ErrorIs(t, publishGuard(broken), errs.ErrGuardViolation)
	}
}
