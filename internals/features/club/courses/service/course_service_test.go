// file: internals/features/club/courses/service/course_service_test.go
package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	logSvc "nunchakuclub_backend/internals/features/activity/logs/service"
	model "nunchakuclub_backend/internals/features/club/courses/model"
	"nunchakuclub_backend/internals/helpers/errs"
)

func TestEnrollmentEdges(t *testing.T) {
	assert.NoError(t, machine.Step(model.EnrollmentStatusPending, model.EnrollmentStatusApproved))
	assert.NoError(t, machine.Step(model.EnrollmentStatusPending, model.EnrollmentStatusRejected))
	assert.NoError(t, machine.Step(model.EnrollmentStatusApproved, model.EnrollmentStatusCompleted))
}

func TestNoRouteBackToPending(t *testing.T) {
	for _, from := range []model.EnrollmentStatus{
		model.EnrollmentStatusApproved,
		model.EnrollmentStatusRejected,
		model.EnrollmentStatusCompleted,
	} {
		err := machine.Step(from, model.EnrollmentStatusPending)
		assert.ErrorIs(t, err, errs.ErrIllegalTransition, "from %q", from)
	}
}

func TestTerminalStates(t *testing.T) {
	// rejected and completed have no outgoing edges at all
	for _, from := range []model.EnrollmentStatus{
		model.EnrollmentStatusRejected,
		model.EnrollmentStatusCompleted,
	} {
		for _, to := range []model.EnrollmentStatus{
			model.EnrollmentStatusPending,
			model.EnrollmentStatusApproved,
			model.EnrollmentStatusRejected,
			model.EnrollmentStatusCompleted,
		} {
			assert.ErrorIs(t, machine.Step(from, to), errs.ErrIllegalTransition, "%s -> %s", from, to)
		}
	}
}

func TestActorRequiredOnlyForDecisions(t *testing.T) {
	assert.True(t, requiresActor(model.EnrollmentStatusApproved))
	assert.True(t, requiresActor(model.EnrollmentStatusRejected))
	assert.False(t, requiresActor(model.EnrollmentStatusCompleted), "completion may be system-driven")
	assert.False(t, requiresActor(model.EnrollmentStatusPending))
}

func TestTransitionNilActorRejectedBeforeStorage(t *testing.T) {
	s := New(nil, nil, nil) // the guard must fire before any DB access

	for _, target := range []model.EnrollmentStatus{
		model.EnrollmentStatusApproved,
		model.EnrollmentStatusRejected,
	} {
		_, err := s.Transition(context.Background(), uuid.New(), target, nil, nil, logSvc.Provenance{})
		assert.ErrorIs(t, err, errs.ErrGuardViolation, "target %q", target)
	}
}

func TestCourseLevelEnum(t *testing.T) {
	for _, l := range []model.CourseLevel{
		model.CourseLevelBeginner,
		model.CourseLevelIntermediate,
		model.CourseLevelAdvanced,
		model.CourseLevelProfessional,
	} {
		assert.True(t, l.Valid(), "level %q", l)
	}
	assert.False(t, model.CourseLevel("ninja").Valid())
}
