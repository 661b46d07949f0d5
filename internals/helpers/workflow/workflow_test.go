// file: internals/helpers/workflow/workflow_test.go
package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"nunchakuclub_backend/internals/helpers/errs"
)

type status string

const (
	pending   status = "pending"
	approved  status = "approved"
	rejected  status = "rejected"
	completed status = "completed"
	trash     status = "trash"
)

func testMachine() *Machine[status] {
	return New("enrollment",
		[]Edge[status]{
			{From: pending, To: approved},
			{From: pending, To: rejected},
			{From: approved, To: completed},
		},
	)
}

func TestAllowedDeclaredEdges(t *testing.T) {
	m := testMachine()

	assert.True(t, m.Allowed(pending, approved))
	assert.True(t, m.Allowed(pending, rejected))
	assert.True(t, m.Allowed(approved, completed))
}

func TestAllowedRejectsUndeclaredEdges(t *testing.T) {
	m := testMachine()

	assert.False(t, m.Allowed(approved, pending), "no route back to pending")
	assert.False(t, m.Allowed(rejected, approved), "rejected is terminal")
	assert.False(t, m.Allowed(completed, pending))
	assert.False(t, m.Allowed(pending, completed), "must pass through approved")
}

func TestSelfTransitionNeverAllowed(t *testing.T) {
	m := New("bin", []Edge[status]{{From: pending, To: pending}}, trash)

	assert.False(t, m.Allowed(pending, pending), "even a declared self-edge is refused")
	assert.False(t, m.Allowed(trash, trash), "fromAny does not permit staying put")
}

func TestFromAnyTargets(t *testing.T) {
	m := New("inbox",
		[]Edge[status]{{From: pending, To: approved}},
		trash,
	)

	assert.True(t, m.Allowed(pending, trash))
	assert.True(t, m.Allowed(approved, trash))
	assert.True(t, m.Allowed(completed, trash), "archive works from states with no other edges")
}

func TestStepErrorCarriesEntityAndEdge(t *testing.T) {
	m := testMachine()

	err := m.Step(rejected, approved)
	assert.ErrorIs(t, err, errs.ErrIllegalTransition)
	assert.Contains(t, err.Error(), "enrollment")
	assert.Contains(t, err.Error(), "rejected -> approved")

	assert.NoError(t, m.Step(pending, approved))
}

func TestDetail(t *testing.T) {
	m := testMachine()
	assert.Equal(t, "pending -> approved", m.Detail(pending, approved))
}
