// file: internals/features/users/users/model/user_model_test.go
package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordRoundTrip(t *testing.T) {
	u := &UserModel{}
	require.NoError(t, u.SetPassword("hunter2-but-longer"))

	assert.NotEqual(t, "hunter2-but-longer", u.UserPasswordHash, "never stored in the clear")
	assert.True(t, u.CheckPassword("hunter2-but-longer"))
	assert.False(t, u.CheckPassword("wrong"))
}

func TestUserEnums(t *testing.T) {
	for _, r := range []UserRole{UserRoleAdmin, UserRoleEditor, UserRoleCoach, UserRoleMember} {
		assert.True(t, r.Valid(), "role %q", r)
	}
	assert.False(t, UserRole("superuser").Valid())

	for _, s := range []UserStatus{UserStatusActive, UserStatusInactive, UserStatusSuspended} {
		assert.True(t, s.Valid(), "status %q", s)
	}
	assert.False(t, UserStatus("banned").Valid())
}

func TestAuditSetters(t *testing.T) {
	actor := uuid.New()
	now := time.Now().UTC()
	u := &UserModel{}

	u.SetCreatedBy(&actor)
	u.SetUpdatedBy(&actor, now)
	u.TouchLastLogin(now)

	require.NotNil(t, u.UserCreatedBy)
	assert.Equal(t, actor, *u.UserCreatedBy)
	require.NotNil(t, u.UserLastLoginAt)
	assert.Equal(t, now, *u.UserLastLoginAt)
}
