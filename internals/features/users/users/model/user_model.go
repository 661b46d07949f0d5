// file: internals/features/users/users/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

/* =========================================================
   ENUMS: UserRole, UserStatus
========================================================= */

type UserRole string

const (
	UserRoleAdmin  UserRole = "admin"
	UserRoleEditor UserRole = "editor"
	UserRoleCoach  UserRole = "coach"
	UserRoleMember UserRole = "member"
)

func (r UserRole) Valid() bool {
	switch r {
	case UserRoleAdmin, UserRoleEditor, UserRoleCoach, UserRoleMember:
		return true
	default:
		return false
	}
}

type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusInactive  UserStatus = "inactive"
	UserStatusSuspended UserStatus = "suspended"
)

func (s UserStatus) Valid() bool {
	switch s {
	case UserStatusActive, UserStatusInactive, UserStatusSuspended:
		return true
	default:
		return false
	}
}

/* =========================================================
   MODEL: users
========================================================= */

type UserModel struct {
	UserID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:user_id" json:"user_id"`

	UserEmail    string `gorm:"type:varchar(255);not null;uniqueIndex;column:user_email" json:"user_email"`
	UserUsername string `gorm:"type:varchar(100);not null;uniqueIndex;column:user_username" json:"user_username"`

	// Hash only; hashing itself lives on SetPassword
	UserPasswordHash string `gorm:"type:varchar(255);not null;column:user_password_hash" json:"-"`

	UserFullName  string  `gorm:"type:varchar(255);not null;column:user_full_name" json:"user_full_name"`
	UserPhone     *string `gorm:"type:varchar(30);column:user_phone" json:"user_phone,omitempty"`
	UserAvatarURL *string `gorm:"type:text;column:user_avatar_url" json:"user_avatar_url,omitempty"`

	UserRole   UserRole   `gorm:"type:varchar(16);not null;default:'member';column:user_role" json:"user_role"`
	UserStatus UserStatus `gorm:"type:varchar(16);not null;default:'active';column:user_status" json:"user_status"`

	UserEmailVerified bool       `gorm:"not null;default:false;column:user_email_verified" json:"user_email_verified"`
	UserLastLoginAt   *time.Time `gorm:"type:timestamptz;column:user_last_login_at" json:"user_last_login_at,omitempty"`

	// Audit
	UserCreatedBy *uuid.UUID     `gorm:"type:uuid;column:user_created_by" json:"user_created_by,omitempty"`
	UserUpdatedBy *uuid.UUID     `gorm:"type:uuid;column:user_updated_by" json:"user_updated_by,omitempty"`
	UserCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:user_created_at" json:"user_created_at"`
	UserUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:user_updated_at" json:"user_updated_at"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"user_deleted_at,omitempty"`
}

func (UserModel) TableName() string { return "users" }

func (u *UserModel) SetCreatedBy(actor *uuid.UUID) { u.UserCreatedBy = actor }
func (u *UserModel) SetUpdatedBy(actor *uuid.UUID, at time.Time) {
	u.UserUpdatedBy = actor
	u.UserUpdatedAt = at
}

// SetPassword stores a bcrypt hash of the plain password.
func (u *UserModel) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.UserPasswordHash = string(hash)
	return nil
}

// CheckPassword reports whether plain matches the stored hash.
func (u *UserModel) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.UserPasswordHash), []byte(plain)) == nil
}

// TouchLastLogin stamps a successful login.
func (u *UserModel) TouchLastLogin(at time.Time) { u.UserLastLoginAt = &at }
