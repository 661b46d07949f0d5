// file: internals/features/home/comments/service/comment_service_test.go
package service

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	model "nunchakuclub_backend/internals/features/home/comments/model"
	"nunchakuclub_backend/internals/helpers/errs"
)

func TestModerationEdges(t *testing.T) {
	assert.NoError(t, machine.Step(model.CommentStatusPending, model.CommentStatusApproved))
	assert.NoError(t, machine.Step(model.CommentStatusPending, model.CommentStatusSpam))
	assert.NoError(t, machine.Step(model.CommentStatusTrash, model.CommentStatusPending))
}

func TestTrashReachableFromAnywhere(t *testing.T) {
	for _, from := range []model.CommentStatus{
		model.CommentStatusPending,
		model.CommentStatusApproved,
		model.CommentStatusSpam,
	} {
		assert.NoError(t, machine.Step(from, model.CommentStatusTrash), "from %q", from)
	}
}

func TestModerationIllegalEdges(t *testing.T) {
	cases := []struct{ from, to model.CommentStatus }{
		{model.CommentStatusApproved, model.CommentStatusPending},
		{model.CommentStatusSpam, model.CommentStatusApproved},
		{model.CommentStatusSpam, model.CommentStatusPending},
		{model.CommentStatusTrash, model.CommentStatusApproved},
		{model.CommentStatusTrash, model.CommentStatusTrash},
	}
	for _, c := range cases {
		assert.ErrorIs(t, machine.Step(c.from, c.to), errs.ErrIllegalTransition, "%s -> %s", c.from, c.to)
	}
}

func TestOnlyApprovedCounts(t *testing.T) {
	assert.True(t, model.CommentStatusApproved.Counted())
	for _, s := range []model.CommentStatus{
		model.CommentStatusPending,
		model.CommentStatusSpam,
		model.CommentStatusTrash,
	} {
		assert.False(t, s.Counted(), "status %q", s)
	}
}

/* =========================================================
   COUNTER CLAMP (sqlmock)
========================================================= */

func newMockService(t *testing.T) (*Service, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return New(db, nil, zap.NewNop().Sugar()), mock
}

func TestBumpPostCounterIncrement(t *testing.T) {
	s, mock := newMockService(t)
	postID := uuid.New()

	mock.ExpectExec(`UPDATE "posts" SET "post_comment_count"=post_comment_count \+ \$1 WHERE post_id = \$2`).
		WithArgs(1, postID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.bumpPostCounter(s.DB, postID, +1))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBumpPostCounterDecrement(t *testing.T) {
	s, mock := newMockService(t)
	postID := uuid.New()

	mock.ExpectQuery(`SELECT "post_comment_count" FROM "posts" WHERE post_id = \$1`).
		WithArgs(postID).
		WillReturnRows(sqlmock.NewRows([]string{"post_comment_count"}).AddRow(2))
	mock.ExpectExec(`UPDATE "posts" SET "post_comment_count"=post_comment_count \+ \$1 WHERE post_id = \$2`).
		WithArgs(-1, postID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.bumpPostCounter(s.DB, postID, -1))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBumpPostCounterClampsAtZero(t *testing.T) {
	s, mock := newMockService(t)
	postID := uuid.New()

	// counter already at zero: the decrement is swallowed, no UPDATE runs
	mock.ExpectQuery(`SELECT "post_comment_count" FROM "posts" WHERE post_id = \$1`).
		WithArgs(postID).
		WillReturnRows(sqlmock.NewRows([]string{"post_comment_count"}).AddRow(0))

	require.NoError(t, s.bumpPostCounter(s.DB, postID, -1))
	assert.NoError(t, mock.ExpectationsWereMet())
}
