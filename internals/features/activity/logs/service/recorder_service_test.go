// file: internals/features/activity/logs/service/recorder_service_test.go
package service

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	logModel "nunchakuclub_backend/internals/features/activity/logs/model"
	"nunchakuclub_backend/internals/helpers/errs"
)

func newMockGorm(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
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
	return db, mock
}

func TestRecordInsertsEntry(t *testing.T) {
	db, mock := newMockGorm(t)
	rec := NewRecorder(db, zap.NewNop().Sugar())

	actor := uuid.New()
	entityID := uuid.New()
	ip := "203.0.113.7"

	mock.ExpectQuery(`INSERT INTO "activity_logs"`).
		WillReturnRows(sqlmock.NewRows([]string{"activity_log_id"}).AddRow(uuid.New().String()))

	err := rec.Record(context.Background(), &actor, "post.transition",
		logModel.EntityPost, &entityID, "draft -> published",
		Provenance{IPAddress: &ip})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordFailureIsLogUnavailable(t *testing.T) {
	db, mock := newMockGorm(t)
	rec := NewRecorder(db, zap.NewNop().Sugar())

	mock.ExpectQuery(`INSERT INTO "activity_logs"`).
		WillReturnError(errors.New("connection refused"))

	id := uuid.New()
	err := rec.Record(context.Background(), nil, "comment.create",
		logModel.EntityComment, &id, "", Provenance{})
	assert.ErrorIs(t, err, errs.ErrLogUnavailable)
}

func TestRecordRejectsUnknownEntityKind(t *testing.T) {
	db, _ := newMockGorm(t)
	rec := NewRecorder(db, zap.NewNop().Sugar())

	err := rec.Record(context.Background(), nil, "x.create",
		logModel.EntityKind("spaceship"), nil, "", Provenance{})
	assert.ErrorIs(t, err, errs.ErrLogUnavailable)
}

func TestEntriesForFiltersAndOrders(t *testing.T) {
	db, mock := newMockGorm(t)
	rec := NewRecorder(db, zap.NewNop().Sugar())

	entityID := uuid.New()
	mock.ExpectQuery(`SELECT .+ FROM "activity_logs" WHERE activity_log_entity_type = \$1 AND activity_log_entity_id = \$2 ORDER BY activity_log_created_at DESC LIMIT \$3`).
		WithArgs(logModel.EntityPost, entityID, 50).
		WillReturnRows(sqlmock.NewRows([]string{"activity_log_id", "activity_log_action"}).
			AddRow(uuid.New().String(), "post.update").
			AddRow(uuid.New().String(), "post.create"))

	out, err := rec.EntriesFor(context.Background(), logModel.EntityPost, entityID, 0)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "post.update", out[0].ActivityLogAction)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEntriesByActorClampsLimit(t *testing.T) {
	db, mock := newMockGorm(t)
	rec := NewRecorder(db, zap.NewNop().Sugar())

	userID := uuid.New()
	mock.ExpectQuery(`SELECT .+ FROM "activity_logs" WHERE activity_log_user_id = \$1 ORDER BY activity_log_created_at DESC LIMIT \$2`).
		WithArgs(userID, 50).
		WillReturnRows(sqlmock.NewRows([]string{"activity_log_id"}))

	_, err := rec.EntriesByActor(context.Background(), userID, 9999)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
