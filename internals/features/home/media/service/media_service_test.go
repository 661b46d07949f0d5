// file: internals/features/home/media/service/media_service_test.go
package service

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	logSvc "nunchakuclub_backend/internals/features/activity/logs/service"
	model "nunchakuclub_backend/internals/features/home/media/model"
	"nunchakuclub_backend/internals/helpers/errs"
)

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
	return New(db, nil), mock
}

func mediaRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"media_id", "media_file_name", "media_mime_type"})
}

func TestRegisterRejectsEmptyFile(t *testing.T) {
	s := New(nil, nil)

	_, err := s.Register(context.Background(), &model.MediaModel{
		MediaFileName: "  ",
		MediaFilePath: "/uploads/x.png",
	}, nil, logSvc.Provenance{})
	assert.ErrorIs(t, err, errs.ErrGuardViolation)

	_, err = s.Register(context.Background(), &model.MediaModel{
		MediaFileName: "x.png",
	}, nil, logSvc.Provenance{})
	assert.ErrorIs(t, err, errs.ErrGuardViolation)
}

func TestByIDNotFound(t *testing.T) {
	s, mock := newMockService(t)

	mock.ExpectQuery(`SELECT .+ FROM "media" WHERE media_id = \$1`).
		WillReturnRows(mediaRows())

	_, err := s.ByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestLibraryFiltersByMimeFamily(t *testing.T) {
	s, mock := newMockService(t)
	id := uuid.New()

	mock.ExpectQuery(`SELECT .+ FROM "media" WHERE media_mime_type LIKE \$1 AND "media"\."media_deleted_at" IS NULL ORDER BY media_created_at DESC LIMIT \$2`).
		WithArgs("image/%", 10).
		WillReturnRows(mediaRows().AddRow(id.String(), "photo.jpg", "image/jpeg"))

	got, err := s.Library(context.Background(), "image", 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, id, got[0].MediaID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLibraryClampsLimit(t *testing.T) {
	s, mock := newMockService(t)

	mock.ExpectQuery(`SELECT .+ FROM "media" WHERE "media"\."media_deleted_at" IS NULL ORDER BY media_created_at DESC LIMIT \$1`).
		WithArgs(50).
		WillReturnRows(mediaRows())

	_, err := s.Library(context.Background(), "", -1)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
