package repository

import (
	"context"
	"errors"
	"specialdays-backend/cmd/specialdays/model"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock database: %v", err)
	}

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})

	if err != nil {
		t.Fatalf("Failed to create GORM instance: %v", err)
	}

	return gormDB, mock
}

func eventColumns() []string {
	return []string{"id", "owner_id", "title", "date", "type", "note", "create_date", "update_date"}
}

func TestEventRepo_ListEvents_Success(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	defer func() {
		sqlDB, _ := gormDB.DB()
		sqlDB.Close()
	}()

	repo := NewEventRepo(gormDB)

	expectedTime := time.Now()

	rows := sqlmock.NewRows(eventColumns()).
		AddRow("event-1", "owner-1", "Mom's birthday", "2026-01-08", "birthday", "flowers", expectedTime, expectedTime).
		AddRow("event-2", "owner-1", "Anniversary", "2026-06-15", "anniversary", "", expectedTime, expectedTime)

	mock.ExpectQuery(`SELECT \* FROM "events" WHERE owner_id = \$1`).
		WithArgs("owner-1").
		WillReturnRows(rows)

	ctx := context.Background()
	events, err := repo.ListEvents(ctx, "owner-1")

	assert.NoError(t, err)
	assert.Len(t, events, 2)
	assert.Equal(t, "event-1", events[0].ID)
	assert.Equal(t, "owner-1", events[0].OwnerID)
	assert.Equal(t, model.Birthday, events[0].Type)
	assert.Equal(t, "event-2", events[1].ID)
	assert.Equal(t, model.Anniversary, events[1].Type)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepo_ListEvents_EmptyResult(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	defer func() {
		sqlDB, _ := gormDB.DB()
		sqlDB.Close()
	}()

	repo := NewEventRepo(gormDB)

	mock.ExpectQuery(`SELECT \* FROM "events" WHERE owner_id = \$1`).
		WithArgs("owner-1").
		WillReturnRows(sqlmock.NewRows(eventColumns()))

	ctx := context.Background()
	events, err := repo.ListEvents(ctx, "owner-1")

	assert.NoError(t, err)
	assert.Empty(t, events)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepo_ListEvents_DatabaseError(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	defer func() {
		sqlDB, _ := gormDB.DB()
		sqlDB.Close()
	}()

	repo := NewEventRepo(gormDB)

	mock.ExpectQuery(`SELECT \* FROM "events" WHERE owner_id = \$1`).
		WithArgs("owner-1").
		WillReturnError(errors.New("database connection failed"))

	ctx := context.Background()
	events, err := repo.ListEvents(ctx, "owner-1")

	assert.Error(t, err)
	assert.Nil(t, events)
	assert.Contains(t, err.Error(), "database connection failed")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepo_CreateEvent_Success(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	defer func() {
		sqlDB, _ := gormDB.DB()
		sqlDB.Close()
	}()

	repo := NewEventRepo(gormDB)

	event := model.Event{
		ID:         "event-123",
		OwnerID:    "owner-1",
		Title:      "Mom's birthday",
		Date:       "2026-01-08",
		Type:       model.Birthday,
		Note:       "flowers",
		CreateDate: time.Now(),
		UpdateDate: time.Now(),
	}

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "events"`).
		WithArgs(event.ID, event.OwnerID, event.Title, event.Date, event.Type, event.Note, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	ctx := context.Background()
	err := repo.CreateEvent(ctx, event)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepo_CreateEvent_DatabaseError(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	defer func() {
		sqlDB, _ := gormDB.DB()
		sqlDB.Close()
	}()

	repo := NewEventRepo(gormDB)

	event := model.Event{
		ID:      "event-123",
		OwnerID: "owner-1",
		Title:   "Mom's birthday",
		Date:    "2026-01-08",
		Type:    model.Birthday,
	}

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "events"`).
		WillReturnError(errors.New("database insert failed"))
	mock.ExpectRollback()

	ctx := context.Background()
	err := repo.CreateEvent(ctx, event)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database insert failed")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepo_UpdateEvent_Success(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	defer func() {
		sqlDB, _ := gormDB.DB()
		sqlDB.Close()
	}()

	repo := NewEventRepo(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "events" SET`).
		WithArgs("2026-01-09", "updated note", "Updated title", model.Other, sqlmock.AnyArg(), "event-123", "owner-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	ctx := context.Background()
	err := repo.UpdateEvent(ctx, "owner-1", "event-123", map[string]any{
		"title": "Updated title",
		"date":  "2026-01-09",
		"type":  model.Other,
		"note":  "updated note",
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepo_UpdateEvent_NotFound(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	defer func() {
		sqlDB, _ := gormDB.DB()
		sqlDB.Close()
	}()

	repo := NewEventRepo(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "events" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	ctx := context.Background()
	err := repo.UpdateEvent(ctx, "owner-1", "missing-id", map[string]any{
		"title": "Updated title",
		"date":  "2026-01-09",
		"type":  model.Other,
		"note":  "",
	})

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepo_DeleteEvent_Success(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	defer func() {
		sqlDB, _ := gormDB.DB()
		sqlDB.Close()
	}()

	repo := NewEventRepo(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "events"`).
		WithArgs("owner-1", "event-123").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	ctx := context.Background()
	err := repo.DeleteEvent(ctx, "owner-1", "event-123")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepo_DeleteEvent_NotFound(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	defer func() {
		sqlDB, _ := gormDB.DB()
		sqlDB.Close()
	}()

	repo := NewEventRepo(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "events"`).
		WithArgs("owner-2", "event-123").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	ctx := context.Background()
	err := repo.DeleteEvent(ctx, "owner-2", "event-123")

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
