package user

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"socialchat/internal/common"
)

func setupTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
	}

	return gormDB, mock, cleanup
}

func profileRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"user_id", "handle", "display_name", "avatar", "location", "status"})
}

func TestUserRepository_ProfileByID(t *testing.T) {
	gormDB, mock, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewUserRepository(gormDB)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `users`")).
		WillReturnRows(profileRows().AddRow(42, "alice", "Alice", "/media/av1", "Paris", "active"))

	profile, err := repo.ProfileByID(context.Background(), 42)
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, uint64(42), profile.UserID)
	assert.Equal(t, "alice", profile.Username)
	assert.Equal(t, "Alice", profile.DisplayName)
	assert.Equal(t, "Paris", profile.Location)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_ProfileByID_NotFound(t *testing.T) {
	gormDB, mock, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewUserRepository(gormDB)

	mock.ExpectQuery("SELECT").
		WillReturnRows(profileRows())

	profile, err := repo.ProfileByID(context.Background(), 99)
	assert.NoError(t, err)
	assert.Nil(t, profile)
}

func TestUserRepository_ProfilesByIDs(t *testing.T) {
	gormDB, mock, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewUserRepository(gormDB)

	mock.ExpectQuery("SELECT").
		WithArgs(uint64(1), uint64(2), "active").
		WillReturnRows(profileRows().
			AddRow(1, "alice", "Alice", "", "", "active").
			AddRow(2, "bob", "Bob", "", "", "active"))

	profiles, err := repo.ProfilesByIDs(context.Background(), []uint64{1, 2})
	require.NoError(t, err)
	require.Len(t, profiles, 2)
	assert.Equal(t, "alice", profiles[0].Username)
	assert.Equal(t, "bob", profiles[1].Username)
}

func TestUserRepository_ProfilesByIDs_Empty(t *testing.T) {
	gormDB, _, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewUserRepository(gormDB)

	profiles, err := repo.ProfilesByIDs(context.Background(), nil)
	assert.NoError(t, err)
	assert.Nil(t, profiles)
}

func TestUserRepository_ProfilesByIDs_StoreError(t *testing.T) {
	gormDB, mock, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewUserRepository(gormDB)

	mock.ExpectQuery("SELECT").WillReturnError(assert.AnError)

	_, err := repo.ProfilesByIDs(context.Background(), []uint64{1})
	require.Error(t, err)
	assert.Equal(t, common.KindStoreUnavailable, common.KindOf(err))
}
