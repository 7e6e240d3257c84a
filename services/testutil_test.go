package services_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/iyunseong/mental-n-fit-sub000/config"
	"github.com/iyunseong/mental-n-fit-sub000/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "healthlog.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB) uint {
	t.Helper()
	user := models.User{
		Email:    "tester@example.com",
		Password: "not-a-real-hash",
		Nickname: "tester",
	}
	require.NoError(t, db.Create(&user).Error)
	return user.ID
}

// day returns local midnight today shifted by offset days.
func day(offset int) time.Time {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	return start.AddDate(0, 0, offset)
}

func strPtr(s string) *string     { return &s }
func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }
