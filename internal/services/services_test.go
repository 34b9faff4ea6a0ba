package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/coachdesk/coachdesk-backend/internal/database"
	"github.com/coachdesk/coachdesk-backend/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a migrated in-memory SQLite database. Each test gets its
// own named shared-cache database so GORM's connection pool sees one store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func seedAthlete(t *testing.T, db *gorm.DB, first, last string) *models.Athlete {
	t.Helper()
	athlete := models.Athlete{FirstName: first, LastName: last}
	require.NoError(t, db.Create(&athlete).Error)
	return &athlete
}

func datePtr(year int, month time.Month, day int) *models.Date {
	d := models.NewDate(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
	return &d
}

func floatPtr(f float64) *float64 { return &f }

func strPtr(s string) *string { return &s }
