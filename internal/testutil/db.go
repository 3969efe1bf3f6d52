// Package testutil provides shared database helpers for tests.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/ousidus/braintrain/internal/model"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// OpenTestDB opens a throwaway sqlite database with the full schema
// migrated. The file lives in t.TempDir(), so cleanup is automatic.
func OpenTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.StroopColor{},
		&model.MathProblem{},
		&model.WordList{},
		&model.ReadingPassage{},
		&model.ExerciseType{},
		&model.TrainingSession{},
		&model.ExerciseResult{},
	))
	return db
}
