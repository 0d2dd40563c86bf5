package repositories_test

import (
	"path/filepath"
	"testing"

	"nc-news-api/config"
	seed "nc-news-api/db"

	"gorm.io/gorm"
)

// newTestDB opens a fresh sqlite database under t.TempDir and loads the
// fixture data.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "nc_news_test.db"))

	gdb := config.InitDB()
	if err := seed.Seed(gdb); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return gdb
}
