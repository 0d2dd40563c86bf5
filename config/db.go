package config

import (
	"fmt"
	"log"
	"os"

	"nc-news-api/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// InitDB opens the configured database and migrates the schema. Postgres is
// used when DATABASE_URL or the PG* variables are set; otherwise a local
// sqlite file keeps development and tests self-contained.
func InitDB() *gorm.DB {
	var dialector gorm.Dialector

	if dsn := postgresDSN(); dsn != "" && os.Getenv("DB_DRIVER") != "sqlite" {
		dialector = postgres.Open(dsn)
	} else {
		path := os.Getenv("DB_PATH")
		if path == "" {
			path = "nc_news.db"
		}
		dialector = sqlite.Dialector{
			DriverName: "sqlite",
			DSN:        path + "?_pragma=foreign_keys(1)",
		}
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := db.AutoMigrate(
		&models.Topic{},
		&models.User{},
		&models.Article{},
		&models.Comment{},
	); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	return db
}

func postgresDSN() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	if os.Getenv("DB_HOST") == "" {
		return ""
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		getenv("DB_PORT", "5432"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
	)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
