package infra

import (
	"os"
	"path/filepath"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"travelwise/internal/models/db_models"
	"travelwise/pkg/logger"
)

// UserDB and ChatDB wrap the two stores so the DI container can tell them
// apart: user accounts and chat history live in separate databases, exactly
// as the app keeps users.db and chathistory.db side by side.
type UserDB struct{ *gorm.DB }
type ChatDB struct{ *gorm.DB }

func InitUserDB() UserDB {
	return UserDB{openStore("users.db", &db_models.User{})}
}

func InitChatDB() ChatDB {
	return ChatDB{openStore("chathistory.db", &db_models.Conversation{})}
}

// openStore connects to Postgres when POSTGRES_URL is set, otherwise to a
// local SQLite file, and auto-creates the schema on first access.
func openStore(sqliteFile string, models ...interface{}) *gorm.DB {
	var (
		db  *gorm.DB
		err error
	)

	// TranslateError turns driver unique-violation errors into
	// gorm.ErrDuplicatedKey so the store constraint stays the source of truth
	// for duplicate signups.
	cfg := &gorm.Config{TranslateError: true}

	if dsn := os.Getenv("POSTGRES_URL"); dsn != "" {
		db, err = gorm.Open(postgres.Open(dsn), cfg)
	} else {
		dir := os.Getenv("DATABASE_DIR")
		if dir == "" {
			dir = "database"
		}
		if mkErr := os.MkdirAll(dir, 0o755); mkErr != nil {
			logger.Get().Fatal("failed to create database directory", logger.Err(mkErr))
		}
		db, err = gorm.Open(sqlite.Open(filepath.Join(dir, sqliteFile)), cfg)
	}

	if err != nil {
		logger.Get().Fatal("error connecting to database", logger.Err(err))
	}

	if err := db.AutoMigrate(models...); err != nil {
		logger.Get().Fatal("error migrating schema", logger.Err(err))
	}

	return db
}

func CloseStore(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		logger.Get().Error("error getting database instance", logger.Err(err))
		return
	}

	if err := sqlDB.Close(); err != nil {
		logger.Get().Error("error closing database connection", logger.Err(err))
	}
}
