package database

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"construction_backend/internals/configs"
	"construction_backend/internals/helpers/apperr"

	"github.com/glebarez/sqlite"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the database selected by cfg.DBDriver.
func Connect(cfg configs.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "sqlite":
		log.Printf("[INFO] Opening SQLite database %s", cfg.SQLitePath)
		dialector = sqlite.Open(sqliteDSN(cfg.SQLitePath))
	default:
		log.Printf("[INFO] Connecting to PostgreSQL %s:%s/%s", cfg.DBHost, cfg.DBPort, cfg.DBName)
		dialector = postgres.New(postgres.Config{
			DSN:                  cfg.PostgresDSN(),
			PreferSimpleProtocol: true,
		})
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         configs.NewGormLogger(cfg.DBLogLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.DBDriver, err)
	}
	log.Println("[SUCCESS] DB connected.")
	return db, nil
}

// sqlite needs foreign keys switched on per connection
func sqliteDSN(path string) string {
	if strings.Contains(path, "?") {
		return path + "&_pragma=foreign_keys(1)"
	}
	return path + "?_pragma=foreign_keys(1)"
}

func TunePool(db *gorm.DB, driver string) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("[ERROR] pool tune: %v", err)
		return
	}
	if driver == "sqlite" {
		// satu writer saja untuk SQLite
		sqlDB.SetMaxOpenConns(1)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

func Ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func Close(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// IsDuplicateKey reports whether err is a unique constraint violation,
// whichever driver produced it.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, apperr.ErrDuplicateKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}

// WrapWriteError turns a unique violation into apperr.ErrDuplicateKey and
// leaves every other error untouched.
func WrapWriteError(err error) error {
	if err == nil {
		return nil
	}
	if IsDuplicateKey(err) && !errors.Is(err, apperr.ErrDuplicateKey) {
		return fmt.Errorf("%w: %v", apperr.ErrDuplicateKey, err)
	}
	return err
}
