package config

import (
	"fmt"
	"log"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB holds the relational store handle shared by all repositories
type DB struct {
	SQL     *gorm.DB
	Dialect string
}

// InitDB opens Postgres when DatabaseURL is set and the SQLite file at DBPath otherwise
func InitDB(cfg *Config) (*DB, error) {
	logLevel := logger.Warn
	if cfg.IsDevelopment() {
		logLevel = logger.Info
	}
	gormCfg := &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	}

	if cfg.DatabaseURL != "" {
		db, err := initPostgres(cfg.DatabaseURL, gormCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		return &DB{SQL: db, Dialect: "postgres"}, nil
	}

	db, err := initSQLite(cfg.DBPath, gormCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database %q: %w", cfg.DBPath, err)
	}
	return &DB{SQL: db, Dialect: "sqlite"}, nil
}

// initPostgres initializes the PostgreSQL database connection using GORM
func initPostgres(connStr string, gormCfg *gorm.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(connStr), gormCfg)
	if err != nil {
		return nil, err
	}

	// Ping the database to verify connection
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err = sqlDB.Ping(); err != nil {
		return nil, err
	}

	log.Println("Successfully connected to PostgreSQL!")
	return db, nil
}

// initSQLite opens a file-backed (or ":memory:") SQLite database with foreign keys enforced
func initSQLite(path string, gormCfg *gorm.Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(sqliteDSN(path)), gormCfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// One writer at a time, and a ":memory:" database lives only as long as its connection.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxLifetime(0)
	sqlDB.SetConnMaxIdleTime(0)
	if err = sqlDB.Ping(); err != nil {
		return nil, err
	}

	log.Printf("Successfully opened SQLite database at %s", path)
	return db, nil
}

// sqliteDSN appends the foreign key pragma to path, keeping any query it already has
func sqliteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_foreign_keys=on"
}

// CloseDB closes the database connection
func (db *DB) CloseDB() {
	if db.SQL == nil {
		return
	}
	sqlDB, err := db.SQL.DB()
	if err != nil {
		log.Printf("Error getting SQL DB from GORM: %v\n", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing %s connection: %v\n", db.Dialect, err)
	} else {
		log.Printf("%s connection closed.", db.Dialect)
	}
}
