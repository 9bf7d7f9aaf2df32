package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

// snapshotRow is the single-row-per-scope table backing the SQLite backend.
type snapshotRow struct {
	Scope     string `gorm:"primaryKey;size:64"`
	Data      []byte
	UpdatedAt time.Time
}

// TableName overrides GORM's pluralized default.
func (snapshotRow) TableName() string {
	return "cart_snapshots"
}

// SQLiteBackend keeps the snapshot in a local SQLite database, one row per
// cart scope.
type SQLiteBackend struct {
	db    *gorm.DB
	scope string
}

// NewSQLiteBackend opens (and migrates) the snapshot database.
func NewSQLiteBackend(path, scope string) (*SQLiteBackend, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite path required")
	}
	if scope == "" {
		scope = "default"
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite snapshot db: %w", err)
	}
	if err := db.AutoMigrate(&snapshotRow{}); err != nil {
		return nil, fmt.Errorf("migrate snapshot table: %w", err)
	}
	return &SQLiteBackend{db: db, scope: scope}, nil
}

func (s *SQLiteBackend) Write(ctx context.Context, data []byte) error {
	row := snapshotRow{Scope: s.scope, Data: data, UpdatedAt: time.Now().UTC()}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "scope"}},
			DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
		}).
		Create(&row).Error
	if err != nil {
		return fmt.Errorf("upsert snapshot row: %w", err)
	}
	return nil
}

func (s *SQLiteBackend) Read(ctx context.Context) ([]byte, error) {
	var row snapshotRow
	err := s.db.WithContext(ctx).First(&row, "scope = ?", s.scope).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("read snapshot row: %w", err)
	}
	return row.Data, nil
}
