package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

// snapshotRecord is the single table behind the durable gateway. Records are
// namespaced by session so concurrent store instances don't collide.
type snapshotRecord struct {
	SessionID string    `gorm:"column:session_id;primaryKey"`
	Key       string    `gorm:"column:key;primaryKey"`
	Value     []byte    `gorm:"column:value"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (snapshotRecord) TableName() string { return "snapshots" }

// SQLite persists snapshots in a local database file.
type SQLite struct {
	db        *gorm.DB
	sessionID string
}

// NewSQLite opens (or creates) the snapshot database at path.
func NewSQLite(path, sessionID string) (*SQLite, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}
	if sessionID == "" {
		return nil, fmt.Errorf("session id is required")
	}

	silent := gormlogger.New(
		log.New(io.Discard, "", log.LstdFlags),
		gormlogger.Config{LogLevel: gormlogger.Silent},
	)

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:                 silent,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening snapshot db: %w", err)
	}
	if err := db.AutoMigrate(&snapshotRecord{}); err != nil {
		return nil, fmt.Errorf("migrating snapshot table: %w", err)
	}

	return &SQLite{db: db, sessionID: sessionID}, nil
}

func (s *SQLite) Read(ctx context.Context, key string) ([]byte, error) {
	var record snapshotRecord
	err := s.db.WithContext(ctx).
		Where("session_id = ? AND key = ?", s.sessionID, key).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return record.Value, nil
}

func (s *SQLite) Write(ctx context.Context, key string, value []byte) error {
	record := snapshotRecord{
		SessionID: s.sessionID,
		Key:       key,
		Value:     value,
	}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "session_id"}, {Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&record).Error
}

func (s *SQLite) Clear(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).
		Where("session_id = ? AND key = ?", s.sessionID, key).
		Delete(&snapshotRecord{}).Error
}

// Close releases the underlying connection.
func (s *SQLite) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
