package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/aslanbek/fitlog/internal/models"
)

var DB *gorm.DB

// snapshotKey is the single storage key the whole application state lives
// under. The snapshot is serialized and written as one blob.
const snapshotKey = "snapshot"

// blob is the one-row table holding the serialized snapshot
type blob struct {
	Key       string `gorm:"primaryKey"`
	Data      []byte
	UpdatedAt time.Time
}

// Initialize sets up the database connection and runs migrations
func Initialize() error {
	dbPath, err := getDatabasePath()
	if err != nil {
		return fmt.Errorf("failed to get database path: %w", err)
	}
	return InitializeAt(dbPath)
}

// InitializeAt opens the snapshot store at an explicit path
func InitializeAt(dbPath string) error {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create fitlog directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Quiet by default
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	DB = db

	if err := DB.AutoMigrate(&blob{}); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// getDatabasePath returns the path to the SQLite database file
func getDatabasePath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".fitlog", "fitlog.db"), nil
}

// Load reads the current snapshot. A store with no blob yet yields an empty
// snapshot rather than an error, so a fresh install just works.
func Load() (models.Snapshot, error) {
	var row blob
	err := DB.First(&row, "key = ?", snapshotKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.EmptySnapshot(), nil
	}
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var snap models.Snapshot
	if err := json.Unmarshal(row.Data, &snap); err != nil {
		return models.Snapshot{}, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return snap, nil
}

// Save writes the whole snapshot as one blob under the fixed key
func Save(snap models.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	row := blob{Key: snapshotKey, Data: data, UpdatedAt: time.Now()}
	if err := DB.Save(&row).Error; err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

// SaveLogged persists the snapshot fire-and-forget style: a failure is
// logged so the data-loss risk is visible, but the caller's in-memory
// state stays usable and the caller does not retry.
func SaveLogged(snap models.Snapshot) {
	if err := Save(snap); err != nil {
		slog.Error("snapshot not persisted, in-memory state kept", "err", err)
	}
}

// Close closes the database connection
func Close() error {
	if DB != nil {
		sqlDB, err := DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}
