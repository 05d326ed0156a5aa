// Package auditlog is an optional sqlite-backed record of every slice/
// inline request the engine serves, for operators who want a local
// history of what was sliced or inlined and when.
//
// Grounded on termfx-morfx's db/sqlite.go (Connect/Migrate) and
// models/models.go (Stage/Apply/Session), trimmed to the one table this
// engine actually needs: a flat Operation row per request. The richer
// staging/apply/session lifecycle those models track belongs to a system
// that holds pending edits for later approval; sce's slice/inline calls
// are synchronous request/response, so there is nothing to "stage" —
// only something to log after the fact.
package auditlog

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// Operation is one recorded slice or inline request.
type Operation struct {
	ID        uint      `gorm:"primaryKey"`
	Kind      string    `gorm:"type:varchar(20);not null;index"` // "slice" or "inline"
	Language  string    `gorm:"type:varchar(50);not null"`
	Filename  string    `gorm:"type:text"`
	Direction string    `gorm:"type:varchar(10)"` // slice only: backward/forward
	Success   bool      `gorm:"not null"`
	Detail    string    `gorm:"type:text"` // error detail, empty on success
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Operation) TableName() string { return "operations" }

// Log wraps a *gorm.DB and records Operation rows.
type Log struct {
	db *gorm.DB
}

// Open connects to (creating if necessary) a sqlite database at dsn and
// runs the Operation migration.
func Open(dsn string) (*Log, error) {
	if dir := filepath.Dir(dsn); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating audit log directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("opening audit log: %w", err)
	}

	if err := db.AutoMigrate(&Operation{}); err != nil {
		return nil, fmt.Errorf("migrating audit log: %w", err)
	}

	return &Log{db: db}, nil
}

// Record inserts op, stamping CreatedAt if it is zero.
func (l *Log) Record(op Operation) error {
	return l.db.Create(&op).Error
}

// Recent returns the most recent n operations, newest first.
func (l *Log) Recent(n int) ([]Operation, error) {
	var ops []Operation
	err := l.db.Order("created_at desc").Limit(n).Find(&ops).Error
	return ops, err
}

// Close releases the underlying database connection.
func (l *Log) Close() error {
	sqlDB, err := l.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
