package sqlite

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"plansync/internal/audit"
	pkgLog "plansync/pkg/log"
)

type implRepository struct {
	l  pkgLog.Logger
	db *gorm.DB
}

// New opens (and migrates) the audit database at path.
func New(ctx context.Context, l pkgLog.Logger, path string) (audit.Repository, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create audit dir: %w", err)
	}

	db, err := gorm.Open(sqlite.Dialector{
		DriverName: "sqlite",
		DSN:        path,
	}, &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	if err != nil {
		return nil, fmt.Errorf("open audit db: %w", err)
	}
	if err := db.Exec(`PRAGMA journal_mode=WAL;`).Error; err != nil {
		return nil, fmt.Errorf("audit db journal mode: %w", err)
	}
	if err := db.Exec(`PRAGMA busy_timeout=5000;`).Error; err != nil {
		return nil, fmt.Errorf("audit db busy timeout: %w", err)
	}
	if err := db.AutoMigrate(&runRow{}); err != nil {
		return nil, fmt.Errorf("migrate audit db: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	l.Infof(ctx, "audit.sqlite: using %s", path)
	return &implRepository{l: l, db: db}, nil
}

func (r *implRepository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
