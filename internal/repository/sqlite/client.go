package sqlite

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/BarkinBalci/aml-portal-bridge/internal/config"
)

// Client wraps the SQLite portal store connection
type Client struct {
	db   *gorm.DB
	path string
	log  *zap.Logger
}

// NewClient opens (or creates) the portal store file at the configured
// path, creating the parent directory when needed
func NewClient(cfg *config.Config, log *zap.Logger) (*Client, error) {
	path := cfg.TargetDBPath

	log.Info("Opening portal store", zap.String("path", path))

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create portal store directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open portal store: %w", err)
	}

	log.Info("Portal store opened successfully")

	return &Client{db: db, path: path, log: log}, nil
}

// DB returns the underlying gorm handle
func (c *Client) DB() *gorm.DB {
	return c.db
}

// Path returns the portal store file path
func (c *Client) Path() string {
	return c.path
}

// Close closes the portal store connection
func (c *Client) Close() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return fmt.Errorf("failed to access portal store connection: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close portal store: %w", err)
	}
	c.log.Info("Portal store closed successfully")
	return nil
}
