package sql

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	_ "github.com/ncruces/go-sqlite3/embed"
	"github.com/ncruces/go-sqlite3/gormlite"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"

	"github.com/cubestats/analytics/pkg/config"
	"github.com/cubestats/analytics/pkg/store/sql/model"
)

type Store struct {
	config *config.Config
	db     *gorm.DB
}

// NewSQLStore opens the database selected by the store URL scheme and
// migrates the schema.
func NewSQLStore(logger *logrus.Logger, cfg *config.Config) (*Store, error) {
	uri, err := url.Parse(cfg.StoreURL)
	if err != nil {
		return nil, fmt.Errorf("invalid store URL %q: %w", cfg.StoreURL, err)
	}

	var dialector gorm.Dialector
	switch uri.Scheme {
	case "postgres", "postgresql":
		dialector = postgres.Open(cfg.StoreURL)
	case "mysql":
		dialector = mysql.Open(strings.TrimPrefix(cfg.StoreURL, "mysql://"))
	case "sqlserver":
		dialector = sqlserver.Open(cfg.StoreURL)
	case "sqlite", "":
		dialector = gormlite.Open(strings.TrimPrefix(cfg.StoreURL, "sqlite://"))
	default:
		return nil, fmt.Errorf("unsupported store URL scheme %q", uri.Scheme)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger: newLoggerAdaptor(logger, loggerAdaptorConfig{
			slowThreshold:             500 * time.Millisecond,
			ignoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database %q: %w", cfg.StoreURL, err)
	}

	if err := db.AutoMigrate(
		&model.Dataset{},
		&model.Row{},
		&model.Share{},
		&model.Threshold{},
		&model.Dataload{},
		&model.User{},
		&model.GroupMember{},
		&model.Activity{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate database schema: %w", err)
	}

	return &Store{config: cfg, db: db}, nil
}
