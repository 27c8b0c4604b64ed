package repository

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/altechdata/postcode-api/internal/config"
	"github.com/altechdata/postcode-api/internal/logger"
	"github.com/altechdata/postcode-api/internal/models"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

// sqliteDriverName is the database/sql name registered by modernc.org/sqlite.
// gorm knows the dialect as "sqlite3".
const sqliteDriverName = "sqlite"

// GormRepository implements PostcodeRepository on top of gorm
type GormRepository struct {
	db    *gorm.DB
	table string
}

// Open connects to the configured database and returns a repository
func Open(cfg config.DatabaseConfig, log *logrus.Logger) (*GormRepository, error) {
	var (
		db  *gorm.DB
		err error
	)

	switch cfg.Driver {
	case config.DriverPostgres:
		db, err = gorm.Open("postgres", cfg.DSN())
	case config.DriverSQLite:
		db, err = openSQLite(cfg.Path)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", cfg.Driver, err)
	}

	sqlDB := db.DB()
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	db.SetLogger(gormLogger{entry: logger.WithComponent(log, "gorm")})
	db.LogMode(cfg.LogQueries)

	log.WithFields(logrus.Fields{
		"driver": cfg.Driver,
		"table":  cfg.Table,
	}).Info("Database connection established")

	return NewGormRepository(db, cfg.Table), nil
}

func openSQLite(path string) (*gorm.DB, error) {
	sqlDB, err := sql.Open(sqliteDriverName, path)
	if err != nil {
		return nil, err
	}
	if _, err := sqlDB.Exec("PRAGMA busy_timeout=5000"); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	db, err := gorm.Open("sqlite3", sqlDB)
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return db, nil
}

// NewGormRepository wraps an open gorm handle reading from table
func NewGormRepository(db *gorm.DB, table string) *GormRepository {
	return &GormRepository{db: db, table: table}
}

// Session begins a transaction so every query of the session runs on one connection
func (r *GormRepository) Session(ctx context.Context) (Session, error) {
	tx := r.db.BeginTx(ctx, nil)
	if tx.Error != nil {
		return nil, fmt.Errorf("failed to acquire database session: %w", tx.Error)
	}
	return &gormSession{tx: tx, table: r.table}, nil
}

// Ping checks database connectivity
func (r *GormRepository) Ping(ctx context.Context) error {
	return r.db.DB().PingContext(ctx)
}

// Close closes the connection pool
func (r *GormRepository) Close() error {
	return r.db.Close()
}

// DB exposes the gorm handle
func (r *GormRepository) DB() *gorm.DB {
	return r.db
}

type gormSession struct {
	tx     *gorm.DB
	table  string
	mu     sync.Mutex
	closed bool
}

func (s *gormSession) FindByPostcode(ctx context.Context, code string) ([]models.PostcodeRecord, error) {
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed {
		return nil, ErrSessionClosed
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var rows []models.PostcodeRecord
	err := s.tx.Table(s.table).
		Select("postcode, locality, state").
		Where("postcode = ?", code).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []models.PostcodeRecord{}
	}
	return rows, nil
}

func (s *gormSession) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.tx.Rollback().Error
}

// gormLogger routes gorm's query log through logrus
type gormLogger struct {
	entry *logrus.Entry
}

func (l gormLogger) Print(v ...interface{}) {
	if len(v) > 0 && v[0] == "error" {
		l.entry.Error(gorm.LogFormatter(v...)...)
		return
	}
	l.entry.Debug(gorm.LogFormatter(v...)...)
}
