package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"linkgate/internal/config"
	"linkgate/internal/model"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const mysqlDuplicateEntry = 1062

const lastAccessForward = "CASE WHEN last_access_at IS NULL OR last_access_at < ? THEN ? ELSE last_access_at END"

var (
	// ErrDuplicateCode is returned by Insert when the code is already taken
	ErrDuplicateCode = errors.New("short code already exists")
	// ErrUnsupportedDriver is returned for an unknown database.driver value
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// SQLRepository is the gorm-backed store of short URL records
type SQLRepository struct {
	db *gorm.DB
}

// NewSQLRepository opens the configured database and migrates the schema
func NewSQLRepository(cfg *config.DatabaseConfig) (*SQLRepository, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "", "mysql":
		dialector = mysql.Open(cfg.DSN)
	case "postgres":
		dialector = postgres.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedDriver, cfg.Driver)
	}

	db, err := gorm.Open(dialector, gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&model.ShortURL{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Info().Str("driver", dialector.Name()).Msg("Database connected successfully")

	return newSQLRepository(db), nil
}

func newSQLRepository(db *gorm.DB) *SQLRepository {
	return &SQLRepository{db: db}
}

func gormConfig() *gorm.Config {
	var gormLogger logger.Interface
	if zerolog.GlobalLevel() > zerolog.DebugLevel {
		gormLogger = logger.Default.LogMode(logger.Silent)
	} else {
		gormLogger = logger.Default.LogMode(logger.Info)
	}

	return &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// FindByCode returns the record for code, or nil when there is none
func (r *SQLRepository) FindByCode(ctx context.Context, code string) (*model.ShortURL, error) {
	var rec model.ShortURL
	err := r.db.WithContext(ctx).
		Where("code = ?", code).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// FindByOwner returns the records created by owner, newest first
func (r *SQLRepository) FindByOwner(ctx context.Context, owner string) ([]model.ShortURL, error) {
	var recs []model.ShortURL
	err := r.db.WithContext(ctx).
		Where("created_by = ?", owner).
		Order("created_at DESC").
		Find(&recs).Error
	return recs, err
}

// Insert persists a new record, returning ErrDuplicateCode on a code collision
func (r *SQLRepository) Insert(ctx context.Context, rec *model.ShortURL) error {
	err := r.db.WithContext(ctx).Create(rec).Error
	if isDuplicate(err) {
		return fmt.Errorf("%w: %s", ErrDuplicateCode, rec.Code)
	}
	return err
}

// UpdateByCode writes changes to the record and returns its new state
func (r *SQLRepository) UpdateByCode(ctx context.Context, code string, changes model.ShortURLChanges) (*model.ShortURL, error) {
	err := r.db.WithContext(ctx).
		Model(&model.ShortURL{}).
		Where("code = ?", code).
		Updates(map[string]interface{}{
			"label":      changes.Label,
			"long_url":   changes.LongURL,
			"expires_at": changes.ExpiresAt,
			"updated_by": changes.UpdatedBy,
		}).Error
	if err != nil {
		return nil, err
	}
	return r.FindByCode(ctx, code)
}

// DeleteByCode removes the record for code
func (r *SQLRepository) DeleteByCode(ctx context.Context, code string) error {
	return r.db.WithContext(ctx).
		Where("code = ?", code).
		Delete(&model.ShortURL{}).Error
}

// IncrementStats adds one click in a single statement, so concurrent
// redirects never lose a count. last_access_at only moves forward: a late
// or redelivered click older than the stored time leaves it unchanged.
func (r *SQLRepository) IncrementStats(ctx context.Context, code string, at time.Time) (*model.ShortURL, error) {
	at = at.UTC()
	result := r.db.WithContext(ctx).
		Model(&model.ShortURL{}).
		Where("code = ?", code).
		UpdateColumns(map[string]interface{}{
			"click_count":    gorm.Expr("click_count + ?", 1),
			"last_access_at": gorm.Expr(lastAccessForward, at, at),
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return r.FindByCode(ctx, code)
}

// Close closes the database connection
func (r *SQLRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func isDuplicate(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *mysqldriver.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry
}
