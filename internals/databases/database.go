package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"mentoring_backend/internals/configs"
	"mentoring_backend/internals/logging"
)

var DB *gorm.DB

// ConnectDB opens the shared pool. PreferSimpleProtocol keeps it usable behind PgBouncer
// in transaction pooling mode.
func ConnectDB(cfg configs.AppConfig) (*gorm.DB, error) {
	logging.L().Info().Str("host", cfg.DBHost).Msg("🔌 connecting to PostgreSQL")

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: configs.NewGormLogger(cfg.LogLevel),
	})
	if err != nil {
		return nil, err
	}
	DB = db
	logging.L().Info().Msg("✅ DB connected")
	return db, nil
}

func TunePool(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		logging.L().Warn().Err(err).Msg("pool tune")
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

var errNotConnected = errors.New("database not connected")

// WarmUpQueries fills the pool in the background once the server is up.
func WarmUpQueries(db *gorm.DB) {
	go func() {
		time.Sleep(500 * time.Millisecond)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := Ping(ctx, db); err != nil {
			logging.L().Warn().Err(err).Msg("warm-up ping")
			return
		}
		if err := db.WithContext(ctx).Exec("SELECT 1 FROM contacts LIMIT 1").Error; err != nil {
			logging.L().Warn().Err(err).Msg("warm-up query")
		}
	}()
}

func Ping(ctx context.Context, db *gorm.DB) error {
	if db == nil {
		return errNotConnected
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// RegisterPoolMetrics exposes sql.DBStats of the pool on /metrics.
func RegisterPoolMetrics(db *gorm.DB, reg prometheus.Registerer) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	err = reg.Register(collectors.NewDBStatsCollector(sqlDB, "mentoring"))
	var already prometheus.AlreadyRegisteredError
	if errors.As(err, &already) {
		return nil
	}
	return err
}

func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// OpenSQL opens a plain database/sql handle through lib/pq for tooling that
// should not go through GORM (the migration runner).
func OpenSQL(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(2)
	return db, nil
}
