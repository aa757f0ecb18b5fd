package db

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/datainsight/sst-backend/internal/domain"
	"github.com/datainsight/sst-backend/internal/platform/logger"
	"github.com/datainsight/sst-backend/internal/utils"
)

type Service struct {
	db  *gorm.DB
	log *logger.Logger
}

// New opens the record store. DB_URL selects the backend: a
// postgres:// URL (or POSTGRES_* vars when DB_URL is unset and
// POSTGRES_HOST is set) opens Postgres; anything else falls back to a
// local SQLite file so the suite runs without infrastructure.
func New(logg *logger.Logger) (*Service, error) {
	serviceLog := logg.With("service", "DBService")

	gormLog := gormLogger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		gormLogger.Config{
			SlowThreshold:             1 * time.Second,
			LogLevel:                  gormLogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
	cfg := &gorm.Config{Logger: gormLog}

	dbURL := utils.GetEnv("DB_URL", "", logg)
	switch {
	case strings.HasPrefix(dbURL, "postgres://") || strings.HasPrefix(dbURL, "postgresql://"):
		gdb, err := gorm.Open(postgres.Open(dbURL), cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Postgres: %w", err)
		}
		return &Service{db: gdb, log: serviceLog}, nil

	case dbURL == "" && os.Getenv("POSTGRES_HOST") != "":
		dsn := fmt.Sprintf(
			"postgres://%s:%s@%s:%s/%s?sslmode=disable",
			utils.GetEnv("POSTGRES_USER", "postgres", logg),
			utils.GetEnv("POSTGRES_PASSWORD", "", logg),
			utils.GetEnv("POSTGRES_HOST", "localhost", logg),
			utils.GetEnv("POSTGRES_PORT", "5432", logg),
			utils.GetEnv("POSTGRES_NAME", "sst", logg),
		)
		gdb, err := gorm.Open(postgres.Open(dsn), cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Postgres: %w", err)
		}
		return &Service{db: gdb, log: serviceLog}, nil

	default:
		path := dbURL
		if path == "" {
			path = utils.GetEnv("SQLITE_PATH", "datainsight_sst.db", logg)
		}
		gdb, err := gorm.Open(sqlite.Open(path), cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to open SQLite at %s: %w", path, err)
		}
		serviceLog.Info("Using SQLite record store", "path", path)
		return &Service{db: gdb, log: serviceLog}, nil
	}
}

func (s *Service) DB() *gorm.DB { return s.db }

func (s *Service) AutoMigrateAll() error {
	return s.db.AutoMigrate(domain.AllModels()...)
}
