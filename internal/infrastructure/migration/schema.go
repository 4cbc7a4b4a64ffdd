package migration

import (
	"fmt"

	"github.com/clientes/backend/internal/infrastructure/config"
	"github.com/clientes/backend/internal/infrastructure/persistence"
	"github.com/clientes/backend/internal/infrastructure/persistence/models"
	"github.com/clientes/backend/migrations"
	"go.uber.org/zap"
)

// EnsureSchema brings the schema up to date at startup.
// PostgreSQL runs the embedded SQL migrations; SQLite, used for local runs
// and tests, is migrated from the GORM models.
func EnsureSchema(db *persistence.Database, logger *zap.Logger) error {
	switch db.Driver {
	case config.DriverSQLite:
		if err := db.DB.AutoMigrate(models.All()...); err != nil {
			return fmt.Errorf("auto-migrate failed: %w", err)
		}
		logger.Info("SQLite schema migrated from models")
		return nil
	case config.DriverPostgres:
		sqlDB, err := db.DB.DB()
		if err != nil {
			return fmt.Errorf("failed to get underlying sql.DB: %w", err)
		}
		m, err := New(sqlDB, migrations.FS, logger)
		if err != nil {
			return err
		}
		// Close would also close sqlDB, which the application still uses.
		return m.Up()
	default:
		return fmt.Errorf("unsupported database driver %q", db.Driver)
	}
}
