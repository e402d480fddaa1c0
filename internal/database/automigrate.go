package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"roadmap-dashboard-api/internal/domain"
)

// models lists every persisted planning entity, parents before children
func models() []interface{} {
	return []interface{}{
		&domain.Member{},
		&domain.Goal{},
		&domain.Milestone{},
		&domain.Task{},
		&domain.Idea{},
		&domain.Comment{},
	}
}

// AutoMigrate runs GORM auto-migration for all domain models
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models()...); err != nil {
		return fmt.Errorf("failed to run auto-migration: %w", err)
	}
	return nil
}

// SafeAutoMigrate migrates table by table and logs whether each table was created or updated
func SafeAutoMigrate(db *gorm.DB, logger *zap.Logger) error {
	migrator := db.Migrator()
	all := models()

	logger.Info("Starting safe auto-migration", zap.Int("total_models", len(all)))

	for _, m := range all {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(m); err != nil {
			return fmt.Errorf("failed to parse model %T: %w", m, err)
		}
		table := stmt.Schema.Table
		existed := migrator.HasTable(m)

		if err := db.AutoMigrate(m); err != nil {
			logger.Error("Failed to migrate table",
				zap.String("table", table),
				zap.Bool("table_existed", existed),
				zap.Error(err),
			)
			return fmt.Errorf("failed to migrate table %s: %w", table, err)
		}

		logger.Info("Successfully migrated table",
			zap.String("table", table),
			zap.Bool("was_existing", existed),
		)
	}

	logger.Info("Safe auto-migration completed successfully", zap.Int("tables_migrated", len(all)))
	return nil
}
