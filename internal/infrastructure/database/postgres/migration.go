// internal/infrastructure/database/postgres/migration.go
package postgres

import (
	"fmt"

	"github.com/your-org/storefront-backend/internal/domain/order"
	"gorm.io/gorm"
)

// Migration handles database schema migrations
type Migration struct {
	db *gorm.DB
}

// NewMigration creates a new migration runner
func NewMigration(db *gorm.DB) *Migration {
	return &Migration{db: db}
}

// RunAutoMigrations migrates all persisted entities. The storefront
// only persists the order archive; the menu lives in the catalog
// provider, not the database.
func (m *Migration) RunAutoMigrations() error {
	if err := m.db.AutoMigrate(&order.Record{}); err != nil {
		return fmt.Errorf("failed to migrate order records: %w", err)
	}
	return nil
}

// CreateIndexes creates indexes not expressed through struct tags
func (m *Migration) CreateIndexes() error {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_order_records_payment_method ON order_records (payment_method)",
		"CREATE INDEX IF NOT EXISTS idx_order_records_neighborhood ON order_records (neighborhood)",
	}

	for _, stmt := range indexes {
		if err := m.db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}
	return nil
}
