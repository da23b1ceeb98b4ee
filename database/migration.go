package database

import (
	"fmt"
	"log"

	"github.com/zerobbreak/Inventory-application/models"
	"gorm.io/gorm"
)

// AutoMigrate creates all tables and secondary indexes. Reference
// columns get NO foreign key constraints: references between records
// are weak, and deleting a referenced record must leave the referrer
// (and its dangling id) untouched.
func AutoMigrate(db *gorm.DB) error {
	log.Println("Starting GORM AutoMigrate...")

	migrator := db.Migrator()
	for _, model := range allModelsInOrder() {
		if migrator.HasTable(model) {
			log.Printf("  ✓ Table already exists: %T", model)
			continue
		}
		if err := migrator.CreateTable(model); err != nil {
			return fmt.Errorf("failed to create table for %T: %w", model, err)
		}
		log.Printf("  ✓ Created table: %T", model)
	}

	log.Println("Creating indexes...")
	if err := CreateIndexes(db); err != nil {
		log.Printf("Warning: Some indexes could not be created: %v", err)
	}

	log.Println("GORM AutoMigrate completed successfully")
	return nil
}

func allModelsInOrder() []interface{} {
	return models.AllModels()
}

// CreateIndexes creates lookup indexes for the weak reference columns
func CreateIndexes(db *gorm.DB) error {
	indexes := []struct {
		name  string
		query string
	}{
		{"idx_items_category", "CREATE INDEX IF NOT EXISTS idx_items_category ON items(category_id)"},
		{"idx_items_supplier", "CREATE INDEX IF NOT EXISTS idx_items_supplier ON items(supplier_id)"},
		{"idx_items_name", "CREATE INDEX IF NOT EXISTS idx_items_name ON items(name)"},
		{"idx_orders_date", "CREATE INDEX IF NOT EXISTS idx_orders_date ON orders(order_date)"},
		{"idx_order_items_item", "CREATE INDEX IF NOT EXISTS idx_order_items_item ON order_items(item_id)"},
		{"idx_supplier_items_item", "CREATE INDEX IF NOT EXISTS idx_supplier_items_item ON supplier_items(item_id)"},
	}

	for _, idx := range indexes {
		if err := db.Exec(idx.query).Error; err != nil {
			log.Printf("  ⚠ Failed to create index %s: %v", idx.name, err)
		} else {
			log.Printf("  ✓ Created index: %s", idx.name)
		}
	}

	return nil
}
