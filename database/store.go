package database

import (
	"errors"
	"fmt"

	"github.com/zerobbreak/Inventory-application/models"
	"gorm.io/gorm"
)

// ErrNotFound signals that a requested id has no matching record.
// Handlers translate it into a 404 page.
var ErrNotFound = errors.New("record not found")

// resolveItems loads the items for the given ids and returns them in the
// stored order. Ids that match nothing are silently skipped; a dangling
// reference resolves to no record, it is never an error.
func resolveItems(db *gorm.DB, ids []string) ([]models.Item, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var found []models.Item
	if err := db.Where("item_id IN ?", ids).Find(&found).Error; err != nil {
		return nil, fmt.Errorf("resolve items: %w", err)
	}

	byID := make(map[string]models.Item, len(found))
	for _, item := range found {
		byID[item.ItemID] = item
	}

	items := make([]models.Item, 0, len(ids))
	for _, id := range ids {
		if item, ok := byID[id]; ok {
			items = append(items, item)
		}
	}
	return items, nil
}
