package database

import (
	"errors"
	"fmt"

	"github.com/zerobbreak/Inventory-application/models"
	"gorm.io/gorm"
)

// ListItems returns all items sorted by name with their category and
// supplier references resolved as name-only projections
func ListItems(db *gorm.DB) ([]models.Item, error) {
	var items []models.Item
	if err := db.Order("name ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	categoryIDs := make([]string, 0, len(items))
	supplierIDs := make([]string, 0, len(items))
	for _, item := range items {
		categoryIDs = append(categoryIDs, item.CategoryID)
		if item.SupplierID != nil {
			supplierIDs = append(supplierIDs, *item.SupplierID)
		}
	}

	categories := map[string]models.Category{}
	if len(categoryIDs) > 0 {
		var found []models.Category
		if err := db.Select("category_id", "name").
			Where("category_id IN ?", categoryIDs).
			Find(&found).Error; err != nil {
			return nil, fmt.Errorf("list items: resolve categories: %w", err)
		}
		for _, c := range found {
			categories[c.CategoryID] = c
		}
	}

	suppliers := map[string]models.Supplier{}
	if len(supplierIDs) > 0 {
		var found []models.Supplier
		if err := db.Select("supplier_id", "company_name").
			Where("supplier_id IN ?", supplierIDs).
			Find(&found).Error; err != nil {
			return nil, fmt.Errorf("list items: resolve suppliers: %w", err)
		}
		for _, s := range found {
			suppliers[s.SupplierID] = s
		}
	}

	for i := range items {
		if c, ok := categories[items[i].CategoryID]; ok {
			category := c
			items[i].Category = &category
		}
		if items[i].SupplierID != nil {
			if s, ok := suppliers[*items[i].SupplierID]; ok {
				supplier := s
				items[i].Supplier = &supplier
			}
		}
	}

	return items, nil
}

// GetItem returns one item with both references fully resolved, or
// ErrNotFound. A dangling reference leaves the resolved field nil.
func GetItem(db *gorm.DB, id string) (*models.Item, error) {
	var item models.Item
	err := db.First(&item, "item_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}

	var category models.Category
	err = db.First(&category, "category_id = ?", item.CategoryID).Error
	if err == nil {
		item.Category = &category
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("get item: resolve category: %w", err)
	}

	if item.SupplierID != nil {
		var supplier models.Supplier
		err = db.First(&supplier, "supplier_id = ?", *item.SupplierID).Error
		if err == nil {
			item.Supplier = &supplier
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("get item: resolve supplier: %w", err)
		}
	}

	return &item, nil
}

// ListItemsBySupplier returns the items whose supplier field holds the
// given id. This is the reverse view, independent of the supplier's own
// embedded item list.
func ListItemsBySupplier(db *gorm.DB, supplierID string) ([]models.Item, error) {
	var items []models.Item
	if err := db.Where("supplier_id = ?", supplierID).Order("name ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list items by supplier: %w", err)
	}
	return items, nil
}

// CountItems returns the number of stocked items
func CountItems(db *gorm.DB) (int64, error) {
	var count int64
	if err := db.Model(&models.Item{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count items: %w", err)
	}
	return count, nil
}

// CreateItem persists a new item. The referenced category and supplier
// ids are stored as-is, without an existence check.
func CreateItem(db *gorm.DB, item *models.Item) error {
	if err := db.Create(item).Error; err != nil {
		return fmt.Errorf("create item: %w", err)
	}
	return nil
}

// UpdateItem updates an existing item; a missing id is ErrNotFound
func UpdateItem(db *gorm.DB, id string, item *models.Item) error {
	result := db.Model(&models.Item{}).
		Where("item_id = ?", id).
		Updates(map[string]interface{}{
			"name":        item.Name,
			"description": item.Description,
			"category_id": item.CategoryID,
			"price":       item.Price,
			"supplier_id": item.SupplierID,
		})
	if result.Error != nil {
		return fmt.Errorf("update item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	item.ItemID = id
	return nil
}

// DeleteItem deletes unconditionally. Orders and supplier item lists
// referencing the item keep their stored ids.
func DeleteItem(db *gorm.DB, id string) error {
	if err := db.Delete(&models.Item{}, "item_id = ?", id).Error; err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}
