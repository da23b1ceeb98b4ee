package database

import (
	"errors"
	"fmt"

	"github.com/zerobbreak/Inventory-application/models"
	"gorm.io/gorm"
)

// ListSuppliers returns all suppliers sorted by company name
func ListSuppliers(db *gorm.DB) ([]models.Supplier, error) {
	var suppliers []models.Supplier
	if err := db.Order("company_name ASC").Find(&suppliers).Error; err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	return suppliers, nil
}

// GetSupplier returns one supplier with its embedded item list resolved,
// or ErrNotFound. The reverse view (items whose supplier field matches)
// is a separate query; see ListItemsBySupplier.
func GetSupplier(db *gorm.DB, id string) (*models.Supplier, error) {
	var supplier models.Supplier
	err := db.First(&supplier, "supplier_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get supplier: %w", err)
	}

	ids, err := supplierItemIDs(db, id)
	if err != nil {
		return nil, err
	}
	supplier.ItemIDs = ids

	items, err := resolveItems(db, ids)
	if err != nil {
		return nil, err
	}
	supplier.Items = items

	return &supplier, nil
}

// CreateSupplier persists a new supplier and its ordered item references
func CreateSupplier(db *gorm.DB, supplier *models.Supplier) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(supplier).Error; err != nil {
			return err
		}
		return replaceSupplierItems(tx, supplier.SupplierID, supplier.ItemIDs)
	})
	if err != nil {
		return fmt.Errorf("create supplier: %w", err)
	}
	return nil
}

// UpdateSupplier updates an existing supplier and replaces its item
// references; a missing id is ErrNotFound
func UpdateSupplier(db *gorm.DB, id string, supplier *models.Supplier) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Supplier{}).
			Where("supplier_id = ?", id).
			Updates(map[string]interface{}{
				"company_name":   supplier.CompanyName,
				"contact_person": supplier.ContactPerson,
				"email":          supplier.Email,
				"phone":          supplier.Phone,
				"address":        supplier.Address,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return replaceSupplierItems(tx, id, supplier.ItemIDs)
	})
	if errors.Is(err, ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("update supplier: %w", err)
	}
	supplier.SupplierID = id
	return nil
}

// DeleteSupplier deletes unconditionally, along with its item reference
// rows. Items pointing at the supplier keep their stored id.
func DeleteSupplier(db *gorm.DB, id string) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.SupplierItem{}, "supplier_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Supplier{}, "supplier_id = ?", id).Error
	})
	if err != nil {
		return fmt.Errorf("delete supplier: %w", err)
	}
	return nil
}

func supplierItemIDs(db *gorm.DB, supplierID string) ([]string, error) {
	var refs []models.SupplierItem
	if err := db.Where("supplier_id = ?", supplierID).Order("position ASC").Find(&refs).Error; err != nil {
		return nil, fmt.Errorf("supplier item refs: %w", err)
	}
	ids := make([]string, 0, len(refs))
	for _, ref := range refs {
		ids = append(ids, ref.ItemID)
	}
	return ids, nil
}

func replaceSupplierItems(tx *gorm.DB, supplierID string, itemIDs []string) error {
	if err := tx.Delete(&models.SupplierItem{}, "supplier_id = ?", supplierID).Error; err != nil {
		return err
	}
	for pos, itemID := range itemIDs {
		ref := models.SupplierItem{SupplierID: supplierID, Position: pos, ItemID: itemID}
		if err := tx.Create(&ref).Error; err != nil {
			return err
		}
	}
	return nil
}
