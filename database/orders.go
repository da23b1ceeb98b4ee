package database

import (
	"errors"
	"fmt"

	"github.com/zerobbreak/Inventory-application/models"
	"gorm.io/gorm"
)

// ListOrders returns all orders sorted by ascending order date with
// their items resolved
func ListOrders(db *gorm.DB) ([]models.Order, error) {
	var orders []models.Order
	if err := db.Order("order_date ASC").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	for i := range orders {
		if err := populateOrder(db, &orders[i]); err != nil {
			return nil, err
		}
	}
	return orders, nil
}

// ListRecentOrders returns the latest n orders by descending order date
// with their items resolved. The home page shows these.
func ListRecentOrders(db *gorm.DB, n int) ([]models.Order, error) {
	var orders []models.Order
	if err := db.Order("order_date DESC").Limit(n).Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("list recent orders: %w", err)
	}
	for i := range orders {
		if err := populateOrder(db, &orders[i]); err != nil {
			return nil, err
		}
	}
	return orders, nil
}

// GetOrder returns one order with its items resolved, or ErrNotFound
func GetOrder(db *gorm.DB, id string) (*models.Order, error) {
	var order models.Order
	err := db.First(&order, "order_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if err := populateOrder(db, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// CreateOrder persists a new order and its ordered item references.
// The referenced item ids are stored as-is, without an existence check.
func CreateOrder(db *gorm.DB, order *models.Order) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		return replaceOrderItems(tx, order.OrderID, order.ItemIDs)
	})
	if err != nil {
		return fmt.Errorf("create order: %w", err)
	}
	return nil
}

// UpdateOrder updates an existing order and replaces its item
// references; a missing id is ErrNotFound
func UpdateOrder(db *gorm.DB, id string, order *models.Order) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Order{}).
			Where("order_id = ?", id).
			Updates(map[string]interface{}{
				"order_date": order.OrderDate,
				"status":     order.Status,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return replaceOrderItems(tx, id, order.ItemIDs)
	})
	if errors.Is(err, ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	order.OrderID = id
	return nil
}

// DeleteOrder deletes unconditionally, along with its item reference rows
func DeleteOrder(db *gorm.DB, id string) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.OrderItem{}, "order_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Order{}, "order_id = ?", id).Error
	})
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

func populateOrder(db *gorm.DB, order *models.Order) error {
	var refs []models.OrderItem
	if err := db.Where("order_id = ?", order.OrderID).Order("position ASC").Find(&refs).Error; err != nil {
		return fmt.Errorf("order item refs: %w", err)
	}

	order.ItemIDs = make([]string, 0, len(refs))
	for _, ref := range refs {
		order.ItemIDs = append(order.ItemIDs, ref.ItemID)
	}

	items, err := resolveItems(db, order.ItemIDs)
	if err != nil {
		return err
	}
	order.Items = items
	return nil
}

func replaceOrderItems(tx *gorm.DB, orderID string, itemIDs []string) error {
	if err := tx.Delete(&models.OrderItem{}, "order_id = ?", orderID).Error; err != nil {
		return err
	}
	for pos, itemID := range itemIDs {
		ref := models.OrderItem{OrderID: orderID, Position: pos, ItemID: itemID}
		if err := tx.Create(&ref).Error; err != nil {
			return err
		}
	}
	return nil
}
