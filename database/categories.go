package database

import (
	"errors"
	"fmt"

	"github.com/zerobbreak/Inventory-application/models"
	"gorm.io/gorm"
)

// ListCategories returns all categories sorted by name
func ListCategories(db *gorm.DB) ([]models.Category, error) {
	var categories []models.Category
	if err := db.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// GetCategory returns one category or ErrNotFound
func GetCategory(db *gorm.DB, id string) (*models.Category, error) {
	var category models.Category
	err := db.First(&category, "category_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &category, nil
}

// CreateCategory persists a new category
func CreateCategory(db *gorm.DB, category *models.Category) error {
	if err := db.Create(category).Error; err != nil {
		return fmt.Errorf("create category: %w", err)
	}
	return nil
}

// UpdateCategory updates an existing category. A missing id is
// ErrNotFound; the same policy applies to every entity.
func UpdateCategory(db *gorm.DB, id string, name, description string) error {
	result := db.Model(&models.Category{}).
		Where("category_id = ?", id).
		Updates(map[string]interface{}{"name": name, "description": description})
	if result.Error != nil {
		return fmt.Errorf("update category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteCategory deletes unconditionally. Items referencing the category
// keep their stored id; the reference simply dangles afterwards.
func DeleteCategory(db *gorm.DB, id string) error {
	if err := db.Delete(&models.Category{}, "category_id = ?", id).Error; err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}
