package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/zerobbreak/Inventory-application/validation"
	"gorm.io/gorm"
)

// Category represents categories table
type Category struct {
	CategoryID  string    `gorm:"primaryKey;column:category_id;type:uuid" json:"category_id"`
	Name        string    `gorm:"type:varchar(100);not null" json:"name"`
	Description string    `gorm:"type:text;not null" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name for Category
func (Category) TableName() string {
	return "categories"
}

// BeforeCreate assigns an opaque identifier
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.CategoryID == "" {
		c.CategoryID = uuid.NewString()
	}
	return nil
}

// URL returns the canonical location of the category
func (c *Category) URL() string {
	return "/category/" + c.CategoryID
}

// CategoryInput carries the category form fields
type CategoryInput struct {
	Name        string `form:"name"`
	Description string `form:"description"`
}

// Validate sanitizes the fields in place and returns one error per
// offending field.
func (in *CategoryInput) Validate() []validation.FieldError {
	v := validation.New()
	in.Name = v.Field("name", in.Name,
		validation.Trim,
		validation.Required("Category name is required"),
		validation.Escape,
	)
	in.Description = v.Field("description", in.Description,
		validation.Trim,
		validation.Required("Description is required"),
		validation.Escape,
	)
	return v.Errors()
}
