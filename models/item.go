package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/zerobbreak/Inventory-application/validation"
	"gorm.io/gorm"
)

// Item represents items table
type Item struct {
	ItemID      string          `gorm:"primaryKey;column:item_id;type:uuid" json:"item_id"`
	Name        string          `gorm:"type:varchar(100);not null" json:"name"`
	Description string          `gorm:"type:text;not null" json:"description"`
	CategoryID  string          `gorm:"type:uuid;not null" json:"category_id"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	SupplierID  *string         `gorm:"type:uuid" json:"supplier_id,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	// Resolved references; nil when the stored id matches nothing.
	Category *Category `gorm:"-" json:"category,omitempty"`
	Supplier *Supplier `gorm:"-" json:"supplier,omitempty"`
}

// TableName specifies the table name for Item
func (Item) TableName() string {
	return "items"
}

// BeforeCreate assigns an opaque identifier
func (i *Item) BeforeCreate(tx *gorm.DB) error {
	if i.ItemID == "" {
		i.ItemID = uuid.NewString()
	}
	return nil
}

// URL returns the canonical location of the item
func (i *Item) URL() string {
	return "/item/" + i.ItemID
}

// ItemInput carries the item form fields
type ItemInput struct {
	Name        string `form:"name"`
	Description string `form:"description"`
	Category    string `form:"category"`
	Price       string `form:"price"`
	Supplier    string `form:"supplier"`
}

// Validate sanitizes the fields in place and returns one error per
// offending field. The referenced category's existence is not checked;
// a stale id simply resolves to nothing later.
func (in *ItemInput) Validate() []validation.FieldError {
	v := validation.New()
	in.Name = v.Field("name", in.Name,
		validation.Trim,
		validation.Required("Name must not be empty."),
		validation.MaxLen(100, "Name must be at most 100 characters."),
		validation.Escape,
	)
	in.Description = v.Field("description", in.Description,
		validation.Trim,
		validation.Required("Description must not be empty."),
		validation.Escape,
	)
	in.Category = v.Field("category", in.Category,
		validation.Trim,
		validation.Required("Category must not be empty."),
		validation.Escape,
	)
	in.Price = v.Field("price", in.Price,
		validation.Trim,
		validation.Required("Price must not be empty."),
		validation.Decimal("Price must be a number."),
		validation.Escape,
	)
	// Supplier is optional; sanitize only.
	in.Supplier = v.Field("supplier", in.Supplier,
		validation.Trim,
		validation.Escape,
	)
	return v.Errors()
}

// PriceValue returns the parsed price. Call after Validate.
func (in *ItemInput) PriceValue() decimal.Decimal {
	d, _ := decimal.NewFromString(in.Price)
	return d
}

// SupplierRef returns the optional supplier reference. Call after Validate.
func (in *ItemInput) SupplierRef() *string {
	if in.Supplier == "" {
		return nil
	}
	s := in.Supplier
	return &s
}
