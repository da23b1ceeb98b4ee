package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/zerobbreak/Inventory-application/validation"
	"gorm.io/gorm"
)

// Supplier represents suppliers table
type Supplier struct {
	SupplierID    string    `gorm:"primaryKey;column:supplier_id;type:uuid" json:"supplier_id"`
	CompanyName   string    `gorm:"type:varchar(200);not null" json:"company_name"`
	ContactPerson string    `gorm:"type:varchar(100);not null" json:"contact_person"`
	Email         string    `gorm:"type:varchar(100);not null" json:"email"`
	Phone         string    `gorm:"type:varchar(12);not null" json:"phone"`
	Address       string    `gorm:"type:text;not null" json:"address"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Stored item references (ordered, weak) and their resolution.
	// Independent of Item.SupplierID and never reconciled with it.
	ItemIDs []string `gorm:"-" json:"item_ids,omitempty"`
	Items   []Item   `gorm:"-" json:"items,omitempty"`
}

// TableName specifies the table name for Supplier
func (Supplier) TableName() string {
	return "suppliers"
}

// BeforeCreate assigns an opaque identifier
func (s *Supplier) BeforeCreate(tx *gorm.DB) error {
	if s.SupplierID == "" {
		s.SupplierID = uuid.NewString()
	}
	return nil
}

// URL returns the canonical location of the supplier
func (s *Supplier) URL() string {
	return "/supplier/" + s.SupplierID
}

// AddressFormatted returns the address with a shortened city segment
func (s *Supplier) AddressFormatted() string {
	return ShortenAddress(s.Address)
}

// ShortenAddress splits the address on ", " and, when more than two
// segments are present, truncates the second (usually the city) to its
// first 3 characters. Shorter segments are left as they are.
func ShortenAddress(address string) string {
	parts := strings.Split(address, ", ")
	if len(parts) > 2 {
		if r := []rune(parts[1]); len(r) > 3 {
			parts[1] = string(r[:3])
		}
	}
	return strings.Join(parts, ", ")
}

// SupplierItem represents supplier_items table, one ordered weak item
// reference per row
type SupplierItem struct {
	SupplierID string `gorm:"primaryKey;column:supplier_id;type:uuid" json:"supplier_id"`
	Position   int    `gorm:"primaryKey" json:"position"`
	ItemID     string `gorm:"column:item_id;type:uuid;not null" json:"item_id"`
}

// TableName specifies the table name for SupplierItem
func (SupplierItem) TableName() string {
	return "supplier_items"
}

// SupplierInput carries the supplier form fields
type SupplierInput struct {
	CompanyName   string   `form:"company_name"`
	ContactPerson string   `form:"contact_person"`
	Email         string   `form:"email"`
	Phone         string   `form:"phone"`
	Address       string   `form:"address"`
	Items         []string `form:"-"`
}

// Validate sanitizes the fields in place and returns one error per
// offending field. The items selection is required on create only; the
// update form sanitizes it without requiring it.
func (in *SupplierInput) Validate(requireItems bool) []validation.FieldError {
	v := validation.New()
	in.Items = v.List("items", in.Items, requireItems, "Items are required")
	in.CompanyName = v.Field("company_name", in.CompanyName,
		validation.Trim,
		validation.Required("Company Name is required"),
		validation.Escape,
	)
	in.ContactPerson = v.Field("contact_person", in.ContactPerson,
		validation.Trim,
		validation.Required("Contact Person is required"),
		validation.Escape,
	)
	in.Email = v.Field("email", in.Email,
		validation.Trim,
		validation.Email("Invalid email"),
		validation.Escape,
	)
	in.Phone = v.Field("phone", in.Phone,
		validation.Trim,
		validation.Phone("Invalid phone number"),
		validation.MaxLen(12, "Phone number must be at most 12 characters"),
		validation.Escape,
	)
	in.Address = v.Field("address", in.Address,
		validation.Trim,
		validation.Required("Address is required"),
		validation.Escape,
	)
	return v.Errors()
}
