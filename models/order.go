package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/zerobbreak/Inventory-application/validation"
	"gorm.io/gorm"
)

// OrderStatus type for order status
type OrderStatus string

const (
	OrderPending   OrderStatus = "Pending"
	OrderShipped   OrderStatus = "Shipped"
	OrderDelivered OrderStatus = "Delivered"
)

// OrderStatuses lists the accepted status values in form order
var OrderStatuses = []OrderStatus{OrderPending, OrderShipped, OrderDelivered}

// Valid reports whether the status is one of the accepted values. Any
// accepted value may replace any other; there is no transition graph.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderShipped, OrderDelivered:
		return true
	}
	return false
}

// Order represents orders table
type Order struct {
	OrderID   string      `gorm:"primaryKey;column:order_id;type:uuid" json:"order_id"`
	OrderDate *time.Time  `gorm:"type:date" json:"order_date,omitempty"`
	Status    OrderStatus `gorm:"type:varchar(20);not null;default:'Pending'" json:"status"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`

	// Stored item references (ordered, weak) and their resolution.
	ItemIDs []string `gorm:"-" json:"item_ids,omitempty"`
	Items   []Item   `gorm:"-" json:"items,omitempty"`
}

// TableName specifies the table name for Order
func (Order) TableName() string {
	return "orders"
}

// BeforeCreate assigns an opaque identifier and the default status
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.OrderID == "" {
		o.OrderID = uuid.NewString()
	}
	if o.Status == "" {
		o.Status = OrderPending
	}
	return nil
}

// URL returns the canonical location of the order
func (o *Order) URL() string {
	return "/order/" + o.OrderID
}

// TotalPrice sums the prices of the resolved items. Zero when the item
// list is empty or still unresolved.
func (o *Order) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Price)
	}
	return total
}

// OrderDateFormat renders the order date in a medium style, empty when
// no date is set
func (o *Order) OrderDateFormat() string {
	if o.OrderDate == nil {
		return ""
	}
	return o.OrderDate.Format("Jan 2, 2006")
}

// OrderItem represents order_items table, one ordered weak item
// reference per row
type OrderItem struct {
	OrderID  string `gorm:"primaryKey;column:order_id;type:uuid" json:"order_id"`
	Position int    `gorm:"primaryKey" json:"position"`
	ItemID   string `gorm:"column:item_id;type:uuid;not null" json:"item_id"`
}

// TableName specifies the table name for OrderItem
func (OrderItem) TableName() string {
	return "order_items"
}

// OrderInput carries the order form fields
type OrderInput struct {
	Items     []string `form:"-"`
	OrderDate string   `form:"order_date"`
	Status    string   `form:"status"`
}

// Validate sanitizes the fields in place and returns one error per
// offending field. Item ids are not checked for existence here; the
// live handlers save whatever ids the form submitted.
func (in *OrderInput) Validate() []validation.FieldError {
	v := validation.New()
	in.Items = v.List("items", in.Items, true, "Items are required")
	in.OrderDate = v.Field("order_date", in.OrderDate,
		validation.Trim,
		validation.Date("Invalid order date"),
	)
	in.Status = v.Field("status", in.Status,
		validation.Trim,
		validation.OneOf([]string{
			string(OrderPending), string(OrderShipped), string(OrderDelivered),
		}, "Invalid order status"),
		validation.Escape,
	)
	return v.Errors()
}

// DateValue returns the parsed optional order date. Call after Validate.
func (in *OrderInput) DateValue() *time.Time {
	if in.OrderDate == "" {
		return nil
	}
	t, _ := time.Parse("2006-01-02", in.OrderDate)
	return &t
}
