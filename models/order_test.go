package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderTotalPrice(t *testing.T) {
	order := Order{
		Items: []Item{
			{Price: decimal.NewFromInt(1200)},
			{Price: decimal.NewFromInt(50)},
		},
	}
	assert.True(t, order.TotalPrice().Equal(decimal.NewFromInt(1250)))
}

func TestOrderTotalPriceEmpty(t *testing.T) {
	order := Order{}
	assert.True(t, order.TotalPrice().IsZero())

	// Unresolved references contribute nothing.
	order.ItemIDs = []string{"dangling-1", "dangling-2"}
	assert.True(t, order.TotalPrice().IsZero())
}

func TestOrderDateFormat(t *testing.T) {
	d := time.Date(2024, time.March, 7, 0, 0, 0, 0, time.UTC)
	order := Order{OrderDate: &d}
	assert.Equal(t, "Mar 7, 2024", order.OrderDateFormat())

	assert.Equal(t, "", (&Order{}).OrderDateFormat())
}

func TestOrderStatusValid(t *testing.T) {
	for _, s := range []OrderStatus{OrderPending, OrderShipped, OrderDelivered} {
		assert.True(t, s.Valid())
	}
	assert.False(t, OrderStatus("Cancelled").Valid())
	assert.False(t, OrderStatus("").Valid())
}

func TestOrderURL(t *testing.T) {
	o := Order{OrderID: "xyz"}
	assert.Equal(t, "/order/xyz", o.URL())
}

func TestOrderInputValidate(t *testing.T) {
	in := OrderInput{
		Items:     []string{"item-1", "item-2"},
		OrderDate: "2024-03-07",
		Status:    "Shipped",
	}

	errs := in.Validate()
	assert.Empty(t, errs)

	date := in.DateValue()
	require.NotNil(t, date)
	assert.Equal(t, "2024-03-07", date.Format("2006-01-02"))
}

func TestOrderInputStatusAcceptsAllThree(t *testing.T) {
	// Any accepted value may be set regardless of the current one;
	// there is no transition graph.
	for _, status := range []string{"Pending", "Shipped", "Delivered"} {
		in := OrderInput{Items: []string{"item-1"}, Status: status}
		assert.Empty(t, in.Validate(), "status %s should be accepted", status)
	}
}

func TestOrderInputRejectsBadStatus(t *testing.T) {
	in := OrderInput{Items: []string{"item-1"}, Status: "Cancelled"}
	errs := in.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, "status", errs[0].Field)
	assert.Equal(t, "Invalid order status", errs[0].Message)
}

func TestOrderInputRequiresItems(t *testing.T) {
	in := OrderInput{Status: "Pending"}
	errs := in.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, "items", errs[0].Field)
}

func TestOrderInputDateOptional(t *testing.T) {
	in := OrderInput{Items: []string{"item-1"}, Status: "Pending"}
	assert.Empty(t, in.Validate())
	assert.Nil(t, in.DateValue())
}

func TestOrderInputRejectsBadDate(t *testing.T) {
	in := OrderInput{Items: []string{"item-1"}, OrderDate: "yesterday", Status: "Pending"}
	errs := in.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, "order_date", errs[0].Field)
}
