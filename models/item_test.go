package models

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemURL(t *testing.T) {
	i := Item{ItemID: "abc"}
	assert.Equal(t, "/item/abc", i.URL())
}

func TestItemInputValidate(t *testing.T) {
	in := ItemInput{
		Name:        " Laptop Pro X ",
		Description: "High-performance laptop",
		Category:    "cat-1",
		Price:       "1200",
		Supplier:    "sup-1",
	}

	errs := in.Validate()
	assert.Empty(t, errs)
	assert.Equal(t, "Laptop Pro X", in.Name)
	assert.True(t, in.PriceValue().Equal(decimal.NewFromInt(1200)))

	ref := in.SupplierRef()
	require.NotNil(t, ref)
	assert.Equal(t, "sup-1", *ref)
}

func TestItemInputEmptyFields(t *testing.T) {
	in := ItemInput{}
	errs := in.Validate()

	// name, description, category, price; supplier is optional.
	require.Len(t, errs, 4)
	fields := map[string]bool{}
	for _, e := range errs {
		fields[e.Field] = true
	}
	for _, want := range []string{"name", "description", "category", "price"} {
		assert.True(t, fields[want], "missing error for %s", want)
	}
}

func TestItemInputWhitespaceOnlyRejected(t *testing.T) {
	in := ItemInput{
		Name:        "   ",
		Description: "\t",
		Category:    " ",
		Price:       "  ",
	}
	assert.Len(t, in.Validate(), 4)
}

func TestItemInputNameMaxLength(t *testing.T) {
	in := ItemInput{
		Name:        strings.Repeat("x", 101),
		Description: "desc",
		Category:    "cat-1",
		Price:       "10",
	}
	errs := in.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, "name", errs[0].Field)

	in.Name = strings.Repeat("x", 100)
	assert.Empty(t, in.Validate())
}

func TestItemInputSupplierOptional(t *testing.T) {
	in := ItemInput{
		Name:        "Bestseller Novel",
		Description: "Acclaimed novel",
		Category:    "cat-1",
		Price:       "30",
	}
	assert.Empty(t, in.Validate())
	assert.Nil(t, in.SupplierRef())
}

func TestItemInputRejectsNonNumericPrice(t *testing.T) {
	in := ItemInput{
		Name:        "Toy",
		Description: "desc",
		Category:    "cat-1",
		Price:       "cheap",
	}
	errs := in.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, "price", errs[0].Field)
}

func TestCategoryInputValidate(t *testing.T) {
	in := CategoryInput{Name: " Electronics ", Description: "Devices"}
	assert.Empty(t, in.Validate())
	assert.Equal(t, "Electronics", in.Name)

	empty := CategoryInput{Name: "  ", Description: ""}
	errs := empty.Validate()
	require.Len(t, errs, 2)
	assert.Equal(t, "name", errs[0].Field)
	assert.Equal(t, "description", errs[1].Field)
}
