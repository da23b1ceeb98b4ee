package database

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zerobbreak/Inventory-application/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection so every statement sees the same in-memory store.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, AutoMigrate(db))

	t.Cleanup(func() {
		for _, table := range []string{"order_items", "supplier_items", "orders", "items", "suppliers", "categories"} {
			db.Exec("DELETE FROM " + table)
		}
		sqlDB.Close()
	})

	return db
}

func mustCreateCategory(t *testing.T, db *gorm.DB, name, description string) models.Category {
	t.Helper()
	c := models.Category{Name: name, Description: description}
	require.NoError(t, CreateCategory(db, &c))
	return c
}

func mustCreateItem(t *testing.T, db *gorm.DB, name, categoryID string, price int64, supplierID *string) models.Item {
	t.Helper()
	i := models.Item{
		Name:        name,
		Description: name + " description",
		CategoryID:  categoryID,
		Price:       decimal.NewFromInt(price),
		SupplierID:  supplierID,
	}
	require.NoError(t, CreateItem(db, &i))
	return i
}

func mustCreateSupplier(t *testing.T, db *gorm.DB, company string, itemIDs []string) models.Supplier {
	t.Helper()
	s := models.Supplier{
		CompanyName:   company,
		ContactPerson: "Contact",
		Email:         "info@example.com",
		Phone:         "0123456789",
		Address:       "123 Main St, City, Country",
		ItemIDs:       itemIDs,
	}
	require.NoError(t, CreateSupplier(db, &s))
	return s
}

func TestCategoryRoundTrip(t *testing.T) {
	db := newTestDB(t)

	created := mustCreateCategory(t, db, "Electronics", "Electronic devices")
	require.NotEmpty(t, created.CategoryID)

	got, err := GetCategory(db, created.CategoryID)
	require.NoError(t, err)
	assert.Equal(t, "Electronics", got.Name)
	assert.Equal(t, "Electronic devices", got.Description)
	assert.Equal(t, "/category/"+created.CategoryID, got.URL())
}

func TestGetCategoryNotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := GetCategory(db, "no-such-id")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateCategory(t *testing.T) {
	db := newTestDB(t)
	c := mustCreateCategory(t, db, "Books", "Literary works")

	require.NoError(t, UpdateCategory(db, c.CategoryID, "Novels", "Long-form fiction"))

	got, err := GetCategory(db, c.CategoryID)
	require.NoError(t, err)
	assert.Equal(t, "Novels", got.Name)
	assert.Equal(t, "Long-form fiction", got.Description)
}

func TestUpdateMissingIDIsNotFound(t *testing.T) {
	db := newTestDB(t)

	// Uniform policy across every entity.
	assert.ErrorIs(t, UpdateCategory(db, "missing", "n", "d"), ErrNotFound)
	assert.ErrorIs(t, UpdateItem(db, "missing", &models.Item{
		Name: "n", Description: "d", CategoryID: "c", Price: decimal.NewFromInt(1),
	}), ErrNotFound)
	assert.ErrorIs(t, UpdateSupplier(db, "missing", &models.Supplier{
		CompanyName: "c", ContactPerson: "p", Email: "e@example.com",
		Phone: "0123456789", Address: "a",
	}), ErrNotFound)
	assert.ErrorIs(t, UpdateOrder(db, "missing", &models.Order{
		Status: models.OrderPending,
	}), ErrNotFound)
}

func TestDeleteIsUnconditional(t *testing.T) {
	db := newTestDB(t)

	// Deleting ids that never existed succeeds for every entity.
	assert.NoError(t, DeleteCategory(db, "missing"))
	assert.NoError(t, DeleteItem(db, "missing"))
	assert.NoError(t, DeleteSupplier(db, "missing"))
	assert.NoError(t, DeleteOrder(db, "missing"))
}

func TestItemRoundTripWithReferences(t *testing.T) {
	db := newTestDB(t)

	category := mustCreateCategory(t, db, "Electronics", "Devices")
	supplier := mustCreateSupplier(t, db, "ElectroTech", nil)

	created := mustCreateItem(t, db, "Laptop Pro X", category.CategoryID, 1200, &supplier.SupplierID)

	got, err := GetItem(db, created.ItemID)
	require.NoError(t, err)
	assert.Equal(t, "Laptop Pro X", got.Name)
	assert.True(t, got.Price.Equal(decimal.NewFromInt(1200)))
	require.NotNil(t, got.Category)
	assert.Equal(t, "Electronics", got.Category.Name)
	require.NotNil(t, got.Supplier)
	assert.Equal(t, "ElectroTech", got.Supplier.CompanyName)
}

func TestGetItemNotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := GetItem(db, "no-such-id")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestItemWithUnknownCategoryIsAccepted(t *testing.T) {
	db := newTestDB(t)

	// No existence check at write time; the reference just dangles.
	created := mustCreateItem(t, db, "Orphan", "never-existed", 10, nil)

	got, err := GetItem(db, created.ItemID)
	require.NoError(t, err)
	assert.Nil(t, got.Category)
	assert.Equal(t, "never-existed", got.CategoryID)
}

func TestDeleteCategoryLeavesDanglingReference(t *testing.T) {
	db := newTestDB(t)

	category := mustCreateCategory(t, db, "Toys", "Playful items")
	item := mustCreateItem(t, db, "Toy Set", category.CategoryID, 35, nil)

	require.NoError(t, DeleteCategory(db, category.CategoryID))

	// The item survives with its stored id intact; the reference now
	// resolves to nothing.
	got, err := GetItem(db, item.ItemID)
	require.NoError(t, err)
	assert.Equal(t, category.CategoryID, got.CategoryID)
	assert.Nil(t, got.Category)
}

func TestListItemsProjectsReferenceNames(t *testing.T) {
	db := newTestDB(t)

	category := mustCreateCategory(t, db, "Books", "Literary works")
	supplier := mustCreateSupplier(t, db, "HomeGoods Inc.", nil)
	mustCreateItem(t, db, "Bestseller Novel", category.CategoryID, 30, &supplier.SupplierID)
	mustCreateItem(t, db, "Atlas", category.CategoryID, 60, nil)

	items, err := ListItems(db)
	require.NoError(t, err)
	require.Len(t, items, 2)

	// Sorted by name.
	assert.Equal(t, "Atlas", items[0].Name)
	assert.Equal(t, "Bestseller Novel", items[1].Name)

	require.NotNil(t, items[1].Category)
	assert.Equal(t, "Books", items[1].Category.Name)
	require.NotNil(t, items[1].Supplier)
	assert.Equal(t, "HomeGoods Inc.", items[1].Supplier.CompanyName)
	assert.Nil(t, items[0].Supplier)
}

func TestSupplierRoundTripWithItemList(t *testing.T) {
	db := newTestDB(t)

	category := mustCreateCategory(t, db, "Electronics", "Devices")
	a := mustCreateItem(t, db, "Laptop", category.CategoryID, 1200, nil)
	b := mustCreateItem(t, db, "Phone", category.CategoryID, 800, nil)

	created := mustCreateSupplier(t, db, "ElectroTech", []string{b.ItemID, a.ItemID})

	got, err := GetSupplier(db, created.SupplierID)
	require.NoError(t, err)
	assert.Equal(t, "ElectroTech", got.CompanyName)

	// The embedded list keeps its stored order.
	require.Len(t, got.Items, 2)
	assert.Equal(t, "Phone", got.Items[0].Name)
	assert.Equal(t, "Laptop", got.Items[1].Name)
	assert.Equal(t, []string{b.ItemID, a.ItemID}, got.ItemIDs)
}

func TestSupplierDualItemViewsDiverge(t *testing.T) {
	db := newTestDB(t)

	category := mustCreateCategory(t, db, "Electronics", "Devices")
	embedded := mustCreateItem(t, db, "Embedded Item", category.CategoryID, 10, nil)

	supplier := mustCreateSupplier(t, db, "ElectroTech", []string{embedded.ItemID})

	// A different item points back at the supplier via its own field.
	pointingBack := mustCreateItem(t, db, "Pointing Item", category.CategoryID, 20, &supplier.SupplierID)

	got, err := GetSupplier(db, supplier.SupplierID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, embedded.ItemID, got.Items[0].ItemID)

	reverse, err := ListItemsBySupplier(db, supplier.SupplierID)
	require.NoError(t, err)
	require.Len(t, reverse, 1)
	assert.Equal(t, pointingBack.ItemID, reverse[0].ItemID)

	// The two views legitimately disagree and are never merged.
	assert.NotEqual(t, got.Items[0].ItemID, reverse[0].ItemID)
}

func TestSupplierUpdateReplacesItemList(t *testing.T) {
	db := newTestDB(t)

	category := mustCreateCategory(t, db, "Electronics", "Devices")
	a := mustCreateItem(t, db, "A", category.CategoryID, 1, nil)
	b := mustCreateItem(t, db, "B", category.CategoryID, 2, nil)

	supplier := mustCreateSupplier(t, db, "ElectroTech", []string{a.ItemID})

	update := models.Supplier{
		CompanyName:   "ElectroTech Ltd",
		ContactPerson: "Jane Smith",
		Email:         "sales@electrotech.com",
		Phone:         "0123456789",
		Address:       "456 Oak St, Town, Country",
		ItemIDs:       []string{b.ItemID},
	}
	require.NoError(t, UpdateSupplier(db, supplier.SupplierID, &update))

	got, err := GetSupplier(db, supplier.SupplierID)
	require.NoError(t, err)
	assert.Equal(t, "ElectroTech Ltd", got.CompanyName)
	assert.Equal(t, []string{b.ItemID}, got.ItemIDs)
}

func TestGetSupplierNotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := GetSupplier(db, "no-such-id")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOrderRoundTripAndTotal(t *testing.T) {
	db := newTestDB(t)

	category := mustCreateCategory(t, db, "Electronics", "Devices")
	laptop := mustCreateItem(t, db, "Laptop", category.CategoryID, 1200, nil)
	shirt := mustCreateItem(t, db, "Shirt", category.CategoryID, 50, nil)

	date := time.Date(2024, time.March, 7, 0, 0, 0, 0, time.UTC)
	order := models.Order{
		OrderDate: &date,
		Status:    models.OrderShipped,
		ItemIDs:   []string{laptop.ItemID, shirt.ItemID},
	}
	require.NoError(t, CreateOrder(db, &order))

	got, err := GetOrder(db, order.OrderID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderShipped, got.Status)
	require.Len(t, got.Items, 2)
	assert.Equal(t, "Laptop", got.Items[0].Name)
	assert.Equal(t, "Shirt", got.Items[1].Name)
	assert.True(t, got.TotalPrice().Equal(decimal.NewFromInt(1250)))
}

func TestOrderDefaultStatusPending(t *testing.T) {
	db := newTestDB(t)

	order := models.Order{ItemIDs: []string{"some-item"}}
	require.NoError(t, CreateOrder(db, &order))

	got, err := GetOrder(db, order.OrderID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderPending, got.Status)
}

func TestOrderWithDeletedItemSkipsIt(t *testing.T) {
	db := newTestDB(t)

	category := mustCreateCategory(t, db, "Toys", "Playful items")
	keep := mustCreateItem(t, db, "Keep", category.CategoryID, 35, nil)
	gone := mustCreateItem(t, db, "Gone", category.CategoryID, 99, nil)

	order := models.Order{
		Status:  models.OrderPending,
		ItemIDs: []string{keep.ItemID, gone.ItemID},
	}
	require.NoError(t, CreateOrder(db, &order))
	require.NoError(t, DeleteItem(db, gone.ItemID))

	got, err := GetOrder(db, order.OrderID)
	require.NoError(t, err)

	// The stored reference survives; the resolution silently drops it.
	assert.Equal(t, []string{keep.ItemID, gone.ItemID}, got.ItemIDs)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "Keep", got.Items[0].Name)
	assert.True(t, got.TotalPrice().Equal(decimal.NewFromInt(35)))
}

func TestGetOrderNotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := GetOrder(db, "no-such-id")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListOrdersSortedByDate(t *testing.T) {
	db := newTestDB(t)

	later := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	earlier := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	second := models.Order{OrderDate: &later, Status: models.OrderPending, ItemIDs: []string{"x"}}
	require.NoError(t, CreateOrder(db, &second))
	first := models.Order{OrderDate: &earlier, Status: models.OrderPending, ItemIDs: []string{"y"}}
	require.NoError(t, CreateOrder(db, &first))

	orders, err := ListOrders(db)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, first.OrderID, orders[0].OrderID)
	assert.Equal(t, second.OrderID, orders[1].OrderID)
}

func TestOrderUpdateReplacesStatusAndItems(t *testing.T) {
	db := newTestDB(t)

	category := mustCreateCategory(t, db, "Books", "Literary works")
	novel := mustCreateItem(t, db, "Novel", category.CategoryID, 30, nil)
	atlas := mustCreateItem(t, db, "Atlas", category.CategoryID, 60, nil)

	order := models.Order{Status: models.OrderPending, ItemIDs: []string{novel.ItemID}}
	require.NoError(t, CreateOrder(db, &order))

	// Delivered straight from Pending: no transition graph.
	update := models.Order{Status: models.OrderDelivered, ItemIDs: []string{atlas.ItemID}}
	require.NoError(t, UpdateOrder(db, order.OrderID, &update))

	got, err := GetOrder(db, order.OrderID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderDelivered, got.Status)
	assert.Equal(t, []string{atlas.ItemID}, got.ItemIDs)
}

func TestSeedData(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, SeedData(db))

	categories, err := ListCategories(db)
	require.NoError(t, err)
	assert.Len(t, categories, 5)

	suppliers, err := ListSuppliers(db)
	require.NoError(t, err)
	assert.Len(t, suppliers, 3)

	count, err := CountItems(db)
	require.NoError(t, err)
	assert.EqualValues(t, 5, count)

	orders, err := ListOrders(db)
	require.NoError(t, err)
	require.Len(t, orders, 5)
	for _, order := range orders {
		assert.NotEmpty(t, order.ItemIDs)
		assert.Len(t, order.Items, len(order.ItemIDs))
		assert.True(t, order.Status.Valid())
	}

	// Seeding again clears before inserting.
	require.NoError(t, SeedData(db))
	count, err = CountItems(db)
	require.NoError(t, err)
	assert.EqualValues(t, 5, count)
}
