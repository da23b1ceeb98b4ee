package database

import (
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"
	"github.com/zerobbreak/Inventory-application/models"
	"gorm.io/gorm"
)

// SeedData clears the collections and inserts the fixed sample data set
func SeedData(db *gorm.DB) error {
	log.Println("Clearing existing data...")
	if err := ClearData(db); err != nil {
		return err
	}

	suppliers, err := seedSuppliers(db)
	if err != nil {
		return err
	}

	categories, err := seedCategories(db)
	if err != nil {
		return err
	}

	items, err := seedItems(db, categories, suppliers)
	if err != nil {
		return err
	}

	if err := seedOrders(db, items); err != nil {
		return err
	}

	log.Println("Seed data inserted successfully")
	return nil
}

// ClearData deletes every record from the four collections, reference
// tables first
func ClearData(db *gorm.DB) error {
	tables := []string{
		"order_items",
		"supplier_items",
		"orders",
		"items",
		"suppliers",
		"categories",
	}
	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			return fmt.Errorf("clear table %s: %w", table, err)
		}
		log.Printf("  Cleared table: %s", table)
	}
	return nil
}

func seedSuppliers(db *gorm.DB) (map[string]models.Supplier, error) {
	data := []models.Supplier{
		{
			CompanyName:   "ElectroTech",
			ContactPerson: "John Doe",
			Email:         "info@electrotech.com",
			Phone:         "123-456-7890",
			Address:       "123 Main St, City, Country",
		},
		{
			CompanyName:   "FashionHub",
			ContactPerson: "Jane Smith",
			Email:         "info@fashionhub.com",
			Phone:         "987-654-3210",
			Address:       "456 Oak St, Town, Country",
		},
		{
			CompanyName:   "HomeGoods Inc.",
			ContactPerson: "Bob Johnson",
			Email:         "info@homegoods.com",
			Phone:         "555-123-4567",
			Address:       "789 Pine St, Village, Country",
		},
	}

	suppliers := make(map[string]models.Supplier, len(data))
	for i := range data {
		if err := CreateSupplier(db, &data[i]); err != nil {
			return nil, err
		}
		log.Printf("  Added supplier: %s", data[i].CompanyName)
		suppliers[data[i].CompanyName] = data[i]
	}
	return suppliers, nil
}

func seedCategories(db *gorm.DB) (map[string]models.Category, error) {
	data := []models.Category{
		{Name: "Electronics", Description: "Electronic devices and accessories"},
		{Name: "Clothing", Description: "Fashionable apparel"},
		{Name: "Home Appliances", Description: "Appliances for the home"},
		{Name: "Books", Description: "Literary works"},
		{Name: "Toys", Description: "Playful items for all ages"},
	}

	categories := make(map[string]models.Category, len(data))
	for i := range data {
		if err := CreateCategory(db, &data[i]); err != nil {
			return nil, err
		}
		log.Printf("  Added category: %s", data[i].Name)
		categories[data[i].Name] = data[i]
	}
	return categories, nil
}

func seedItems(db *gorm.DB, categories map[string]models.Category, suppliers map[string]models.Supplier) (map[string]models.Item, error) {
	type itemSeed struct {
		name        string
		description string
		category    string
		price       int64
		supplier    string
	}

	data := []itemSeed{
		{"Laptop Pro X", "High-performance laptop with advanced features", "Electronics", 1200, "ElectroTech"},
		{"Smartphone Galaxy S22", "Latest smartphone model with cutting-edge technology", "Electronics", 800, "ElectroTech"},
		{"Designer T-shirt", "Premium quality cotton T-shirt from a renowned designer", "Clothing", 50, "FashionHub"},
		{"Bestseller Novel", "Acclaimed novel by a bestselling author", "Books", 30, "HomeGoods Inc."},
		{"Educational Toy Set", "Fun and educational toy set for children", "Toys", 35, "HomeGoods Inc."},
	}

	items := make(map[string]models.Item, len(data))
	for _, seed := range data {
		category, ok := categories[seed.category]
		if !ok {
			return nil, fmt.Errorf("seed item %s: unknown category %s", seed.name, seed.category)
		}
		supplierID := suppliers[seed.supplier].SupplierID

		item := models.Item{
			Name:        seed.name,
			Description: seed.description,
			CategoryID:  category.CategoryID,
			Price:       decimal.NewFromInt(seed.price),
			SupplierID:  &supplierID,
		}
		if err := CreateItem(db, &item); err != nil {
			return nil, err
		}
		log.Printf("  Added item: %s", item.Name)
		items[item.Name] = item
	}
	return items, nil
}

func seedOrders(db *gorm.DB, items map[string]models.Item) error {
	type orderSeed struct {
		itemNames []string
		status    models.OrderStatus
	}

	data := []orderSeed{
		{[]string{"Laptop Pro X", "Designer T-shirt"}, models.OrderShipped},
		{[]string{"Smartphone Galaxy S22", "Bestseller Novel"}, models.OrderPending},
		{[]string{"Educational Toy Set"}, models.OrderDelivered},
		{[]string{"Bestseller Novel"}, models.OrderPending},
		{[]string{"Laptop Pro X", "Smartphone Galaxy S22"}, models.OrderShipped},
	}

	now := time.Now()
	for _, seed := range data {
		// Resolve every referenced item first; an unresolvable item
		// fails the order's creation.
		ids := make([]string, 0, len(seed.itemNames))
		for _, name := range seed.itemNames {
			item, ok := items[name]
			if !ok {
				return fmt.Errorf("seed order: item %q not found", name)
			}
			if _, err := GetItem(db, item.ItemID); err != nil {
				return fmt.Errorf("seed order: resolve item %q: %w", name, err)
			}
			ids = append(ids, item.ItemID)
		}

		orderDate := now
		order := models.Order{
			OrderDate: &orderDate,
			Status:    seed.status,
			ItemIDs:   ids,
		}
		if err := CreateOrder(db, &order); err != nil {
			return err
		}
		log.Printf("  Added order with status: %s", seed.status)
	}
	return nil
}
