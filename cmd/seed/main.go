package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/zerobbreak/Inventory-application/config"
	"github.com/zerobbreak/Inventory-application/database"
	"gorm.io/gorm"
)

// One-shot seed tool. Takes the store connection string as its sole
// argument, clears the collections and inserts the fixed sample data.
func main() {
	help := flag.Bool("help", false, "Show help message")
	flag.Parse()

	if *help || flag.NArg() < 1 {
		showHelp()
		return
	}

	fmt.Println("Starting Database Seeding Tool")

	cfg := config.DatabaseConfig{URL: flag.Arg(0)}

	if err := database.Initialize(&cfg); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer database.Close()

	if err := database.CheckConnection(database.DB); err != nil {
		log.Fatal("Database connection check failed:", err)
	}

	if err := database.SeedData(database.DB); err != nil {
		log.Fatal("Failed to seed database:", err)
	}

	fmt.Println("\nDatabase Statistics:")
	showTableStats(database.DB)

	fmt.Println("\nSeeding completed successfully")
}

func showHelp() {
	fmt.Println("Database Seeding Tool")
	fmt.Println("=====================")
	fmt.Println("\nClears the categories, suppliers, items and orders")
	fmt.Println("collections and inserts the fixed sample data.")
	fmt.Println("\nUsage:")
	fmt.Println("  go run cmd/seed/main.go <connection-string>")
	fmt.Println("\nExample:")
	fmt.Println("  go run cmd/seed/main.go \"host=localhost user=postgres dbname=inventory\"")
}

func showTableStats(db *gorm.DB) {
	tables := []string{
		"categories", "suppliers", "items", "orders",
		"supplier_items", "order_items",
	}

	for _, table := range tables {
		var count int64
		db.Table(table).Count(&count)
		fmt.Printf("  %-20s: %d rows\n", table, count)
	}
}
