package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/zerobbreak/Inventory-application/config"
	"github.com/zerobbreak/Inventory-application/database"
)

func main() {
	help := flag.Bool("help", false, "Show help message")
	flag.Parse()

	if *help {
		showHelp()
		return
	}

	fmt.Println("Database Migration Tool")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	if err := database.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer database.Close()

	if err := database.CheckConnection(database.DB); err != nil {
		log.Fatal("Database connection check failed:", err)
	}

	if err := database.AutoMigrate(database.DB); err != nil {
		log.Fatal("Migration failed:", err)
	}

	fmt.Println("Migration completed successfully")
}

func showHelp() {
	fmt.Println("Database Migration Tool")
	fmt.Println("=======================")
	fmt.Println("\nCreates all tables and indexes. Reference columns get no")
	fmt.Println("foreign keys: record references are weak by design.")
	fmt.Println("\nUsage:")
	fmt.Println("  go run cmd/migrate/main.go")
	fmt.Println("\nConnection settings come from the environment (.env).")
}
