package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/zerobbreak/Inventory-application/database"
	"github.com/zerobbreak/Inventory-application/models"
	"golang.org/x/sync/errgroup"
)

// HomePage shows the stock count and the last three orders
func HomePage(c *fiber.Ctx) error {
	db := database.GetDB().WithContext(c.Context())

	var (
		stockCount int64
		lastOrders []models.Order
	)
	g := new(errgroup.Group)
	g.Go(func() error {
		var err error
		stockCount, err = database.CountItems(db)
		return err
	})
	g.Go(func() error {
		var err error
		lastOrders, err = database.ListRecentOrders(db, 3)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	return c.Render("pages/home", fiber.Map{
		"Title":           "Inventory Management System Home",
		"Active":          "home",
		"NumberOfStock":   stockCount,
		"LastOrders":      lastOrders,
		"SQLQueries":      c.Locals("SQLQueries"),
		"TotalSQLQueries": c.Locals("TotalSQLQueries"),
	}, "layouts/base")
}

// GetSQLLogs returns SQL logs as JSON
func GetSQLLogs(c *fiber.Ctx) error {
	queries := database.SQLLogger.GetRecentQueries(20)
	return c.JSON(queries)
}

// ClearSQLLogs clears all SQL logs
func ClearSQLLogs(c *fiber.Ctx) error {
	database.SQLLogger.Clear()
	return c.SendStatus(fiber.StatusOK)
}
