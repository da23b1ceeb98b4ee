package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/zerobbreak/Inventory-application/database"
)

// QueryDebugMiddleware injects the SQL queries executed during the
// request into locals for templates
func QueryDebugMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		beforeCount := len(database.SQLLogger.GetQueries())

		err := c.Next()

		afterQueries := database.SQLLogger.GetQueries()
		requestQueries := []database.QueryLog{}

		if len(afterQueries) > beforeCount {
			// Latest first, so this request's queries lead the slice
			diff := len(afterQueries) - beforeCount
			if diff > 0 && diff <= len(afterQueries) {
				requestQueries = afterQueries[:diff]
			}
		}

		c.Locals("SQLQueries", requestQueries)
		c.Locals("TotalSQLQueries", len(requestQueries))

		return err
	}
}
