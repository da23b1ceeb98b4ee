package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/zerobbreak/Inventory-application/database"
)

// formValues returns every submitted value for a repeated form field
// (multi-select boxes post one value per selection)
func formValues(c *fiber.Ctx, key string) []string {
	raw := c.Request().PostArgs().PeekMulti(key)
	values := make([]string, 0, len(raw))
	for _, v := range raw {
		values = append(values, string(v))
	}
	return values
}

// notFound maps a store miss to a 404 page; other errors propagate
func notFound(err error, msg string) error {
	if errors.Is(err, database.ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, msg)
	}
	return err
}
