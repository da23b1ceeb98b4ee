package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/zerobbreak/Inventory-application/database"
	"github.com/zerobbreak/Inventory-application/models"
	"golang.org/x/sync/errgroup"
)

// itemFormRecords loads the categories and suppliers the item form
// offers for selection. The lookups run concurrently; either failure
// fails the whole request.
func itemFormRecords(c *fiber.Ctx) ([]models.Category, []models.Supplier, error) {
	db := database.GetDB().WithContext(c.Context())

	var (
		categories []models.Category
		suppliers  []models.Supplier
	)
	g := new(errgroup.Group)
	g.Go(func() error {
		var err error
		categories, err = database.ListCategories(db)
		return err
	})
	g.Go(func() error {
		var err error
		suppliers, err = database.ListSuppliers(db)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return categories, suppliers, nil
}

// ItemList displays all items with name-only category and supplier
// projections
func ItemList(c *fiber.Ctx) error {
	items, err := database.ListItems(database.GetDB())
	if err != nil {
		return err
	}

	return c.Render("pages/items/list", fiber.Map{
		"Title":           "Products List",
		"Active":          "items",
		"Items":           items,
		"SQLQueries":      c.Locals("SQLQueries"),
		"TotalSQLQueries": c.Locals("TotalSQLQueries"),
	}, "layouts/base")
}

// ItemDetail displays a single item with both references resolved
func ItemDetail(c *fiber.Ctx) error {
	item, err := database.GetItem(database.GetDB(), c.Params("id"))
	if err != nil {
		return notFound(err, "Product doesn't exist")
	}

	return c.Render("pages/items/view", fiber.Map{
		"Title":           item.Name,
		"Active":          "items",
		"Item":            item,
		"SQLQueries":      c.Locals("SQLQueries"),
		"TotalSQLQueries": c.Locals("TotalSQLQueries"),
	}, "layouts/base")
}

// ItemCreateForm shows the form to create a new item
func ItemCreateForm(c *fiber.Ctx) error {
	categories, suppliers, err := itemFormRecords(c)
	if err != nil {
		return err
	}

	return c.Render("pages/items/form", fiber.Map{
		"Title":      "Create Item",
		"Active":     "items",
		"Categories": categories,
		"Suppliers":  suppliers,
		"IsNew":      true,
	}, "layouts/base")
}

// ItemCreate validates the form and persists a new item. The referenced
// category id is stored without an existence check.
func ItemCreate(c *fiber.Ctx) error {
	var in models.ItemInput
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid form data")
	}

	if errs := in.Validate(); len(errs) > 0 {
		categories, suppliers, err := itemFormRecords(c)
		if err != nil {
			return err
		}
		return c.Render("pages/items/form", fiber.Map{
			"Title":      "Create Item",
			"Active":     "items",
			"Categories": categories,
			"Suppliers":  suppliers,
			"Item":       in,
			"Errors":     errs,
			"IsNew":      true,
		}, "layouts/base")
	}

	item := models.Item{
		Name:        in.Name,
		Description: in.Description,
		CategoryID:  in.Category,
		Price:       in.PriceValue(),
		SupplierID:  in.SupplierRef(),
	}
	if err := database.CreateItem(database.GetDB(), &item); err != nil {
		return err
	}

	return c.Redirect(item.URL())
}

// ItemUpdateForm shows the form to edit an item
func ItemUpdateForm(c *fiber.Ctx) error {
	item, err := database.GetItem(database.GetDB(), c.Params("id"))
	if err != nil {
		return notFound(err, "Item not found")
	}

	categories, suppliers, err := itemFormRecords(c)
	if err != nil {
		return err
	}

	return c.Render("pages/items/form", fiber.Map{
		"Title":      "Update Item",
		"Active":     "items",
		"Categories": categories,
		"Suppliers":  suppliers,
		"Item":       item,
		"IsNew":      false,
	}, "layouts/base")
}

// ItemUpdate validates the form and updates an item
func ItemUpdate(c *fiber.Ctx) error {
	id := c.Params("id")

	var in models.ItemInput
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid form data")
	}

	if errs := in.Validate(); len(errs) > 0 {
		categories, suppliers, err := itemFormRecords(c)
		if err != nil {
			return err
		}
		return c.Render("pages/items/form", fiber.Map{
			"Title":      "Update Item",
			"Active":     "items",
			"Categories": categories,
			"Suppliers":  suppliers,
			"Item":       in,
			"ID":         id,
			"Errors":     errs,
			"IsNew":      false,
		}, "layouts/base")
	}

	item := models.Item{
		Name:        in.Name,
		Description: in.Description,
		CategoryID:  in.Category,
		Price:       in.PriceValue(),
		SupplierID:  in.SupplierRef(),
	}
	if err := database.UpdateItem(database.GetDB(), id, &item); err != nil {
		return notFound(err, "Item not found")
	}

	return c.Redirect(item.URL())
}

// ItemDeleteForm shows the delete confirmation page
func ItemDeleteForm(c *fiber.Ctx) error {
	item, err := database.GetItem(database.GetDB(), c.Params("id"))
	if err != nil {
		return notFound(err, "Item not found")
	}

	return c.Render("pages/items/delete", fiber.Map{
		"Title":  "Delete Item",
		"Active": "items",
		"Item":   item,
	}, "layouts/base")
}

// ItemDelete deletes an item unconditionally. Orders and supplier item
// lists referencing it keep their stored ids.
func ItemDelete(c *fiber.Ctx) error {
	if err := database.DeleteItem(database.GetDB(), c.Params("id")); err != nil {
		return err
	}
	return c.Redirect("/items")
}
