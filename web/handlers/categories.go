package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/zerobbreak/Inventory-application/database"
	"github.com/zerobbreak/Inventory-application/models"
)

// CategoryList displays all categories
func CategoryList(c *fiber.Ctx) error {
	categories, err := database.ListCategories(database.GetDB())
	if err != nil {
		return err
	}

	return c.Render("pages/categories/list", fiber.Map{
		"Title":           "Categories List",
		"Active":          "categories",
		"Categories":      categories,
		"SQLQueries":      c.Locals("SQLQueries"),
		"TotalSQLQueries": c.Locals("TotalSQLQueries"),
	}, "layouts/base")
}

// CategoryDetail displays a single category
func CategoryDetail(c *fiber.Ctx) error {
	category, err := database.GetCategory(database.GetDB(), c.Params("id"))
	if err != nil {
		return notFound(err, "Category not found")
	}

	return c.Render("pages/categories/view", fiber.Map{
		"Title":           "Category Detail",
		"Active":          "categories",
		"Category":        category,
		"SQLQueries":      c.Locals("SQLQueries"),
		"TotalSQLQueries": c.Locals("TotalSQLQueries"),
	}, "layouts/base")
}

// CategoryCreateForm shows the form to create a new category
func CategoryCreateForm(c *fiber.Ctx) error {
	return c.Render("pages/categories/form", fiber.Map{
		"Title":  "Create Category",
		"Active": "categories",
		"IsNew":  true,
	}, "layouts/base")
}

// CategoryCreate validates the form and persists a new category
func CategoryCreate(c *fiber.Ctx) error {
	var in models.CategoryInput
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid form data")
	}

	if errs := in.Validate(); len(errs) > 0 {
		return c.Render("pages/categories/form", fiber.Map{
			"Title":    "Create Category",
			"Active":   "categories",
			"Category": in,
			"Errors":   errs,
			"IsNew":    true,
		}, "layouts/base")
	}

	category := models.Category{Name: in.Name, Description: in.Description}
	if err := database.CreateCategory(database.GetDB(), &category); err != nil {
		return err
	}

	return c.Redirect(category.URL())
}

// CategoryUpdateForm shows the form to edit a category
func CategoryUpdateForm(c *fiber.Ctx) error {
	category, err := database.GetCategory(database.GetDB(), c.Params("id"))
	if err != nil {
		return notFound(err, "Category not found")
	}

	return c.Render("pages/categories/form", fiber.Map{
		"Title":    "Update Category",
		"Active":   "categories",
		"Category": category,
		"IsNew":    false,
	}, "layouts/base")
}

// CategoryUpdate validates the form and updates a category
func CategoryUpdate(c *fiber.Ctx) error {
	id := c.Params("id")

	var in models.CategoryInput
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid form data")
	}

	if errs := in.Validate(); len(errs) > 0 {
		return c.Render("pages/categories/form", fiber.Map{
			"Title":    "Update Category",
			"Active":   "categories",
			"Category": in,
			"ID":       id,
			"Errors":   errs,
			"IsNew":    false,
		}, "layouts/base")
	}

	if err := database.UpdateCategory(database.GetDB(), id, in.Name, in.Description); err != nil {
		return notFound(err, "Category not found")
	}

	return c.Redirect("/categories")
}

// CategoryDeleteForm shows the delete confirmation page
func CategoryDeleteForm(c *fiber.Ctx) error {
	category, err := database.GetCategory(database.GetDB(), c.Params("id"))
	if err != nil {
		return notFound(err, "Category not found")
	}

	return c.Render("pages/categories/delete", fiber.Map{
		"Title":    "Delete Category",
		"Active":   "categories",
		"Category": category,
	}, "layouts/base")
}

// CategoryDelete deletes a category unconditionally. Items referencing
// it are left untouched.
func CategoryDelete(c *fiber.Ctx) error {
	if err := database.DeleteCategory(database.GetDB(), c.Params("id")); err != nil {
		return err
	}
	return c.Redirect("/categories")
}
