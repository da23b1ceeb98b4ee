package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/zerobbreak/Inventory-application/database"
	"github.com/zerobbreak/Inventory-application/models"
)

// SupplierList displays all suppliers
func SupplierList(c *fiber.Ctx) error {
	suppliers, err := database.ListSuppliers(database.GetDB())
	if err != nil {
		return err
	}

	return c.Render("pages/suppliers/list", fiber.Map{
		"Title":           "Suppliers",
		"Active":          "suppliers",
		"Suppliers":       suppliers,
		"SQLQueries":      c.Locals("SQLQueries"),
		"TotalSQLQueries": c.Locals("TotalSQLQueries"),
	}, "layouts/base")
}

// SupplierDetail displays a single supplier with both notions of its
// items: the embedded ordered list and the items whose supplier field
// points back at it. The two can diverge and are shown side by side.
func SupplierDetail(c *fiber.Ctx) error {
	db := database.GetDB()

	supplier, err := database.GetSupplier(db, c.Params("id"))
	if err != nil {
		return notFound(err, "Supplier not found")
	}

	referencingItems, err := database.ListItemsBySupplier(db, supplier.SupplierID)
	if err != nil {
		return err
	}

	return c.Render("pages/suppliers/view", fiber.Map{
		"Title":           "Supplier",
		"Active":          "suppliers",
		"Supplier":        supplier,
		"Items":           referencingItems,
		"SQLQueries":      c.Locals("SQLQueries"),
		"TotalSQLQueries": c.Locals("TotalSQLQueries"),
	}, "layouts/base")
}

// SupplierCreateForm shows the form to create a new supplier
func SupplierCreateForm(c *fiber.Ctx) error {
	items, err := database.ListItems(database.GetDB())
	if err != nil {
		return err
	}

	return c.Render("pages/suppliers/form", fiber.Map{
		"Title":  "Create Supplier",
		"Active": "suppliers",
		"Items":  items,
		"IsNew":  true,
	}, "layouts/base")
}

// SupplierCreate validates the form and persists a new supplier. A
// non-empty items selection is required here, unlike on update.
func SupplierCreate(c *fiber.Ctx) error {
	var in models.SupplierInput
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid form data")
	}
	in.Items = formValues(c, "items")

	if errs := in.Validate(true); len(errs) > 0 {
		items, err := database.ListItems(database.GetDB())
		if err != nil {
			return err
		}
		return c.Render("pages/suppliers/form", fiber.Map{
			"Title":    "Create Supplier",
			"Active":   "suppliers",
			"Items":    items,
			"Supplier": in,
			"Errors":   errs,
			"IsNew":    true,
		}, "layouts/base")
	}

	supplier := models.Supplier{
		CompanyName:   in.CompanyName,
		ContactPerson: in.ContactPerson,
		Email:         in.Email,
		Phone:         in.Phone,
		Address:       in.Address,
		ItemIDs:       in.Items,
	}
	if err := database.CreateSupplier(database.GetDB(), &supplier); err != nil {
		return err
	}

	return c.Redirect(supplier.URL())
}

// SupplierUpdateForm shows the form to edit a supplier
func SupplierUpdateForm(c *fiber.Ctx) error {
	db := database.GetDB()

	supplier, err := database.GetSupplier(db, c.Params("id"))
	if err != nil {
		return notFound(err, "Supplier not found")
	}

	items, err := database.ListItems(db)
	if err != nil {
		return err
	}

	return c.Render("pages/suppliers/form", fiber.Map{
		"Title":    "Update Supplier",
		"Active":   "suppliers",
		"Supplier": supplier,
		"Items":    items,
		"IsNew":    false,
	}, "layouts/base")
}

// SupplierUpdate validates the form and updates a supplier. The items
// selection is sanitized but not required here.
func SupplierUpdate(c *fiber.Ctx) error {
	id := c.Params("id")

	var in models.SupplierInput
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid form data")
	}
	in.Items = formValues(c, "items")

	if errs := in.Validate(false); len(errs) > 0 {
		items, err := database.ListItems(database.GetDB())
		if err != nil {
			return err
		}
		return c.Render("pages/suppliers/form", fiber.Map{
			"Title":    "Update Supplier",
			"Active":   "suppliers",
			"Supplier": in,
			"ID":       id,
			"Items":    items,
			"Errors":   errs,
			"IsNew":    false,
		}, "layouts/base")
	}

	supplier := models.Supplier{
		CompanyName:   in.CompanyName,
		ContactPerson: in.ContactPerson,
		Email:         in.Email,
		Phone:         in.Phone,
		Address:       in.Address,
		ItemIDs:       in.Items,
	}
	if err := database.UpdateSupplier(database.GetDB(), id, &supplier); err != nil {
		return notFound(err, "Supplier not found")
	}

	return c.Redirect(supplier.URL())
}

// SupplierDeleteForm shows the delete confirmation page
func SupplierDeleteForm(c *fiber.Ctx) error {
	supplier, err := database.GetSupplier(database.GetDB(), c.Params("id"))
	if err != nil {
		return notFound(err, "Supplier not found")
	}

	return c.Render("pages/suppliers/delete", fiber.Map{
		"Title":    "Delete Supplier",
		"Active":   "suppliers",
		"Supplier": supplier,
	}, "layouts/base")
}

// SupplierDelete deletes a supplier unconditionally. Items pointing at
// it keep their stored supplier id.
func SupplierDelete(c *fiber.Ctx) error {
	if err := database.DeleteSupplier(database.GetDB(), c.Params("id")); err != nil {
		return err
	}
	return c.Redirect("/suppliers")
}
