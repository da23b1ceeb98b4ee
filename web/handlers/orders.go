package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/zerobbreak/Inventory-application/database"
	"github.com/zerobbreak/Inventory-application/models"
)

// OrderList displays all orders sorted by ascending order date with
// items resolved; each row's total derives from the resolved items
func OrderList(c *fiber.Ctx) error {
	orders, err := database.ListOrders(database.GetDB())
	if err != nil {
		return err
	}

	return c.Render("pages/orders/list", fiber.Map{
		"Title":           "Orders",
		"Active":          "orders",
		"Orders":          orders,
		"SQLQueries":      c.Locals("SQLQueries"),
		"TotalSQLQueries": c.Locals("TotalSQLQueries"),
	}, "layouts/base")
}

// OrderDetail displays a single order with its items and total price
func OrderDetail(c *fiber.Ctx) error {
	order, err := database.GetOrder(database.GetDB(), c.Params("id"))
	if err != nil {
		return notFound(err, "Order not found")
	}

	return c.Render("pages/orders/view", fiber.Map{
		"Title":           "Order",
		"Active":          "orders",
		"Order":           order,
		"TotalPrice":      order.TotalPrice(),
		"SQLQueries":      c.Locals("SQLQueries"),
		"TotalSQLQueries": c.Locals("TotalSQLQueries"),
	}, "layouts/base")
}

// OrderCreateForm shows the form to create a new order
func OrderCreateForm(c *fiber.Ctx) error {
	items, err := database.ListItems(database.GetDB())
	if err != nil {
		return err
	}

	return c.Render("pages/orders/form", fiber.Map{
		"Title":        "Create an Order",
		"Active":       "orders",
		"SubmitButton": "Order now",
		"Items":        items,
		"Statuses":     models.OrderStatuses,
		"IsNew":        true,
	}, "layouts/base")
}

// OrderCreate validates the form and persists a new order. Item ids are
// saved without an existence check.
func OrderCreate(c *fiber.Ctx) error {
	var in models.OrderInput
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid form data")
	}
	in.Items = formValues(c, "items")

	if errs := in.Validate(); len(errs) > 0 {
		items, err := database.ListItems(database.GetDB())
		if err != nil {
			return err
		}
		return c.Render("pages/orders/form", fiber.Map{
			"Title":        "Create an Order",
			"Active":       "orders",
			"SubmitButton": "Order now",
			"Items":        items,
			"Statuses":     models.OrderStatuses,
			"Order":        in,
			"Errors":       errs,
			"IsNew":        true,
		}, "layouts/base")
	}

	order := models.Order{
		OrderDate: in.DateValue(),
		Status:    models.OrderStatus(in.Status),
		ItemIDs:   in.Items,
	}
	if err := database.CreateOrder(database.GetDB(), &order); err != nil {
		return err
	}

	return c.Redirect(order.URL())
}

// OrderUpdateForm shows the form to edit an order
func OrderUpdateForm(c *fiber.Ctx) error {
	db := database.GetDB()

	order, err := database.GetOrder(db, c.Params("id"))
	if err != nil {
		return notFound(err, "Order not found")
	}

	items, err := database.ListItems(db)
	if err != nil {
		return err
	}

	return c.Render("pages/orders/form", fiber.Map{
		"Title":        "Update Order",
		"Active":       "orders",
		"SubmitButton": "Update Order",
		"Order":        order,
		"Items":        items,
		"Statuses":     models.OrderStatuses,
		"IsNew":        false,
	}, "layouts/base")
}

// OrderUpdate validates the form and updates an order. Any accepted
// status may replace any other.
func OrderUpdate(c *fiber.Ctx) error {
	id := c.Params("id")

	var in models.OrderInput
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid form data")
	}
	in.Items = formValues(c, "items")

	if errs := in.Validate(); len(errs) > 0 {
		items, err := database.ListItems(database.GetDB())
		if err != nil {
			return err
		}
		return c.Render("pages/orders/form", fiber.Map{
			"Title":        "Update Order",
			"Active":       "orders",
			"SubmitButton": "Update Order",
			"Order":        in,
			"ID":           id,
			"Items":        items,
			"Statuses":     models.OrderStatuses,
			"Errors":       errs,
			"IsNew":        false,
		}, "layouts/base")
	}

	order := models.Order{
		OrderDate: in.DateValue(),
		Status:    models.OrderStatus(in.Status),
		ItemIDs:   in.Items,
	}
	if err := database.UpdateOrder(database.GetDB(), id, &order); err != nil {
		return notFound(err, "Order not found")
	}

	return c.Redirect(order.URL())
}

// OrderDeleteForm shows the delete confirmation page
func OrderDeleteForm(c *fiber.Ctx) error {
	order, err := database.GetOrder(database.GetDB(), c.Params("id"))
	if err != nil {
		return notFound(err, "Order not found")
	}

	return c.Render("pages/orders/delete", fiber.Map{
		"Title":  "Delete Order",
		"Active": "orders",
		"Order":  order,
	}, "layouts/base")
}

// OrderDelete deletes an order unconditionally
func OrderDelete(c *fiber.Ctx) error {
	if err := database.DeleteOrder(database.GetDB(), c.Params("id")); err != nil {
		return err
	}
	return c.Redirect("/orders")
}
