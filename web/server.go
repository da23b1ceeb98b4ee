package web

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"github.com/shopspring/decimal"
	"github.com/zerobbreak/Inventory-application/web/handlers"
	"github.com/zerobbreak/Inventory-application/web/middleware"
)

// Server represents the web server
type Server struct {
	app *fiber.App
}

// NewServer creates a new Fiber server
func NewServer() *Server {
	// Initialize template engine
	engine := html.New("./web/templates", ".html")
	engine.Reload(true) // Enable hot reload for development

	// Add custom template functions
	engine.AddFunc("formatDate", func(t time.Time) string {
		return t.Format("Jan 2, 2006")
	})
	engine.AddFunc("formatDateYMD", func(t time.Time) string {
		return t.Format("2006-01-02")
	})
	engine.AddFunc("formatPrice", func(amount decimal.Decimal) string {
		return "$" + amount.StringFixed(2)
	})
	engine.AddFunc("add", func(a, b int) int {
		return a + b
	})
	engine.AddFunc("sub", func(a, b int) int {
		return a - b
	})

	// Create Fiber app with template engine
	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Printf("ERROR [%s %s]: %v", c.Method(), c.Path(), err)

			// API callers get JSON
			if c.Get("Content-Type") == "application/json" {
				return c.Status(code).JSON(fiber.Map{
					"error": err.Error(),
				})
			}

			// HTML error page
			return c.Status(code).Render("pages/error", fiber.Map{
				"Title":           "Error",
				"Error":           err.Error(),
				"Code":            code,
				"SQLQueries":      c.Locals("SQLQueries"),
				"TotalSQLQueries": c.Locals("TotalSQLQueries"),
			}, "layouts/base")
		},
	})

	// Middleware
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))
	app.Use(cors.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path} ${error}\n",
	}))

	// Custom middleware to inject SQL logs into context
	app.Use(middleware.QueryDebugMiddleware())

	// Method override middleware for HTML forms
	app.Use(func(c *fiber.Ctx) error {
		if c.Method() == "POST" {
			method := c.FormValue("_method")
			if method != "" {
				c.Method(method)
			}
		}
		return c.Next()
	})

	// Static files
	app.Static("/static", "./web/static")

	// Setup routes
	setupRoutes(app)

	return &Server{app: app}
}

// Start starts the server
func (s *Server) Start(port string) error {
	log.Printf("Server starting on http://localhost:%s", port)
	return s.app.Listen(":" + port)
}

// App exposes the underlying Fiber app
func (s *Server) App() *fiber.App {
	return s.app
}

// setupRoutes configures all application routes
func setupRoutes(app *fiber.App) {
	// Home page
	app.Get("/", handlers.HomePage)

	// Debug endpoint for SQL logs
	app.Get("/api/debug/sql", handlers.GetSQLLogs)
	app.Delete("/api/debug/sql", handlers.ClearSQLLogs)

	// Items - create route must precede the :id routes
	app.Get("/items", handlers.ItemList)
	app.Get("/items/create", handlers.ItemCreateForm)
	app.Post("/items/create", handlers.ItemCreate)
	app.Get("/item/:id/update", handlers.ItemUpdateForm)
	app.Post("/item/:id/update", handlers.ItemUpdate)
	app.Get("/item/:id/delete", handlers.ItemDeleteForm)
	app.Post("/item/:id/delete", handlers.ItemDelete)
	app.Get("/item/:id", handlers.ItemDetail)

	// Categories
	app.Get("/categories", handlers.CategoryList)
	app.Get("/category/create", handlers.CategoryCreateForm)
	app.Post("/category/create", handlers.CategoryCreate)
	app.Get("/category/:id/update", handlers.CategoryUpdateForm)
	app.Post("/category/:id/update", handlers.CategoryUpdate)
	app.Get("/category/:id/delete", handlers.CategoryDeleteForm)
	app.Post("/category/:id/delete", handlers.CategoryDelete)
	app.Get("/category/:id", handlers.CategoryDetail)

	// Suppliers
	app.Get("/suppliers", handlers.SupplierList)
	app.Get("/suppliers/create", handlers.SupplierCreateForm)
	app.Post("/suppliers/create", handlers.SupplierCreate)
	app.Get("/supplier/:id/update", handlers.SupplierUpdateForm)
	app.Post("/supplier/:id/update", handlers.SupplierUpdate)
	app.Get("/supplier/:id/delete", handlers.SupplierDeleteForm)
	app.Post("/supplier/:id/delete", handlers.SupplierDelete)
	app.Get("/supplier/:id", handlers.SupplierDetail)

	// Orders
	app.Get("/orders", handlers.OrderList)
	app.Get("/orders/create", handlers.OrderCreateForm)
	app.Post("/orders/create", handlers.OrderCreate)
	app.Get("/order/:id/update", handlers.OrderUpdateForm)
	app.Post("/order/:id/update", handlers.OrderUpdate)
	app.Get("/order/:id/delete", handlers.OrderDeleteForm)
	app.Post("/order/:id/delete", handlers.OrderDelete)
	app.Get("/order/:id", handlers.OrderDetail)
}
