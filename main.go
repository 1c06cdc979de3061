package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"

	"school-portal/app/config"
	"school-portal/app/database"
	"school-portal/app/database/inmem"
	"school-portal/app/routes/auth"
	"school-portal/app/routes/student"
	"school-portal/app/routes/teacher"
)

// customErrorHandler turns every unrecovered error into the generic error
// page. Store errors mid-request are logged and surfaced as a 500; raw
// details never reach the browser.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Something went wrong. Please try again later."

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	} else {
		log.Printf("request failed: %s %s: %v", c.Method(), c.Path(), err)
	}

	return c.Status(code).Render("error", fiber.Map{
		"Title":        "Error - School Portal",
		"ErrorCode":    code,
		"ErrorMessage": message,
	})
}

func main() {
	cfg := config.Load()

	var store database.Store
	if cfg.StoreBackend == "memory" {
		store = inmem.Open()
		log.Println("Using in-memory store")
	} else {
		db, err := config.OpenDB(cfg.DatabaseURL)
		if err != nil {
			log.Fatal("Cannot establish database connection: ", err)
		}
		store = database.New(db)
	}

	if err := store.EnsureSchema(); err != nil {
		log.Fatal("Failed to create database schema: ", err)
	}

	engine := html.New("./views", ".html")

	app := fiber.New(fiber.Config{
		Views:        engine,
		ErrorHandler: customErrorHandler,
	})
	app.Use(logger.New())
	app.Use(cors.New())

	auth.SetupAuthRoutes(app, store)
	student.SetupStudentRoutes(app, store)
	teacher.SetupTeacherRoutes(app, store)

	// Catch-all route for 404 errors (must be last)
	app.Use(func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Page not found")
	})

	log.Println("Server starting on", cfg.Addr)
	log.Fatal(app.Listen(cfg.Addr))
}
