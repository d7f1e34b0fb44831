package main

import (
	"log"

	"campus-events/app/config"
	"campus-events/app/routes/admin"
	"campus-events/app/routes/auth"
	"campus-events/app/routes/organizer"
	"campus-events/app/routes/student"
	"campus-events/app/services"
	"campus-events/app/store"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// errorHandler converts unhandled errors into JSON payloads.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"code":    code,
	})
}

func main() {
	cfg := config.Load()

	// Restore the data store from the last snapshot. With DATABASE_URL set the
	// snapshot lives in Postgres, otherwise in a local JSON file.
	var st *store.Store
	var err error
	if cfg.DatabaseURL != "" {
		saver, perr := store.OpenPostgres(cfg.DatabaseURL)
		if perr != nil {
			log.Fatal("Failed to connect to Postgres:", perr)
		}
		defer saver.Close()
		st, err = store.LoadPostgres(saver)
		log.Println("Using Postgres snapshot storage")
	} else {
		st, err = store.Load(cfg.DataFile, store.FileSaver{Path: cfg.DataFile})
		log.Printf("Using file snapshot storage at %s", cfg.DataFile)
	}
	if err != nil {
		log.Fatal("Failed to restore data store:", err)
	}

	notifier := services.LogNotifier{}
	qr := services.PayloadQR{}

	users := services.NewUserService(st)
	events := services.NewEventService(st, notifier)
	registrations := services.NewRegistrationService(st, notifier, qr)
	teams := services.NewTeamService(st)
	feedback := services.NewFeedbackService(st)
	reports := services.NewReportService(st)

	// Periodic snapshot flush as a safety net.
	services.StartSnapshotScheduler(st, cfg.SnapshotInterval)

	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Uploaded event images
	app.Static("/static/uploads", cfg.UploadDir)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	auth.SetupAuthRoutes(app, &auth.Handler{Users: users})

	admin.SetupAdminRoutes(app, &admin.Handler{
		Events:  events,
		Users:   users,
		Reports: reports,
	})

	organizer.SetupOrganizerRoutes(app, &organizer.Handler{
		Events:        events,
		Registrations: registrations,
		Teams:         teams,
		Reports:       reports,
		UploadDir:     cfg.UploadDir,
	})

	student.SetupStudentRoutes(app, &student.Handler{
		Events:        events,
		Registrations: registrations,
		Teams:         teams,
		Feedback:      feedback,
		Users:         users,
	})

	// Catch-all for unknown routes
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Not found")
	})

	log.Println("Server starting on :" + cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
