package routes

import (
	"log"

	"coursehub/backend/config"
	"coursehub/backend/controllers"
	"coursehub/backend/middleware"
	"coursehub/backend/storage"
	"coursehub/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// NewApp builds the Fiber app with the middleware stack and every route.
func NewApp(store storage.Storage, cfg *config.Config, logger *log.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Course Catalog",
		ErrorHandler: utils.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(compress.New())
	app.Use(middleware.LoggingMiddleware(logger, cfg.Colorize()))

	SetupRoutes(app, store, cfg, logger)
	return app
}

func SetupRoutes(app *fiber.App, store storage.Storage, cfg *config.Config, logger *log.Logger) {
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	authMiddleware := middleware.AuthMiddleware(cfg)

	// Auth routes
	authController := controllers.NewAuthController(store, cfg, logger)
	app.Post("/api/auth/register", authController.Register)

	// User routes
	userController := controllers.NewUserController(store, cfg, logger)
	app.Get("/api/users/:id", userController.GetUser)

	// Catalog routes
	coursesController := controllers.NewCoursesController(store, cfg, logger)
	lessonsController := controllers.NewLessonsController(store, cfg, logger)
	instructorsController := controllers.NewInstructorsController(store, cfg, logger)
	reviewsController := controllers.NewReviewsController(store, cfg, logger)
	progressController := controllers.NewProgressController(store, cfg, logger)

	courses := app.Group("/api/courses")
	courses.Get("/", coursesController.ListCourses)
	courses.Get("/:id", coursesController.GetCourseDetails)
	courses.Get("/:courseId/lessons", coursesController.GetCourseLessons)
	courses.Get("/:id/reviews", reviewsController.ListReviews)
	courses.Post("/:id/reviews", authMiddleware, reviewsController.AddReview)
	courses.Post("/:id/enroll", authMiddleware, progressController.Enroll)
	courses.Get("/:id/enrollment", authMiddleware, progressController.GetEnrollment)
	courses.Put("/:id/progress", authMiddleware, progressController.UpdateProgress)

	app.Get("/api/lessons/:id", lessonsController.GetLesson)

	app.Get("/api/instructors", instructorsController.ListInstructors)
	app.Get("/api/instructors/:id", instructorsController.GetInstructor)

	// Progress routes
	app.Get("/api/enrollments", authMiddleware, progressController.ListEnrollments)

	// Admin routes
	admin := app.Group("/api/admin", authMiddleware)
	admin.Post("/instructors", instructorsController.CreateInstructor)
	admin.Post("/courses", coursesController.CreateCourse)
	admin.Post("/courses/:id/sections", coursesController.AddSection)
	admin.Post("/courses/:id/lessons", coursesController.AddLesson)
}
