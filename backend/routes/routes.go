package routes

import (
	"questboard/backend/config"
	"questboard/backend/controllers"
	"questboard/backend/middleware"
	"questboard/backend/repository"
	"questboard/backend/services"

	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes registers every endpoint. redisClient may be nil, which disables rate limiting.
func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config, redisClient *redis.Client) {
	if redisClient != nil {
		app.Use(middleware.RateLimit(redisClient, cfg.RateLimitMax, cfg.RateLimitWindow))
	}

	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	boardRepo := repository.NewBoardRepository(db)

	healthController := controllers.NewHealthController()
	app.Get("/health", healthController.Health)

	// Auth routes
	authController := controllers.NewAuthController(services.NewAuthService(userRepo), cfg)
	app.Post("/users", authController.Register)
	app.Post("/login", authController.Login)
	app.Post("/logout", authController.Logout)

	// User routes
	userController := controllers.NewUserController(services.NewUserService(userRepo))
	app.Put("/profile", middleware.SessionRequired(cfg), userController.UpdateProfile)
	app.Get("/users", userController.ListUsers)
	app.Get("/users/:id", userController.GetUser)
	app.Put("/users/:id", userController.UpdateUser)
	app.Delete("/users/:id", userController.DeleteUser)
	app.Post("/point", userController.AddPoint)

	// Task routes
	taskController := controllers.NewTaskController(services.NewTaskService(taskRepo))
	tasks := app.Group("/tasks")
	tasks.Post("/", taskController.CreateTask)
	tasks.Get("/:user_id", taskController.ListUserTasks)
	tasks.Put("/:id/done", taskController.ToggleTask)
	tasks.Put("/:id", taskController.UpdateTask)
	tasks.Delete("/:id", taskController.DeleteTask)

	// Board routes
	boardController := controllers.NewBoardController(services.NewBoardService(boardRepo))
	boards := app.Group("/boards")
	boards.Post("/", boardController.CreatePost)
	boards.Get("/", boardController.ListPosts)
	boards.Put("/:id", boardController.UpdatePost)
	boards.Delete("/:id", boardController.DeletePost)

	// Quest routes
	questController := controllers.NewQuestController(services.NewQuestService(db))
	app.Get("/quests", questController.ListQuests)
	app.Get("/quests/:user_id", questController.ListOutstanding)
	app.Get("/checkquests/:user_id", questController.CheckQuests)
	app.Post("/init", questController.InitQuests)

	// Stats routes
	statsController := controllers.NewStatsController(services.NewStatsService(taskRepo))
	app.Get("/rate", statsController.GlobalRate)
	app.Get("/rate/:user_id", statsController.UserRate)
}
