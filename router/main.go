package router

import (
	"github.com/biosecret/go-tasks/handlers"
	mw "github.com/biosecret/go-tasks/middleware"
	"github.com/gofiber/fiber/v2"
)

// SetupRoutes khai báo route; auth là middleware xác thực token.
// Thứ tự trên mỗi route: xác thực -> kiểm tra dữ liệu -> handler.
func SetupRoutes(app *fiber.App, h *handlers.Handler, auth fiber.Handler) {
	app.Get("/health", h.HandleHealthCheck)

	users := app.Group("/users")
	users.Post("/Login", mw.ValidateData("loginSchema"), h.Login)
	users.Post("/", auth, mw.ValidateData("addUserSchema"), h.CreateUser)
	users.Get("/", auth, mw.ValidateData("getUsersSchema"), h.ListUsers)
	users.Put("/", auth, mw.ValidateData("updateUserSchema"), h.UpdateUser)
	users.Delete("/", auth, mw.ValidateData("deleteUserSchema"), h.DeleteUser)

	tasks := app.Group("/tasks")
	tasks.Post("/", auth, mw.ValidateData("addTaskSchema"), h.CreateTask)
	tasks.Get("/", auth, mw.ValidateData("getTasksSchema"), h.ListTasks)
	tasks.Get("/:userId", auth, mw.ValidateData("getTasksByUserSchema"), h.ListUserTasks)
	tasks.Put("/", auth, mw.ValidateData("updateTaskSchema"), h.UpdateTask)
	tasks.Delete("/", auth, mw.ValidateData("deleteTaskSchema"), h.DeleteTask)

	app.Get("/status/:code", auth, mw.ValidateData("getStatusSchema"), h.GetStatus)
	app.Get("/priority/:code", auth, mw.ValidateData("getPrioritySchema"), h.GetPriority)

	app.Get("/events", auth, h.HandleEvents)
}
