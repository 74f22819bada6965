package config

import (
	_ "github.com/biosecret/go-tasks/docs"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

// AddSwaggerRoutes phục vụ tài liệu API tại /swagger/*
func AddSwaggerRoutes(app *fiber.App) {
	app.Get("/swagger/*", swagger.New(swagger.Config{
		Title:        "Task API Documentation",
		DocExpansion: "list",
	}))
}
