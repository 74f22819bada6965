package main

import (
	"github.com/biosecret/go-tasks/app"
)

// @title Task API
// @version 1.0
// @description REST API quản lý user và task.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name x-access-token
func main() {
	// setup and run app
	err := app.SetupAndRunApp()
	if err != nil {
		panic(err)
	}
}
