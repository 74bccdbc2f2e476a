package routes

import (
	"github.com/gofiber/fiber/v2"

	userController "github.com/benjaminfth/krishinew/controllers/users"
)

func UserRoutes(app *fiber.App, ct *userController.Controller) {
	app.Post("/register", ct.Register)
	app.Post("/login", ct.Login)
	app.Put("/update-profile", ct.UpdateProfile)
}
