package routes

import (
	"github.com/gofiber/fiber/v2"

	cartController "github.com/benjaminfth/krishinew/controllers/cart"
)

func CartRoutes(app *fiber.App, ct *cartController.Controller) {
	app.Post("/cart", ct.AddItem)
	app.Put("/cart", ct.UpdateItem)
	// Register /cart/clear before /cart so the literal path wins.
	app.Delete("/cart/clear", ct.ClearCart)
	app.Delete("/cart", ct.RemoveItem)
	app.Get("/cart", ct.GetCart)
}
