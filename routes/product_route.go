package routes

import (
	"github.com/gofiber/fiber/v2"

	productController "github.com/benjaminfth/krishinew/controllers/products"
)

func ProductRoutes(app *fiber.App, ct *productController.Controller) {
	app.Post("/products", ct.AddProduct)
	app.Get("/products", ct.GetAllProducts)
	app.Put("/products/:id", ct.UpdateProduct)
	app.Delete("/products/:id", ct.DeleteProduct)
}
