package routes

import (
	"github.com/gofiber/fiber/v2"

	productInfoController "github.com/benjaminfth/krishinew/controllers/productinfo"
)

func ProductInfoRoutes(app *fiber.App, ct *productInfoController.Controller) {
	app.Get("/get_product_details", ct.GetProductDetails)
}
