package routes

import (
	"github.com/gofiber/fiber/v2"

	bookingController "github.com/benjaminfth/krishinew/controllers/bookings"
)

func BookingRoutes(app *fiber.App, ct *bookingController.Controller) {
	app.Post("/bookings", ct.CreateBooking)
	app.Get("/bookings", ct.GetBookings)
}
