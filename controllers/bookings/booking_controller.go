package bookingController

import (
	"context"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/benjaminfth/krishinew/models"
	"github.com/benjaminfth/krishinew/responses"
	"github.com/benjaminfth/krishinew/store"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Str("component", "bookings").Logger()

type Controller struct {
	Bookings store.Collection
}

func New(bookings store.Collection) *Controller {
	return &Controller{Bookings: bookings}
}

type createBookingRequest struct {
	UserId           string   `json:"user_id"`
	ProductName      string   `json:"product_name"`
	ProductId        string   `json:"product_id"`
	Quantity         *int     `json:"quantity"`
	KrishiBhavan     string   `json:"krishiBhavan"`
	BookingDateTime  string   `json:"booking_date_time"`
	TotalAmount      *float64 `json:"total_amount"`
	CollectionStatus string   `json:"collection_status"`
}

// missing lists every absent required field so the client can show them
// all at once.
func (r *createBookingRequest) missing() map[string]string {
	errs := map[string]string{}
	if r.UserId == "" {
		errs["user_id"] = "user_id is required"
	}
	if r.ProductName == "" {
		errs["product_name"] = "product_name is required"
	}
	if r.ProductId == "" {
		errs["product_id"] = "product_id is required"
	}
	if r.Quantity == nil {
		errs["quantity"] = "quantity is required"
	}
	if r.KrishiBhavan == "" {
		errs["krishiBhavan"] = "krishiBhavan is required"
	}
	if r.BookingDateTime == "" {
		errs["booking_date_time"] = "booking_date_time is required"
	}
	if r.TotalAmount == nil {
		errs["total_amount"] = "total_amount is required"
	}
	return errs
}

// CreateBooking stores an immutable snapshot: product name and total come
// from the request as priced at booking time and are never re-derived.
func (ct *Controller) CreateBooking(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var reqBody createBookingRequest
	if err := c.BodyParser(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request format",
		})
	}

	if errs := reqBody.missing(); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
			Status: fiber.StatusBadRequest,
			Errors: errs,
		})
	}

	userId, err := primitive.ObjectIDFromHex(reqBody.UserId)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid user ID",
		})
	}
	productId, err := primitive.ObjectIDFromHex(reqBody.ProductId)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid product ID",
		})
	}

	status := reqBody.CollectionStatus
	if status == "" {
		status = models.CollectionStatusPending
	}

	booking := models.Booking{
		UserId:           userId,
		ProductName:      reqBody.ProductName,
		ProductId:        productId,
		Quantity:         *reqBody.Quantity,
		KrishiBhavan:     reqBody.KrishiBhavan,
		BookingDateTime:  reqBody.BookingDateTime,
		TotalAmount:      *reqBody.TotalAmount,
		CollectionStatus: status,
	}

	id, err := ct.Bookings.InsertOne(ctx, booking)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to create booking",
		})
	}

	logger.Info().Str("id", id.Hex()).Str("product", booking.ProductName).Msg("booking created")

	return c.Status(fiber.StatusCreated).JSON(responses.APIResponse{
		Status:  fiber.StatusCreated,
		Message: "Booking created successfully",
		Result:  &fiber.Map{"id": id.Hex()},
	})
}

// GetBookings returns the user's bookings verbatim; there is no join back
// to the catalog, the stored snapshot is the point.
func (ct *Controller) GetBookings(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userIdStr := c.Query("user_id")
	if userIdStr == "" {
		return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
			Status:  fiber.StatusBadRequest,
			Message: "user_id is required",
		})
	}

	userId, err := primitive.ObjectIDFromHex(userIdStr)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid user ID",
		})
	}

	var bookings []models.Booking
	if err := ct.Bookings.Find(ctx, bson.M{"user_id": userId}, &bookings); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching bookings",
		})
	}
	if len(bookings) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(responses.APIResponse{
			Status:  fiber.StatusNotFound,
			Message: "No bookings found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.APIResponse{
		Status:  fiber.StatusOK,
		Message: "Fetched bookings",
		Result:  &fiber.Map{"bookings": bookings},
	})
}
