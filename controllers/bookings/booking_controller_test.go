package bookingController_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	bookingController "github.com/benjaminfth/krishinew/controllers/bookings"
	"github.com/benjaminfth/krishinew/models"
	"github.com/benjaminfth/krishinew/routes"
	"github.com/benjaminfth/krishinew/store"
)

type envelope struct {
	Status  int                        `json:"status"`
	Message string                     `json:"message"`
	Errors  map[string]string          `json:"errors"`
	Result  map[string]json.RawMessage `json:"result"`
}

func newTestApp() (*fiber.App, *store.Memory) {
	bookings := store.NewMemory()
	app := fiber.New()
	routes.BookingRoutes(app, bookingController.New(bookings))
	return app, bookings
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (int, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatal(err)
	}
	return resp.StatusCode, env
}

func bookingBody(userId primitive.ObjectID, total float64) map[string]interface{} {
	return map[string]interface{}{
		"user_id":           userId.Hex(),
		"product_name":      "Alphonso",
		"product_id":        primitive.NewObjectID().Hex(),
		"quantity":          3,
		"krishiBhavan":      "Kozhikode",
		"booking_date_time": "2026-09-02T10:00:00+05:30",
		"total_amount":      total,
	}
}

func TestCreateBookingListsEveryMissingField(t *testing.T) {
	c := qt.New(t)
	app, _ := newTestApp()

	code, env := doJSON(t, app, http.MethodPost, "/bookings", map[string]interface{}{
		"product_name": "Alphonso",
	})
	c.Assert(code, qt.Equals, http.StatusBadRequest)
	for _, field := range []string{"user_id", "product_id", "quantity", "krishiBhavan", "booking_date_time", "total_amount"} {
		c.Assert(env.Errors[field], qt.Not(qt.Equals), "", qt.Commentf("field %s", field))
	}
	_, named := env.Errors["product_name"]
	c.Assert(named, qt.IsFalse)
}

func TestCreateBookingDefaultsStatusToPending(t *testing.T) {
	c := qt.New(t)
	app, _ := newTestApp()
	userId := primitive.NewObjectID()

	code, _ := doJSON(t, app, http.MethodPost, "/bookings", bookingBody(userId, 240))
	c.Assert(code, qt.Equals, http.StatusCreated)

	code, env := doJSON(t, app, http.MethodGet, "/bookings?user_id="+userId.Hex(), nil)
	c.Assert(code, qt.Equals, http.StatusOK)

	var list []models.Booking
	c.Assert(json.Unmarshal(env.Result["bookings"], &list), qt.IsNil)
	c.Assert(list, qt.HasLen, 1)
	c.Assert(list[0].CollectionStatus, qt.Equals, "pending")
}

func TestBookingsAreImmutableSnapshots(t *testing.T) {
	c := qt.New(t)
	app, _ := newTestApp()
	userId := primitive.NewObjectID()

	code, _ := doJSON(t, app, http.MethodPost, "/bookings", bookingBody(userId, 240))
	c.Assert(code, qt.Equals, http.StatusCreated)

	second := bookingBody(userId, 112.5)
	second["collection_status"] = "collected"
	code, _ = doJSON(t, app, http.MethodPost, "/bookings", second)
	c.Assert(code, qt.Equals, http.StatusCreated)

	code, env := doJSON(t, app, http.MethodGet, "/bookings?user_id="+userId.Hex(), nil)
	c.Assert(code, qt.Equals, http.StatusOK)

	var list []models.Booking
	c.Assert(json.Unmarshal(env.Result["bookings"], &list), qt.IsNil)
	c.Assert(list, qt.HasLen, 2)
	c.Assert(list[0].TotalAmount, qt.Equals, 240.0)
	c.Assert(list[0].CollectionStatus, qt.Equals, "pending")
	c.Assert(list[1].TotalAmount, qt.Equals, 112.5)
	c.Assert(list[1].CollectionStatus, qt.Equals, "collected")
	c.Assert(list[1].BookingDateTime, qt.Equals, "2026-09-02T10:00:00+05:30")
}

func TestGetBookingsErrors(t *testing.T) {
	c := qt.New(t)
	app, _ := newTestApp()

	code, _ := doJSON(t, app, http.MethodGet, "/bookings", nil)
	c.Assert(code, qt.Equals, http.StatusBadRequest)

	code, _ = doJSON(t, app, http.MethodGet, "/bookings?user_id="+primitive.NewObjectID().Hex(), nil)
	c.Assert(code, qt.Equals, http.StatusNotFound)

	code, _ = doJSON(t, app, http.MethodGet, "/bookings?user_id=not-hex", nil)
	c.Assert(code, qt.Equals, http.StatusBadRequest)
}
