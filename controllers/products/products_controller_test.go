package productController_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	productController "github.com/benjaminfth/krishinew/controllers/products"
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
	products := store.NewMemory()
	app := fiber.New()
	routes.ProductRoutes(app, productController.New(products))
	return app, products
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

func addProduct(t *testing.T, app *fiber.App) string {
	t.Helper()
	code, env := doJSON(t, app, http.MethodPost, "/products", map[string]interface{}{
		"name":               "Nendran Banana",
		"description":        "Fresh from Wayanad",
		"price_registered":   55.0,
		"price_unregistered": 65.0,
		"stock":              40,
		"category":           "Banana",
		"krishiBhavan":       "Kalpetta",
		"imageUrl":           "https://example.com/nendran.jpg",
	})
	if code != http.StatusCreated {
		t.Fatalf("add product returned %d", code)
	}
	var id string
	if err := json.Unmarshal(env.Result["id"], &id); err != nil {
		t.Fatal(err)
	}
	return id
}

func TestAddProductMissingFields(t *testing.T) {
	c := qt.New(t)
	app, _ := newTestApp()

	code, env := doJSON(t, app, http.MethodPost, "/products", map[string]interface{}{
		"name": "Unpriced",
	})
	c.Assert(code, qt.Equals, http.StatusBadRequest)
	c.Assert(env.Message, qt.Equals, "Product name, prices, and category are required")
}

func TestListProductsSubstitutesDefaults(t *testing.T) {
	c := qt.New(t)
	app, products := newTestApp()

	// A document written without the optional fields, as older admin tools did.
	_, err := products.InsertOne(context.Background(), bson.M{
		"name":               "Moovandan Mango",
		"price_registered":   80.0,
		"price_unregistered": 95.0,
		"category":           "Mango",
	})
	c.Assert(err, qt.IsNil)

	code, env := doJSON(t, app, http.MethodGet, "/products", nil)
	c.Assert(code, qt.Equals, http.StatusOK)

	var list []models.Product
	c.Assert(json.Unmarshal(env.Result["products"], &list), qt.IsNil)
	c.Assert(list, qt.HasLen, 1)
	c.Assert(list[0].Description, qt.Equals, "")
	c.Assert(list[0].Stock, qt.Equals, 0)
	c.Assert(list[0].KrishiBhavan, qt.Equals, "")
	c.Assert(list[0].ImageUrl, qt.Equals, "")
	c.Assert(list[0].PriceRegistered, qt.Equals, 80.0)
}

func TestUpdateProductPartial(t *testing.T) {
	c := qt.New(t)
	app, products := newTestApp()
	id := addProduct(t, app)

	code, _ := doJSON(t, app, http.MethodPut, "/products/"+id, map[string]interface{}{
		"stock": 12,
	})
	c.Assert(code, qt.Equals, http.StatusOK)

	objectId, err := primitive.ObjectIDFromHex(id)
	c.Assert(err, qt.IsNil)
	var stored models.Product
	c.Assert(products.FindOne(context.Background(), bson.M{"_id": objectId}, &stored), qt.IsNil)
	c.Assert(stored.Stock, qt.Equals, 12)
	// Fields absent from the patch are untouched.
	c.Assert(stored.Name, qt.Equals, "Nendran Banana")
	c.Assert(stored.PriceRegistered, qt.Equals, 55.0)
}

func TestUpdateProductEmptyPatchLeavesDocument(t *testing.T) {
	c := qt.New(t)
	app, products := newTestApp()
	id := addProduct(t, app)

	code, _ := doJSON(t, app, http.MethodPut, "/products/"+id, map[string]interface{}{})
	c.Assert(code, qt.Equals, http.StatusOK)

	objectId, err := primitive.ObjectIDFromHex(id)
	c.Assert(err, qt.IsNil)
	var stored models.Product
	c.Assert(products.FindOne(context.Background(), bson.M{"_id": objectId}, &stored), qt.IsNil)
	c.Assert(stored.Name, qt.Equals, "Nendran Banana")
	c.Assert(stored.Stock, qt.Equals, 40)
}

func TestUpdateProductInvalidId(t *testing.T) {
	c := qt.New(t)
	app, _ := newTestApp()

	code, env := doJSON(t, app, http.MethodPut, "/products/not-a-hex-id", map[string]interface{}{
		"stock": 1,
	})
	c.Assert(code, qt.Equals, http.StatusBadRequest)
	c.Assert(env.Message, qt.Equals, "Invalid product ID")
}

func TestUpdateProductUnknownId(t *testing.T) {
	c := qt.New(t)
	app, _ := newTestApp()

	code, _ := doJSON(t, app, http.MethodPut, "/products/64b0c8c2a7e9f6a1b2c3d4e5", map[string]interface{}{
		"stock": 1,
	})
	c.Assert(code, qt.Equals, http.StatusNotFound)

	// The empty patch still 404s on unknown ids.
	code, _ = doJSON(t, app, http.MethodPut, "/products/64b0c8c2a7e9f6a1b2c3d4e5", map[string]interface{}{})
	c.Assert(code, qt.Equals, http.StatusNotFound)
}

func TestDeleteProduct(t *testing.T) {
	c := qt.New(t)
	app, products := newTestApp()
	id := addProduct(t, app)

	code, _ := doJSON(t, app, http.MethodDelete, "/products/"+id, nil)
	c.Assert(code, qt.Equals, http.StatusOK)
	c.Assert(products.Len(), qt.Equals, 0)

	code, _ = doJSON(t, app, http.MethodDelete, "/products/"+id, nil)
	c.Assert(code, qt.Equals, http.StatusNotFound)

	code, _ = doJSON(t, app, http.MethodDelete, "/products/garbage", nil)
	c.Assert(code, qt.Equals, http.StatusBadRequest)
}
