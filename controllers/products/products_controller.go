package productController

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

var logger = zerolog.New(os.Stdout).With().Timestamp().Str("component", "products").Logger()

type Controller struct {
	Products store.Collection
}

func New(products store.Collection) *Controller {
	return &Controller{Products: products}
}

type addProductRequest struct {
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	PriceRegistered   *float64 `json:"price_registered"`
	PriceUnregistered *float64 `json:"price_unregistered"`
	Stock             int      `json:"stock"`
	Category          string   `json:"category"`
	KrishiBhavan      string   `json:"krishiBhavan"`
	ImageUrl          string   `json:"imageUrl"`
}

func (ct *Controller) AddProduct(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var reqBody addProductRequest
	if err := c.BodyParser(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Error parsing product data",
		})
	}

	if reqBody.Name == "" || reqBody.PriceRegistered == nil || reqBody.PriceUnregistered == nil || reqBody.Category == "" {
		return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Product name, prices, and category are required",
		})
	}

	product := models.Product{
		Name:              reqBody.Name,
		Description:       reqBody.Description,
		PriceRegistered:   *reqBody.PriceRegistered,
		PriceUnregistered: *reqBody.PriceUnregistered,
		Stock:             reqBody.Stock,
		Category:          reqBody.Category,
		KrishiBhavan:      reqBody.KrishiBhavan,
		ImageUrl:          reqBody.ImageUrl,
	}

	id, err := ct.Products.InsertOne(ctx, product)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error inserting product",
		})
	}

	logger.Info().Str("id", id.Hex()).Str("name", product.Name).Msg("product added")

	return c.Status(fiber.StatusCreated).JSON(responses.APIResponse{
		Status:  fiber.StatusCreated,
		Message: "Product added successfully",
		Result:  &fiber.Map{"id": id.Hex()},
	})
}

func (ct *Controller) GetAllProducts(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var products []models.Product
	if err := ct.Products.Find(ctx, bson.M{}, &products); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching products",
		})
	}
	if products == nil {
		products = []models.Product{}
	}

	return c.Status(fiber.StatusOK).JSON(responses.APIResponse{
		Status:  fiber.StatusOK,
		Message: "Fetched products",
		Result:  &fiber.Map{"products": products},
	})
}

// productPatch merges only fields present in the body; a nil field means
// "leave unchanged". An explicit empty string is written, so an admin can
// clear a description or image.
type productPatch struct {
	Name              *string  `json:"name"`
	Description       *string  `json:"description"`
	PriceRegistered   *float64 `json:"price_registered"`
	PriceUnregistered *float64 `json:"price_unregistered"`
	Stock             *int     `json:"stock"`
	Category          *string  `json:"category"`
	KrishiBhavan      *string  `json:"krishiBhavan"`
	ImageUrl          *string  `json:"imageUrl"`
}

func (p *productPatch) set() bson.M {
	set := bson.M{}
	if p.Name != nil {
		set["name"] = *p.Name
	}
	if p.Description != nil {
		set["description"] = *p.Description
	}
	if p.PriceRegistered != nil {
		set["price_registered"] = *p.PriceRegistered
	}
	if p.PriceUnregistered != nil {
		set["price_unregistered"] = *p.PriceUnregistered
	}
	if p.Stock != nil {
		set["stock"] = *p.Stock
	}
	if p.Category != nil {
		set["category"] = *p.Category
	}
	if p.KrishiBhavan != nil {
		set["krishiBhavan"] = *p.KrishiBhavan
	}
	if p.ImageUrl != nil {
		set["imageUrl"] = *p.ImageUrl
	}
	return set
}

func (ct *Controller) UpdateProduct(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectId, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid product ID",
		})
	}

	var patch productPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Error parsing product data",
		})
	}

	set := patch.set()
	if len(set) == 0 {
		// Mongo rejects an empty $set; an all-absent patch is a no-op but
		// unknown ids still have to 404.
		var existing models.Product
		if err := ct.Products.FindOne(ctx, bson.M{"_id": objectId}, &existing); err != nil {
			return c.Status(fiber.StatusNotFound).JSON(responses.APIResponse{
				Status:  fiber.StatusNotFound,
				Message: "Product not found",
			})
		}
		return c.Status(fiber.StatusOK).JSON(responses.APIResponse{
			Status:  fiber.StatusOK,
			Message: "Product updated successfully",
		})
	}

	matched, err := ct.Products.UpdateOne(ctx, bson.M{"_id": objectId}, set)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error updating product",
		})
	}
	if matched == 0 {
		return c.Status(fiber.StatusNotFound).JSON(responses.APIResponse{
			Status:  fiber.StatusNotFound,
			Message: "Product not found",
		})
	}

	logger.Info().Str("id", objectId.Hex()).Int("fields", len(set)).Msg("product updated")

	return c.Status(fiber.StatusOK).JSON(responses.APIResponse{
		Status:  fiber.StatusOK,
		Message: "Product updated successfully",
	})
}

// DeleteProduct removes the product. Cart and booking rows referencing it
// are left dangling; the cart read deals with the missing join.
func (ct *Controller) DeleteProduct(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectId, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid product ID",
		})
	}

	deleted, err := ct.Products.DeleteOne(ctx, bson.M{"_id": objectId})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error deleting product",
		})
	}
	if deleted == 0 {
		return c.Status(fiber.StatusNotFound).JSON(responses.APIResponse{
			Status:  fiber.StatusNotFound,
			Message: "Product not found",
		})
	}

	logger.Info().Str("id", objectId.Hex()).Msg("product deleted")

	return c.Status(fiber.StatusOK).JSON(responses.APIResponse{
		Status:  fiber.StatusOK,
		Message: "Product deleted successfully",
	})
}
