package cartController

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/benjaminfth/krishinew/models"
	"github.com/benjaminfth/krishinew/responses"
	"github.com/benjaminfth/krishinew/store"
)

type Controller struct {
	Cart     store.Collection
	Products store.Collection
}

func New(cart, products store.Collection) *Controller {
	return &Controller{Cart: cart, Products: products}
}

type cartRequest struct {
	UserId    string `json:"user_id"`
	ProductId string `json:"product_id"`
	Quantity  *int   `json:"quantity"`
}

func (r *cartRequest) ids() (userId, productId primitive.ObjectID, err error) {
	userId, err = primitive.ObjectIDFromHex(r.UserId)
	if err != nil {
		return
	}
	productId, err = primitive.ObjectIDFromHex(r.ProductId)
	return
}

// AddItem inserts a new line unconditionally. Two adds for the same
// (user, product) pair produce two rows; lines are never merged.
func (ct *Controller) AddItem(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var reqBody cartRequest
	if err := c.BodyParser(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request format",
		})
	}
	if reqBody.UserId == "" || reqBody.ProductId == "" || reqBody.Quantity == nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
			Status:  fiber.StatusBadRequest,
			Message: "user_id, product_id and quantity are required",
		})
	}

	userId, productId, err := reqBody.ids()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid user or product ID",
		})
	}

	item := models.CartItem{
		UserId:    userId,
		ProductId: productId,
		Quantity:  *reqBody.Quantity,
	}

	id, err := ct.Cart.InsertOne(ctx, item)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to add item to cart",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(responses.APIResponse{
		Status:  fiber.StatusCreated,
		Message: "Item added to cart",
		Result:  &fiber.Map{"id": id.Hex()},
	})
}

// UpdateItem sets the quantity on the first row matching the pair. With
// duplicate rows only the first is touched; the asymmetry with AddItem is
// long-standing client-visible behavior.
func (ct *Controller) UpdateItem(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var reqBody cartRequest
	if err := c.BodyParser(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request format",
		})
	}
	if reqBody.UserId == "" || reqBody.ProductId == "" || reqBody.Quantity == nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
			Status:  fiber.StatusBadRequest,
			Message: "user_id, product_id and quantity are required",
		})
	}

	userId, productId, err := reqBody.ids()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid user or product ID",
		})
	}

	matched, err := ct.Cart.UpdateOne(ctx,
		bson.M{"user_id": userId, "product_id": productId},
		bson.M{"quantity": *reqBody.Quantity})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update cart",
		})
	}
	if matched == 0 {
		return c.Status(fiber.StatusNotFound).JSON(responses.APIResponse{
			Status:  fiber.StatusNotFound,
			Message: "Cart item not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.APIResponse{
		Status:  fiber.StatusOK,
		Message: "Cart item updated",
	})
}

func (ct *Controller) RemoveItem(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var reqBody cartRequest
	if err := c.BodyParser(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request format",
		})
	}
	if reqBody.UserId == "" || reqBody.ProductId == "" {
		return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
			Status:  fiber.StatusBadRequest,
			Message: "user_id and product_id are required",
		})
	}

	userId, productId, err := reqBody.ids()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid user or product ID",
		})
	}

	deleted, err := ct.Cart.DeleteOne(ctx, bson.M{"user_id": userId, "product_id": productId})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to remove item from cart",
		})
	}
	if deleted == 0 {
		return c.Status(fiber.StatusNotFound).JSON(responses.APIResponse{
			Status:  fiber.StatusNotFound,
			Message: "Cart item not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.APIResponse{
		Status:  fiber.StatusOK,
		Message: "Item removed from cart",
	})
}

func (ct *Controller) ClearCart(c *fiber.Ctx) error {
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

	deleted, err := ct.Cart.DeleteMany(ctx, bson.M{"user_id": userId})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to clear cart",
		})
	}
	if deleted == 0 {
		return c.Status(fiber.StatusNotFound).JSON(responses.APIResponse{
			Status:  fiber.StatusNotFound,
			Message: "Cart is already empty",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.APIResponse{
		Status:  fiber.StatusOK,
		Message: "Cart cleared",
		Result:  &fiber.Map{"removed": deleted},
	})
}

// GetCart joins each stored line against the live product document.
// Products can be deleted while still carted; such rows come back with
// zeroed product fields and available=false rather than vanishing or
// failing the whole read.
func (ct *Controller) GetCart(c *fiber.Ctx) error {
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

	var items []models.CartItem
	if err := ct.Cart.Find(ctx, bson.M{"user_id": userId}, &items); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching cart items",
		})
	}
	if len(items) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(responses.APIResponse{
			Status:  fiber.StatusNotFound,
			Message: "Cart is empty",
		})
	}

	entries := make([]models.CartEntry, 0, len(items))
	for _, item := range items {
		entry := models.CartEntry{
			ProductId: item.ProductId,
			Quantity:  item.Quantity,
		}

		var product models.Product
		err := ct.Products.FindOne(ctx, bson.M{"_id": item.ProductId}, &product)
		switch {
		case err == nil:
			entry.ProductName = product.Name
			entry.ProductPrice = product.PriceRegistered
			entry.ProductImageUrl = product.ImageUrl
			entry.ProductDescription = product.Description
			entry.ProductStock = product.Stock
			entry.KrishiBhavan = product.KrishiBhavan
			entry.Available = true
		case errors.Is(err, store.ErrNoDocuments):
			// Product deleted after being carted; keep the row visible.
			entry.Available = false
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
				Status:  fiber.StatusInternalServerError,
				Message: "Error fetching product details",
			})
		}

		entries = append(entries, entry)
	}

	return c.Status(fiber.StatusOK).JSON(responses.APIResponse{
		Status:  fiber.StatusOK,
		Message: "Fetched cart items",
		Result:  &fiber.Map{"items": entries},
	})
}
