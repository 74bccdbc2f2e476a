package productInfoController

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/benjaminfth/krishinew/cache"
	"github.com/benjaminfth/krishinew/clients/gemini"
	"github.com/benjaminfth/krishinew/models"
	"github.com/benjaminfth/krishinew/responses"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Str("component", "productinfo").Logger()

const promptTemplate = `Provide a structured description of %s (%s) including:
- **Origin and History**
- **Climate and Growth Conditions**
- **Nutritional Value & Benefits**
- **Uses in Cooking & Daily Life**
Keep it clear, detailed, and informative.`

type Controller struct {
	Cache     *cache.DetailsCache
	Generator gemini.Generator
	Timeout   time.Duration
}

func New(detailsCache *cache.DetailsCache, generator gemini.Generator, timeout time.Duration) *Controller {
	return &Controller{Cache: detailsCache, Generator: generator, Timeout: timeout}
}

// GetProductDetails serves the AI-enriched record for a static catalog
// entry. The generated text is cached for the process lifetime; a cache hit
// returns the stored entry unchanged with no upstream call.
func (ct *Controller) GetProductDetails(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Query("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
			Status:  fiber.StatusBadRequest,
			Message: "id must be an integer",
		})
	}

	product, ok := models.FindStaticProduct(id)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(responses.APIResponse{
			Status:  fiber.StatusNotFound,
			Message: "Product not found",
		})
	}

	details, err := ct.Cache.Do(id, func() (models.ProductDetails, error) {
		ctx, cancel := context.WithTimeout(context.Background(), ct.Timeout)
		defer cancel()

		prompt := fmt.Sprintf(promptTemplate, product.Name, product.Type)
		text, err := ct.Generator.Generate(ctx, prompt)
		if err != nil {
			return models.ProductDetails{}, err
		}

		return models.ProductDetails{
			Id:           product.Id,
			Name:         product.Name,
			Image:        product.Image,
			Description:  product.Description,
			DetailedInfo: text,
		}, nil
	})
	if err != nil {
		logger.Error().Err(err).Int("id", id).Msg("description generation failed")
		return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to generate product description",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.APIResponse{
		Status:  fiber.StatusOK,
		Message: "Fetched product details",
		Result:  &fiber.Map{"product": details},
	})
}
