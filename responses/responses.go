package responses

import "github.com/gofiber/fiber/v2"

// APIResponse is the single envelope every handler answers with. Errors
// carries field-level validation messages (registration, booking create);
// Message carries single-message outcomes. The two are never mixed.
type APIResponse struct {
	Status  int               `json:"status"`
	Message string            `json:"message,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
	Result  *fiber.Map        `json:"result,omitempty"`
}
