package responses

import "github.com/gofiber/fiber/v2"

// AdminResponse is the envelope every API handler answers with.
type AdminResponse struct {
	Status  int        `json:"status"`
	Message string     `json:"message"`
	Result  *fiber.Map `json:"result"`
}
