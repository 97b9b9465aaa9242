package middleware

import (
	"page-assist/internal/validation"

	"github.com/gofiber/fiber/v2"
)

const (
	// HeaderClientID selects the caller's quiz session and bookmark library.
	HeaderClientID = "X-Client-ID"

	DefaultClientID = "default"

	clientIDLocal = "client_id"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// ValidateClientID validates the X-Client-ID header and stores it for handlers.
func (vm *ValidationMiddleware) ValidateClientID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		clientID := c.Get(HeaderClientID)
		if errors := vm.validator.ValidateClientID(clientID); len(errors) > 0 {
			return errors
		}
		if clientID == "" {
			clientID = DefaultClientID
		}
		c.Locals(clientIDLocal, clientID)
		return c.Next()
	}
}

// ValidateBookmarkPath validates the :folderId and :bookmarkId route params.
func (vm *ValidationMiddleware) ValidateBookmarkPath() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if errors := vm.validator.ValidateDeleteBookmark(c.Params("folderId"), c.Params("bookmarkId")); len(errors) > 0 {
			return errors
		}
		return c.Next()
	}
}

// ClientID returns the validated client id, or DefaultClientID.
func ClientID(c *fiber.Ctx) string {
	if id, ok := c.Locals(clientIDLocal).(string); ok && id != "" {
		return id
	}
	return DefaultClientID
}
