package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RequestIDKey - locals key holding the request identifier
const RequestIDKey = "request_id"

// RequestIDHeader - header carrying the request identifier
const RequestIDHeader = "X-Request-ID"

// RequestID - middleware assigning each request an identifier. An incoming
// X-Request-ID is kept, otherwise a new UUID is generated.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Locals(RequestIDKey, requestID)
		c.Set(RequestIDHeader, requestID)

		return c.Next()
	}
}
