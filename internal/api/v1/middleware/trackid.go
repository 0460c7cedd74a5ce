package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const TrackIDHeader = "X-Track-ID"

// TrackIDMiddleware tags every request with a track id, reusing the caller's
// if one came in, so responses and logs can be correlated across services.
func TrackIDMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(TrackIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Locals("track_id", id)
		c.Set(TrackIDHeader, id)

		return c.Next()
	}
}
