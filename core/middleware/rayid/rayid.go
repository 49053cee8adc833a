package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Header is the response header carrying the request's ray ID.
const Header = "X-Ray-ID"

// LocalsKey is the Fiber locals key where the ray ID is stored.
const LocalsKey = "ray_id"

// New creates a middleware that tags every request with a unique ray ID.
// An incoming X-Ray-ID header is honored so upstream proxies can thread
// their own trace through.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(Header)
		if rid == "" {
			rid = uuid.NewString()
		}

		c.Locals(LocalsKey, rid)
		c.Set(Header, rid)

		return c.Next()
	}
}
