package health

import (
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

type Handlers struct {
	Rdb *redis.Client
	DB  DBPinger
}

// GET /health
func (h *Handlers) JSON(c *fiber.Ctx) error {
	return c.JSON(Collect(c.Context(), h.Rdb, h.DB))
}
