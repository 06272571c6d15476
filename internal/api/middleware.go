package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nutriform/nutriform/internal/models"
)

const (
	authCookieName  = "nutriform_auth"
	flashCookieName = "nutriform_flash"
	contextUserKey  = "current_user"
)

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok
}
