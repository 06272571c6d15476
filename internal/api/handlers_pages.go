package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) ShowHomePage(c *fiber.Ctx) error {
	// The landing page is public but nav state depends on the session, so
	// authentication failures are ignored here rather than redirected.
	if user, err := handler.authenticateRequest(c); err == nil {
		c.Locals(contextUserKey, user)
	}

	flash := popFlashCookie(c)
	return handler.render(c, "home", fiber.Map{
		"Title": "Nutriform",
		"Flash": flash,
	})
}
