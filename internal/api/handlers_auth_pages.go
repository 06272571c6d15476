package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) ShowLoginPage(c *fiber.Ctx) error {
	if _, err := handler.authenticateRequest(c); err == nil {
		return c.Redirect("/home", fiber.StatusSeeOther)
	}

	flash := popFlashCookie(c)
	return handler.render(c, "login", fiber.Map{
		"Title": "Nutriform | Login",
		"Flash": flash,
	})
}

func (handler *Handler) ShowCreateAccountPage(c *fiber.Ctx) error {
	if _, err := handler.authenticateRequest(c); err == nil {
		return c.Redirect("/home", fiber.StatusSeeOther)
	}

	flash := popFlashCookie(c)
	return handler.render(c, "create_account", fiber.Map{
		"Title": "Nutriform | Create Account",
		"Flash": flash,
	})
}
