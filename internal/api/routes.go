package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)

	app.Get("/", handler.ShowHomePage)
	app.Get("/home", handler.ShowHomePage)

	app.Get("/createAccount", handler.ShowCreateAccountPage)
	app.Post("/createAccount", handler.CreateAccount)
	app.Get("/login", handler.ShowLoginPage)
	app.Post("/login", handler.Login)
	app.Get("/logout", handler.Logout)

	app.Get("/form", handler.AuthRequired, handler.ShowSurveyForm)
	app.Post("/form", handler.AuthRequired, handler.SubmitSurvey)
	app.Get("/answers", handler.AuthRequired, handler.ShowAnswers)
	app.Get("/answers/export", handler.AuthRequired, handler.ExportAnswersCSV)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
