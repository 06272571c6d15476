package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/nutriform/nutriform/internal/services"
)

func (handler *Handler) ShowSurveyForm(c *fiber.Ctx) error {
	flash := popFlashCookie(c)
	return handler.render(c, "form", fiber.Map{
		"Title": "Nutriform | Survey",
		"Flash": flash,
	})
}

func (handler *Handler) SubmitSurvey(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	input := surveyInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.respondSurveyError(c, fiber.StatusBadRequest, "invalid input")
	}

	response, err := handler.surveyService.Submit(user.ID, services.SurveyFormInput{
		Sex:      input.Sex,
		Age:      input.Age,
		Height:   input.Height,
		Weight:   input.Weight,
		Activity: input.Activity,
		Meals:    input.Meals,
		Snacks:   input.Snacks,
	})
	if err != nil {
		var validationErr *services.ValidationError
		if errors.As(err, &validationErr) {
			return handler.respondSurveyError(c, fiber.StatusBadRequest, validationErr.Error())
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to store answers")
	}

	if acceptsJSON(c) {
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"ok": true, "id": response.ID})
	}
	return handler.render(c, "confirmation", fiber.Map{
		"Title":    "Nutriform | Answers Saved",
		"Response": response,
	})
}

func (handler *Handler) ShowAnswers(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	response, err := handler.surveyService.LatestByOwner(user.ID)
	if err != nil {
		if errors.Is(err, services.ErrSurveyNotFound) {
			if acceptsJSON(c) {
				return apiError(c, fiber.StatusNotFound, "no answers yet")
			}
			c.Status(fiber.StatusNotFound)
			return handler.render(c, "answers", fiber.Map{
				"Title":       "Nutriform | Your Answers",
				"HasResponse": false,
			})
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to load answers")
	}

	if acceptsJSON(c) {
		return c.JSON(fiber.Map{
			"sex":      response.Sex,
			"age":      response.Age,
			"height":   response.HeightCm,
			"weight":   response.WeightKg,
			"activity": response.Activity,
			"meals":    response.Meals,
			"snacks":   response.Snacks,
		})
	}
	return handler.render(c, "answers", fiber.Map{
		"Title":       "Nutriform | Your Answers",
		"HasResponse": true,
		"Response":    response,
	})
}

func (handler *Handler) respondSurveyError(c *fiber.Ctx, status int, message string) error {
	if acceptsJSON(c) {
		return apiError(c, status, message)
	}
	setFlashCookie(c, FlashPayload{FormError: message})
	return c.Redirect("/form", fiber.StatusSeeOther)
}
