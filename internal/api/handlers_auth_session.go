package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/nutriform/nutriform/internal/services"
)

func (handler *Handler) CreateAccount(c *fiber.Ctx) error {
	input := registerInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.respondRegisterError(c, fiber.StatusBadRequest, "invalid input", nil, input)
	}

	_, err := handler.authService.Register(services.RegistrationInput{
		Username:        input.Username,
		Email:           input.Email,
		Password:        input.Password1,
		ConfirmPassword: input.Password2,
	})
	if err != nil {
		var validationErr *services.ValidationError
		switch {
		case errors.As(err, &validationErr):
			fieldErrors := map[string]string{validationErr.Field: validationErr.Reason}
			return handler.respondRegisterError(c, fiber.StatusBadRequest, validationErr.Error(), fieldErrors, input)
		case errors.Is(err, services.ErrDuplicateUsername):
			fieldErrors := map[string]string{"username": "already taken"}
			return handler.respondRegisterError(c, fiber.StatusConflict, services.ErrDuplicateUsername.Error(), fieldErrors, input)
		case errors.Is(err, services.ErrDuplicateEmail):
			fieldErrors := map[string]string{"emailAddress": "already registered"}
			return handler.respondRegisterError(c, fiber.StatusConflict, services.ErrDuplicateEmail.Error(), fieldErrors, input)
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to create account")
		}
	}

	if acceptsJSON(c) {
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"ok": true})
	}
	setFlashCookie(c, FlashPayload{Success: "User created successfully!"})
	return c.Redirect("/home", fiber.StatusSeeOther)
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	input := loginInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.respondLoginError(c, fiber.StatusBadRequest, "invalid input", input)
	}

	user, err := handler.authService.Login(input.Username, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return handler.respondLoginError(c, fiber.StatusUnauthorized, "The username and password combo does not exist!", input)
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to log in")
	}

	if err := handler.setAuthCookie(c, &user); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	if acceptsJSON(c) {
		return c.JSON(fiber.Map{"ok": true, "user_id": user.ID})
	}
	setFlashCookie(c, FlashPayload{Success: "Login successful!"})
	return c.Redirect("/home", fiber.StatusSeeOther)
}

// Logout destroys the session unconditionally; logging out twice is fine.
func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	if acceptsJSON(c) {
		return c.JSON(fiber.Map{"ok": true})
	}
	setFlashCookie(c, FlashPayload{Success: "Logged out successfully!"})
	return c.Redirect("/home", fiber.StatusSeeOther)
}

func (handler *Handler) respondRegisterError(c *fiber.Ctx, status int, message string, fieldErrors map[string]string, input registerInput) error {
	if acceptsJSON(c) {
		return c.Status(status).JSON(fiber.Map{"error": message, "fields": fieldErrors})
	}
	setFlashCookie(c, FlashPayload{
		AuthError:        "Error with creating an account: " + message,
		FieldErrors:      fieldErrors,
		RegisterUsername: input.Username,
		RegisterEmail:    input.Email,
	})
	return c.Redirect("/createAccount", fiber.StatusSeeOther)
}

func (handler *Handler) respondLoginError(c *fiber.Ctx, status int, message string, input loginInput) error {
	if acceptsJSON(c) {
		return apiError(c, status, message)
	}
	setFlashCookie(c, FlashPayload{
		AuthError:     message,
		LoginUsername: input.Username,
	})
	return c.Redirect("/login", fiber.StatusSeeOther)
}
