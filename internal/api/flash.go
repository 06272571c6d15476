package api

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// FlashPayload travels in a short-lived cookie between a failed POST and the
// page re-render that reports it.
type FlashPayload struct {
	Success          string            `json:"success,omitempty"`
	AuthError        string            `json:"auth_error,omitempty"`
	FormError        string            `json:"form_error,omitempty"`
	FieldErrors      map[string]string `json:"field_errors,omitempty"`
	LoginUsername    string            `json:"login_username,omitempty"`
	RegisterUsername string            `json:"register_username,omitempty"`
	RegisterEmail    string            `json:"register_email,omitempty"`
}

func (payload FlashPayload) empty() bool {
	return payload.Success == "" &&
		payload.AuthError == "" &&
		payload.FormError == "" &&
		len(payload.FieldErrors) == 0 &&
		payload.LoginUsername == "" &&
		payload.RegisterUsername == "" &&
		payload.RegisterEmail == ""
}

func setFlashCookie(c *fiber.Ctx, payload FlashPayload) {
	payload.Success = strings.TrimSpace(payload.Success)
	payload.AuthError = strings.TrimSpace(payload.AuthError)
	payload.FormError = strings.TrimSpace(payload.FormError)

	if payload.empty() {
		clearFlashCookie(c)
		return
	}

	serialized, err := json.Marshal(payload)
	if err != nil {
		return
	}
	encoded := base64.RawURLEncoding.EncodeToString(serialized)

	c.Cookie(&fiber.Cookie{
		Name:     flashCookieName,
		Value:    encoded,
		Path:     "/",
		HTTPOnly: true,
		Secure:   false,
		SameSite: "Lax",
		Expires:  time.Now().Add(5 * time.Minute),
	})
}

func popFlashCookie(c *fiber.Ctx) FlashPayload {
	raw := strings.TrimSpace(c.Cookies(flashCookieName))
	if raw == "" {
		return FlashPayload{}
	}
	clearFlashCookie(c)

	decoded, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return FlashPayload{}
	}

	payload := FlashPayload{}
	if err := json.Unmarshal(decoded, &payload); err != nil {
		return FlashPayload{}
	}
	return payload
}

func clearFlashCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Secure:   false,
		SameSite: "Lax",
		Expires:  time.Now().Add(-1 * time.Hour),
	})
}
