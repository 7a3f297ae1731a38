package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jobinkurian/parishdesk/internal/services"
)

type credentialsInput struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	credentials := credentialsInput{}
	if err := c.BodyParser(&credentials); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	credentials.Username = strings.TrimSpace(credentials.Username)

	if credentials.Username == "" || credentials.Password == "" {
		return apiError(c, fiber.StatusBadRequest, services.ErrMissingCredentials.Error())
	}

	user, err := handler.auth.SignIn(c.UserContext(), credentials.Username, credentials.Password)
	if err != nil {
		if handler.metrics != nil {
			handler.metrics.CountSignInFailure()
		}
		return apiError(c, fiber.StatusUnauthorized, services.ErrInvalidCredentials.Error())
	}

	if err := handler.setAuthCookie(c, &user); err != nil {
		handler.log.WithError(err).Error("failed to create session")
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	return c.JSON(fiber.Map{
		"user":    user,
		"isAdmin": user.IsAdmin,
	})
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}

// Me returns the signed-in user's snapshot, re-read from storage.
func (handler *Handler) Me(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(fiber.Map{
		"user":    user,
		"isAdmin": user.IsAdmin,
	})
}
