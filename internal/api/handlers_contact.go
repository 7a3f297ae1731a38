package api

import (
	"net/mail"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jobinkurian/parishdesk/internal/models"
)

type contactRequest struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Phone   string `json:"phone" form:"phone"`
	Subject string `json:"subject" form:"subject"`
	Message string `json:"message" form:"message"`
}

// SubmitContactMessage is the only unauthenticated write in the API.
func (handler *Handler) SubmitContactMessage(c *fiber.Ctx) error {
	request := contactRequest{}
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	request.Name = strings.TrimSpace(request.Name)
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
	request.Subject = strings.TrimSpace(request.Subject)
	request.Message = strings.TrimSpace(request.Message)

	if request.Name == "" {
		return apiError(c, fiber.StatusBadRequest, "name is required")
	}
	if request.Email == "" {
		return apiError(c, fiber.StatusBadRequest, "email is required")
	}
	if _, err := mail.ParseAddress(request.Email); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid email address")
	}
	if request.Subject == "" {
		return apiError(c, fiber.StatusBadRequest, "subject is required")
	}
	if request.Message == "" {
		return apiError(c, fiber.StatusBadRequest, "message is required")
	}

	message := models.ContactMessage{
		Reference: uuid.NewString(),
		Name:      request.Name,
		Email:     request.Email,
		Phone:     strings.TrimSpace(request.Phone),
		Subject:   request.Subject,
		Message:   request.Message,
		CreatedAt: time.Now(),
	}
	if err := handler.repos.Contacts.Create(c.UserContext(), &message); err != nil {
		handler.log.WithError(err).Error("failed to store contact message")
		return apiError(c, fiber.StatusInternalServerError, retryMessage)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"reference": message.Reference})
}

func (handler *Handler) ListContactMessages(c *fiber.Ctx) error {
	messages, err := handler.repos.Contacts.List(c.UserContext())
	if err != nil {
		handler.log.WithError(err).Error("failed to list contact messages")
		return c.JSON([]models.ContactMessage{})
	}
	return c.JSON(messages)
}

func (handler *Handler) DeleteContactMessage(c *fiber.Ctx) error {
	messageID, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid message id")
	}

	deleted, err := handler.repos.Contacts.Delete(c.UserContext(), messageID)
	if err != nil {
		handler.log.WithError(err).Error("failed to delete contact message")
		return apiError(c, fiber.StatusInternalServerError, retryMessage)
	}
	if !deleted {
		return apiError(c, fiber.StatusNotFound, "message not found")
	}
	return c.JSON(fiber.Map{"ok": true})
}
