package api

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jobinkurian/parishdesk/internal/models"
	"gorm.io/gorm"
)

type mediaRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Kind        string `json:"kind"`
	Payload     string `json:"payload"`
	Filename    string `json:"filename"`
}

func (request *mediaRequest) validate() error {
	request.Title = strings.TrimSpace(request.Title)
	request.Category = strings.ToLower(strings.TrimSpace(request.Category))
	request.Kind = strings.ToLower(strings.TrimSpace(request.Kind))
	request.Payload = strings.TrimSpace(request.Payload)
	request.Filename = strings.TrimSpace(request.Filename)

	if request.Title == "" {
		return errors.New("title is required")
	}
	if !models.IsValidMediaCategory(request.Category) {
		return errors.New("unknown media category")
	}
	if !models.IsValidMediaKind(request.Kind) {
		return errors.New("media kind must be photo or video")
	}
	if request.Payload == "" && request.Filename == "" {
		return errors.New("payload or filename is required")
	}
	return nil
}

func (handler *Handler) ListMedia(c *fiber.Ctx) error {
	items, err := handler.repos.Media.List(c.UserContext(), c.Query("category"), c.Query("kind"))
	if err != nil {
		handler.log.WithError(err).Error("failed to list media")
		return c.JSON([]models.MediaItem{})
	}
	return c.JSON(items)
}

func (handler *Handler) GetMediaItem(c *fiber.Ctx) error {
	itemID, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid media id")
	}

	item, err := handler.repos.Media.FindByID(c.UserContext(), itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apiError(c, fiber.StatusNotFound, "media item not found")
		}
		handler.log.WithError(err).Error("failed to load media item")
		return apiError(c, fiber.StatusInternalServerError, retryMessage)
	}
	return c.JSON(item)
}

func (handler *Handler) CreateMediaItem(c *fiber.Ctx) error {
	request := mediaRequest{}
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if err := request.validate(); err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	item := models.MediaItem{
		Title:       request.Title,
		Description: strings.TrimSpace(request.Description),
		Category:    request.Category,
		Kind:        request.Kind,
		Payload:     request.Payload,
		Filename:    request.Filename,
		CreatedAt:   time.Now(),
	}
	if item.Filename == "" {
		item.Filename = generatedMediaFilename(item.Kind)
	}

	if err := handler.repos.Media.Create(c.UserContext(), &item); err != nil {
		handler.log.WithError(err).Error("failed to create media item")
		return apiError(c, fiber.StatusInternalServerError, retryMessage)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

func (handler *Handler) UpdateMediaItem(c *fiber.Ctx) error {
	itemID, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid media id")
	}

	request := mediaRequest{}
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if err := request.validate(); err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	item, err := handler.repos.Media.FindByID(c.UserContext(), itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apiError(c, fiber.StatusNotFound, "media item not found")
		}
		handler.log.WithError(err).Error("failed to load media item")
		return apiError(c, fiber.StatusInternalServerError, retryMessage)
	}

	item.Title = request.Title
	item.Description = strings.TrimSpace(request.Description)
	item.Category = request.Category
	item.Kind = request.Kind
	item.Payload = request.Payload
	if request.Filename != "" {
		item.Filename = request.Filename
	}

	if err := handler.repos.Media.Save(c.UserContext(), &item); err != nil {
		handler.log.WithError(err).Error("failed to update media item")
		return apiError(c, fiber.StatusInternalServerError, retryMessage)
	}
	return c.JSON(item)
}

func (handler *Handler) DeleteMediaItem(c *fiber.Ctx) error {
	itemID, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid media id")
	}

	deleted, err := handler.repos.Media.Delete(c.UserContext(), itemID)
	if err != nil {
		handler.log.WithError(err).Error("failed to delete media item")
		return apiError(c, fiber.StatusInternalServerError, retryMessage)
	}
	if !deleted {
		return apiError(c, fiber.StatusNotFound, "media item not found")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func generatedMediaFilename(kind string) string {
	extension := ".jpg"
	if kind == models.MediaKindVideo {
		extension = ".mp4"
	}
	return uuid.NewString() + extension
}
