package api

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jobinkurian/parishdesk/internal/models"
	"gorm.io/gorm"
)

type eventRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"` // 2006-01-02
	Time        string `json:"time"` // 15:04, optional
}

func (request *eventRequest) validate() (time.Time, string, error) {
	request.Title = strings.TrimSpace(request.Title)
	if request.Title == "" {
		return time.Time{}, "", errors.New("title is required")
	}
	if strings.TrimSpace(request.Date) == "" {
		return time.Time{}, "", errors.New("date is required")
	}
	date, err := time.Parse("2006-01-02", strings.TrimSpace(request.Date))
	if err != nil {
		return time.Time{}, "", errors.New("date must use YYYY-MM-DD format")
	}
	timeOfDay := strings.TrimSpace(request.Time)
	if timeOfDay != "" {
		if _, err := time.Parse("15:04", timeOfDay); err != nil {
			return time.Time{}, "", errors.New("time must use HH:MM format")
		}
	}
	return date, timeOfDay, nil
}

func (handler *Handler) ListEvents(c *fiber.Ctx) error {
	events, err := handler.repos.Events.List(c.UserContext())
	if err != nil {
		handler.log.WithError(err).Error("failed to list events")
		return c.JSON([]models.Event{})
	}
	return c.JSON(events)
}

func (handler *Handler) GetEvent(c *fiber.Ctx) error {
	eventID, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid event id")
	}

	event, err := handler.repos.Events.FindByID(c.UserContext(), eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apiError(c, fiber.StatusNotFound, "event not found")
		}
		handler.log.WithError(err).Error("failed to load event")
		return apiError(c, fiber.StatusInternalServerError, retryMessage)
	}
	return c.JSON(event)
}

func (handler *Handler) CreateEvent(c *fiber.Ctx) error {
	request := eventRequest{}
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	date, timeOfDay, err := request.validate()
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	event := models.Event{
		Title:       request.Title,
		Description: strings.TrimSpace(request.Description),
		Date:        date,
		TimeOfDay:   timeOfDay,
		CreatedAt:   time.Now(),
	}
	if err := handler.repos.Events.Create(c.UserContext(), &event); err != nil {
		handler.log.WithError(err).Error("failed to create event")
		return apiError(c, fiber.StatusInternalServerError, retryMessage)
	}
	return c.Status(fiber.StatusCreated).JSON(event)
}

func (handler *Handler) UpdateEvent(c *fiber.Ctx) error {
	eventID, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid event id")
	}

	request := eventRequest{}
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	date, timeOfDay, err := request.validate()
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	event, err := handler.repos.Events.FindByID(c.UserContext(), eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apiError(c, fiber.StatusNotFound, "event not found")
		}
		handler.log.WithError(err).Error("failed to load event")
		return apiError(c, fiber.StatusInternalServerError, retryMessage)
	}

	event.Title = request.Title
	event.Description = strings.TrimSpace(request.Description)
	event.Date = date
	event.TimeOfDay = timeOfDay
	if err := handler.repos.Events.Save(c.UserContext(), &event); err != nil {
		handler.log.WithError(err).Error("failed to update event")
		return apiError(c, fiber.StatusInternalServerError, retryMessage)
	}
	return c.JSON(event)
}

func (handler *Handler) DeleteEvent(c *fiber.Ctx) error {
	eventID, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid event id")
	}

	deleted, err := handler.repos.Events.Delete(c.UserContext(), eventID)
	if err != nil {
		handler.log.WithError(err).Error("failed to delete event")
		return apiError(c, fiber.StatusInternalServerError, retryMessage)
	}
	if !deleted {
		return apiError(c, fiber.StatusNotFound, "event not found")
	}
	return c.JSON(fiber.Map{"ok": true})
}
