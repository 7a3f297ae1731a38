package api

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jobinkurian/parishdesk/internal/models"
	"github.com/jobinkurian/parishdesk/internal/services"
	"gorm.io/gorm"
)

type familyMemberInput struct {
	Name     string `json:"name"`
	Age      int    `json:"age"`
	Relation string `json:"relation"`
}

type familyRequest struct {
	HeadName      string              `json:"headName"`
	ContactNumber string              `json:"contactNumber"`
	Address       string              `json:"address"`
	PhotoRef      string              `json:"photoRef"`
	Members       []familyMemberInput `json:"members"`
}

func (request *familyRequest) toModel() (models.Family, error) {
	request.HeadName = strings.TrimSpace(request.HeadName)
	if request.HeadName == "" {
		return models.Family{}, errors.New("head of family name is required")
	}

	members := make([]models.FamilyMember, 0, len(request.Members))
	for _, member := range request.Members {
		members = append(members, models.FamilyMember{
			Name:     strings.TrimSpace(member.Name),
			Age:      member.Age,
			Relation: strings.TrimSpace(member.Relation),
		})
	}
	if err := services.ValidateFamilyMembers(members); err != nil {
		return models.Family{}, err
	}

	return models.Family{
		HeadName:      request.HeadName,
		ContactNumber: strings.TrimSpace(request.ContactNumber),
		Address:       strings.TrimSpace(request.Address),
		PhotoRef:      strings.TrimSpace(request.PhotoRef),
		Members:       members,
	}, nil
}

func (handler *Handler) ListFamilies(c *fiber.Ctx) error {
	families, err := handler.repos.Families.List(c.UserContext())
	if err != nil {
		handler.log.WithError(err).Error("failed to list families")
		return c.JSON([]models.Family{})
	}
	return c.JSON(families)
}

func (handler *Handler) GetFamily(c *fiber.Ctx) error {
	familyID, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid family id")
	}

	family, err := handler.repos.Families.FindByID(c.UserContext(), familyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apiError(c, fiber.StatusNotFound, "family not found")
		}
		handler.log.WithError(err).Error("failed to load family")
		return apiError(c, fiber.StatusInternalServerError, retryMessage)
	}
	return c.JSON(family)
}

func (handler *Handler) CreateFamily(c *fiber.Ctx) error {
	request := familyRequest{}
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	family, err := request.toModel()
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	family.CreatedAt = time.Now()

	if err := handler.repos.Families.Create(c.UserContext(), &family); err != nil {
		handler.log.WithError(err).Error("failed to create family")
		return apiError(c, fiber.StatusInternalServerError, retryMessage)
	}
	return c.Status(fiber.StatusCreated).JSON(family)
}

func (handler *Handler) UpdateFamily(c *fiber.Ctx) error {
	familyID, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid family id")
	}

	request := familyRequest{}
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	family, err := request.toModel()
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	updated, err := handler.repos.Families.Update(c.UserContext(), familyID, family)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apiError(c, fiber.StatusNotFound, "family not found")
		}
		handler.log.WithError(err).Error("failed to update family")
		return apiError(c, fiber.StatusInternalServerError, retryMessage)
	}
	return c.JSON(updated)
}

func (handler *Handler) DeleteFamily(c *fiber.Ctx) error {
	familyID, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid family id")
	}

	deleted, err := handler.repos.Families.Delete(c.UserContext(), familyID)
	if err != nil {
		handler.log.WithError(err).Error("failed to delete family")
		return apiError(c, fiber.StatusInternalServerError, retryMessage)
	}
	if !deleted {
		return apiError(c, fiber.StatusNotFound, "family not found")
	}
	return c.JSON(fiber.Map{"ok": true})
}
