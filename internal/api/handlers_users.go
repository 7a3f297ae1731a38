package api

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jobinkurian/parishdesk/internal/db"
	"github.com/jobinkurian/parishdesk/internal/models"
	"github.com/jobinkurian/parishdesk/internal/services"
	"gorm.io/gorm"
)

type createUserRequest struct {
	Name              string `json:"name"`
	Username          string `json:"username"`
	Password          string `json:"password"`
	PhotoRef          string `json:"photoRef"`
	MonthlyCollection int64  `json:"monthlyCollection"`
	Cleaning          int64  `json:"cleaning"`
	CommonWork        int64  `json:"commonWork"`
	FuneralFund       int64  `json:"funeralFund"`
	IsAdmin           bool   `json:"isAdmin"`
}

type updateUserRequest struct {
	Name              *string `json:"name"`
	Password          *string `json:"password"`
	PhotoRef          *string `json:"photoRef"`
	MonthlyCollection *int64  `json:"monthlyCollection"`
	Cleaning          *int64  `json:"cleaning"`
	CommonWork        *int64  `json:"commonWork"`
	FuneralFund       *int64  `json:"funeralFund"`
	IsAdmin           *bool   `json:"isAdmin"`
}

func (handler *Handler) ListUsers(c *fiber.Ctx) error {
	users, err := handler.repos.Users.List(c.UserContext(), c.Query("q"))
	if err != nil {
		handler.log.WithError(err).Error("failed to list users")
		return c.JSON([]models.User{})
	}
	return c.JSON(users)
}

func (handler *Handler) GetUser(c *fiber.Ctx) error {
	userID, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid user id")
	}

	user, err := handler.repos.Users.FindByID(c.UserContext(), userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apiError(c, fiber.StatusNotFound, "user not found")
		}
		handler.log.WithError(err).Error("failed to load user")
		return apiError(c, fiber.StatusInternalServerError, retryMessage)
	}
	return c.JSON(user)
}

func (handler *Handler) CreateUser(c *fiber.Ctx) error {
	request := createUserRequest{}
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	request.Name = strings.TrimSpace(request.Name)
	request.Username = strings.TrimSpace(request.Username)
	if request.Name == "" {
		return apiError(c, fiber.StatusBadRequest, "name is required")
	}
	if request.Username == "" {
		return apiError(c, fiber.StatusBadRequest, "username is required")
	}
	if request.Password == "" {
		return apiError(c, fiber.StatusBadRequest, "password is required")
	}
	if err := services.ValidateDuesAmounts(
		request.MonthlyCollection, request.Cleaning, request.CommonWork, request.FuneralFund,
	); err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	exists, err := handler.repos.Users.ExistsByUsername(c.UserContext(), request.Username)
	if err != nil {
		handler.log.WithError(err).Error("failed to check username")
		return apiError(c, fiber.StatusInternalServerError, retryMessage)
	}
	if exists {
		return apiError(c, fiber.StatusConflict, "username already exists")
	}

	passwordHash, err := services.HashPassword(request.Password)
	if err != nil {
		handler.log.WithError(err).Error("failed to hash password")
		return apiError(c, fiber.StatusInternalServerError, retryMessage)
	}

	user := models.User{
		Name:              request.Name,
		Username:          request.Username,
		PasswordHash:      passwordHash,
		PhotoRef:          strings.TrimSpace(request.PhotoRef),
		MonthlyCollection: request.MonthlyCollection,
		Cleaning:          request.Cleaning,
		CommonWork:        request.CommonWork,
		FuneralFund:       request.FuneralFund,
		IsAdmin:           request.IsAdmin,
		CreatedAt:         time.Now(),
	}
	if err := handler.repos.Users.Create(c.UserContext(), &user); err != nil {
		handler.log.WithError(err).Error("failed to create user")
		return apiError(c, fiber.StatusInternalServerError, retryMessage)
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

func (handler *Handler) UpdateUser(c *fiber.Ctx) error {
	userID, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid user id")
	}

	request := updateUserRequest{}
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	changes := db.UserChanges{
		PhotoRef:          request.PhotoRef,
		MonthlyCollection: request.MonthlyCollection,
		Cleaning:          request.Cleaning,
		CommonWork:        request.CommonWork,
		FuneralFund:       request.FuneralFund,
		IsAdmin:           request.IsAdmin,
	}

	if request.Name != nil {
		name := strings.TrimSpace(*request.Name)
		if name == "" {
			return apiError(c, fiber.StatusBadRequest, "name must not be empty")
		}
		changes.Name = &name
	}

	for _, amount := range []*int64{
		request.MonthlyCollection, request.Cleaning, request.CommonWork, request.FuneralFund,
	} {
		if amount != nil && *amount < 0 {
			return apiError(c, fiber.StatusBadRequest, services.ErrNegativeDues.Error())
		}
	}

	if request.Password != nil {
		if *request.Password == "" {
			return apiError(c, fiber.StatusBadRequest, "password must not be empty")
		}
		passwordHash, err := services.HashPassword(*request.Password)
		if err != nil {
			handler.log.WithError(err).Error("failed to hash password")
			return apiError(c, fiber.StatusInternalServerError, retryMessage)
		}
		changes.PasswordHash = &passwordHash
	}

	user, err := handler.repos.Users.Update(c.UserContext(), userID, changes)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apiError(c, fiber.StatusNotFound, "user not found")
		}
		handler.log.WithError(err).Error("failed to update user")
		return apiError(c, fiber.StatusInternalServerError, retryMessage)
	}

	return c.JSON(user)
}

func (handler *Handler) DeleteUser(c *fiber.Ctx) error {
	userID, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid user id")
	}

	deleted, err := handler.repos.Users.Delete(c.UserContext(), userID)
	if err != nil {
		handler.log.WithError(err).Error("failed to delete user")
		return apiError(c, fiber.StatusInternalServerError, retryMessage)
	}
	if !deleted {
		return apiError(c, fiber.StatusNotFound, "user not found")
	}
	return c.JSON(fiber.Map{"ok": true})
}
