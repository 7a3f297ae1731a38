package api

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jobinkurian/parishdesk/internal/services"
)

// Planning backs the financial-tips view: per-category shares of the
// signed-in user's ledger plus a contribution plan toward an annual
// target. Without an explicit target the plan assumes the current
// monthly total continues for a year.
func (handler *Handler) Planning(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	annualTarget := user.Total * 12
	if raw := strings.TrimSpace(c.Query("annualTarget")); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			return apiError(c, fiber.StatusBadRequest, services.ErrInvalidAnnualTarget.Error())
		}
		annualTarget = parsed
	}

	response := fiber.Map{
		"total":  user.Total,
		"shares": services.ClassifyDuesShares(*user),
	}

	if annualTarget > 0 {
		plan, err := services.BuildContributionPlan(user.Total, annualTarget)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
		response["plan"] = plan
	}

	return c.JSON(response)
}
