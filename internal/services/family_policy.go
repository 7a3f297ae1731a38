package services

import (
	"errors"
	"strings"

	"github.com/jobinkurian/parishdesk/internal/models"
)

var ErrNoValidFamilyMember = errors.New("at least one member with name, positive age, and relation is required")

// ValidateFamilyMembers requires at least one fully-filled member
// before a family may be persisted. Applied on both the create and
// the edit path.
func ValidateFamilyMembers(members []models.FamilyMember) error {
	for _, member := range members {
		if strings.TrimSpace(member.Name) == "" {
			continue
		}
		if member.Age <= 0 {
			continue
		}
		if strings.TrimSpace(member.Relation) == "" {
			continue
		}
		return nil
	}
	return ErrNoValidFamilyMember
}
