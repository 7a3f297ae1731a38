package db

import (
	"context"
	"errors"
	"testing"

	"github.com/jobinkurian/parishdesk/internal/models"
	"gorm.io/gorm"
)

func createTestFamily(t *testing.T, repo *FamilyRepository) models.Family {
	t.Helper()

	family := models.Family{
		HeadName:      "Mathew",
		ContactNumber: "9447000000",
		Address:       "House 12, Church Road",
		Members: []models.FamilyMember{
			{Name: "Annamma", Age: 62, Relation: "mother"},
			{Name: "Thomas", Age: 34, Relation: "son"},
		},
	}
	if err := repo.Create(context.Background(), &family); err != nil {
		t.Fatalf("create family: %v", err)
	}
	return family
}

func TestCreateFamilyStoresMembersInOrder(t *testing.T) {
	repo := NewFamilyRepository(openTestDatabase(t))
	family := createTestFamily(t, repo)

	stored, err := repo.FindByID(context.Background(), family.ID)
	if err != nil {
		t.Fatalf("find family: %v", err)
	}
	if len(stored.Members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(stored.Members))
	}
	if stored.Members[0].Name != "Annamma" || stored.Members[1].Name != "Thomas" {
		t.Fatalf("expected roster order preserved, got %+v", stored.Members)
	}
	if stored.Members[0].Position != 0 || stored.Members[1].Position != 1 {
		t.Fatalf("expected positions 0 and 1, got %+v", stored.Members)
	}
}

func TestUpdateFamilyReplacesRoster(t *testing.T) {
	database := openTestDatabase(t)
	repo := NewFamilyRepository(database)
	family := createTestFamily(t, repo)

	updated, err := repo.Update(context.Background(), family.ID, models.Family{
		HeadName:      "Mathew K",
		ContactNumber: "9447000001",
		Address:       family.Address,
		Members: []models.FamilyMember{
			{Name: "Thomas", Age: 35, Relation: "son"},
		},
	})
	if err != nil {
		t.Fatalf("update family: %v", err)
	}

	if updated.HeadName != "Mathew K" {
		t.Fatalf("expected head name updated, got %q", updated.HeadName)
	}
	if len(updated.Members) != 1 || updated.Members[0].Name != "Thomas" || updated.Members[0].Age != 35 {
		t.Fatalf("expected roster replaced with single member, got %+v", updated.Members)
	}

	var memberCount int64
	if err := database.Model(&models.FamilyMember{}).Where("family_id = ?", family.ID).Count(&memberCount).Error; err != nil {
		t.Fatalf("count members: %v", err)
	}
	if memberCount != 1 {
		t.Fatalf("expected 1 member row after replace, got %d", memberCount)
	}
}

func TestUpdateUnknownFamilyReturnsNotFound(t *testing.T) {
	repo := NewFamilyRepository(openTestDatabase(t))

	if _, err := repo.Update(context.Background(), 4242, models.Family{HeadName: "ghost"}); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestDeleteFamilyRemovesMembers(t *testing.T) {
	database := openTestDatabase(t)
	repo := NewFamilyRepository(database)
	family := createTestFamily(t, repo)

	deleted, err := repo.Delete(context.Background(), family.ID)
	if err != nil {
		t.Fatalf("delete family: %v", err)
	}
	if !deleted {
		t.Fatal("expected delete to report true")
	}

	var memberCount int64
	if err := database.Model(&models.FamilyMember{}).Where("family_id = ?", family.ID).Count(&memberCount).Error; err != nil {
		t.Fatalf("count members: %v", err)
	}
	if memberCount != 0 {
		t.Fatalf("expected orphaned members removed, got %d", memberCount)
	}

	if _, err := repo.FindByID(context.Background(), family.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestDeleteUnknownFamilyReportsFalse(t *testing.T) {
	repo := NewFamilyRepository(openTestDatabase(t))

	deleted, err := repo.Delete(context.Background(), 4242)
	if err != nil {
		t.Fatalf("delete family: %v", err)
	}
	if deleted {
		t.Fatal("expected delete of unknown id to report false")
	}
}
