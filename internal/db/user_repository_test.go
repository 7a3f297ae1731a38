package db

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/jobinkurian/parishdesk/internal/models"
	"gorm.io/gorm"
)

func openTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "parishdesk-test.db")
	database, err := OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	return database
}

func createTestLedgerUser(t *testing.T, repo *UserRepository) models.User {
	t.Helper()

	user := models.User{
		Name:              "A",
		Username:          "a1",
		PasswordHash:      "hash",
		MonthlyCollection: 100,
		Cleaning:          50,
		CommonWork:        75,
		FuneralFund:       25,
		Total:             999999, // client-supplied totals must be discarded
		CreatedAt:         time.Now(),
	}
	if err := repo.Create(context.Background(), &user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func TestCreateComputesTotalFromDuesFields(t *testing.T) {
	repo := NewUserRepository(openTestDatabase(t))
	user := createTestLedgerUser(t, repo)

	if user.Total != 250 {
		t.Fatalf("expected total 250, got %d", user.Total)
	}

	stored, err := repo.FindByID(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("find user: %v", err)
	}
	if stored.Total != 250 {
		t.Fatalf("expected stored total 250, got %d", stored.Total)
	}
}

func TestUpdateRecomputesTotalFromPartialDuesChange(t *testing.T) {
	repo := NewUserRepository(openTestDatabase(t))
	user := createTestLedgerUser(t, repo)

	cleaning := int64(60)
	updated, err := repo.Update(context.Background(), user.ID, UserChanges{Cleaning: &cleaning})
	if err != nil {
		t.Fatalf("update user: %v", err)
	}

	if updated.Cleaning != 60 {
		t.Fatalf("expected cleaning 60, got %d", updated.Cleaning)
	}
	if updated.Total != 260 {
		t.Fatalf("expected total 260, got %d", updated.Total)
	}
	if updated.MonthlyCollection != 100 || updated.CommonWork != 75 || updated.FuneralFund != 25 {
		t.Fatalf("expected untouched dues fields to survive, got %+v", updated)
	}
}

func TestUpdateWithoutDuesFieldsKeepsTotal(t *testing.T) {
	repo := NewUserRepository(openTestDatabase(t))
	user := createTestLedgerUser(t, repo)

	name := "Renamed Household"
	updated, err := repo.Update(context.Background(), user.ID, UserChanges{Name: &name})
	if err != nil {
		t.Fatalf("update user: %v", err)
	}
	if updated.Name != name {
		t.Fatalf("expected name %q, got %q", name, updated.Name)
	}
	if updated.Total != 250 {
		t.Fatalf("expected total 250, got %d", updated.Total)
	}
}

func TestUpdateUnknownUserReturnsNotFound(t *testing.T) {
	repo := NewUserRepository(openTestDatabase(t))

	name := "ghost"
	if _, err := repo.Update(context.Background(), 4242, UserChanges{Name: &name}); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestDeleteUnknownUserLeavesStoreUnchanged(t *testing.T) {
	repo := NewUserRepository(openTestDatabase(t))
	createTestLedgerUser(t, repo)

	before, err := repo.CountUsers(context.Background())
	if err != nil {
		t.Fatalf("count users: %v", err)
	}

	deleted, err := repo.Delete(context.Background(), 4242)
	if err != nil {
		t.Fatalf("delete user: %v", err)
	}
	if deleted {
		t.Fatal("expected delete of unknown id to report false")
	}

	after, err := repo.CountUsers(context.Background())
	if err != nil {
		t.Fatalf("count users: %v", err)
	}
	if before != after {
		t.Fatalf("expected row count unchanged, got %d -> %d", before, after)
	}
}

func TestListFiltersByNameOrUsernameSubstring(t *testing.T) {
	repo := NewUserRepository(openTestDatabase(t))

	seed := []models.User{
		{Name: "Mathew Household", Username: "mathew01", PasswordHash: "hash", CreatedAt: time.Now()},
		{Name: "Kurian Household", Username: "kurian02", PasswordHash: "hash", CreatedAt: time.Now()},
	}
	for index := range seed {
		if err := repo.Create(context.Background(), &seed[index]); err != nil {
			t.Fatalf("create user: %v", err)
		}
	}

	matched, err := repo.List(context.Background(), "MATH")
	if err != nil {
		t.Fatalf("list users: %v", err)
	}
	if len(matched) != 1 || matched[0].Username != "mathew01" {
		t.Fatalf("expected only mathew01, got %+v", matched)
	}

	all, err := repo.List(context.Background(), "")
	if err != nil {
		t.Fatalf("list users: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 users, got %d", len(all))
	}
}
