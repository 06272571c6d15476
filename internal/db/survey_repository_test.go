package db

import (
	"errors"
	"testing"
	"time"

	"github.com/nutriform/nutriform/internal/models"
	"gorm.io/gorm"
)

func createSurveyOwner(t *testing.T, database *gorm.DB) models.User {
	t.Helper()

	user := models.User{
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "hash",
		CreatedAt:    time.Now().UTC(),
	}
	if err := NewUserRepository(database).Create(&user); err != nil {
		t.Fatalf("create owner: %v", err)
	}
	return user
}

func TestSurveyRepositoryLatestByOwner(t *testing.T) {
	database := openTestDatabase(t)
	owner := createSurveyOwner(t, database)
	repo := NewSurveyRepository(database)

	first := models.SurveyResponse{UserID: owner.ID, Sex: "M", Age: 25, HeightCm: 180, WeightKg: 75, Activity: 2, Meals: 3, Snacks: 1}
	if err := repo.Create(&first); err != nil {
		t.Fatalf("create first response: %v", err)
	}
	second := models.SurveyResponse{UserID: owner.ID, Sex: "M", Age: 26, HeightCm: 180, WeightKg: 74, Activity: 2, Meals: 3, Snacks: 0}
	if err := repo.Create(&second); err != nil {
		t.Fatalf("create second response: %v", err)
	}

	latest, err := repo.LatestByOwner(owner.ID)
	if err != nil {
		t.Fatalf("latest by owner: %v", err)
	}
	if latest.ID != second.ID {
		t.Fatalf("expected latest response %d, got %d", second.ID, latest.ID)
	}
}

func TestSurveyRepositoryLatestByOwnerWithoutRowsIsRecordNotFound(t *testing.T) {
	repo := NewSurveyRepository(openTestDatabase(t))

	_, err := repo.LatestByOwner(42)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected gorm.ErrRecordNotFound, got %v", err)
	}
}

func TestSurveyRepositoryListByOwnerKeepsInsertionOrder(t *testing.T) {
	database := openTestDatabase(t)
	owner := createSurveyOwner(t, database)
	repo := NewSurveyRepository(database)

	ages := []int{25, 26, 27}
	for _, age := range ages {
		response := models.SurveyResponse{UserID: owner.ID, Sex: "M", Age: age, HeightCm: 180, WeightKg: 75, Meals: 1}
		if err := repo.Create(&response); err != nil {
			t.Fatalf("create response: %v", err)
		}
	}

	responses, err := repo.ListByOwner(owner.ID)
	if err != nil {
		t.Fatalf("list by owner: %v", err)
	}
	if len(responses) != len(ages) {
		t.Fatalf("expected %d responses, got %d", len(ages), len(responses))
	}
	for index, response := range responses {
		if response.Age != ages[index] {
			t.Fatalf("expected age %d at position %d, got %d", ages[index], index, response.Age)
		}
	}
}
