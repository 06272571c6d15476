package services

import (
	"github.com/nutriform/nutriform/internal/models"
	"gorm.io/gorm"
)

type fakeUserRepository struct {
	users  []models.User
	nextID uint
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{nextID: 1}
}

func (repo *fakeUserRepository) ExistsByUsername(username string) (bool, error) {
	for _, user := range repo.users {
		if user.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (repo *fakeUserRepository) ExistsByNormalizedEmail(email string) (bool, error) {
	for _, user := range repo.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (repo *fakeUserRepository) FindByUsername(username string) (models.User, error) {
	for _, user := range repo.users {
		if user.Username == username {
			return user, nil
		}
	}
	return models.User{}, gorm.ErrRecordNotFound
}

func (repo *fakeUserRepository) FindByID(userID uint) (models.User, error) {
	for _, user := range repo.users {
		if user.ID == userID {
			return user, nil
		}
	}
	return models.User{}, gorm.ErrRecordNotFound
}

func (repo *fakeUserRepository) Create(user *models.User) error {
	user.ID = repo.nextID
	repo.nextID++
	repo.users = append(repo.users, *user)
	return nil
}

func mustUser(username string, email string) models.User {
	return models.User{
		Username:     username,
		Email:        email,
		PasswordHash: "$2a$10$placeholderplaceholderplace",
	}
}

type fakeSurveyRepository struct {
	responses []models.SurveyResponse
	nextID    uint
}

func newFakeSurveyRepository() *fakeSurveyRepository {
	return &fakeSurveyRepository{nextID: 1}
}

func (repo *fakeSurveyRepository) Create(response *models.SurveyResponse) error {
	response.ID = repo.nextID
	repo.nextID++
	repo.responses = append(repo.responses, *response)
	return nil
}

func (repo *fakeSurveyRepository) LatestByOwner(ownerID uint) (models.SurveyResponse, error) {
	for index := len(repo.responses) - 1; index >= 0; index-- {
		if repo.responses[index].UserID == ownerID {
			return repo.responses[index], nil
		}
	}
	return models.SurveyResponse{}, gorm.ErrRecordNotFound
}

func (repo *fakeSurveyRepository) ListByOwner(ownerID uint) ([]models.SurveyResponse, error) {
	matched := make([]models.SurveyResponse, 0)
	for _, response := range repo.responses {
		if response.UserID == ownerID {
			matched = append(matched, response)
		}
	}
	return matched, nil
}
