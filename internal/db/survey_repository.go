package db

import (
	"github.com/nutriform/nutriform/internal/models"
	"gorm.io/gorm"
)

type SurveyRepository struct {
	database *gorm.DB
}

func NewSurveyRepository(database *gorm.DB) *SurveyRepository {
	return &SurveyRepository{database: database}
}

func (repo *SurveyRepository) Create(response *models.SurveyResponse) error {
	return repo.database.Create(response).Error
}

// LatestByOwner returns the most recently stored response for the owner.
// Callers get gorm.ErrRecordNotFound when the owner has no responses.
func (repo *SurveyRepository) LatestByOwner(ownerID uint) (models.SurveyResponse, error) {
	var response models.SurveyResponse
	if err := repo.database.
		Where("user_id = ?", ownerID).
		Order("id DESC").
		First(&response).Error; err != nil {
		return models.SurveyResponse{}, err
	}
	return response, nil
}

func (repo *SurveyRepository) ListByOwner(ownerID uint) ([]models.SurveyResponse, error) {
	responses := make([]models.SurveyResponse, 0)
	if err := repo.database.
		Where("user_id = ?", ownerID).
		Order("id ASC").
		Find(&responses).Error; err != nil {
		return nil, err
	}
	return responses, nil
}
