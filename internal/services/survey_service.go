package services

import (
	"errors"
	"fmt"

	"github.com/nutriform/nutriform/internal/models"
	"gorm.io/gorm"
)

type SurveyResponseRepository interface {
	Create(response *models.SurveyResponse) error
	LatestByOwner(ownerID uint) (models.SurveyResponse, error)
	ListByOwner(ownerID uint) ([]models.SurveyResponse, error)
}

type SurveyService struct {
	surveys SurveyResponseRepository
}

func NewSurveyService(surveys SurveyResponseRepository) *SurveyService {
	return &SurveyService{surveys: surveys}
}

// Submit parses the raw answers and persists one response owned by ownerID.
// Resubmission creates a new record; the latest one wins on read.
func (service *SurveyService) Submit(ownerID uint, input SurveyFormInput) (models.SurveyResponse, error) {
	response, err := ParseSurveyForm(input)
	if err != nil {
		return models.SurveyResponse{}, err
	}

	response.UserID = ownerID
	if err := service.surveys.Create(&response); err != nil {
		return models.SurveyResponse{}, fmt.Errorf("store survey response: %w", err)
	}
	return response, nil
}

// LatestByOwner never substitutes defaults: an owner with zero responses is
// ErrSurveyNotFound.
func (service *SurveyService) LatestByOwner(ownerID uint) (models.SurveyResponse, error) {
	response, err := service.surveys.LatestByOwner(ownerID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.SurveyResponse{}, ErrSurveyNotFound
	}
	if err != nil {
		return models.SurveyResponse{}, fmt.Errorf("load latest survey response: %w", err)
	}
	return response, nil
}

func (service *SurveyService) ListByOwner(ownerID uint) ([]models.SurveyResponse, error) {
	responses, err := service.surveys.ListByOwner(ownerID)
	if err != nil {
		return nil, fmt.Errorf("list survey responses: %w", err)
	}
	return responses, nil
}
