package services

import (
	"strconv"
	"strings"

	"github.com/nutriform/nutriform/internal/models"
)

// SurveyFormInput carries the raw string form values of one questionnaire
// submission. An empty value means "not answered" and falls back to the
// field's documented default.
type SurveyFormInput struct {
	Sex      string
	Age      string
	Height   string
	Weight   string
	Activity string
	Meals    string
	Snacks   string
}

// ParseSurveyForm turns raw form values into a fully populated response.
// Absent fields take defaults; present values that do not parse into their
// numeric/enum type fail with a field-tagged ValidationError.
func ParseSurveyForm(input SurveyFormInput) (models.SurveyResponse, error) {
	response := models.SurveyResponse{}

	sex, err := parseSexField(input.Sex)
	if err != nil {
		return models.SurveyResponse{}, err
	}
	response.Sex = sex

	fields := []struct {
		name    string
		raw     string
		target  *int
		def     int
		minimum int
	}{
		{"age", input.Age, &response.Age, models.DefaultAge, 1},
		{"height", input.Height, &response.HeightCm, models.DefaultHeightCm, 1},
		{"weight", input.Weight, &response.WeightKg, models.DefaultWeightKg, 1},
		{"activity", input.Activity, &response.Activity, models.DefaultActivity, 0},
		{"meals", input.Meals, &response.Meals, models.DefaultMeals, 0},
		{"snacks", input.Snacks, &response.Snacks, models.DefaultSnacks, 0},
	}
	for _, field := range fields {
		value, err := parseCountField(field.name, field.raw, field.def, field.minimum)
		if err != nil {
			return models.SurveyResponse{}, err
		}
		*field.target = value
	}

	return response, nil
}

func parseSexField(raw string) (string, error) {
	value := strings.ToUpper(strings.TrimSpace(raw))
	if value == "" {
		return models.DefaultSex, nil
	}
	switch value {
	case models.SexMale, models.SexFemale:
		return value, nil
	default:
		return "", newValidationError("sex", "must be M or F")
	}
}

func parseCountField(name string, raw string, def int, minimum int) (int, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return def, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, newValidationError(name, "must be a whole number")
	}
	if parsed < minimum {
		return 0, newValidationError(name, "is out of range")
	}
	return parsed, nil
}
