package services

import (
	"errors"
	"testing"

	"github.com/nutriform/nutriform/internal/models"
)

func TestParseSurveyFormAppliesAllDefaults(t *testing.T) {
	response, err := ParseSurveyForm(SurveyFormInput{})
	if err != nil {
		t.Fatalf("parse empty form failed: %v", err)
	}

	if response.Sex != models.DefaultSex {
		t.Fatalf("expected default sex %q, got %q", models.DefaultSex, response.Sex)
	}
	if response.Age != models.DefaultAge {
		t.Fatalf("expected default age %d, got %d", models.DefaultAge, response.Age)
	}
	if response.HeightCm != models.DefaultHeightCm {
		t.Fatalf("expected default height %d, got %d", models.DefaultHeightCm, response.HeightCm)
	}
	if response.WeightKg != models.DefaultWeightKg {
		t.Fatalf("expected default weight %d, got %d", models.DefaultWeightKg, response.WeightKg)
	}
	if response.Activity != models.DefaultActivity {
		t.Fatalf("expected default activity %d, got %d", models.DefaultActivity, response.Activity)
	}
	if response.Meals != models.DefaultMeals {
		t.Fatalf("expected default meals %d, got %d", models.DefaultMeals, response.Meals)
	}
	if response.Snacks != models.DefaultSnacks {
		t.Fatalf("expected default snacks %d, got %d", models.DefaultSnacks, response.Snacks)
	}
}

func TestParseSurveyFormParsesProvidedValues(t *testing.T) {
	response, err := ParseSurveyForm(SurveyFormInput{
		Sex:      "f",
		Age:      "25",
		Height:   "180",
		Weight:   "75",
		Activity: "2",
		Meals:    "3",
		Snacks:   "1",
	})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if response.Sex != models.SexFemale {
		t.Fatalf("expected sex normalized to F, got %q", response.Sex)
	}
	if response.Age != 25 || response.HeightCm != 180 || response.WeightKg != 75 {
		t.Fatalf("unexpected body fields: %+v", response)
	}
	if response.Activity != 2 || response.Meals != 3 || response.Snacks != 1 {
		t.Fatalf("unexpected habit fields: %+v", response)
	}
}

func TestParseSurveyFormRejectsBadValues(t *testing.T) {
	cases := []struct {
		name          string
		input         SurveyFormInput
		expectedField string
	}{
		{"non numeric age", SurveyFormInput{Age: "abc"}, "age"},
		{"fractional height", SurveyFormInput{Height: "172.5"}, "height"},
		{"zero weight", SurveyFormInput{Weight: "0"}, "weight"},
		{"negative snacks", SurveyFormInput{Snacks: "-1"}, "snacks"},
		{"unknown sex", SurveyFormInput{Sex: "X"}, "sex"},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := ParseSurveyForm(testCase.input)
			var validationErr *ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if validationErr.Field != testCase.expectedField {
				t.Fatalf("expected field %q, got %q", testCase.expectedField, validationErr.Field)
			}
		})
	}
}

func TestParseSurveyFormTreatsWhitespaceAsAbsent(t *testing.T) {
	response, err := ParseSurveyForm(SurveyFormInput{Age: "  ", Sex: " "})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if response.Age != models.DefaultAge || response.Sex != models.DefaultSex {
		t.Fatalf("expected defaults for blank values, got %+v", response)
	}
}
