package models

import "time"

const (
	SexMale   = "M"
	SexFemale = "F"
)

// Defaults applied when a survey field is absent from a submission, so a
// stored record is always fully populated.
const (
	DefaultSex      = SexMale
	DefaultAge      = 18
	DefaultHeightCm = 172
	DefaultWeightKg = 62
	DefaultActivity = 0
	DefaultMeals    = 1
	DefaultSnacks   = 0
)

// Every field is populated before insert; the parser fills absent form
// fields with the defaults above, so no column relies on a database default.
type SurveyResponse struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"not null;index"`
	Sex       string `gorm:"not null"`
	Age       int    `gorm:"not null"`
	HeightCm  int    `gorm:"not null"`
	WeightKg  int    `gorm:"not null"`
	Activity  int    `gorm:"not null"`
	Meals     int    `gorm:"not null"`
	Snacks    int    `gorm:"not null"`
	CreatedAt time.Time
}
