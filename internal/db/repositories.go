package db

import "gorm.io/gorm"

type Repositories struct {
	Users   *UserRepository
	Surveys *SurveyRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:   NewUserRepository(database),
		Surveys: NewSurveyRepository(database),
	}
}
