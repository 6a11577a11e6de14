package service

import (
	"github.com/wakephrase/server/internal/llm"
	"github.com/wakephrase/server/internal/repository"
)

type Services struct {
	Auth    *AuthService
	Profile *ProfileService
	Alarm   *AlarmService
	Phrase  *PhraseService
}

func NewServices(repos *repository.Repositories, completion llm.CompletionClient) *Services {
	profileService := NewProfileService(repos.Profile)

	return &Services{
		Auth:    NewAuthService(repos.User),
		Profile: profileService,
		Alarm:   NewAlarmService(repos.Alarm),
		Phrase:  NewPhraseService(profileService, completion),
	}
}
