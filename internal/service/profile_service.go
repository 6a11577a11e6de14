package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/wakephrase/server/internal/domain"
	"github.com/wakephrase/server/internal/repository"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrProfileNotFound = errors.New("no user profile found")

type ProfileService struct {
	profileRepo repository.ProfileRepository
}

func NewProfileService(profileRepo repository.ProfileRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

// SaveProfileInput carries the profile fields. Only the user id is
// required; omitted fields are saved as empty values.
type SaveProfileInput struct {
	UserID uuid.UUID
	Name   string
	Goals  []string
	Fears  []string
}

// ProfileData is the external shape of a profile, with goals and fears as
// ordered string lists.
type ProfileData struct {
	Name  string   `json:"name"`
	Goals []string `json:"goals"`
	Fears []string `json:"fears"`
}

func (s *ProfileService) Save(ctx context.Context, input SaveProfileInput) error {
	goalsJSON, err := json.Marshal(emptyIfNil(input.Goals))
	if err != nil {
		return err
	}
	fearsJSON, err := json.Marshal(emptyIfNil(input.Fears))
	if err != nil {
		return err
	}

	profile := &domain.Profile{
		ID:        uuid.New(),
		UserID:    input.UserID,
		Name:      input.Name,
		Goals:     datatypes.JSON(goalsJSON),
		Fears:     datatypes.JSON(fearsJSON),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	return s.profileRepo.Upsert(ctx, profile)
}

// Latest returns the current profile for the user, or ErrProfileNotFound.
// Absence is a valid outcome, distinct from a storage failure.
func (s *ProfileService) Latest(ctx context.Context, userID uuid.UUID) (*ProfileData, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	data := &ProfileData{Name: profile.Name, Goals: []string{}, Fears: []string{}}
	if err := json.Unmarshal(profile.Goals, &data.Goals); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(profile.Fears, &data.Fears); err != nil {
		return nil, err
	}
	return data, nil
}

func emptyIfNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
