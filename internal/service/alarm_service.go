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

var ErrAlarmNotFound = errors.New("alarm not found")

type AlarmService struct {
	alarmRepo repository.AlarmRepository
}

func NewAlarmService(alarmRepo repository.AlarmRepository) *AlarmService {
	return &AlarmService{alarmRepo: alarmRepo}
}

// SaveAlarmInput carries the alarm fields. A nil ID means a fresh alarm.
type SaveAlarmInput struct {
	ID       *uuid.UUID
	UserID   uuid.UUID
	Time     string
	Label    string
	Days     []string
	IsActive bool
	Sound    string
}

func (s *AlarmService) List(ctx context.Context, userID uuid.UUID) ([]*domain.Alarm, error) {
	return s.alarmRepo.ListByUser(ctx, userID)
}

// Save inserts or overwrites an alarm. Updating an alarm id owned by a
// different user fails with ErrAlarmNotFound; ownership is enforced on
// every mutation, not just delete.
func (s *AlarmService) Save(ctx context.Context, input SaveAlarmInput) (*domain.Alarm, error) {
	id := uuid.New()
	if input.ID != nil {
		id = *input.ID

		existing, err := s.alarmRepo.GetByID(ctx, id)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if existing != nil && existing.UserID != input.UserID {
			return nil, ErrAlarmNotFound
		}
	}

	daysJSON, err := json.Marshal(emptyIfNil(input.Days))
	if err != nil {
		return nil, err
	}

	alarm := &domain.Alarm{
		ID:        id,
		UserID:    input.UserID,
		Time:      input.Time,
		Label:     input.Label,
		Days:      datatypes.JSON(daysJSON),
		IsActive:  input.IsActive,
		Sound:     input.Sound,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.alarmRepo.Upsert(ctx, alarm); err != nil {
		return nil, err
	}

	return alarm, nil
}

func (s *AlarmService) Delete(ctx context.Context, alarmID, userID uuid.UUID) error {
	deleted, err := s.alarmRepo.DeleteOwned(ctx, alarmID, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrAlarmNotFound
	}
	return nil
}
