package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/wakephrase/server/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type alarmRepository struct {
	db *gorm.DB
}

func NewAlarmRepository(db *gorm.DB) *alarmRepository {
	return &alarmRepository{db: db}
}

func (r *alarmRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Alarm, error) {
	var alarm domain.Alarm
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&alarm).Error
	if err != nil {
		return nil, err
	}
	return &alarm, nil
}

func (r *alarmRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Alarm, error) {
	var alarms []*domain.Alarm
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at").
		Find(&alarms).Error
	if err != nil {
		return nil, err
	}
	return alarms, nil
}

func (r *alarmRepository) Upsert(ctx context.Context, alarm *domain.Alarm) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"time", "label", "days", "is_active", "sound", "updated_at"}),
		}).
		Create(alarm).Error
}

func (r *alarmRepository) DeleteOwned(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&domain.Alarm{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
