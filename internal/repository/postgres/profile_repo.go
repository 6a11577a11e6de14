package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/wakephrase/server/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *profileRepository {
	return &profileRepository{db: db}
}

// Upsert keeps exactly one profile row per user. The conflict clause makes
// the insert-or-update atomic, so concurrent saves cannot duplicate rows.
func (r *profileRepository) Upsert(ctx context.Context, profile *domain.Profile) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "goals", "fears", "updated_at"}),
		}).
		Create(profile).Error
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	var profile domain.Profile
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
