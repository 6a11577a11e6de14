package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/wakephrase/server/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type ProfileRepository interface {
	// Upsert inserts the profile or overwrites name/goals/fears for the
	// user's existing row in a single statement.
	Upsert(ctx context.Context, profile *domain.Profile) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
}

type AlarmRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Alarm, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Alarm, error)
	// Upsert inserts the alarm or overwrites its mutable fields in a single
	// statement keyed by id.
	Upsert(ctx context.Context, alarm *domain.Alarm) error
	// DeleteOwned removes the alarm only when both id and owner match and
	// reports whether a row was deleted.
	DeleteOwned(ctx context.Context, id, userID uuid.UUID) (bool, error)
}

type Repositories struct {
	User    UserRepository
	Profile ProfileRepository
	Alarm   AlarmRepository
}
