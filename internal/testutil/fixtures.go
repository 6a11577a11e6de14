package testutil

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/wakephrase/server/internal/domain"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	email    string
	password string
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		email:    fmt.Sprintf("user_%s@example.com", uuid.New().String()[:8]),
		password: "testpassword123",
	}
}

// WithEmail sets the email
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Email:        b.email,
		PasswordHash: string(hashedPassword),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// ProfileBuilder creates test profiles with a builder pattern
type ProfileBuilder struct {
	userID uuid.UUID
	name   string
	goals  []string
	fears  []string
}

// NewProfileBuilder creates a new ProfileBuilder with default values
func NewProfileBuilder(userID uuid.UUID) *ProfileBuilder {
	return &ProfileBuilder{
		userID: userID,
		name:   "Test User",
		goals:  []string{"run a marathon"},
		fears:  []string{"staying stuck"},
	}
}

// WithName sets the name
func (b *ProfileBuilder) WithName(name string) *ProfileBuilder {
	b.name = name
	return b
}

// WithGoals sets the goals
func (b *ProfileBuilder) WithGoals(goals ...string) *ProfileBuilder {
	b.goals = goals
	return b
}

// WithFears sets the fears
func (b *ProfileBuilder) WithFears(fears ...string) *ProfileBuilder {
	b.fears = fears
	return b
}

// Build creates the profile in the database
func (b *ProfileBuilder) Build(t *testing.T, db *gorm.DB) *domain.Profile {
	t.Helper()

	goalsJSON, _ := json.Marshal(b.goals)
	fearsJSON, _ := json.Marshal(b.fears)

	profile := &domain.Profile{
		ID:        uuid.New(),
		UserID:    b.userID,
		Name:      b.name,
		Goals:     datatypes.JSON(goalsJSON),
		Fears:     datatypes.JSON(fearsJSON),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := db.Create(profile).Error; err != nil {
		t.Fatalf("failed to create profile: %v", err)
	}

	return profile
}

// AlarmBuilder creates test alarms with a builder pattern
type AlarmBuilder struct {
	userID   uuid.UUID
	time     string
	label    string
	days     []string
	isActive bool
	sound    string
}

// NewAlarmBuilder creates a new AlarmBuilder with default values
func NewAlarmBuilder(userID uuid.UUID) *AlarmBuilder {
	return &AlarmBuilder{
		userID:   userID,
		time:     "07:00",
		label:    "Morning run",
		days:     []string{"mon", "wed", "fri"},
		isActive: true,
		sound:    "default",
	}
}

// WithTime sets the alarm time
func (b *AlarmBuilder) WithTime(alarmTime string) *AlarmBuilder {
	b.time = alarmTime
	return b
}

// WithLabel sets the label
func (b *AlarmBuilder) WithLabel(label string) *AlarmBuilder {
	b.label = label
	return b
}

// WithDays sets the weekday tokens
func (b *AlarmBuilder) WithDays(days ...string) *AlarmBuilder {
	b.days = days
	return b
}

// WithActive sets the active flag
func (b *AlarmBuilder) WithActive(active bool) *AlarmBuilder {
	b.isActive = active
	return b
}

// Build creates the alarm in the database
func (b *AlarmBuilder) Build(t *testing.T, db *gorm.DB) *domain.Alarm {
	t.Helper()

	daysJSON, _ := json.Marshal(b.days)

	alarm := &domain.Alarm{
		ID:        uuid.New(),
		UserID:    b.userID,
		Time:      b.time,
		Label:     b.label,
		Days:      datatypes.JSON(daysJSON),
		IsActive:  b.isActive,
		Sound:     b.sound,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := db.Create(alarm).Error; err != nil {
		t.Fatalf("failed to create alarm: %v", err)
	}

	return alarm
}
