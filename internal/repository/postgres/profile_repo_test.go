package postgres_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wakephrase/server/internal/domain"
	"github.com/wakephrase/server/internal/repository/postgres"
	"github.com/wakephrase/server/internal/testutil"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func newProfile(userID uuid.UUID, name string, goals, fears []string) *domain.Profile {
	goalsJSON, _ := json.Marshal(goals)
	fearsJSON, _ := json.Marshal(fears)
	return &domain.Profile{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Goals:     datatypes.JSON(goalsJSON),
		Fears:     datatypes.JSON(fearsJSON),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func TestProfileRepository_Upsert(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewProfileRepository(testDB.DB)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	// First save inserts
	first := newProfile(user.ID, "Alice", []string{"run a marathon"}, []string{"giving up"})
	require.NoError(t, repo.Upsert(ctx, first))

	// Second save for the same user overwrites in place
	second := newProfile(user.ID, "Alice B", []string{"write a book"}, []string{"stagnation"})
	require.NoError(t, repo.Upsert(ctx, second))

	got, err := repo.GetByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice B", got.Name)

	var goals []string
	require.NoError(t, json.Unmarshal(got.Goals, &goals))
	assert.Equal(t, []string{"write a book"}, goals)

	// Still exactly one row for the user
	var count int64
	require.NoError(t, testDB.DB.Model(&domain.Profile{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestProfileRepository_RoundTripWithCommas(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewProfileRepository(testDB.DB)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	goals := []string{"travel to Paris, France", "save $10,000"}
	fears := []string{"being tired, broke, and stuck"}
	require.NoError(t, repo.Upsert(ctx, newProfile(user.ID, "Alice", goals, fears)))

	got, err := repo.GetByUserID(ctx, user.ID)
	require.NoError(t, err)

	var gotGoals, gotFears []string
	require.NoError(t, json.Unmarshal(got.Goals, &gotGoals))
	require.NoError(t, json.Unmarshal(got.Fears, &gotFears))
	assert.Equal(t, goals, gotGoals)
	assert.Equal(t, fears, gotFears)
}

func TestProfileRepository_GetByUserID_Absent(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewProfileRepository(testDB.DB)
	ctx := context.Background()

	_, err := repo.GetByUserID(ctx, uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
