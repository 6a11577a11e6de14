package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wakephrase/server/internal/repository/postgres"
	"github.com/wakephrase/server/internal/service"
	"github.com/wakephrase/server/internal/testutil"
)

func TestPhraseService_Generate(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	profileService := service.NewProfileService(repos.Profile)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	testutil.NewProfileBuilder(user.ID).
		WithGoals("run a marathon", "learn piano").
		WithFears("wasted years").
		Build(t, testDB.DB)

	t.Run("dismiss and snooze use distinct prompts", func(t *testing.T) {
		stub := testutil.NewStubCompletionClient("  You said you wanted this.  ")
		phraseService := service.NewPhraseService(profileService, stub)

		dismiss, err := phraseService.Generate(ctx, user.ID, service.ActionDismiss)
		require.NoError(t, err)
		assert.Equal(t, "You said you wanted this.", dismiss) // trimmed

		snooze, err := phraseService.Generate(ctx, user.ID, service.ActionSnooze)
		require.NoError(t, err)
		assert.NotEmpty(t, snooze)

		prompts := stub.Prompts()
		require.Len(t, prompts, 2)
		assert.NotEqual(t, prompts[0], prompts[1])

		// Both prompts carry the profile's goals and fears in joined form
		for _, prompt := range prompts {
			assert.Contains(t, prompt, "run a marathon, learn piano")
			assert.Contains(t, prompt, "wasted years")
		}
		assert.Contains(t, prompts[0], "motivational")
		assert.Contains(t, prompts[1], "aggressive")
	})

	t.Run("unrecognized action fails before the completion call", func(t *testing.T) {
		stub := testutil.NewStubCompletionClient("unused")
		phraseService := service.NewPhraseService(profileService, stub)

		_, err := phraseService.Generate(ctx, user.ID, "shuffle")
		assert.ErrorIs(t, err, service.ErrInvalidAction)
		assert.Zero(t, stub.CallCount())
	})

	t.Run("missing profile fails before the completion call", func(t *testing.T) {
		stub := testutil.NewStubCompletionClient("unused")
		phraseService := service.NewPhraseService(profileService, stub)

		_, err := phraseService.Generate(ctx, uuid.New(), service.ActionDismiss)
		assert.ErrorIs(t, err, service.ErrProfileNotFound)
		assert.Zero(t, stub.CallCount())
	})

	t.Run("upstream failure surfaces as ErrPhraseUpstream", func(t *testing.T) {
		stub := testutil.NewStubCompletionClient("")
		stub.Err = errors.New("boom")
		phraseService := service.NewPhraseService(profileService, stub)

		_, err := phraseService.Generate(ctx, user.ID, service.ActionDismiss)
		assert.ErrorIs(t, err, service.ErrPhraseUpstream)
	})

	t.Run("blank completion content is an upstream failure", func(t *testing.T) {
		stub := testutil.NewStubCompletionClient("   ")
		phraseService := service.NewPhraseService(profileService, stub)

		_, err := phraseService.Generate(ctx, user.ID, service.ActionSnooze)
		assert.ErrorIs(t, err, service.ErrPhraseUpstream)
	})
}
