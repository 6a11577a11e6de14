package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wakephrase/server/internal/testutil"
)

func TestPhraseHandler_Generate(t *testing.T) {
	ts := testutil.NewTestServer(t)

	user, _ := testutil.NewUserBuilder().Build(t, ts.DB.DB)
	testutil.NewProfileBuilder(user.ID).
		WithGoals("run a marathon").
		WithFears("wasted years").
		Build(t, ts.DB.DB)

	getPhrase := func(query string) *http.Response {
		resp, err := http.Get(ts.URL("/phrase" + query))
		require.NoError(t, err)
		return resp
	}

	t.Run("dismiss and snooze return phrases from distinct prompts", func(t *testing.T) {
		before := ts.Completion.CallCount()

		dismiss := getPhrase("?user_id=" + user.ID.String() + "&action=dismiss")
		defer dismiss.Body.Close()
		testutil.AssertStatusCode(t, dismiss, http.StatusOK)

		var result struct {
			Phrase string `json:"phrase"`
		}
		testutil.AssertJSONResponse(t, dismiss, &result)
		assert.NotEmpty(t, result.Phrase)

		snooze := getPhrase("?user_id=" + user.ID.String() + "&action=snooze")
		defer snooze.Body.Close()
		testutil.AssertStatusCode(t, snooze, http.StatusOK)

		prompts := ts.Completion.Prompts()
		require.Len(t, prompts, before+2)
		assert.NotEqual(t, prompts[before], prompts[before+1])
		assert.Contains(t, prompts[before], "run a marathon")
		assert.Contains(t, prompts[before+1], "wasted years")
	})

	t.Run("missing parameters", func(t *testing.T) {
		resp := getPhrase("?action=dismiss")
		defer resp.Body.Close()
		testutil.AssertErrorResponse(t, resp, http.StatusBadRequest, "User ID and action are required")
	})

	t.Run("unrecognized action never reaches the completion service", func(t *testing.T) {
		before := ts.Completion.CallCount()

		resp := getPhrase("?user_id=" + user.ID.String() + "&action=shuffle")
		defer resp.Body.Close()
		testutil.AssertErrorResponse(t, resp, http.StatusBadRequest, "Invalid action")
		assert.Equal(t, before, ts.Completion.CallCount())
	})

	t.Run("no profile never reaches the completion service", func(t *testing.T) {
		fresh, _ := testutil.NewUserBuilder().Build(t, ts.DB.DB)
		before := ts.Completion.CallCount()

		resp := getPhrase("?user_id=" + fresh.ID.String() + "&action=dismiss")
		defer resp.Body.Close()
		testutil.AssertErrorResponse(t, resp, http.StatusBadRequest, "No user profile found")
		assert.Equal(t, before, ts.Completion.CallCount())
	})

	t.Run("upstream failure is a server error", func(t *testing.T) {
		ts.Completion.Err = errors.New("completion service unavailable")
		defer func() { ts.Completion.Err = nil }()

		resp := getPhrase("?user_id=" + user.ID.String() + "&action=dismiss")
		defer resp.Body.Close()
		testutil.AssertErrorResponse(t, resp, http.StatusInternalServerError, "Failed to generate phrase")
	})
}
