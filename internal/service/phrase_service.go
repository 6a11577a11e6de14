package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/wakephrase/server/internal/llm"
)

var (
	ErrInvalidAction  = errors.New("invalid action")
	ErrPhraseUpstream = errors.New("phrase generation failed")
)

// Alarm actions selecting the prompt tone.
const (
	ActionDismiss = "dismiss"
	ActionSnooze  = "snooze"
)

type PhraseService struct {
	profiles   *ProfileService
	completion llm.CompletionClient
}

func NewPhraseService(profiles *ProfileService, completion llm.CompletionClient) *PhraseService {
	return &PhraseService{
		profiles:   profiles,
		completion: completion,
	}
}

// Generate builds a prompt from the user's profile and the given action and
// returns the trimmed completion text. Validation failures happen before
// the completion service is contacted.
func (s *PhraseService) Generate(ctx context.Context, userID uuid.UUID, action string) (string, error) {
	if action != ActionDismiss && action != ActionSnooze {
		return "", ErrInvalidAction
	}

	profile, err := s.profiles.Latest(ctx, userID)
	if err != nil {
		return "", err
	}

	prompt := renderPrompt(action, profile)

	phrase, err := s.completion.Complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrPhraseUpstream, err)
	}

	phrase = strings.TrimSpace(phrase)
	if phrase == "" {
		return "", ErrPhraseUpstream
	}

	return phrase, nil
}

func renderPrompt(action string, profile *ProfileData) string {
	template := llm.DismissPromptTemplate
	if action == ActionSnooze {
		template = llm.SnoozePromptTemplate
	}

	goals := strings.Join(profile.Goals, ", ")
	fears := strings.Join(profile.Fears, ", ")
	return fmt.Sprintf(template, goals, fears)
}
