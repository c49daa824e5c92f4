package gemini

//go:generate go run go.uber.org/mock/mockgen -source=./gemini.go -destination=./mocks/gemini_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"

	"luxeroom/config"
	"luxeroom/shared/failure"

	genai "github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

// Drafter generates short guest-facing texts. The booking flow never depends
// on it: a failed draft is surfaced to the caller and nothing else.
type Drafter interface {
	DraftWelcomeNote(ctx context.Context, guestName string, nights int, roomLabel string) (string, error)
}

type drafterImpl struct {
	model *genai.GenerativeModel
}

func New(cfg *config.Config) Drafter {
	if cfg.External.Gemini.APIKey == "" {
		log.Warn().Msg("No Gemini API key configured, note drafting is unavailable")

		return &drafterImpl{}
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.External.Gemini.APIKey))
	if err != nil {
		log.Error().Err(err).Msg("Failed to create Gemini client, note drafting is unavailable")

		return &drafterImpl{}
	}

	return &drafterImpl{
		model: client.GenerativeModel(cfg.External.Gemini.Model),
	}
}

func (d *drafterImpl) DraftWelcomeNote(ctx context.Context, guestName string, nights int, roomLabel string) (string, error) {
	if d.model == nil {
		return "", failure.ServiceUnavailable("note drafting is not configured")
	}

	prompt := fmt.Sprintf(
		"Create a short, professional welcome note for a guest named %s staying for %d night(s) in %s. Keep it under 40 words.",
		guestName, nights, roomLabel,
	)

	resp, err := d.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Error().Err(err).Msg("Gemini generation failed")

		return "", failure.ServiceUnavailable("could not generate note")
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", failure.ServiceUnavailable("empty response from model")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}

	note := strings.TrimSpace(sb.String())
	if note == "" {
		return "", failure.ServiceUnavailable("empty response from model")
	}

	return note, nil
}
