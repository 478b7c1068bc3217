package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"ezyvoyage/internal/models/response_models"
	"ezyvoyage/internal/pipeline"
	"ezyvoyage/internal/repositories"
	"ezyvoyage/pkg/metrics"
	"ezyvoyage/pkg/utils"
)

type AdvisoryServiceInterface interface {
	UserNationality(ctx context.Context, userID uuid.UUID) (string, error)
	AdvisoryURL(ctx context.Context, userID uuid.UUID, destinationCountry string) (response_models.AdvisoryData, error)
}

type AdvisoryService struct {
	completer pipeline.Completer
	users     repositories.UserRepository
	log       *zap.Logger
}

func NewAdvisoryService(completer pipeline.Completer, users repositories.UserRepository, log *zap.Logger) AdvisoryServiceInterface {
	return &AdvisoryService{completer: completer, users: users, log: log}
}

func (s *AdvisoryService) UserNationality(ctx context.Context, userID uuid.UUID) (string, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return "", errors.Join(utils.ErrDatabaseError, err)
	}
	if user == nil {
		return "", utils.ErrUserNotFound
	}
	return user.Nationality, nil
}

func (s *AdvisoryService) AdvisoryURL(ctx context.Context, userID uuid.UUID, destinationCountry string) (out response_models.AdvisoryData, err error) {
	tr := pipeline.NewTrace("advisory")
	defer func() { metrics.ObservePipeline(tr.UseCase, tr.Outcome(), tr.Elapsed()) }()

	country := strings.TrimSpace(destinationCountry)
	if country == "" {
		return out, tr.Fail(pipeline.NewValidationError("destinationCountry", "Destination country is required"))
	}
	nationality, err := s.UserNationality(ctx, userID)
	if err != nil {
		return out, tr.Fail(err)
	}
	tr.Advance(pipeline.StageValidated)

	prompt := pipeline.AdvisoryPrompt(nationality, country)
	tr.Advance(pipeline.StagePromptBuilt)

	text, err := s.completer.Complete(ctx, prompt)
	if err != nil {
		return out, tr.Fail(pipeline.AsServiceError("completion", err))
	}
	tr.Advance(pipeline.StageModelCalled)

	advisoryURL, ok := FirstURL(text)
	if !ok {
		s.log.Warn("advisory response has no url", zap.String("destination", country), zap.String("response", text))
		return out, tr.Fail(utils.ErrAdvisoryURL)
	}
	tr.Advance(pipeline.StageExtracted)
	tr.Advance(pipeline.StageDone)

	return response_models.AdvisoryData{
		AdvisoryURL:        advisoryURL,
		UserNationality:    nationality,
		DestinationCountry: country,
	}, nil
}

// FirstURL takes the first token of the completion and accepts it only when
// it is an http or https URL.
func FirstURL(text string) (string, bool) {
	fields := strings.Fields(StripMarkdownLink(text))
	if len(fields) == 0 {
		return "", false
	}
	token := strings.Trim(fields[0], "<>()[]\"'`.,;")
	if !strings.HasPrefix(token, "http://") && !strings.HasPrefix(token, "https://") {
		return "", false
	}
	return token, true
}

// StripMarkdownLink turns "[label](url)" into "url".
func StripMarkdownLink(text string) string {
	t := strings.TrimSpace(text)
	if strings.HasPrefix(t, "[") {
		if i := strings.Index(t, "]("); i > 0 {
			if j := strings.Index(t[i:], ")"); j > 0 {
				return t[i+2 : i+j]
			}
		}
	}
	return t
}
