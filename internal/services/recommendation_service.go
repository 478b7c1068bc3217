package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"ezyvoyage/internal/config"
	"ezyvoyage/internal/models/response_models"
	"ezyvoyage/internal/pipeline"
	"ezyvoyage/internal/repositories"
	"ezyvoyage/pkg/metrics"
	"ezyvoyage/pkg/utils"
)

type RecommendationServiceInterface interface {
	Recommendations(ctx context.Context, userID uuid.UUID) (response_models.Recommendations, error)
}

// RecommendationService generates trips for the user's favourite travel mode
// and for every other mode. Completion calls share one process-wide limiter.
type RecommendationService struct {
	completer pipeline.Completer
	users     repositories.UserRepository
	limiter   *rate.Limiter
	log       *zap.Logger

	tripsPerMode int
	concurrency  int
	fallback     bool
}

func NewRecommendationService(
	completer pipeline.Completer,
	users repositories.UserRepository,
	cfg *config.Config,
	log *zap.Logger,
) RecommendationServiceInterface {
	return newRecommendationService(completer, users, cfg.Recommendations, log)
}

func newRecommendationService(completer pipeline.Completer, users repositories.UserRepository, rc config.RecommendationsConfig, log *zap.Logger) *RecommendationService {
	limit := rate.Inf
	if rc.Delay > 0 {
		limit = rate.Every(rc.Delay)
	}
	concurrency := rc.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}
	return &RecommendationService{
		completer:    completer,
		users:        users,
		limiter:      rate.NewLimiter(limit, 1),
		log:          log,
		tripsPerMode: rc.TripsPerMode,
		concurrency:  concurrency,
		fallback:     rc.FallbackOnFailure,
	}
}

func (s *RecommendationService) Recommendations(ctx context.Context, userID uuid.UUID) (response_models.Recommendations, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return response_models.Recommendations{}, errors.Join(utils.ErrDatabaseError, err)
	}
	if user == nil {
		return response_models.Recommendations{}, &pipeline.NotFoundError{Resource: "user"}
	}

	favourite := user.TravelMode
	if canonical, err := pipeline.NormalizeTravelMode(favourite); err == nil {
		favourite = canonical
	}
	modes := []string{favourite}
	for _, m := range pipeline.TravelModes {
		if m != favourite {
			modes = append(modes, m)
		}
	}

	results := make([][]pipeline.Trip, len(modes))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, mode := range modes {
		g.Go(func() error {
			trips, err := s.tripsForMode(gctx, mode)
			if err != nil {
				return err
			}
			results[i] = trips
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return response_models.Recommendations{}, err
	}

	out := response_models.Recommendations{
		UserTravelMode: user.TravelMode,
		FavoriteTrips:  results[0],
		OtherTrips:     make(map[string][]pipeline.Trip, len(modes)-1),
	}
	for i, mode := range modes[1:] {
		out.OtherTrips[mode] = results[i+1]
	}
	return out, nil
}

// tripsForMode runs one recommendation pipeline. With fallback enabled a
// failed run yields the static catalog for the mode.
func (s *RecommendationService) tripsForMode(ctx context.Context, mode string) ([]pipeline.Trip, error) {
	trips, err := s.runMode(ctx, mode)
	if err == nil {
		return trips, nil
	}
	if s.fallback && ctx.Err() == nil {
		s.log.Warn("using fallback trips", zap.String("travel_mode", mode), zap.Error(err))
		return pipeline.FallbackTrips(mode, s.tripsPerMode), nil
	}
	return nil, err
}

func (s *RecommendationService) runMode(ctx context.Context, mode string) (trips []pipeline.Trip, err error) {
	tr := pipeline.NewTrace("recommendations")
	defer func() {
		metrics.ObservePipeline(tr.UseCase, tr.Outcome(), tr.Elapsed())
		if err != nil {
			s.log.Info("recommendation run failed",
				zap.String("travel_mode", mode),
				zap.Stringer("reached", tr.Reached()),
				zap.Error(err))
		}
	}()
	tr.Advance(pipeline.StageValidated)

	prompt := pipeline.RecommendationPrompt(mode, s.tripsPerMode)
	tr.Advance(pipeline.StagePromptBuilt)

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, tr.Fail(err)
	}
	text, err := s.completer.Complete(ctx, prompt)
	if err != nil {
		return nil, tr.Fail(pipeline.AsServiceError("completion", err))
	}
	tr.Advance(pipeline.StageModelCalled)

	var raw pipeline.RawTrips
	if err := pipeline.ExtractInto(text, pipeline.ShapeObject, &raw); err != nil {
		return nil, tr.Fail(err)
	}
	tr.Advance(pipeline.StageExtracted)

	trips = pipeline.FormatTrips(raw.Trips, s.tripsPerMode)
	tr.Advance(pipeline.StageFormatted)
	tr.Advance(pipeline.StageDone)
	return trips, nil
}
