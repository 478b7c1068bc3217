package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"ezyvoyage/internal/models/response_models"
	"ezyvoyage/internal/pipeline"
	"ezyvoyage/pkg/metrics"
)

type PlannerServiceInterface interface {
	GenerateItinerary(ctx context.Context, in pipeline.ItineraryInput) (response_models.ItineraryData, error)
	PopularSpots(ctx context.Context, location, spotType string) (response_models.PopularSpotsResult, error)
	HiddenGems(ctx context.Context, location, spotType string) (response_models.HiddenGemsResult, error)
}

// PlannerService runs the single-call pipelines: itinerary, popular spots and
// hidden gems.
type PlannerService struct {
	completer pipeline.Completer
	fetcher   *pipeline.ContextFetcher
	photos    PhotoServiceInterface
	log       *zap.Logger

	observe func(*pipeline.Trace)
}

func NewPlannerService(
	completer pipeline.Completer,
	fetcher *pipeline.ContextFetcher,
	photos PhotoServiceInterface,
	log *zap.Logger,
) PlannerServiceInterface {
	return newPlannerService(completer, fetcher, photos, log)
}

func newPlannerService(completer pipeline.Completer, fetcher *pipeline.ContextFetcher, photos PhotoServiceInterface, log *zap.Logger) *PlannerService {
	s := &PlannerService{completer: completer, fetcher: fetcher, photos: photos, log: log}
	s.observe = s.record
	return s
}

func (s *PlannerService) GenerateItinerary(ctx context.Context, in pipeline.ItineraryInput) (out response_models.ItineraryData, err error) {
	tr := pipeline.NewTrace("itinerary")
	defer func() { s.observe(tr) }()

	req, err := pipeline.NormalizeItinerary(in)
	if err != nil {
		return out, tr.Fail(err)
	}
	tr.Advance(pipeline.StageValidated)

	dc := s.fetcher.Fetch(ctx, req.Destination, req.TravelType)
	tr.Advance(pipeline.StageContextGathered)

	fc := pipeline.FilterContext(dc, req.NumberOfPeople, req.TravelType)
	tr.Advance(pipeline.StageFiltered)

	prompt := pipeline.ItineraryPrompt(req, fc)
	tr.Advance(pipeline.StagePromptBuilt)

	text, err := s.completer.Complete(ctx, prompt)
	if err != nil {
		return out, tr.Fail(pipeline.AsServiceError("completion", err))
	}
	tr.Advance(pipeline.StageModelCalled)

	// The itinerary is free text; only an empty answer is unusable.
	itinerary := strings.TrimSpace(text)
	if itinerary == "" {
		return out, tr.Fail(&pipeline.MalformedResponseError{Reason: "empty itinerary"})
	}
	tr.Advance(pipeline.StageExtracted)

	out = response_models.ItineraryData{
		Itinerary:         itinerary,
		Destination:       req.Destination,
		NumberOfDays:      req.NumberOfDays,
		NumberOfPeople:    req.NumberOfPeople,
		TravelType:        req.TravelType,
		DestinationImages: s.photos.DestinationImages(ctx, req.Destination),
	}
	tr.Advance(pipeline.StageFormatted)
	tr.Advance(pipeline.StageDone)
	return out, nil
}

func (s *PlannerService) PopularSpots(ctx context.Context, location, spotType string) (out response_models.PopularSpotsResult, err error) {
	tr := pipeline.NewTrace("popular_spots")
	defer func() { s.observe(tr) }()

	req, err := pipeline.NormalizePopularSpots(location, spotType)
	if err != nil {
		return out, tr.Fail(err)
	}
	tr.Advance(pipeline.StageValidated)

	prompt := pipeline.PopularSpotsPrompt(req)
	tr.Advance(pipeline.StagePromptBuilt)

	text, err := s.completer.Complete(ctx, prompt)
	if err != nil {
		return out, tr.Fail(pipeline.AsServiceError("completion", err))
	}
	tr.Advance(pipeline.StageModelCalled)

	var raw []pipeline.RawPopularSpot
	if err := pipeline.ExtractInto(text, pipeline.ShapeArray, &raw); err != nil {
		s.log.Warn("popular spots response not parseable", zap.String("location", req.Location), zap.Error(err))
		return out, tr.Fail(err)
	}
	tr.Advance(pipeline.StageExtracted)

	out = response_models.PopularSpotsResult{
		Spots:    pipeline.FormatPopularSpots(raw, req.Location),
		Location: req.Location,
		SpotType: req.SpotType,
	}
	tr.Advance(pipeline.StageFormatted)
	tr.Advance(pipeline.StageDone)
	return out, nil
}

func (s *PlannerService) HiddenGems(ctx context.Context, location, spotType string) (out response_models.HiddenGemsResult, err error) {
	tr := pipeline.NewTrace("hidden_gems")
	defer func() { s.observe(tr) }()

	req, err := pipeline.NormalizeHiddenGems(location, spotType)
	if err != nil {
		return out, tr.Fail(err)
	}
	tr.Advance(pipeline.StageValidated)

	prompt := pipeline.HiddenGemsPrompt(req)
	tr.Advance(pipeline.StagePromptBuilt)

	text, err := s.completer.Complete(ctx, prompt)
	if err != nil {
		return out, tr.Fail(pipeline.AsServiceError("completion", err))
	}
	tr.Advance(pipeline.StageModelCalled)

	var raw pipeline.RawHiddenGems
	if err := pipeline.ExtractInto(text, pipeline.ShapeObject, &raw); err != nil {
		s.log.Warn("hidden gems response not parseable", zap.String("location", req.Location), zap.Error(err))
		return out, tr.Fail(err)
	}
	tr.Advance(pipeline.StageExtracted)

	out = response_models.HiddenGemsResult{
		Spots:    pipeline.FormatHiddenGems(raw.Spots, req.Location),
		Location: req.Location,
		SpotType: req.SpotType,
	}
	if len(out.Spots) == 0 {
		out.Message = pipeline.EmptySpotsMessage(req.SpotType, req.Location)
	}
	tr.Advance(pipeline.StageFormatted)
	tr.Advance(pipeline.StageDone)
	return out, nil
}

func (s *PlannerService) record(tr *pipeline.Trace) {
	metrics.ObservePipeline(tr.UseCase, tr.Outcome(), tr.Elapsed())
	if tr.Stage() == pipeline.StageFailed {
		s.log.Info("pipeline failed",
			zap.String("use_case", tr.UseCase),
			zap.Stringer("reached", tr.Reached()),
			zap.String("kind", tr.Outcome()),
			zap.Error(tr.Cause()),
			zap.Duration("elapsed", tr.Elapsed()))
		return
	}
	s.log.Debug("pipeline done", zap.String("use_case", tr.UseCase), zap.Duration("elapsed", tr.Elapsed()))
}
