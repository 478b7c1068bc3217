package services

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
	"go.uber.org/zap"

	"ezyvoyage/internal/models/db_models"
	"ezyvoyage/internal/models/request_models"
	"ezyvoyage/internal/models/response_models"
	"ezyvoyage/internal/pipeline"
	"ezyvoyage/internal/repositories"
	"ezyvoyage/pkg/metrics"
	"ezyvoyage/pkg/utils"
)

const SimilarBookmarksLimit = 5

// Embedder turns text into a vector for similarity search.
type Embedder interface {
	Embed(ctx context.Context, text string) (pgvector.Vector, error)
}

type BookmarkServiceInterface interface {
	Add(ctx context.Context, userID uuid.UUID, request request_models.AddBookmarkRequest) (response_models.BookmarkResponse, error)
	List(ctx context.Context, userID uuid.UUID) ([]response_models.BookmarkResponse, error)
	Remove(ctx context.Context, userID uuid.UUID, title, location string) (remaining int64, err error)
	Clear(ctx context.Context, userID uuid.UUID) (int64, error)
	GroupByMode(ctx context.Context, userID uuid.UUID) (map[string][]response_models.BookmarkResponse, int, error)
	Similar(ctx context.Context, userID uuid.UUID, title, location string) ([]response_models.SimilarBookmark, error)
}

type BookmarkService struct {
	bookmarks repositories.BookmarkRepository
	users     repositories.UserRepository
	embedder  Embedder
	log       *zap.Logger
	now       func() time.Time
}

func NewBookmarkService(
	bookmarks repositories.BookmarkRepository,
	users repositories.UserRepository,
	embedder Embedder,
	log *zap.Logger,
) BookmarkServiceInterface {
	return &BookmarkService{
		bookmarks: bookmarks,
		users:     users,
		embedder:  embedder,
		log:       log,
		now:       time.Now,
	}
}

func (s *BookmarkService) Add(ctx context.Context, userID uuid.UUID, request request_models.AddBookmarkRequest) (response_models.BookmarkResponse, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return response_models.BookmarkResponse{}, err
	}
	title, location := strings.TrimSpace(request.Title), strings.TrimSpace(request.Location)

	existing, err := s.bookmarks.FindByTitleAndLocation(ctx, userID, title, location)
	if err != nil {
		return response_models.BookmarkResponse{}, errors.Join(utils.ErrDatabaseError, err)
	}
	if existing != nil {
		return response_models.BookmarkResponse{}, utils.ErrBookmarkExists
	}

	mode, err := pipeline.NormalizeTravelMode(request.TravelMode)
	if err != nil {
		return response_models.BookmarkResponse{}, err
	}

	bookmark := &db_models.Bookmark{
		UserID:       userID,
		Title:        title,
		Location:     location,
		Description:  strings.TrimSpace(request.Description),
		TravelMode:   mode,
		BookmarkedAt: s.now().Unix(),
	}
	if err := s.bookmarks.Insert(ctx, bookmark); err != nil {
		// a concurrent Add for the same trip can slip past the lookup above
		if isUniqueViolation(err) {
			return response_models.BookmarkResponse{}, utils.ErrBookmarkExists
		}
		return response_models.BookmarkResponse{}, errors.Join(utils.ErrDatabaseError, err)
	}

	s.index(ctx, bookmark)
	return response_models.NewBookmarkResponse(*bookmark), nil
}

// index stores the bookmark embedding. Failures are logged and ignored.
func (s *BookmarkService) index(ctx context.Context, b *db_models.Bookmark) {
	vec, err := s.embedder.Embed(ctx, EmbeddingText(b.Title, b.Location, b.Description))
	if err != nil {
		metrics.AdapterFailed("embedding")
		s.log.Warn("bookmark embedding failed", zap.String("bookmark_id", b.ID.String()), zap.Error(err))
		return
	}
	emb := &db_models.BookmarkEmbedding{
		BookmarkID: b.ID,
		UserID:     b.UserID,
		Keywords:   pq.StringArray(Keywords(b.Title, b.Location, b.Description)),
		Embedding:  vec,
	}
	if err := s.bookmarks.SaveEmbedding(ctx, emb); err != nil {
		s.log.Warn("bookmark embedding not saved", zap.String("bookmark_id", b.ID.String()), zap.Error(err))
	}
}

func (s *BookmarkService) List(ctx context.Context, userID uuid.UUID) ([]response_models.BookmarkResponse, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	list, err := s.bookmarks.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Join(utils.ErrDatabaseError, err)
	}
	return response_models.NewBookmarkResponses(list), nil
}

func (s *BookmarkService) Remove(ctx context.Context, userID uuid.UUID, title, location string) (int64, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return 0, err
	}
	bookmark, err := s.bookmarks.FindByTitleAndLocation(ctx, userID, strings.TrimSpace(title), strings.TrimSpace(location))
	if err != nil {
		return 0, errors.Join(utils.ErrDatabaseError, err)
	}
	if bookmark == nil {
		return 0, utils.ErrBookmarkNotFound
	}
	if err := s.bookmarks.Delete(ctx, bookmark); err != nil {
		return 0, errors.Join(utils.ErrDatabaseError, err)
	}
	remaining, err := s.bookmarks.CountByUser(ctx, userID)
	if err != nil {
		return 0, errors.Join(utils.ErrDatabaseError, err)
	}
	return remaining, nil
}

func (s *BookmarkService) Clear(ctx context.Context, userID uuid.UUID) (int64, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return 0, err
	}
	n, err := s.bookmarks.DeleteAllByUser(ctx, userID)
	if err != nil {
		return 0, errors.Join(utils.ErrDatabaseError, err)
	}
	return n, nil
}

// GroupByMode returns every travel mode as a key, empty or not.
func (s *BookmarkService) GroupByMode(ctx context.Context, userID uuid.UUID) (map[string][]response_models.BookmarkResponse, int, error) {
	list, err := s.List(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	grouped := make(map[string][]response_models.BookmarkResponse, len(pipeline.TravelModes))
	for _, mode := range pipeline.TravelModes {
		grouped[mode] = []response_models.BookmarkResponse{}
	}
	for _, b := range list {
		grouped[b.TravelMode] = append(grouped[b.TravelMode], b)
	}
	return grouped, len(list), nil
}

// Similar ranks the user's other bookmarks by cosine distance to the given
// trip. An embedding failure yields an empty list.
func (s *BookmarkService) Similar(ctx context.Context, userID uuid.UUID, title, location string) ([]response_models.SimilarBookmark, error) {
	out := []response_models.SimilarBookmark{}
	title, location = strings.TrimSpace(title), strings.TrimSpace(location)
	if title == "" && location == "" {
		return nil, pipeline.NewValidationError("title", "Title and location are required")
	}
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	description := ""
	if b, err := s.bookmarks.FindByTitleAndLocation(ctx, userID, title, location); err == nil && b != nil {
		description = b.Description
	}

	vec, err := s.embedder.Embed(ctx, EmbeddingText(title, location, description))
	if err != nil {
		metrics.AdapterFailed("embedding")
		s.log.Warn("similarity embedding failed", zap.Error(err))
		return out, nil
	}

	rows, err := s.bookmarks.FindSimilar(ctx, userID, vec, title, location, SimilarBookmarksLimit)
	if err != nil {
		return nil, errors.Join(utils.ErrDatabaseError, err)
	}
	for _, r := range rows {
		out = append(out, response_models.SimilarBookmark{
			BookmarkResponse: response_models.NewBookmarkResponse(r.Bookmark),
			Similarity:       r.Similarity,
		})
	}
	return out, nil
}

func (s *BookmarkService) requireUser(ctx context.Context, userID uuid.UUID) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return errors.Join(utils.ErrDatabaseError, err)
	}
	if user == nil {
		return utils.ErrUserNotFound
	}
	return nil
}

func EmbeddingText(title, location, description string) string {
	parts := []string{title, location}
	if description != "" {
		parts = append(parts, description)
	}
	return strings.Join(parts, ". ")
}

// Keywords are the distinct lower-cased words of the given texts (title,
// location, description) longer than two letters, in order of appearance.
func Keywords(texts ...string) []string {
	seen := map[string]bool{}
	out := []string{}
	words := strings.FieldsFunc(strings.ToLower(strings.Join(texts, " ")), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, w := range words {
		if len([]rune(w)) <= 2 || seen[w] {
			continue
		}
		seen[w] = true
		out = append(out, w)
	}
	return out
}
