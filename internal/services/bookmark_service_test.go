package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ezyvoyage/internal/models/db_models"
	"ezyvoyage/internal/models/request_models"
	"ezyvoyage/internal/pipeline"
	"ezyvoyage/internal/repositories"
	"ezyvoyage/pkg/utils"
)

func newBookmarkFixture() (*BookmarkService, *fakeBookmarkRepo, *fakeEmbedder, *db_models.User) {
	user := &db_models.User{Email: "b@example.com", TravelMode: "Relaxation"}
	repo := &fakeBookmarkRepo{}
	embedder := &fakeEmbedder{}
	svc := NewBookmarkService(repo, newFakeUserRepo(user), embedder, zap.NewNop()).(*BookmarkService)
	return svc, repo, embedder, user
}

func TestBookmarks_AddAndDuplicate(t *testing.T) {
	svc, repo, embedder, user := newBookmarkFixture()
	ctx := context.Background()
	req := request_models.AddBookmarkRequest{Title: "Kyoto Temples", Location: "Kyoto, Japan", Description: "Zen gardens", TravelMode: "exploring cultural heritage"}

	out, err := svc.Add(ctx, user.ID, req)
	require.NoError(t, err)
	assert.Equal(t, "Exploring Cultural Heritage", out.TravelMode)
	assert.Equal(t, []string{"Kyoto Temples. Kyoto, Japan. Zen gardens"}, embedder.texts)
	require.Len(t, repo.embeddings, 1)
	assert.Equal(t, []string{"kyoto", "temples", "japan", "zen", "gardens"}, []string(repo.embeddings[0].Keywords))

	_, err = svc.Add(ctx, user.ID, req)
	assert.ErrorIs(t, err, utils.ErrBookmarkExists)

	_, err = svc.Add(ctx, uuid.New(), req)
	assert.ErrorIs(t, err, utils.ErrUserNotFound)
}

func TestBookmarks_AddRaceHitsUniqueIndex(t *testing.T) {
	svc, repo, _, user := newBookmarkFixture()
	ctx := context.Background()
	req := request_models.AddBookmarkRequest{Title: "Ha Long Bay", Location: "Quang Ninh, Vietnam", TravelMode: "Relaxation"}

	_, err := svc.Add(ctx, user.ID, req)
	require.NoError(t, err)

	repo.hideExisting = true
	_, err = svc.Add(ctx, user.ID, req)

	assert.ErrorIs(t, err, utils.ErrBookmarkExists)
	assert.NotErrorIs(t, err, utils.ErrDatabaseError)
	assert.Len(t, repo.list, 1)
}

func TestBookmarks_EmbeddingFailureDegrades(t *testing.T) {
	svc, repo, embedder, user := newBookmarkFixture()
	embedder.err = utils.ErrAINotConfigured

	_, err := svc.Add(context.Background(), user.ID, request_models.AddBookmarkRequest{Title: "Petra", Location: "Wadi Musa, Jordan", TravelMode: "Trekking"})

	require.NoError(t, err)
	assert.Len(t, repo.list, 1)
	assert.Empty(t, repo.embeddings)

	similar, err := svc.Similar(context.Background(), user.ID, "Petra", "Wadi Musa, Jordan")
	require.NoError(t, err)
	assert.NotNil(t, similar)
	assert.Empty(t, similar)
}

func TestBookmarks_RemoveClearGroup(t *testing.T) {
	svc, _, _, user := newBookmarkFixture()
	ctx := context.Background()
	for _, b := range []request_models.AddBookmarkRequest{
		{Title: "A", Location: "Bali, Indonesia", TravelMode: "Relaxation"},
		{Title: "B", Location: "Annapurna, Nepal", TravelMode: "Trekking"},
		{Title: "C", Location: "Maldives", TravelMode: "Honeymoon"},
	} {
		_, err := svc.Add(ctx, user.ID, b)
		require.NoError(t, err)
	}

	list, err := svc.List(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "C", list[0].Title)

	grouped, total, err := svc.GroupByMode(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, grouped, len(pipeline.TravelModes))
	assert.Len(t, grouped["Trekking"], 1)
	assert.Empty(t, grouped["Educational"])

	remaining, err := svc.Remove(ctx, user.ID, "B", "Annapurna, Nepal")
	require.NoError(t, err)
	assert.Equal(t, int64(2), remaining)

	_, err = svc.Remove(ctx, user.ID, "B", "Annapurna, Nepal")
	assert.ErrorIs(t, err, utils.ErrBookmarkNotFound)

	cleared, err := svc.Clear(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), cleared)
}

func TestBookmarks_Similar(t *testing.T) {
	svc, repo, embedder, user := newBookmarkFixture()
	repo.similar = []repositories.BookmarkSimilarity{
		{Bookmark: db_models.Bookmark{Title: "Nara", Location: "Nara, Japan"}, Similarity: 0.91},
	}

	out, err := svc.Similar(context.Background(), user.ID, "Kyoto", "Kyoto, Japan")

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Nara", out[0].Title)
	assert.InDelta(t, 0.91, out[0].Similarity, 1e-9)
	assert.Equal(t, []string{"Kyoto. Kyoto, Japan"}, embedder.texts)

	_, err = svc.Similar(context.Background(), user.ID, "", " ")
	var ve *pipeline.ValidationError
	assert.True(t, errors.As(err, &ve))
}

func TestKeywords(t *testing.T) {
	assert.Equal(t, []string{"maldives", "romantic", "overwater", "bungalow", "malé"},
		Keywords("Maldives Romantic Overwater Bungalow", "Malé, Maldives"))
	assert.Equal(t, []string{"petra", "wadi", "musa", "jordan", "rose", "city", "carved", "rock"},
		Keywords("Petra", "Wadi Musa, Jordan", "Rose city carved in rock"))
	assert.Empty(t, Keywords("", "", ""))
}
