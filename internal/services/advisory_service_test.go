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
	"ezyvoyage/internal/pipeline"
	"ezyvoyage/pkg/utils"
)

func TestFirstURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"https://travel.state.gov/content/travel.html", "https://travel.state.gov/content/travel.html", true},
		{"  http://www.mea.gov.in/ \n", "http://www.mea.gov.in/", true},
		{"https://www.gov.uk/foreign-travel-advice/japan and more text", "https://www.gov.uk/foreign-travel-advice/japan", true},
		{"<https://smartraveller.gov.au>.", "https://smartraveller.gov.au", true},
		{"[Advice](https://travel.gc.ca/destinations)", "https://travel.gc.ca/destinations", true},
		{"Visit https://travel.gc.ca", "", false},
		{"www.state.gov", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := FirstURL(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestAdvisoryURL(t *testing.T) {
	user := &db_models.User{Nationality: "India"}
	users := newFakeUserRepo(user)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		completer := &fakeCompleter{reply: replyWith("https://www.mea.gov.in/travel-advisory.htm")}
		svc := NewAdvisoryService(completer, users, zap.NewNop())

		out, err := svc.AdvisoryURL(ctx, user.ID, " Japan ")

		require.NoError(t, err)
		assert.Equal(t, "https://www.mea.gov.in/travel-advisory.htm", out.AdvisoryURL)
		assert.Equal(t, "India", out.UserNationality)
		assert.Equal(t, "Japan", out.DestinationCountry)
		assert.Contains(t, completer.prompts[0], "India citizens traveling to Japan")
	})
	t.Run("no url", func(t *testing.T) {
		svc := NewAdvisoryService(&fakeCompleter{reply: replyWith("I am not sure.")}, users, zap.NewNop())
		_, err := svc.AdvisoryURL(ctx, user.ID, "Japan")
		assert.ErrorIs(t, err, utils.ErrAdvisoryURL)
	})
	t.Run("missing country", func(t *testing.T) {
		completer := &fakeCompleter{reply: replyWith("https://x")}
		svc := NewAdvisoryService(completer, users, zap.NewNop())
		_, err := svc.AdvisoryURL(ctx, user.ID, "")
		var ve *pipeline.ValidationError
		assert.ErrorAs(t, err, &ve)
		assert.Zero(t, completer.calls())
	})
	t.Run("unknown user", func(t *testing.T) {
		svc := NewAdvisoryService(&fakeCompleter{reply: replyWith("https://x")}, users, zap.NewNop())
		_, err := svc.AdvisoryURL(ctx, uuid.New(), "Japan")
		assert.ErrorIs(t, err, utils.ErrUserNotFound)
	})
	t.Run("completion failure", func(t *testing.T) {
		svc := NewAdvisoryService(&fakeCompleter{reply: func(string) (string, error) { return "", errors.New("boom") }}, users, zap.NewNop())
		_, err := svc.AdvisoryURL(ctx, user.ID, "Japan")
		var se *pipeline.ServiceError
		assert.ErrorAs(t, err, &se)
	})
}
