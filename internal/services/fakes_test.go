package services

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	"ezyvoyage/internal/models/db_models"
	"ezyvoyage/internal/pipeline"
	"ezyvoyage/internal/repositories"
)

type fakeCompleter struct {
	mu      sync.Mutex
	prompts []string
	reply   func(prompt string) (string, error)
}

func (f *fakeCompleter) Complete(_ context.Context, prompt string) (string, error) {
	f.mu.Lock()
	f.prompts = append(f.prompts, prompt)
	f.mu.Unlock()
	return f.reply(prompt)
}

func (f *fakeCompleter) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.prompts)
}

func replyWith(text string) func(string) (string, error) {
	return func(string) (string, error) { return text, nil }
}

type fakeGeocoder struct {
	calls int
	err   error
}

func (f *fakeGeocoder) Geocode(context.Context, string) (pipeline.Coordinates, error) {
	f.calls++
	if f.err != nil {
		return pipeline.Coordinates{}, f.err
	}
	return pipeline.Coordinates{Lat: 19.07, Lng: 72.87}, nil
}

type fakePlaces struct {
	mu    sync.Mutex
	calls int
	byCat map[string][]pipeline.CandidateVenue
}

func (f *fakePlaces) SearchNearby(_ context.Context, _ pipeline.Coordinates, categories string, _, _ int) ([]pipeline.CandidateVenue, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.byCat[categories], nil
}

type fakePhotos struct {
	calls   int
	results map[string][]pipeline.Photo
	err     error
}

func (f *fakePhotos) SearchPhotos(_ context.Context, query string, count int) ([]pipeline.Photo, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	photos := f.results[query]
	if len(photos) > count {
		photos = photos[:count]
	}
	return photos, nil
}

type fakeMailer struct {
	sent []string
	err  error
}

func (f *fakeMailer) SendWelcomeEmail(_ context.Context, to, _ string) error {
	f.sent = append(f.sent, to)
	return f.err
}

type fakeEmbedder struct {
	err   error
	texts []string
}

func (f *fakeEmbedder) Embed(_ context.Context, text string) (pgvector.Vector, error) {
	f.texts = append(f.texts, text)
	if f.err != nil {
		return pgvector.Vector{}, f.err
	}
	return pgvector.NewVector([]float32{0.1, 0.2, 0.3}), nil
}

// fakeUserRepo keeps users in memory keyed by id.
type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*db_models.User
	err   error
}

func newFakeUserRepo(users ...*db_models.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[uuid.UUID]*db_models.User{}}
	for _, u := range users {
		if u.ID == uuid.Nil {
			u.ID = uuid.New()
		}
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) find(match func(*db_models.User) bool) (*db_models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.users {
		if match(u) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Insert(_ context.Context, user *db_models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*db_models.User, error) {
	return r.find(func(u *db_models.User) bool { return u.ID == id })
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*db_models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	return r.find(func(u *db_models.User) bool { return u.Email == email })
}

func (r *fakeUserRepo) FindByGoogleID(_ context.Context, googleID string) (*db_models.User, error) {
	return r.find(func(u *db_models.User) bool { return u.GoogleID != nil && *u.GoogleID == googleID })
}

func (r *fakeUserRepo) Save(_ context.Context, user *db_models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) UpdateTravelMode(_ context.Context, id uuid.UUID, travelMode string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.TravelMode = travelMode
	return nil
}

type fakeBookmarkRepo struct {
	list       []db_models.Bookmark
	embeddings []*db_models.BookmarkEmbedding
	similar    []repositories.BookmarkSimilarity
	// hideExisting makes FindByTitleAndLocation miss, as a racing writer would.
	hideExisting bool
}

func (r *fakeBookmarkRepo) Insert(_ context.Context, b *db_models.Bookmark) error {
	for _, existing := range r.list {
		if existing.UserID == b.UserID && existing.Title == b.Title && existing.Location == b.Location {
			return gorm.ErrDuplicatedKey
		}
	}
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	r.list = append(r.list, *b)
	return nil
}

func (r *fakeBookmarkRepo) FindByTitleAndLocation(_ context.Context, userID uuid.UUID, title, location string) (*db_models.Bookmark, error) {
	if r.hideExisting {
		return nil, nil
	}
	for _, b := range r.list {
		if b.UserID == userID && b.Title == title && b.Location == location {
			cp := b
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeBookmarkRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]db_models.Bookmark, error) {
	var out []db_models.Bookmark
	for i := len(r.list) - 1; i >= 0; i-- {
		if r.list[i].UserID == userID {
			out = append(out, r.list[i])
		}
	}
	return out, nil
}

func (r *fakeBookmarkRepo) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	list, _ := r.ListByUser(ctx, userID)
	return int64(len(list)), nil
}

func (r *fakeBookmarkRepo) Delete(_ context.Context, b *db_models.Bookmark) error {
	for i := range r.list {
		if r.list[i].ID == b.ID {
			r.list = append(r.list[:i], r.list[i+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}

func (r *fakeBookmarkRepo) DeleteAllByUser(_ context.Context, userID uuid.UUID) (int64, error) {
	var kept []db_models.Bookmark
	var n int64
	for _, b := range r.list {
		if b.UserID == userID {
			n++
			continue
		}
		kept = append(kept, b)
	}
	r.list = kept
	return n, nil
}

func (r *fakeBookmarkRepo) SaveEmbedding(_ context.Context, e *db_models.BookmarkEmbedding) error {
	r.embeddings = append(r.embeddings, e)
	return nil
}

func (r *fakeBookmarkRepo) FindSimilar(context.Context, uuid.UUID, pgvector.Vector, string, string, int) ([]repositories.BookmarkSimilarity, error) {
	return r.similar, nil
}
