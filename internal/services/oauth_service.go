package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"ezyvoyage/internal/config"
	"ezyvoyage/internal/models/db_models"
	"ezyvoyage/internal/pipeline"
	"ezyvoyage/internal/repositories"
	mem "ezyvoyage/pkg/memcache"
	"ezyvoyage/pkg/utils"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

type GoogleProfile struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
}

type OAuthServiceInterface interface {
	Enabled() bool
	AuthURL(ctx context.Context) (string, error)
	// Callback returns the session token for the signed-in user.
	Callback(ctx context.Context, state, code string) (string, error)
	SuccessRedirect(token string) string
	ErrorRedirect() string
}

type OAuthService struct {
	oauth       *oauth2.Config
	enabled     bool
	stateTTL    time.Duration
	clientURL   string
	userInfoURL string

	users  repositories.UserRepository
	tokens *utils.TokenManager
	store  mem.TokenStore
	log    *zap.Logger
}

func NewOAuthService(
	cfg *config.Config,
	users repositories.UserRepository,
	tokens *utils.TokenManager,
	store mem.TokenStore,
	log *zap.Logger,
) OAuthServiceInterface {
	g := cfg.OAuth.Google
	return &OAuthService{
		oauth: &oauth2.Config{
			ClientID:     g.ClientID,
			ClientSecret: g.ClientSecret,
			RedirectURL:  g.RedirectURL,
			Scopes:       []string{"profile", "email"},
			Endpoint:     google.Endpoint,
		},
		enabled:     g.Enabled(),
		stateTTL:    g.StateTTL,
		clientURL:   cfg.App.ClientURL,
		userInfoURL: googleUserInfoURL,
		users:       users,
		tokens:      tokens,
		store:       store,
		log:         log,
	}
}

func (s *OAuthService) Enabled() bool { return s.enabled }

func (s *OAuthService) AuthURL(ctx context.Context) (string, error) {
	state, err := utils.GenerateSecureToken(16)
	if err != nil {
		return "", err
	}
	if err := mem.SaveOAuthState(ctx, s.store, state, s.stateTTL); err != nil {
		return "", fmt.Errorf("save oauth state: %w", err)
	}
	return s.oauth.AuthCodeURL(state), nil
}

func (s *OAuthService) Callback(ctx context.Context, state, code string) (string, error) {
	ok, err := mem.ConsumeOAuthState(ctx, s.store, state)
	if err != nil {
		return "", fmt.Errorf("consume oauth state: %w", err)
	}
	if !ok || code == "" {
		return "", utils.ErrInvalidOAuthState
	}

	tok, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		return "", pipeline.AsServiceError("google_oauth", err)
	}
	profile, err := s.fetchProfile(ctx, s.oauth.Client(ctx, tok))
	if err != nil {
		return "", pipeline.AsServiceError("google_oauth", err)
	}

	user, err := s.findOrCreate(ctx, profile)
	if err != nil {
		return "", err
	}
	return s.tokens.CreateToken(user.ID)
}

func (s *OAuthService) fetchProfile(ctx context.Context, client *http.Client) (GoogleProfile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.userInfoURL, nil)
	if err != nil {
		return GoogleProfile{}, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return GoogleProfile{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return GoogleProfile{}, fmt.Errorf("userinfo bad status: %s", resp.Status)
	}
	var p GoogleProfile
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return GoogleProfile{}, fmt.Errorf("userinfo decode: %w", err)
	}
	if p.ID == "" || p.Email == "" {
		return GoogleProfile{}, errors.New("userinfo missing id or email")
	}
	return p, nil
}

// findOrCreate matches on the Google ID first, then links an existing
// account with the same e-mail, and otherwise creates a new user.
func (s *OAuthService) findOrCreate(ctx context.Context, p GoogleProfile) (*db_models.User, error) {
	user, err := s.users.FindByGoogleID(ctx, p.ID)
	if err != nil {
		return nil, errors.Join(utils.ErrDatabaseError, err)
	}
	if user != nil {
		return user, nil
	}

	user, err = s.users.FindByEmail(ctx, p.Email)
	if err != nil {
		return nil, errors.Join(utils.ErrDatabaseError, err)
	}
	googleID := p.ID
	if user != nil {
		user.GoogleID = &googleID
		user.IsEmailVerified = user.IsEmailVerified || p.VerifiedEmail
		if err := s.users.Save(ctx, user); err != nil {
			return nil, errors.Join(utils.ErrDatabaseError, err)
		}
		s.log.Info("linked google account", zap.String("user_id", user.ID.String()))
		return user, nil
	}

	name := strings.TrimSpace(p.Name)
	if name == "" {
		name = strings.Split(p.Email, "@")[0]
	}
	if len([]rune(name)) > 50 {
		name = string([]rune(name)[:50])
	}
	user = &db_models.User{
		FullName:        name,
		Email:           p.Email,
		GoogleID:        &googleID,
		Nationality:     db_models.NationalityNotSpecified,
		Gender:          db_models.GenderPreferNotToSay,
		Age:             0,
		TravelMode:      pipeline.TravelModes[0],
		IsEmailVerified: true,
	}
	if err := s.users.Insert(ctx, user); err != nil {
		return nil, errors.Join(utils.ErrDatabaseError, err)
	}
	s.log.Info("created user from google sign-in", zap.String("user_id", user.ID.String()))
	return user, nil
}

func (s *OAuthService) SuccessRedirect(token string) string {
	return s.clientURL + "/auth/success?token=" + token
}

func (s *OAuthService) ErrorRedirect() string {
	return s.clientURL + "/auth/error"
}
