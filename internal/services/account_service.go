package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"ezyvoyage/internal/models/db_models"
	"ezyvoyage/internal/models/request_models"
	"ezyvoyage/internal/models/response_models"
	"ezyvoyage/internal/pipeline"
	"ezyvoyage/internal/repositories"
	mem "ezyvoyage/pkg/memcache"
	"ezyvoyage/pkg/utils"
)

type AccountServiceInterface interface {
	Register(ctx context.Context, request request_models.RegisterRequest) (response_models.AuthResponse, error)
	Login(ctx context.Context, request request_models.LoginRequest) (response_models.AuthResponse, error)
	Logout(ctx context.Context, claims *utils.Claims) error
}

type AccountService struct {
	userRepo repositories.UserRepository
	tokens   *utils.TokenManager
	store    mem.TokenStore
	mail     IMailService
	log      *zap.Logger
}

func NewAccountService(
	userRepo repositories.UserRepository,
	tokens *utils.TokenManager,
	store mem.TokenStore,
	mail IMailService,
	log *zap.Logger,
) AccountServiceInterface {
	return &AccountService{
		userRepo: userRepo,
		tokens:   tokens,
		store:    store,
		mail:     mail,
		log:      log,
	}
}

func (a *AccountService) Register(ctx context.Context, request request_models.RegisterRequest) (response_models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(request.Email))

	existing, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return response_models.AuthResponse{}, errors.Join(utils.ErrDatabaseError, err)
	}
	if existing != nil {
		return response_models.AuthResponse{}, utils.ErrUserAlreadyExists
	}

	travelMode, err := pipeline.NormalizeTravelMode(request.TravelMode)
	if err != nil {
		return response_models.AuthResponse{}, err
	}

	hashed, err := utils.HashPassword(request.Password)
	if err != nil {
		return response_models.AuthResponse{}, err
	}

	user := &db_models.User{
		FullName:     strings.TrimSpace(request.FullName),
		Email:        email,
		PasswordHash: &hashed,
		Nationality:  request.Nationality,
		Gender:       request.Gender,
		Age:          request.Age,
		TravelMode:   travelMode,
	}
	if err := a.userRepo.Insert(ctx, user); err != nil {
		if isUniqueViolation(err) {
			return response_models.AuthResponse{}, utils.ErrUserAlreadyExists
		}
		return response_models.AuthResponse{}, errors.Join(utils.ErrDatabaseError, err)
	}

	token, err := a.tokens.CreateToken(user.ID)
	if err != nil {
		return response_models.AuthResponse{}, err
	}

	if err := a.mail.SendWelcomeEmail(ctx, user.Email, user.FullName); err != nil {
		a.log.Warn("welcome email failed", zap.String("user_id", user.ID.String()), zap.Error(err))
	}

	return response_models.AuthResponse{Token: token, User: response_models.NewUserResponse(user)}, nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (response_models.AuthResponse, error) {
	startTime := time.Now()

	user, err := a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return response_models.AuthResponse{}, errors.Join(utils.ErrDatabaseError, err)
	}
	// Google-only accounts have no password to compare against.
	if user == nil || !user.HasPassword() {
		return response_models.AuthResponse{}, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(*user.PasswordHash, request.Password); err != nil {
		return response_models.AuthResponse{}, utils.ErrInvalidCredentials
	}

	token, err := a.tokens.CreateToken(user.ID)
	if err != nil {
		return response_models.AuthResponse{}, err
	}

	a.log.Debug("login", zap.String("user_id", user.ID.String()), zap.Duration("took", time.Since(startTime)))
	return response_models.AuthResponse{Token: token, User: response_models.NewUserResponse(user)}, nil
}

// Logout revokes the token until it would have expired anyway.
func (a *AccountService) Logout(ctx context.Context, claims *utils.Claims) error {
	if claims == nil || claims.ID == "" {
		return utils.ErrInvalidToken
	}
	return mem.RevokeToken(ctx, a.store, claims.ID, a.tokens.RemainingTTL(claims))
}

// isUniqueViolation relies on gorm.Config.TranslateError.
func isUniqueViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
