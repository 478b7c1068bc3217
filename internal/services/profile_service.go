package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ezyvoyage/internal/models/db_models"
	"ezyvoyage/internal/models/request_models"
	"ezyvoyage/internal/models/response_models"
	"ezyvoyage/internal/pipeline"
	"ezyvoyage/internal/repositories"
	"ezyvoyage/pkg/utils"
)

// ProfileService backs both the dashboard and the user profile endpoints.
type ProfileService interface {
	Profile(ctx context.Context, userID uuid.UUID) (*db_models.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, request request_models.UpdateProfileRequest) (*db_models.User, error)
	UpdateTravelMode(ctx context.Context, userID uuid.UUID, travelMode string) (*db_models.User, error)
	Stats(ctx context.Context, userID uuid.UUID) (response_models.UserStats, error)
}

type profileService struct {
	users repositories.UserRepository
	now   func() time.Time
}

func NewProfileService(users repositories.UserRepository) ProfileService {
	return &profileService{users: users, now: time.Now}
}

func (s *profileService) Profile(ctx context.Context, userID uuid.UUID) (*db_models.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.Join(utils.ErrDatabaseError, err)
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}
	return user, nil
}

func (s *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, request request_models.UpdateProfileRequest) (*db_models.User, error) {
	user, err := s.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if request.FullName != nil {
		user.FullName = strings.TrimSpace(*request.FullName)
	}
	if request.Nationality != nil {
		user.Nationality = *request.Nationality
	}
	if request.Gender != nil {
		user.Gender = *request.Gender
	}
	if request.Age != nil {
		user.Age = *request.Age
	}
	if request.TravelMode != nil {
		mode, err := pipeline.NormalizeTravelMode(*request.TravelMode)
		if err != nil {
			return nil, err
		}
		user.TravelMode = mode
	}

	if err := s.users.Save(ctx, user); err != nil {
		return nil, errors.Join(utils.ErrDatabaseError, err)
	}
	return user, nil
}

func (s *profileService) UpdateTravelMode(ctx context.Context, userID uuid.UUID, travelMode string) (*db_models.User, error) {
	mode, err := pipeline.NormalizeTravelMode(travelMode)
	if err != nil {
		return nil, err
	}
	if err := s.users.UpdateTravelMode(ctx, userID, mode); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrUserNotFound
		}
		return nil, errors.Join(utils.ErrDatabaseError, err)
	}
	return s.Profile(ctx, userID)
}

func (s *profileService) Stats(ctx context.Context, userID uuid.UUID) (response_models.UserStats, error) {
	user, err := s.Profile(ctx, userID)
	if err != nil {
		return response_models.UserStats{}, err
	}
	since := user.CreatedTime()
	return response_models.UserStats{
		MemberSince:     since,
		DaysSinceMember: int(s.now().Sub(since) / (24 * time.Hour)),
	}, nil
}
