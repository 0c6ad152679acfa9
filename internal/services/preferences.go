package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/boilerplan/boilerplan-backend/internal/data/repos"
	types "github.com/boilerplan/boilerplan-backend/internal/domain"
	"github.com/boilerplan/boilerplan-backend/internal/engine/courseutil"
	"github.com/boilerplan/boilerplan-backend/internal/platform/logger"
)

type PreferencesService interface {
	GetPreferences(ctx context.Context, userID uuid.UUID) (*types.UserPreferences, error)
	UpsertPreferences(ctx context.Context, prefs *types.UserPreferences) (*types.UserPreferences, error)
}

type preferencesService struct {
	db        *gorm.DB
	log       *logger.Logger
	prefsRepo repos.PreferencesRepo
}

func NewPreferencesService(db *gorm.DB, log *logger.Logger, prefsRepo repos.PreferencesRepo) PreferencesService {
	return &preferencesService{
		db:        db,
		log:       log.With("service", "PreferencesService"),
		prefsRepo: prefsRepo,
	}
}

// GetPreferences returns the user's questionnaire snapshot, or an empty
// snapshot when the user has never saved one.
func (ps *preferencesService) GetPreferences(ctx context.Context, userID uuid.UUID) (*types.UserPreferences, error) {
	prefs, err := ps.prefsRepo.GetByUserID(ctx, nil, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &types.UserPreferences{UserID: userID}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get preferences: %w", err)
	}
	return prefs, nil
}

func (ps *preferencesService) UpsertPreferences(ctx context.Context, prefs *types.UserPreferences) (*types.UserPreferences, error) {
	if prefs.UserID == uuid.Nil {
		return nil, fmt.Errorf("preferences require a user id")
	}
	if prefs.TargetGPA != nil {
		if err := courseutil.ValidateGPA(*prefs.TargetGPA); err != nil {
			return nil, fmt.Errorf("target gpa: %w", err)
		}
	}
	switch prefs.PreferredDifficulty {
	case "", "easy", "moderate", "challenging":
	default:
		return nil, fmt.Errorf("unknown preferred difficulty %q", prefs.PreferredDifficulty)
	}

	saved, err := ps.prefsRepo.Upsert(ctx, nil, prefs)
	if err != nil {
		return nil, fmt.Errorf("upsert preferences: %w", err)
	}
	return saved, nil
}
