package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"practicecoach/internal/cache"
	"practicecoach/internal/model"
	"practicecoach/internal/repository"
)

const maxPreferences = 20

// ProfileService reads and edits learner profiles
type ProfileService struct {
	profiles     repository.ProfileRepo
	institutions repository.InstitutionRepo
	cache        cache.ProfileCache
	logger       *zap.Logger
}

// NewProfileService creates a new profile service
func NewProfileService(profiles repository.ProfileRepo, institutions repository.InstitutionRepo, profileCache cache.ProfileCache, logger *zap.Logger) *ProfileService {
	return &ProfileService{
		profiles:     profiles,
		institutions: institutions,
		cache:        profileCache,
		logger:       logger.Named("profile"),
	}
}

// Get returns a profile, reading through the cache
func (s *ProfileService) Get(ctx context.Context, userID string) (*model.UserProfile, error) {
	if p, err := s.cache.Get(ctx, userID); err != nil {
		s.logger.Warn("profile cache read failed", zap.String("userId", userID), zap.Error(err))
	} else if p != nil {
		return p, nil
	}

	p, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}

	if err := s.cache.Set(ctx, p); err != nil {
		s.logger.Warn("profile cache write failed", zap.String("userId", userID), zap.Error(err))
	}
	return p, nil
}

// Update applies the non-nil fields of req
func (s *ProfileService) Update(ctx context.Context, userID string, req *model.UpdateProfileRequest) (*model.UserProfile, error) {
	p, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}

	if req.DisplayName != nil {
		name := strings.TrimSpace(*req.DisplayName)
		if name == "" {
			return nil, invalid("display name cannot be empty")
		}
		p.DisplayName = name
	}

	if req.InstitutionID != nil {
		id := strings.TrimSpace(*req.InstitutionID)
		if id != "" {
			inst, err := s.institutions.GetByID(ctx, id)
			if err != nil {
				return nil, err
			}
			if inst == nil {
				return nil, invalid("unknown institution")
			}
		}
		p.InstitutionID = id
	}

	if req.Preferences != nil {
		if len(req.Preferences) > maxPreferences {
			return nil, invalid("too many preferences")
		}
		p.Preferences = req.Preferences
	}

	if err := s.profiles.Update(ctx, p); err != nil {
		return nil, err
	}
	if err := s.cache.Delete(ctx, userID); err != nil {
		s.logger.Warn("profile cache invalidation failed", zap.String("userId", userID), zap.Error(err))
	}
	return p, nil
}
