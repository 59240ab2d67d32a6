package service

import (
	"context"
	"net/mail"
	"strings"

	"go.uber.org/zap"

	"practicecoach/internal/model"
	"practicecoach/internal/repository"
)

// InstitutionService manages schools and businesses that license seats
type InstitutionService struct {
	repo   repository.InstitutionRepo
	logger *zap.Logger
}

// NewInstitutionService creates a new institution service
func NewInstitutionService(repo repository.InstitutionRepo, logger *zap.Logger) *InstitutionService {
	return &InstitutionService{
		repo:   repo,
		logger: logger.Named("institution"),
	}
}

// Create registers an institution owned by ownerID
func (s *InstitutionService) Create(ctx context.Context, ownerID string, req *model.CreateInstitutionRequest) (*model.Institution, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, invalid("institution name is required")
	}
	if req.Kind != model.InstitutionSchool && req.Kind != model.InstitutionBusiness {
		return nil, invalid("kind must be school or business")
	}
	if _, err := mail.ParseAddress(req.ContactEmail); err != nil {
		return nil, invalid("a valid contact email is required")
	}
	if req.Seats < 0 {
		return nil, invalid("seats cannot be negative")
	}

	existing, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, invalid("an institution with this name already exists")
	}

	inst := &model.Institution{
		Name:         name,
		Kind:         req.Kind,
		ContactEmail: strings.ToLower(req.ContactEmail),
		Seats:        req.Seats,
		OwnerID:      ownerID,
	}
	if err := s.repo.Create(ctx, inst); err != nil {
		return nil, err
	}

	s.logger.Info("institution created", zap.String("id", inst.ID), zap.String("kind", string(inst.Kind)))
	return inst, nil
}

func (s *InstitutionService) Get(ctx context.Context, id string) (*model.Institution, error) {
	inst, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inst == nil {
		return nil, ErrNotFound
	}
	return inst, nil
}

// List returns institutions of the given kind, or all when kind is empty
func (s *InstitutionService) List(ctx context.Context, kind model.InstitutionKind) ([]*model.Institution, error) {
	if kind != "" && kind != model.InstitutionSchool && kind != model.InstitutionBusiness {
		return nil, invalid("kind must be school or business")
	}
	return s.repo.List(ctx, kind)
}
