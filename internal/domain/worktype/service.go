package worktype

import (
	"context"
	"strings"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	List(ctx context.Context) ([]WorkType, error)
	Create(ctx context.Context, req CreateRequest) (WorkType, error)
	Update(ctx context.Context, id int, req UpdateRequest) (WorkType, error)
	Delete(ctx context.Context, id int) error
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With(slog.String("component", "worktype_service")),
	}
}

func (s *Service) List(ctx context.Context) ([]WorkType, error) {
	return s.repo.List(ctx)
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (WorkType, error) {
	if err := req.Validate(); err != nil {
		return WorkType{}, err
	}

	wt := WorkType{
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		IsActive:    true,
	}
	if req.IsActive != nil {
		wt.IsActive = *req.IsActive
	}

	id, err := s.repo.Create(ctx, wt)
	if err != nil {
		return WorkType{}, err
	}

	s.log.Info("work type created", "id", id, "name", wt.Name)
	return s.repo.FindByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, id int, req UpdateRequest) (WorkType, error) {
	if err := req.Validate(); err != nil {
		return WorkType{}, err
	}

	wt, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return WorkType{}, err
	}

	req.Apply(&wt)
	if err := s.repo.Update(ctx, wt); err != nil {
		return WorkType{}, err
	}

	s.log.Info("work type updated", "id", id)
	return s.repo.FindByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("work type deleted", "id", id)
	return nil
}
