package settings

import (
	"context"
	"time"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	Get(ctx context.Context) (ShopSettings, error)
	Replace(ctx context.Context, actor string, req UpdateRequest) (ShopSettings, error)
}

type Service struct {
	repo Repository
	log  *slog.Logger
	now  func() time.Time
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With(slog.String("component", "settings_service")),
		now:  time.Now,
	}
}

func (s *Service) Get(ctx context.Context) (ShopSettings, error) {
	return s.repo.Get(ctx)
}

func (s *Service) Replace(ctx context.Context, actor string, req UpdateRequest) (ShopSettings, error) {
	if err := ValidateFactor(req.PurchaseConversionFactor); err != nil {
		return ShopSettings{}, err
	}

	next := ShopSettings{
		PurchaseConversionFactor: req.PurchaseConversionFactor,
		UpdatedAt:                s.now().UTC(),
		UpdatedBy:                actor,
	}
	if err := s.repo.Save(ctx, next); err != nil {
		return ShopSettings{}, err
	}

	if !InTypicalRange(next.PurchaseConversionFactor) {
		s.log.Warn("conversion factor outside typical range",
			"factor", next.PurchaseConversionFactor, "by", actor)
	} else {
		s.log.Info("conversion factor updated", "factor", next.PurchaseConversionFactor, "by", actor)
	}

	return s.repo.Get(ctx)
}
