package service

import (
	"context"
	"fmt"

	"github.com/rifa-online/rifa-api/internal/domain"
)

type SettingRepository interface {
	Upsert(ctx context.Context, setting domain.Setting) error
	FindAll(ctx context.Context) ([]domain.Setting, error)
}

type SettingService struct {
	repo SettingRepository
}

func NewSettingService(repo SettingRepository) *SettingService {
	return &SettingService{
		repo: repo,
	}
}

// GetAll returns every stored setting as a tipo -> valor map. Missing tipos
// are simply absent.
func (s *SettingService) GetAll(ctx context.Context) (map[string]string, error) {
	settings, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	values := make(map[string]string, len(settings))
	for _, setting := range settings {
		values[setting.Tipo] = setting.Valor
	}

	return values, nil
}

// Update upserts each non-empty field under its fixed tipo. Empty fields are
// left untouched, never cleared.
func (s *SettingService) Update(ctx context.Context, rifa, premio string) error {
	if rifa != "" {
		err := s.repo.Upsert(ctx, domain.Setting{Tipo: domain.SettingRifa, Valor: rifa})
		if err != nil {
			return fmt.Errorf("s.repo.Upsert -> %w", err)
		}
	}

	if premio != "" {
		err := s.repo.Upsert(ctx, domain.Setting{Tipo: domain.SettingPremio, Valor: premio})
		if err != nil {
			return fmt.Errorf("s.repo.Upsert -> %w", err)
		}
	}

	return nil
}
