package repository

import (
	"context"
	"fmt"

	"github.com/rifa-online/rifa-api/internal/domain"
	"github.com/rifa-online/rifa-api/internal/repository/dao"
)

type SettingDAO interface {
	Upsert(ctx context.Context, setting dao.Setting) error
	FindAll(ctx context.Context) ([]dao.Setting, error)
}

type SettingRepository struct {
	dao SettingDAO
}

func NewSettingRepository(dao SettingDAO) *SettingRepository {
	return &SettingRepository{
		dao: dao,
	}
}

func (r *SettingRepository) Upsert(ctx context.Context, setting domain.Setting) error {
	err := r.dao.Upsert(ctx, dao.Setting{
		Tipo:  setting.Tipo,
		Valor: setting.Valor,
	})
	if err != nil {
		return fmt.Errorf("r.dao.Upsert -> %w", err)
	}

	return nil
}

func (r *SettingRepository) FindAll(ctx context.Context) ([]domain.Setting, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	settings := make([]domain.Setting, 0, len(found))
	for _, row := range found {
		settings = append(settings, domain.Setting{
			Tipo:  row.Tipo,
			Valor: row.Valor,
		})
	}

	return settings, nil
}
