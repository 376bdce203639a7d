package repository

import (
	"context"
	"fmt"

	"github.com/rifa-online/rifa-api/internal/domain"
	"github.com/rifa-online/rifa-api/internal/repository/dao"
)

var (
	ErrNumeroTaken         = dao.ErrNumeroTaken
	ErrReservationNotFound = dao.ErrReservationNotFound
)

type ReservationDAO interface {
	InsertBatch(ctx context.Context, reservations []dao.Reservation) ([]dao.Reservation, error)
	FindAll(ctx context.Context) ([]dao.Reservation, error)
	UpdatePago(ctx context.Context, numero string, pago bool) error
	DeleteByNumero(ctx context.Context, numero string) error
	DeleteAll(ctx context.Context) error
}

type ReservationRepository struct {
	dao ReservationDAO
}

func NewReservationRepository(dao ReservationDAO) *ReservationRepository {
	return &ReservationRepository{
		dao: dao,
	}
}

// CreateBatch reserves every numero for nome in one shot. Pago always starts
// false.
func (r *ReservationRepository) CreateBatch(ctx context.Context, nome string, numeros []string) ([]domain.Reservation, error) {
	rows := make([]dao.Reservation, 0, len(numeros))
	for _, numero := range numeros {
		rows = append(rows, dao.Reservation{
			Numero: numero,
			Nome:   nome,
		})
	}

	created, err := r.dao.InsertBatch(ctx, rows)
	if err != nil {
		return nil, fmt.Errorf("r.dao.InsertBatch -> %w", err)
	}

	reservations := make([]domain.Reservation, 0, len(created))
	for _, row := range created {
		reservations = append(reservations, r.daoToDomain(row))
	}

	return reservations, nil
}

func (r *ReservationRepository) FindAll(ctx context.Context) ([]domain.Reservation, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	reservations := make([]domain.Reservation, 0, len(found))
	for _, row := range found {
		reservations = append(reservations, r.daoToDomain(row))
	}

	return reservations, nil
}

func (r *ReservationRepository) UpdatePago(ctx context.Context, numero string, pago bool) error {
	if err := r.dao.UpdatePago(ctx, numero, pago); err != nil {
		return fmt.Errorf("r.dao.UpdatePago -> %w", err)
	}

	return nil
}

func (r *ReservationRepository) Delete(ctx context.Context, numero string) error {
	if err := r.dao.DeleteByNumero(ctx, numero); err != nil {
		return fmt.Errorf("r.dao.DeleteByNumero -> %w", err)
	}

	return nil
}

func (r *ReservationRepository) DeleteAll(ctx context.Context) error {
	if err := r.dao.DeleteAll(ctx); err != nil {
		return fmt.Errorf("r.dao.DeleteAll -> %w", err)
	}

	return nil
}

func (r *ReservationRepository) daoToDomain(row dao.Reservation) domain.Reservation {
	return domain.Reservation{
		Numero: row.Numero,
		Nome:   row.Nome,
		Pago:   row.Pago,
	}
}
