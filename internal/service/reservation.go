package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rifa-online/rifa-api/internal/domain"
	"github.com/rifa-online/rifa-api/internal/repository"
)

var (
	ErrNumeroTaken         = repository.ErrNumeroTaken
	ErrReservationNotFound = repository.ErrReservationNotFound
	ErrMissingFields       = errors.New("nome and numeros are required")
)

type ReservationRepository interface {
	CreateBatch(ctx context.Context, nome string, numeros []string) ([]domain.Reservation, error)
	FindAll(ctx context.Context) ([]domain.Reservation, error)
	UpdatePago(ctx context.Context, numero string, pago bool) error
	Delete(ctx context.Context, numero string) error
	DeleteAll(ctx context.Context) error
}

type ReservationService struct {
	repo ReservationRepository
}

func NewReservationService(repo ReservationRepository) *ReservationService {
	return &ReservationService{
		repo: repo,
	}
}

// Reserve claims every numero for nome. The whole batch fails when any
// numero is already taken.
func (s *ReservationService) Reserve(ctx context.Context, nome string, numeros []string) ([]domain.Reservation, error) {
	if nome == "" || len(numeros) == 0 {
		return nil, ErrMissingFields
	}

	created, err := s.repo.CreateBatch(ctx, nome, numeros)
	if err != nil {
		return nil, fmt.Errorf("s.repo.CreateBatch -> %w", err)
	}

	return created, nil
}

func (s *ReservationService) List(ctx context.Context) ([]domain.Reservation, error) {
	reservations, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return reservations, nil
}

func (s *ReservationService) SetPago(ctx context.Context, numero string, pago bool) error {
	if err := s.repo.UpdatePago(ctx, numero, pago); err != nil {
		return fmt.Errorf("s.repo.UpdatePago -> %w", err)
	}

	return nil
}

func (s *ReservationService) Delete(ctx context.Context, numero string) error {
	if err := s.repo.Delete(ctx, numero); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

// Clear wipes the ledger. Clearing an already empty raffle succeeds.
func (s *ReservationService) Clear(ctx context.Context) error {
	if err := s.repo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("s.repo.DeleteAll -> %w", err)
	}

	return nil
}
