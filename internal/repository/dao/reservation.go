package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNumeroTaken         = errors.New("reservation number already taken")
	ErrReservationNotFound = errors.New("reservation not found")
)

type Reservation struct {
	ID uint `gorm:"primaryKey"`

	Numero string `gorm:"uniqueIndex;not null"`
	Nome   string `gorm:"not null"`
	Pago   bool   `gorm:"not null;default:false"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (Reservation) TableName() string {
	return "reservas"
}

type ReservationDAO struct {
	db *gorm.DB
}

func NewReservationDAO(db *gorm.DB) *ReservationDAO {
	return &ReservationDAO{
		db: db,
	}
}

// InsertBatch inserts every reservation inside one transaction. A single
// duplicate numero rolls back the whole batch.
func (d *ReservationDAO) InsertBatch(ctx context.Context, reservations []Reservation) ([]Reservation, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range reservations {
			if err := tx.Create(&reservations[i]).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrNumeroTaken
		}

		return nil, err
	}

	return reservations, nil
}

// FindAll returns every reservation in insertion order.
func (d *ReservationDAO) FindAll(ctx context.Context) ([]Reservation, error) {
	var reservations []Reservation

	result := d.db.WithContext(ctx).Order("id").Find(&reservations)
	if result.Error != nil {
		return nil, result.Error
	}

	return reservations, nil
}

func (d *ReservationDAO) UpdatePago(ctx context.Context, numero string, pago bool) error {
	result := d.db.WithContext(ctx).
		Model(&Reservation{}).
		Where("numero = ?", numero).
		Update("pago", pago)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

func (d *ReservationDAO) DeleteByNumero(ctx context.Context, numero string) error {
	result := d.db.WithContext(ctx).Where("numero = ?", numero).Delete(&Reservation{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// DeleteAll clears the whole table. An already empty table is not an error.
func (d *ReservationDAO) DeleteAll(ctx context.Context) error {
	result := d.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&Reservation{})

	return result.Error
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return true
	}

	// Dialects opened with TranslateError report the same condition this way.
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
