package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Setting struct {
	Tipo  string `gorm:"primaryKey"`
	Valor string `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (Setting) TableName() string {
	return "configuracoes"
}

type SettingDAO struct {
	db *gorm.DB
}

func NewSettingDAO(db *gorm.DB) *SettingDAO {
	return &SettingDAO{
		db: db,
	}
}

// Upsert inserts the setting or overwrites its valor when the tipo already
// exists.
func (d *SettingDAO) Upsert(ctx context.Context, setting Setting) error {
	result := d.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "tipo"}},
			DoUpdates: clause.AssignmentColumns([]string{"valor", "updated_at"}),
		}).
		Create(&setting)

	return result.Error
}

func (d *SettingDAO) FindAll(ctx context.Context) ([]Setting, error) {
	var settings []Setting

	result := d.db.WithContext(ctx).Find(&settings)
	if result.Error != nil {
		return nil, result.Error
	}

	return settings, nil
}
