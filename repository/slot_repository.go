package repository

import (
	"errors"

	"tableside/entity"

	"gorm.io/gorm"
)

// Durable slot names. Each slot holds one serialized JSON array.
const (
	SlotMenuItems = "menuItems"
	SlotOrders    = "orders"
)

type SlotRepository struct {
	DB *gorm.DB
}

func NewSlotRepository(db *gorm.DB) *SlotRepository {
	return &SlotRepository{DB: db}
}

// Load returns the slot payload, or ok=false when the slot has never been written.
func (r *SlotRepository) Load(name string) ([]byte, bool, error) {
	var s entity.Slot
	err := r.DB.Where("name = ?", name).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return s.Data, true, nil
}

// Save upserts the slot row. Callers pass the transaction they want the write in.
func (r *SlotRepository) Save(tx *gorm.DB, name string, data []byte) error {
	var s entity.Slot
	err := tx.Where("name = ?", name).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return tx.Create(&entity.Slot{Name: name, Data: data}).Error
	}
	if err != nil {
		return err
	}
	s.Data = data
	return tx.Save(&s).Error
}
