package entity

import (
	"gorm.io/gorm"
)

// Slot is one named durable storage location holding a serialized collection.
type Slot struct {
	gorm.Model
	Name string `gorm:"uniqueIndex" json:"name"`
	Data []byte `gorm:"type:blob" json:"-"`
}
