package models

import "time"

// Model holds the columns shared by all persisted entities.
// It mirrors gorm.Model but without the soft-delete column.
type Model struct {
	ID        uint      `gorm:"primarykey" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
