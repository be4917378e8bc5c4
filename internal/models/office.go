package models

import "time"

type Office struct {
	ID   string `gorm:"primaryKey;size:20" json:"id"`
	Name string `gorm:"size:100;not null" json:"name"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
