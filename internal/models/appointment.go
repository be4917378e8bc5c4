package models

import "time"

type Appointment struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Title         string `gorm:"size:120;not null" json:"title"`
	RequesterName string `gorm:"size:100;not null" json:"requester_name"`

	OfficeID string `gorm:"size:20;index;not null" json:"office_id"`
	Office   Office `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"office"`

	ServiceType string `gorm:"size:50;not null" json:"service_type"`
	Status      string `gorm:"size:20;default:'pending';not null" json:"status"`

	// Normalized calendar day, YYYY-MM-DD.
	Date string `gorm:"size:10;index;not null" json:"date"`
	Time string `gorm:"size:5;not null" json:"time"`

	Description  string `gorm:"type:text;not null" json:"description"`
	GroupMembers string `gorm:"type:text" json:"group_members"`
	Attachment   string `gorm:"size:255" json:"attachment"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
