package postgres

import (
	"time"
)

type TaskModel struct {
	ID          uint       `gorm:"primaryKey"`
	Title       string     `gorm:"size:255;not null"`
	Description string     `gorm:"type:text"`
	Category    string     `gorm:"size:100;index"`
	Status      string     `gorm:"size:20;not null;index"`
	StartDate   *time.Time `gorm:"index"`
	Deadline    *time.Time `gorm:"index"`
	CreatedAt   time.Time  `gorm:"index"`
	UpdatedAt   time.Time
	OwnerID     uint `gorm:"not null;index"`
}

func (TaskModel) TableName() string {
	return "tasks"
}
