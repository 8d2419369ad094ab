package postgres

import (
	"time"
)

type UserModel struct {
	ID           uint      `gorm:"primaryKey"`
	Name         string    `gorm:"size:255;not null"`
	Email        string    `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string    `gorm:"size:255;not null"`
	CreatedAt    time.Time `gorm:"not null"`

	Tasks []TaskModel `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
}

func (UserModel) TableName() string {
	return "users"
}
