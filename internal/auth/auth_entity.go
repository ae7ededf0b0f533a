package auth

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string     `gorm:"type:varchar(120);not null"`
	Email        string     `gorm:"type:varchar(255);not null;uniqueIndex"`
	Password     string     `gorm:"type:varchar(255);not null"`
	Role         string     `gorm:"type:varchar(20);not null;default:'employee'"`
	EmployeeID   *uuid.UUID `gorm:"type:uuid;index"`
	RefreshToken *string    `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (User) TableName() string {
	return "users"
}
