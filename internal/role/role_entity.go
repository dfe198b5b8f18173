package role

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID    uuid.UUID      `gorm:"type:uuid;index;not null"`
	DepartmentID *uuid.UUID     `gorm:"type:uuid;index"`
	Name         string         `gorm:"type:varchar(150);not null"`
	IsSalesRole  bool           `gorm:"not null;default:false"`
	CreatedAt    time.Time      `gorm:"not null;default:now()"`
	UpdatedAt    time.Time      `gorm:"not null;default:now()"`
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (Role) TableName() string {
	return "roles"
}
