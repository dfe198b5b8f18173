package department

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Department struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID uuid.UUID      `gorm:"type:uuid;index;not null"`
	ParentID  *uuid.UUID     `gorm:"type:uuid;index"`
	HeadID    *uuid.UUID     `gorm:"type:uuid"`
	Name      string         `gorm:"type:varchar(150);not null"`
	CreatedAt time.Time      `gorm:"not null;default:now()"`
	UpdatedAt time.Time      `gorm:"not null;default:now()"`
	DeletedAt gorm.DeletedAt `gorm:"index"`

	Children []Department `gorm:"foreignKey:ParentID"`
}

func (Department) TableName() string {
	return "departments"
}
