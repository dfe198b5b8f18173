package company

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Group struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string          `gorm:"type:varchar(150);not null"`
	Branding  json.RawMessage `gorm:"type:jsonb"`
	Settings  json.RawMessage `gorm:"type:jsonb"`
	CreatedAt time.Time       `gorm:"not null;default:now()"`
	UpdatedAt time.Time       `gorm:"not null;default:now()"`
	DeletedAt gorm.DeletedAt  `gorm:"index"`
	Companies []Company       `gorm:"foreignKey:GroupID"`
}

func (Group) TableName() string {
	return "groups"
}

type Company struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	GroupID   uuid.UUID      `gorm:"type:uuid;index;not null"`
	Name      string         `gorm:"type:varchar(150);not null"`
	Code      string         `gorm:"type:varchar(50);uniqueIndex:uq_company_code;not null"`
	Email     string         `gorm:"type:varchar(255);index"`
	IsActive  bool           `gorm:"not null;default:true"`
	CreatedAt time.Time      `gorm:"not null;default:now()"`
	UpdatedAt time.Time      `gorm:"not null;default:now()"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Company) TableName() string {
	return "companies"
}
