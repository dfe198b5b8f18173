package document

import (
	"time"

	"github.com/Iamvlnmurthy/pepl/internal/employee"

	"github.com/google/uuid"
)

const StatusVerified = "verified"

type DocumentRecord struct {
	ID         uuid.UUID          `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID          `gorm:"type:uuid;index;not null"`
	CompanyID  uuid.UUID          `gorm:"type:uuid;index;not null"`
	Name       string             `gorm:"type:varchar(255);not null"`
	Type       string             `gorm:"type:varchar(50);not null"`
	URL        string             `gorm:"type:text;not null"`
	Status     string             `gorm:"type:varchar(20);not null;default:'verified'"`
	Employee   *employee.Employee `gorm:"foreignKey:EmployeeID"`
	CreatedAt  time.Time          `gorm:"not null;default:now()"`
	UpdatedAt  time.Time          `gorm:"not null;default:now()"`
}

func (DocumentRecord) TableName() string {
	return "document_records"
}
