package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusActive     = "active"
	StatusTerminated = "terminated"
)

type Employee struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	GroupID       uuid.UUID  `gorm:"type:uuid;index"`
	CompanyID     uuid.UUID  `gorm:"type:uuid;index;not null"`
	DepartmentID  *uuid.UUID `gorm:"type:uuid;index"`
	RoleID        *uuid.UUID `gorm:"type:uuid;index"`
	ManagerID     *uuid.UUID `gorm:"type:uuid"`
	EmployeeCode  string     `gorm:"type:varchar(50);uniqueIndex:uq_employee_code;not null"`
	FullName      string     `gorm:"type:varchar(150);not null"`
	PersonalEmail string     `gorm:"type:varchar(255);uniqueIndex:uq_employee_personal_email"`
	WorkEmail     string     `gorm:"type:varchar(255);uniqueIndex:uq_employee_work_email"`
	Phone         string     `gorm:"type:varchar(30);uniqueIndex:uq_employee_phone"`
	ClerkID       string     `gorm:"type:varchar(100);uniqueIndex:uq_employee_clerk_id"`
	AvatarURL     string     `gorm:"type:text"`
	Status        string     `gorm:"type:varchar(20);not null;default:'active'"`
	JoiningDate   time.Time  `gorm:"type:date"`
	CreatedAt     time.Time  `gorm:"not null;default:now()"`
	UpdatedAt     time.Time  `gorm:"not null;default:now()"`
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

func (Employee) TableName() string {
	return "employees"
}
