package leave

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
	StatusCancelled = "cancelled"
)

type LeaveType struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID  uuid.UUID      `gorm:"type:uuid;index;not null"`
	Name       string         `gorm:"type:varchar(100);not null"`
	AnnualDays int            `gorm:"not null;default:0"`
	IsPaid     bool           `gorm:"not null;default:true"`
	CreatedAt  time.Time      `gorm:"not null;default:now()"`
	UpdatedAt  time.Time      `gorm:"not null;default:now()"`
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

func (LeaveType) TableName() string {
	return "leave_types"
}

type LeaveApplication struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID  uuid.UUID  `gorm:"type:uuid;index;not null"`
	CompanyID   uuid.UUID  `gorm:"type:uuid;index;not null"`
	LeaveTypeID uuid.UUID  `gorm:"type:uuid;not null"`
	ApproverID  *uuid.UUID `gorm:"type:uuid"`
	StartDate   time.Time  `gorm:"type:date;not null"`
	EndDate     time.Time  `gorm:"type:date;not null"`
	Reason      string     `gorm:"type:text"`
	Status      string     `gorm:"type:varchar(20);not null;default:'pending'"`
	ApprovedAt  *time.Time `gorm:""`
	CreatedAt   time.Time  `gorm:"not null;default:now()"`
	UpdatedAt   time.Time  `gorm:"not null;default:now()"`

	LeaveType *LeaveType `gorm:"foreignKey:LeaveTypeID"`
}

func (LeaveApplication) TableName() string {
	return "leave_applications"
}
