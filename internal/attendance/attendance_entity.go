package attendance

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
)

type Attendance struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID       uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_attendance_employee_date,priority:1"`
	CompanyID        uuid.UUID       `gorm:"type:uuid;index;not null"`
	Date             time.Time       `gorm:"type:date;not null;uniqueIndex:uq_attendance_employee_date,priority:2"`
	CheckInAt        *time.Time      `gorm:""`
	CheckOutAt       *time.Time      `gorm:""`
	CheckInLocation  json.RawMessage `gorm:"type:jsonb"`
	CheckOutLocation json.RawMessage `gorm:"type:jsonb"`
	WorkHours        decimal.Decimal `gorm:"type:numeric(5,2)"`
	Status           string          `gorm:"type:varchar(20);not null;default:'present'"`
	IsLate           bool            `gorm:"not null;default:false"`
	IsLocked         bool            `gorm:"not null;default:false"`
	CreatedAt        time.Time       `gorm:"not null;default:now()"`
	UpdatedAt        time.Time       `gorm:"not null;default:now()"`
}

func (Attendance) TableName() string {
	return "attendances"
}
