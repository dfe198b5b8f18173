package sales

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const IncentiveStatusPending = "pending"

type SalesData struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID     uuid.UUID       `gorm:"type:uuid;index;not null"`
	CompanyID      uuid.UUID       `gorm:"type:uuid;index;not null"`
	Date           time.Time       `gorm:"type:date;not null"`
	TargetAmount   decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	AchievedAmount decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Percentage     decimal.Decimal `gorm:"type:numeric(7,2);not null"`
	CreatedAt      time.Time       `gorm:"not null;default:now()"`
	UpdatedAt      time.Time       `gorm:"not null;default:now()"`
}

func (SalesData) TableName() string {
	return "sales_data"
}

type Incentive struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_incentive_employee_period,priority:1"`
	CompanyID  uuid.UUID       `gorm:"type:uuid;index;not null"`
	Month      int             `gorm:"not null;uniqueIndex:uq_incentive_employee_period,priority:2"`
	Year       int             `gorm:"not null;uniqueIndex:uq_incentive_employee_period,priority:3"`
	Amount     decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Status     string          `gorm:"type:varchar(20);not null;default:'pending'"`
	Breakdown  json.RawMessage `gorm:"type:jsonb"`
	CreatedAt  time.Time       `gorm:"not null;default:now()"`
	UpdatedAt  time.Time       `gorm:"not null;default:now()"`
}

func (Incentive) TableName() string {
	return "incentives"
}

// IncentiveBreakdown is the jsonb payload explaining how the amount was
// reached.
type IncentiveBreakdown struct {
	TotalAchieved float64 `json:"totalAchieved"`
	TotalTarget   float64 `json:"totalTarget"`
	Percentage    float64 `json:"percentage"`
}
