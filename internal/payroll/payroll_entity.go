package payroll

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	StatusDraft     = "draft"
	StatusProcessed = "processed"
	StatusPaid      = "paid"
)

type PayrollRun struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID   uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_payroll_run_period,priority:1"`
	Month       int             `gorm:"not null;uniqueIndex:uq_payroll_run_period,priority:2"`
	Year        int             `gorm:"not null;uniqueIndex:uq_payroll_run_period,priority:3"`
	Status      string          `gorm:"type:varchar(20);not null;default:'draft'"`
	TotalPayout decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Stats       json.RawMessage `gorm:"type:jsonb"`
	ProcessedAt *time.Time      `gorm:""`
	CreatedAt   time.Time       `gorm:"not null;default:now()"`
	UpdatedAt   time.Time       `gorm:"not null;default:now()"`
}

func (PayrollRun) TableName() string {
	return "payroll_runs"
}

// RunStats is the jsonb payload persisted per run. Head count covers only the
// employees whose salary computed successfully.
type RunStats struct {
	HeadCount       int     `json:"headCount"`
	TotalGross      float64 `json:"totalGross"`
	TotalDeductions float64 `json:"totalDeductions"`
}
