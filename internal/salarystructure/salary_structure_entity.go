package salarystructure

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SalaryStructure struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID       uuid.UUID       `gorm:"type:uuid;index;not null;uniqueIndex:uq_salary_structure_active,where:is_active,priority:1"`
	CompanyID        uuid.UUID       `gorm:"type:uuid;index;not null"`
	Basic            decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	HRA              decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Conveyance       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Medical          decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	SpecialAllowance decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PFEmployee       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	ESIEmployee      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	ProfessionalTax  decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	IsActive         bool            `gorm:"not null;default:true"`
	EffectiveDate    time.Time       `gorm:"type:date;not null"`
	CreatedAt        time.Time       `gorm:"not null;default:now()"`
	UpdatedAt        time.Time       `gorm:"not null;default:now()"`
}

func (SalaryStructure) TableName() string {
	return "salary_structures"
}

// Gross is the sum of all earning components.
func (s SalaryStructure) Gross() decimal.Decimal {
	return s.Basic.
		Add(s.HRA).
		Add(s.Conveyance).
		Add(s.Medical).
		Add(s.SpecialAllowance)
}

// Deductions is the employee-side statutory total.
func (s SalaryStructure) Deductions() decimal.Decimal {
	return s.PFEmployee.
		Add(s.ESIEmployee).
		Add(s.ProfessionalTax)
}

// Net is gross minus deductions.
func (s SalaryStructure) Net() decimal.Decimal {
	return s.Gross().Sub(s.Deductions())
}
