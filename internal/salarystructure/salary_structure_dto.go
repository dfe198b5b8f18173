package salarystructure

type CreateSalaryStructureRequest struct {
	EmployeeID       string  `json:"employee_id" binding:"required,uuid"`
	Basic            float64 `json:"basic" binding:"required,gte=0"`
	HRA              float64 `json:"hra" binding:"gte=0"`
	Conveyance       float64 `json:"conveyance" binding:"gte=0"`
	Medical          float64 `json:"medical" binding:"gte=0"`
	SpecialAllowance float64 `json:"special_allowance" binding:"gte=0"`
	PFEmployee       float64 `json:"pf_employee" binding:"gte=0"`
	ESIEmployee      float64 `json:"esi_employee" binding:"gte=0"`
	ProfessionalTax  float64 `json:"professional_tax" binding:"gte=0"`
	EffectiveDate    string  `json:"effective_date" binding:"required"`
}

type SalaryStructureResponse struct {
	ID               string  `json:"id"`
	EmployeeID       string  `json:"employee_id"`
	CompanyID        string  `json:"company_id"`
	Basic            float64 `json:"basic"`
	HRA              float64 `json:"hra"`
	Conveyance       float64 `json:"conveyance"`
	Medical          float64 `json:"medical"`
	SpecialAllowance float64 `json:"special_allowance"`
	PFEmployee       float64 `json:"pf_employee"`
	ESIEmployee      float64 `json:"esi_employee"`
	ProfessionalTax  float64 `json:"professional_tax"`
	IsActive         bool    `json:"is_active"`
	EffectiveDate    string  `json:"effective_date"`
}
