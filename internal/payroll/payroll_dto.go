package payroll

type ProcessPayrollRequest struct {
	Month int `json:"month" binding:"required,min=1,max=12"`
	Year  int `json:"year" binding:"required,min=2000"`
}

type SalaryBreakdownResponse struct {
	EmployeeID       string  `json:"employee_id"`
	Month            int     `json:"month"`
	Year             int     `json:"year"`
	Basic            float64 `json:"basic"`
	HRA              float64 `json:"hra"`
	Conveyance       float64 `json:"conveyance"`
	Medical          float64 `json:"medical"`
	SpecialAllowance float64 `json:"special_allowance"`
	PFEmployee       float64 `json:"pf_employee"`
	ESIEmployee      float64 `json:"esi_employee"`
	ProfessionalTax  float64 `json:"professional_tax"`
	Gross            float64 `json:"gross"`
	Deductions       float64 `json:"deductions"`
	Net              float64 `json:"net"`
}

type PayrollItemResult struct {
	EmployeeID   string  `json:"employee_id"`
	EmployeeCode string  `json:"employee_code"`
	FullName     string  `json:"full_name"`
	Success      bool    `json:"success"`
	Reason       string  `json:"reason,omitempty"`
	Gross        float64 `json:"gross"`
	Deductions   float64 `json:"deductions"`
	Net          float64 `json:"net"`
}

type ProcessPayrollResponse struct {
	RunID       string              `json:"run_id"`
	CompanyID   string              `json:"company_id"`
	Month       int                 `json:"month"`
	Year        int                 `json:"year"`
	Status      string              `json:"status"`
	TotalPayout float64             `json:"total_payout"`
	Stats       RunStats            `json:"stats"`
	Items       []PayrollItemResult `json:"items"`
}

type PayrollRunResponse struct {
	ID          string   `json:"id"`
	CompanyID   string   `json:"company_id"`
	Month       int      `json:"month"`
	Year        int      `json:"year"`
	Status      string   `json:"status"`
	TotalPayout float64  `json:"total_payout"`
	Stats       RunStats `json:"stats"`
	ProcessedAt string   `json:"processed_at,omitempty"`
}
