package sales

type AddSalesRecordRequest struct {
	EmployeeID     string  `json:"employee_id" binding:"required,uuid"`
	Date           string  `json:"date" binding:"required"`
	TargetAmount   float64 `json:"target_amount" binding:"required"`
	AchievedAmount float64 `json:"achieved_amount" binding:"gte=0"`
}

type SalesRecordResponse struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employee_id"`
	CompanyID      string  `json:"company_id"`
	Date           string  `json:"date"`
	TargetAmount   float64 `json:"target_amount"`
	AchievedAmount float64 `json:"achieved_amount"`
	Percentage     float64 `json:"percentage"`
}

type CalculateIncentiveRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	Month      int    `json:"month" binding:"required,min=1,max=12"`
	Year       int    `json:"year" binding:"required,min=2000"`
}

type IncentiveResponse struct {
	ID         string             `json:"id"`
	EmployeeID string             `json:"employee_id"`
	CompanyID  string             `json:"company_id"`
	Month      int                `json:"month"`
	Year       int                `json:"year"`
	Amount     float64            `json:"amount"`
	Status     string             `json:"status"`
	Breakdown  IncentiveBreakdown `json:"breakdown"`
}
