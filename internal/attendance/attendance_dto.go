package attendance

import "encoding/json"

type CheckInRequest struct {
	EmployeeID string          `json:"employee_id" binding:"required,uuid"`
	Location   json.RawMessage `json:"location"`
}

type CheckOutRequest struct {
	Location json.RawMessage `json:"location"`
}

type AttendanceResponse struct {
	ID               string          `json:"id"`
	EmployeeID       string          `json:"employee_id"`
	CompanyID        string          `json:"company_id"`
	Date             string          `json:"date"`
	CheckInAt        string          `json:"check_in_at,omitempty"`
	CheckOutAt       string          `json:"check_out_at,omitempty"`
	CheckInLocation  json.RawMessage `json:"check_in_location,omitempty"`
	CheckOutLocation json.RawMessage `json:"check_out_location,omitempty"`
	WorkHours        float64         `json:"work_hours"`
	Status           string          `json:"status"`
	IsLate           bool            `json:"is_late"`
	IsLocked         bool            `json:"is_locked"`
}
