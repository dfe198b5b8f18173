package leave

type ApplyLeaveRequest struct {
	EmployeeID  string `json:"employee_id" binding:"required,uuid"`
	LeaveTypeID string `json:"leave_type_id" binding:"required,uuid"`
	StartDate   string `json:"start_date" binding:"required"`
	EndDate     string `json:"end_date" binding:"required"`
	Reason      string `json:"reason"`
}

type UpdateLeaveStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=approved rejected cancelled"`
}

type LeaveTypeResponse struct {
	ID         string `json:"id"`
	CompanyID  string `json:"company_id"`
	Name       string `json:"name"`
	AnnualDays int    `json:"annual_days"`
	IsPaid     bool   `json:"is_paid"`
}

type LeaveApplicationResponse struct {
	ID          string             `json:"id"`
	EmployeeID  string             `json:"employee_id"`
	CompanyID   string             `json:"company_id"`
	LeaveTypeID string             `json:"leave_type_id"`
	ApproverID  string             `json:"approver_id,omitempty"`
	StartDate   string             `json:"start_date"`
	EndDate     string             `json:"end_date"`
	Reason      string             `json:"reason,omitempty"`
	Status      string             `json:"status"`
	ApprovedAt  string             `json:"approved_at,omitempty"`
	LeaveType   *LeaveTypeResponse `json:"leave_type,omitempty"`
}
