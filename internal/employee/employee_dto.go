package employee

type CreateEmployeeRequest struct {
	FullName      string `json:"full_name" binding:"required"`
	PersonalEmail string `json:"personal_email" binding:"required,email"`
	WorkEmail     string `json:"work_email" binding:"omitempty,email"`
	Phone         string `json:"phone"`
	EmployeeCode  string `json:"employee_code"`
	DepartmentID  string `json:"department_id" binding:"omitempty,uuid"`
	RoleID        string `json:"role_id" binding:"omitempty,uuid"`
	ManagerID     string `json:"manager_id" binding:"omitempty,uuid"`
	JoiningDate   string `json:"joining_date" binding:"required"`
}

type UpdateEmployeeRequest struct {
	FullName     string `json:"full_name" binding:"required"`
	WorkEmail    string `json:"work_email" binding:"omitempty,email"`
	Phone        string `json:"phone"`
	DepartmentID string `json:"department_id" binding:"omitempty,uuid"`
	RoleID       string `json:"role_id" binding:"omitempty,uuid"`
	ManagerID    string `json:"manager_id" binding:"omitempty,uuid"`
}

type EmployeeResponse struct {
	ID            string `json:"id"`
	CompanyID     string `json:"company_id"`
	DepartmentID  string `json:"department_id,omitempty"`
	RoleID        string `json:"role_id,omitempty"`
	ManagerID     string `json:"manager_id,omitempty"`
	EmployeeCode  string `json:"employee_code"`
	FullName      string `json:"full_name"`
	PersonalEmail string `json:"personal_email,omitempty"`
	WorkEmail     string `json:"work_email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	AvatarURL     string `json:"avatar_url,omitempty"`
	Status        string `json:"status"`
	JoiningDate   string `json:"joining_date,omitempty"`
}
