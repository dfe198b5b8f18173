package role

type CreateRoleRequest struct {
	Name         string `json:"name" binding:"required"`
	DepartmentID string `json:"department_id" binding:"omitempty,uuid"`
	IsSalesRole  bool   `json:"is_sales_role"`
}

type UpdateRoleRequest struct {
	Name         string `json:"name" binding:"required"`
	DepartmentID string `json:"department_id" binding:"omitempty,uuid"`
	IsSalesRole  bool   `json:"is_sales_role"`
}

type RoleResponse struct {
	ID           string `json:"id"`
	CompanyID    string `json:"company_id"`
	DepartmentID string `json:"department_id,omitempty"`
	Name         string `json:"name"`
	IsSalesRole  bool   `json:"is_sales_role"`
}
