package department

type CreateDepartmentRequest struct {
	Name     string `json:"name" binding:"required"`
	ParentID string `json:"parent_id" binding:"omitempty,uuid"`
	HeadID   string `json:"head_id" binding:"omitempty,uuid"`
}

type UpdateDepartmentRequest struct {
	Name     string `json:"name" binding:"required"`
	ParentID string `json:"parent_id" binding:"omitempty,uuid"`
	HeadID   string `json:"head_id" binding:"omitempty,uuid"`
}

type DepartmentResponse struct {
	ID        string `json:"id"`
	CompanyID string `json:"company_id"`
	ParentID  string `json:"parent_id,omitempty"`
	HeadID    string `json:"head_id,omitempty"`
	Name      string `json:"name"`
}
