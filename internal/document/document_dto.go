package document

type UploadDocumentRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	Name       string `json:"name" binding:"required"`
	Type       string `json:"type" binding:"required"`
	URL        string `json:"url" binding:"required,url"`
}

type DocumentResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	CompanyID    string `json:"company_id"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	URL          string `json:"url"`
	Status       string `json:"status"`
	EmployeeName string `json:"employee_name,omitempty"`
	UploadedAt   string `json:"uploaded_at"`
}
