package company

import "encoding/json"

type CreateGroupRequest struct {
	Name     string          `json:"name" binding:"required"`
	Branding json.RawMessage `json:"branding"`
	Settings json.RawMessage `json:"settings"`
}

type CreateCompanyRequest struct {
	GroupID string `json:"group_id" binding:"required,uuid"`
	Name    string `json:"name" binding:"required"`
	Code    string `json:"code" binding:"required"`
	Email   string `json:"email" binding:"omitempty,email"`
}

type UpdateCompanyRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"omitempty,email"`
	IsActive *bool  `json:"is_active"`
}

type GroupResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Branding json.RawMessage `json:"branding,omitempty"`
	Settings json.RawMessage `json:"settings,omitempty"`
}

type CompanyResponse struct {
	ID       string `json:"id"`
	GroupID  string `json:"group_id"`
	Name     string `json:"name"`
	Code     string `json:"code"`
	Email    string `json:"email,omitempty"`
	IsActive bool   `json:"is_active"`
}
