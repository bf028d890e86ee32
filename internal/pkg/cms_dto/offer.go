package cms_dto

import "clinic-site/internal/pkg/constvars"

type Offer struct {
	ID          string `json:"_id"`
	CreatedAt   string `json:"_createdAt,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Department  string `json:"department,omitempty"`
	Discount    string `json:"discount,omitempty"`
	Active      bool   `json:"active"`
	Image       *Image `json:"image,omitempty"`
}

func (o Offer) DepartmentOrDefault() string {
	if o.Department == "" {
		return constvars.DepartmentDental
	}
	return o.Department
}
