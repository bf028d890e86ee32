package cms_dto

import "clinic-site/internal/pkg/constvars"

type Plan struct {
	ID            string   `json:"_id"`
	Name          string   `json:"name"`
	Department    string   `json:"department,omitempty"`
	Price         string   `json:"price"`
	Period        string   `json:"period,omitempty"`
	Description   string   `json:"description,omitempty"`
	Features      []string `json:"features,omitempty"`
	Popular       bool     `json:"popular"`
	ButtonText    string   `json:"buttonText,omitempty"`
	ButtonVariant string   `json:"buttonVariant,omitempty"`
}

func (p Plan) DepartmentOrDefault() string {
	if p.Department == "" {
		return constvars.DepartmentDental
	}
	return p.Department
}
