package cms_dto

import "clinic-site/internal/pkg/constvars"

type Doctor struct {
	ID           string     `json:"_id"`
	Type         string     `json:"_type,omitempty"`
	CreatedAt    string     `json:"_createdAt,omitempty"`
	UpdatedAt    string     `json:"_updatedAt,omitempty"`
	Name         string     `json:"name"`
	Image        *Image     `json:"image,omitempty"`
	License      string     `json:"license,omitempty"`
	JoinedAt     FlexString `json:"joinedAt,omitempty"`
	About        string     `json:"about,omitempty"`
	Experience   FlexString `json:"experience,omitempty"`
	Availability []string   `json:"availability,omitempty"`
	Department   string     `json:"department,omitempty"`
}

// DepartmentOrDefault treats a doctor without a department as a dental doctor.
func (d Doctor) DepartmentOrDefault() string {
	if d.Department == "" {
		return constvars.DepartmentDental
	}
	return d.Department
}
