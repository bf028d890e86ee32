package cms_dto

type Device struct {
	ID             string   `json:"_id"`
	CreatedAt      string   `json:"_createdAt,omitempty"`
	Name           string   `json:"name"`
	Category       string   `json:"category,omitempty"`
	Image          *Image   `json:"image,omitempty"`
	Description    string   `json:"description,omitempty"`
	Specifications []string `json:"specifications,omitempty"`
}
