package cms_dto

type HomepageSection struct {
	ID              string `json:"_id,omitempty"`
	SectionTitle    string `json:"sectionTitle"`
	SectionSubtitle string `json:"sectionSubtitle,omitempty"`
	SectionDesc     string `json:"sectionDesc,omitempty"`
	SectionCategory string `json:"sectionCategory,omitempty"`
}

type Phone struct {
	PhoneNumber string `json:"phoneNumber"`
}

type ClinicInfo struct {
	Address             string  `json:"address,omitempty"`
	Phones              []Phone `json:"phones,omitempty"`
	WorkingDaysAndHours string  `json:"workingDaysAndHours,omitempty"`
	Email               string  `json:"email,omitempty"`
}
