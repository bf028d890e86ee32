package responses

import "clinic-site/internal/pkg/cms_dto"

// HomePage is everything the landing page renders in one pass.
type HomePage struct {
	About        *cms_dto.HomepageSection  `json:"about,omitempty"`
	Sections     []cms_dto.HomepageSection `json:"sections"`
	Doctors      []cms_dto.Doctor          `json:"doctors"`
	Plans        []cms_dto.Plan            `json:"plans"`
	Offers       []cms_dto.Offer           `json:"offers"`
	Devices      []cms_dto.Device          `json:"devices"`
	Testimonials []cms_dto.Testimonial     `json:"testimonials"`
	// Failed names the blocks that could not be loaded; each renders a placeholder.
	Failed map[string]bool `json:"failed,omitempty"`
}

// Tab is one selectable filter of a list view.
type Tab struct {
	Key      string `json:"key"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

// Layout is the site-wide data every page renders in its header and footer.
type Layout struct {
	ClinicInfo *cms_dto.ClinicInfo       `json:"clinic_info,omitempty"`
	Sections   []cms_dto.HomepageSection `json:"sections"`
	Failed     bool                      `json:"failed,omitempty"`
}
