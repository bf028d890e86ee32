package views

import (
	"clinic-site/internal/app/services/core/catalog"
	"clinic-site/internal/app/services/sanity"
	"clinic-site/internal/pkg/cms_dto"
	"clinic-site/internal/pkg/constvars"
	"clinic-site/internal/pkg/utils"
	"html/template"
)

// FuncMap returns the site specific template helpers. Images resolve against projectID and dataset.
func FuncMap(projectID, dataset string) template.FuncMap {
	return template.FuncMap{
		"imageURL": func(image *cms_dto.Image) string {
			return sanity.ImageURL(image, projectID, dataset)
		},
		// tel: is not on the html/template scheme allow list.
		"telHref": func(phone string) template.URL {
			return template.URL(utils.TelHref(phone))
		},
		"whatsappHref":    utils.WhatsAppHref,
		"departmentLabel": DepartmentLabel,
		"section":         SectionByCategory,
		"doctorLink":      catalog.DoctorBookingLink,
		"offerLink":       catalog.OfferBookingLink,
		"planLink":        catalog.PlanBookingLink,
		"specsPreview": func(specs []string) []string {
			if len(specs) > constvars.DeviceSpecsPreviewMax {
				return specs[:constvars.DeviceSpecsPreviewMax]
			}
			return specs
		},
	}
}

func DepartmentLabel(department string) string {
	if label, ok := constvars.DepartmentLabels[department]; ok {
		return label
	}
	return department
}

var sectionKeys = map[string]string{
	"doctors":  constvars.SectionCategoryDoctors,
	"reviews":  constvars.SectionCategoryReviews,
	"booking":  constvars.SectionCategoryBooking,
	"gallery":  constvars.SectionCategoryGallery,
	"services": constvars.SectionCategoryServices,
	"about":    constvars.SectionCategoryAbout,
	"contact":  constvars.SectionCategoryContact,
}

// SectionByCategory returns the first section stored under category, or nil.
// Templates may pass the English key of a category instead of its stored label.
func SectionByCategory(sections []cms_dto.HomepageSection, category string) *cms_dto.HomepageSection {
	if stored, ok := sectionKeys[category]; ok {
		category = stored
	}
	for i := range sections {
		if sections[i].SectionCategory == category {
			return &sections[i]
		}
	}
	return nil
}
