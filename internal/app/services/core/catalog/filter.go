package catalog

import (
	"clinic-site/internal/pkg/cms_dto"
	"clinic-site/internal/pkg/constvars"
	"fmt"
	"net/url"
	"strings"
)

// Filter keeps the items whose key equals selected. The "all" tab keeps everything.
func Filter[T any](items []T, key func(T) string, selected string) []T {
	if selected == constvars.TabAll {
		return items
	}
	result := make([]T, 0, len(items))
	for _, item := range items {
		if key(item) == selected {
			result = append(result, item)
		}
	}
	return result
}

func FilterDoctors(doctors []cms_dto.Doctor, selected string) []cms_dto.Doctor {
	return Filter(doctors, cms_dto.Doctor.DepartmentOrDefault, DepartmentTabs.Resolve(selected))
}

func FilterPlans(plans []cms_dto.Plan, selected string) []cms_dto.Plan {
	return Filter(plans, cms_dto.Plan.DepartmentOrDefault, ServiceTabs.Resolve(selected))
}

// FilterOffers only ever returns active offers.
func FilterOffers(offers []cms_dto.Offer, selected string) []cms_dto.Offer {
	return Filter(ActiveOffers(offers), cms_dto.Offer.DepartmentOrDefault, DepartmentTabs.Resolve(selected))
}

func FilterDevices(devices []cms_dto.Device, selected string) []cms_dto.Device {
	return Filter(devices, func(d cms_dto.Device) string { return d.Category }, DeviceTabs.Resolve(selected))
}

func ActiveOffers(offers []cms_dto.Offer) []cms_dto.Offer {
	result := make([]cms_dto.Offer, 0, len(offers))
	for _, offer := range offers {
		if offer.Active {
			result = append(result, offer)
		}
	}
	return result
}

// Featured returns at most limit featured testimonials in their original order.
func Featured(testimonials []cms_dto.Testimonial, limit int) []cms_dto.Testimonial {
	result := make([]cms_dto.Testimonial, 0, limit)
	for _, testimonial := range testimonials {
		if len(result) == limit {
			break
		}
		if testimonial.Featured {
			result = append(result, testimonial)
		}
	}
	return result
}

func DoctorBookingLink(doctor cms_dto.Doctor) string {
	return fmt.Sprintf("/?doctor=%s&department=%s#%s", encodeComponent(doctor.Name), doctor.DepartmentOrDefault(), constvars.BookingSectionAnchor)
}

func OfferBookingLink(offer cms_dto.Offer) string {
	return fmt.Sprintf("/?offer=%s&department=%s#%s", encodeComponent(offer.Title), offer.DepartmentOrDefault(), constvars.BookingSectionAnchor)
}

func PlanBookingLink(plan cms_dto.Plan) string {
	return fmt.Sprintf("/?department=%s#%s", plan.DepartmentOrDefault(), constvars.BookingSectionAnchor)
}

// encodeComponent escapes a query value with spaces as %20 so links match the browser form.
func encodeComponent(value string) string {
	return strings.ReplaceAll(url.QueryEscape(value), "+", "%20")
}
