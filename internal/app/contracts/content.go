package contracts

import (
	"clinic-site/internal/pkg/cms_dto"
	"context"
)

type ContentRepository interface {
	FindDoctors(ctx context.Context) ([]cms_dto.Doctor, error)
	FindPlans(ctx context.Context) ([]cms_dto.Plan, error)
	FindOffers(ctx context.Context) ([]cms_dto.Offer, error)
	FindHomeOffers(ctx context.Context) ([]cms_dto.Offer, error)
	FindDevices(ctx context.Context) ([]cms_dto.Device, error)
	FindHomeDevices(ctx context.Context) ([]cms_dto.Device, error)
	FindTestimonials(ctx context.Context) ([]cms_dto.Testimonial, error)
	FindHomepageSections(ctx context.Context) ([]cms_dto.HomepageSection, error)
	FindAboutSection(ctx context.Context) (*cms_dto.HomepageSection, error)
	FindClinicInfo(ctx context.Context) (*cms_dto.ClinicInfo, error)
	Invalidate(ctx context.Context) error
}

// ContentFetcher runs a raw query against the content store and decodes the result into out.
type ContentFetcher interface {
	Fetch(ctx context.Context, query string, params map[string]interface{}, out interface{}) error
}
