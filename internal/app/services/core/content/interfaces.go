package content

import (
	"clinic-site/internal/pkg/cms_dto"
	"clinic-site/internal/pkg/dto/responses"
	"context"
)

type ContentUsecase interface {
	HomePage(ctx context.Context) (*responses.HomePage, error)
	Doctors(ctx context.Context, department string) ([]cms_dto.Doctor, error)
	Plans(ctx context.Context, department string) ([]cms_dto.Plan, error)
	Offers(ctx context.Context, department string) ([]cms_dto.Offer, error)
	Devices(ctx context.Context, category string) ([]cms_dto.Device, error)
	Testimonials(ctx context.Context, featuredOnly bool) ([]cms_dto.Testimonial, error)
	HomepageSections(ctx context.Context) ([]cms_dto.HomepageSection, error)
	ClinicInfo(ctx context.Context) (*cms_dto.ClinicInfo, error)
	Invalidate(ctx context.Context) error
}
