package controllers

import (
	"clinic-site/internal/app/models"
	"clinic-site/internal/app/services/shared/form"
	"clinic-site/internal/pkg/cms_dto"
	"clinic-site/internal/pkg/dto/requests"
	"clinic-site/internal/pkg/dto/responses"
	"context"

	"github.com/stretchr/testify/mock"
)

type fakeContentUsecase struct {
	home         *responses.HomePage
	doctors      []cms_dto.Doctor
	plans        []cms_dto.Plan
	offers       []cms_dto.Offer
	devices      []cms_dto.Device
	testimonials []cms_dto.Testimonial
	sections     []cms_dto.HomepageSection
	clinicInfo   *cms_dto.ClinicInfo
	err          error

	lastFilter   string
	lastFeatured bool
}

func (f *fakeContentUsecase) HomePage(ctx context.Context) (*responses.HomePage, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.home == nil {
		return &responses.HomePage{Doctors: f.doctors, Failed: map[string]bool{}}, nil
	}
	return f.home, nil
}

func (f *fakeContentUsecase) Doctors(ctx context.Context, department string) ([]cms_dto.Doctor, error) {
	f.lastFilter = department
	return f.doctors, f.err
}

func (f *fakeContentUsecase) Plans(ctx context.Context, department string) ([]cms_dto.Plan, error) {
	f.lastFilter = department
	return f.plans, f.err
}

func (f *fakeContentUsecase) Offers(ctx context.Context, department string) ([]cms_dto.Offer, error) {
	f.lastFilter = department
	return f.offers, f.err
}

func (f *fakeContentUsecase) Devices(ctx context.Context, category string) ([]cms_dto.Device, error) {
	f.lastFilter = category
	return f.devices, f.err
}

func (f *fakeContentUsecase) Testimonials(ctx context.Context, featuredOnly bool) ([]cms_dto.Testimonial, error) {
	f.lastFeatured = featuredOnly
	return f.testimonials, f.err
}

func (f *fakeContentUsecase) HomepageSections(ctx context.Context) ([]cms_dto.HomepageSection, error) {
	return f.sections, f.err
}

func (f *fakeContentUsecase) ClinicInfo(ctx context.Context) (*cms_dto.ClinicInfo, error) {
	return f.clinicInfo, f.err
}

func (f *fakeContentUsecase) Invalidate(ctx context.Context) error {
	return nil
}

type fakeLayout struct {
	layout responses.Layout
}

func (f *fakeLayout) Snapshot() responses.Layout {
	return f.layout
}

type mockBookingUsecase struct {
	mock.Mock
}

func (m *mockBookingUsecase) Submit(ctx context.Context, request *requests.BookingForm) (*form.Result, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*form.Result)
	return result, args.Error(1)
}

type mockContactUsecase struct {
	mock.Mock
}

func (m *mockContactUsecase) Submit(ctx context.Context, request *requests.ContactForm) (*form.Result, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*form.Result)
	return result, args.Error(1)
}

type mockMailerService struct {
	mock.Mock
}

func (m *mockMailerService) SendEmail(ctx context.Context, request *requests.EmailPayload) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

type fakeDeployUsecase struct {
	deployment  *models.Deployment
	err         error
	triggered   []requests.SanityWebhookDocument
	deployments []models.Deployment
	total       int
	page        int
	pageSize    int
}

func (f *fakeDeployUsecase) Trigger(ctx context.Context, document *requests.SanityWebhookDocument) (*models.Deployment, error) {
	f.triggered = append(f.triggered, *document)
	return f.deployment, f.err
}

func (f *fakeDeployUsecase) Deployments(ctx context.Context, page, pageSize int) ([]models.Deployment, int, error) {
	f.page, f.pageSize = page, pageSize
	return f.deployments, f.total, f.err
}

func (f *fakeDeployUsecase) Start(ctx context.Context) {}

func (f *fakeDeployUsecase) Stop() {}
