package content

import (
	"clinic-site/internal/app/contracts"
	"clinic-site/internal/app/services/core/catalog"
	"clinic-site/internal/pkg/cms_dto"
	"clinic-site/internal/pkg/constvars"
	"clinic-site/internal/pkg/dto/responses"
	"context"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	BlockAbout        = "about"
	BlockSections     = "sections"
	BlockDoctors      = "doctors"
	BlockPlans        = "plans"
	BlockOffers       = "offers"
	BlockDevices      = "devices"
	BlockTestimonials = "testimonials"
)

type contentUsecase struct {
	ContentRepository contracts.ContentRepository
	Log               *zap.Logger
}

func NewContentUsecase(contentRepository contracts.ContentRepository, logger *zap.Logger) ContentUsecase {
	return &contentUsecase{
		ContentRepository: contentRepository,
		Log:               logger,
	}
}

// HomePage loads every landing page block concurrently. A block that fails is
// marked in Failed and left empty so the rest of the page still renders.
func (uc *contentUsecase) HomePage(ctx context.Context) (*responses.HomePage, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("contentUsecase.HomePage called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	page := &responses.HomePage{Failed: make(map[string]bool)}
	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)

	load := func(block string, fn func(ctx context.Context) error) {
		g.Go(func() error {
			if err := fn(gctx); err != nil {
				uc.Log.Error("contentUsecase.HomePage error loading block",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.String(constvars.LoggingDocumentTypeKey, block),
					zap.Error(err),
				)
				mu.Lock()
				page.Failed[block] = true
				mu.Unlock()
			}
			return nil
		})
	}

	load(BlockAbout, func(ctx context.Context) (err error) {
		page.About, err = uc.ContentRepository.FindAboutSection(ctx)
		return err
	})
	load(BlockSections, func(ctx context.Context) (err error) {
		page.Sections, err = uc.ContentRepository.FindHomepageSections(ctx)
		return err
	})
	load(BlockDoctors, func(ctx context.Context) (err error) {
		page.Doctors, err = uc.ContentRepository.FindDoctors(ctx)
		return err
	})
	load(BlockPlans, func(ctx context.Context) (err error) {
		page.Plans, err = uc.ContentRepository.FindPlans(ctx)
		return err
	})
	load(BlockOffers, func(ctx context.Context) (err error) {
		page.Offers, err = uc.ContentRepository.FindHomeOffers(ctx)
		return err
	})
	load(BlockDevices, func(ctx context.Context) (err error) {
		page.Devices, err = uc.ContentRepository.FindHomeDevices(ctx)
		return err
	})
	load(BlockTestimonials, func(ctx context.Context) error {
		testimonials, err := uc.ContentRepository.FindTestimonials(ctx)
		if err != nil {
			return err
		}
		page.Testimonials = catalog.Featured(testimonials, constvars.FeaturedStoriesLimit)
		return nil
	})

	g.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return page, nil
}

// Doctors filters by department. An empty department returns every doctor.
func (uc *contentUsecase) Doctors(ctx context.Context, department string) ([]cms_dto.Doctor, error) {
	doctors, err := uc.ContentRepository.FindDoctors(ctx)
	if err != nil || department == "" {
		return doctors, err
	}
	return catalog.FilterDoctors(doctors, department), nil
}

func (uc *contentUsecase) Plans(ctx context.Context, department string) ([]cms_dto.Plan, error) {
	plans, err := uc.ContentRepository.FindPlans(ctx)
	if err != nil || department == "" {
		return plans, err
	}
	return catalog.FilterPlans(plans, department), nil
}

func (uc *contentUsecase) Offers(ctx context.Context, department string) ([]cms_dto.Offer, error) {
	offers, err := uc.ContentRepository.FindOffers(ctx)
	if err != nil {
		return nil, err
	}
	if department == "" {
		return catalog.ActiveOffers(offers), nil
	}
	return catalog.FilterOffers(offers, department), nil
}

func (uc *contentUsecase) Devices(ctx context.Context, category string) ([]cms_dto.Device, error) {
	devices, err := uc.ContentRepository.FindDevices(ctx)
	if err != nil || category == "" {
		return devices, err
	}
	return catalog.FilterDevices(devices, category), nil
}

func (uc *contentUsecase) Testimonials(ctx context.Context, featuredOnly bool) ([]cms_dto.Testimonial, error) {
	testimonials, err := uc.ContentRepository.FindTestimonials(ctx)
	if err != nil || !featuredOnly {
		return testimonials, err
	}
	return catalog.Featured(testimonials, constvars.FeaturedStoriesLimit), nil
}

func (uc *contentUsecase) HomepageSections(ctx context.Context) ([]cms_dto.HomepageSection, error) {
	return uc.ContentRepository.FindHomepageSections(ctx)
}

func (uc *contentUsecase) ClinicInfo(ctx context.Context) (*cms_dto.ClinicInfo, error) {
	return uc.ContentRepository.FindClinicInfo(ctx)
}

func (uc *contentUsecase) Invalidate(ctx context.Context) error {
	return uc.ContentRepository.Invalidate(ctx)
}
