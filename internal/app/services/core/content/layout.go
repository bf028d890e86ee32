package content

import (
	"clinic-site/internal/app/services/shared/livequery"
	"clinic-site/internal/pkg/cms_dto"
	"clinic-site/internal/pkg/dto/responses"
	"context"
	"time"

	"go.uber.org/zap"
)

const (
	subscriptionClinicInfo       = "clinic-info"
	subscriptionHomepageSections = "homepage-sections"
)

// Layout keeps the clinic info and homepage sections live for the lifetime of the server.
type Layout struct {
	clinicInfo *livequery.Subscription[*cms_dto.ClinicInfo]
	sections   *livequery.Subscription[[]cms_dto.HomepageSection]
}

func NewLayout(contentUsecase ContentUsecase, interval time.Duration, logger *zap.Logger) *Layout {
	return &Layout{
		clinicInfo: livequery.NewSubscription(subscriptionClinicInfo, interval, contentUsecase.ClinicInfo, logger),
		sections:   livequery.NewSubscription(subscriptionHomepageSections, interval, contentUsecase.HomepageSections, logger),
	}
}

func (l *Layout) Start(ctx context.Context) error {
	if err := l.clinicInfo.Start(ctx); err != nil {
		return err
	}
	if err := l.sections.Start(ctx); err != nil {
		l.clinicInfo.Stop()
		return err
	}
	return nil
}

func (l *Layout) Stop() {
	l.clinicInfo.Stop()
	l.sections.Stop()
}

// Invalidate refetches both subscriptions without waiting for their next tick.
func (l *Layout) Invalidate() {
	l.clinicInfo.Invalidate()
	l.sections.Invalidate()
}

// Snapshot reports Failed only when a subscription has never produced a value.
func (l *Layout) Snapshot() responses.Layout {
	clinicInfo := l.clinicInfo.Snapshot()
	sections := l.sections.Snapshot()

	return responses.Layout{
		ClinicInfo: clinicInfo.Value,
		Sections:   sections.Value,
		Failed: (clinicInfo.Err != nil && clinicInfo.FetchedAt.IsZero()) ||
			(sections.Err != nil && sections.FetchedAt.IsZero()),
	}
}
