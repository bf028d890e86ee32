package controllers

import (
	"clinic-site/internal/app/delivery/http/views"
	"clinic-site/internal/app/services/core/booking"
	"clinic-site/internal/app/services/core/catalog"
	"clinic-site/internal/app/services/core/contact"
	"clinic-site/internal/app/services/core/content"
	"clinic-site/internal/app/services/shared/form"
	"clinic-site/internal/pkg/cms_dto"
	"clinic-site/internal/pkg/constvars"
	"clinic-site/internal/pkg/dto/requests"
	"clinic-site/internal/pkg/dto/responses"
	"clinic-site/internal/pkg/exceptions"
	"clinic-site/internal/pkg/utils"
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const (
	titleHome     = "الرئيسية"
	titleDoctors  = "الأطباء"
	titleServices = "الخدمات"
	titleOffers   = "العروض"
	titleDevices  = "الأجهزة"
	titlePatients = "تجارب المرضى"
	titleContact  = "تواصل معنا"
)

// LayoutSource supplies the site-wide header and footer data.
type LayoutSource interface {
	Snapshot() responses.Layout
}

type PageController struct {
	Log            *zap.Logger
	ContentUsecase content.ContentUsecase
	BookingUsecase booking.BookingUsecase
	ContactUsecase contact.ContactUsecase
	Layout         LayoutSource
	Renderer       *views.Renderer
}

func NewPageController(
	logger *zap.Logger,
	contentUsecase content.ContentUsecase,
	bookingUsecase booking.BookingUsecase,
	contactUsecase contact.ContactUsecase,
	layout LayoutSource,
	renderer *views.Renderer,
) *PageController {
	return &PageController{
		Log:            logger,
		ContentUsecase: contentUsecase,
		BookingUsecase: bookingUsecase,
		ContactUsecase: contactUsecase,
		Layout:         layout,
		Renderer:       renderer,
	}
}

type option struct {
	Value    string
	Label    string
	Selected bool
}

type bookingView struct {
	Form         requests.BookingForm
	Departments  []option
	Doctors      []booking.DoctorOption
	Reasons      []option
	Errors       map[string]string
	Notification string
	Succeeded    bool
	Scroll       bool
}

type homeView struct {
	*responses.HomePage
	Booking bookingView
}

// catalogView is a tab-filtered list. Items holds the filtered slice.
type catalogView struct {
	Tabs    []responses.Tab
	Items   interface{}
	Count   int
	Failed  bool
	Empty   string
	BaseURL string
}

type contactView struct {
	Form         requests.ContactForm
	Errors       map[string]string
	Notification string
	Succeeded    bool
}

func (ctrl *PageController) Home(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	home := ctrl.loadHome(ctx)
	prefilled := booking.Prefill(r.URL.Query(), home.Doctors)

	view := homeView{
		HomePage: home,
		Booking:  newBookingView(prefilled.Form, home.Doctors),
	}
	view.Booking.Scroll = prefilled.Scroll
	if r.URL.Query().Get(constvars.QueryParamBooked) != "" {
		view.Booking.Succeeded = true
		view.Booking.Notification = constvars.BookingSuccessMessage
	}

	ctrl.render(w, r, constvars.StatusOK, views.PageHome, titleHome, view)
}

func (ctrl *PageController) Doctors(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	selected := catalog.DepartmentTabs.Resolve(r.URL.Query().Get(constvars.QueryParamTab))
	doctors, err := ctrl.ContentUsecase.Doctors(ctx, "")
	view := ctrl.catalogView(r, catalog.DepartmentTabs, selected, constvars.EmptyDoctorsMessage, err)
	if err == nil {
		filtered := catalog.FilterDoctors(doctors, selected)
		view.Items, view.Count = filtered, len(filtered)
	}

	ctrl.render(w, r, constvars.StatusOK, views.PageDoctors, titleDoctors, view)
}

func (ctrl *PageController) Services(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	selected := catalog.ServiceTabs.Resolve(r.URL.Query().Get(constvars.QueryParamTab))
	plans, err := ctrl.ContentUsecase.Plans(ctx, "")
	view := ctrl.catalogView(r, catalog.ServiceTabs, selected, constvars.EmptyServicesMessage, err)
	if err == nil {
		filtered := catalog.FilterPlans(plans, selected)
		view.Items, view.Count = filtered, len(filtered)
	}

	ctrl.render(w, r, constvars.StatusOK, views.PageServices, titleServices, view)
}

func (ctrl *PageController) Offers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	selected := catalog.DepartmentTabs.Resolve(r.URL.Query().Get(constvars.QueryParamTab))
	offers, err := ctrl.ContentUsecase.Offers(ctx, "")
	view := ctrl.catalogView(r, catalog.DepartmentTabs, selected, constvars.EmptyOffersMessage, err)
	if err == nil {
		filtered := catalog.FilterOffers(offers, selected)
		view.Items, view.Count = filtered, len(filtered)
	}

	ctrl.render(w, r, constvars.StatusOK, views.PageOffers, titleOffers, view)
}

func (ctrl *PageController) Devices(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	selected := catalog.DeviceTabs.Resolve(r.URL.Query().Get(constvars.QueryParamTab))
	devices, err := ctrl.ContentUsecase.Devices(ctx, "")
	view := ctrl.catalogView(r, catalog.DeviceTabs, selected, constvars.EmptyDevicesMessage, err)
	if err == nil {
		filtered := catalog.FilterDevices(devices, selected)
		view.Items, view.Count = filtered, len(filtered)
	}

	ctrl.render(w, r, constvars.StatusOK, views.PageDevices, titleDevices, view)
}

func (ctrl *PageController) Patients(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	testimonials, err := ctrl.ContentUsecase.Testimonials(ctx, false)
	view := catalogView{Empty: constvars.EmptyTestimonialsMessage}
	if err != nil {
		ctrl.logLoadError(r, views.PagePatients, err)
		view.Failed = true
	} else {
		view.Items, view.Count = testimonials, len(testimonials)
	}

	ctrl.render(w, r, constvars.StatusOK, views.PagePatients, titlePatients, view)
}

func (ctrl *PageController) Contact(w http.ResponseWriter, r *http.Request) {
	view := contactView{}
	if r.URL.Query().Get(constvars.QueryParamSent) != "" {
		view.Succeeded = true
		view.Notification = constvars.ContactSuccessMessage
	}
	ctrl.render(w, r, constvars.StatusOK, views.PageContact, titleContact, view)
}

// SubmitBooking accepts the booking form from any page. Browsers are redirected on
// success; JSON clients get the form result.
func (ctrl *PageController) SubmitBooking(w http.ResponseWriter, r *http.Request) {
	request, err := decodeBookingForm(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	submitted := *request

	result, err := ctrl.BookingUsecase.Submit(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if wantsJSON(r) {
		respondFormResult(w, result)
		return
	}

	if result.Succeeded() {
		http.Redirect(w, r, result.Redirect, constvars.StatusSeeOther)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	home := ctrl.loadHome(ctx)

	view := homeView{
		HomePage: home,
		Booking:  newBookingView(submitted, home.Doctors),
	}
	view.Booking.Errors = result.FieldErrors
	view.Booking.Notification = result.Notification
	view.Booking.Scroll = true

	ctrl.render(w, r, formStatus(result), views.PageHome, titleHome, view)
}

func (ctrl *PageController) SubmitContact(w http.ResponseWriter, r *http.Request) {
	request, err := decodeContactForm(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	submitted := *request

	result, err := ctrl.ContactUsecase.Submit(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if wantsJSON(r) {
		respondFormResult(w, result)
		return
	}

	if result.Succeeded() {
		http.Redirect(w, r, result.Redirect, constvars.StatusSeeOther)
		return
	}

	view := contactView{
		Form:         submitted,
		Errors:       result.FieldErrors,
		Notification: result.Notification,
	}
	ctrl.render(w, r, formStatus(result), views.PageContact, titleContact, view)
}

func (ctrl *PageController) loadHome(ctx context.Context) *responses.HomePage {
	home, err := ctrl.ContentUsecase.HomePage(ctx)
	if err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		ctrl.Log.Error("PageController.loadHome error loading home page",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return &responses.HomePage{Failed: map[string]bool{
			content.BlockAbout:        true,
			content.BlockSections:     true,
			content.BlockDoctors:      true,
			content.BlockPlans:        true,
			content.BlockOffers:       true,
			content.BlockDevices:      true,
			content.BlockTestimonials: true,
		}}
	}
	return home
}

func (ctrl *PageController) catalogView(r *http.Request, tabs catalog.TabSet, selected, empty string, err error) catalogView {
	view := catalogView{
		Tabs:    tabs.Tabs(selected),
		Empty:   empty,
		BaseURL: r.URL.Path,
	}
	if err != nil {
		ctrl.logLoadError(r, r.URL.Path, err)
		view.Failed = true
	}
	return view
}

func (ctrl *PageController) logLoadError(r *http.Request, page string, err error) {
	ctrl.Log.Error("PageController error loading content",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
		zap.String(constvars.LoggingEndpointKey, page),
		zap.Error(err),
	)
}

func (ctrl *PageController) render(w http.ResponseWriter, r *http.Request, status int, name, title string, data interface{}) {
	page := &views.Page{
		Title:  title,
		Path:   r.URL.Path,
		Layout: ctrl.Layout.Snapshot(),
		Data:   data,
	}
	if err := ctrl.Renderer.Render(w, status, name, page); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerProcess(err))
	}
}

func newBookingView(bookingForm requests.BookingForm, doctors []cms_dto.Doctor) bookingView {
	view := bookingView{
		Form:    bookingForm,
		Doctors: booking.DoctorOptions(doctors, bookingForm.Department, bookingForm.Doctor),
	}
	for _, department := range constvars.Departments {
		view.Departments = append(view.Departments, option{
			Value:    department,
			Label:    constvars.DepartmentLabels[department],
			Selected: department == bookingForm.Department,
		})
	}
	for _, reason := range []string{
		constvars.BookingReasonRoutineCheckup,
		constvars.BookingReasonNewPatient,
		constvars.BookingReasonSpecificConcern,
	} {
		view.Reasons = append(view.Reasons, option{
			Value:    reason,
			Label:    constvars.BookingReasonLabels[reason],
			Selected: reason == bookingForm.Reason,
		})
	}
	return view
}

func decodeBookingForm(r *http.Request) (*requests.BookingForm, error) {
	if isJSONBody(r) {
		request := new(requests.BookingForm)
		if err := json.NewDecoder(r.Body).Decode(request); err != nil {
			return nil, exceptions.ErrCannotParseJSON(err)
		}
		return request, nil
	}
	if err := r.ParseForm(); err != nil {
		return nil, exceptions.ErrCannotParseForm(err)
	}
	return utils.BuildBookingFormRequest(r), nil
}

func decodeContactForm(r *http.Request) (*requests.ContactForm, error) {
	if isJSONBody(r) {
		request := new(requests.ContactForm)
		if err := json.NewDecoder(r.Body).Decode(request); err != nil {
			return nil, exceptions.ErrCannotParseJSON(err)
		}
		return request, nil
	}
	if err := r.ParseForm(); err != nil {
		return nil, exceptions.ErrCannotParseForm(err)
	}
	return utils.BuildContactFormRequest(r), nil
}

func isJSONBody(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get(constvars.HeaderContentType), constvars.MIMEApplicationJSON)
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get(constvars.HeaderAccept), constvars.MIMEApplicationJSON)
}

// formStatus is 400 for field errors and 502 when the mail relay failed.
func formStatus(result *form.Result) int {
	switch {
	case result.Succeeded():
		return constvars.StatusOK
	case len(result.FieldErrors) > 0:
		return constvars.StatusBadRequest
	default:
		return constvars.StatusBadGateway
	}
}

func respondFormResult(w http.ResponseWriter, result *form.Result) {
	if result.Succeeded() {
		utils.BuildSuccessResponse(w, constvars.StatusOK, result.Notification, result)
		return
	}
	utils.BuildFailureResponse(w, formStatus(result), result.Notification, result)
}
