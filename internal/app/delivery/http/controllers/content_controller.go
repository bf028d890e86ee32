package controllers

import (
	"clinic-site/internal/app/services/core/content"
	"clinic-site/internal/pkg/constvars"
	"clinic-site/internal/pkg/exceptions"
	"clinic-site/internal/pkg/utils"
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"
)

type ContentController struct {
	Log            *zap.Logger
	ContentUsecase content.ContentUsecase
}

func NewContentController(logger *zap.Logger, contentUsecase content.ContentUsecase) *ContentController {
	return &ContentController{
		Log:            logger,
		ContentUsecase: contentUsecase,
	}
}

func (ctrl *ContentController) FindDoctors(w http.ResponseWriter, r *http.Request) {
	department := utils.QueryParam(r, constvars.QueryParamDepartment, constvars.QueryParamTab)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ContentUsecase.Doctors(ctx, department)
	if err != nil {
		ctrl.respondError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDoctorsSuccessfully, result)
}

func (ctrl *ContentController) FindPlans(w http.ResponseWriter, r *http.Request) {
	department := utils.QueryParam(r, constvars.QueryParamDepartment, constvars.QueryParamTab)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ContentUsecase.Plans(ctx, department)
	if err != nil {
		ctrl.respondError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPlansSuccessfully, result)
}

func (ctrl *ContentController) FindOffers(w http.ResponseWriter, r *http.Request) {
	department := utils.QueryParam(r, constvars.QueryParamDepartment, constvars.QueryParamTab)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ContentUsecase.Offers(ctx, department)
	if err != nil {
		ctrl.respondError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetOffersSuccessfully, result)
}

func (ctrl *ContentController) FindDevices(w http.ResponseWriter, r *http.Request) {
	category := utils.QueryParam(r, constvars.QueryParamCategory, constvars.QueryParamTab)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ContentUsecase.Devices(ctx, category)
	if err != nil {
		ctrl.respondError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDevicesSuccessfully, result)
}

func (ctrl *ContentController) FindTestimonials(w http.ResponseWriter, r *http.Request) {
	featuredOnly, _ := strconv.ParseBool(r.URL.Query().Get(constvars.QueryParamFeatured))

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ContentUsecase.Testimonials(ctx, featuredOnly)
	if err != nil {
		ctrl.respondError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetTestimonialsSuccessfully, result)
}

func (ctrl *ContentController) FindHomepageSections(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ContentUsecase.HomepageSections(ctx)
	if err != nil {
		ctrl.respondError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetHomepageSectionsSuccessfully, result)
}

func (ctrl *ContentController) FindClinicInfo(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ContentUsecase.ClinicInfo(ctx)
	if err != nil {
		ctrl.respondError(w, err)
		return
	}
	if result == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrNotFound(nil, constvars.ResourceClinicInfo))
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetClinicInfoSuccessfully, result)
}

func (ctrl *ContentController) respondError(w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(ctrl.Log, w, err)
}
