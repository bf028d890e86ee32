package controllers

import (
	"clinic-site/internal/app/config"
	"clinic-site/internal/app/models"
	"clinic-site/internal/app/services/core/deploy"
	"clinic-site/internal/pkg/constvars"
	"clinic-site/internal/pkg/dto/requests"
	"clinic-site/internal/pkg/dto/responses"
	"clinic-site/internal/pkg/exceptions"
	"clinic-site/internal/pkg/utils"
	"errors"
	"io"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

type WebhookController struct {
	Log            *logrus.Logger
	ErrorLog       *zap.Logger
	DeployUsecase  deploy.DeployUsecase
	InternalConfig *config.InternalConfig
}

func NewWebhookController(logger *logrus.Logger, errorLog *zap.Logger, deployUsecase deploy.DeployUsecase, internalConfig *config.InternalConfig) *WebhookController {
	return &WebhookController{
		Log:            logger,
		ErrorLog:       errorLog,
		DeployUsecase:  deployUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *WebhookController) Health(w http.ResponseWriter, r *http.Request) {
	utils.BuildTextResponse(w, constvars.StatusOK, constvars.WebhookHealthResponse)
}

// SanityContent runs one deploy for an authorized change notification and answers
// once that deploy has finished. An empty body is accepted as an unnamed document.
func (ctrl *WebhookController) SanityContent(w http.ResponseWriter, r *http.Request) {
	document := new(requests.SanityWebhookDocument)
	if err := json.NewDecoder(r.Body).Decode(document); err != nil && !errors.Is(err, io.EOF) {
		ctrl.Log.WithFields(logrus.Fields{
			constvars.LoggingRequestIDKey: utils.GetRequestID(r.Context()),
			"error":                       err.Error(),
		}).Warn("Sanity webhook body is not valid JSON")
		utils.BuildTextResponse(w, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest)
		return
	}

	deployment, err := ctrl.DeployUsecase.Trigger(r.Context(), document)
	if err != nil {
		code := constvars.StatusInternalServerError
		message := constvars.ErrClientDeployCommandFailed
		var customErr *exceptions.CustomError
		if errors.As(err, &customErr) {
			code = customErr.StatusCode
			message = customErr.ClientMessage
		}

		fields := logrus.Fields{
			constvars.LoggingRequestIDKey:  utils.GetRequestID(r.Context()),
			constvars.LoggingStatusCodeKey: code,
		}
		if deployment != nil {
			fields[constvars.LoggingDeployIDKey] = deployment.ID
		}
		ctrl.Log.WithFields(fields).WithError(err).Warn("Sanity webhook answered with failure")

		utils.BuildTextResponse(w, code, message)
		return
	}

	utils.BuildTextResponse(w, constvars.StatusOK, constvars.WebhookOKResponse)
}

// Deployments lists recorded deploys newest first. The page size never exceeds Deploy.HistoryLimit.
func (ctrl *WebhookController) Deployments(w http.ResponseWriter, r *http.Request) {
	paginationRequest := utils.BuildPaginationRequest(r)
	if limit := ctrl.InternalConfig.Deploy.HistoryLimit; limit > 0 && paginationRequest.PageSize > limit {
		paginationRequest.PageSize = limit
	}

	result, total, err := ctrl.DeployUsecase.Deployments(r.Context(), paginationRequest.Page, paginationRequest.PageSize)
	if err != nil {
		utils.BuildErrorResponse(ctrl.ErrorLog, w, err)
		return
	}

	data := make([]responses.Deployment, 0, len(result))
	for i := range result {
		data = append(data, toDeploymentResponse(&result[i]))
	}

	baseURL := ctrl.InternalConfig.App.BaseUrl + r.URL.Path
	pagination := utils.BuildPaginationResponse(total, paginationRequest.Page, paginationRequest.PageSize, baseURL)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetDeploymentsSuccessfully, pagination, data)
}

func toDeploymentResponse(deployment *models.Deployment) responses.Deployment {
	return responses.Deployment{
		ID:                deployment.ID,
		Status:            deployment.Status,
		Mode:              deployment.Mode,
		DocumentID:        deployment.DocumentID,
		DocumentType:      deployment.DocumentType,
		DocumentUpdatedAt: deployment.DocumentUpdatedAt,
		RequestCount:      deployment.RequestCount,
		LogObject:         deployment.LogObject,
		Error:             deployment.Error,
		StartedAt:         deployment.StartedAt,
		FinishedAt:        deployment.FinishedAt,
		DurationMs:        deployment.Duration().Milliseconds(),
	}
}
