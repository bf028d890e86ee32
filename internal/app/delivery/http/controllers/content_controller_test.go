package controllers

import (
	"clinic-site/internal/pkg/cms_dto"
	"clinic-site/internal/pkg/exceptions"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) envelope {
	t.Helper()
	var body envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func TestFindDoctors(t *testing.T) {
	contentUsecase := &fakeContentUsecase{doctors: []cms_dto.Doctor{{ID: "d1", Name: "Omar", Department: "laser"}}}
	ctrl := NewContentController(zap.NewNop(), contentUsecase)

	rr := httptest.NewRecorder()
	ctrl.FindDoctors(rr, httptest.NewRequest("GET", "/api/v1/doctors?department=laser", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "laser", contentUsecase.lastFilter)

	body := decodeEnvelope(t, rr)
	assert.True(t, body.Success)
	var doctors []cms_dto.Doctor
	require.NoError(t, json.Unmarshal(body.Data, &doctors))
	require.Len(t, doctors, 1)
	assert.Equal(t, "Omar", doctors[0].Name)
}

func TestFindDevicesAcceptsTabAlias(t *testing.T) {
	contentUsecase := &fakeContentUsecase{}
	ctrl := NewContentController(zap.NewNop(), contentUsecase)

	rr := httptest.NewRecorder()
	ctrl.FindDevices(rr, httptest.NewRequest("GET", "/api/v1/devices?tab=dental", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "dental", contentUsecase.lastFilter)
}

func TestFindTestimonialsFeatured(t *testing.T) {
	contentUsecase := &fakeContentUsecase{}
	ctrl := NewContentController(zap.NewNop(), contentUsecase)

	rr := httptest.NewRecorder()
	ctrl.FindTestimonials(rr, httptest.NewRequest("GET", "/api/v1/testimonials?featured=true", nil))
	assert.True(t, contentUsecase.lastFeatured)

	rr = httptest.NewRecorder()
	ctrl.FindTestimonials(rr, httptest.NewRequest("GET", "/api/v1/testimonials?featured=maybe", nil))
	assert.False(t, contentUsecase.lastFeatured)
}

func TestFindClinicInfo(t *testing.T) {
	t.Run("Missing Document", func(t *testing.T) {
		ctrl := NewContentController(zap.NewNop(), &fakeContentUsecase{})

		rr := httptest.NewRecorder()
		ctrl.FindClinicInfo(rr, httptest.NewRequest("GET", "/api/v1/clinic-info", nil))

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.False(t, decodeEnvelope(t, rr).Success)
	})

	t.Run("Found", func(t *testing.T) {
		ctrl := NewContentController(zap.NewNop(), &fakeContentUsecase{clinicInfo: &cms_dto.ClinicInfo{Address: "Riyadh"}})

		rr := httptest.NewRecorder()
		ctrl.FindClinicInfo(rr, httptest.NewRequest("GET", "/api/v1/clinic-info", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Riyadh")
	})
}

func TestContentErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"Deadline", fmt.Errorf("fetch doctors: %w", context.DeadlineExceeded), http.StatusGatewayTimeout},
		{"Custom Error", exceptions.ErrNotFound(nil, "doctors"), http.StatusNotFound},
		{"Plain Error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewContentController(zap.NewNop(), &fakeContentUsecase{err: tt.err})

			rr := httptest.NewRecorder()
			ctrl.FindPlans(rr, httptest.NewRequest("GET", "/api/v1/plans", nil))

			assert.Equal(t, tt.wantCode, rr.Code)
			assert.False(t, decodeEnvelope(t, rr).Success)
		})
	}
}
