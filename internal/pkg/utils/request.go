package utils

import (
	"clinic-site/internal/pkg/constvars"
	"clinic-site/internal/pkg/dto/requests"
	"net/http"
	"strconv"
	"strings"
)

func BuildPaginationRequest(r *http.Request) *requests.Pagination {
	pageStr := r.URL.Query().Get("page")
	pageSizeStr := r.URL.Query().Get("page_size")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page <= 0 {
		page = 1
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize <= 0 {
		pageSize = constvars.AppDefaultPageSize
	}
	if pageSize > constvars.AppMaxPageSize {
		pageSize = constvars.AppMaxPageSize
	}

	return &requests.Pagination{
		Page:     page,
		PageSize: pageSize,
	}
}

// QueryParam returns the first non-empty value among the given query keys.
func QueryParam(r *http.Request, keys ...string) string {
	query := r.URL.Query()
	for _, key := range keys {
		if value := strings.TrimSpace(query.Get(key)); value != "" {
			return value
		}
	}
	return ""
}

func BuildBookingFormRequest(r *http.Request) *requests.BookingForm {
	return &requests.BookingForm{
		Name:       r.PostFormValue("name"),
		Phone:      r.PostFormValue("phone"),
		Email:      r.PostFormValue("email"),
		Date:       r.PostFormValue("date"),
		Department: r.PostFormValue("department"),
		Doctor:     r.PostFormValue("doctor"),
		Reason:     r.PostFormValue("reason"),
		Offer:      r.PostFormValue("offer"),
	}
}

func BuildContactFormRequest(r *http.Request) *requests.ContactForm {
	return &requests.ContactForm{
		FirstName: r.PostFormValue("firstName"),
		LastName:  r.PostFormValue("lastName"),
		Email:     r.PostFormValue("email"),
		Phone:     r.PostFormValue("phone"),
		Subject:   r.PostFormValue("subject"),
		Message:   r.PostFormValue("message"),
	}
}
