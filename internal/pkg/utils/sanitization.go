package utils

import (
	"clinic-site/internal/pkg/dto/requests"
	"strings"
)

func SanitizeBookingForm(input *requests.BookingForm) {
	input.Name = strings.TrimSpace(input.Name)
	input.Phone = strings.TrimSpace(input.Phone)
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	input.Date = strings.TrimSpace(input.Date)
	input.Department = strings.TrimSpace(strings.ToLower(input.Department))
	input.Doctor = strings.TrimSpace(input.Doctor)
	input.Reason = strings.TrimSpace(input.Reason)
	input.Offer = strings.TrimSpace(input.Offer)
}

func SanitizeContactForm(input *requests.ContactForm) {
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	input.Phone = strings.TrimSpace(input.Phone)
	input.Subject = strings.TrimSpace(input.Subject)
	input.Message = strings.TrimSpace(input.Message)
}

// SanitizeWebhookDocument strips CR and LF so a crafted document cannot forge log lines.
func SanitizeWebhookDocument(input *requests.SanityWebhookDocument) {
	replacer := strings.NewReplacer("\r", "", "\n", "")
	input.ID = replacer.Replace(strings.TrimSpace(input.ID))
	input.Type = replacer.Replace(strings.TrimSpace(input.Type))
	input.UpdatedAt = replacer.Replace(strings.TrimSpace(input.UpdatedAt))
}
