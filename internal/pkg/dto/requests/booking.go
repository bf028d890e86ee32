package requests

type BookingForm struct {
	Name       string `json:"name" validate:"required,min=2"`
	Phone      string `json:"phone" validate:"required,min=10"`
	Email      string `json:"email" validate:"required,email"`
	Date       string `json:"date" validate:"required"`
	Department string `json:"department" validate:"required,oneof=dental dermatology laser"`
	Doctor     string `json:"doctor,omitempty"`
	Reason     string `json:"reason" validate:"required,oneof=routine-checkup new-patient specific-concern"`
	Offer      string `json:"offer,omitempty"`
}
