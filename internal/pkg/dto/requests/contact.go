package requests

type ContactForm struct {
	FirstName string `json:"firstName" validate:"required,min=2"`
	LastName  string `json:"lastName" validate:"required,min=2"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required,min=10"`
	Subject   string `json:"subject" validate:"required,min=3"`
	Message   string `json:"message" validate:"required,min=10"`
}
