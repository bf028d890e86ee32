package requests

// EmailPayload is the body accepted by the mail relay endpoint.
type EmailPayload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// EmailMessage is a single outgoing message handed to the SMTP transport.
type EmailMessage struct {
	Subject string   `json:"subject"`
	From    string   `json:"from"`
	ReplyTo string   `json:"reply_to,omitempty"`
	To      []string `json:"to"`
	Body    string   `json:"body"`
}
