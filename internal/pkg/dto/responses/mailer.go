package responses

// SendEmailResponse is the mail relay reply. Error is only set when Success is false.
type SendEmailResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}
