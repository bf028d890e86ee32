package requests

// SanityWebhookDocument holds the only fields of a CMS change notification that get logged.
type SanityWebhookDocument struct {
	ID        string `json:"_id"`
	Type      string `json:"_type"`
	UpdatedAt string `json:"_updatedAt"`
}
