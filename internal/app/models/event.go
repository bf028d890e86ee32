package models

import "time"

// ContentChangedEvent tells running site instances that published content moved on.
type ContentChangedEvent struct {
	Event        string    `json:"event"`
	DeployID     string    `json:"deploy_id,omitempty"`
	DocumentID   string    `json:"document_id,omitempty"`
	DocumentType string    `json:"document_type,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}
