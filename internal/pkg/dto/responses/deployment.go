package responses

import "time"

type Deployment struct {
	ID                string     `json:"id"`
	Status            string     `json:"status"`
	Mode              string     `json:"mode"`
	DocumentID        string     `json:"document_id,omitempty"`
	DocumentType      string     `json:"document_type,omitempty"`
	DocumentUpdatedAt string     `json:"document_updated_at,omitempty"`
	RequestCount      int        `json:"request_count"`
	LogObject         string     `json:"log_object,omitempty"`
	Error             string     `json:"error,omitempty"`
	StartedAt         time.Time  `json:"started_at"`
	FinishedAt        *time.Time `json:"finished_at,omitempty"`
	DurationMs        int64      `json:"duration_ms"`
}
