package models

import "time"

type Deployment struct {
	ID                string     `bson:"_id" json:"id"`
	Status            string     `bson:"status" json:"status"`
	Mode              string     `bson:"mode" json:"mode"`
	Command           string     `bson:"command" json:"command"`
	DocumentID        string     `bson:"document_id,omitempty" json:"document_id,omitempty"`
	DocumentType      string     `bson:"document_type,omitempty" json:"document_type,omitempty"`
	DocumentUpdatedAt string     `bson:"document_updated_at,omitempty" json:"document_updated_at,omitempty"`
	RequestCount      int        `bson:"request_count" json:"request_count"`
	ExitCode          int        `bson:"exit_code" json:"exit_code"`
	LogObject         string     `bson:"log_object,omitempty" json:"log_object,omitempty"`
	Error             string     `bson:"error,omitempty" json:"error,omitempty"`
	StartedAt         time.Time  `bson:"started_at" json:"started_at"`
	FinishedAt        *time.Time `bson:"finished_at,omitempty" json:"finished_at,omitempty"`
}

func (d *Deployment) Duration() time.Duration {
	if d.FinishedAt == nil {
		return 0
	}
	return d.FinishedAt.Sub(d.StartedAt)
}
