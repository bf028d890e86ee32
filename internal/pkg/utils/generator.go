package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateRequestID returns a prefixed id with the uuid dashes removed.
func GenerateRequestID(prefix string) string {
	return prefix + strings.ReplaceAll(uuid.NewString(), "-", "")
}

func GenerateDeployID() string {
	return uuid.NewString()
}
