package remote

import (
	"fmt"

	"calendar-schedule/internal/event/repository"
	"calendar-schedule/pkg/log"
)

type implRepository struct {
	client *Client
	l      log.Logger
}

// New creates a Repository that forwards every call to a remote events API.
func New(client *Client, l log.Logger) repository.Repository {
	if client == nil {
		panic("event/repository/remote: client is required")
	}
	return &implRepository{client: client, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("event/repository/remote.%s", method)
}
