package repository

import (
	"context"
	"errors"

	"github.com/altechdata/postcode-api/internal/models"
)

// ErrSessionClosed is returned when a closed session is used
var ErrSessionClosed = errors.New("repository session is closed")

// PostcodeRepository gives read-only access to the postcode reference table
type PostcodeRepository interface {
	// Session acquires a connection-scoped session; callers must Close it
	Session(ctx context.Context) (Session, error)

	// Ping checks that the store is reachable
	Ping(ctx context.Context) error

	// Close releases the underlying connection pool
	Close() error
}

// Session is a single acquired connection to the store
type Session interface {
	// FindByPostcode returns every row whose postcode equals code, in storage
	// order. No rows is an empty slice and a nil error.
	FindByPostcode(ctx context.Context, code string) ([]models.PostcodeRecord, error)

	// Close releases the session; calling it more than once is safe
	Close() error
}
