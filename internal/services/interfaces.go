package services

import (
	"context"

	"github.com/altechdata/postcode-api/internal/models"
)

// LookupServiceInterface defines the interface for the batch lookup service
type LookupServiceInterface interface {
	// Handle resolves a raw comma-separated postcode list
	Handle(ctx context.Context, raw string) (*models.LookupResult, error)

	// Health returns service health status
	Health() map[string]interface{}
}
