package services

import (
	"context"
	"fmt"
	"time"

	"github.com/altechdata/postcode-api/internal/models"
	"github.com/altechdata/postcode-api/internal/repository"
	"github.com/altechdata/postcode-api/internal/utils"
	"github.com/sirupsen/logrus"
)

// MaxBatchSize is the largest number of tokens accepted in one call
const MaxBatchSize = 5

// LookupService resolves batches of postcodes against the repository
type LookupService struct {
	repo   repository.PostcodeRepository
	logger *logrus.Logger
}

// NewLookupService creates a new lookup service
func NewLookupService(repo repository.PostcodeRepository, logger *logrus.Logger) *LookupService {
	return &LookupService{
		repo:   repo,
		logger: logger,
	}
}

// Handle splits raw on commas and looks up every token in input order.
//
// Malformed and unknown postcodes become error entries in the result. The call
// itself fails only with ErrTooManyItems, before any lookup, or with
// ErrRepositoryFault, in which case no partial result is returned. Tokens that
// trim to the same text share one key and the last lookup wins.
func (s *LookupService) Handle(ctx context.Context, raw string) (*models.LookupResult, error) {
	start := time.Now()

	tokens := utils.SplitPostcodes(raw)
	if len(tokens) > MaxBatchSize {
		return nil, tooManyItems(MaxBatchSize)
	}

	session, err := s.repo.Session(ctx)
	if err != nil {
		return nil, repositoryFault(err)
	}
	defer func() {
		if cerr := session.Close(); cerr != nil {
			s.logger.WithError(cerr).Warn("Failed to release repository session")
		}
	}()

	result := models.NewLookupResult(len(tokens))
	for _, t := range tokens {
		token := utils.NormalizePostcode(t)

		if !utils.IsValidPostcode(token) {
			result.Set(token, models.ErrorEntryFor(invalidPostcodeMessage(token)))
			continue
		}

		records, err := session.FindByPostcode(ctx, token)
		if err != nil {
			return nil, repositoryFault(err)
		}

		if len(records) == 0 {
			result.Set(token, models.ErrorEntryFor(notFoundMessage(token)))
			continue
		}
		result.Set(token, models.MatchedEntry(records))
	}

	matched, failed := result.Counts()
	s.logger.WithFields(logrus.Fields{
		"tokens":   len(tokens),
		"matched":  matched,
		"failed":   failed,
		"duration": time.Since(start),
	}).Debug("Postcode batch resolved")

	return result, nil
}

// Health returns service health status
func (s *LookupService) Health() map[string]interface{} {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	start := time.Now()
	err := s.repo.Ping(ctx)
	elapsed := time.Since(start).Milliseconds()

	if err != nil {
		return map[string]interface{}{
			"status":           models.StatusUnhealthy,
			"error":            err.Error(),
			"response_time_ms": elapsed,
		}
	}
	return map[string]interface{}{
		"status":           models.StatusHealthy,
		"response_time_ms": elapsed,
		"max_batch_size":   MaxBatchSize,
	}
}

func invalidPostcodeMessage(token string) string {
	return fmt.Sprintf("Invalid postcode: %s. Please enter a 4-digit numeric value.", token)
}

func notFoundMessage(token string) string {
	return fmt.Sprintf("404, Postcode %s not found in the database", token)
}
