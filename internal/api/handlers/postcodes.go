package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/altechdata/postcode-api/internal/api/middleware"
	"github.com/altechdata/postcode-api/internal/models"
	"github.com/altechdata/postcode-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/sirupsen/logrus"
)

// WelcomeMessage is served by the hello endpoint
const WelcomeMessage = "Welcome to Postcode API!"

// PostcodesHandler exposes batch postcode lookups over HTTP
type PostcodesHandler struct {
	lookupService services.LookupServiceInterface
	metrics       *Metrics
	logger        *logrus.Logger
}

// NewPostcodesHandler creates a new postcodes handler
func NewPostcodesHandler(lookupService services.LookupServiceInterface, metrics *Metrics, logger *logrus.Logger) *PostcodesHandler {
	return &PostcodesHandler{
		lookupService: lookupService,
		metrics:       metrics,
		logger:        logger,
	}
}

// LookupJSON handles the JSON batch lookup
// @Summary Look up postcodes (JSON)
// @Description Resolve up to 5 comma-separated 4-digit postcodes. Each key of the response is a trimmed input token mapped to its records or to an error object.
// @Tags Postcodes
// @Accept json
// @Produce json
// @Param request body models.LookupRequest true "Comma-separated postcodes"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /postcodes [post]
func (h *PostcodesHandler) LookupJSON(c *gin.Context) {
	h.lookup(c, binding.JSON)
}

// LookupForm handles the form-encoded batch lookup
// @Summary Look up postcodes (form)
// @Description Same contract as the JSON call with the list in the form field "postcodes".
// @Tags Postcodes
// @Accept x-www-form-urlencoded
// @Produce json
// @Param postcodes formData string true "Comma-separated postcodes"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router / [post]
func (h *PostcodesHandler) LookupForm(c *gin.Context) {
	h.lookup(c, binding.Form)
}

// Hello returns the welcome message
// @Summary Welcome message
// @Description Liveness text for quick manual checks
// @Tags Postcodes
// @Produce plain
// @Success 200 {string} string "Welcome to Postcode API!"
// @Router /hello [get]
func (h *PostcodesHandler) Hello(c *gin.Context) {
	c.String(http.StatusOK, WelcomeMessage)
}

func (h *PostcodesHandler) lookup(c *gin.Context, b binding.Binding) {
	start := time.Now()
	requestID := c.GetString(middleware.RequestIDKey)

	var request models.LookupRequest
	if err := c.ShouldBindWith(&request, b); err != nil {
		h.logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"binding":    b.Name(),
			"error":      err.Error(),
		}).Warn("Invalid lookup request")

		h.metrics.RecordRejected(time.Since(start))
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.lookupService.Handle(c.Request.Context(), request.Postcodes)
	if err != nil {
		fields := logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"duration":   time.Since(start),
		}

		if errors.Is(err, services.ErrTooManyItems) {
			h.logger.WithFields(fields).Warn("Postcode batch too large")
			h.metrics.RecordRejected(time.Since(start))
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
			return
		}

		h.logger.WithFields(fields).Error("Postcode lookup failed")
		h.metrics.RecordError(time.Since(start))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	matched, failed := result.Counts()
	h.metrics.RecordSuccess(time.Since(start), matched, failed)

	h.logger.WithFields(logrus.Fields{
		"request_id": requestID,
		"postcodes":  result.Len(),
		"matched":    matched,
		"failed":     failed,
		"duration":   time.Since(start),
	}).Info("Postcode lookup completed")

	c.JSON(http.StatusOK, result)
}
