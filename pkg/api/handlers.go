package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ckscontracting/demo-request/pkg/config"
	"github.com/ckscontracting/demo-request/pkg/logging"
	"github.com/ckscontracting/demo-request/pkg/models"
	"github.com/ckscontracting/demo-request/pkg/services"
	"github.com/ckscontracting/demo-request/pkg/web"
)

const (
	msgReceived        = "Demo request received successfully"
	msgMissingFields   = "Missing required fields"
	msgInternalFailure = "Internal server error"
)

// ContactPath is where the form posts demo requests
const ContactPath = "/api/contact"

// Handlers contains all HTTP handlers for the API
type Handlers struct {
	demoRequestService services.DemoRequestService
	config             *config.Config
	log                logrus.FieldLogger
	now                func() time.Time
}

// NewHandlers creates a new Handlers instance
func NewHandlers(demoRequestService services.DemoRequestService, cfg *config.Config, log logrus.FieldLogger) *Handlers {
	return &Handlers{
		demoRequestService: demoRequestService,
		config:             cfg,
		log:                log,
		now:                time.Now,
	}
}

// Register mounts every route on router
func (h *Handlers) Register(router gin.IRoutes) {
	router.GET("/", h.DemoRequestPage)
	router.POST(ContactPath, h.HandleDemoRequest)
	router.GET("/api/debug", h.DebugStatus)
	router.GET("/health", h.HealthCheck)
}

// HealthCheck handler for monitoring
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// DeliveryStatus describes whether outbound email is wired up
type DeliveryStatus struct {
	ResendAPIKey string `json:"resendApiKey"`
	HasAPIKey    bool   `json:"hasApiKey"`
	IsConfigured bool   `json:"isConfigured"`
	Environment  string `json:"environment"`
	Timestamp    string `json:"timestamp"`
}

// NewDeliveryStatus reports the delivery configuration as of now
func NewDeliveryStatus(cfg *config.Config, now time.Time) DeliveryStatus {
	return DeliveryStatus{
		ResendAPIKey: cfg.APIKeyPreview(),
		HasAPIKey:    cfg.HasAPIKey(),
		IsConfigured: cfg.DeliveryConfigured(),
		Environment:  cfg.Environment,
		Timestamp:    now.UTC().Format(time.RFC3339),
	}
}

// DebugStatus reports the delivery configuration without side effects
func (h *Handlers) DebugStatus(c *gin.Context) {
	c.JSON(http.StatusOK, NewDeliveryStatus(h.config, h.now()))
}

// DemoRequestPage serves the request-a-demo form
func (h *Handlers) DemoRequestPage(c *gin.Context) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)

	page := web.DemoRequestPage(web.FormProps{
		Brand:    h.config.Brand.Name,
		Endpoint: ContactPath,
	})
	if err := page.Render(c.Request.Context(), c.Writer); err != nil {
		logging.FromContext(c.Request.Context(), h.log).WithError(err).Error("Error rendering demo request page")
	}
}

// HandleDemoRequest processes a demo request posted by the form
func (h *Handlers) HandleDemoRequest(c *gin.Context) {
	ctx := c.Request.Context()
	log := logging.FromContext(ctx, h.log)

	body, err := c.GetRawData()
	if err != nil {
		log.WithError(err).Error("Error reading request body")
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgInternalFailure})
		return
	}

	log.WithField("bytes", len(body)).Debug("Received demo request body")

	var demoRequest models.DemoRequest
	// Non-string field values fail here and are answered as an unexpected error (500), not 400.
	if err := json.Unmarshal(body, &demoRequest); err != nil {
		log.WithError(err).Error("Error parsing demo request JSON")
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgInternalFailure})
		return
	}

	err = h.demoRequestService.Submit(ctx, demoRequest)

	var deliveryErr *services.DeliveryError
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"message": msgReceived})
	case errors.Is(err, services.ErrMissingFields):
		c.JSON(http.StatusBadRequest, gin.H{"error": msgMissingFields})
	case errors.As(err, &deliveryErr):
		log.WithField("company", demoRequest.Company).Error("Demo request lost: notification could not be delivered")
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgInternalFailure})
	default:
		log.WithError(err).WithField("company", demoRequest.Company).Error("Error processing demo request")
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgInternalFailure})
	}
}
