package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ckscontracting/demo-request/pkg/config"
	"github.com/ckscontracting/demo-request/pkg/logging"
	"github.com/ckscontracting/demo-request/pkg/models"
	"github.com/ckscontracting/demo-request/pkg/utils"
)

// DemoRequestService defines the interface for handling demo request submissions
type DemoRequestService interface {
	Submit(ctx context.Context, req models.DemoRequest) error
}

// Sender delivers a single notification
type Sender interface {
	Send(ctx context.Context, n models.Notification) (models.Receipt, error)
}

// Renderer builds the outbound messages for a request
type Renderer interface {
	RenderNotification(req models.DemoRequest) (models.Notification, error)
	RenderAcknowledgement(req models.DemoRequest) (models.Notification, error)
}

type demoRequestServiceImpl struct {
	sender   Sender
	renderer Renderer
	config   *config.Config
	log      logrus.FieldLogger
}

// NewDemoRequestService creates a new submission service.
// sender may be nil when delivery is not configured.
func NewDemoRequestService(
	sender Sender,
	renderer Renderer,
	config *config.Config,
	log logrus.FieldLogger,
) DemoRequestService {
	return &demoRequestServiceImpl{
		sender:   sender,
		renderer: renderer,
		config:   config,
		log:      log,
	}
}

// Submit validates the request, notifies the internal inbox and thanks the
// submitter. With no delivery credential it logs the notification instead.
func (s *demoRequestServiceImpl) Submit(ctx context.Context, req models.DemoRequest) error {
	log := logging.FromContext(ctx, s.log).WithFields(logrus.Fields{
		"company":     req.Company,
		"fingerprint": utils.Fingerprint(req.Email, req.Company),
	})

	if err := req.Validate(); err != nil {
		log.WithError(err).Warn("Rejected demo request with missing required fields")
		return fmt.Errorf("%w: %v", ErrMissingFields, err)
	}

	notification, err := s.renderer.RenderNotification(req)
	if err != nil {
		log.WithError(err).Error("Error rendering demo request notification")
		return &UnexpectedError{Op: "render notification", Err: err}
	}

	if !s.config.DeliveryConfigured() {
		s.logFallback(log, notification)
		return nil
	}

	if s.sender == nil {
		log.Error("Email delivery is configured but no sender was provided")
		return &UnexpectedError{Op: "send notification", Err: errors.New("no sender")}
	}

	recipient := strings.Join(notification.To, ", ")
	receipt, err := s.sender.Send(ctx, notification)
	if err != nil {
		log.WithError(err).WithField("recipient", recipient).Error("Failed to send demo request notification")
		return &DeliveryError{Recipient: recipient, Err: err}
	}

	log.WithFields(logrus.Fields{
		"recipient": recipient,
		"email_id":  receipt.ID,
	}).Info("Demo request notification sent")

	// The caller may hang up once the lead is delivered; the thank-you still goes out.
	s.acknowledge(context.WithoutCancel(ctx), log, req)

	return nil
}

// acknowledge sends the best-effort thank-you message. Failures are logged and dropped.
func (s *demoRequestServiceImpl) acknowledge(ctx context.Context, log *logrus.Entry, req models.DemoRequest) {
	log = log.WithField("recipient", req.Email)

	ack, err := s.renderer.RenderAcknowledgement(req)
	if err != nil {
		log.WithError(&AcknowledgementError{Recipient: req.Email, Err: err}).Warn("Failed to render acknowledgement email")
		return
	}

	receipt, err := s.sender.Send(ctx, ack)
	if err != nil {
		log.WithError(&AcknowledgementError{Recipient: req.Email, Err: err}).Warn("Failed to send acknowledgement email")
		return
	}

	log.WithField("email_id", receipt.ID).Info("Acknowledgement email sent")
}

func (s *demoRequestServiceImpl) logFallback(log *logrus.Entry, n models.Notification) {
	log.WithFields(logrus.Fields{
		"mode":        "fallback",
		"environment": s.config.Environment,
		"to":          strings.Join(n.To, ", "),
		"subject":     n.Subject,
		"reply_to":    n.ReplyTo,
		"content":     n.Text,
	}).Info("Email delivery not configured, logging demo request instead")
	log.Debug("Set RESEND_API_KEY to a key from https://resend.com to enable email sending")
}
