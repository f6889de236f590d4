package services

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingFields is returned when name, company, email or message is empty
	ErrMissingFields = errors.New("missing required fields")
)

// DeliveryError means the primary notification could not be sent
type DeliveryError struct {
	Recipient string
	Err       error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("error delivering notification to %s: %v", e.Recipient, e.Err)
}

func (e *DeliveryError) Unwrap() error { return e.Err }

// AcknowledgementError means the thank-you message to the submitter failed.
// It is only ever logged.
type AcknowledgementError struct {
	Recipient string
	Err       error
}

func (e *AcknowledgementError) Error() string {
	return fmt.Sprintf("error sending acknowledgement to %s: %v", e.Recipient, e.Err)
}

func (e *AcknowledgementError) Unwrap() error { return e.Err }

// UnexpectedError wraps any other failure while processing a request
type UnexpectedError struct {
	Op  string
	Err error
}

func (e *UnexpectedError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *UnexpectedError) Unwrap() error { return e.Err }
