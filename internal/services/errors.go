package services

import (
	"errors"
	"fmt"
	"strings"

	"vsdcgateway/internal/vsdc"
)

var (
	ErrItemNotFound         = errors.New("item not found")
	ErrDeviceNotInitialized = errors.New("device not initialized")
	ErrRateLimited          = errors.New("too many requests")
)

// MissingFieldsError lists required request fields that were blank, in declaration order.
type MissingFieldsError struct {
	Subject string
	Fields  []string
}

func (e *MissingFieldsError) Error() string {
	if e.Subject == "" {
		return "Missing required fields: " + strings.Join(e.Fields, ", ")
	}
	return fmt.Sprintf("Missing required %s fields: %s", e.Subject, strings.Join(e.Fields, ", "))
}

// InvalidFieldError reports a present but malformed request field.
type InvalidFieldError struct {
	Field string
	Err   error
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *InvalidFieldError) Unwrap() error {
	return e.Err
}

func missing(subject string, values map[string]any, required []string) error {
	if fields := vsdc.MissingFields(values, required); len(fields) > 0 {
		return &MissingFieldsError{Subject: subject, Fields: fields}
	}
	return nil
}
