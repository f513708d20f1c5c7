package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnsupportedFormat  = errors.New("unsupported document format")
	ErrExtractionFailed   = errors.New("document extraction failed")
	ErrUnknownRole        = errors.New("unknown job role")
	ErrSessionNotFound    = errors.New("session not found")
	ErrSessionActive      = errors.New("interview already in progress")
	ErrNoActiveQuestion   = errors.New("no active question")
	ErrNothingToEnd       = errors.New("no interview in progress")
	ErrNoCompletedSession = errors.New("no completed interview")
	ErrTemporary          = errors.New("temporary failure")
)

// WrapError preserves typed semantic errors with operation context.
func WrapError(kind error, operation string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", operation, kind, err)
}

func IsKind(err error, kind error) bool {
	return errors.Is(err, kind)
}
