// Package common defines shared constants and sentinel errors used across the
// client layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Remote-source errors. The sync engine treats both identically for its
	// suppression rule, but they keep distinct messages for the consumer.
	ErrRemoteStatus = errors.New("remote returned non-success status")
	ErrEmptyPayload = errors.New("remote returned empty payload")

	// Generic internal flow control.
	ErrInternal = errors.New("internal error")
)
