// Package utils provides shared helpers used across the application.
//
// Go Learning Note — "pkg/" Directory Convention:
// Code under pkg/ is intended to be importable by external projects (unlike
// internal/ which is compiler-enforced private). Nothing here knows about the
// grid or the dictionary.
package utils

import (
	"github.com/google/uuid"
)

// GenerateID creates a new UUID v4 string for conversion records and request
// ids.
//
// Go Learning Note — "github.com/google/uuid":
// uuid.New() creates a random (v4) UUID like
// "550e8400-e29b-41d4-a716-446655440000". Random ids need no coordination
// between server instances, which suits history records written from many
// goroutines to a shared store.
func GenerateID() string {
	return uuid.New().String()
}

// IsID reports whether s parses as a UUID.
func IsID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

// RequestID keeps a caller-supplied request id when it is a well-formed UUID
// and generates a fresh one otherwise, so arbitrary header content never ends
// up in the logs.
func RequestID(supplied string) string {
	if supplied != "" && IsID(supplied) {
		return supplied
	}
	return GenerateID()
}
