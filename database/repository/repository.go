package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound is returned when an identity does not resolve to a document.
var ErrNotFound = errors.New("document not found")

// Default per-operation timeouts.
const (
	ReadTimeout  = 5 * time.Second
	ScanTimeout  = 10 * time.Second
	WriteTimeout = 5 * time.Second
)

// WithTimeout bounds a store call by the given timeout.
func WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout)
}

// ObjectID parses a hex identity. A malformed id can never match a document,
// so it is reported as ErrNotFound.
func ObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrNotFound
	}
	return oid, nil
}
