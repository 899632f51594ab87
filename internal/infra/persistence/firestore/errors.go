package firestore

import (
	domainerrors "quickbite/internal/domain/errors"
	"quickbite/internal/errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// mapStoreError translates Firestore RPC failures into domain errors.
// notFound is the gateway-specific sentinel for a missing document.
func mapStoreError(err error, notFound error) error {
	if err == nil {
		return nil
	}

	switch status.Code(err) {
	case codes.NotFound:
		return notFound
	case codes.Unavailable, codes.DeadlineExceeded, codes.ResourceExhausted:
		return domainerrors.ErrStoreUnavailable
	case codes.PermissionDenied, codes.Unauthenticated:
		return domainerrors.ErrPermissionDenied
	default:
		return errors.Wrap(err, "firestore")
	}
}
