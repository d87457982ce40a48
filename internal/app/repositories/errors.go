package repositories

import (
	"context"
	"errors"

	"github.com/kauanferreira/salesdesk/internal/pkg/apperrors"
	"github.com/kauanferreira/salesdesk/internal/pkg/dberrors"
)

// sellerEmailKey is the unique constraint backing the duplicate-email contract
const sellerEmailKey = "seller_email_key"

// wrapDBError classifies a low-level storage failure into the application
// error taxonomy, preserving the original message. Repositories never retry.
func wrapDBError(err error) error {
	switch {
	case dberrors.IsUniqueViolation(err):
		return apperrors.NewDuplicateError(err.Error())
	case dberrors.IsForeignKeyViolation(err):
		return apperrors.NewIntegrityError(err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return apperrors.NewConnectionError(err.Error())
	default:
		return apperrors.NewPersistenceError(err.Error())
	}
}

// wrapSellerWriteError classifies seller insert/update failures. Only the
// email uniqueness constraint maps to the duplicate kind; a unique violation
// on any other constraint is a generic storage failure.
func wrapSellerWriteError(err error) error {
	if dberrors.IsUniqueViolation(err) {
		if dberrors.IsUniqueConstraintViolation(err, sellerEmailKey) {
			return apperrors.NewDuplicateError(err.Error())
		}
		return apperrors.NewPersistenceError(err.Error())
	}
	return wrapDBError(err)
}
