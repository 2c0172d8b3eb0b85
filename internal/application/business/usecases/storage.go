package usecases

import (
	"context"
	stderrors "errors"

	"github.com/pawpath/pawpath/internal/shared/constants"
	"github.com/pawpath/pawpath/internal/shared/errors"
)

// storageError passes application errors through and wraps anything else
// from the repository as a StorageError.
func storageError(ctx context.Context, err error) error {
	if errors.IsAppError(err) {
		return err
	}
	if stderrors.Is(ctx.Err(), context.DeadlineExceeded) || stderrors.Is(err, context.DeadlineExceeded) {
		return errors.NewStorageError("storage timeout", err)
	}
	return errors.NewStorageError(constants.ErrMsgStorageUnavailable, err)
}
