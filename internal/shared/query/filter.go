package query

import (
	"fmt"

	"github.com/pawpath/pawpath/internal/shared/errors"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Window is a limit/offset page over an ordered result set.
type Window struct {
	Limit  int
	Offset int
}

// NewWindow returns a validated window.
func NewWindow(limit, offset int) (Window, error) {
	w := Window{Limit: limit, Offset: offset}
	if err := w.Validate(); err != nil {
		return Window{}, err
	}
	return w, nil
}

// DefaultWindow is the first page with the default size.
func DefaultWindow() Window {
	return Window{Limit: DefaultLimit, Offset: 0}
}

// Validate rejects out-of-range values. Windows are never clamped here;
// clamping is a caller convenience.
func (w Window) Validate() error {
	if w.Limit <= 0 {
		return errors.NewValidationError("invalid limit", "limit must be greater than 0")
	}
	if w.Limit > MaxLimit {
		return errors.NewValidationError("invalid limit", fmt.Sprintf("limit must be at most %d", MaxLimit))
	}
	if w.Offset < 0 {
		return errors.NewValidationError("invalid offset", "offset must not be negative")
	}
	return nil
}

// Next returns the window for the following page.
func (w Window) Next() Window {
	return Window{Limit: w.Limit, Offset: w.Offset + w.Limit}
}

// Page returns the 1-based page number the window starts on.
func (w Window) Page() int {
	if w.Limit <= 0 {
		return 1
	}
	return w.Offset/w.Limit + 1
}

// TotalPages calculates total pages for a given total count.
func (w Window) TotalPages(total int64) int {
	if total == 0 || w.Limit <= 0 {
		return 1
	}
	return int((total + int64(w.Limit) - 1) / int64(w.Limit))
}
