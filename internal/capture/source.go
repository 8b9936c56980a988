// Package capture abstracts on-device image acquisition. The reference
// device APIs are callback-style pickers; here they are modeled as
// request/response operations that return an asset or a tagged failure.
package capture

import (
	"context"
	"errors"

	"github.com/alexanderramin/rihla/internal/domain"
)

var (
	// ErrCancelled indicates the user backed out of the picker.
	ErrCancelled = errors.New("selection cancelled")

	// ErrUnsupportedKind indicates a source kind outside the canonical set.
	ErrUnsupportedKind = errors.New("unsupported capture source")
)

// Source produces exactly one asset per pick. A second pick replaces
// whatever the first returned; the source itself holds no state.
type Source interface {
	Pick(ctx context.Context, kind domain.SourceKind) (*domain.Asset, error)
}
