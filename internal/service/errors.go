package service

import "errors"

var (
	// ErrNoTrip indicates an edit was requested before any trip was loaded.
	ErrNoTrip = errors.New("no trip loaded")

	// ErrEditInFlight indicates a second edit was started on an item
	// whose prior commit has not resolved yet. The new edit is rejected
	// rather than queued so it can never silently discard a pending
	// rollback snapshot.
	ErrEditInFlight = errors.New("item has an unresolved edit")

	// ErrBadStage indicates an upload operation that is not valid in the
	// session's current stage.
	ErrBadStage = errors.New("operation not valid in current stage")

	// ErrNoAsset indicates a submit without a previewed asset.
	ErrNoAsset = errors.New("no asset selected")
)
