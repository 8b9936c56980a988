package app

import (
	"context"

	"github.com/alexanderramin/rihla/internal/domain"
)

// ChecklistSyncUseCase keeps a local checklist in sync with the remote
// store while giving the user immediate feedback. One instance owns the
// snapshot for one screen session.
type ChecklistSyncUseCase interface {
	// Load fetches the trip for a booking and replaces the snapshot
	// wholesale.
	Load(ctx context.Context, bookingID string) (*domain.TripSnapshot, error)

	// BeginEdit applies the new status/note to the in-memory item
	// immediately and records the rollback snapshot.
	BeginEdit(itemID string, nextStatus domain.ItemStatus, nextNote string) (*domain.PendingEdit, error)

	// CommitEdit attempts to persist a locally-applied edit. On failure
	// the item is rolled back before the outcome is returned.
	CommitEdit(ctx context.Context, edit *domain.PendingEdit) (*CommitOutcome, error)

	// Snapshot returns the current local trip view, or nil before Load.
	Snapshot() *domain.TripSnapshot
}

// CaptureUseCase drives the image capture, preview, upload and result
// lifecycle. One instance owns the session for one capture modal.
type CaptureUseCase interface {
	// Select obtains an asset from the given source and moves the
	// session to previewing. A second selection overwrites the first.
	Select(ctx context.Context, kind domain.SourceKind) error

	// Discard drops the previewed asset and returns to source choice.
	Discard() error

	// Submit uploads the previewed asset for analysis. On failure the
	// session returns to previewing with the asset retained.
	Submit(ctx context.Context) (*domain.AnalysisResult, error)

	// Dismiss closes the result view and returns the session to idle.
	Dismiss()

	// Cancel aborts the flow from any stage, reaching idle. An in-flight
	// upload is cancelled.
	Cancel()

	// Session returns a copy of the current session state.
	Session() domain.UploadSession
}

// PrefsUseCase exposes the persisted user identity and locale.
type PrefsUseCase interface {
	// Profile returns the stored preferences with defaults substituted
	// for anything never set.
	Profile(ctx context.Context) (domain.Preferences, error)

	// SetProfile stores identity and locale atomically. Empty fields are
	// left unchanged.
	SetProfile(ctx context.Context, prefs domain.Preferences) error

	// All returns every stored key/value pair.
	All(ctx context.Context) (map[string]string, error)
}
