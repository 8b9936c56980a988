package service

import (
	"context"
	"sync"

	"github.com/alexanderramin/rihla/internal/app"
	"github.com/alexanderramin/rihla/internal/domain"
	"github.com/alexanderramin/rihla/internal/remote"
	"github.com/google/uuid"
)

// checklistEngine owns the in-memory checklist for one screen session
// and reconciles optimistic edits against the remote store. The mutex
// guards the snapshot and the pending-edit table; the remote call itself
// runs unlocked so commits for different items may overlap. Items are
// disjoint, so overlapping commits never touch each other's state.
type checklistEngine struct {
	remote remote.Client

	mu      sync.Mutex
	snap    *domain.TripSnapshot
	pending map[string]*domain.PendingEdit // keyed by item ID
}

// NewChecklistEngine creates a ChecklistSyncUseCase for one screen
// session.
func NewChecklistEngine(client remote.Client) app.ChecklistSyncUseCase {
	return &checklistEngine{
		remote:  client,
		pending: make(map[string]*domain.PendingEdit),
	}
}

func (e *checklistEngine) Load(ctx context.Context, bookingID string) (*domain.TripSnapshot, error) {
	snap, err := e.remote.FetchTrip(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	e.snap = snap
	// A wholesale replace invalidates prior rollback targets; commits
	// still in flight resolve against the new list by item ID.
	e.pending = make(map[string]*domain.PendingEdit)
	e.mu.Unlock()

	return snap, nil
}

func (e *checklistEngine) BeginEdit(itemID string, nextStatus domain.ItemStatus, nextNote string) (*domain.PendingEdit, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.snap == nil {
		return nil, ErrNoTrip
	}
	item, err := e.snap.Item(itemID)
	if err != nil {
		return nil, err
	}
	if _, inFlight := e.pending[itemID]; inFlight {
		return nil, ErrEditInFlight
	}

	edit := domain.NewPendingEdit(item, nextStatus, nextNote)
	edit.ID = uuid.New().String()
	e.pending[itemID] = edit
	return edit, nil
}

func (e *checklistEngine) CommitEdit(ctx context.Context, edit *domain.PendingEdit) (*app.CommitOutcome, error) {
	e.mu.Lock()
	if e.snap == nil {
		e.mu.Unlock()
		return nil, ErrNoTrip
	}
	if e.pending[edit.ItemID] != edit {
		// Already resolved; the item is wherever the resolution left it.
		e.mu.Unlock()
		return &app.CommitOutcome{Code: app.CommitApplied, ItemID: edit.ItemID}, nil
	}
	tripID := e.snap.TripID
	e.mu.Unlock()

	err := e.remote.UpdateChecklistItem(ctx, tripID, edit.ItemID, remote.ItemUpdate{
		Status: edit.NextStatus,
		Note:   edit.NextNote,
	})

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.pending[edit.ItemID] != edit {
		// A reload replaced the snapshot while the call was in flight and
		// unregistered this edit. The fresh list is authoritative; do not
		// roll back into it.
		return &app.CommitOutcome{Code: app.CommitApplied, ItemID: edit.ItemID}, nil
	}
	delete(e.pending, edit.ItemID)

	if err != nil {
		// Transport errors and success:false resolve the same way:
		// restore the pre-edit values before surfacing the failure.
		if item, findErr := e.snap.Item(edit.ItemID); findErr == nil {
			edit.Rollback(item)
		}
		return &app.CommitOutcome{
			Code:    app.CommitRolledBack,
			ItemID:  edit.ItemID,
			Message: app.UserMessage(err),
		}, err
	}

	// The optimistic apply already holds; nothing to re-apply.
	return &app.CommitOutcome{Code: app.CommitApplied, ItemID: edit.ItemID}, nil
}

func (e *checklistEngine) Snapshot() *domain.TripSnapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snap
}
