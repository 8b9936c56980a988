package testutil

import (
	"context"
	"errors"
	"sync"

	"github.com/alexanderramin/rihla/internal/domain"
	"github.com/alexanderramin/rihla/internal/remote"
)

// UpdateCall records one UpdateChecklistItem invocation.
type UpdateCall struct {
	TripID string
	ItemID string
	Update remote.ItemUpdate
}

// FakeRemote is a scripted remote.Client. Zero value serves an empty
// trip and succeeds on every call.
type FakeRemote struct {
	mu sync.Mutex

	Trip     *domain.TripSnapshot
	FetchErr error

	UpdateErr     error
	UpdateErrs    map[string]error // per-item override, keyed by item ID
	UpdateCalls   []UpdateCall
	UpdateBarrier chan struct{} // when set, updates block until released

	AnalyzeResult  *domain.AnalysisResult
	AnalyzeErr     error
	AnalyzeCalls   []remote.AnalyzeRequest
	AnalyzeBarrier chan struct{} // when set, analyze blocks until released
}

var _ remote.Client = (*FakeRemote)(nil)

func (f *FakeRemote) FetchTrip(ctx context.Context, bookingID string) (*domain.TripSnapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FetchErr != nil {
		return nil, f.FetchErr
	}
	if f.Trip != nil {
		return f.Trip, nil
	}
	return NewTestTrip(), nil
}

func (f *FakeRemote) UpdateChecklistItem(ctx context.Context, tripID, itemID string, update remote.ItemUpdate) error {
	f.mu.Lock()
	f.UpdateCalls = append(f.UpdateCalls, UpdateCall{TripID: tripID, ItemID: itemID, Update: update})
	barrier := f.UpdateBarrier
	err := f.UpdateErr
	if override, ok := f.UpdateErrs[itemID]; ok {
		err = override
	}
	f.mu.Unlock()

	if barrier != nil {
		select {
		case <-barrier:
		case <-ctx.Done():
			return barrierErr(ctx)
		}
	}
	return err
}

func (f *FakeRemote) AnalyzeImage(ctx context.Context, req remote.AnalyzeRequest) (*domain.AnalysisResult, error) {
	f.mu.Lock()
	f.AnalyzeCalls = append(f.AnalyzeCalls, req)
	barrier := f.AnalyzeBarrier
	result := f.AnalyzeResult
	err := f.AnalyzeErr
	f.mu.Unlock()

	if barrier != nil {
		select {
		case <-barrier:
		case <-ctx.Done():
			return nil, barrierErr(ctx)
		}
	}
	if err != nil {
		return nil, err
	}
	if result != nil {
		return result, nil
	}
	return NewTestResult(false), nil
}

// barrierErr reports an expired barrier wait the way the real client
// does: a cancelled caller passes through, a deadline becomes a timeout.
func barrierErr(ctx context.Context) error {
	if errors.Is(ctx.Err(), context.Canceled) {
		return context.Canceled
	}
	return remote.ErrTimeout
}

func (f *FakeRemote) Available(ctx context.Context) bool { return true }

// Updates returns a copy of the recorded update calls.
func (f *FakeRemote) Updates() []UpdateCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]UpdateCall(nil), f.UpdateCalls...)
}

// Analyzes returns a copy of the recorded analyze calls.
func (f *FakeRemote) Analyzes() []remote.AnalyzeRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]remote.AnalyzeRequest(nil), f.AnalyzeCalls...)
}
