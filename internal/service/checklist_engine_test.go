package service

import (
	"context"
	"sync"
	"testing"

	"github.com/alexanderramin/rihla/internal/app"
	"github.com/alexanderramin/rihla/internal/domain"
	"github.com/alexanderramin/rihla/internal/remote"
	"github.com/alexanderramin/rihla/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadedEngine(t *testing.T, fake *testutil.FakeRemote) app.ChecklistSyncUseCase {
	t.Helper()
	engine := NewChecklistEngine(fake)
	_, err := engine.Load(context.Background(), "BK-1881")
	require.NoError(t, err)
	return engine
}

func TestLoad_ReplacesSnapshotWholesale(t *testing.T) {
	fake := &testutil.FakeRemote{}
	engine := NewChecklistEngine(fake)

	assert.Nil(t, engine.Snapshot())

	snap, err := engine.Load(context.Background(), "BK-1881")
	require.NoError(t, err)
	assert.Equal(t, "trip-7", snap.TripID)
	assert.Same(t, snap, engine.Snapshot())

	fake.Trip = testutil.NewTestTrip(testutil.WithTripID("trip-8"))
	snap2, err := engine.Load(context.Background(), "BK-1881")
	require.NoError(t, err)
	assert.Equal(t, "trip-8", snap2.TripID)
	assert.Same(t, snap2, engine.Snapshot())
}

func TestLoad_FailurePreservesSnapshot(t *testing.T) {
	fake := &testutil.FakeRemote{}
	engine := loadedEngine(t, fake)
	before := engine.Snapshot()

	fake.FetchErr = remote.ErrUnreachable
	_, err := engine.Load(context.Background(), "BK-1881")
	assert.ErrorIs(t, err, remote.ErrUnreachable)
	assert.Same(t, before, engine.Snapshot())
}

func TestBeginEdit_AppliesOptimistically(t *testing.T) {
	engine := loadedEngine(t, &testutil.FakeRemote{})

	edit, err := engine.BeginEdit("c1", domain.ItemDone, "bring passport")
	require.NoError(t, err)

	item, err := engine.Snapshot().Item("c1")
	require.NoError(t, err)
	assert.Equal(t, domain.ItemDone, item.Status)
	assert.Equal(t, "bring passport", item.Note)

	assert.NotEmpty(t, edit.ID)
	assert.Equal(t, domain.ItemPending, edit.PrevStatus)
	assert.Equal(t, "", edit.PrevNote)
}

func TestBeginEdit_UnknownItem(t *testing.T) {
	engine := loadedEngine(t, &testutil.FakeRemote{})

	_, err := engine.BeginEdit("c9", domain.ItemDone, "")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestBeginEdit_BeforeLoad(t *testing.T) {
	engine := NewChecklistEngine(&testutil.FakeRemote{})

	_, err := engine.BeginEdit("c1", domain.ItemDone, "")
	assert.ErrorIs(t, err, ErrNoTrip)
}

func TestBeginEdit_RejectsSecondEditWhileInFlight(t *testing.T) {
	fake := &testutil.FakeRemote{UpdateBarrier: make(chan struct{})}
	engine := loadedEngine(t, fake)

	edit, err := engine.BeginEdit("c1", domain.ItemDone, "first")
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = engine.CommitEdit(context.Background(), edit)
	}()

	// The first commit is parked on the barrier; a second edit on the
	// same item must be rejected, not queued and not silently dropped.
	_, err = engine.BeginEdit("c1", domain.ItemPending, "second")
	assert.ErrorIs(t, err, ErrEditInFlight)

	// A different item is unaffected.
	_, err = engine.BeginEdit("c2", domain.ItemPending, "")
	assert.NoError(t, err)

	close(fake.UpdateBarrier)
	<-done

	// Once resolved, the item accepts a new edit.
	_, err = engine.BeginEdit("c1", domain.ItemPending, "third")
	assert.NoError(t, err)
}

func TestCommitEdit_Success(t *testing.T) {
	fake := &testutil.FakeRemote{}
	engine := loadedEngine(t, fake)

	edit, err := engine.BeginEdit("c1", domain.ItemDone, "bring passport")
	require.NoError(t, err)

	outcome, err := engine.CommitEdit(context.Background(), edit)
	require.NoError(t, err)
	assert.Equal(t, app.CommitApplied, outcome.Code)
	assert.Equal(t, "c1", outcome.ItemID)

	item, err := engine.Snapshot().Item("c1")
	require.NoError(t, err)
	assert.Equal(t, domain.ItemDone, item.Status)
	assert.Equal(t, "bring passport", item.Note)

	calls := fake.Updates()
	require.Len(t, calls, 1)
	assert.Equal(t, "trip-7", calls[0].TripID)
	assert.Equal(t, "c1", calls[0].ItemID)
	assert.Equal(t, domain.ItemDone, calls[0].Update.Status)
	assert.Equal(t, "bring passport", calls[0].Update.Note)
}

func TestCommitEdit_SuccessIsIdempotent(t *testing.T) {
	fake := &testutil.FakeRemote{}
	engine := loadedEngine(t, fake)

	edit, err := engine.BeginEdit("c1", domain.ItemDone, "bring passport")
	require.NoError(t, err)

	_, err = engine.CommitEdit(context.Background(), edit)
	require.NoError(t, err)

	// Re-resolving the same edit must not change the item or issue
	// another remote call.
	outcome, err := engine.CommitEdit(context.Background(), edit)
	require.NoError(t, err)
	assert.Equal(t, app.CommitApplied, outcome.Code)

	item, err := engine.Snapshot().Item("c1")
	require.NoError(t, err)
	assert.Equal(t, domain.ItemDone, item.Status)
	assert.Equal(t, "bring passport", item.Note)
	assert.Len(t, fake.Updates(), 1)
}

func TestCommitEdit_RollbackOnLogicalFailure(t *testing.T) {
	// Scenario from the checklist contract: pending item, optimistic
	// edit, server says success:false, item reverts fully.
	fake := &testutil.FakeRemote{UpdateErr: remote.Reject("checklist locked")}
	engine := loadedEngine(t, fake)

	edit, err := engine.BeginEdit("c1", domain.ItemDone, "bring passport")
	require.NoError(t, err)

	outcome, err := engine.CommitEdit(context.Background(), edit)
	assert.ErrorIs(t, err, remote.ErrRejected)
	assert.Equal(t, app.CommitRolledBack, outcome.Code)
	assert.Equal(t, "checklist locked", outcome.Message)

	item, findErr := engine.Snapshot().Item("c1")
	require.NoError(t, findErr)
	assert.Equal(t, domain.ItemPending, item.Status)
	assert.Equal(t, "", item.Note)
}

func TestCommitEdit_RollbackOnTransportFailure(t *testing.T) {
	fake := &testutil.FakeRemote{UpdateErr: remote.ErrUnreachable}
	engine := loadedEngine(t, fake)

	edit, err := engine.BeginEdit("c2", domain.ItemPending, "expired")
	require.NoError(t, err)

	outcome, err := engine.CommitEdit(context.Background(), edit)
	assert.ErrorIs(t, err, remote.ErrUnreachable)
	assert.Equal(t, app.CommitRolledBack, outcome.Code)
	assert.NotEmpty(t, outcome.Message)

	item, findErr := engine.Snapshot().Item("c2")
	require.NoError(t, findErr)
	assert.Equal(t, domain.ItemDone, item.Status, "reverts to pre-edit status")
	assert.Equal(t, "renewed", item.Note, "reverts to pre-edit note")
}

func TestCommitEdit_FailureThenRetrySucceeds(t *testing.T) {
	fake := &testutil.FakeRemote{UpdateErr: remote.ErrUnreachable}
	engine := loadedEngine(t, fake)

	edit, err := engine.BeginEdit("c1", domain.ItemDone, "retry me")
	require.NoError(t, err)
	_, err = engine.CommitEdit(context.Background(), edit)
	require.Error(t, err)

	// After rollback the item is editable again; this time the remote
	// accepts.
	fake.UpdateErr = nil
	edit2, err := engine.BeginEdit("c1", domain.ItemDone, "retry me")
	require.NoError(t, err)
	outcome, err := engine.CommitEdit(context.Background(), edit2)
	require.NoError(t, err)
	assert.Equal(t, app.CommitApplied, outcome.Code)

	item, _ := engine.Snapshot().Item("c1")
	assert.Equal(t, domain.ItemDone, item.Status)
	assert.Equal(t, "retry me", item.Note)
}

func TestCommitEdit_ConcurrentItemsAreDisjoint(t *testing.T) {
	// c1 fails and rolls back, c2 succeeds, both in flight at once;
	// neither outcome may leak into the other item.
	fake := &testutil.FakeRemote{
		UpdateErrs: map[string]error{"c1": remote.Reject("not yours")},
	}
	engine := loadedEngine(t, fake)

	edit1, err := engine.BeginEdit("c1", domain.ItemDone, "fail")
	require.NoError(t, err)
	edit2, err := engine.BeginEdit("c2", domain.ItemPending, "succeed")
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, _ = engine.CommitEdit(context.Background(), edit1)
	}()
	go func() {
		defer wg.Done()
		_, _ = engine.CommitEdit(context.Background(), edit2)
	}()
	wg.Wait()

	c1, _ := engine.Snapshot().Item("c1")
	assert.Equal(t, domain.ItemPending, c1.Status)
	assert.Equal(t, "", c1.Note)

	c2, _ := engine.Snapshot().Item("c2")
	assert.Equal(t, domain.ItemPending, c2.Status)
	assert.Equal(t, "succeed", c2.Note)
}

func TestCommitEdit_ReloadDuringCommitKeepsFreshSnapshot(t *testing.T) {
	// An in-flight commit resolves against whatever snapshot a reload
	// installed, by item ID. If the reload already unregistered the edit,
	// even a failed commit must not roll the fresh item back to the
	// pre-edit values of the old snapshot.
	fake := &testutil.FakeRemote{
		UpdateBarrier: make(chan struct{}),
		UpdateErrs:    map[string]error{"c1": remote.Reject("checklist locked")},
	}
	engine := loadedEngine(t, fake)

	edit, err := engine.BeginEdit("c1", domain.ItemDone, "bring passport")
	require.NoError(t, err)

	type resolution struct {
		outcome *app.CommitOutcome
		err     error
	}
	resolved := make(chan resolution, 1)
	go func() {
		outcome, commitErr := engine.CommitEdit(context.Background(), edit)
		resolved <- resolution{outcome, commitErr}
	}()

	// While the commit is parked on the barrier, a reload swaps in a
	// fresh list where the server has since marked c1 done.
	fake.Trip = testutil.NewTestTrip(testutil.WithChecklist(
		testutil.NewTestItem("c1", "Ihram garments",
			testutil.WithStatus(domain.ItemDone), testutil.WithNote("fresh from server")),
	))
	_, err = engine.Load(context.Background(), "BK-1881")
	require.NoError(t, err)

	close(fake.UpdateBarrier)
	res := <-resolved
	require.NoError(t, res.err)
	assert.Equal(t, app.CommitApplied, res.outcome.Code)

	item, findErr := engine.Snapshot().Item("c1")
	require.NoError(t, findErr)
	assert.Equal(t, domain.ItemDone, item.Status)
	assert.Equal(t, "fresh from server", item.Note)
}

func TestCommitEdit_PreservesServerOrder(t *testing.T) {
	engine := loadedEngine(t, &testutil.FakeRemote{})

	edit, err := engine.BeginEdit("c2", domain.ItemPending, "")
	require.NoError(t, err)
	_, err = engine.CommitEdit(context.Background(), edit)
	require.NoError(t, err)

	ids := make([]string, 0, len(engine.Snapshot().Checklist))
	for _, item := range engine.Snapshot().Checklist {
		ids = append(ids, item.ID)
	}
	assert.Equal(t, []string{"c1", "c2"}, ids)
}
