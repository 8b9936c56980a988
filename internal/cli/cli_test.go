package cli

import (
	"testing"

	"github.com/alexanderramin/rihla/internal/repository"
	"github.com/alexanderramin/rihla/internal/service"
	"github.com/alexanderramin/rihla/internal/testutil"
)

// newTestApp builds a fully wired App over fakes and an in-memory
// preference store.
func newTestApp(t *testing.T, fake *testutil.FakeRemote) (*App, *testutil.FakeSource, *testutil.FakePlayer) {
	t.Helper()

	database := testutil.NewTestDB(t)
	prefs := service.NewPrefsService(
		repository.NewSQLitePreferenceRepo(database),
		testutil.NewTestTxRunner(database),
	)

	source := &testutil.FakeSource{}
	player := &testutil.FakePlayer{}

	return &App{
		Checklist: service.NewChecklistEngine(fake),
		Capture:   service.NewCapturePipeline(fake, prefs, source),
		Prefs:     prefs,
		Player:    player,
		Gallery:   &PathHolder{},
	}, source, player
}
