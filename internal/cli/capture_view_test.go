package cli

import (
	"testing"

	"github.com/alexanderramin/rihla/internal/capture"
	"github.com/alexanderramin/rihla/internal/domain"
	"github.com/alexanderramin/rihla/internal/remote"
	"github.com/alexanderramin/rihla/internal/teatest"
	"github.com/alexanderramin/rihla/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaptureCameraToResult(t *testing.T) {
	fake := &testutil.FakeRemote{AnalyzeResult: testutil.NewTestResult(true)}
	app, source, player := newTestApp(t, fake)

	d := teatest.New(t, newCaptureModel(app))
	d.DrainInit()

	assert.Contains(t, d.View(), "Where is the photo?")

	d.PressKey('c')
	assert.Contains(t, d.View(), "kaaba.jpg")
	assert.Equal(t, []domain.SourceKind{domain.SourceCamera}, source.Kinds)

	d.PressEnter()
	view := d.View()
	assert.Contains(t, view, "Kaaba")
	assert.Contains(t, view, "97%")
	assert.Contains(t, view, "Audio narration available")

	d.PressKey('p')
	require.Len(t, player.Played, 1)
	assert.Equal(t, "/audio/abc123.mp3", player.Played[0])

	d.PressEnter()
	assert.Equal(t, domain.StageIdle, app.Capture.Session().Stage)
	assert.False(t, player.Playing)
}

func TestCaptureGalleryPathEntry(t *testing.T) {
	app, source, _ := newTestApp(t, &testutil.FakeRemote{})

	d := teatest.New(t, newCaptureModel(app))
	d.DrainInit()

	d.PressKey('g')
	d.Type("/tmp/masjid.jpg")
	d.PressEnter()

	assert.Equal(t, domain.StagePreviewing, app.Capture.Session().Stage)
	assert.Equal(t, []domain.SourceKind{domain.SourceGallery}, source.Kinds)
}

func TestCaptureUploadFailureReturnsToPreview(t *testing.T) {
	fake := &testutil.FakeRemote{AnalyzeErr: remote.Reject("blurry image")}
	app, _, _ := newTestApp(t, fake)

	d := teatest.New(t, newCaptureModel(app))
	d.DrainInit()

	d.PressKey('c')
	d.PressEnter()

	view := d.View()
	assert.Contains(t, view, "blurry image")
	assert.Contains(t, view, "PREVIEW")
	assert.Equal(t, domain.StagePreviewing, app.Capture.Session().Stage)
}

func TestCaptureCancelDuringUploadShowsCancelled(t *testing.T) {
	fake := &testutil.FakeRemote{AnalyzeBarrier: make(chan struct{})}
	app, _, _ := newTestApp(t, fake)

	d := teatest.New(t, newCaptureModel(app))
	d.DrainInit()

	d.PressKey('c')
	d.PressEnter() // upload parks on the barrier; the driver moves on

	d.PressKey('x')
	close(fake.AnalyzeBarrier)

	// The abandoned upload resolves late with a cancellation; it must not
	// repaint the cancel notice as a remote failure.
	d.Send(submitDoneMsg{err: capture.ErrCancelled})

	view := d.View()
	assert.Contains(t, view, "Upload cancelled.")
	assert.NotContains(t, view, "took too long")
	assert.Equal(t, domain.StageIdle, app.Capture.Session().Stage)
}

func TestCaptureDiscardReturnsToSelecting(t *testing.T) {
	app, _, _ := newTestApp(t, &testutil.FakeRemote{})

	d := teatest.New(t, newCaptureModel(app))
	d.DrainInit()

	d.PressKey('c')
	d.PressKey('d')

	assert.Equal(t, domain.StageSelecting, app.Capture.Session().Stage)
	assert.Contains(t, d.View(), "Where is the photo?")
}

func TestCaptureEscCancels(t *testing.T) {
	app, _, _ := newTestApp(t, &testutil.FakeRemote{})

	d := teatest.New(t, newCaptureModel(app))
	d.DrainInit()

	d.PressKey('c')
	d.PressEsc()

	assert.Equal(t, domain.StageIdle, app.Capture.Session().Stage)
	assert.Empty(t, d.View())
}
