package service

import (
	"context"
	"errors"
	"sync"

	"github.com/alexanderramin/rihla/internal/app"
	"github.com/alexanderramin/rihla/internal/capture"
	"github.com/alexanderramin/rihla/internal/domain"
	"github.com/alexanderramin/rihla/internal/remote"
	"github.com/google/uuid"
)

// capturePipeline drives one capture modal's session through the
// idle → selecting → previewing → uploading → result lifecycle. The
// upload is the sole suspend point; Cancel aborts it through the stored
// CancelFunc.
type capturePipeline struct {
	remote remote.Client
	prefs  app.PrefsUseCase
	source capture.Source

	mu           sync.Mutex
	session      domain.UploadSession
	cancelUpload context.CancelFunc
}

// NewCapturePipeline creates a CaptureUseCase for one capture modal.
func NewCapturePipeline(client remote.Client, prefs app.PrefsUseCase, source capture.Source) app.CaptureUseCase {
	return &capturePipeline{
		remote:  client,
		prefs:   prefs,
		source:  source,
		session: domain.UploadSession{Stage: domain.StageIdle},
	}
}

func (p *capturePipeline) Select(ctx context.Context, kind domain.SourceKind) error {
	p.mu.Lock()
	switch p.session.Stage {
	case domain.StageIdle, domain.StageSelecting, domain.StagePreviewing:
		// A fresh session gets an ID; re-selection keeps it.
	default:
		p.mu.Unlock()
		return ErrBadStage
	}
	if p.session.ID == "" {
		p.session.ID = uuid.New().String()
	}
	p.session.Stage = domain.StageSelecting
	p.session.Asset = nil
	p.mu.Unlock()

	asset, err := p.source.Pick(ctx, kind)

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.session.Stage != domain.StageSelecting {
		// Cancelled while the picker was open.
		return capture.ErrCancelled
	}
	if err != nil {
		p.session.Reset()
		return err
	}
	p.session.Stage = domain.StagePreviewing
	p.session.Asset = asset
	return nil
}

func (p *capturePipeline) Discard() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.session.Stage != domain.StagePreviewing {
		return ErrBadStage
	}
	p.session.Stage = domain.StageSelecting
	p.session.Asset = nil
	return nil
}

func (p *capturePipeline) Submit(ctx context.Context) (*domain.AnalysisResult, error) {
	p.mu.Lock()
	if p.session.Stage != domain.StagePreviewing {
		p.mu.Unlock()
		return nil, ErrBadStage
	}
	if p.session.Asset == nil {
		p.mu.Unlock()
		return nil, ErrNoAsset
	}
	asset := *p.session.Asset
	p.session.Stage = domain.StageUploading

	uploadCtx, cancel := context.WithCancel(ctx)
	p.cancelUpload = cancel
	p.mu.Unlock()
	defer cancel()

	profile, err := p.prefs.Profile(uploadCtx)
	if err != nil {
		return nil, p.failUpload(err)
	}

	result, err := p.remote.AnalyzeImage(uploadCtx, remote.AnalyzeRequest{
		Asset:    asset,
		UserID:   profile.UserID,
		Language: profile.Locale,
	})
	if err != nil {
		return nil, p.failUpload(err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.cancelUpload = nil
	if p.session.Stage != domain.StageUploading {
		// Cancelled while the response was in flight; stay idle.
		return nil, capture.ErrCancelled
	}
	p.session.Stage = domain.StageResult
	p.session.Asset = nil
	p.session.Result = result
	return result, nil
}

// failUpload regresses a failed upload to previewing with the selected
// asset retained, unless the whole flow was cancelled meanwhile.
func (p *capturePipeline) failUpload(err error) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cancelUpload = nil
	if errors.Is(err, context.Canceled) {
		// Cancel aborted the upload context; report it as a cancel, not
		// as a remote failure.
		return capture.ErrCancelled
	}
	if p.session.Stage == domain.StageUploading {
		p.session.Stage = domain.StagePreviewing
	}
	return err
}

func (p *capturePipeline) Dismiss() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.session.Stage == domain.StageResult {
		p.session.Reset()
		p.session.ID = ""
	}
}

func (p *capturePipeline) Cancel() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancelUpload != nil {
		p.cancelUpload()
		p.cancelUpload = nil
	}
	p.session.Reset()
	p.session.ID = ""
}

func (p *capturePipeline) Session() domain.UploadSession {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.session
}
