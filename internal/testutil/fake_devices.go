package testutil

import (
	"context"
	"sync"

	"github.com/alexanderramin/rihla/internal/audio"
	"github.com/alexanderramin/rihla/internal/capture"
	"github.com/alexanderramin/rihla/internal/domain"
)

// FakeSource is a scripted capture.Source.
type FakeSource struct {
	mu sync.Mutex

	Asset *domain.Asset
	Err   error
	Kinds []domain.SourceKind
}

var _ capture.Source = (*FakeSource)(nil)

func (f *FakeSource) Pick(ctx context.Context, kind domain.SourceKind) (*domain.Asset, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Kinds = append(f.Kinds, kind)
	if f.Err != nil {
		return nil, f.Err
	}
	if f.Asset != nil {
		copied := *f.Asset
		return &copied, nil
	}
	return &domain.Asset{URI: "/tmp/kaaba.jpg", MIMEType: "image/jpeg", FileName: "kaaba.jpg"}, nil
}

// FakePlayer records play/stop calls without touching any device.
type FakePlayer struct {
	mu      sync.Mutex
	PlayErr error

	Playing bool
	Played  []string
	Stops   int
}

var _ audio.Player = (*FakePlayer)(nil)

func (f *FakePlayer) Play(ctx context.Context, url string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.PlayErr != nil {
		return f.PlayErr
	}
	f.Playing = true
	f.Played = append(f.Played, url)
	return nil
}

func (f *FakePlayer) Stop() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Playing = false
	f.Stops++
	return nil
}
