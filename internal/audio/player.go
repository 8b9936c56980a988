// Package audio plays the narration sub-resource attached to an
// analysis result. Playback is a singleton per result view: play and
// stop are mutually exclusive, and stop always releases the underlying
// player process before a new play may start.
package audio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"strings"
	"sync"
)

var (
	// ErrPlayback indicates the narration could not be loaded or the
	// player process could not be started.
	ErrPlayback = errors.New("audio playback failed")

	// ErrBusy indicates a play was requested while a prior one is still
	// holding the player. Stop first.
	ErrBusy = errors.New("narration already playing")
)

// Player exposes the narration playback capability.
type Player interface {
	// Play downloads the narration and starts playback. The context
	// bounds the download only; playback continues until Stop or the
	// track ends.
	Play(ctx context.Context, url string) error

	// Stop kills playback if active and releases the player resource.
	// Stopping an idle player is a no-op.
	Stop() error
}

// ExecPlayer plays narration through an external player command.
type ExecPlayer struct {
	// Command is the player argv; the downloaded file path is appended.
	Command []string

	// BaseURL resolves server-relative audio URLs.
	BaseURL string

	// HTTP is the client used for the narration download. Defaults to
	// http.DefaultClient.
	HTTP *http.Client

	mu   sync.Mutex
	cmd  *exec.Cmd
	temp string
}

func (p *ExecPlayer) Play(ctx context.Context, url string) error {
	p.mu.Lock()
	if p.cmd != nil {
		p.mu.Unlock()
		return ErrBusy
	}
	p.mu.Unlock()

	path, err := p.download(ctx, url)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPlayback, err)
	}

	if len(p.Command) == 0 {
		os.Remove(path)
		return fmt.Errorf("%w: no player command configured", ErrPlayback)
	}

	cmd := exec.Command(p.Command[0], append(append([]string(nil), p.Command[1:]...), path)...)
	if err := cmd.Start(); err != nil {
		os.Remove(path)
		return fmt.Errorf("%w: starting player: %v", ErrPlayback, err)
	}

	p.mu.Lock()
	if p.cmd != nil {
		// A concurrent Play won the race; release ours.
		p.mu.Unlock()
		_ = cmd.Process.Kill()
		_ = cmd.Wait()
		os.Remove(path)
		return ErrBusy
	}
	p.cmd = cmd
	p.temp = path
	p.mu.Unlock()

	// Reap the process and clean up when the track ends naturally.
	go func() {
		_ = cmd.Wait()
		p.mu.Lock()
		defer p.mu.Unlock()
		if p.cmd == cmd {
			os.Remove(p.temp)
			p.cmd = nil
			p.temp = ""
		}
	}()

	return nil
}

func (p *ExecPlayer) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cmd == nil {
		return nil
	}
	if p.cmd.Process != nil {
		_ = p.cmd.Process.Kill()
	}
	os.Remove(p.temp)
	p.cmd = nil
	p.temp = ""
	return nil
}

// download fetches the narration to a temp file and returns its path.
func (p *ExecPlayer) download(ctx context.Context, url string) (string, error) {
	if strings.HasPrefix(url, "/") {
		url = strings.TrimSuffix(p.BaseURL, "/") + url
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}

	client := p.HTTP
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("narration fetch returned status %d", resp.StatusCode)
	}

	f, err := os.CreateTemp("", "rihla-narration-*.mp3")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("writing narration: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("closing narration file: %w", err)
	}
	return f.Name(), nil
}
