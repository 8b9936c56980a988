package capture

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/alexanderramin/rihla/internal/domain"
	"github.com/google/uuid"
)

// DeviceSource implements Source for a workstation: "gallery" resolves a
// path supplied by the presentation layer, "camera" runs a configured
// capture command that writes an image file.
type DeviceSource struct {
	// PromptPath asks the user for an image path. Returning ErrCancelled
	// aborts the pick.
	PromptPath func(ctx context.Context) (string, error)

	// CameraCmd is the capture command argv; the output path is appended
	// as the final argument. Empty disables the camera source.
	CameraCmd []string

	// CaptureDir receives camera output files. Defaults to the OS temp dir.
	CaptureDir string
}

func (s *DeviceSource) Pick(ctx context.Context, kind domain.SourceKind) (*domain.Asset, error) {
	switch kind {
	case domain.SourceGallery:
		if s.PromptPath == nil {
			return nil, ErrUnsupportedKind
		}
		path, err := s.PromptPath(ctx)
		if err != nil {
			return nil, err
		}
		return ResolveFile(path)

	case domain.SourceCamera:
		if len(s.CameraCmd) == 0 {
			return nil, fmt.Errorf("%w: no camera command configured", ErrUnsupportedKind)
		}
		return s.captureFrame(ctx)

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedKind, kind)
	}
}

func (s *DeviceSource) captureFrame(ctx context.Context) (*domain.Asset, error) {
	dir := s.CaptureDir
	if dir == "" {
		dir = os.TempDir()
	}
	out := filepath.Join(dir, "rihla-capture-"+uuid.New().String()+".jpg")

	args := append(append([]string(nil), s.CameraCmd[1:]...), out)
	cmd := exec.CommandContext(ctx, s.CameraCmd[0], args...)
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, ErrCancelled
		}
		return nil, fmt.Errorf("running capture command: %w", err)
	}
	// Some capture tools return before the file is flushed.
	if err := waitForFile(ctx, out, 2*time.Second); err != nil {
		return nil, err
	}
	return ResolveFile(out)
}

// ResolveFile validates that path names a readable file and builds the
// asset reference for it. The MIME type comes from the extension, with a
// content sniff as fallback.
func ResolveFile(path string) (*domain.Asset, error) {
	path = strings.TrimSpace(path)
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("resolving asset: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("resolving asset: %s is a directory", path)
	}

	mimeType := mime.TypeByExtension(filepath.Ext(path))
	if mimeType == "" {
		mimeType = sniffMIME(path)
	}

	return &domain.Asset{
		URI:      path,
		MIMEType: mimeType,
		FileName: filepath.Base(path),
	}, nil
}

func sniffMIME(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	buf := make([]byte, 512)
	n, err := f.Read(buf)
	if err != nil && err != io.EOF {
		return ""
	}
	return http.DetectContentType(buf[:n])
}

func waitForFile(ctx context.Context, path string, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for {
		if _, err := os.Stat(path); err == nil {
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("capture output %s never appeared", path)
		}
		select {
		case <-ctx.Done():
			return ErrCancelled
		case <-time.After(50 * time.Millisecond):
		}
	}
}
