package cli

import (
	"context"
	"sync"

	"github.com/alexanderramin/rihla/internal/capture"
)

// PathHolder stages a gallery image path for the capture source. The
// presentation layer sets the path right before asking the pipeline to
// select from the gallery; the source consumes it exactly once.
type PathHolder struct {
	mu   sync.Mutex
	path string
	set  bool
}

// Set stages a path for the next gallery pick.
func (h *PathHolder) Set(path string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.path = path
	h.set = true
}

// Next returns the staged path and clears it. With nothing staged the
// pick counts as cancelled.
func (h *PathHolder) Next(ctx context.Context) (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.set {
		return "", capture.ErrCancelled
	}
	path := h.path
	h.path = ""
	h.set = false
	return path, nil
}
