package app

import (
	"context"
	"errors"

	"github.com/alexanderramin/rihla/internal/audio"
	"github.com/alexanderramin/rihla/internal/capture"
	"github.com/alexanderramin/rihla/internal/domain"
	"github.com/alexanderramin/rihla/internal/remote"
)

type CommitCode string

const (
	CommitApplied    CommitCode = "APPLIED"
	CommitRolledBack CommitCode = "ROLLED_BACK"
)

// CommitOutcome reports how one checklist commit resolved. When the code
// is CommitRolledBack, Message carries the user-facing explanation and
// the item has already been restored to its pre-edit values.
type CommitOutcome struct {
	Code    CommitCode
	ItemID  string
	Message string
}

// UserMessage converts any engine error into the text shown to the
// user. No error escaping the engines is fatal; the worst case is a
// stale-but-consistent view and a manual retry.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, domain.ErrItemNotFound):
		return "That checklist item is no longer available. Refresh the trip and try again."
	case errors.Is(err, remote.ErrRejected):
		return remote.RejectMessage(err)
	case errors.Is(err, remote.ErrTimeout):
		return "The trip service took too long to respond. Your change was not saved."
	case errors.Is(err, remote.ErrUnreachable):
		return "Could not reach the trip service. Check your connection and try again."
	case errors.Is(err, capture.ErrCancelled), errors.Is(err, context.Canceled):
		return ""
	case errors.Is(err, audio.ErrPlayback):
		return "The narration could not be played."
	default:
		return "Something went wrong. Please try again."
	}
}
