package repository

import (
	"context"
	"errors"
)

// ErrNotFound indicates the requested key has never been stored.
var ErrNotFound = errors.New("not found")

// PreferenceRepo is the persisted user preference store. Values are
// plain strings; callers own key naming and defaulting.
type PreferenceRepo interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	All(ctx context.Context) (map[string]string, error)
	Delete(ctx context.Context, key string) error
}
