package service

import (
	"context"
	"errors"

	"github.com/alexanderramin/rihla/internal/app"
	"github.com/alexanderramin/rihla/internal/db"
	"github.com/alexanderramin/rihla/internal/domain"
	"github.com/alexanderramin/rihla/internal/repository"
)

type prefsService struct {
	prefs repository.PreferenceRepo
	txr   db.TxRunner
}

// NewPrefsService creates the PrefsUseCase over the persisted store.
func NewPrefsService(prefs repository.PreferenceRepo, txr db.TxRunner) app.PrefsUseCase {
	return &prefsService{prefs: prefs, txr: txr}
}

func (s *prefsService) Profile(ctx context.Context) (domain.Preferences, error) {
	p := domain.Preferences{
		UserID: domain.DefaultUserID,
		Locale: domain.DefaultLocale,
	}

	userID, err := s.prefs.Get(ctx, domain.PrefUserID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return p, err
	}
	if err == nil && userID != "" {
		p.UserID = userID
	}

	locale, err := s.prefs.Get(ctx, domain.PrefLocale)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return p, err
	}
	if err == nil && locale != "" {
		p.Locale = locale
	}

	return p, nil
}

func (s *prefsService) SetProfile(ctx context.Context, prefs domain.Preferences) error {
	// Identity and locale land together or not at all.
	return s.txr.InTx(ctx, func(ctx context.Context, q db.Querier) error {
		txPrefs := repository.NewSQLitePreferenceRepo(q)

		if prefs.UserID != "" {
			if err := txPrefs.Set(ctx, domain.PrefUserID, prefs.UserID); err != nil {
				return err
			}
		}
		if prefs.Locale != "" {
			if err := txPrefs.Set(ctx, domain.PrefLocale, prefs.Locale); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *prefsService) All(ctx context.Context) (map[string]string, error) {
	return s.prefs.All(ctx)
}
